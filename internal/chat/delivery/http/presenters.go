package http

import (
	"time"

	"github.com/google/uuid"

	"ecoshop-assistant/internal/chat"
	"ecoshop-assistant/internal/model"
	"ecoshop-assistant/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	UserID  string           `json:"user_id"`
	Message string           `json:"message"`
	Cart    []model.CartItem `json:"cart"`
}

// --- Response DTOs ---

type sendMessageResp struct {
	ID           string            `json:"id"`
	Message      string            `json:"message"`
	Type         chat.ResponseType `json:"type"`
	Products     []model.Product   `json:"products,omitempty"`
	Order        *model.Order      `json:"order,omitempty"`
	ShowViewMore bool              `json:"show_view_more,omitempty"`
	Category     string            `json:"category,omitempty"`
	Categories   []string          `json:"categories,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
}

func (h *handler) newSendMessageResp(out chat.Response) sendMessageResp {
	return sendMessageResp{
		ID:           uuid.NewString(),
		Message:      out.Message,
		Type:         out.Type,
		Products:     out.Products,
		Order:        out.Order,
		ShowViewMore: out.ShowViewMore,
		Category:     out.Category,
		Categories:   out.Categories,
		CreatedAt:    response.DateTime(time.Now()),
	}
}
