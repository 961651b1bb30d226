package chat

import "ecoshop-assistant/internal/model"

// SendInput is the input for processing one chat message.
// UserID is carried in model.Scope, not here.
type SendInput struct {
	Message string
	Cart    []model.CartItem
}

// ResponseType tells the caller how to render a response.
type ResponseType string

const (
	ResponseTypeText       ResponseType = "text"
	ResponseTypeProduct    ResponseType = "product"
	ResponseTypeCart       ResponseType = "cart"
	ResponseTypeError      ResponseType = "error"
	ResponseTypeCategories ResponseType = "categories"
)

// Response is the structured reply handed back to the chat UI.
// Message is plain text for direct display; escaping is the caller's job.
type Response struct {
	Message      string          `json:"message"`
	Type         ResponseType    `json:"type"`
	Products     []model.Product `json:"products,omitempty"`
	Order        *model.Order    `json:"order,omitempty"`
	ShowViewMore bool            `json:"show_view_more,omitempty"`
	Category     string          `json:"category,omitempty"`
	Categories   []string        `json:"categories,omitempty"`
}
