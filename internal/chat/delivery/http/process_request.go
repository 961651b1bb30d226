package http

import (
	"github.com/gin-gonic/gin"

	"ecoshop-assistant/internal/chat"
	"ecoshop-assistant/internal/model"
)

// DefaultUserID stands in when the caller sends no user id, matching the
// anonymous browsing flow of the storefront.
const DefaultUserID = "default"

// processSendReq binds and validates the send message request body.
func (h *handler) processSendReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.UserID == "" {
		req.UserID = DefaultUserID
	}
	return req, req.validate()
}

func (req sendMessageReq) validate() error {
	if req.Message == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (req sendMessageReq) toInput() chat.SendInput {
	return chat.SendInput{
		Message: req.Message,
		Cart:    req.Cart,
	}
}

func (req sendMessageReq) toScope() model.Scope {
	return model.Scope{UserID: req.UserID}
}
