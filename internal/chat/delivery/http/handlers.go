package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ecoshop-assistant/internal/chat"
	"ecoshop-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Processes one user utterance against the caller's cart and returns a displayable assistant response.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message and cart"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Send(ctx, req.toScope(), req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		// Never surface a raw failure to the chat UI: hand back a
		// displayable error response instead.
		h.l.Errorf(ctx, "uc.Send: %v", err)
		out = chat.Response{
			Message: ProcessingErrorMessage,
			Type:    chat.ResponseTypeError,
		}
	}

	response.OK(c, h.newSendMessageResp(out))
}

// ProcessingErrorMessage is the displayable reply for unexpected failures.
const ProcessingErrorMessage = "I'm having trouble processing your request. Please try again or browse our categories directly."
