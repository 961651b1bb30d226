package http

import (
	"github.com/gin-gonic/gin"

	"ecoshop-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	messages := rg.Group("/messages")
	{
		messages.POST("", mw.RateLimit(), h.SendMessage)
	}
}
