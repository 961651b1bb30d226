package chat

import (
	"context"

	"ecoshop-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Send processes one user utterance against the caller's cart and
	// returns a displayable response. Upstream failures never surface
	// raw; every code path yields a Response.
	Send(ctx context.Context, sc model.Scope, input SendInput) (Response, error)
}
