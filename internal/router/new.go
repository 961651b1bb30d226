package router

import (
	"context"

	"ecoshop-assistant/pkg/log"
)

// Router is the interface for message intent routing.
type Router interface {
	Classify(ctx context.Context, message string) Output
}

// RuleRouter classifies user intent with fixed keyword and price rules,
// evaluated in a fixed priority order.
type RuleRouter struct {
	l log.Logger
}

// Ensure RuleRouter implements Router interface
var _ Router = (*RuleRouter)(nil)

// New creates a new RuleRouter.
func New(l log.Logger) *RuleRouter {
	return &RuleRouter{l: l}
}
