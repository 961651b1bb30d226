package usecase

import (
	"time"

	"ecoshop-assistant/internal/chat/repository"
	"ecoshop-assistant/internal/router"
	"ecoshop-assistant/internal/session"
	"ecoshop-assistant/pkg/gemini"
	pkgLog "ecoshop-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	router     router.Router
	products   repository.ProductRepository
	llm        *gemini.Client
	sessions   *session.Store
	genTimeout time.Duration
}

// New creates a new chat UseCase instance. genTimeout <= 0 falls back to
// DefaultGenerativeTimeout.
func New(
	l pkgLog.Logger,
	rt router.Router,
	products repository.ProductRepository,
	llm *gemini.Client,
	sessions *session.Store,
	genTimeout time.Duration,
) *implUseCase {
	if genTimeout <= 0 {
		genTimeout = DefaultGenerativeTimeout
	}
	return &implUseCase{
		l:          l,
		router:     rt,
		products:   products,
		llm:        llm,
		sessions:   sessions,
		genTimeout: genTimeout,
	}
}
