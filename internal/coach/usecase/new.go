package usecase

import (
	"context"
	"time"

	"financial-coach/internal/coach"
	"financial-coach/internal/coach/repository"
	"financial-coach/internal/coach/session"
	"financial-coach/pkg/llmprovider"
	"financial-coach/pkg/log"
)

// ModelClient is the generation backend. *llmprovider.Manager satisfies it.
type ModelClient interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	SupportsSystemRole() bool
}

// Config holds the orchestrator settings.
type Config struct {
	// MaxHistoryLength is counted in exchanges.
	MaxHistoryLength int
	Temperature      float64
	TopP             float64
	MaxTokens        int
}

// implUseCase is the private implementation of coach.UseCase.
type implUseCase struct {
	l        log.Logger
	sessions session.Store
	locker   *session.Locker
	repo     repository.Repository
	llm      ModelClient
	cfg      Config
	now      func() time.Time
}

// New creates a new coach UseCase implementation.
func New(l log.Logger, sessions session.Store, repo repository.Repository, llm ModelClient, cfg Config) coach.UseCase {
	if cfg.MaxHistoryLength <= 0 {
		cfg.MaxHistoryLength = coach.DefaultMaxHistoryLength
	}
	if repo == nil {
		repo = repository.NewNop()
	}
	return &implUseCase{
		l:        l,
		sessions: sessions,
		locker:   session.NewLocker(),
		repo:     repo,
		llm:      llm,
		cfg:      cfg,
		now:      time.Now,
	}
}
