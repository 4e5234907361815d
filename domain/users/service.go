package users

import (
	"context"
	"log/slog"
	"time"

	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// Service handles business logic for users
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new users service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("users.svc")),
	}
}

// GetByUsername returns the user or user_not_found
func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	return user, nil
}

// UpdateQueryLimits applies a partial quota update and returns the updated user
func (s *Service) UpdateQueryLimits(ctx context.Context, username string, queryLimits int, lastReset time.Time) (*User, error) {
	if err := s.repo.UpdateQueryLimits(ctx, username, queryLimits, lastReset); err != nil {
		return nil, err
	}
	return s.GetByUsername(ctx, username)
}

// UpdateAPIKey applies a partial API-key update and returns the updated user
func (s *Service) UpdateAPIKey(ctx context.Context, username, apiKey string) (*User, error) {
	if len(apiKey) < 10 {
		return nil, apperror.NewBadRequest("OPENAI_API_KEY must be at least 10 characters")
	}
	if err := s.repo.UpdateAPIKey(ctx, username, apiKey); err != nil {
		return nil, err
	}
	return s.GetByUsername(ctx, username)
}
