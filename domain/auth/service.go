package auth

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/evo-kg/evokg-api/domain/email"
	"github.com/evo-kg/evokg-api/domain/users"
	"github.com/evo-kg/evokg-api/pkg/apperror"
	"github.com/evo-kg/evokg-api/pkg/auth"
	"github.com/evo-kg/evokg-api/pkg/logger"
)

// Default query quota granted at signup
const defaultQueryLimit = 5

// Service registers users and authenticates logins
type Service struct {
	repo   *users.Repository
	tokens *auth.TokenService
	emails *email.Service
	log    *slog.Logger
}

// NewService creates the auth service
func NewService(repo *users.Repository, tokens *auth.TokenService, emails *email.Service, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		emails: emails,
		log:    log.With(logger.Scope("auth.svc")),
	}
}

// Signup validates and stores a new user, then dispatches the welcome and
// admin-notification emails. Email failures are logged, not surfaced; the
// account exists either way.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*users.User, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	domain := emailDomain(req.Email)
	if _, blocked := disallowedFreeEmailDomains[domain]; blocked {
		return nil, apperror.ErrDisallowedDomain
	}

	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrConflict.WithMessage("Username already registered")
	}

	emailTaken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperror.ErrConflict.WithMessage("Email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.ErrInternal.WithInternal(err)
	}

	user := &users.User{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Organization:   req.Organization,
		OpenAIAPIKey:   req.OpenAIAPIKey,
		QueryLimits:    defaultQueryLimit,
		LastQueryReset: time.Now().UTC(),
		HashedPassword: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.emails.SendNewUserNotification(ctx, email.NewUserNotification{
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Organization: user.Organization,
	}); err != nil {
		s.log.Warn("signup notification failed", logger.Error(err))
	}
	if err := s.emails.SendWelcome(ctx, user.Email); err != nil {
		s.log.Warn("welcome email failed", logger.Error(err))
	}

	return user, nil
}

// Login verifies credentials and issues a bearer token
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil || !auth.VerifyPassword(password, user.HashedPassword) {
		return "", apperror.ErrBadLogin
	}

	token, err := s.tokens.IssueToken(user.Username)
	if err != nil {
		return "", apperror.ErrInternal.WithInternal(err)
	}
	return token, nil
}

func validateSignup(req SignupRequest) error {
	if l := len(req.Username); l < 3 || l > 50 {
		return apperror.NewBadRequest("username must be 3-50 characters")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apperror.NewBadRequest("Invalid email format.")
	}
	if len(req.Password) < 8 {
		return apperror.NewBadRequest("password must be at least 8 characters")
	}
	if req.FirstName == "" || req.LastName == "" {
		return apperror.NewBadRequest("first and last name are required")
	}
	if req.Organization == "" {
		return apperror.NewBadRequest("organization is required")
	}
	if len(req.OpenAIAPIKey) < 10 {
		return apperror.NewBadRequest("OPENAI_API_KEY must be at least 10 characters")
	}
	return nil
}

func emailDomain(address string) string {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(address[at+1:])
}
