package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evo-kg/evokg-api/pkg/logger"
)

// NewUserNotification carries the signup details sent to the admin
type NewUserNotification struct {
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Organization string
}

// Service formats and dispatches the transactional emails
type Service struct {
	sender Sender
	cfg    *Config
	log    *slog.Logger
}

// NewService creates the email service
func NewService(sender Sender, cfg *Config, log *slog.Logger) *Service {
	return &Service{
		sender: sender,
		cfg:    cfg,
		log:    log.With(logger.Scope("email.svc")),
	}
}

// SendWelcome sends the welcome email to a new user
func (s *Service) SendWelcome(ctx context.Context, to string) error {
	subject := "Welcome to EvoKG!"
	html, err := renderWelcome(subject, time.Now().Year())
	if err != nil {
		return err
	}

	result, err := s.sender.Send(ctx, SendOptions{
		To:      to,
		Subject: subject,
		Text:    "Welcome to EvoKG! We are thrilled to have you on board.",
		HTML:    html,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("welcome email not delivered: %s", result.Error)
	}
	return nil
}

// SendNewUserNotification notifies the configured admin address of a signup.
// A missing admin address is not an error; the notification is skipped.
func (s *Service) SendNewUserNotification(ctx context.Context, n NewUserNotification) error {
	if s.cfg.AdminEmail == "" {
		s.log.Debug("no admin address configured, skipping signup notification")
		return nil
	}

	html, err := renderNewUser(n, time.Now().Year())
	if err != nil {
		return err
	}

	result, err := s.sender.Send(ctx, SendOptions{
		To:      s.cfg.AdminEmail,
		Subject: "New EvoKG user: " + n.Username,
		Text:    fmt.Sprintf("New user %s (%s) from %s registered.", n.Username, n.Email, n.Organization),
		HTML:    html,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("signup notification not delivered: %s", result.Error)
	}
	return nil
}
