package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/edupract/exam_platform/internal/events"
	"github.com/edupract/exam_platform/internal/hash"
	"github.com/edupract/exam_platform/internal/logging"
	"github.com/edupract/exam_platform/internal/repo"
	"github.com/edupract/exam_platform/internal/tokens"
	"github.com/edupract/exam_platform/internal/transport"
)

// AuthService verifies credentials against the credential store and issues
// session tokens. Login is the only operation; it reads, never writes.
type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Service
	Events *events.Producer
}

// Login checks the (email, password) pair and, on success, returns a signed
// session token plus the public user projection. A missing user and a wrong
// password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*transport.LoginResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !hash.Check(user.PasswordHash, password) {
		l.Warn("login failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	l.Info("login successful", "user_id", user.ID, "role", user.Role)

	if err := s.Events.PublishEvent(ctx, strconv.FormatInt(user.ID, 10), map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
		"role":    user.Role,
	}); err != nil {
		l.Error("event publish failed", "error", err)
	}

	return &transport.LoginResponse{
		Token: token,
		User:  transport.UserToResponse(user),
	}, nil
}
