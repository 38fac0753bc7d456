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
	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/repo"
	"github.com/edupract/exam_platform/internal/transport"
)

// UserService implements the administrative user CRUD. All mutations are
// reachable only through admin-gated routes.
type UserService struct {
	Repo   *repo.GormRepo
	Events *events.Producer
}

// Create adds a user record. The ID is the externally assigned identity
// number supplied by the administrator. Examinees always get their ID number
// as the initial password; they are expected to change it later.
func (s *UserService) Create(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "users.create")

	if req.ID <= 0 || req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: id, name and email are required", ErrValidation)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}

	password := req.Password
	if req.Role == models.RoleExaminee {
		password = strconv.FormatInt(req.ID, 10)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	if exists, err := s.Repo.UserIDExists(ctx, req.ID); err != nil {
		return nil, fmt.Errorf("check user id: %w", err)
	} else if exists {
		return nil, fmt.Errorf("%w: user id", ErrConflict)
	}
	if exists, err := s.Repo.UserEmailExists(ctx, req.Email, req.ID); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if exists {
		return nil, fmt.Errorf("%w: email", ErrConflict)
	}

	pwHash, err := hash.Password(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           req.ID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         req.Role,
		CourseID:     req.CourseID,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	l.Info("user created", "user_id", user.ID, "role", user.Role)
	if err := s.Events.PublishEvent(ctx, strconv.FormatInt(user.ID, 10), map[string]any{
		"type":    "user_created",
		"user_id": user.ID,
		"role":    user.Role,
	}); err != nil {
		l.Error("event publish failed", "error", err)
	}

	return user, nil
}

// Update rewrites name, email, role and (optionally) the ID of the user
// stored under oldID. Passwords are never touched here.
func (s *UserService) Update(ctx context.Context, oldID int64, req transport.UpdateUserRequest) (*models.User, error) {
	if req.ID <= 0 || req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: id, name and email are required", ErrValidation)
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}

	existing, err := s.Repo.UserByID(ctx, oldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if req.ID != oldID {
		if exists, err := s.Repo.UserIDExists(ctx, req.ID); err != nil {
			return nil, fmt.Errorf("check user id: %w", err)
		} else if exists {
			return nil, fmt.Errorf("%w: user id", ErrConflict)
		}
	}
	if exists, err := s.Repo.UserEmailExists(ctx, req.Email, oldID); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if exists {
		return nil, fmt.Errorf("%w: email", ErrConflict)
	}

	updated := &models.User{
		ID:           req.ID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: existing.PasswordHash,
		Role:         req.Role,
		CourseID:     existing.CourseID,
	}
	if err := s.Repo.UpdateUser(ctx, oldID, updated); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	l := logging.FromContext(ctx).With("svc", "users.delete")

	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	l.Info("user deleted", "user_id", id)
	if err := s.Events.PublishEvent(ctx, strconv.FormatInt(id, 10), map[string]any{
		"type":    "user_deleted",
		"user_id": id,
	}); err != nil {
		l.Error("event publish failed", "error", err)
	}
	return nil
}

func (s *UserService) List(ctx context.Context) ([]transport.UserResponse, error) {
	users, err := s.Repo.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return usersToResponses(users), nil
}

func (s *UserService) ListByRole(ctx context.Context, role models.Role) ([]transport.UserResponse, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	users, err := s.Repo.UsersByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return usersToResponses(users), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*transport.UserResponse, error) {
	user, err := s.Repo.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	resp := transport.UserToResponse(user)
	return &resp, nil
}

func (s *UserService) GetByRole(ctx context.Context, id int64, role models.Role) (*transport.UserResponse, error) {
	user, err := s.Repo.UserByIDAndRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, fmt.Errorf("get user by role: %w", err)
	}
	resp := transport.UserToResponse(user)
	return &resp, nil
}

func usersToResponses(users []models.User) []transport.UserResponse {
	out := make([]transport.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, transport.UserToResponse(&users[i]))
	}
	return out
}
