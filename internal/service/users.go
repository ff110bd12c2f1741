package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	"github.com/se1dhe/botpanel/internal/domain/model"
	apperrors "github.com/se1dhe/botpanel/internal/errors"
	"github.com/se1dhe/botpanel/internal/ports"
)

// SessionReader exposes the current session snapshot to services that need
// to know who is operating the console.
type SessionReader interface {
	Snapshot() domainauth.Snapshot
}

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	API     ports.UserAPI
	Session SessionReader
	Logger  *slog.Logger
}

// UserService validates and forwards user management operations. User
// management is an administrative surface; the session identity gates
// self-destructive edits.
type UserService struct {
	api     ports.UserAPI
	session SessionReader
	logger  *slog.Logger
}

// NewUserService constructs a UserService.
func NewUserService(opts UserServiceOptions) (*UserService, error) {
	if opts.API == nil {
		return nil, errors.New("user API is required")
	}
	if opts.Session == nil {
		return nil, errors.New("session reader is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{api: opts.API, session: opts.Session, logger: logger}, nil
}

// List retrieves platform users matching the given options.
func (s *UserService) List(ctx context.Context, opts model.UsersListOptions) ([]model.User, error) {
	users, err := s.api.ListUsers(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update validates and applies a partial user update. Admins cannot strip
// their own admin role; locking yourself out is never what was meant.
func (s *UserService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, errors.New("update user request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.isSelf(id) && req.Role != nil && *req.Role != domainauth.RoleAdmin {
		return nil, apperrors.Validation("cannot remove your own admin role")
	}

	user, err := s.api.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

// Delete removes a user. Deleting the signed-in account is refused.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if s.isSelf(id) {
		return apperrors.Validation("cannot delete your own account")
	}
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.logger.Info("user deleted", "id", id)
	return nil
}

func (s *UserService) isSelf(id int64) bool {
	snap := s.session.Snapshot()
	return snap.Identity != nil && snap.Identity.ID == id
}
