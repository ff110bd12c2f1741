package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
)

const maxUserNameLen = 255

// User represents a platform account managed through the console.
type User struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domainauth.Role `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// UpdateUserRequest represents parameters to update a User.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string          `json:"name,omitempty"`
	Role     *domainauth.Role `json:"role,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

// Normalize trims whitespace on fields that are present.
func (r *UpdateUserRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
}

// Validate checks the fields that are present for bounds and allowed values.
func (r *UpdateUserRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return errors.New("user name must not be empty")
		}
		if utf8.RuneCountInString(name) > maxUserNameLen {
			return errors.New("user name is too long")
		}
	}
	if r.Role != nil && !r.Role.Valid() {
		return errors.New("user role must be admin or user")
	}
	return nil
}

// UsersListOptions controls paging for listing users.
type UsersListOptions struct {
	Limit  int
	Offset int
	Q      *string
}
