// Package model holds the management-domain records exchanged with the
// backend: bots and platform users.
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxBotNameLen        = 255
	maxBotDescriptionLen = 2000
)

// BotStatus controls whether a bot is offered to subscribers.
type BotStatus string

const (
	BotStatusActive   BotStatus = "active"
	BotStatusInactive BotStatus = "inactive"
)

// Valid reports whether the bot status is supported.
func (s BotStatus) Valid() bool {
	switch s {
	case BotStatusActive, BotStatusInactive:
		return true
	default:
		return false
	}
}

// Toggle returns the opposite status.
func (s BotStatus) Toggle() BotStatus {
	if s == BotStatusActive {
		return BotStatusInactive
	}
	return BotStatusActive
}

// ParseBotStatus normalizes a status string and reports whether it is supported.
func ParseBotStatus(value string) (BotStatus, bool) {
	status := BotStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// Bot represents an automated service offering managed through the console.
type Bot struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Subscribers int       `json:"users"`
	Status      BotStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBotRequest represents parameters to create a Bot.
type CreateBotRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// UpdateBotRequest represents parameters to update a Bot.
// Nil fields are left unchanged.
type UpdateBotRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Status      *BotStatus `json:"status,omitempty"`
}

// Normalize trims whitespace on free-text fields.
func (r *CreateBotRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
}

// Validate checks the request for required fields and bounds.
func (r *CreateBotRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("bot name is required")
	}
	if utf8.RuneCountInString(name) > maxBotNameLen {
		return errors.New("bot name is too long")
	}
	if utf8.RuneCountInString(r.Description) > maxBotDescriptionLen {
		return errors.New("bot description is too long")
	}
	if r.Price < 0 {
		return errors.New("bot price must not be negative")
	}
	return nil
}

// Normalize trims whitespace on free-text fields that are present.
func (r *UpdateBotRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
	if r.Category != nil {
		trimmed := strings.TrimSpace(*r.Category)
		r.Category = &trimmed
	}
}

// Validate checks the fields that are present for bounds and allowed values.
func (r *UpdateBotRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return errors.New("bot name must not be empty")
		}
		if utf8.RuneCountInString(name) > maxBotNameLen {
			return errors.New("bot name is too long")
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxBotDescriptionLen {
		return errors.New("bot description is too long")
	}
	if r.Price != nil && *r.Price < 0 {
		return errors.New("bot price must not be negative")
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("bot status must be active or inactive")
	}
	return nil
}

// BotsListOptions controls paging and filtering for listing bots.
// Q matches name/description via server-side substring search.
type BotsListOptions struct {
	Limit    int
	Offset   int
	Q        *string
	Category *string
}
