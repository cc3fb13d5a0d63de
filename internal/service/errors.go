package service

import (
	"errors"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/domain/model"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrItemNotFound is returned for an id that is not on the menu.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrSessionNotFound is returned for an unknown, ended or evicted session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidToken is returned when a session token fails validation.
	ErrInvalidToken = errors.New("invalid or expired session token")
	// ErrInvalidSpicyLevel is returned for levels outside 0..3.
	ErrInvalidSpicyLevel = model.ErrInvalidSpicyLevel
)

// ValidationError names the offending field and id when strict validation rejects input.
type ValidationError = dto.ValidationError
