// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strings"

// CommitRequest represents the JSON request body for the add-to-cart endpoint.
//
// SelectedIngredientIDs and SpicyLevel are optional. When both are omitted the session's
// tracked customization for the item is committed.
//
// @Description Request to commit a menu item to the session cart
// @Example {"item_id": "custom-001", "selected_ingredient_ids": ["ing-beef", "ing-tofu"], "spicy_level": 2}
// @Example {"item_id": "fixed-003"}
type CommitRequest struct {
	// ItemID is the catalog id of the item to commit.
	ItemID string `json:"item_id" binding:"required" example:"custom-001"`
	// SelectedIngredientIDs replaces the tracked selection when present.
	SelectedIngredientIDs []string `json:"selected_ingredient_ids,omitempty" example:"ing-beef,ing-tofu"`
	// SpicyLevel replaces the tracked spice level when present.
	SpicyLevel *int `json:"spicy_level,omitempty" example:"2" minimum:"0" maximum:"3"`
} // @name CommitRequest

// HasOverride reports whether the request carries its own customization.
func (r *CommitRequest) HasOverride() bool {
	return r.SelectedIngredientIDs != nil || r.SpicyLevel != nil
}

// Validate performs the non-empty checks on the request.
func (r *CommitRequest) Validate() error {
	if strings.TrimSpace(r.ItemID) == "" {
		return ErrItemIDRequired
	}
	for _, id := range r.SelectedIngredientIDs {
		if strings.TrimSpace(id) == "" {
			return ErrIngredientIDRequired
		}
	}
	return nil
}

// ToggleIngredientRequest represents the JSON request body for the toggle endpoint.
//
// @Description Request to add or remove an ingredient from the item's selection
// @Example {"ingredient_id": "ing-beef"}
type ToggleIngredientRequest struct {
	IngredientID string `json:"ingredient_id" binding:"required" example:"ing-beef"`
} // @name ToggleIngredientRequest

// Validate performs custom validation on the request.
func (r *ToggleIngredientRequest) Validate() error {
	if strings.TrimSpace(r.IngredientID) == "" {
		return ErrIngredientIDRequired
	}
	return nil
}

// SetSpicyLevelRequest represents the JSON request body for the spicy level endpoint.
// Range checking is left to the domain so the response carries its error.
//
// @Description Request to set the spice level of a customizable item
// @Example {"level": 2}
type SetSpicyLevelRequest struct {
	Level *int `json:"level" binding:"required" example:"2" minimum:"0" maximum:"3"`
} // @name SetSpicyLevelRequest

// Validate performs custom validation on the request.
func (r *SetSpicyLevelRequest) Validate() error {
	if r.Level == nil {
		return ErrLevelRequired
	}
	return nil
}

// ValidationError represents a field validation error. ID names the offending
// value when the field holds identifiers.
type ValidationError struct {
	Field   string
	ID      string
	Message string
}

var (
	// ErrItemIDRequired is returned when item_id is empty.
	ErrItemIDRequired = &ValidationError{
		Field:   "item_id",
		Message: "must not be empty",
	}
	// ErrIngredientIDRequired is returned when an ingredient id is empty.
	ErrIngredientIDRequired = &ValidationError{
		Field:   "ingredient_id",
		Message: "must not be empty",
	}
	// ErrLevelRequired is returned when level is missing.
	ErrLevelRequired = &ValidationError{
		Field:   "level",
		Message: "is required",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	if e.ID != "" {
		return e.Field + " " + e.ID + ": " + e.Message
	}
	return e.Field + ": " + e.Message
}
