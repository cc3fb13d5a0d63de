package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSpicyLevel is returned for spice levels outside 0..3.
var ErrInvalidSpicyLevel = errors.New("spicy level must be between 0 and 3")

// MaxSpicyLevel is the hottest level a customizable item accepts.
const MaxSpicyLevel SpicyLevel = 3

// SpicyLevel is the spice level of a customizable item, 0 (mild) to 3.
type SpicyLevel uint8

// ParseSpicyLevel validates an integer level coming from the outside world.
func ParseSpicyLevel(level int) (SpicyLevel, error) {
	if level < 0 || level > int(MaxSpicyLevel) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSpicyLevel, level)
	}
	return SpicyLevel(level), nil
}

// Valid reports whether the level is within range.
func (l SpicyLevel) Valid() bool {
	return l <= MaxSpicyLevel
}

// Ptr returns a pointer to a copy of l.
func (l SpicyLevel) Ptr() *SpicyLevel {
	return &l
}

// Clone copies an optional level.
func (l *SpicyLevel) Clone() *SpicyLevel {
	if l == nil {
		return nil
	}
	v := *l
	return &v
}

// CustomizationState is the in-progress selection for one customizable item before it is
// committed to the cart.
//
// @Description Current add-on selection and spice level for a menu item
type CustomizationState struct {
	// SelectedIngredients is unique by ingredient id and kept in selection order.
	// A nil slice means "unset" when the state is committed.
	SelectedIngredients []Ingredient `json:"selected_ingredients"`
	SpicyLevel          *SpicyLevel  `json:"spicy_level,omitempty" example:"2"`
}

// Toggle adds the ingredient when absent and removes it when present, comparing by id.
func (s *CustomizationState) Toggle(ingredient Ingredient) {
	for i, ing := range s.SelectedIngredients {
		if ing.ID == ingredient.ID {
			next := make([]Ingredient, 0, len(s.SelectedIngredients)-1)
			next = append(next, s.SelectedIngredients[:i]...)
			next = append(next, s.SelectedIngredients[i+1:]...)
			s.SelectedIngredients = next
			return
		}
	}
	next := make([]Ingredient, 0, len(s.SelectedIngredients)+1)
	next = append(next, s.SelectedIngredients...)
	s.SelectedIngredients = append(next, ingredient)
}

// Has reports whether an ingredient with the given id is selected.
func (s CustomizationState) Has(ingredientID string) bool {
	for _, ing := range s.SelectedIngredients {
		if ing.ID == ingredientID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with s.
func (s CustomizationState) Clone() CustomizationState {
	return CustomizationState{
		SelectedIngredients: cloneIngredients(s.SelectedIngredients),
		SpicyLevel:          s.SpicyLevel.Clone(),
	}
}

// Equal compares selections as sets of ingredient ids and spice levels by value.
func (s CustomizationState) Equal(other CustomizationState) bool {
	if len(s.SelectedIngredients) != len(other.SelectedIngredients) {
		return false
	}
	for _, ing := range s.SelectedIngredients {
		if !other.Has(ing.ID) {
			return false
		}
	}
	switch {
	case s.SpicyLevel == nil && other.SpicyLevel == nil:
		return true
	case s.SpicyLevel == nil || other.SpicyLevel == nil:
		return false
	default:
		return *s.SpicyLevel == *other.SpicyLevel
	}
}
