// Package service contains the ordering logic of the food order service: customization
// tracking, commit, pricing, sessions and the catalog.
package service

import (
	"github.com/guttosm/food-order-service/internal/domain/model"
)

// SpicyDefaultFunc returns the catalog default spice level of an item, or nil.
type SpicyDefaultFunc func(itemID string) *model.SpicyLevel

// CustomizationTracker holds the in-progress customization of each item a session is
// building. States are created on first mutation, starting from the default state, and
// removed by Discard.
//
// It is not safe for concurrent use; Session serializes access.
type CustomizationTracker struct {
	states   map[string]*model.CustomizationState
	defaults SpicyDefaultFunc
}

// NewCustomizationTracker creates an empty tracker. defaults may be nil.
func NewCustomizationTracker(defaults SpicyDefaultFunc) *CustomizationTracker {
	return &CustomizationTracker{
		states:   make(map[string]*model.CustomizationState),
		defaults: defaults,
	}
}

// ToggleIngredient adds the ingredient to the item's selection when absent and removes it
// when present, keeping the current spice level. Any item id is accepted.
func (t *CustomizationTracker) ToggleIngredient(itemID string, ingredient model.Ingredient) model.CustomizationState {
	st := t.stateFor(itemID)
	st.Toggle(ingredient)
	return st.Clone()
}

// SetSpicyLevel overwrites the item's spice level and leaves the selection untouched.
func (t *CustomizationTracker) SetSpicyLevel(itemID string, level model.SpicyLevel) (model.CustomizationState, error) {
	if !level.Valid() {
		return model.CustomizationState{}, ErrInvalidSpicyLevel
	}
	st := t.stateFor(itemID)
	st.SpicyLevel = level.Ptr()
	return st.Clone(), nil
}

// State returns a copy of the item's state, or the default state when nothing was
// tracked yet. It never creates state.
func (t *CustomizationTracker) State(itemID string) model.CustomizationState {
	if st, ok := t.states[itemID]; ok {
		return st.Clone()
	}
	return t.defaultState(itemID)
}

// defaultState is an empty selection with the catalog default spice level.
func (t *CustomizationTracker) defaultState(itemID string) model.CustomizationState {
	def := model.CustomizationState{SelectedIngredients: []model.Ingredient{}}
	if t.defaults != nil {
		def.SpicyLevel = t.defaults(itemID).Clone()
	}
	return def
}

// Tracked returns the raw tracked state, or nil when the item has none.
func (t *CustomizationTracker) Tracked(itemID string) *model.CustomizationState {
	st, ok := t.states[itemID]
	if !ok {
		return nil
	}
	c := st.Clone()
	return &c
}

// Discard drops the item's state.
func (t *CustomizationTracker) Discard(itemID string) {
	delete(t.states, itemID)
}

// Len is the number of items with tracked state.
func (t *CustomizationTracker) Len() int {
	return len(t.states)
}

func (t *CustomizationTracker) stateFor(itemID string) *model.CustomizationState {
	st, ok := t.states[itemID]
	if !ok {
		def := t.defaultState(itemID)
		st = &def
		t.states[itemID] = st
	}
	return st
}
