package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/food-order-service/internal/domain/model"
)

// Session is one customer's ordering session: a customization tracker and a cart guarded
// by a single mutex, so every operation on a session is serialized.
type Session struct {
	id        string
	createdAt time.Time

	mu      sync.Mutex
	tracker *CustomizationTracker
	cart    *model.Cart
}

// NewSession creates a session with a random id. defaults may be nil.
func NewSession(defaults SpicyDefaultFunc) *Session {
	return &Session{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
		tracker:   NewCustomizationTracker(defaults),
		cart:      model.NewCart(),
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// CreatedAt returns when the session started.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// ToggleIngredient flips the ingredient in the item's tracked selection.
func (s *Session) ToggleIngredient(itemID string, ingredient model.Ingredient) model.CustomizationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.ToggleIngredient(itemID, ingredient)
}

// SetSpicyLevel sets the item's tracked spice level.
func (s *Session) SetSpicyLevel(itemID string, level model.SpicyLevel) (model.CustomizationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.SetSpicyLevel(itemID, level)
}

// Customization returns the item's tracked state or its default.
func (s *Session) Customization(itemID string) model.CustomizationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.State(itemID)
}

// Commit appends a snapshot of item to the cart and discards the item's tracked state.
// Fields set in override replace the tracked ones.
func (s *Session) Commit(item model.MenuItem, override *model.CustomizationState) model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemID := item.Base().ID
	state := s.tracker.Tracked(itemID)
	if override != nil {
		if state == nil {
			state = &model.CustomizationState{}
		}
		if override.SelectedIngredients != nil {
			state.SelectedIngredients = append([]model.Ingredient{}, override.SelectedIngredients...)
		}
		if override.SpicyLevel != nil {
			state.SpicyLevel = override.SpicyLevel.Clone()
		}
	}

	line := Commit(item, state)
	s.cart.Append(line)
	s.tracker.Discard(itemID)
	return line
}

// Lines returns copies of the cart lines in commit order.
func (s *Session) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Total is the sum of the cart's line prices.
func (s *Session) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// CartLen is the number of committed lines.
func (s *Session) CartLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Len()
}

// PendingCustomizations is the number of items with uncommitted customization.
func (s *Session) PendingCustomizations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Len()
}
