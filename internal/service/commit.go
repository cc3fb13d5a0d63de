package service

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/guttosm/food-order-service/internal/domain/model"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// newLineID returns a ULID so line ids sort in commit order.
func newLineID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Snapshot builds the item a cart line will hold: a deep copy of item with state applied.
//
// Fixed items ignore state. For customizable items each field of state falls back to the
// item's own value when state is nil or the field is unset; an explicitly empty selection
// is kept.
func Snapshot(item model.MenuItem, state *model.CustomizationState) model.MenuItem {
	return model.Fold(item,
		func(f model.FixedItem) model.MenuItem { return f.Clone() },
		func(c model.CustomizableItem) model.MenuItem {
			out := c.Clone()
			if state == nil {
				return out
			}
			if state.SelectedIngredients != nil {
				out.SelectedIngredients = append([]model.Ingredient{}, state.SelectedIngredients...)
			}
			if state.SpicyLevel != nil {
				out.SpicyLevel = state.SpicyLevel.Clone()
			}
			return out
		},
	)
}

// Commit turns an item and its customization into an immutable cart line.
func Commit(item model.MenuItem, state *model.CustomizationState) model.CartLine {
	now := time.Now().UTC()
	return model.CartLine{
		ID:          newLineID(now),
		Item:        Snapshot(item, state),
		CommittedAt: now,
	}
}
