//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/food-order-service/internal/domain/model"
)

var (
	beef = model.Ingredient{ID: "ing-beef", Name: "소고기", Price: 3000}
	tofu = model.Ingredient{ID: "ing-tofu", Name: "두부", Price: 500}
)

func mustItem(t *testing.T, itemID string) model.MenuItem {
	t.Helper()
	item, err := NewCatalogService(nil).Get(itemID)
	require.NoError(t, err)
	return item
}

func TestCustomizationTracker_ToggleIngredient(t *testing.T) {
	t.Run("adds then removes", func(t *testing.T) {
		tr := NewCustomizationTracker(nil)

		st := tr.ToggleIngredient("custom-001", beef)
		assert.Equal(t, []model.Ingredient{beef}, st.SelectedIngredients)

		st = tr.ToggleIngredient("custom-001", beef)
		assert.Empty(t, st.SelectedIngredients)
		assert.Equal(t, 1, tr.Len())
	})

	t.Run("toggling twice restores the previous state", func(t *testing.T) {
		tr := NewCustomizationTracker(nil)
		tr.ToggleIngredient("custom-001", tofu)
		_, err := tr.SetSpicyLevel("custom-001", 2)
		require.NoError(t, err)
		before := tr.State("custom-001")

		tr.ToggleIngredient("custom-001", beef)
		after := tr.ToggleIngredient("custom-001", beef)

		assert.True(t, before.Equal(after))
	})

	t.Run("toggling twice on an untouched item restores the default state", func(t *testing.T) {
		tr := NewCustomizationTracker(NewCatalogService(nil).SpicyDefault)
		before := tr.State("custom-001")
		require.NotNil(t, before.SpicyLevel)

		first := tr.ToggleIngredient("custom-001", beef)
		require.NotNil(t, first.SpicyLevel, "the first mutation starts from the catalog default")
		assert.Equal(t, model.SpicyLevel(1), *first.SpicyLevel)

		after := tr.ToggleIngredient("custom-001", beef)
		assert.True(t, before.Equal(after), "before %+v, after %+v", before, after)
		assert.True(t, before.Equal(tr.State("custom-001")))
	})

	t.Run("the first spice level change keeps an empty selection", func(t *testing.T) {
		tr := NewCustomizationTracker(NewCatalogService(nil).SpicyDefault)

		st, err := tr.SetSpicyLevel("custom-001", 2)
		require.NoError(t, err)
		assert.NotNil(t, st.SelectedIngredients)
		assert.Empty(t, st.SelectedIngredients)
	})

	t.Run("keeps the spice level", func(t *testing.T) {
		tr := NewCustomizationTracker(nil)
		_, err := tr.SetSpicyLevel("custom-001", 3)
		require.NoError(t, err)

		st := tr.ToggleIngredient("custom-001", beef)
		require.NotNil(t, st.SpicyLevel)
		assert.Equal(t, model.SpicyLevel(3), *st.SpicyLevel)
	})

	t.Run("unknown item ids are tracked", func(t *testing.T) {
		tr := NewCustomizationTracker(nil)
		st := tr.ToggleIngredient("no-such-item", beef)
		assert.Len(t, st.SelectedIngredients, 1)
	})

	t.Run("returned state does not alias tracked state", func(t *testing.T) {
		tr := NewCustomizationTracker(nil)
		st := tr.ToggleIngredient("custom-001", beef)
		st.SelectedIngredients[0].Price = 1

		assert.Equal(t, int64(3000), tr.State("custom-001").SelectedIngredients[0].Price)
	})
}

func TestCustomizationTracker_SetSpicyLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   model.SpicyLevel
		wantErr error
	}{
		{name: "mild", level: 0},
		{name: "hottest", level: 3},
		{name: "out of range", level: 4, wantErr: ErrInvalidSpicyLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewCustomizationTracker(nil)
			st, err := tr.SetSpicyLevel("custom-001", tt.level)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, tr.Len())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, st.SpicyLevel)
			assert.Equal(t, tt.level, *st.SpicyLevel)
			assert.NotNil(t, st.SelectedIngredients)
			assert.Empty(t, st.SelectedIngredients)
		})
	}

	t.Run("leaves the selection untouched", func(t *testing.T) {
		tr := NewCustomizationTracker(nil)
		tr.ToggleIngredient("custom-001", beef)

		st, err := tr.SetSpicyLevel("custom-001", 2)
		require.NoError(t, err)
		assert.Equal(t, []model.Ingredient{beef}, st.SelectedIngredients)
	})
}

func TestCustomizationTracker_State(t *testing.T) {
	defaults := func(itemID string) *model.SpicyLevel {
		if itemID == "custom-001" {
			return model.SpicyLevel(1).Ptr()
		}
		return nil
	}

	t.Run("default state uses the catalog spice level", func(t *testing.T) {
		tr := NewCustomizationTracker(defaults)
		st := tr.State("custom-001")

		assert.NotNil(t, st.SelectedIngredients)
		assert.Empty(t, st.SelectedIngredients)
		require.NotNil(t, st.SpicyLevel)
		assert.Equal(t, model.SpicyLevel(1), *st.SpicyLevel)
		assert.Equal(t, 0, tr.Len(), "reading does not create state")
	})

	t.Run("default state without defaults", func(t *testing.T) {
		tr := NewCustomizationTracker(nil)
		assert.Nil(t, tr.State("custom-001").SpicyLevel)
	})

	t.Run("tracked state wins over defaults", func(t *testing.T) {
		tr := NewCustomizationTracker(defaults)
		_, err := tr.SetSpicyLevel("custom-001", 0)
		require.NoError(t, err)
		assert.Equal(t, model.SpicyLevel(0), *tr.State("custom-001").SpicyLevel)
	})
}

func TestCustomizationTracker_Discard(t *testing.T) {
	tr := NewCustomizationTracker(nil)
	tr.ToggleIngredient("custom-001", beef)
	tr.ToggleIngredient("custom-002", tofu)

	assert.NotNil(t, tr.Tracked("custom-001"))
	tr.Discard("custom-001")
	assert.Nil(t, tr.Tracked("custom-001"))
	assert.Equal(t, 1, tr.Len())
}
