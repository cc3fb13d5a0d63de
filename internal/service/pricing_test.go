//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/food-order-service/internal/domain/model"
)

func TestPriceCalculator_LinePrice(t *testing.T) {
	calc := NewPriceCalculator()

	tests := []struct {
		name  string
		item  model.MenuItem
		state *model.CustomizationState
		want  int64
	}{
		{name: "fixed item is its base price", item: mustItem(t, "fixed-001"), want: 8000},
		{name: "customizable without add-ons", item: mustItem(t, "custom-001"), want: 6000},
		{
			name:  "customizable with beef and tofu",
			item:  mustItem(t, "custom-001"),
			state: &model.CustomizationState{SelectedIngredients: []model.Ingredient{beef, tofu}, SpicyLevel: model.SpicyLevel(2).Ptr()},
			want:  9500,
		},
		{
			name:  "selection order does not matter",
			item:  mustItem(t, "custom-001"),
			state: &model.CustomizationState{SelectedIngredients: []model.Ingredient{tofu, beef}},
			want:  9500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.LinePrice(Snapshot(tt.item, tt.state)))
		})
	}
}

func TestPriceCalculator_TotalPrice(t *testing.T) {
	calc := NewPriceCalculator()
	custom := Commit(mustItem(t, "custom-001"), &model.CustomizationState{
		SelectedIngredients: []model.Ingredient{beef, tofu},
		SpicyLevel:          model.SpicyLevel(2).Ptr(),
	})
	drink := Commit(mustItem(t, "fixed-003"), nil)

	tests := []struct {
		name  string
		lines []model.CartLine
		want  int64
	}{
		{name: "empty cart", lines: nil, want: 0},
		{name: "single fixed line", lines: []model.CartLine{drink}, want: 2000},
		{name: "customized and fixed", lines: []model.CartLine{custom, drink}, want: 11500},
		{name: "order independent", lines: []model.CartLine{drink, custom}, want: 11500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.TotalPrice(tt.lines))
		})
	}
}

func TestPriceCalculator_Breakdown(t *testing.T) {
	calc := NewPriceCalculator()
	custom := Commit(mustItem(t, "custom-001"), &model.CustomizationState{SelectedIngredients: []model.Ingredient{beef, tofu}})
	drink := Commit(mustItem(t, "fixed-003"), nil)

	got := calc.Breakdown([]model.CartLine{custom, drink})

	require.Len(t, got.Lines, 2)
	assert.Equal(t, LineBreakdown{LineID: custom.ID, ItemID: "custom-001", BasePrice: 6000, IngredientPrice: 3500, Price: 9500}, got.Lines[0])
	assert.Equal(t, LineBreakdown{LineID: drink.ID, ItemID: "fixed-003", BasePrice: 2000, IngredientPrice: 0, Price: 2000}, got.Lines[1])
	assert.Equal(t, int64(11500), got.Total)
}
