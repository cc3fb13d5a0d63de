package service

import (
	"github.com/guttosm/food-order-service/internal/domain/model"
)

// LineBreakdown is the price contribution of one cart line.
type LineBreakdown struct {
	LineID          string
	ItemID          string
	BasePrice       int64
	IngredientPrice int64
	Price           int64
}

// PriceBreakdown lists per-line prices in cart order with their sum.
type PriceBreakdown struct {
	Lines []LineBreakdown
	Total int64
}

// PriceCalculator computes prices of cart lines. All amounts are integer won.
type PriceCalculator interface {
	// LinePrice is the base price plus the price of every selected ingredient.
	LinePrice(item model.MenuItem) int64
	// TotalPrice sums the line prices; the result does not depend on line order.
	TotalPrice(lines []model.CartLine) int64
	// Breakdown returns per-line prices and the total.
	Breakdown(lines []model.CartLine) PriceBreakdown
}

// PriceCalculatorImpl implements PriceCalculator.
type PriceCalculatorImpl struct{}

// NewPriceCalculator creates a price calculator.
func NewPriceCalculator() PriceCalculator {
	return &PriceCalculatorImpl{}
}

func (p *PriceCalculatorImpl) LinePrice(item model.MenuItem) int64 {
	return model.LinePrice(item)
}

func (p *PriceCalculatorImpl) TotalPrice(lines []model.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += model.LinePrice(l.Item)
	}
	return total
}

func (p *PriceCalculatorImpl) Breakdown(lines []model.CartLine) PriceBreakdown {
	out := PriceBreakdown{Lines: make([]LineBreakdown, len(lines))}
	for i, l := range lines {
		base := l.Item.Base().BasePrice
		price := model.LinePrice(l.Item)
		out.Lines[i] = LineBreakdown{
			LineID:          l.ID,
			ItemID:          l.Item.Base().ID,
			BasePrice:       base,
			IngredientPrice: price - base,
			Price:           price,
		}
		out.Total += price
	}
	return out
}
