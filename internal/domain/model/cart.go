package model

import (
	"encoding/json"
	"time"
)

// CartLine is one committed, immutable entry of a cart. Item is a snapshot taken at commit
// time and never references catalog or customization state.
//
// @Description Committed cart entry with its price contribution
type CartLine struct {
	ID          string    `json:"id" example:"01HZX3Q4K8V6C2M9T7R5N1B0YA"`
	Item        MenuItem  `json:"item" swaggertype:"object"`
	CommittedAt time.Time `json:"committed_at" example:"2025-01-28T10:00:00Z"`
}

// Price is the line's contribution to the cart total.
func (l CartLine) Price() int64 {
	return LinePrice(l.Item)
}

// MarshalJSON includes the computed price alongside the line.
func (l CartLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string    `json:"id"`
		Item        MenuItem  `json:"item"`
		Price       int64     `json:"price"`
		CommittedAt time.Time `json:"committed_at"`
	}{ID: l.ID, Item: l.Item, Price: l.Price(), CommittedAt: l.CommittedAt})
}

// UnmarshalJSON decodes the item through its "type" discriminator.
func (l *CartLine) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string          `json:"id"`
		Item        json.RawMessage `json:"item"`
		CommittedAt time.Time       `json:"committed_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	item, err := DecodeMenuItem(raw.Item)
	if err != nil {
		return err
	}
	l.ID = raw.ID
	l.Item = item
	l.CommittedAt = raw.CommittedAt
	return nil
}

// LinePrice is the base price plus, for customizable items, every selected ingredient.
func LinePrice(item MenuItem) int64 {
	return Fold(item,
		func(f FixedItem) int64 { return f.BasePrice },
		func(c CustomizableItem) int64 {
			total := c.BasePrice
			for _, ing := range c.SelectedIngredients {
				total += ing.Price
			}
			return total
		},
	)
}

// Cart is the ordered, append-only sequence of committed lines of one session.
// It is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make([]CartLine, 0, 8)}
}

// Append adds a line at the end of the cart.
func (c *Cart) Append(line CartLine) {
	c.lines = append(c.lines, line)
}

// Len is the number of committed lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns deep copies of the lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, l := range c.lines {
		out[i] = CartLine{ID: l.ID, Item: l.Item.CloneItem(), CommittedAt: l.CommittedAt}
	}
	return out
}

// Total sums the price of every line.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Price()
	}
	return total
}
