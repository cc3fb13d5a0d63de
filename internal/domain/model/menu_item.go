// Package model defines the core domain entities for the food order service.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Category groups menu items on the menu board.
type Category string

const (
	CategoryMain  Category = "main"
	CategorySide  Category = "side"
	CategoryDrink Category = "drink"
)

// Size is the portion size of a fixed menu item.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// ItemType is the wire discriminator of a MenuItem variant.
type ItemType string

const (
	ItemTypeFixed        ItemType = "fixed"
	ItemTypeCustomizable ItemType = "customizable"
)

// ErrUnknownItemType is returned when decoding a menu item with an unsupported type tag.
var ErrUnknownItemType = errors.New("unknown menu item type")

// Ingredient is an add-on offered by a customizable menu item.
//
// @Description Add-on ingredient with its price in won
// @Example {"id": "ing-beef", "name": "소고기", "price": 3000}
type Ingredient struct {
	ID    string `json:"id" bson:"id" example:"ing-beef"`
	Name  string `json:"name" bson:"name" example:"소고기"`
	Price int64  `json:"price" bson:"price" example:"3000"`
}

// ItemBase holds the fields shared by every menu item variant.
type ItemBase struct {
	ID        string   `json:"id" example:"custom-001"`
	Name      string   `json:"name" example:"셀프 마라탕"`
	BasePrice int64    `json:"base_price" example:"6000"`
	Category  Category `json:"category" example:"main"`
}

// MenuItem is an orderable catalog entry. It is implemented only by FixedItem and
// CustomizableItem.
type MenuItem interface {
	Base() ItemBase
	Type() ItemType
	Accept(v MenuItemVisitor)
	// CloneItem returns a deep copy sharing no slices or pointers with the receiver.
	CloneItem() MenuItem
	sealed()
}

// MenuItemVisitor dispatches over every MenuItem variant. Adding a variant adds a method
// here, so every implementation must handle it.
type MenuItemVisitor interface {
	VisitFixed(item FixedItem)
	VisitCustomizable(item CustomizableItem)
}

type foldVisitor[T any] struct {
	onFixed        func(FixedItem) T
	onCustomizable func(CustomizableItem) T
	result         T
}

func (f *foldVisitor[T]) VisitFixed(item FixedItem) { f.result = f.onFixed(item) }

func (f *foldVisitor[T]) VisitCustomizable(item CustomizableItem) {
	f.result = f.onCustomizable(item)
}

// Fold maps item to a value, requiring a branch for each variant.
func Fold[T any](item MenuItem, onFixed func(FixedItem) T, onCustomizable func(CustomizableItem) T) T {
	v := &foldVisitor[T]{onFixed: onFixed, onCustomizable: onCustomizable}
	item.Accept(v)
	return v.result
}

// FixedItem is a menu item with no customization.
type FixedItem struct {
	ItemBase
	Size  *Size `json:"size,omitempty" example:"medium"`
	Spicy *bool `json:"spicy,omitempty"`
}

func (i FixedItem) Base() ItemBase { return i.ItemBase }
func (i FixedItem) Type() ItemType { return ItemTypeFixed }
func (i FixedItem) Accept(v MenuItemVisitor) { v.VisitFixed(i) }
func (i FixedItem) CloneItem() MenuItem { return i.Clone() }
func (FixedItem) sealed() {}

// Clone returns a copy of the item with its own optional fields.
func (i FixedItem) Clone() FixedItem {
	out := i
	if i.Size != nil {
		s := *i.Size
		out.Size = &s
	}
	if i.Spicy != nil {
		b := *i.Spicy
		out.Spicy = &b
	}
	return out
}

// MarshalJSON adds the "type" discriminator.
func (i FixedItem) MarshalJSON() ([]byte, error) {
	type alias FixedItem
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		alias
	}{Type: ItemTypeFixed, alias: alias(i)})
}

// CustomizableItem is a menu item priced by its selected ingredients.
type CustomizableItem struct {
	ItemBase
	AvailableIngredients []Ingredient `json:"available_ingredients"`
	SelectedIngredients  []Ingredient `json:"selected_ingredients"`
	SpicyLevel           *SpicyLevel  `json:"spicy_level,omitempty" example:"1"`
}

func (i CustomizableItem) Base() ItemBase { return i.ItemBase }
func (i CustomizableItem) Type() ItemType { return ItemTypeCustomizable }
func (i CustomizableItem) Accept(v MenuItemVisitor) { v.VisitCustomizable(i) }
func (i CustomizableItem) CloneItem() MenuItem { return i.Clone() }
func (CustomizableItem) sealed() {}

// Clone returns a copy of the item with its own ingredient slices and spice level.
func (i CustomizableItem) Clone() CustomizableItem {
	out := i
	out.AvailableIngredients = cloneIngredients(i.AvailableIngredients)
	out.SelectedIngredients = cloneIngredients(i.SelectedIngredients)
	out.SpicyLevel = i.SpicyLevel.Clone()
	return out
}

// Offers reports whether ingredientID is among the available ingredients.
func (i CustomizableItem) Offers(ingredientID string) (Ingredient, bool) {
	for _, ing := range i.AvailableIngredients {
		if ing.ID == ingredientID {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// MarshalJSON adds the "type" discriminator and never emits null ingredient lists.
func (i CustomizableItem) MarshalJSON() ([]byte, error) {
	type alias CustomizableItem
	a := alias(i)
	if a.AvailableIngredients == nil {
		a.AvailableIngredients = []Ingredient{}
	}
	if a.SelectedIngredients == nil {
		a.SelectedIngredients = []Ingredient{}
	}
	return json.Marshal(struct {
		Type ItemType `json:"type"`
		alias
	}{Type: ItemTypeCustomizable, alias: a})
}

// DecodeMenuItem decodes a JSON menu item using its "type" discriminator.
func DecodeMenuItem(data []byte) (MenuItem, error) {
	var head struct {
		Type ItemType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case ItemTypeFixed:
		var item FixedItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		return item, nil
	case ItemTypeCustomizable:
		var item CustomizableItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, err
		}
		return item, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, head.Type)
	}
}

func cloneIngredients(in []Ingredient) []Ingredient {
	if in == nil {
		return nil
	}
	out := make([]Ingredient, len(in))
	copy(out, in)
	return out
}
