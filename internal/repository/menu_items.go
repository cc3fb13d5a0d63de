package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/food-order-service/internal/domain/model"
)

// ErrMenuItemNotFound is returned when no document matches an item id.
var ErrMenuItemNotFound = errors.New("menu item document not found")

// MenuItemDocument is the flat storage shape of both menu item variants. Type selects
// which optional fields are meaningful.
type MenuItemDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	ItemID               string             `bson:"item_id"`
	Type                 string             `bson:"type"`
	Name                 string             `bson:"name"`
	BasePrice            int64              `bson:"base_price"`
	Category             string             `bson:"category"`
	Position             int                `bson:"position"`
	Size                 *string            `bson:"size,omitempty"`
	Spicy                *bool              `bson:"spicy,omitempty"`
	AvailableIngredients []model.Ingredient `bson:"available_ingredients,omitempty"`
	SpicyLevel           *int               `bson:"spicy_level,omitempty"`
	CreatedAt            time.Time          `bson:"created_at"`
}

// NewMenuItemDocument flattens a menu item for storage. Position keeps menu board order.
func NewMenuItemDocument(item model.MenuItem, position int) *MenuItemDocument {
	base := item.Base()
	doc := &MenuItemDocument{
		ItemID:    base.ID,
		Type:      string(item.Type()),
		Name:      base.Name,
		BasePrice: base.BasePrice,
		Category:  string(base.Category),
		Position:  position,
	}
	item.Accept(&documentFiller{doc: doc})
	return doc
}

type documentFiller struct {
	doc *MenuItemDocument
}

func (f *documentFiller) VisitFixed(item model.FixedItem) {
	if item.Size != nil {
		s := string(*item.Size)
		f.doc.Size = &s
	}
	if item.Spicy != nil {
		b := *item.Spicy
		f.doc.Spicy = &b
	}
}

func (f *documentFiller) VisitCustomizable(item model.CustomizableItem) {
	f.doc.AvailableIngredients = append([]model.Ingredient(nil), item.AvailableIngredients...)
	if item.SpicyLevel != nil {
		l := int(*item.SpicyLevel)
		f.doc.SpicyLevel = &l
	}
}

// ToModel rebuilds the domain variant named by Type.
func (d *MenuItemDocument) ToModel() (model.MenuItem, error) {
	base := model.ItemBase{
		ID:        d.ItemID,
		Name:      d.Name,
		BasePrice: d.BasePrice,
		Category:  model.Category(d.Category),
	}

	switch model.ItemType(d.Type) {
	case model.ItemTypeFixed:
		item := model.FixedItem{ItemBase: base}
		if d.Size != nil {
			s := model.Size(*d.Size)
			item.Size = &s
		}
		if d.Spicy != nil {
			b := *d.Spicy
			item.Spicy = &b
		}
		return item, nil
	case model.ItemTypeCustomizable:
		item := model.CustomizableItem{
			ItemBase:             base,
			AvailableIngredients: append([]model.Ingredient(nil), d.AvailableIngredients...),
		}
		if d.SpicyLevel != nil {
			level, err := model.ParseSpicyLevel(*d.SpicyLevel)
			if err != nil {
				return nil, fmt.Errorf("menu item %s: %w", d.ItemID, err)
			}
			item.SpicyLevel = &level
		}
		return item, nil
	default:
		return nil, fmt.Errorf("menu item %s: %w: %q", d.ItemID, model.ErrUnknownItemType, d.Type)
	}
}

// MenuItemsRepository provides access to the menu_items collection.
type MenuItemsRepository struct {
	collection *mongo.Collection
}

// NewMenuItemsRepository creates a new menu items repository.
func NewMenuItemsRepository(db *MongoDB) *MenuItemsRepository {
	return &MenuItemsRepository{
		collection: db.MenuItems,
	}
}

// List returns every menu item document in menu board order.
func (r *MenuItemsRepository) List(ctx context.Context) ([]*MenuItemDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "item_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []*MenuItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByItemID returns the document for a catalog id or ErrMenuItemNotFound.
func (r *MenuItemsRepository) FindByItemID(ctx context.Context, itemID string) (*MenuItemDocument, error) {
	var doc MenuItemDocument
	err := r.collection.FindOne(ctx, bson.M{"item_id": itemID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Count returns the number of stored menu items.
func (r *MenuItemsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Seed inserts the documents whose item_id is not stored yet and leaves existing ones
// untouched. It returns how many documents were inserted.
func (r *MenuItemsRepository) Seed(ctx context.Context, docs []*MenuItemDocument) (int64, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	now := time.Now()
	writes := make([]mongo.WriteModel, len(docs))
	for i, doc := range docs {
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = now
		}
		insert := *doc
		insert.ID = primitive.NilObjectID
		writes[i] = mongo.NewUpdateOneModel().
			SetFilter(bson.M{"item_id": doc.ItemID}).
			SetUpdate(bson.M{"$setOnInsert": insert}).
			SetUpsert(true)
	}

	result, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return result.UpsertedCount, nil
}
