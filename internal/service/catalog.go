package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/food-order-service/internal/domain/model"
	"github.com/guttosm/food-order-service/internal/repository"
)

// DefaultCatalog returns the built-in menu in menu board order.
func DefaultCatalog() []model.MenuItem {
	medium := model.SizeMedium
	notSpicy := false
	return []model.MenuItem{
		model.FixedItem{
			ItemBase: model.ItemBase{ID: "fixed-001", Name: "계란 볶음밥", BasePrice: 8000, Category: model.CategoryMain},
			Spicy:    &notSpicy,
		},
		model.FixedItem{
			ItemBase: model.ItemBase{ID: "fixed-002", Name: "꿔바로우 (중)", BasePrice: 15000, Category: model.CategorySide},
			Size:     &medium,
		},
		model.FixedItem{
			ItemBase: model.ItemBase{ID: "fixed-003", Name: "콜라", BasePrice: 2000, Category: model.CategoryDrink},
		},
		model.CustomizableItem{
			ItemBase: model.ItemBase{ID: "custom-001", Name: "셀프 마라탕", BasePrice: 6000, Category: model.CategoryMain},
			AvailableIngredients: []model.Ingredient{
				{ID: "ing-beef", Name: "소고기", Price: 3000},
				{ID: "ing-pork", Name: "돼지고기", Price: 2500},
				{ID: "ing-mushroom", Name: "버섯", Price: 1000},
				{ID: "ing-tofu", Name: "두부", Price: 500},
				{ID: "ing-cabbage", Name: "배추", Price: 700},
				{ID: "ing-fishball", Name: "어묵", Price: 1200},
			},
			SelectedIngredients: []model.Ingredient{},
			SpicyLevel:          model.SpicyLevel(1).Ptr(),
		},
	}
}

// CatalogService provides read access to the menu.
type CatalogService interface {
	// List returns copies of every menu item in menu board order.
	List() []model.MenuItem
	// Get returns a copy of the item or ErrItemNotFound.
	Get(itemID string) (model.MenuItem, error)
	// SpicyDefault returns the catalog default spice level of a customizable item.
	SpicyDefault(itemID string) *model.SpicyLevel
	// Source reports where the catalog was loaded from: "builtin" or "mongodb".
	Source() string
}

// Catalog sources.
const (
	CatalogSourceBuiltin = "builtin"
	CatalogSourceMongoDB = "mongodb"
)

// CatalogServiceImpl implements CatalogService over an immutable item list.
type CatalogServiceImpl struct {
	items  []model.MenuItem
	byID   map[string]model.MenuItem
	source string
}

// NewCatalogService creates a catalog from items. A nil slice selects the built-in menu.
func NewCatalogService(items []model.MenuItem) CatalogService {
	if items == nil {
		return newCatalog(DefaultCatalog(), CatalogSourceBuiltin)
	}
	return newCatalog(items, CatalogSourceBuiltin)
}

// LoadCatalog reads the catalog from the repository, seeding it with the built-in menu
// when the collection is empty. Any repository failure falls back to the built-in menu.
func LoadCatalog(ctx context.Context, repo repository.MenuItemsRepositoryInterface) CatalogService {
	if repo == nil {
		return NewCatalogService(nil)
	}

	items, err := loadCatalog(ctx, repo)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load catalog from MongoDB, using built-in menu")
		return NewCatalogService(nil)
	}
	return newCatalog(items, CatalogSourceMongoDB)
}

func loadCatalog(ctx context.Context, repo repository.MenuItemsRepositoryInterface) ([]model.MenuItem, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}

	if count == 0 {
		defaults := DefaultCatalog()
		docs := make([]*repository.MenuItemDocument, len(defaults))
		for i, item := range defaults {
			docs[i] = repository.NewMenuItemDocument(item, i)
		}
		inserted, err := repo.Seed(ctx, docs)
		if err != nil {
			return nil, fmt.Errorf("seed menu items: %w", err)
		}
		log.Info().Int64("inserted", inserted).Msg("Seeded menu items")
	}

	docs, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("list menu items: %w", ErrItemNotFound)
	}

	items := make([]model.MenuItem, 0, len(docs))
	for _, doc := range docs {
		item, err := doc.ToModel()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func newCatalog(items []model.MenuItem, source string) *CatalogServiceImpl {
	c := &CatalogServiceImpl{
		items:  make([]model.MenuItem, 0, len(items)),
		byID:   make(map[string]model.MenuItem, len(items)),
		source: source,
	}
	for _, item := range items {
		id := item.Base().ID
		if _, dup := c.byID[id]; dup {
			log.Warn().Str("item_id", id).Msg("Duplicate menu item id ignored")
			continue
		}
		stored := item.CloneItem()
		c.items = append(c.items, stored)
		c.byID[id] = stored
	}
	return c
}

func (c *CatalogServiceImpl) List() []model.MenuItem {
	out := make([]model.MenuItem, len(c.items))
	for i, item := range c.items {
		out[i] = item.CloneItem()
	}
	return out
}

func (c *CatalogServiceImpl) Get(itemID string) (model.MenuItem, error) {
	item, ok := c.byID[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item.CloneItem(), nil
}

func (c *CatalogServiceImpl) SpicyDefault(itemID string) *model.SpicyLevel {
	item, ok := c.byID[itemID]
	if !ok {
		return nil
	}
	return model.Fold(item,
		func(model.FixedItem) *model.SpicyLevel { return nil },
		func(ci model.CustomizableItem) *model.SpicyLevel { return ci.SpicyLevel.Clone() },
	)
}

func (c *CatalogServiceImpl) Source() string {
	return c.source
}
