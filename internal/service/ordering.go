package service

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/domain/model"
	"github.com/guttosm/food-order-service/internal/metrics"
)

// OrderingConfig holds configuration for the ordering service.
type OrderingConfig struct {
	// StrictValidation rejects unknown items and ingredients instead of accepting them.
	StrictValidation bool
}

// CartSummary is a session cart with its priced breakdown.
type CartSummary struct {
	Lines     []model.CartLine
	Breakdown PriceBreakdown
}

// OrderingService is the application entry point used by the HTTP layer.
type OrderingService interface {
	// Menu returns the catalog in menu board order.
	Menu() []model.MenuItem
	// MenuItem returns one catalog item or ErrItemNotFound.
	MenuItem(itemID string) (model.MenuItem, error)

	// StartSession creates a session and signs its token.
	StartSession() (*dto.SessionResponse, error)
	// EndSession drops the session with its cart and customizations.
	EndSession(sessionID string) error
	// Authenticate validates a session token and returns the live session id.
	Authenticate(token string) (string, error)

	// Customization returns the item's in-progress customization.
	Customization(sessionID, itemID string) (model.CustomizationState, error)
	// ToggleIngredient adds or removes an ingredient from the item's selection.
	ToggleIngredient(sessionID, itemID, ingredientID string) (model.CustomizationState, error)
	// SetSpicyLevel sets the item's spice level; level must be within 0..3.
	SetSpicyLevel(sessionID, itemID string, level int) (model.CustomizationState, error)

	// Commit snapshots the item into the session cart.
	Commit(sessionID string, req dto.CommitRequest) (model.CartLine, error)
	// Cart returns the session cart lines with their prices.
	Cart(sessionID string) (*CartSummary, error)
	// Total returns the session cart total.
	Total(sessionID string) (int64, error)
}

// OrderingServiceImpl implements OrderingService.
type OrderingServiceImpl struct {
	catalog  CatalogService
	sessions SessionStore
	tokens   TokenService
	pricing  PriceCalculator
	strict   bool
}

// NewOrderingService creates a new ordering service.
func NewOrderingService(catalog CatalogService, sessions SessionStore, tokens TokenService, cfg OrderingConfig) OrderingService {
	return &OrderingServiceImpl{
		catalog:  catalog,
		sessions: sessions,
		tokens:   tokens,
		pricing:  NewPriceCalculator(),
		strict:   cfg.StrictValidation,
	}
}

func (s *OrderingServiceImpl) Menu() []model.MenuItem {
	return s.catalog.List()
}

func (s *OrderingServiceImpl) MenuItem(itemID string) (model.MenuItem, error) {
	return s.catalog.Get(itemID)
}

func (s *OrderingServiceImpl) StartSession() (*dto.SessionResponse, error) {
	session := s.sessions.Create()

	token, err := s.tokens.Generate(session.ID())
	if err != nil {
		_ = s.sessions.End(session.ID())
		return nil, err
	}

	log.Debug().Str("session_id", session.ID()).Msg("Session started")
	return &dto.SessionResponse{
		SessionID: session.ID(),
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (s *OrderingServiceImpl) EndSession(sessionID string) error {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	lines, total := session.CartLen(), session.Total()
	if err := s.sessions.End(sessionID); err != nil {
		return err
	}

	log.Info().
		Str("session_id", sessionID).
		Dur("age", sessionAge(session)).
		Int("cart_lines", lines).
		Int64("cart_total", total).
		Msg("Session ended")
	return nil
}

func (s *OrderingServiceImpl) Authenticate(token string) (string, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return "", err
	}
	if _, err := s.sessions.Get(claims.SessionID); err != nil {
		return "", err
	}
	return claims.SessionID, nil
}

func (s *OrderingServiceImpl) Customization(sessionID, itemID string) (model.CustomizationState, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return model.CustomizationState{}, err
	}
	if s.strict {
		if _, err := s.customizableItem(itemID); err != nil {
			return model.CustomizationState{}, err
		}
	}
	return session.Customization(itemID), nil
}

func (s *OrderingServiceImpl) ToggleIngredient(sessionID, itemID, ingredientID string) (model.CustomizationState, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return model.CustomizationState{}, err
	}
	if strings.TrimSpace(ingredientID) == "" {
		metrics.RecordCustomization("toggle", "invalid")
		return model.CustomizationState{}, dto.ErrIngredientIDRequired
	}

	ingredient, err := s.resolveIngredient(itemID, ingredientID)
	if err != nil {
		metrics.RecordCustomization("toggle", "invalid")
		return model.CustomizationState{}, err
	}

	state := session.ToggleIngredient(itemID, ingredient)
	metrics.RecordCustomization("toggle", "success")
	return state, nil
}

func (s *OrderingServiceImpl) SetSpicyLevel(sessionID, itemID string, level int) (model.CustomizationState, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return model.CustomizationState{}, err
	}

	spicy, err := model.ParseSpicyLevel(level)
	if err != nil {
		metrics.RecordCustomization("spicy_level", "invalid")
		return model.CustomizationState{}, err
	}
	if s.strict {
		if _, err := s.customizableItem(itemID); err != nil {
			metrics.RecordCustomization("spicy_level", "invalid")
			return model.CustomizationState{}, err
		}
	}

	state, err := session.SetSpicyLevel(itemID, spicy)
	if err != nil {
		metrics.RecordCustomization("spicy_level", "invalid")
		return model.CustomizationState{}, err
	}
	metrics.RecordCustomization("spicy_level", "success")
	return state, nil
}

func (s *OrderingServiceImpl) Commit(sessionID string, req dto.CommitRequest) (model.CartLine, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return model.CartLine{}, err
	}
	if err := req.Validate(); err != nil {
		metrics.RecordCommitFailure("unknown")
		return model.CartLine{}, err
	}

	item, err := s.catalog.Get(req.ItemID)
	if err != nil {
		metrics.RecordCommitFailure("unknown")
		return model.CartLine{}, err
	}

	var override *model.CustomizationState
	if req.HasOverride() {
		override, err = s.overrideFor(item, req)
		if err != nil {
			metrics.RecordCommitFailure(string(item.Type()))
			return model.CartLine{}, err
		}
	}

	line := session.Commit(item, override)
	metrics.RecordCommit(string(item.Type()), line.Price())
	metrics.RecordCartTotal(session.Total())

	log.Debug().
		Str("session_id", sessionID).
		Str("line_id", line.ID).
		Str("item_id", req.ItemID).
		Int64("price", line.Price()).
		Msg("Line committed")
	return line, nil
}

func (s *OrderingServiceImpl) Cart(sessionID string) (*CartSummary, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	lines := session.Lines()
	return &CartSummary{
		Lines:     lines,
		Breakdown: s.pricing.Breakdown(lines),
	}, nil
}

func (s *OrderingServiceImpl) Total(sessionID string) (int64, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return 0, err
	}
	return s.pricing.TotalPrice(session.Lines()), nil
}

// overrideFor builds the state carried by a commit request. Only the fields the request
// sets are filled.
func (s *OrderingServiceImpl) overrideFor(item model.MenuItem, req dto.CommitRequest) (*model.CustomizationState, error) {
	state := &model.CustomizationState{}

	if req.SpicyLevel != nil {
		level, err := model.ParseSpicyLevel(*req.SpicyLevel)
		if err != nil {
			return nil, err
		}
		state.SpicyLevel = &level
	}

	if req.SelectedIngredientIDs != nil {
		custom, ok := item.(model.CustomizableItem)
		if !ok && s.strict && len(req.SelectedIngredientIDs) > 0 {
			return nil, notCustomizable(item.Base().ID)
		}
		state.SelectedIngredients = make([]model.Ingredient, 0, len(req.SelectedIngredientIDs))
		for _, id := range req.SelectedIngredientIDs {
			if state.Has(id) {
				continue
			}
			ingredient, offered := custom.Offers(id)
			if !offered {
				if s.strict {
					return nil, notOffered(item.Base().ID, id)
				}
				ingredient = model.Ingredient{ID: id}
			}
			state.SelectedIngredients = append(state.SelectedIngredients, ingredient)
		}
	}

	return state, nil
}

// resolveIngredient returns the catalog ingredient for id. Outside strict mode unknown
// items and ingredients resolve to a bare ingredient priced 0.
func (s *OrderingServiceImpl) resolveIngredient(itemID, ingredientID string) (model.Ingredient, error) {
	item, err := s.catalog.Get(itemID)
	if err != nil {
		if s.strict {
			return model.Ingredient{}, unknownItem(itemID)
		}
		return model.Ingredient{ID: ingredientID}, nil
	}

	custom, ok := item.(model.CustomizableItem)
	if !ok {
		if s.strict {
			return model.Ingredient{}, notCustomizable(itemID)
		}
		return model.Ingredient{ID: ingredientID}, nil
	}

	ingredient, offered := custom.Offers(ingredientID)
	if !offered {
		if s.strict {
			return model.Ingredient{}, notOffered(itemID, ingredientID)
		}
		return model.Ingredient{ID: ingredientID}, nil
	}
	return ingredient, nil
}

func (s *OrderingServiceImpl) customizableItem(itemID string) (model.CustomizableItem, error) {
	item, err := s.catalog.Get(itemID)
	if errors.Is(err, ErrItemNotFound) {
		return model.CustomizableItem{}, unknownItem(itemID)
	}
	if err != nil {
		return model.CustomizableItem{}, err
	}
	custom, ok := item.(model.CustomizableItem)
	if !ok {
		return model.CustomizableItem{}, notCustomizable(itemID)
	}
	return custom, nil
}

func unknownItem(itemID string) *ValidationError {
	return &ValidationError{Field: "item_id", ID: itemID, Message: "is not on the menu"}
}

func notCustomizable(itemID string) *ValidationError {
	return &ValidationError{Field: "item_id", ID: itemID, Message: "is not customizable"}
}

func notOffered(itemID, ingredientID string) *ValidationError {
	return &ValidationError{Field: "ingredient_id", ID: ingredientID, Message: "is not offered by " + itemID}
}

func sessionAge(s *Session) time.Duration {
	return time.Since(s.CreatedAt()).Round(time.Second)
}
