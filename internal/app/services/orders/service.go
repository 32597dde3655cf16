// Package orders manages the order ledger.
package orders

import (
	"context"
	"strings"

	"github.com/vietkitchen/recipes-api/internal/app/domain/order"
	"github.com/vietkitchen/recipes-api/internal/app/storage"
	"github.com/vietkitchen/recipes-api/internal/errors"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

// Patch carries the mutable order fields for Update. A nil or empty
// CustomerName leaves the order unchanged.
type Patch struct {
	CustomerName *string
}

// Service creates and mutates orders, validating recipe references against
// the catalog at creation time.
type Service struct {
	recipes storage.RecipeStore
	store   storage.OrderStore
	log     *logger.Logger
}

// New constructs an order ledger service.
func New(recipes storage.RecipeStore, store storage.OrderStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("orders")
	}
	return &Service{recipes: recipes, store: store, log: log}
}

// Create validates the request and stores a new order with the next
// sequential id. The recipe must exist at call time; it is not re-validated
// afterward.
func (s *Service) Create(ctx context.Context, recipeID int, customerName string) (order.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if recipeID == 0 || customerName == "" {
		return order.Order{}, errors.Validation("recipeId and customerName required")
	}

	if _, err := s.recipes.GetRecipe(ctx, recipeID); err != nil {
		return order.Order{}, errors.NotFound("Recipe does not exist")
	}

	o, err := s.store.CreateOrder(ctx, order.Order{RecipeID: recipeID, CustomerName: customerName})
	if err != nil {
		return order.Order{}, err
	}

	s.log.WithField("order_id", o.ID).WithField("recipe_id", recipeID).Info("order created")
	return o, nil
}

// List returns all orders in creation order.
func (s *Service) List(ctx context.Context) ([]order.Order, error) {
	return s.store.ListOrders(ctx)
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id int) (order.Order, error) {
	return s.store.GetOrder(ctx, id)
}

// Update applies the patch to an existing order. An empty or absent
// customer name is a no-op returning the order unchanged; a non-empty one
// is trimmed before storing.
func (s *Service) Update(ctx context.Context, id int, patch Patch) (order.Order, error) {
	o, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return order.Order{}, err
	}

	if patch.CustomerName == nil || *patch.CustomerName == "" {
		return o, nil
	}

	o.CustomerName = strings.TrimSpace(*patch.CustomerName)
	return s.store.UpdateOrder(ctx, o)
}

// Delete removes the order if it exists. Deleting an unknown id succeeds;
// callers cannot distinguish "deleted" from "never existed". Intentional
// no-op-safe delete.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.store.DeleteOrder(ctx, id)
}
