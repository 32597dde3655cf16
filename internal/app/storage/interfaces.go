// Package storage declares the persistence interfaces for the catalog,
// client registry, and order ledger.
package storage

import (
	"context"

	"github.com/vietkitchen/recipes-api/internal/app/domain/client"
	"github.com/vietkitchen/recipes-api/internal/app/domain/order"
	"github.com/vietkitchen/recipes-api/internal/app/domain/recipe"
)

// RecipeStore reads the seeded recipe catalog.
type RecipeStore interface {
	ListRecipes(ctx context.Context) ([]recipe.Recipe, error)
	GetRecipe(ctx context.Context, id int) (recipe.Recipe, error)
}

// ClientStore persists registered clients and the token index. CreateClient
// performs the email uniqueness check and the token indexing in one atomic
// step so a conflict never leaves partial state behind.
type ClientStore interface {
	CreateClient(ctx context.Context, c client.Client) (client.Client, error)
	GetClientByToken(ctx context.Context, token string) (client.Client, error)
	ListClients(ctx context.Context) ([]client.Client, error)
}

// OrderStore persists orders. CreateOrder assigns the next sequential id
// under the store's lock; DeleteOrder succeeds whether or not the id exists.
type OrderStore interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
	UpdateOrder(ctx context.Context, o order.Order) (order.Order, error)
	GetOrder(ctx context.Context, id int) (order.Order, error)
	ListOrders(ctx context.Context) ([]order.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}
