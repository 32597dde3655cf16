// Package memory provides the in-memory store backing all collections.
package memory

import (
	"context"
	"sync"

	"github.com/vietkitchen/recipes-api/internal/app/domain/client"
	"github.com/vietkitchen/recipes-api/internal/app/domain/order"
	"github.com/vietkitchen/recipes-api/internal/app/domain/recipe"
	"github.com/vietkitchen/recipes-api/internal/errors"
)

// Memory is a thread-safe in-memory store implementing every interface in
// the storage package. All state is volatile and resets on restart.
type Memory struct {
	mu          sync.RWMutex
	recipes     []recipe.Recipe
	clients     []client.Client
	tokens      map[string]client.Client
	orders      []order.Order
	nextOrderID int
}

// New creates a store seeded with the fixed recipe catalog.
func New() *Memory {
	return &Memory{
		recipes:     recipe.Seed(),
		tokens:      make(map[string]client.Client),
		nextOrderID: 1,
	}
}

// RecipeStore implementation --------------------------------------------------

func (m *Memory) ListRecipes(_ context.Context) ([]recipe.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]recipe.Recipe, len(m.recipes))
	for i, r := range m.recipes {
		result[i] = cloneRecipe(r)
	}
	return result, nil
}

func (m *Memory) GetRecipe(_ context.Context, id int) (recipe.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.recipes {
		if r.ID == id {
			return cloneRecipe(r), nil
		}
	}
	return recipe.Recipe{}, errors.NotFound("Recipe not found")
}

// ClientStore implementation --------------------------------------------------

func (m *Memory) CreateClient(_ context.Context, c client.Client) (client.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.clients {
		if existing.Email == c.Email {
			return client.Client{}, errors.Conflict("API client already registered")
		}
	}

	m.clients = append(m.clients, c)
	m.tokens[c.Token] = c
	return c, nil
}

func (m *Memory) GetClientByToken(_ context.Context, token string) (client.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.tokens[token]
	if !ok {
		return client.Client{}, errors.Unauthorized("")
	}
	return c, nil
}

func (m *Memory) ListClients(_ context.Context) ([]client.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]client.Client, len(m.clients))
	copy(result, m.clients)
	return result, nil
}

// OrderStore implementation ---------------------------------------------------

func (m *Memory) CreateOrder(_ context.Context, o order.Order) (order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o.ID = m.nextOrderID
	m.nextOrderID++
	m.orders = append(m.orders, o)
	return o, nil
}

func (m *Memory) UpdateOrder(_ context.Context, o order.Order) (order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.orders {
		if existing.ID == o.ID {
			m.orders[i] = o
			return o, nil
		}
	}
	return order.Order{}, errors.NotFound("Order not found")
}

func (m *Memory) GetOrder(_ context.Context, id int) (order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return order.Order{}, errors.NotFound("Order not found")
}

func (m *Memory) ListOrders(_ context.Context) ([]order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]order.Order, len(m.orders))
	copy(result, m.orders)
	return result, nil
}

// DeleteOrder removes any order with the given id. Unknown ids are a no-op,
// not an error.
func (m *Memory) DeleteOrder(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.orders[:0]
	for _, o := range m.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	m.orders = kept
	return nil
}

// Helpers ---------------------------------------------------------------------

func cloneRecipe(r recipe.Recipe) recipe.Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	return r
}
