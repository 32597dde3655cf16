// Package app wires the domain services to their stores.
package app

import (
	"github.com/vietkitchen/recipes-api/internal/app/services/clients"
	"github.com/vietkitchen/recipes-api/internal/app/services/orders"
	"github.com/vietkitchen/recipes-api/internal/app/services/recipes"
	"github.com/vietkitchen/recipes-api/internal/app/storage"
	"github.com/vietkitchen/recipes-api/internal/app/storage/memory"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

// Stores encapsulates persistence dependencies. Nil stores default to a
// shared in-memory implementation seeded with the recipe catalog.
type Stores struct {
	Recipes storage.RecipeStore
	Clients storage.ClientStore
	Orders  storage.OrderStore
}

// Application owns the service instances for the process lifetime. It is
// the explicit replacement for process-wide mutable globals: handlers
// receive it by reference and all state lives behind its stores.
type Application struct {
	log *logger.Logger

	Recipes *recipes.Service
	Clients *clients.Service
	Orders  *orders.Service
}

// New builds a fully initialised application with the provided stores.
func New(stores Stores, log *logger.Logger) *Application {
	if log == nil {
		log = logger.NewDefault("app")
	}

	mem := memory.New()
	if stores.Recipes == nil {
		stores.Recipes = mem
	}
	if stores.Clients == nil {
		stores.Clients = mem
	}
	if stores.Orders == nil {
		stores.Orders = mem
	}

	return &Application{
		log:     log,
		Recipes: recipes.New(stores.Recipes, log.WithModule("recipes")),
		Clients: clients.New(stores.Clients, log.WithModule("clients")),
		Orders:  orders.New(stores.Recipes, stores.Orders, log.WithModule("orders")),
	}
}
