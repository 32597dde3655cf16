// Package recipes serves filtered and searched reads of the recipe catalog.
package recipes

import (
	"context"
	"strings"

	"github.com/vietkitchen/recipes-api/internal/app/domain/recipe"
	"github.com/vietkitchen/recipes-api/internal/app/storage"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

// Filter holds the optional, conjunctive catalog filters.
type Filter struct {
	// Type is matched case-insensitively against the recipe type.
	Type string
	// MaxCalories is an inclusive upper bound; nil means no bound.
	MaxCalories *int
	// Cuisine is matched case-insensitively as a substring of the recipe
	// NAME. The catalog has no cuisine taxonomy; this mirrors the original
	// query parameter rather than inferring a richer feature.
	Cuisine string
	// Limit truncates the result to the first N entries in catalog order.
	// A limit of 0 means no limit, not an empty result.
	Limit int
}

// Service answers catalog queries.
type Service struct {
	store storage.RecipeStore
	log   *logger.Logger
}

// New constructs a recipe catalog service.
func New(store storage.RecipeStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("recipes")
	}
	return &Service{store: store, log: log}
}

// List returns matching recipes in seed order. Absent filters return the
// full catalog; List never errors for user input.
func (s *Service) List(ctx context.Context, f Filter) ([]recipe.Recipe, error) {
	all, err := s.store.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]recipe.Recipe, 0, len(all))
	for _, r := range all {
		if f.Type != "" && !strings.EqualFold(r.Type, f.Type) {
			continue
		}
		if f.MaxCalories != nil && r.Calories > *f.MaxCalories {
			continue
		}
		if f.Cuisine != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Cuisine)) {
			continue
		}
		result = append(result, r)
	}

	if f.Limit > 0 && f.Limit < len(result) {
		result = result[:f.Limit]
	}
	return result, nil
}

// Get returns the recipe with the given id.
func (s *Service) Get(ctx context.Context, id int) (recipe.Recipe, error) {
	return s.store.GetRecipe(ctx, id)
}

// Search matches the query case-insensitively against the ", "-joined
// ingredient list of each recipe, so a query can span two adjacent
// ingredients. The empty query matches every recipe.
func (s *Service) Search(ctx context.Context, query string) ([]recipe.Recipe, error) {
	all, err := s.store.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	result := make([]recipe.Recipe, 0, len(all))
	for _, r := range all {
		joined := strings.ToLower(strings.Join(r.Ingredients, ", "))
		if strings.Contains(joined, query) {
			result = append(result, r)
		}
	}
	return result, nil
}
