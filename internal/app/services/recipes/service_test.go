package recipes

import (
	"context"
	"testing"

	"github.com/vietkitchen/recipes-api/internal/app/storage/memory"
	"github.com/vietkitchen/recipes-api/internal/errors"
)

func newService() *Service {
	return New(memory.New(), nil)
}

func TestListNoFilters(t *testing.T) {
	svc := newService()

	result, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result) != 5 {
		t.Fatalf("expected full catalog of 5, got %d", len(result))
	}
	if result[0].Name != "Pho Bo (Beef Noodle Soup)" || result[4].Name != "Bun Cha (Grilled Pork with Noodles)" {
		t.Fatalf("catalog not in seed order: %q .. %q", result[0].Name, result[4].Name)
	}
}

func TestListFilterByType(t *testing.T) {
	svc := newService()

	result, err := svc.List(context.Background(), Filter{Type: "MAIN"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected 3 mains, got %d", len(result))
	}
	want := []int{1, 2, 5}
	for i, r := range result {
		if r.ID != want[i] {
			t.Fatalf("expected ids %v in seed order, got id %d at %d", want, r.ID, i)
		}
	}
}

func TestListFilterByMaxCalories(t *testing.T) {
	svc := newService()

	max := 200
	result, err := svc.List(context.Background(), Filter{MaxCalories: &max})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result) != 1 || result[0].Name != "Goi Cuon (Fresh Spring Rolls)" {
		t.Fatalf("expected only Goi Cuon under 200 cal, got %v", result)
	}

	// Bound is inclusive.
	max = 150
	result, err = svc.List(context.Background(), Filter{MaxCalories: &max})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected inclusive bound to keep Goi Cuon at exactly 150, got %d", len(result))
	}
}

func TestListFilterByCuisine(t *testing.T) {
	svc := newService()

	// "cuisine" matches against the recipe name, not a cuisine tag.
	result, err := svc.List(context.Background(), Filter{Cuisine: "vietnamese"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("expected only Banh Mi to contain 'vietnamese' in its name, got %v", result)
	}
}

func TestListLimit(t *testing.T) {
	svc := newService()

	result, err := svc.List(context.Background(), Filter{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result) != 2 || result[0].ID != 1 || result[1].ID != 2 {
		t.Fatalf("expected first 2 seed recipes, got %v", result)
	}
}

func TestListLimitZeroMeansNoLimit(t *testing.T) {
	svc := newService()

	result, err := svc.List(context.Background(), Filter{Limit: 0})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result) != 5 {
		t.Fatalf("limit 0 must return all recipes, got %d", len(result))
	}
}

func TestListCombinedFilters(t *testing.T) {
	svc := newService()

	max := 400
	result, err := svc.List(context.Background(), Filter{Type: "main", MaxCalories: &max, Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result) != 1 || result[0].ID != 1 {
		t.Fatalf("expected Pho Bo only, got %v", result)
	}
}

func TestGet(t *testing.T) {
	svc := newService()

	rec, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Name != "Goi Cuon (Fresh Spring Rolls)" {
		t.Fatalf("unexpected recipe: %q", rec.Name)
	}

	if _, err := svc.Get(context.Background(), 99); !errors.NotFound("").Is(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchByIngredient(t *testing.T) {
	svc := newService()

	result, err := svc.Search(context.Background(), "BEEF")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result) != 1 || result[0].ID != 1 {
		t.Fatalf("expected only Pho Bo to contain beef, got %v", result)
	}
}

func TestSearchSpansJoinBoundary(t *testing.T) {
	svc := newService()

	// Matching happens against the ", "-joined list, so a query can cover
	// two adjacent ingredients.
	result, err := svc.Search(context.Background(), "shrimp, pork")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result) != 1 || result[0].ID != 3 {
		t.Fatalf("expected Goi Cuon via join-boundary match, got %v", result)
	}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	svc := newService()

	result, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result) != 5 {
		t.Fatalf("empty query must match every recipe, got %d", len(result))
	}
}
