// Package recipe defines the recipe catalog domain type and its seed data.
package recipe

// Recipe is a single catalog entry. The catalog is seeded once at startup
// and never mutated.
type Recipe struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Ingredients []string `json:"ingredients"`
	Calories    int      `json:"calories"`
}

// Seed returns the fixed catalog contents in seed order.
func Seed() []Recipe {
	return []Recipe{
		{
			ID:          1,
			Name:        "Pho Bo (Beef Noodle Soup)",
			Type:        "main",
			Ingredients: []string{"rice noodles", "beef", "beef broth", "onion", "ginger", "herbs"},
			Calories:    400,
		},
		{
			ID:          2,
			Name:        "Banh Mi (Vietnamese Sandwich)",
			Type:        "main",
			Ingredients: []string{"baguette", "pork or chicken", "pickled vegetables", "cilantro", "chili sauce"},
			Calories:    350,
		},
		{
			ID:          3,
			Name:        "Goi Cuon (Fresh Spring Rolls)",
			Type:        "starter",
			Ingredients: []string{"rice paper", "shrimp", "pork", "vermicelli noodles", "lettuce", "herbs"},
			Calories:    150,
		},
		{
			ID:          4,
			Name:        "Che Ba Mau (Three-color Dessert)",
			Type:        "dessert",
			Ingredients: []string{"mung beans", "red beans", "green jelly", "coconut milk"},
			Calories:    250,
		},
		{
			ID:          5,
			Name:        "Bun Cha (Grilled Pork with Noodles)",
			Type:        "main",
			Ingredients: []string{"rice noodles", "grilled pork", "fish sauce", "herbs", "lettuce"},
			Calories:    450,
		},
	}
}
