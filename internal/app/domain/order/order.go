// Package order defines the order ledger domain type.
package order

// Order references a catalog recipe by id. Ids are assigned sequentially
// starting at 1 and never reused, even after deletions.
type Order struct {
	ID           int    `json:"id"`
	RecipeID     int    `json:"recipeId"`
	CustomerName string `json:"customerName"`
}
