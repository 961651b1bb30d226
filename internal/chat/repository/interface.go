package repository

import (
	"context"

	"ecoshop-assistant/internal/model"
)

// ProductRepository is the read-only view of the EcoShop product backend.
type ProductRepository interface {
	// Search performs a free-text product search.
	Search(ctx context.Context, query string) ([]model.Product, error)

	// ByCategory lists the products of one category.
	ByCategory(ctx context.Context, category string) ([]model.Product, error)

	// All lists the full unfiltered catalog.
	All(ctx context.Context) ([]model.Product, error)
}
