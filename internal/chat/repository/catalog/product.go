package catalog

import (
	"context"

	"ecoshop-assistant/internal/chat/repository"
	"ecoshop-assistant/internal/model"
	pkgLog "ecoshop-assistant/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// Ensure implRepository implements ProductRepository
var _ repository.ProductRepository = (*implRepository)(nil)

// New creates a ProductRepository backed by the EcoShop product REST API.
func New(client *Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

// Search performs a free-text product search.
func (r *implRepository) Search(ctx context.Context, query string) ([]model.Product, error) {
	payloads, err := r.client.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	return toModels(payloads), nil
}

// ByCategory lists the products of one category.
func (r *implRepository) ByCategory(ctx context.Context, category string) ([]model.Product, error) {
	payloads, err := r.client.ProductsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toModels(payloads), nil
}

// All lists the full unfiltered catalog.
func (r *implRepository) All(ctx context.Context) ([]model.Product, error) {
	payloads, err := r.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return toModels(payloads), nil
}

func toModels(payloads []productPayload) []model.Product {
	products := make([]model.Product, 0, len(payloads))
	for _, p := range payloads {
		products = append(products, p.toModel())
	}
	return products
}
