package repository

import (
	"context"

	"techmart/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves a page of products matching the query filters and
	// the total number of matching rows.
	List(ctx context.Context, query model.ProductQuery) ([]model.Product, int, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil)
	// when no product has that ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product row.
	Create(ctx context.Context, product *model.Product) error

	// Update applies the supplied patch fields to an existing product
	// and returns the updated row. Returns (nil, nil) when no product
	// has that ID.
	Update(ctx context.Context, id string, patch *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes a product permanently. Returns false when no
	// product had that ID.
	Delete(ctx context.Context, id string) (bool, error)
}
