package service

import (
	"context"

	"techmart/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves a page of products matching the query filters,
	// together with the total matching count.
	List(ctx context.Context, query model.ProductQuery) (*model.ProductList, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create validates and stores a new product, assigning its ID and
	// timestamps. Returns the stored product.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// Update applies a partial patch to an existing product and returns
	// the updated product.
	Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes a product permanently.
	Delete(ctx context.Context, id string) error
}

// AuthService exchanges the admin credential pair for a bearer token.
type AuthService interface {
	// Login verifies the submitted credentials against the configured
	// admin identity and issues a signed, time-limited token.
	Login(ctx context.Context, username, password string) (*model.LoginResponse, error)
}
