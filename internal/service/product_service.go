package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"techmart/internal/model"
	"techmart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves a page of products matching the query filters.
func (s *productService) List(ctx context.Context, query model.ProductQuery) (*model.ProductList, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Skip < 0 {
		query.Skip = 0
	}

	if query.Category != "" && !query.Category.Valid() {
		s.logger.Warn().Str("category", string(query.Category)).Msg("invalid category filter")
		return nil, model.ErrInvalidCategory
	}

	products, total, err := s.productRepo.List(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", string(query.Category)).
			Str("name", query.Name).
			Int("limit", query.Limit).
			Int("skip", query.Skip).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("total", total).
		Msg("listed products")

	return &model.ProductList{
		Products: products,
		Total:    total,
		Limit:    query.Limit,
		Skip:     query.Skip,
	}, nil
}

// validID reports whether id can address a product row. IDs are UUIDs,
// so anything else cannot exist and maps to not-found without touching
// the database.
func validID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if !validID(id) {
		s.logger.Debug().Str("product_id", id).Msg("malformed product ID")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create validates and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Name is required")
	}

	category, ok := model.ParseCategory(req.Category)
	if !ok {
		return nil, model.ErrInvalidCategory
	}

	description := strings.TrimSpace(req.Description)
	specs := req.Specs
	if len(specs) == 0 {
		// Legacy clients send comma-joined fragments in the description
		// instead of a specs list.
		specs = model.SplitSpecs(description)
	}
	if description == "" && len(specs) == 0 {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Description is required")
	}

	if req.Price == 0 {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Price is required")
	}
	if req.Price < 0 {
		return nil, model.ErrInvalidPrice
	}

	stock := 0
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, model.ErrInvalidStock
		}
		stock = *req.Stock
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	product := &model.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Description: description,
		Specs:       specs,
		Price:       req.Price,
		Stock:       stock,
		Images:      images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("category", string(product.Category)).
		Msg("product created")

	return product, nil
}

// Update applies a partial patch. Field presence is carried by non-nil
// pointers, so an explicit zero stock or price is applied instead of
// being treated as "not supplied".
func (s *productService) Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	if !validID(id) {
		return nil, model.ErrProductNotFound
	}

	if req.Empty() {
		return nil, model.ErrEmptyUpdate
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Name must not be empty")
	}
	if req.Category != nil {
		if _, ok := model.ParseCategory(*req.Category); !ok {
			return nil, model.ErrInvalidCategory
		}
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, model.ErrInvalidPrice
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, model.ErrInvalidStock
	}

	product, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product permanently.
func (s *productService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return model.ErrProductNotFound
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Str("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}
