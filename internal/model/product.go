package model

import (
	"strings"
	"time"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryLaptops     Category = "Laptops"
	CategoryDesktops    Category = "Desktops"
	CategoryAccessories Category = "Accessories"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryLaptops, CategoryDesktops, CategoryAccessories}

// Valid reports whether the category is one of the enumerated values.
func (c Category) Valid() bool {
	switch c {
	case CategoryLaptops, CategoryDesktops, CategoryAccessories:
		return true
	}
	return false
}

// ParseCategory matches a raw string against the closed set.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.TrimSpace(s))
	return c, c.Valid()
}

// Product represents a catalog product.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    Category  `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Specs       []string  `json:"specs" db:"specs"`
	Price       float64   `json:"price" db:"price"`
	Stock       int       `json:"stock" db:"stock"`
	Images      []string  `json:"images" db:"images"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateProductRequest is the payload for POST /api/products.
// Stock and images are optional and default to 0 / empty.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Specs       []string `json:"specs"`
	Price       float64  `json:"price"`
	Stock       *int     `json:"stock"`
	Images      []string `json:"images"`
}

// UpdateProductRequest is the payload for PUT /api/products/{id}.
// A nil field means "not supplied"; an explicit zero value is applied,
// so {"stock": 0} clears the stock rather than being dropped.
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Specs       *[]string `json:"specs"`
	Price       *float64  `json:"price"`
	Stock       *int      `json:"stock"`
	Images      *[]string `json:"images"`
}

// Empty reports whether the patch carries no fields at all.
func (r *UpdateProductRequest) Empty() bool {
	return r.Name == nil && r.Category == nil && r.Description == nil &&
		r.Specs == nil && r.Price == nil && r.Stock == nil && r.Images == nil
}

// ProductList is the listing envelope. Total counts every row matching
// the filters, not just the returned page, so callers can paginate.
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Skip     int       `json:"skip"`
}

// ProductQuery holds the validated listing filters.
type ProductQuery struct {
	Category Category
	Name     string
	Limit    int
	Skip     int
}

// LoginRequest is the payload for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
