// Package catalog implements the in-memory list pipeline the front-ends
// run over an already-fetched product page: price and stock filtering
// followed by a stable sort. All operations are pure and re-derivable
// from the source slice on every change.
package catalog

import (
	"sort"
	"strings"

	"techmart/internal/model"
)

// StockBucket classifies a stock count for filtering.
type StockBucket string

const (
	StockAll StockBucket = "all"
	StockIn  StockBucket = "in"  // more than 10 units
	StockLow StockBucket = "low" // 1 to 10 units
	StockOut StockBucket = "out" // none left
)

// Valid reports whether the bucket is one of the known values.
func (b StockBucket) Valid() bool {
	switch b {
	case StockAll, StockIn, StockLow, StockOut:
		return true
	}
	return false
}

// Matches reports whether a stock count falls into the bucket.
func (b StockBucket) Matches(stock int) bool {
	switch b {
	case StockIn:
		return stock > 10
	case StockLow:
		return stock > 0 && stock <= 10
	case StockOut:
		return stock == 0
	default:
		return true
	}
}

// Bucket classifies a stock count into its display bucket.
func Bucket(stock int) StockBucket {
	switch {
	case stock == 0:
		return StockOut
	case stock <= 10:
		return StockLow
	default:
		return StockIn
	}
}

// Filter holds the in-memory refinements applied after a fetch. Either
// price bound may be nil to leave that side open.
type Filter struct {
	MinPrice *float64
	MaxPrice *float64
	Stock    StockBucket
}

// Apply returns the products passing every configured refinement,
// preserving input order.
func (f Filter) Apply(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if !f.Stock.Matches(p.Stock) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortKey selects the product attribute to sort by.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByStock     SortKey = "stock"
	SortByCreatedAt SortKey = "created_at"
)

// Valid reports whether the key is one of the known sort keys.
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPrice, SortByStock, SortByCreatedAt:
		return true
	}
	return false
}

// Sort orders products by the given key, ascending unless descending is
// set. Name ordering is case-insensitive; the sort is stable so equal
// keys keep their fetched order.
func Sort(products []model.Product, key SortKey, descending bool) {
	less := func(a, b model.Product) bool {
		switch key {
		case SortByPrice:
			return a.Price < b.Price
		case SortByStock:
			return a.Stock < b.Stock
		case SortByCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		if descending {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
