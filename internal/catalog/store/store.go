// Package store provides an interface for product storage operations.
package store

import "context"

// Product represents a product entity in the store.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// ProductUpdate carries a partial update. A nil field means "leave the
// current value alone"; a non-nil field is applied verbatim, so explicit
// zero values like price 0 or inStock false survive the merge.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type ProductStore interface {
	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// Create adds a new product with a freshly assigned ID, appending it
	// to the end of the collection.
	Create(ctx context.Context, name, description string, price float64, category string, inStock bool) (*Product, error)

	// Update applies a partial update to an existing product in place.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, upd ProductUpdate) (*Product, error)

	// DeleteByID removes a product and returns the removed record.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) (*Product, error)
}
