package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	producterrors "github.com/ikamunya/productdir/internal/catalog/errors"
)

// memory implements ProductStore over an insertion-ordered slice.
// A mutex guards every operation so each request observes the collection
// before or after a mutation, never mid-way.
type memory struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryStore creates a new in-memory ProductStore holding the given
// seed records in order.
func NewMemoryStore(seed ...Product) ProductStore {
	s := &memory{
		products: make([]Product, 0, len(seed)),
	}
	s.products = append(s.products, seed...)
	return s
}

// DefaultSeed returns the fixed catalog the service starts with.
func DefaultSeed() []Product {
	return []Product{
		{ID: "1", Name: "Laptop", Description: "High-performance laptop with 16GB RAM", Price: 999.99, Category: "electronics", InStock: true},
		{ID: "2", Name: "Smartphone", Description: "Latest model with 128GB storage", Price: 699.99, Category: "electronics", InStock: true},
		{ID: "3", Name: "Coffee Maker", Description: "Programmable coffee maker with timer", Price: 79.99, Category: "kitchen", InStock: false},
	}
}

// FindAll returns a copy of the collection in insertion order.
func (s *memory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// FindByID retrieves a product by its ID.
func (s *memory) FindByID(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, producterrors.ErrProductNotFound
}

// Create appends a new product with a random 128-bit ID.
func (s *memory) Create(_ context.Context, name, description string, price float64, category string, inStock bool) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		InStock:     inStock,
	}
	s.products = append(s.products, p)
	return &p, nil
}

// Update merges the partial update into the existing record and replaces it
// at its current position. The ID and the position never change.
func (s *memory) Update(_ context.Context, id string, upd ProductUpdate) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		merged := s.products[i]
		if upd.Name != nil {
			merged.Name = *upd.Name
		}
		if upd.Description != nil {
			merged.Description = *upd.Description
		}
		if upd.Price != nil {
			merged.Price = *upd.Price
		}
		if upd.Category != nil {
			merged.Category = *upd.Category
		}
		if upd.InStock != nil {
			merged.InStock = *upd.InStock
		}
		s.products[i] = merged
		return &merged, nil
	}
	return nil, producterrors.ErrProductNotFound
}

// DeleteByID removes a product; subsequent entries shift down.
func (s *memory) DeleteByID(_ context.Context, id string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			removed := s.products[i]
			s.products = append(s.products[:i], s.products[i+1:]...)
			return &removed, nil
		}
	}
	return nil, producterrors.ErrProductNotFound
}
