// Package service provides the implementation of catalog business logic.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ikamunya/productdir/internal/catalog/store"
)

// CatalogService defines the methods for managing the product catalog.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// Query returns one page of products after applying the category and
	// search filters. Both filters narrow the same working set.
	Query(ctx context.Context, q ProductQuery) (*ProductPageDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, error)

	// Create adds a new product to the catalog.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update applies a partial update to an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product and returns the removed record.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) (*ProductDto, error)

	// Stats reports the collection size and a per-category record count.
	Stats(ctx context.Context) (*StatsDto, error)
}

// Service implements CatalogService on top of a ProductStore.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductQuery carries the already-coerced list parameters.
type ProductQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// ProductCreateDto represents the data transfer object for creating a new product.
// The required rule rejects zero values, so an empty name or a zero price
// fails validation. InStock is a pointer so that false is accepted while a
// missing field is not.
type ProductCreateDto struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	InStock     *bool   `json:"inStock"     validate:"required"`
}

// ProductUpdateDto represents a partial update. Nil fields were omitted
// from the request body and keep their current value.
type ProductUpdateDto struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// ProductPageDto is the envelope returned for list queries.
type ProductPageDto struct {
	TotalProducts int          `json:"totalProducts"`
	CurrentPage   int          `json:"currentPage"`
	TotalPages    int          `json:"totalPages"`
	Products      []ProductDto `json:"products"`
}

// StatsDto reports collection-wide counters. CountByCategory keys are the
// exact category strings as stored, without normalization.
type StatsDto struct {
	TotalProducts   int            `json:"totalProducts"`
	CountByCategory map[string]int `json:"countByCategory"`
}

// Query filters the insertion-ordered collection and slices out the
// requested page. Category matches exactly (case-insensitive), search
// matches a case-insensitive substring of the name; the two compose
// conjunctively. The window is [(page-1)*limit, (page-1)*limit+limit) over
// the filtered set, and a page outside the filtered range yields an empty
// slice with the totals still reported. CurrentPage echoes the requested
// page without clamping.
func (s *Service) Query(ctx context.Context, q ProductQuery) (*ProductPageDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	filtered := make([]store.Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	totalPages := (total + q.Limit - 1) / q.Limit

	page := make([]ProductDto, 0)
	start := (q.Page - 1) * q.Limit
	if q.Page >= 1 && start < total {
		end := min(start+q.Limit, total)
		for _, p := range filtered[start:end] {
			page = append(page, *toDto(&p))
		}
	}

	return &ProductPageDto{
		TotalProducts: total,
		CurrentPage:   q.Page,
		TotalPages:    totalPages,
		Products:      page,
	}, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	return toDto(product), nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, product.Name, product.Description, product.Price, product.Category, *product.InStock)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// Update merges the provided fields into an existing product and returns
// the updated record as a ProductDto.
func (s *Service) Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error) {
	p, err := s.repository.Update(ctx, id, store.ProductUpdate{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		InStock:     product.InStock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}

	return toDto(p), nil
}

// DeleteByID deletes a product by its ID and returns the removed record.
func (s *Service) DeleteByID(ctx context.Context, id string) (*ProductDto, error) {
	p, err := s.repository.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}

	return toDto(p), nil
}

// Stats counts records per exact category value over the whole collection.
func (s *Service) Stats(ctx context.Context) (*StatsDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	byCategory := make(map[string]int, len(products))
	for _, p := range products {
		byCategory[p.Category]++
	}

	return &StatsDto{
		TotalProducts:   len(products),
		CountByCategory: byCategory,
	}, nil
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		InStock:     product.InStock,
	}
}
