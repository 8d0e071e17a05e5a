package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/ikamunya/productdir/internal/catalog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService() *Service {
	return NewService(store.NewMemoryStore(
		store.Product{ID: "1", Name: "Laptop", Description: "Fast", Price: 999.99, Category: "electronics", InStock: true},
		store.Product{ID: "2", Name: "Smartphone", Description: "Shiny", Price: 699.99, Category: "electronics", InStock: true},
		store.Product{ID: "3", Name: "Coffee Maker", Description: "Hot", Price: 79.99, Category: "kitchen", InStock: false},
	))
}

func Test_Service_Query_Filters(t *testing.T) {
	testCases := []struct {
		name          string
		query         ProductQuery
		expectedIDs   []string
		expectedTotal int
	}{
		{
			name:          "no filters returns everything in insertion order",
			query:         ProductQuery{Page: 1, Limit: 10},
			expectedIDs:   []string{"1", "2", "3"},
			expectedTotal: 3,
		},
		{
			name:          "category matches exactly, case-insensitive",
			query:         ProductQuery{Category: "ELECTRONICS", Page: 1, Limit: 10},
			expectedIDs:   []string{"1", "2"},
			expectedTotal: 2,
		},
		{
			name:          "category is not a substring match",
			query:         ProductQuery{Category: "electro", Page: 1, Limit: 10},
			expectedIDs:   []string{},
			expectedTotal: 0,
		},
		{
			name:          "search matches a case-insensitive substring of the name",
			query:         ProductQuery{Search: "lap", Page: 1, Limit: 10},
			expectedIDs:   []string{"1"},
			expectedTotal: 1,
		},
		{
			name:          "filters compose conjunctively",
			query:         ProductQuery{Category: "electronics", Search: "phone", Page: 1, Limit: 10},
			expectedIDs:   []string{"2"},
			expectedTotal: 1,
		},
		{
			name:          "conjunction with no survivors",
			query:         ProductQuery{Category: "kitchen", Search: "laptop", Page: 1, Limit: 10},
			expectedIDs:   []string{},
			expectedTotal: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := seededService()

			// when
			result, err := svc.Query(context.Background(), tc.query)

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTotal, result.TotalProducts)
			ids := make([]string, 0, len(result.Products))
			for _, p := range result.Products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func Test_Service_Query_Pagination(t *testing.T) {
	testCases := []struct {
		name          string
		page          int
		limit         int
		expectedIDs   []string
		expectedPages int
	}{
		{name: "first page window", page: 1, limit: 2, expectedIDs: []string{"1", "2"}, expectedPages: 2},
		{name: "last partial page", page: 2, limit: 2, expectedIDs: []string{"3"}, expectedPages: 2},
		{name: "page beyond the filtered range is empty", page: 5, limit: 2, expectedIDs: []string{}, expectedPages: 2},
		{name: "page zero is empty, not an error", page: 0, limit: 2, expectedIDs: []string{}, expectedPages: 2},
		{name: "negative page is empty, not an error", page: -1, limit: 2, expectedIDs: []string{}, expectedPages: 2},
		{name: "limit spanning the whole set", page: 1, limit: 10, expectedIDs: []string{"1", "2", "3"}, expectedPages: 1},
		{name: "single-record pages", page: 3, limit: 1, expectedIDs: []string{"3"}, expectedPages: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc := seededService()

			// when
			result, err := svc.Query(context.Background(), ProductQuery{Page: tc.page, Limit: tc.limit})

			// then
			require.NoError(t, err)
			assert.Equal(t, 3, result.TotalProducts, "totalProducts counts the filtered set before pagination")
			assert.Equal(t, tc.page, result.CurrentPage, "currentPage echoes the request without clamping")
			assert.Equal(t, tc.expectedPages, result.TotalPages)
			ids := make([]string, 0, len(result.Products))
			for _, p := range result.Products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func Test_Service_Query_WindowLengthProperty(t *testing.T) {
	// len(products) == min(limit, max(0, total-(page-1)*limit)) for page >= 1, limit > 0
	svc := seededService()
	const total = 3

	for page := 1; page <= 5; page++ {
		for limit := 1; limit <= 4; limit++ {
			result, err := svc.Query(context.Background(), ProductQuery{Page: page, Limit: limit})
			require.NoError(t, err)

			expected := max(0, total-(page-1)*limit)
			if expected > limit {
				expected = limit
			}
			assert.Len(t, result.Products, expected, "page=%d limit=%d", page, limit)
		}
	}
}

func Test_Service_Query_PaginationAppliesToFilteredSet(t *testing.T) {
	svc := seededService()

	result, err := svc.Query(context.Background(), ProductQuery{Category: "electronics", Page: 2, Limit: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalProducts)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "2", result.Products[0].ID, "the window slices the filtered set, not the whole collection")
}

func Test_Service_CreateThenFindByID(t *testing.T) {
	svc := seededService()
	inStock := true

	created, err := svc.Create(context.Background(), ProductCreateDto{
		Name:        "Mouse",
		Description: "Wireless",
		Price:       25,
		Category:    "electronics",
		InStock:     &inStock,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched, "the created and the fetched record are identical")
}

func Test_Service_Stats(t *testing.T) {
	svc := seededService()

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, map[string]int{"electronics": 2, "kitchen": 1}, stats.CountByCategory)
}

func Test_Service_Stats_SumEqualsTotal(t *testing.T) {
	svc := seededService()
	inStock := false

	// grow the collection with a few more categories, then check the invariant
	for i := range 5 {
		_, err := svc.Create(context.Background(), ProductCreateDto{
			Name:        fmt.Sprintf("Gadget %d", i),
			Description: "misc",
			Price:       1.5,
			Category:    fmt.Sprintf("category-%d", i%2),
			InStock:     &inStock,
		})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	sum := 0
	for _, n := range stats.CountByCategory {
		sum += n
	}
	assert.Equal(t, stats.TotalProducts, sum)
}

func Test_Service_Stats_CategoriesAreNotNormalized(t *testing.T) {
	svc := NewService(store.NewMemoryStore(
		store.Product{ID: "1", Name: "A", Category: "Electronics"},
		store.Product{ID: "2", Name: "B", Category: "electronics"},
	))

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Electronics": 1, "electronics": 1}, stats.CountByCategory,
		"stats keys keep the exact stored casing")
}
