package service

import (
	"strings"

	"marketplace-service/internal/models"
)

// SearchMode selects one of the fixed catalog search strategies. The set is
// closed; modes are not composable with each other.
type SearchMode string

const (
	SearchByName     SearchMode = "name"
	SearchByPrice    SearchMode = "price"
	SearchByModel    SearchMode = "model"
	SearchByCategory SearchMode = "category"
)

// SearchQuery carries the single parameter a strategy needs: Term for the
// substring modes, MaxPrice for the price ceiling.
type SearchQuery struct {
	Term     string
	MaxPrice float64
}

type searchPredicate func(p models.Product, q SearchQuery) bool

// searchPredicates is the single dispatch table over the closed mode set.
var searchPredicates = map[SearchMode]searchPredicate{
	SearchByName: func(p models.Product, q SearchQuery) bool {
		return containsFold(p.Name, q.Term)
	},
	SearchByPrice: func(p models.Product, q SearchQuery) bool {
		return p.DiscountedPrice <= q.MaxPrice
	},
	SearchByModel: func(p models.Product, q SearchQuery) bool {
		return containsFold(p.Model, q.Term)
	},
	SearchByCategory: func(p models.Product, q SearchQuery) bool {
		return containsFold(p.Category, q.Term)
	},
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// filterProducts applies one strategy over the full catalog, preserving
// catalog order. An empty result is a result, not an error.
func filterProducts(products []models.Product, mode SearchMode, q SearchQuery) ([]models.Product, error) {
	predicate, ok := searchPredicates[mode]
	if !ok {
		return nil, models.ErrInvalidSearchMode
	}

	matches := make([]models.Product, 0)
	for _, p := range products {
		if predicate(p, q) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
