package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
)

//go:generate mockgen -source=food_search.go -destination=food_search_mock.go -package=services

// FoodSearcher queries an external food database.
type FoodSearcher interface {
	Search(ctx context.Context, query string) ([]models.FoodItem, error)
}

// FoodSearchCache caches search results by query.
type FoodSearchCache interface {
	Get(ctx context.Context, query string) ([]models.FoodItem, error)
	Set(ctx context.Context, query string, foods []models.FoodItem) error
}

// UpstreamError wraps a failure of the external food database.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("food search failed: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// MockFoods is served when no food database is configured.
func MockFoods() []models.FoodItem {
	return []models.FoodItem{
		{
			FdcID:       "123456",
			Description: "Banana, raw",
			ServingSize: 100,
			ServingUnit: "g",
			Calories:    89,
			Protein:     1.1,
			Carbs:       22.8,
			Fat:         0.3,
			Fiber:       2.6,
			Sugar:       12.2,
			Sodium:      1,
		},
		{
			FdcID:       "789012",
			Description: "Apple, raw",
			ServingSize: 100,
			ServingUnit: "g",
			Calories:    52,
			Protein:     0.3,
			Carbs:       13.8,
			Fat:         0.2,
			Fiber:       2.4,
			Sugar:       10.4,
			Sodium:      1,
		},
	}
}

// FoodSearchService searches foods, reading through an optional cache.
type FoodSearchService struct {
	searcher FoodSearcher
	cache    FoodSearchCache
}

// NewFoodSearchService creates the service. A nil searcher selects the static
// mock list; a nil cache disables caching.
func NewFoodSearchService(searcher FoodSearcher, cache FoodSearchCache) *FoodSearchService {
	return &FoodSearchService{searcher: searcher, cache: cache}
}

// Search returns foods matching query. External failures are returned as *UpstreamError.
func (svc *FoodSearchService) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
	if svc.searcher == nil {
		return MockFoods(), nil
	}

	if svc.cache != nil {
		foods, err := svc.cache.Get(ctx, query)
		if err == nil {
			return foods, nil
		}
		logger.Log.Debugw("food search cache unavailable", "query", query, "err", err)
	}

	foods, err := svc.searcher.Search(ctx, query)
	if err != nil {
		logger.Log.Errorw("food search failed", "query", query, "err", err)
		return nil, &UpstreamError{Cause: err}
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, query, foods); err != nil {
			logger.Log.Errorw("failed to cache food search", "query", query, "err", err)
		}
	}

	return foods, nil
}

// IsUpstreamStatus reports whether err came from a non-success upstream response.
func IsUpstreamStatus(err error) bool {
	return errors.Is(err, models.ErrUpstreamStatus)
}
