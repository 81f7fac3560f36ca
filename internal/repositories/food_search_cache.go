package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
)

// ErrCacheMiss is returned when no results are cached for a query.
var ErrCacheMiss = errors.New("food search cache miss")

// FoodSearchCacheRepository caches normalized food search results in Redis.
type FoodSearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewFoodSearchCacheRepository(client *redis.Client, expiration time.Duration) *FoodSearchCacheRepository {
	return &FoodSearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// FoodSearchKey builds the cache key; queries differing only in case or
// surrounding whitespace share an entry.
func FoodSearchKey(query string) string {
	return fmt.Sprintf("food_search:%s", strings.ToLower(strings.TrimSpace(query)))
}

// Get returns the cached results for query or ErrCacheMiss.
func (r *FoodSearchCacheRepository) Get(ctx context.Context, query string) ([]models.FoodItem, error) {
	key := FoodSearchKey(query)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"hit", false,
			"error", ignoreRedisNil(err),
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var foods []models.FoodItem
	if err := json.Unmarshal(val, &foods); err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"hit", true,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", key,
		"hit", true,
		"result", len(foods),
	)

	return foods, nil
}

// Set stores results for query with the repository expiration.
func (r *FoodSearchCacheRepository) Set(ctx context.Context, query string, foods []models.FoodItem) error {
	key := FoodSearchKey(query)

	payload, err := json.Marshal(foods)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, payload, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"result", len(foods),
		"error", err,
	)

	return err
}

func ignoreRedisNil(err error) error {
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
