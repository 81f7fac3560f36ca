package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fittracker/internal/models"
)

func TestFoodSearchService_Search(t *testing.T) {
	ctx := context.Background()
	foods := []models.FoodItem{{FdcID: "1", Description: "Oats", ServingSize: 100, ServingUnit: "g", Calories: 389}}

	t.Run("mock list without searcher", func(t *testing.T) {
		svc := NewFoodSearchService(nil, nil)
		got, err := svc.Search(ctx, "anything")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "123456", got[0].FdcID)
		assert.Equal(t, "Banana, raw", got[0].Description)
		assert.Equal(t, "789012", got[1].FdcID)
		assert.Equal(t, 52.0, got[1].Calories)
	})

	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := NewMockFoodSearcher(ctrl)
		cache := NewMockFoodSearchCache(ctrl)
		cache.EXPECT().Get(ctx, "oats").Return(foods, nil)

		got, err := NewFoodSearchService(searcher, cache).Search(ctx, "oats")
		require.NoError(t, err)
		assert.Equal(t, foods, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := NewMockFoodSearcher(ctrl)
		cache := NewMockFoodSearchCache(ctrl)
		gomock.InOrder(
			cache.EXPECT().Get(ctx, "oats").Return(nil, errors.New("cache miss")),
			searcher.EXPECT().Search(ctx, "oats").Return(foods, nil),
			cache.EXPECT().Set(ctx, "oats", foods).Return(errors.New("redis down")),
		)

		got, err := NewFoodSearchService(searcher, cache).Search(ctx, "oats")
		require.NoError(t, err)
		assert.Equal(t, foods, got)
	})

	t.Run("upstream status failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := NewMockFoodSearcher(ctrl)
		searcher.EXPECT().Search(ctx, "oats").Return(nil, fmt.Errorf("food data api: %w %d", models.ErrUpstreamStatus, 503))

		_, err := NewFoodSearchService(searcher, nil).Search(ctx, "oats")
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.True(t, IsUpstreamStatus(err))
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		searcher := NewMockFoodSearcher(ctrl)
		searcher.EXPECT().Search(ctx, "oats").Return(nil, errors.New("connection refused"))

		_, err := NewFoodSearchService(searcher, nil).Search(ctx, "oats")
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.False(t, IsUpstreamStatus(err))
		assert.EqualError(t, upstream.Cause, "connection refused")
	})
}
