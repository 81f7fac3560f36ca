package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fittracker/internal/models"
)

func TestDashboardHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockDashboardGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), testUser, "2024-05-01").Return(&models.Dashboard{
			TotalNutrition: models.Nutrition{Calories: 1000},
			UserGoals:      models.UserGoals{DailyCalorieGoal: 2000, DailyProteinGoal: 150, DailyCarbGoal: 250, DailyFatGoal: 67},
			Progress:       models.Nutrition{Calories: 50},
			EntriesCount:   3,
		}, nil)

		rr := httptest.NewRecorder()
		NewDashboardHandler(mockSvc)(rr, authedRequest(http.MethodGet, "/api/dashboard?date=2024-05-01", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Nil(t, resp["latest_weight"])
		assert.Equal(t, 3.0, resp["entries_count"])
		assert.Equal(t, 50.0, resp["progress"].(map[string]any)["calories"])
		assert.Equal(t, 2000.0, resp["user_goals"].(map[string]any)["daily_calorie_goal"])
	})

	t.Run("missing date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rr := httptest.NewRecorder()
		NewDashboardHandler(NewMockDashboardGetter(ctrl))(rr, authedRequest(http.MethodGet, "/api/dashboard", nil))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockDashboardGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), testUser, "2024-05-01").Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		NewDashboardHandler(mockSvc)(rr, authedRequest(http.MethodGet, "/api/dashboard?date=2024-05-01", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal server error", decodeDetail(t, rr))
	})
}
