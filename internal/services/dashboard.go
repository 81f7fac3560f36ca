package services

import (
	"context"

	"github.com/sbilibin2017/fittracker/internal/goals"
	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
)

// DashboardService aggregates a day of food entries against the user's goals.
type DashboardService struct {
	foods   FoodEntryReader
	weights WeightEntryReader
}

func NewDashboardService(foods FoodEntryReader, weights WeightEntryReader) *DashboardService {
	return &DashboardService{foods: foods, weights: weights}
}

// Get builds the dashboard for date. Every entry counts toward the totals,
// whatever its meal type. Progress against a zero goal is 0.
func (svc *DashboardService) Get(ctx context.Context, user *models.UserDB, date string) (*models.Dashboard, error) {
	entries, err := svc.foods.ListByUserAndDate(ctx, user.UserID, date)
	if err != nil {
		logger.Log.Errorw("failed to list food entries", "user_id", user.UserID, "date", date, "err", err)
		return nil, err
	}

	var total models.Nutrition
	for _, e := range entries {
		total.Add(e)
	}

	g := user.Goals()

	latest, err := svc.weights.GetLatest(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get latest weight", "user_id", user.UserID, "err", err)
		return nil, err
	}

	return &models.Dashboard{
		TotalNutrition: total,
		UserGoals: models.UserGoals{
			DailyCalorieGoal: g.Calories,
			DailyProteinGoal: g.Protein,
			DailyCarbGoal:    g.Carbs,
			DailyFatGoal:     g.Fat,
		},
		Progress: models.Nutrition{
			Calories: goals.Progress(total.Calories, float64(g.Calories)),
			Protein:  goals.Progress(total.Protein, g.Protein),
			Carbs:    goals.Progress(total.Carbs, g.Carbs),
			Fat:      goals.Progress(total.Fat, g.Fat),
		},
		LatestWeight: latest,
		EntriesCount: len(entries),
	}, nil
}
