package services

import (
	"context"

	"github.com/sbilibin2017/fittracker/internal/goals"
	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
)

// ProfileService applies partial profile updates.
type ProfileService struct {
	writer UserWriter
}

func NewProfileService(writer UserWriter) *ProfileService {
	return &ProfileService{writer: writer}
}

// UpdateProfile stores the supplied fields. When a field feeding the goal
// calculation changes, goals are recomputed from the merged profile and
// replace any goal values sent directly.
func (svc *ProfileService) UpdateProfile(ctx context.Context, user *models.UserDB, req models.ProfileUpdateRequest) error {
	upd := models.UserUpdate{
		Age:              req.Age,
		Gender:           req.Gender,
		Height:           req.Height,
		Weight:           req.Weight,
		ActivityLevel:    req.ActivityLevel,
		Goal:             req.Goal,
		DailyCalorieGoal: req.DailyCalorieGoal,
		DailyProteinGoal: req.DailyProteinGoal,
		DailyCarbGoal:    req.DailyCarbGoal,
		DailyFatGoal:     req.DailyFatGoal,
	}

	if upd.TouchesProfile() {
		merged := mergeProfile(user, upd)
		g := goals.Daily(merged.GoalProfile())
		upd.DailyCalorieGoal = &g.Calories
		upd.DailyProteinGoal = &g.Protein
		upd.DailyCarbGoal = &g.Carbs
		upd.DailyFatGoal = &g.Fat
	}

	if err := svc.writer.Update(ctx, user.UserID, upd); err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", user.UserID, "err", err)
		return err
	}
	return nil
}

// mergeProfile returns a copy of user with the profile fields of upd applied.
func mergeProfile(user *models.UserDB, upd models.UserUpdate) models.UserDB {
	merged := *user
	if upd.Age != nil {
		merged.Age = upd.Age
	}
	if upd.Gender != nil {
		merged.Gender = upd.Gender
	}
	if upd.Height != nil {
		merged.Height = upd.Height
	}
	if upd.Weight != nil {
		merged.Weight = upd.Weight
	}
	if upd.ActivityLevel != nil {
		merged.ActivityLevel = *upd.ActivityLevel
	}
	if upd.Goal != nil {
		merged.Goal = *upd.Goal
	}
	return merged
}
