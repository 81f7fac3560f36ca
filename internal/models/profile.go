package models

import "github.com/sbilibin2017/fittracker/internal/goals"

// Profile is the public view of a user
// swagger:model Profile
type Profile struct {
	UserID        string   `json:"user_id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`

	DailyCalorieGoal *int     `json:"daily_calorie_goal"`
	DailyProteinGoal *float64 `json:"daily_protein_goal"`
	DailyCarbGoal    *float64 `json:"daily_carb_goal"`
	DailyFatGoal     *float64 `json:"daily_fat_goal"`
}

// ProfileUpdateRequest is a partial profile update. Absent fields are not changed.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	Age           *int     `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender        *string  `json:"gender"`
	Height        *float64 `json:"height" validate:"omitempty,gte=0"`
	Weight        *float64 `json:"weight" validate:"omitempty,gte=0"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`

	DailyCalorieGoal *int     `json:"daily_calorie_goal" validate:"omitempty,gte=0"`
	DailyProteinGoal *float64 `json:"daily_protein_goal" validate:"omitempty,gte=0"`
	DailyCarbGoal    *float64 `json:"daily_carb_goal" validate:"omitempty,gte=0"`
	DailyFatGoal     *float64 `json:"daily_fat_goal" validate:"omitempty,gte=0"`
}

// ToProfile builds the public view, defaulting activity level and goal.
func (u *UserDB) ToProfile() Profile {
	p := Profile{
		UserID:           u.UserID,
		Username:         u.Username,
		Email:            u.Email,
		Age:              u.Age,
		Gender:           u.Gender,
		Height:           u.Height,
		Weight:           u.Weight,
		ActivityLevel:    u.ActivityLevel,
		Goal:             u.Goal,
		DailyCalorieGoal: u.DailyCalorieGoal,
		DailyProteinGoal: u.DailyProteinGoal,
		DailyCarbGoal:    u.DailyCarbGoal,
		DailyFatGoal:     u.DailyFatGoal,
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = goals.Sedentary
	}
	if p.Goal == "" {
		p.Goal = goals.Maintain
	}
	return p
}

// GoalProfile extracts the attributes the goal calculator needs.
func (u *UserDB) GoalProfile() goals.Profile {
	return goals.Profile{
		Age:           u.Age,
		Gender:        u.Gender,
		Height:        u.Height,
		Weight:        u.Weight,
		ActivityLevel: u.ActivityLevel,
		Goal:          u.Goal,
	}
}

// SetGoals stores computed daily goals on the user.
func (u *UserDB) SetGoals(g goals.Goals) {
	u.DailyCalorieGoal = &g.Calories
	u.DailyProteinGoal = &g.Protein
	u.DailyCarbGoal = &g.Carbs
	u.DailyFatGoal = &g.Fat
}

// Goals returns the stored goals, using goals.Defaults for any that are missing.
func (u *UserDB) Goals() goals.Goals {
	g := goals.Defaults
	if u.DailyCalorieGoal != nil {
		g.Calories = *u.DailyCalorieGoal
	}
	if u.DailyProteinGoal != nil {
		g.Protein = *u.DailyProteinGoal
	}
	if u.DailyCarbGoal != nil {
		g.Carbs = *u.DailyCarbGoal
	}
	if u.DailyFatGoal != nil {
		g.Fat = *u.DailyFatGoal
	}
	return g
}
