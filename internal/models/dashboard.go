package models

// UserGoals are the daily targets shown on the dashboard
// swagger:model UserGoals
type UserGoals struct {
	DailyCalorieGoal int     `json:"daily_calorie_goal"`
	DailyProteinGoal float64 `json:"daily_protein_goal"`
	DailyCarbGoal    float64 `json:"daily_carb_goal"`
	DailyFatGoal     float64 `json:"daily_fat_goal"`
}

// Dashboard summarizes one day against the user's goals
// swagger:model Dashboard
type Dashboard struct {
	TotalNutrition Nutrition      `json:"total_nutrition"`
	UserGoals      UserGoals      `json:"user_goals"`
	Progress       Nutrition      `json:"progress"` // percent of each goal
	LatestWeight   *WeightEntryDB `json:"latest_weight"`
	EntriesCount   int            `json:"entries_count"`
}
