package models

import "time"

// Meal types a food entry can be filed under.
const (
	Breakfast = "breakfast"
	Lunch     = "lunch"
	Dinner    = "dinner"
	Snack     = "snack"
)

// FoodEntryDB is a logged food in the food_entries collection.
// Nutrient values are totals for the logged servings, not per serving.
type FoodEntryDB struct {
	EntryID   string    `bson:"entry_id" json:"entry_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	FoodID    string    `bson:"food_id" json:"food_id"`
	FoodName  string    `bson:"food_name" json:"food_name"`
	MealType  string    `bson:"meal_type" json:"meal_type"`
	Servings  float64   `bson:"servings" json:"servings"`
	Calories  float64   `bson:"calories" json:"calories"`
	Protein   float64   `bson:"protein" json:"protein"`
	Carbs     float64   `bson:"carbs" json:"carbs"`
	Fat       float64   `bson:"fat" json:"fat"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// FoodEntryRequest represents the JSON body for logging a food
// swagger:model FoodEntryRequest
type FoodEntryRequest struct {
	// Ignored: the entry always belongs to the caller.
	UserID string `json:"user_id,omitempty"`

	// required: true
	// example: 123456
	FoodID string `json:"food_id" validate:"required"`

	// required: true
	// example: Banana, raw
	FoodName string `json:"food_name" validate:"required"`

	// required: true
	// example: breakfast
	MealType string `json:"meal_type" validate:"required"`

	// required: true
	// example: 1.5
	Servings float64 `json:"servings" validate:"gte=0"`

	// example: 133.5
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`

	// required: true
	// example: 2024-05-01
	Date string `json:"date" validate:"required,datetime=2006-01-02"`

	// Defaults to the time the entry is received.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Nutrition sums calories and macronutrients.
// swagger:model Nutrition
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add accumulates a food entry.
func (n *Nutrition) Add(e FoodEntryDB) {
	n.Calories += e.Calories
	n.Protein += e.Protein
	n.Carbs += e.Carbs
	n.Fat += e.Fat
}

// MealEntries groups a day's entries by meal type.
// swagger:model MealEntries
type MealEntries struct {
	Breakfast []FoodEntryDB `json:"breakfast"`
	Lunch     []FoodEntryDB `json:"lunch"`
	Dinner    []FoodEntryDB `json:"dinner"`
	Snack     []FoodEntryDB `json:"snack"`
}

// NewMealEntries returns buckets that encode as empty arrays rather than null.
func NewMealEntries() MealEntries {
	return MealEntries{
		Breakfast: []FoodEntryDB{},
		Lunch:     []FoodEntryDB{},
		Dinner:    []FoodEntryDB{},
		Snack:     []FoodEntryDB{},
	}
}

// Append files e under its meal type. It reports false for an unknown meal type.
func (m *MealEntries) Append(e FoodEntryDB) bool {
	switch e.MealType {
	case Breakfast:
		m.Breakfast = append(m.Breakfast, e)
	case Lunch:
		m.Lunch = append(m.Lunch, e)
	case Dinner:
		m.Dinner = append(m.Dinner, e)
	case Snack:
		m.Snack = append(m.Snack, e)
	default:
		return false
	}
	return true
}

// DailyFoodLog is the response of the food entries listing
// swagger:model DailyFoodLog
type DailyFoodLog struct {
	Entries        MealEntries `json:"entries"`
	TotalNutrition Nutrition   `json:"total_nutrition"`
}
