package models

import "time"

// UserDB is a user document in the users collection.
type UserDB struct {
	UserID   string `bson:"user_id"`  // Random UUID, unique
	Username string `bson:"username"` // Unique login name, also the token subject
	Email    string `bson:"email"`    // Unique email
	Password string `bson:"password"` // bcrypt hash

	Age           *int     `bson:"age,omitempty"`
	Gender        *string  `bson:"gender,omitempty"`
	Height        *float64 `bson:"height,omitempty"` // cm
	Weight        *float64 `bson:"weight,omitempty"` // kg
	ActivityLevel string   `bson:"activity_level,omitempty"`
	Goal          string   `bson:"goal,omitempty"`

	DailyCalorieGoal *int     `bson:"daily_calorie_goal,omitempty"`
	DailyProteinGoal *float64 `bson:"daily_protein_goal,omitempty"`
	DailyCarbGoal    *float64 `bson:"daily_carb_goal,omitempty"`
	DailyFatGoal     *float64 `bson:"daily_fat_goal,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
}

// UserUpdate is a partial update of a user document. Nil fields are left untouched.
type UserUpdate struct {
	Age           *int     `bson:"age,omitempty"`
	Gender        *string  `bson:"gender,omitempty"`
	Height        *float64 `bson:"height,omitempty"`
	Weight        *float64 `bson:"weight,omitempty"`
	ActivityLevel *string  `bson:"activity_level,omitempty"`
	Goal          *string  `bson:"goal,omitempty"`

	DailyCalorieGoal *int     `bson:"daily_calorie_goal,omitempty"`
	DailyProteinGoal *float64 `bson:"daily_protein_goal,omitempty"`
	DailyCarbGoal    *float64 `bson:"daily_carb_goal,omitempty"`
	DailyFatGoal     *float64 `bson:"daily_fat_goal,omitempty"`
}

// IsEmpty reports whether the update sets no field at all.
func (u UserUpdate) IsEmpty() bool {
	return u == UserUpdate{}
}

// TouchesProfile reports whether a field feeding the goal calculation is set.
func (u UserUpdate) TouchesProfile() bool {
	return u.Age != nil || u.Gender != nil || u.Height != nil || u.Weight != nil ||
		u.ActivityLevel != nil || u.Goal != nil
}
