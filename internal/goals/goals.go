// Package goals computes daily calorie and macronutrient targets from a
// user's physiological profile.
package goals

import (
	"strconv"
	"strings"
)

// Activity levels.
const (
	Sedentary        = "sedentary"
	LightlyActive    = "lightly_active"
	ModeratelyActive = "moderately_active"
	VeryActive       = "very_active"
	ExtraActive      = "extra_active"
)

// Weight goals.
const (
	LoseWeight = "lose_weight"
	Maintain   = "maintain"
	GainWeight = "gain_weight"
)

var activityMultipliers = map[string]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

var goalAdjustments = map[string]float64{
	LoseWeight: -500,
	Maintain:   0,
	GainWeight: 500,
}

// Defaults are returned when the profile lacks any of age, gender, height or weight.
var Defaults = Goals{Calories: 2000, Protein: 150, Carbs: 250, Fat: 67}

// Goals holds daily targets: kcal and grams of each macronutrient.
type Goals struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Profile is the subset of user attributes the calculator reads.
type Profile struct {
	Age           *int
	Gender        *string
	Height        *float64 // cm
	Weight        *float64 // kg
	ActivityLevel string
	Goal          string
}

// BMR returns the basal metabolic rate (Mifflin-St Jeor) in kcal/day.
// Any gender other than "male" uses the female constant.
func BMR(age int, gender string, heightCM, weightKG float64) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if strings.EqualFold(gender, "male") {
		return base + 5
	}
	return base - 161
}

// TDEE scales a BMR by the activity multiplier. Unknown levels count as sedentary.
func TDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers[Sedentary]
	}
	return bmr * mult
}

// Daily computes the daily targets for p.
//
// Protein, carbs and fat take 25%, 45% and 30% of calories at 4, 4 and 9 kcal/g.
// Calories are truncated, macros rounded to one decimal.
func Daily(p Profile) Goals {
	if !p.complete() {
		return Defaults
	}

	tdee := TDEE(BMR(*p.Age, *p.Gender, *p.Height, *p.Weight), p.ActivityLevel)
	calories := tdee + goalAdjustments[p.Goal]

	return Goals{
		Calories: int(calories),
		Protein:  round1(calories * 0.25 / 4),
		Carbs:    round1(calories * 0.45 / 4),
		Fat:      round1(calories * 0.30 / 9),
	}
}

// Progress returns total as a percentage of goal, or 0 when goal is not positive.
func Progress(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return total / goal * 100
}

// complete treats zero values the same as missing ones.
func (p Profile) complete() bool {
	return p.Age != nil && *p.Age != 0 &&
		p.Gender != nil && *p.Gender != "" &&
		p.Height != nil && *p.Height != 0 &&
		p.Weight != nil && *p.Weight != 0
}

// round1 rounds the exact binary value to one decimal. Exact ties go to
// even, so 102.25 becomes 102.2 while 59.650000000000006 becomes 59.7.
func round1(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
