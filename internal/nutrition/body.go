package nutrition

import (
	"math"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

// BMI categories as shown to the user.
const (
	BMINotAvailable = "Not available"
	BMIUnderweight  = "Underweight"
	BMINormal       = "Normal weight"
	BMIOverweight   = "Overweight"
	BMIObese        = "Obese"
)

// ComputeBMI expects height in centimeters and weight in kilograms and
// returns kg/m² rounded to one decimal. A non-positive input returns 0,
// the "not available" sentinel, rather than an error.
func ComputeBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100.0
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10
}

// ClassifyBMI maps a BMI value to its category. Bounds are inclusive on
// the lower edge, so 18.5 is already normal weight and 25.0 overweight.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi <= 0:
		return BMINotAvailable
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25.0:
		return BMINormal
	case bmi < 30.0:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// EstimateDailyCalorieTarget derives a daily calorie target from the
// revised Harris-Benedict BMR, scaled by activity level and shifted by
// ±500 kcal for a weight goal. Unrecognized activity levels fall back to
// the sedentary factor.
func EstimateDailyCalorieTarget(u models.User) int {
	var bmr float64
	if u.Gender == "Male" {
		bmr = 88.362 + 13.397*u.WeightKg + 4.799*u.HeightCm - 5.677*float64(u.Age)
	} else {
		bmr = 447.593 + 9.247*u.WeightKg + 3.098*u.HeightCm - 4.330*float64(u.Age)
	}
	tdee := bmr * activityFactor(u.ActivityLevel)
	switch u.Goal {
	case models.GoalLoseWeight:
		tdee -= 500
	case models.GoalGainWeight:
		tdee += 500
	}
	return int(math.Round(tdee))
}

func activityFactor(level models.ActivityLevel) float64 {
	switch level {
	case models.ActivitySedentary:
		return 1.2
	case models.ActivityLight:
		return 1.375
	case models.ActivityModerate:
		return 1.55
	case models.ActivityActive:
		return 1.725
	case models.ActivityVeryActive:
		return 1.9
	default:
		return 1.2
	}
}
