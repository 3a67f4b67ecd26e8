package utils

import "fmt"

// activityMultipliers maps a profile activity level onto the TDEE factor.
var activityMultipliers = map[string]float64{
	"sedentary":  1.2,
	"light":      1.375,
	"moderate":   1.55,
	"active":     1.725,
	"veryActive": 1.9,
}

// CalculateBMR applies the Harris-Benedict formula. Weight in kg, height in
// cm. Any gender other than "male" takes the female branch.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	if gender == "male" {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// CalculateTDEE scales a BMR by the activity multiplier.
func CalculateTDEE(bmr float64, activityLevel string) (float64, error) {
	m, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("invalid activity level: %s", activityLevel)
	}
	return bmr * m, nil
}

// ExerciseIntensity bands an exercise by its burn rate (kcal/min).
func ExerciseIntensity(caloriesBurnedPerMinute float64) string {
	if caloriesBurnedPerMinute <= 5 {
		return "Low"
	}
	if caloriesBurnedPerMinute <= 10 {
		return "Medium"
	}
	return "High"
}

// IntensityRank orders Low < Medium < High for sorting.
func IntensityRank(intensity string) int {
	switch intensity {
	case "Low":
		return 0
	case "Medium":
		return 1
	default:
		return 2
	}
}
