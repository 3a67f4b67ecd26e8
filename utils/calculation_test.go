package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMR(t *testing.T) {
	// 88.362 + 13.397*70 + 4.799*175 - 5.677*30 = 1741.469
	assert.InDelta(t, 1741.469, CalculateBMR(70, 175, 30, "male"), 0.001)

	// anything but "male" takes the female branch
	female := 447.593 + 9.247*60 + 3.098*165 - 4.330*25
	assert.InDelta(t, female, CalculateBMR(60, 165, 25, "female"), 0.001)
	assert.InDelta(t, female, CalculateBMR(60, 165, 25, "other"), 0.001)
}

func TestCalculateTDEE(t *testing.T) {
	cases := map[string]float64{
		"sedentary":  1.2,
		"light":      1.375,
		"moderate":   1.55,
		"active":     1.725,
		"veryActive": 1.9,
	}
	for level, multiplier := range cases {
		tdee, err := CalculateTDEE(2000, level)
		require.NoError(t, err)
		assert.InDelta(t, 2000*multiplier, tdee, 0.001)
	}

	_, err := CalculateTDEE(2000, "beginner")
	assert.Error(t, err)
}

func TestExerciseIntensity(t *testing.T) {
	assert.Equal(t, "Low", ExerciseIntensity(3))
	assert.Equal(t, "Low", ExerciseIntensity(5))
	assert.Equal(t, "Medium", ExerciseIntensity(7))
	assert.Equal(t, "Medium", ExerciseIntensity(10))
	assert.Equal(t, "High", ExerciseIntensity(14))
}

func TestIntensityRank(t *testing.T) {
	assert.Less(t, IntensityRank("Low"), IntensityRank("Medium"))
	assert.Less(t, IntensityRank("Medium"), IntensityRank("High"))
}
