package main

import "math"

// dailyCaloriesForGoal converts a weekly kg target into a daily calorie delta
// (7700 kcal ≈ 1 kg) and applies it to TDEE in the goal's direction.
func dailyCaloriesForGoal(tdee, weeklyDeltaKG float64, isLoss bool) float64 {
	dailyDelta := weeklyDeltaKG * caloriesPerKG / 7
	if isLoss {
		return tdee - dailyDelta
	}
	return tdee + dailyDelta
}

// macroSplit is the daily macro target in grams.
type macroSplit struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// macronutrients splits the calorie budget into protein/carb/fat grams.
// The default 25/45/30 split is replaced wholesale by the first matching
// readiness flag (keto > high-protein > low-carb), then the protein share is
// floored at 30% for muscle-gain goals, taking the difference from carbs.
// Grams use the 4/4/9 kcal-per-gram conversions.
func macronutrients(dailyCalories float64, primaryGoals []string, d *dietPreferences) macroSplit {
	proteinPct, carbsPct, fatPct := 25.0, 45.0, 30.0
	switch {
	case d.KetoReady:
		proteinPct, carbsPct, fatPct = 25, 5, 70
	case d.HighProteinReady:
		proteinPct, carbsPct, fatPct = 40, 30, 30
	case d.LowCarbReady:
		proteinPct, carbsPct, fatPct = 30, 25, 45
	}

	for _, goal := range primaryGoals {
		if goal == "muscle_gain" && proteinPct < 30 {
			carbsPct -= 30 - proteinPct
			proteinPct = 30
			break
		}
	}

	return macroSplit{
		ProteinG: int(math.Round(dailyCalories * proteinPct / 100 / 4)),
		CarbsG:   int(math.Round(dailyCalories * carbsPct / 100 / 4)),
		FatG:     int(math.Round(dailyCalories * fatPct / 100 / 9)),
	}
}
