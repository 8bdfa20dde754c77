package main

import (
	"fmt"
	"math"
)

// recommendedSleepHours returns the age-banded sleep recommendation:
// 8.5 under 18, 8.0 under 26, 7.5 under 65, 7.0 otherwise.
func recommendedSleepHours(age int) float64 {
	switch {
	case age < 18:
		return 8.5
	case age < 26:
		return 8.0
	case age < 65:
		return 7.5
	default:
		return 7.0
	}
}

// parseClock parses a 24h "HH:MM" string into minutes after midnight.
func parseClock(s string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return hh*60 + mm, nil
}

// sleepDuration computes nightly sleep in hours (1 decimal) from wake and
// bed times. A non-positive difference wraps +24h — the normal case, since
// most people go to bed before midnight and wake after it.
func sleepDuration(wakeTime, sleepTime string) (float64, error) {
	wake, err := parseClock(wakeTime)
	if err != nil {
		return 0, err
	}
	sleep, err := parseClock(sleepTime)
	if err != nil {
		return 0, err
	}

	minutes := wake - sleep
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return math.Round(float64(minutes)/60*10) / 10, nil
}

// sleepEfficiencyScore scores sleep quality from a base of 50: a banded
// bonus/penalty by distance from the recommended duration (≤0.5h +30,
// ≤1h +20, ≤1.5h +10, ≤2h +0, else −10), plus +5 for each supportive habit
// (no late eating, no coffee, no alcohol, regular meals). Clamped [0, 100].
func sleepEfficiencyScore(currentHours, recommendedHours float64, d *dietPreferences) int {
	score := 50

	diff := math.Abs(currentHours - recommendedHours)
	switch {
	case diff <= 0.5:
		score += 30
	case diff <= 1.0:
		score += 20
	case diff <= 1.5:
		score += 10
	case diff <= 2.0:
		// no change
	default:
		score -= 10
	}

	if d.AvoidsLateNightEating {
		score += 5
	}
	if !d.DrinksCoffee {
		score += 5
	}
	if !d.DrinksAlcohol {
		score += 5
	}
	if d.EatsRegularMeals {
		score += 5
	}

	return clampInt(score, 0, 100)
}
