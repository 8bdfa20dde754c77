package main

import "math"

// The four composite scorers below are running totals over weighted terms.
// UI thresholds (e.g. "≥80 = Very Good") are tuned against these exact
// weights, so changing any of them is a breaking change.
// The diet-readiness composite is dietReadinessScore in metabolic.go — the
// habit weights live in one place only.

// overallHealthScore starts from 100 and subtracts for each risk marker:
// out-of-band BMI, inactivity, sleep debt, smoking, alcohol, and medical
// conditions; hydration and high activity earn small bonuses. Clamped [0, 100].
func overallHealthScore(bmi float64, activityLevel string, sleepHours, recommendedSleep float64, d *dietPreferences, medicalConditions []string) int {
	score := 100

	switch {
	case bmi < 18.5:
		score -= 15
	case bmi < 25:
		// healthy band, no change
	case bmi < 30:
		score -= 10
	default:
		score -= 20
	}

	switch activityLevel {
	case "sedentary":
		score -= 15
	case "light":
		score -= 5
	case "active", "extreme":
		score += 5
	}

	sleepGap := math.Abs(sleepHours - recommendedSleep)
	switch {
	case sleepGap <= 1:
		score += 5
	case sleepGap > 2:
		score -= 10
	}

	if d.SmokesTobacco {
		score -= 20
	}
	if d.DrinksAlcohol {
		score -= 5
	}
	if d.DrinksEnoughWater {
		score += 5
	}

	conditionPenalty := 5 * len(medicalConditions)
	if conditionPenalty > 15 {
		conditionPenalty = 15
	}
	score -= conditionPenalty

	return clampInt(score, 0, 100)
}

// fitnessReadinessScore starts from 50 and adds for training history,
// demonstrated strength and endurance, and an existing routine; sedentary
// lifestyles and physical limitations subtract. Clamped [0, 100].
func fitnessReadinessScore(w *workoutPreferences, physicalLimitations []string) int {
	score := 50

	switch {
	case w.WorkoutExperienceYears >= 3:
		score += 20
	case w.WorkoutExperienceYears >= 1:
		score += 10
	}

	switch {
	case w.CanDoPushups >= 20:
		score += 10
	case w.CanDoPushups >= 10:
		score += 5
	}

	switch {
	case w.CanRunMinutes >= 30:
		score += 15
	case w.CanRunMinutes >= 15:
		score += 10
	}

	switch {
	case w.WorkoutFrequencyPerWeek >= 3:
		score += 10
	case w.WorkoutFrequencyPerWeek >= 1:
		score += 5
	}

	if w.ActivityLevel == "sedentary" {
		score -= 10
	}

	limitationPenalty := 10 * len(physicalLimitations)
	if limitationPenalty > 20 {
		limitationPenalty = 20
	}
	score -= limitationPenalty

	return clampInt(score, 0, 100)
}

// goalRealismScore rates how achievable the stated weight goal is from a
// base of 70: the rate implied by the user's own timeline is compared
// against the healthy pacing rate, with further terms for timeline length
// and total change relative to body mass. Clamped [20, 100] — the floor
// exists because the UI narrates even ambitious goals as partly achievable.
func goalRealismScore(currentKG, targetKG float64, timelineWeeks int, healthyRateKG float64) int {
	score := 70

	delta := math.Abs(currentKG - targetKG)
	if delta == 0 {
		// Maintenance goal: realistic by definition.
		return clampInt(score+20, 20, 100)
	}

	if timelineWeeks > 0 && healthyRateKG > 0 {
		requiredRate := delta / float64(timelineWeeks)
		ratio := requiredRate / healthyRateKG
		switch {
		case ratio <= 1.0:
			score += 20
		case ratio <= 1.2:
			score += 10
		case ratio <= 1.5:
			score -= 10
		default:
			score -= 30
		}
	} else {
		score -= 20 // no timeline to judge against
	}

	switch {
	case timelineWeeks >= 12:
		score += 10
	case timelineWeeks > 0 && timelineWeeks < 4:
		score -= 20
	}

	if delta > currentKG*0.25 {
		score -= 15
	}

	return clampInt(score, 20, 100)
}
