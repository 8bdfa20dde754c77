package main

import "math"

// Safety rails for weekly weight-loss pacing, in kg/week. Every rate the
// engine emits — computed or user-supplied — passes through this envelope.
const (
	minWeeklyLossKG = 0.3
	maxWeeklyLossKG = 1.2
)

// weightRange is a min/max weight envelope in kg.
type weightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// idealWeightRange estimates a healthy weight envelope. Male/female use the
// Devine formula (50 kg or 45.5 kg + 2.3 kg per inch over 5 feet) with a
// ±10% band; other/unspecified genders use the 18.5-24.9 BMI band directly
// since Devine has no ungendered constant.
func idealWeightRange(heightCM float64, gender string) weightRange {
	switch gender {
	case "male", "female":
		inchesOverFiveFeet := heightCM/2.54 - 60
		if inchesOverFiveFeet < 0 {
			inchesOverFiveFeet = 0
		}
		ideal := 45.5 + 2.3*inchesOverFiveFeet
		if gender == "male" {
			ideal = 50 + 2.3*inchesOverFiveFeet
		}
		return weightRange{Min: ideal * 0.9, Max: ideal * 1.1}
	default:
		h := heightCM / 100
		return weightRange{Min: 18.5 * h * h, Max: 24.9 * h * h}
	}
}

// healthyWeightLossRate derives a sustainable kg/week pace from body mass:
// 1% of body weight above 100 kg, 0.8% above 80 kg, 0.6% otherwise, scaled
// by a gender multiplier (female ×0.85, other ×0.925) and clamped to the
// [0.3, 1.2] safety envelope.
func healthyWeightLossRate(currentWeightKG float64, gender string) float64 {
	var pct float64
	switch {
	case currentWeightKG > 100:
		pct = 0.01
	case currentWeightKG > 80:
		pct = 0.008
	default:
		pct = 0.006
	}
	rate := currentWeightKG * pct

	switch gender {
	case "female":
		rate *= 0.85
	case "male":
		// no adjustment
	default:
		rate *= 0.925
	}

	return clamp(rate, minWeeklyLossKG, maxWeeklyLossKG)
}

// bodyFatRange is a healthy body-fat percentage band.
type bodyFatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// bodyFatBand holds the healthy range per age band for both genders.
type bodyFatBand struct {
	maxAge int
	male   bodyFatRange
	female bodyFatRange
}

var bodyFatBands = []bodyFatBand{
	{24, bodyFatRange{8, 19}, bodyFatRange{20, 28}},
	{34, bodyFatRange{9, 20}, bodyFatRange{21, 30}},
	{44, bodyFatRange{11, 22}, bodyFatRange{22, 31}},
	{54, bodyFatRange{12, 23}, bodyFatRange{24, 33}},
	{math.MaxInt, bodyFatRange{13, 25}, bodyFatRange{25, 34}},
}

// healthyBodyFatRange looks up the healthy band for age and gender.
// Unmatched genders default to the 25-34 male band.
func healthyBodyFatRange(age int, gender string) bodyFatRange {
	if gender != "male" && gender != "female" {
		return bodyFatBands[1].male
	}
	for _, b := range bodyFatBands {
		if age <= b.maxAge {
			if gender == "female" {
				return b.female
			}
			return b.male
		}
	}
	return bodyFatBands[1].male // unreachable, last band is open-ended
}

// bodyComposition splits total mass into lean and fat mass by percentage,
// each rounded to 2 decimals.
func bodyComposition(weightKG, bodyFatPct float64) (leanKG, fatKG float64) {
	fatKG = round2(weightKG * bodyFatPct / 100)
	leanKG = round2(weightKG - weightKG*bodyFatPct/100)
	return leanKG, fatKG
}

// waistHipRatio is waist over hip circumference, rounded to 2 decimals.
func waistHipRatio(waistCM, hipCM float64) float64 {
	return round2(waistCM / hipCM)
}
