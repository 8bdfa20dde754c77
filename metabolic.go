package main

import (
	"fmt"
	"math"
)

// caloriesPerKG is the energy density of a kilogram of body fat, used to
// convert weekly weight targets into daily calorie deltas.
const caloriesPerKG = 7700

/* ─── BMI / BMR / TDEE ───────────────────────────────────────────────── */

// calculateBMI computes weight / height_m². Height and weight are two of the
// four inputs the engine refuses to default — zero or negative values return
// a MissingInputError rather than a garbage number.
func calculateBMI(weightKG, heightCM float64) (float64, error) {
	if weightKG <= 0 {
		return 0, &MissingInputError{Field: "current_weight_kg"}
	}
	if heightCM <= 0 {
		return 0, &MissingInputError{Field: "height_cm"}
	}
	h := heightCM / 100
	return weightKG / (h * h), nil
}

// calculateBMR computes basal metabolic rate via Mifflin-St Jeor.
// Male +5, female −161; for other/unspecified genders the offset is −78,
// the arithmetic mean of the two gendered constants.
func calculateBMR(weightKG, heightCM float64, age int, gender string) (float64, error) {
	if weightKG <= 0 {
		return 0, &MissingInputError{Field: "current_weight_kg"}
	}
	if heightCM <= 0 {
		return 0, &MissingInputError{Field: "height_cm"}
	}
	if age <= 0 {
		return 0, &MissingInputError{Field: "age"}
	}
	if gender == "" {
		return 0, &MissingInputError{Field: "gender"}
	}

	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	switch gender {
	case "male":
		return base + 5, nil
	case "female":
		return base - 161, nil
	default:
		return base - 78, nil
	}
}

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth for valid activity levels — also used to validate
// the workout-preferences section before saving.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"extreme":   1.9,
}

// calculateTDEE multiplies BMR by the activity factor. An unknown level falls
// back to sedentary — activity level is always populated by the UI, so this
// is the one allowed legacy default.
func calculateTDEE(bmr float64, activityLevel string) float64 {
	mult, found := activityMultipliers[activityLevel]
	if !found {
		mult = activityMultipliers["sedentary"]
	}
	return bmr * mult
}

// occupationMultipliers keys the NEAT (non-exercise) TDEE variant by
// occupation type. Intentionally lower than the activity table: explicit
// workout burn is accounted for separately.
var occupationMultipliers = map[string]float64{
	"desk_job":        1.25,
	"light_active":    1.35,
	"moderate_active": 1.45,
	"heavy_labor":     1.6,
	"very_active":     1.7,
}

// baseTDEEFromOccupation computes daily energy expenditure from occupation
// alone. Unknown occupations fall back to desk_job.
func baseTDEEFromOccupation(bmr float64, occupation string) float64 {
	mult, found := occupationMultipliers[occupation]
	if !found {
		mult = occupationMultipliers["desk_job"]
	}
	return bmr * mult
}

/* ─── Exercise calorie burn (MET) ────────────────────────────────────── */

// metTable maps workout type to MET values at [beginner, intermediate,
// advanced] effort. "mixed" is the fallback row for empty or unmatched types.
var metTable = map[string][3]float64{
	"mixed":    {4.5, 6.0, 7.5},
	"cardio":   {5.0, 7.0, 9.0},
	"strength": {3.5, 5.0, 6.0},
	"hiit":     {6.0, 8.0, 10.0},
	"yoga":     {2.5, 3.0, 4.0},
	"pilates":  {3.0, 3.5, 4.5},
	"running":  {7.0, 9.0, 11.5},
	"cycling":  {5.5, 7.5, 10.0},
	"swimming": {6.0, 8.0, 9.8},
}

// intensityIndex maps an intensity label to its column in metTable.
// Unknown labels read the beginner column.
func intensityIndex(intensity string) int {
	switch intensity {
	case "intermediate":
		return 1
	case "advanced":
		return 2
	default:
		return 0
	}
}

// sessionCalorieBurn estimates calories for one workout session:
// MET × weight_kg × hours, rounded. Only the first workout type is consulted.
func sessionCalorieBurn(durationMinutes int, intensity string, weightKG float64, workoutTypes []string) int {
	workoutType := "mixed"
	if len(workoutTypes) > 0 {
		if _, found := metTable[workoutTypes[0]]; found {
			workoutType = workoutTypes[0]
		}
	}
	met := metTable[workoutType][intensityIndex(intensity)]
	return int(math.Round(met * weightKG * float64(durationMinutes) / 60))
}

// weeklyExerciseBurn is session burn times weekly frequency.
func weeklyExerciseBurn(sessionBurn, frequencyPerWeek int) int {
	return sessionBurn * frequencyPerWeek
}

// dailyExerciseBurn spreads the weekly burn across the week.
func dailyExerciseBurn(weeklyBurn int) int {
	return int(math.Round(float64(weeklyBurn) / 7))
}

/* ─── Metabolic age ──────────────────────────────────────────────────── */

// referenceBMR holds population reference BMR by age band and gender,
// used to convert a BMR gap into metabolic-age years.
type referenceBMR struct {
	maxAge int
	male   float64
	female float64
}

var referenceBMRBands = []referenceBMR{
	{24, 1750, 1350},
	{34, 1700, 1320},
	{44, 1650, 1290},
	{54, 1600, 1260},
	{64, 1550, 1230},
	{math.MaxInt, 1450, 1150},
}

// metabolicAge estimates metabolic age from the gap between the user's BMR
// and the reference BMR for their age band. The gap converts at 10 cal/year
// for males and 8 for females (9 for other genders, matching the averaged
// BMR reference). Clamped to [18, 85].
func metabolicAge(bmr float64, chronologicalAge int, gender string) int {
	var band referenceBMR
	for _, b := range referenceBMRBands {
		if chronologicalAge <= b.maxAge {
			band = b
			break
		}
	}

	var expected, perYear float64
	switch gender {
	case "male":
		expected, perYear = band.male, 10
	case "female":
		expected, perYear = band.female, 8
	default:
		expected, perYear = (band.male+band.female)/2, 9
	}

	diff := expected - bmr // positive gap = metabolically older
	years := int(math.Round(diff / perYear))
	return clampInt(chronologicalAge+years, 18, 85)
}

/* ─── Recommended intensity ──────────────────────────────────────────── */

// pushupThreshold returns the pushup count that marks solid strength for the
// given age and gender. Bands step down each decade past 30.
func pushupThreshold(age int, gender string) int {
	male := gender != "female"
	switch {
	case age < 30:
		if male {
			return 30
		}
		return 15
	case age < 40:
		if male {
			return 25
		}
		return 12
	case age < 50:
		if male {
			return 20
		}
		return 10
	default:
		if male {
			return 15
		}
		return 8
	}
}

// runThresholdMinutes is the continuous-running benchmark used by the
// intensity classifier regardless of age or gender.
const runThresholdMinutes = 15

// recommendedIntensity classifies the user into beginner/intermediate/advanced
// and returns a short justification alongside the label. The UI surfaces the
// reasoning text verbatim, so the wording is part of the contract.
func recommendedIntensity(experienceYears, pushups, runMinutes, age int, gender string) (level, reasoning string) {
	if experienceYears >= 3 {
		return "advanced", "3+ years of consistent training supports an advanced program"
	}
	if experienceYears < 1 {
		return "beginner", "less than a year of training history calls for a beginner program"
	}

	met := 0
	if pushups >= pushupThreshold(age, gender) {
		met++
	}
	if runMinutes >= runThresholdMinutes {
		met++
	}
	switch met {
	case 2:
		return "advanced", "meets both the pushup and running benchmarks for advanced work"
	case 1:
		return "intermediate", "meets some strength and endurance benchmarks; intermediate is the best fit"
	default:
		return "beginner", "below the current strength and endurance benchmarks; starting at beginner"
	}
}

/* ─── Diet readiness ─────────────────────────────────────────────────── */

// dietReadinessScore sums signed habit weights and normalizes the raw
// [-45, 155] range into [0, 100]. Nine positive habits, three negative.
func dietReadinessScore(d *dietPreferences) int {
	raw := 0
	if d.DrinksEnoughWater {
		raw += 10
	}
	if d.LimitsSugaryDrinks {
		raw += 15
	}
	if d.EatsRegularMeals {
		raw += 25
	}
	if d.AvoidsLateNightEating {
		raw += 10
	}
	if d.ControlsPortionSize {
		raw += 30
	}
	if d.ReadsNutritionLabels {
		raw += 20
	}
	if d.EatsFruitsVegetables {
		raw += 20
	}
	if d.LimitsRefinedSugar {
		raw += 15
	}
	if d.IncludesHealthyFats {
		raw += 10
	}
	if d.DrinksAlcohol {
		raw -= 10
	}
	if d.EatsProcessedFoods {
		raw -= 15
	}
	if d.SmokesTobacco {
		raw -= 20
	}

	normalized := int(math.Round(float64(raw+45) / 200 * 100))
	return clampInt(normalized, 0, 100)
}

/* ─── Hydration and fiber ────────────────────────────────────────────── */

// waterIntakeML is the climate-naive base target: 35 ml per kg of body
// weight. The climate-aware adjustment lives in a downstream collaborator.
func waterIntakeML(weightKG float64) int {
	return int(math.Round(weightKG * 35))
}

// fiberGrams targets 14 g of fiber per 1000 kcal. A non-positive calorie
// budget means an upstream pacing bug — error out rather than return 0 g.
func fiberGrams(dailyCalories float64) (int, error) {
	if dailyCalories <= 0 {
		return 0, fmt.Errorf("calorie target must be positive, got %.0f", dailyCalories)
	}
	return int(math.Round(dailyCalories / 1000 * 14)), nil
}

/* ─── Body fat estimation ────────────────────────────────────────────── */

// bodyFatFromBMI estimates body fat via the Deurenberg formula.
// Sex coefficient: 1 for male, 0 for female, 0.5 averaged for other.
func bodyFatFromBMI(bmi float64, gender string, age int) int {
	var sex float64
	switch gender {
	case "male":
		sex = 1
	case "female":
		sex = 0
	default:
		sex = 0.5
	}
	bf := 1.2*bmi + 0.23*float64(age) - 10.8*sex - 5.4
	return int(math.Round(bf))
}

// bodyFatEstimate is a body-fat value with its provenance, kept separate from
// the number so the UI can disclose how trustworthy it is.
type bodyFatEstimate struct {
	Value       float64
	Source      string // user_input | ai_scan | bmi_estimate | default
	Confidence  int    // 0-100
	ShowWarning bool
}

// finalBodyFatPercentage resolves the best available body-fat figure through
// an ordered priority chain: explicit user input wins outright, then a
// high-confidence AI scan, then the BMI-derived estimate, and finally a
// conservative hardcoded default. Each branch tags its own provenance.
func finalBodyFatPercentage(userInput, aiEstimated, aiConfidence *float64, bmi float64, gender string, age int) bodyFatEstimate {
	if userInput != nil && *userInput > 0 {
		return bodyFatEstimate{Value: *userInput, Source: "user_input", Confidence: 100}
	}
	if aiEstimated != nil && aiConfidence != nil && *aiConfidence > 70 {
		return bodyFatEstimate{Value: *aiEstimated, Source: "ai_scan", Confidence: int(*aiConfidence)}
	}
	if bmi > 0 && gender != "" && age > 0 {
		return bodyFatEstimate{
			Value:       float64(bodyFatFromBMI(bmi, gender, age)),
			Source:      "bmi_estimate",
			Confidence:  60,
			ShowWarning: true,
		}
	}
	value := 28.0
	if gender == "male" {
		value = 20.0
	}
	return bodyFatEstimate{Value: value, Source: "default", Confidence: 30, ShowWarning: true}
}

/* ─── TDEE adjustments ───────────────────────────────────────────────── */

// ageAdjustedTDEE applies the stepped metabolic slowdown: 2% from 30, 5%
// from 40, 10% from 50, 15% from 60, plus an extra 5% for females aged
// 45-55 (perimenopausal decline).
func ageAdjustedTDEE(tdee float64, age int, gender string) float64 {
	var reduction float64
	switch {
	case age >= 60:
		reduction = 15
	case age >= 50:
		reduction = 10
	case age >= 40:
		reduction = 5
	case age >= 30:
		reduction = 2
	}
	if gender == "female" && age >= 45 && age <= 55 {
		reduction += 5
	}
	return tdee * (1 - reduction/100)
}

// sleepPenaltyWeeks extends a weight-loss timeline when sleep falls short of
// 7 hours: 20% of the timeline per hour of nightly debt, rounded up.
func sleepPenaltyWeeks(timelineWeeks int, sleepHours float64) int {
	if sleepHours >= 7 {
		return timelineWeeks
	}
	extended := float64(timelineWeeks) * (1 + 0.2*(7-sleepHours))
	return int(math.Ceil(extended))
}

// pregnancyCalorieAdjustment adds the extra energy cost of breastfeeding or
// pregnancy to TDEE. Breastfeeding (+500) takes priority; pregnancy adds by
// trimester (+0 / +340 / +450).
func pregnancyCalorieAdjustment(tdee float64, isPregnant bool, trimester int, isBreastfeeding bool) float64 {
	if isBreastfeeding {
		return tdee + 500
	}
	if !isPregnant {
		return tdee
	}
	switch trimester {
	case 2:
		return tdee + 340
	case 3:
		return tdee + 450
	default:
		return tdee
	}
}
