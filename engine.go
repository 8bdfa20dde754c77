package main

import (
	"fmt"
	"math"
)

/* ─── Error taxonomy ─────────────────────────────────────────────────── */

// MissingInputError is returned when a required physiological input (weight,
// height, age, gender) is absent or zero. The engine never substitutes a
// default for these four — callers surface a profile-completion prompt instead.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// DerivedCalculationError wraps a failure in a calculation that depends on an
// earlier derived value (e.g. a fiber target from a non-positive calorie
// budget). Wrapping instead of defaulting keeps data-flow bugs visible.
type DerivedCalculationError struct {
	Step string
	Err  error
}

func (e *DerivedCalculationError) Error() string {
	return fmt.Sprintf("derived calculation %q failed: %v", e.Step, e.Err)
}

func (e *DerivedCalculationError) Unwrap() error { return e.Err }

/* ─── Shared clamp helpers ───────────────────────────────────────────── */

// clamp bounds v to [lo, hi]. Every safety-rail invariant (weight-loss rate,
// VO2max, metabolic age, composite scores) goes through here rather than
// ad hoc min/max at each call site.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds to 2 decimal places, used for mass splits and ratios.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

/* ─── Orchestrator ───────────────────────────────────────────────────── */

// calculateAllMetrics runs every calculator in dependency order and assembles
// the advanced review record. It is pure: identical inputs produce identical
// outputs, and the returned record shares no state with the inputs.
//
// Errors from the four core physiological calculations propagate immediately —
// no partial record is ever returned. The three completion-related fields are
// left 0 for the external aggregator to fill.
func calculateAllMetrics(p *personalInfo, d *dietPreferences, b *bodyAnalysis, w *workoutPreferences) (*advancedReviewData, error) {
	// Metabolic chain: bmi → bmr → tdee → metabolic age.
	bmi, err := calculateBMI(b.CurrentWeightKG, b.HeightCM)
	if err != nil {
		return nil, err
	}
	bmr, err := calculateBMR(b.CurrentWeightKG, b.HeightCM, p.Age, p.Gender)
	if err != nil {
		return nil, err
	}
	tdee := calculateTDEE(bmr, w.ActivityLevel)
	tdee = ageAdjustedTDEE(tdee, p.Age, p.Gender)
	tdee = pregnancyCalorieAdjustment(tdee, p.IsPregnant, p.PregnancyTrimester, p.IsBreastfeeding)
	metAge := metabolicAge(bmr, p.Age, p.Gender)

	// Weight management. An explicit user override wins over the computed
	// healthy rate, but both go through the same [0.3, 1.2] safety clamp.
	ideal := idealWeightRange(b.HeightCM, p.Gender)
	weeklyRate := healthyWeightLossRate(b.CurrentWeightKG, p.Gender)
	if w.WeeklyWeightLossGoal != nil && *w.WeeklyWeightLossGoal > 0 {
		weeklyRate = clamp(*w.WeeklyWeightLossGoal, minWeeklyLossKG, maxWeeklyLossKG)
	}
	isLoss := b.TargetWeightKG < b.CurrentWeightKG

	// Nutrition targets depend on the adjusted TDEE.
	dailyCalories := dailyCaloriesForGoal(tdee, weeklyRate, isLoss)
	macros := macronutrients(dailyCalories, w.PrimaryGoals, d)
	water := waterIntakeML(b.CurrentWeightKG)
	fiber, err := fiberGrams(dailyCalories)
	if err != nil {
		return nil, &DerivedCalculationError{Step: "fiber target", Err: err}
	}

	// Body composition.
	bfRange := healthyBodyFatRange(p.Age, p.Gender)
	bf := finalBodyFatPercentage(b.BodyFatPercentage, b.AIBodyFatPercentage, b.AIConfidence, bmi, p.Gender, p.Age)
	leanKG, fatKG := bodyComposition(b.CurrentWeightKG, bf.Value)
	var whr float64
	if b.WaistCM != nil && b.HipCM != nil && *b.HipCM > 0 {
		whr = waistHipRatio(*b.WaistCM, *b.HipCM)
	}

	// Cardiovascular.
	maxHR := maxHeartRate(p.Age)
	zones := calculateHeartRateZones(maxHR)
	vo2 := estimateVO2Max(w.CanRunMinutes, p.Age, p.Gender)

	// Fitness recommendations and exercise burn.
	intensityLevel, intensityWhy := recommendedIntensity(w.WorkoutExperienceYears, w.CanDoPushups, w.CanRunMinutes, p.Age, p.Gender)
	sessionBurn := sessionCalorieBurn(w.sessionDuration(), w.Intensity, b.CurrentWeightKG, w.PreferredWorkoutTypes)
	weeklyBurn := weeklyExerciseBurn(sessionBurn, w.WorkoutFrequencyPerWeek)
	dailyBurn := dailyExerciseBurn(weeklyBurn)

	// Sleep.
	recSleep := recommendedSleepHours(p.Age)
	curSleep, err := sleepDuration(p.WakeTime, p.SleepTime)
	if err != nil {
		return nil, &DerivedCalculationError{Step: "sleep duration", Err: err}
	}
	sleepScore := sleepEfficiencyScore(curSleep, recSleep, d)

	// Composite scores.
	dietScore := dietReadinessScore(d)
	overall := overallHealthScore(bmi, w.ActivityLevel, curSleep, recSleep, d, b.MedicalConditions)
	fitness := fitnessReadinessScore(w, b.PhysicalLimitations)
	realism := goalRealismScore(b.CurrentWeightKG, b.TargetWeightKG, b.TargetTimelineWeeks, weeklyRate)

	// Timeline: weeks implied by the pacing rate, extended by sleep debt.
	timelineWeeks := b.TargetTimelineWeeks
	if isLoss && weeklyRate > 0 {
		timelineWeeks = int(math.Ceil((b.CurrentWeightKG - b.TargetWeightKG) / weeklyRate))
	}
	timelineWeeks = sleepPenaltyWeeks(timelineWeeks, curSleep)
	weeklyDeficit := int(math.Round(weeklyRate * caloriesPerKG))

	return &advancedReviewData{
		BMI:          round2(bmi),
		BMR:          math.Round(bmr),
		TDEE:         math.Round(tdee),
		MetabolicAge: metAge,

		DailyCalories: math.Round(dailyCalories),
		ProteinG:      macros.ProteinG,
		CarbsG:        macros.CarbsG,
		FatG:          macros.FatG,
		WaterML:       water,
		FiberG:        fiber,

		HealthyWeightMin:       round2(ideal.Min),
		HealthyWeightMax:       round2(ideal.Max),
		WeeklyWeightLossRate:   weeklyRate,
		EstimatedTimelineWeeks: timelineWeeks,
		TotalCalorieDeficit:    weeklyDeficit,

		IdealBodyFatMin:   bfRange.Min,
		IdealBodyFatMax:   bfRange.Max,
		LeanMassKG:        leanKG,
		FatMassKG:         fatKG,
		BodyFatPercentage: bf.Value,
		BodyFatSource:     bf.Source,
		BodyFatConfidence: bf.Confidence,
		WaistHipRatio:     whr,

		MaxHeartRate:   maxHR,
		VO2Max:         vo2,
		FatBurnZoneMin: zones.FatBurn.Min,
		FatBurnZoneMax: zones.FatBurn.Max,
		CardioZoneMin:  zones.Cardio.Min,
		CardioZoneMax:  zones.Cardio.Max,
		PeakZoneMin:    zones.Peak.Min,
		PeakZoneMax:    zones.Peak.Max,

		WorkoutFrequency:     recommendedWorkoutFrequency(w.PrimaryGoals, w.WorkoutExperienceYears, w.WorkoutFrequencyPerWeek),
		CardioMinutes:        recommendedCardioMinutes(w.PrimaryGoals, w.WorkoutExperienceYears),
		StrengthSessions:     recommendedStrengthSessions(w.PrimaryGoals, w.WorkoutExperienceYears),
		RecommendedIntensity: intensityLevel,
		IntensityReasoning:   intensityWhy,
		SessionCalorieBurn:   sessionBurn,
		WeeklyExerciseBurn:   weeklyBurn,
		DailyExerciseBurn:    dailyBurn,

		OverallHealthScore:    overall,
		DietReadinessScore:    dietScore,
		FitnessReadinessScore: fitness,
		GoalRealismScore:      realism,

		RecommendedSleepHours: recSleep,
		CurrentSleepDuration:  curSleep,
		SleepEfficiencyScore:  sleepScore,
	}, nil
}
