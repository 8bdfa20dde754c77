package main

import (
	"errors"
	"reflect"
	"testing"
)

// validEngineInputs returns a fully-populated set of the four sections.
// Individual tests mutate fields to exercise specific paths.
func validEngineInputs() (*personalInfo, *dietPreferences, *bodyAnalysis, *workoutPreferences) {
	p := &personalInfo{
		Age:            30,
		Gender:         "male",
		WakeTime:       "07:00",
		SleepTime:      "23:00",
		OccupationType: "desk_job",
	}
	d := &dietPreferences{
		DrinksEnoughWater: true,
		EatsRegularMeals:  true,
	}
	b := &bodyAnalysis{
		HeightCM:            175,
		CurrentWeightKG:     80,
		TargetWeightKG:      75,
		TargetTimelineWeeks: 12,
	}
	w := &workoutPreferences{
		ActivityLevel:           "moderate",
		Intensity:               "intermediate",
		WorkoutExperienceYears:  2,
		WorkoutFrequencyPerWeek: 3,
		CanDoPushups:            25,
		CanRunMinutes:           20,
		PrimaryGoals:            []string{"weight_loss"},
		PreferredWorkoutTypes:   []string{"strength"},
	}
	return p, d, b, w
}

// TestCalculateAllMetrics_KnownValues runs the full pipeline on a profile
// with hand-computed expectations for the dependency chain:
// bmr 1748.75 → tdee 2710.56 → age-adjusted 2656.35 → daily 2128 at the
// computed 0.48 kg/week pace.
func TestCalculateAllMetrics_KnownValues(t *testing.T) {
	p, d, b, w := validEngineInputs()
	r, err := calculateAllMetrics(p, d, b, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.BMI != 26.12 {
		t.Errorf("bmi = %v, want 26.12", r.BMI)
	}
	if r.BMR != 1749 {
		t.Errorf("bmr = %v, want 1749", r.BMR)
	}
	if r.TDEE != 2656 {
		t.Errorf("tdee = %v, want 2656", r.TDEE)
	}
	if !almostEqual(r.WeeklyWeightLossRate, 0.48) { // 0.6% of 80kg, male
		t.Errorf("weekly rate = %v, want 0.48", r.WeeklyWeightLossRate)
	}
	if r.DailyCalories != 2128 { // 2656.35 − 0.48×7700/7
		t.Errorf("daily calories = %v, want 2128", r.DailyCalories)
	}
	if r.WaterML != 2800 {
		t.Errorf("water = %d, want 2800", r.WaterML)
	}
	if r.FiberG != 30 {
		t.Errorf("fiber = %d, want 30", r.FiberG)
	}
	if r.EstimatedTimelineWeeks != 11 { // ceil(5 / 0.48), no sleep penalty at 8h
		t.Errorf("timeline = %d, want 11", r.EstimatedTimelineWeeks)
	}
	if r.TotalCalorieDeficit != 3696 { // 0.48 × 7700
		t.Errorf("deficit = %d, want 3696", r.TotalCalorieDeficit)
	}
	if r.MetabolicAge != 25 { // 48.75 above reference at 10 cal/year → −5
		t.Errorf("metabolic age = %d, want 25", r.MetabolicAge)
	}
	if r.MaxHeartRate != 190 || r.PeakZoneMax != 181 {
		t.Errorf("cardio = maxHR %d / peak max %d, want 190 / 181", r.MaxHeartRate, r.PeakZoneMax)
	}
	if !almostEqual(r.VO2Max, 51) { // 50 − 0.5×10 + 0.3×20
		t.Errorf("vo2max = %v, want 51", r.VO2Max)
	}
	if r.SessionCalorieBurn != 300 { // strength @ intermediate, 45min default, 80kg
		t.Errorf("session burn = %d, want 300", r.SessionCalorieBurn)
	}
	if r.WeeklyExerciseBurn != 900 || r.DailyExerciseBurn != 129 {
		t.Errorf("burn = weekly %d / daily %d, want 900 / 129", r.WeeklyExerciseBurn, r.DailyExerciseBurn)
	}
	if r.CurrentSleepDuration != 8.0 || r.RecommendedSleepHours != 7.5 {
		t.Errorf("sleep = %v / %v, want 8.0 / 7.5", r.CurrentSleepDuration, r.RecommendedSleepHours)
	}
	if r.BodyFatSource != "bmi_estimate" {
		t.Errorf("body fat source = %q, want bmi_estimate", r.BodyFatSource)
	}

	// Placeholders stay zero for the external aggregator.
	if r.DataCompletenessPercentage != 0 || r.ReliabilityScore != 0 || r.PersonalizationLevel != 0 {
		t.Error("completion placeholders must remain 0")
	}
}

// TestCalculateAllMetrics_Idempotent verifies two runs over identical inputs
// produce identical records — no hidden randomness or time dependence.
func TestCalculateAllMetrics_Idempotent(t *testing.T) {
	p, d, b, w := validEngineInputs()
	first, err := calculateAllMetrics(p, d, b, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := calculateAllMetrics(p, d, b, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ across runs:\n%+v\n%+v", first, second)
	}
}

// TestCalculateAllMetrics_ScoresInRange sweeps assorted profiles against
// the documented clamp ranges for every bounded output.
func TestCalculateAllMetrics_ScoresInRange(t *testing.T) {
	genders := []string{"male", "female", "other", "prefer_not_to_say"}
	for _, gender := range genders {
		for _, age := range []int{18, 35, 55, 75} {
			for _, weight := range []float64{50, 90, 140} {
				p, d, b, w := validEngineInputs()
				p.Gender = gender
				p.Age = age
				b.CurrentWeightKG = weight
				b.TargetWeightKG = weight - 5

				r, err := calculateAllMetrics(p, d, b, w)
				if err != nil {
					t.Fatalf("(%s, %d, %v): unexpected error: %v", gender, age, weight, err)
				}
				if r.WeeklyWeightLossRate < 0.3 || r.WeeklyWeightLossRate > 1.2 {
					t.Errorf("(%s, %d, %v): rate %v outside [0.3, 1.2]", gender, age, weight, r.WeeklyWeightLossRate)
				}
				if r.VO2Max < 20 || r.VO2Max > 80 {
					t.Errorf("(%s, %d, %v): vo2max %v outside [20, 80]", gender, age, weight, r.VO2Max)
				}
				if r.MetabolicAge < 18 || r.MetabolicAge > 85 {
					t.Errorf("(%s, %d, %v): metabolic age %d outside [18, 85]", gender, age, weight, r.MetabolicAge)
				}
				for name, score := range map[string]int{
					"overall": r.OverallHealthScore,
					"diet":    r.DietReadinessScore,
					"fitness": r.FitnessReadinessScore,
				} {
					if score < 0 || score > 100 {
						t.Errorf("(%s, %d, %v): %s score %d outside [0, 100]", gender, age, weight, name, score)
					}
				}
				if r.GoalRealismScore < 20 || r.GoalRealismScore > 100 {
					t.Errorf("(%s, %d, %v): realism %d outside [20, 100]", gender, age, weight, r.GoalRealismScore)
				}
			}
		}
	}
}

// TestCalculateAllMetrics_MissingInputPropagates verifies a zero physiological
// input aborts the whole run — no partial record.
func TestCalculateAllMetrics_MissingInputPropagates(t *testing.T) {
	p, d, b, w := validEngineInputs()
	b.CurrentWeightKG = 0

	r, err := calculateAllMetrics(p, d, b, w)
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingInputError, got %v", err)
	}
	if missing.Field != "current_weight_kg" {
		t.Errorf("field = %q, want current_weight_kg", missing.Field)
	}
	if r != nil {
		t.Error("expected nil result on validation failure")
	}
}

// TestCalculateAllMetrics_DerivedErrorPropagates forces the calorie target
// negative (tiny TDEE, aggressive override) and verifies the fiber step
// fails loudly with a DerivedCalculationError instead of defaulting.
func TestCalculateAllMetrics_DerivedErrorPropagates(t *testing.T) {
	p, d, b, w := validEngineInputs()
	p.Age = 80
	p.Gender = "female"
	b.HeightCM = 140
	b.CurrentWeightKG = 30
	b.TargetWeightKG = 28
	w.ActivityLevel = "sedentary"
	override := 1.2
	w.WeeklyWeightLossGoal = &override

	r, err := calculateAllMetrics(p, d, b, w)
	var derived *DerivedCalculationError
	if !errors.As(err, &derived) {
		t.Fatalf("expected DerivedCalculationError, got %v", err)
	}
	if derived.Step != "fiber target" {
		t.Errorf("step = %q, want fiber target", derived.Step)
	}
	if r != nil {
		t.Error("expected nil result on derived failure")
	}
}

// TestCalculateAllMetrics_OverrideRespected verifies an explicit
// weekly_weight_loss_goal replaces the computed healthy rate, still clamped.
func TestCalculateAllMetrics_OverrideRespected(t *testing.T) {
	p, d, b, w := validEngineInputs()
	override := 0.5
	w.WeeklyWeightLossGoal = &override

	r, err := calculateAllMetrics(p, d, b, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(r.WeeklyWeightLossRate, 0.5) {
		t.Errorf("rate = %v, want the 0.5 override", r.WeeklyWeightLossRate)
	}

	// An unsafe override is clamped to the ceiling, not honored.
	unsafe := 3.0
	w.WeeklyWeightLossGoal = &unsafe
	r, err = calculateAllMetrics(p, d, b, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(r.WeeklyWeightLossRate, 1.2) {
		t.Errorf("rate = %v, want clamped 1.2", r.WeeklyWeightLossRate)
	}
}

// TestCalculateAllMetrics_UserBodyFatWins verifies the provenance chain
// surfaces user-supplied body fat over the BMI estimate, and that the
// lean/fat split uses it.
func TestCalculateAllMetrics_UserBodyFatWins(t *testing.T) {
	p, d, b, w := validEngineInputs()
	userBF := 25.0
	b.BodyFatPercentage = &userBF

	r, err := calculateAllMetrics(p, d, b, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.BodyFatSource != "user_input" || r.BodyFatConfidence != 100 {
		t.Errorf("source = %q/%d, want user_input/100", r.BodyFatSource, r.BodyFatConfidence)
	}
	if !almostEqual(r.FatMassKG, 20) || !almostEqual(r.LeanMassKG, 60) {
		t.Errorf("split = %v/%v, want 60/20", r.LeanMassKG, r.FatMassKG)
	}
}
