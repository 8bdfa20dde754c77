package main

import "testing"

/* ─── Overall health ─────────────────────────────────────────────────── */

// TestOverallHealthScore_HealthyProfile verifies a fully healthy profile
// earns the ceiling: normal BMI, active, good sleep, hydrated, clean habits.
func TestOverallHealthScore_HealthyProfile(t *testing.T) {
	d := &dietPreferences{DrinksEnoughWater: true}
	got := overallHealthScore(22, "active", 7.5, 7.5, d, nil)
	if got != 100 {
		t.Errorf("score = %d, want 100 (clamped ceiling)", got)
	}
}

// TestOverallHealthScore_RiskMarkers checks individual deductions.
func TestOverallHealthScore_RiskMarkers(t *testing.T) {
	clean := &dietPreferences{}

	// Moderate activity, normal BMI, good sleep: 100 + 5 (sleep) = 100… the
	// sleep bonus offsets nothing here, so deductions measure from 105 pre-clamp.
	base := overallHealthScore(22, "moderate", 7.5, 7.5, clean, nil)
	if base != 100 {
		t.Fatalf("baseline = %d, want 100", base)
	}

	// Obese BMI: −20.
	if got := overallHealthScore(32, "moderate", 7.5, 7.5, clean, nil); got != 85 {
		t.Errorf("obese BMI = %d, want 85", got)
	}
	// Sedentary: −15.
	if got := overallHealthScore(22, "sedentary", 7.5, 7.5, clean, nil); got != 90 {
		t.Errorf("sedentary = %d, want 90", got)
	}
	// Smoker: −20.
	smoker := &dietPreferences{SmokesTobacco: true}
	if got := overallHealthScore(22, "moderate", 7.5, 7.5, smoker, nil); got != 85 {
		t.Errorf("smoker = %d, want 85", got)
	}
	// Medical conditions: −5 each, capped at −15.
	four := []string{"a", "b", "c", "d"}
	if got := overallHealthScore(22, "moderate", 7.5, 7.5, clean, four); got != 90 {
		t.Errorf("4 conditions = %d, want 90 (penalty capped at 15)", got)
	}
}

// TestOverallHealthScore_AlwaysInRange sweeps extreme inputs against the
// [0, 100] clamp.
func TestOverallHealthScore_AlwaysInRange(t *testing.T) {
	worst := &dietPreferences{SmokesTobacco: true, DrinksAlcohol: true}
	conditions := []string{"a", "b", "c", "d", "e"}
	for _, bmi := range []float64{12, 22, 38, 55} {
		for _, level := range []string{"sedentary", "moderate", "extreme", "bogus"} {
			got := overallHealthScore(bmi, level, 3, 8, worst, conditions)
			if got < 0 || got > 100 {
				t.Fatalf("score(%v, %s) = %d, outside [0, 100]", bmi, level, got)
			}
		}
	}
}

/* ─── Fitness readiness ──────────────────────────────────────────────── */

// TestFitnessReadinessScore checks the additive terms and both clamp ends.
func TestFitnessReadinessScore(t *testing.T) {
	// Untrained sedentary user with two limitations: 50 − 10 − 20 = 20.
	low := &workoutPreferences{ActivityLevel: "sedentary"}
	if got := fitnessReadinessScore(low, []string{"knee", "back"}); got != 20 {
		t.Errorf("low = %d, want 20", got)
	}

	// Seasoned trainee: 50 + 20 + 10 + 15 + 10 = 105 → clamped 100.
	high := &workoutPreferences{
		ActivityLevel:           "active",
		WorkoutExperienceYears:  5,
		CanDoPushups:            30,
		CanRunMinutes:           40,
		WorkoutFrequencyPerWeek: 4,
	}
	if got := fitnessReadinessScore(high, nil); got != 100 {
		t.Errorf("high = %d, want 100 (clamped)", got)
	}

	// Mid-tier: 1y experience (+10), 12 pushups (+5), 20min run (+10),
	// 2 sessions (+5) = 80.
	mid := &workoutPreferences{
		ActivityLevel:           "moderate",
		WorkoutExperienceYears:  1,
		CanDoPushups:            12,
		CanRunMinutes:           20,
		WorkoutFrequencyPerWeek: 2,
	}
	if got := fitnessReadinessScore(mid, nil); got != 80 {
		t.Errorf("mid = %d, want 80", got)
	}
}

/* ─── Goal realism ───────────────────────────────────────────────────── */

// TestGoalRealismScore checks the pacing-ratio bands, timeline terms, and
// the [20, 100] clamp with its narrative floor.
func TestGoalRealismScore(t *testing.T) {
	// 8kg over 16 weeks at a 0.6 healthy rate: ratio 0.83 (+20), long
	// timeline (+10) = 100.
	if got := goalRealismScore(80, 72, 16, 0.6); got != 100 {
		t.Errorf("realistic goal = %d, want 100", got)
	}

	// 20kg in 5 weeks at 0.6: ratio 6.7 (−30) = 40.
	if got := goalRealismScore(80, 60, 5, 0.6); got != 40 {
		t.Errorf("aggressive goal = %d, want 40", got)
	}

	// 30kg in 2 weeks: ratio 25 (−30), short timeline (−20), >25% of body
	// mass (−15): 70−65 = 5 → floored at 20.
	if got := goalRealismScore(80, 50, 2, 0.6); got != 20 {
		t.Errorf("extreme goal = %d, want 20 (floor)", got)
	}

	// Maintenance is realistic by definition.
	if got := goalRealismScore(80, 80, 0, 0.6); got != 90 {
		t.Errorf("maintenance = %d, want 90", got)
	}
}

// TestGoalRealismScore_AlwaysInRange sweeps the clamp range.
func TestGoalRealismScore_AlwaysInRange(t *testing.T) {
	for target := 30.0; target <= 130; target += 10 {
		for weeks := 0; weeks <= 52; weeks += 4 {
			got := goalRealismScore(80, target, weeks, 0.6)
			if got < 20 || got > 100 {
				t.Fatalf("score(80, %v, %d) = %d, outside [20, 100]", target, weeks, got)
			}
		}
	}
}
