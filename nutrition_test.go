package main

import "testing"

// TestDailyCaloriesForGoal checks the 7700 kcal/kg conversion in both
// directions: 0.7 kg/week ⇒ 770 kcal/day.
func TestDailyCaloriesForGoal(t *testing.T) {
	if got := dailyCaloriesForGoal(2500, 0.7, true); !almostEqual(got, 1730) {
		t.Errorf("loss target = %v, want 1730", got)
	}
	if got := dailyCaloriesForGoal(2500, 0.7, false); !almostEqual(got, 3270) {
		t.Errorf("gain target = %v, want 3270", got)
	}
}

// TestMacronutrients_DefaultSplit checks 25/45/30 with 4/4/9 conversions at
// 2000 kcal: 125g protein, 225g carbs, 67g fat.
func TestMacronutrients_DefaultSplit(t *testing.T) {
	m := macronutrients(2000, nil, &dietPreferences{})
	if m.ProteinG != 125 || m.CarbsG != 225 || m.FatG != 67 {
		t.Errorf("default split = %+v, want {125, 225, 67}", m)
	}
}

// TestMacronutrients_ReadinessPrecedence verifies keto > high-protein >
// low-carb: when several flags are set the highest-precedence split wins
// wholesale.
func TestMacronutrients_ReadinessPrecedence(t *testing.T) {
	// All three set: keto's 25/5/70 wins. 2000 kcal → 125 / 25 / 156.
	all := &dietPreferences{KetoReady: true, HighProteinReady: true, LowCarbReady: true}
	if m := macronutrients(2000, nil, all); m.ProteinG != 125 || m.CarbsG != 25 || m.FatG != 156 {
		t.Errorf("keto split = %+v, want {125, 25, 156}", m)
	}

	// High-protein beats low-carb: 40/30/30 → 200 / 150 / 67.
	hp := &dietPreferences{HighProteinReady: true, LowCarbReady: true}
	if m := macronutrients(2000, nil, hp); m.ProteinG != 200 || m.CarbsG != 150 || m.FatG != 67 {
		t.Errorf("high-protein split = %+v, want {200, 150, 67}", m)
	}

	// Low-carb alone: 30/25/45 → 150 / 125 / 100.
	lc := &dietPreferences{LowCarbReady: true}
	if m := macronutrients(2000, nil, lc); m.ProteinG != 150 || m.CarbsG != 125 || m.FatG != 100 {
		t.Errorf("low-carb split = %+v, want {150, 125, 100}", m)
	}
}

// TestMacronutrients_MuscleGainFloor verifies the 30% protein floor moves
// percentage points out of carbs: default 25/45/30 becomes 30/40/30.
// 2000 kcal → 150 / 200 / 67.
func TestMacronutrients_MuscleGainFloor(t *testing.T) {
	m := macronutrients(2000, []string{"muscle_gain"}, &dietPreferences{})
	if m.ProteinG != 150 || m.CarbsG != 200 || m.FatG != 67 {
		t.Errorf("muscle-gain split = %+v, want {150, 200, 67}", m)
	}

	// Splits already at or above 30% protein are untouched.
	hp := &dietPreferences{HighProteinReady: true}
	if m := macronutrients(2000, []string{"muscle_gain"}, hp); m.ProteinG != 200 {
		t.Errorf("high-protein + muscle gain protein = %d, want 200", m.ProteinG)
	}
}
