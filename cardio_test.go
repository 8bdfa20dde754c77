package main

import "testing"

// TestHeartRateZones is the documented scenario: age 30 ⇒ maxHR 190 ⇒
// fatBurn {114, 133}, cardio {133, 162}, peak {162, 181}.
func TestHeartRateZones(t *testing.T) {
	maxHR := maxHeartRate(30)
	if maxHR != 190 {
		t.Fatalf("maxHR = %d, want 190", maxHR)
	}

	zones := calculateHeartRateZones(maxHR)
	checks := []struct {
		name      string
		zone      hrZone
		min, max  int
	}{
		{"fat burn", zones.FatBurn, 114, 133},
		{"cardio", zones.Cardio, 133, 162},
		{"peak", zones.Peak, 162, 181},
	}
	for _, c := range checks {
		if c.zone.Min != c.min || c.zone.Max != c.max {
			t.Errorf("%s zone = %+v, want {%d, %d}", c.name, c.zone, c.min, c.max)
		}
	}
}

// TestZonesAreContiguous verifies each zone starts where the previous ends —
// the UI renders them as a stacked bar with no gaps.
func TestZonesAreContiguous(t *testing.T) {
	for age := 18; age <= 80; age += 7 {
		zones := calculateHeartRateZones(maxHeartRate(age))
		if zones.FatBurn.Max != zones.Cardio.Min {
			t.Errorf("age %d: fat burn max %d != cardio min %d", age, zones.FatBurn.Max, zones.Cardio.Min)
		}
		if zones.Cardio.Max != zones.Peak.Min {
			t.Errorf("age %d: cardio max %d != peak min %d", age, zones.Cardio.Max, zones.Peak.Min)
		}
	}
}

// TestEstimateVO2Max checks the gendered peak, age decline, running bonus,
// and the no-penalty-under-20 rule.
func TestEstimateVO2Max(t *testing.T) {
	// Male at 20 with no running ability sits exactly at the peak.
	if got := estimateVO2Max(0, 20, "male"); !almostEqual(got, 50) {
		t.Errorf("male@20 = %v, want 50", got)
	}
	// No age penalty below 20.
	if got := estimateVO2Max(0, 16, "male"); !almostEqual(got, 50) {
		t.Errorf("male@16 = %v, want 50", got)
	}
	// Female at 40: 40 − 0.4×20 + 0.3×10 = 35.
	if got := estimateVO2Max(10, 40, "female"); !almostEqual(got, 35) {
		t.Errorf("female@40 = %v, want 35", got)
	}
}

// TestEstimateVO2Max_AlwaysClamped is the property check for [20, 80].
func TestEstimateVO2Max_AlwaysClamped(t *testing.T) {
	for _, gender := range []string{"male", "female", "other"} {
		for age := 10; age <= 100; age += 9 {
			for run := 0; run <= 180; run += 20 {
				got := estimateVO2Max(run, age, gender)
				if got < 20 || got > 80 {
					t.Fatalf("vo2max(%d, %d, %s) = %v, outside [20, 80]", run, age, gender, got)
				}
			}
		}
	}
}
