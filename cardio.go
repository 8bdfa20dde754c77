package main

import "math"

// maxHeartRate uses the classic 220 − age estimate.
func maxHeartRate(age int) int {
	return 220 - age
}

// hrZone is a heart-rate band in beats per minute.
type hrZone struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// heartRateZones are the three training bands derived from max heart rate.
type heartRateZones struct {
	FatBurn hrZone `json:"fat_burn"`
	Cardio  hrZone `json:"cardio"`
	Peak    hrZone `json:"peak"`
}

// zonePct rounds a percentage of max heart rate to a whole bpm.
func zonePct(maxHR int, pct float64) int {
	return int(math.Round(float64(maxHR) * pct))
}

// calculateHeartRateZones splits max heart rate into fat-burn (60-70%),
// cardio (70-85%), and peak (85-95%) bands.
func calculateHeartRateZones(maxHR int) heartRateZones {
	return heartRateZones{
		FatBurn: hrZone{Min: zonePct(maxHR, 0.60), Max: zonePct(maxHR, 0.70)},
		Cardio:  hrZone{Min: zonePct(maxHR, 0.70), Max: zonePct(maxHR, 0.85)},
		Peak:    hrZone{Min: zonePct(maxHR, 0.85), Max: zonePct(maxHR, 0.95)},
	}
}

// estimateVO2Max approximates aerobic capacity from running ability: a
// gendered peak value (50 male / 40 female / 45 other) declining per year
// past age 20 (0.5 / 0.4 / 0.45), plus 0.3 per minute of continuous running.
// Clamped to the physiological [20, 80] ml/kg/min envelope.
func estimateVO2Max(runMinutes, age int, gender string) float64 {
	var peak, declinePerYear float64
	switch gender {
	case "male":
		peak, declinePerYear = 50, 0.5
	case "female":
		peak, declinePerYear = 40, 0.4
	default:
		peak, declinePerYear = 45, 0.45
	}

	yearsPast20 := float64(age - 20)
	if yearsPast20 < 0 {
		yearsPast20 = 0
	}
	vo2 := peak - declinePerYear*yearsPast20 + 0.3*float64(runMinutes)
	return clamp(vo2, 20, 80)
}
