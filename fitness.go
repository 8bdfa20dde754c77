package main

import "math"

// hasGoal reports whether a goal tag is present in primary_goals.
func hasGoal(goals []string, goal string) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}

// recommendedWorkoutFrequency starts from a 3-day baseline, adds a day for
// muscle-gain and weight-loss goals and for experienced trainees, then caps
// at 1.5× the user's current frequency (when they train at all) so the plan
// never asks for an abrupt jump. Bounded to 2-7 days.
func recommendedWorkoutFrequency(goals []string, experienceYears, currentFrequency int) int {
	freq := 3
	if hasGoal(goals, "muscle_gain") {
		freq++
	}
	if hasGoal(goals, "weight_loss") {
		freq++
	}
	if experienceYears >= 3 {
		freq++
	}
	if currentFrequency > 0 {
		limit := int(math.Ceil(float64(currentFrequency) * 1.5))
		if freq > limit {
			freq = limit
		}
	}
	return clampInt(freq, 2, 7)
}

// recommendedCardioMinutes starts from the 150 min/week guideline, adds for
// weight-loss and endurance goals and for experience, capped at 400.
func recommendedCardioMinutes(goals []string, experienceYears int) int {
	minutes := 150
	if hasGoal(goals, "weight_loss") {
		minutes += 60
	}
	if hasGoal(goals, "improve_endurance") {
		minutes += 90
	}
	if experienceYears >= 3 {
		minutes += 30
	}
	if minutes > 400 {
		minutes = 400
	}
	return minutes
}

// recommendedStrengthSessions starts from 2 sessions, adds for muscle-gain
// and strength goals and for any training history, capped at 5.
func recommendedStrengthSessions(goals []string, experienceYears int) int {
	sessions := 2
	if hasGoal(goals, "muscle_gain") {
		sessions += 2
	}
	if hasGoal(goals, "increase_strength") {
		sessions++
	}
	if experienceYears >= 1 {
		sessions++
	}
	if sessions > 5 {
		sessions = 5
	}
	return sessions
}
