package main

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// validGenders is the set of allowed gender values. Reject unknown values
// with 400 rather than letting them reach the engine's soft-default path.
var validGenders = map[string]bool{
	"male":              true,
	"female":            true,
	"other":             true,
	"prefer_not_to_say": true,
}

// validIntensities is the set of allowed workout intensity labels.
var validIntensities = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

/* ─── Profile read ────────────────────────────────────────────────────── */

// onboardingProfileResponse wraps the stored sections with per-section
// completion flags so the UI can route the user to the next step.
type onboardingProfileResponse struct {
	onboardingProfile
	Complete map[string]bool `json:"complete"`
}

// getOnboardingProfile returns all four stored sections for the user.
// GET /api/onboarding/profile. A user who has never saved a section gets an
// empty profile row, not a 404 — the row is created at signup.
func (h *Handler) getOnboardingProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	p, err := queryOne[onboardingProfile](h.db, c,
		"SELECT * FROM onboarding_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	c.JSON(http.StatusOK, onboardingProfileResponse{
		onboardingProfile: p,
		Complete: map[string]bool{
			"personal_info":       p.PersonalInfo != nil,
			"diet_preferences":    p.DietPreferences != nil,
			"body_analysis":       p.BodyAnalysis != nil,
			"workout_preferences": p.WorkoutPreferences != nil,
		},
	})
}

/* ─── Section writes ──────────────────────────────────────────────────── */

// saveSection upserts one JSONB section column for the user and returns the
// full profile row. column is always one of our four literal names, never
// user input. The section is marshalled here rather than passed as a struct
// — the simple query protocol gives pgx no parameter OIDs to trigger its
// JSON codec on.
func (h *Handler) saveSection(c *gin.Context, column string, section any) {
	payload, err := json.Marshal(section)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to encode "+column)
		return
	}
	userID := c.GetInt("user_id")

	p, err := queryOne[onboardingProfile](h.db, c,
		`INSERT INTO onboarding_profiles (user_id, `+column+`, updated_at)
		 VALUES (@userID, @section::jsonb, now())
		 ON CONFLICT (user_id) DO UPDATE SET `+column+` = EXCLUDED.`+column+`, updated_at = now()
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "section": string(payload)})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save "+column)
		return
	}

	c.JSON(http.StatusOK, p)
}

// putPersonalInfo validates and stores the personal-info section.
// PUT /api/onboarding/personal-info.
func (h *Handler) putPersonalInfo(c *gin.Context) {
	var body personalInfo
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Age <= 0 || body.Age > 130 {
		apiError(c, http.StatusBadRequest, "age must be between 1 and 130")
		return
	}
	if !validGenders[body.Gender] {
		apiError(c, http.StatusBadRequest, "gender must be one of: male, female, other, prefer_not_to_say")
		return
	}
	// Validate clock strings here — an unparsable value stored now would fail
	// every future review with a derived-calculation error.
	if _, err := parseClock(body.WakeTime); err != nil {
		apiError(c, http.StatusBadRequest, "wake_time must be HH:MM")
		return
	}
	if _, err := parseClock(body.SleepTime); err != nil {
		apiError(c, http.StatusBadRequest, "sleep_time must be HH:MM")
		return
	}
	if body.IsPregnant && (body.PregnancyTrimester < 1 || body.PregnancyTrimester > 3) {
		apiError(c, http.StatusBadRequest, "pregnancy_trimester must be 1-3")
		return
	}

	h.saveSection(c, "personal_info", body)
}

// putDietPreferences stores the diet-preferences section. The habit flags are
// plain booleans — nothing to validate beyond the JSON shape.
// PUT /api/onboarding/diet-preferences.
func (h *Handler) putDietPreferences(c *gin.Context) {
	var body dietPreferences
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	h.saveSection(c, "diet_preferences", body)
}

// putBodyAnalysis validates and stores the body-analysis section.
// PUT /api/onboarding/body-analysis. The required measurements must be
// positive here; the engine re-checks and raises MissingInputError anyway,
// but rejecting early gives the UI a field-level message.
func (h *Handler) putBodyAnalysis(c *gin.Context) {
	var body bodyAnalysis
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.HeightCM <= 0 {
		apiError(c, http.StatusBadRequest, "height_cm must be positive")
		return
	}
	if body.CurrentWeightKG <= 0 {
		apiError(c, http.StatusBadRequest, "current_weight_kg must be positive")
		return
	}
	if body.TargetWeightKG <= 0 {
		apiError(c, http.StatusBadRequest, "target_weight_kg must be positive")
		return
	}
	if body.TargetTimelineWeeks <= 0 {
		apiError(c, http.StatusBadRequest, "target_timeline_weeks must be positive")
		return
	}
	if body.BodyFatPercentage != nil && (*body.BodyFatPercentage <= 0 || *body.BodyFatPercentage >= 70) {
		apiError(c, http.StatusBadRequest, "body_fat_percentage must be between 0 and 70")
		return
	}

	h.saveSection(c, "body_analysis", body)
}

// putWorkoutPreferences validates and stores the workout-preferences section.
// PUT /api/onboarding/workout-preferences.
func (h *Handler) putWorkoutPreferences(c *gin.Context) {
	var body workoutPreferences
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate activity_level before saving — an unknown level would silently
	// fall back to the sedentary multiplier in every future review.
	if _, ok := activityMultipliers[body.ActivityLevel]; !ok {
		apiError(c, http.StatusBadRequest, "activity_level must be one of: sedentary, light, moderate, active, extreme")
		return
	}
	if body.Intensity != "" && !validIntensities[body.Intensity] {
		apiError(c, http.StatusBadRequest, "intensity must be one of: beginner, intermediate, advanced")
		return
	}
	if body.WeeklyWeightLossGoal != nil && *body.WeeklyWeightLossGoal <= 0 {
		apiError(c, http.StatusBadRequest, "weekly_weight_loss_goal must be positive")
		return
	}

	h.saveSection(c, "workout_preferences", body)
}
