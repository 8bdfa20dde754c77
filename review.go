package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// engineError maps an engine failure to an HTTP response. MissingInputError
// becomes a 422 naming the field so the UI can route back to the right
// onboarding step; anything else is a 500 — a derived-calculation failure
// means a data-flow bug, not bad user input.
func engineError(c *gin.Context, err error) {
	var missing *MissingInputError
	if errors.As(err, &missing) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "profile incomplete",
			"field": missing.Field,
		})
		return
	}
	apiError(c, http.StatusInternalServerError, err.Error())
}

// getAdvancedReview loads the four stored sections, runs the calculation
// engine, persists a snapshot, and returns the result.
// GET /api/advanced-review. 409 when any section is missing entirely.
func (h *Handler) getAdvancedReview(c *gin.Context) {
	userID := c.GetInt("user_id")

	p, err := queryOne[onboardingProfile](h.db, c,
		"SELECT * FROM onboarding_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	if p.PersonalInfo == nil || p.DietPreferences == nil || p.BodyAnalysis == nil || p.WorkoutPreferences == nil {
		apiError(c, http.StatusConflict, "all four onboarding sections must be saved first")
		return
	}

	result, err := calculateAllMetrics(p.PersonalInfo, p.DietPreferences, p.BodyAnalysis, p.WorkoutPreferences)
	if err != nil {
		engineError(c, err)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to encode review")
		return
	}
	review, err := queryOne[advancedReview](h.db, c,
		`INSERT INTO advanced_reviews (user_id, result)
		 VALUES (@userID, @result::jsonb)
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "result": string(payload)})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save review")
		return
	}

	c.JSON(http.StatusOK, review)
}

// previewAdvancedReview runs the engine on sections supplied inline without
// touching storage. POST /api/advanced-review/preview. This is the
// recalculate-on-change path: the UI calls it on every debounced edit, which
// is safe because the engine is pure and each call is independent.
func (h *Handler) previewAdvancedReview(c *gin.Context) {
	var body previewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.PersonalInfo == nil || body.DietPreferences == nil || body.BodyAnalysis == nil || body.WorkoutPreferences == nil {
		apiError(c, http.StatusBadRequest, "all four sections are required")
		return
	}

	result, err := calculateAllMetrics(body.PersonalInfo, body.DietPreferences, body.BodyAnalysis, body.WorkoutPreferences)
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
