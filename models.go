package main

import "time"

/* ─── Auth ───────────────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

/* ─── Onboarding input records ───────────────────────────────────────── */

// personalInfo is the first onboarding section. Country and state are carried
// for the climate-aware water calculator downstream; the engine itself does
// not read them.
type personalInfo struct {
	Age                int    `json:"age"`
	Gender             string `json:"gender"`     // male | female | other | prefer_not_to_say
	WakeTime           string `json:"wake_time"`  // 24h "HH:MM"
	SleepTime          string `json:"sleep_time"` // 24h "HH:MM"
	OccupationType     string `json:"occupation_type"`
	Country            string `json:"country"`
	State              string `json:"state"`
	IsPregnant         bool   `json:"is_pregnant"`
	PregnancyTrimester int    `json:"pregnancy_trimester"` // 1-3 when pregnant
	IsBreastfeeding    bool   `json:"is_breastfeeding"`
}

// dietPreferences holds the habit flags behind the diet-readiness score plus
// the diet-type fields consumed by the meal planner (not read here).
type dietPreferences struct {
	DietType           string   `json:"diet_type"`
	CuisinePreferences []string `json:"cuisine_preferences"`

	// Habit flags. The first nine carry positive readiness weight, the last
	// three negative — see dietReadinessScore for the weights.
	DrinksEnoughWater     bool `json:"drinks_enough_water"`
	LimitsSugaryDrinks    bool `json:"limits_sugary_drinks"`
	EatsRegularMeals      bool `json:"eats_regular_meals"`
	AvoidsLateNightEating bool `json:"avoids_late_night_eating"`
	ControlsPortionSize   bool `json:"controls_portion_size"`
	ReadsNutritionLabels  bool `json:"reads_nutrition_labels"`
	EatsFruitsVegetables  bool `json:"eats_fruits_vegetables"`
	LimitsRefinedSugar    bool `json:"limits_refined_sugar"`
	IncludesHealthyFats   bool `json:"includes_healthy_fats"`
	DrinksAlcohol         bool `json:"drinks_alcohol"`
	EatsProcessedFoods    bool `json:"eats_processed_foods"`
	SmokesTobacco         bool `json:"smokes_tobacco"`

	// Not scored, but read by the sleep-efficiency bonus.
	DrinksCoffee bool `json:"drinks_coffee"`

	// Macro-split readiness flags, mutually exclusive by precedence
	// keto > high-protein > low-carb.
	KetoReady        bool `json:"keto_ready"`
	HighProteinReady bool `json:"high_protein_ready"`
	LowCarbReady     bool `json:"low_carb_ready"`
}

// bodyAnalysis holds measurements. Optional fields use pointers so "not
// provided" is distinguishable from zero.
type bodyAnalysis struct {
	HeightCM            float64  `json:"height_cm"`
	CurrentWeightKG     float64  `json:"current_weight_kg"`
	TargetWeightKG      float64  `json:"target_weight_kg"`
	TargetTimelineWeeks int      `json:"target_timeline_weeks"`
	BodyFatPercentage   *float64 `json:"body_fat_percentage"`
	AIBodyFatPercentage *float64 `json:"ai_body_fat_percentage"`
	AIConfidence        *float64 `json:"ai_confidence"` // 0-100, from the photo analysis service
	WaistCM             *float64 `json:"waist_cm"`
	HipCM               *float64 `json:"hip_cm"`
	MedicalConditions   []string `json:"medical_conditions"`
	PhysicalLimitations []string `json:"physical_limitations"`
}

// workoutPreferences is the fourth onboarding section.
type workoutPreferences struct {
	ActivityLevel           string   `json:"activity_level"` // sedentary..extreme
	Intensity               string   `json:"intensity"`      // beginner | intermediate | advanced
	WorkoutExperienceYears  int      `json:"workout_experience_years"`
	WorkoutFrequencyPerWeek int      `json:"workout_frequency_per_week"`
	SessionDurationMinutes  int      `json:"session_duration_minutes"`
	CanDoPushups            int      `json:"can_do_pushups"`
	CanRunMinutes           int      `json:"can_run_minutes"`
	PrimaryGoals            []string `json:"primary_goals"`
	PreferredWorkoutTypes   []string `json:"preferred_workout_types"`
	WeeklyWeightLossGoal    *float64 `json:"weekly_weight_loss_goal"` // kg/week override
}

// sessionDuration returns the planned workout length, falling back to the
// UI's 45-minute default when the section predates the duration question.
func (w *workoutPreferences) sessionDuration() int {
	if w.SessionDurationMinutes > 0 {
		return w.SessionDurationMinutes
	}
	return 45
}

/* ─── Engine output record ───────────────────────────────────────────── */

// advancedReviewData is the single record the engine returns. It owns all of
// its fields — nothing is shared with the input records. The three
// completion-related fields stay 0 here; an external aggregator fills them.
type advancedReviewData struct {
	// Metabolic
	BMI          float64 `json:"bmi"`
	BMR          float64 `json:"bmr"`
	TDEE         float64 `json:"tdee"`
	MetabolicAge int     `json:"metabolic_age"`

	// Nutrition
	DailyCalories float64 `json:"daily_calories"`
	ProteinG      int     `json:"protein_g"`
	CarbsG        int     `json:"carbs_g"`
	FatG          int     `json:"fat_g"`
	WaterML       int     `json:"water_ml"`
	FiberG        int     `json:"fiber_g"`

	// Weight management
	HealthyWeightMin       float64 `json:"healthy_weight_min"`
	HealthyWeightMax       float64 `json:"healthy_weight_max"`
	WeeklyWeightLossRate   float64 `json:"weekly_weight_loss_rate"`
	EstimatedTimelineWeeks int     `json:"estimated_timeline_weeks"`
	TotalCalorieDeficit    int     `json:"total_calorie_deficit"`

	// Body composition
	IdealBodyFatMin   float64 `json:"ideal_body_fat_min"`
	IdealBodyFatMax   float64 `json:"ideal_body_fat_max"`
	LeanMassKG        float64 `json:"lean_mass_kg"`
	FatMassKG         float64 `json:"fat_mass_kg"`
	BodyFatPercentage float64 `json:"body_fat_percentage"`
	BodyFatSource     string  `json:"body_fat_source"`
	BodyFatConfidence int     `json:"body_fat_confidence"`
	WaistHipRatio     float64 `json:"waist_hip_ratio"`

	// Cardiovascular
	MaxHeartRate   int     `json:"max_heart_rate"`
	VO2Max         float64 `json:"vo2_max"`
	FatBurnZoneMin int     `json:"fat_burn_zone_min"`
	FatBurnZoneMax int     `json:"fat_burn_zone_max"`
	CardioZoneMin  int     `json:"cardio_zone_min"`
	CardioZoneMax  int     `json:"cardio_zone_max"`
	PeakZoneMin    int     `json:"peak_zone_min"`
	PeakZoneMax    int     `json:"peak_zone_max"`

	// Fitness recommendations
	WorkoutFrequency     int    `json:"workout_frequency"`
	CardioMinutes        int    `json:"cardio_minutes"`
	StrengthSessions     int    `json:"strength_sessions"`
	RecommendedIntensity string `json:"recommended_intensity"`
	IntensityReasoning   string `json:"intensity_reasoning"`
	SessionCalorieBurn   int    `json:"session_calorie_burn"`
	WeeklyExerciseBurn   int    `json:"weekly_exercise_burn"`
	DailyExerciseBurn    int    `json:"daily_exercise_burn"`

	// Composite scores
	OverallHealthScore    int `json:"overall_health_score"`
	DietReadinessScore    int `json:"diet_readiness_score"`
	FitnessReadinessScore int `json:"fitness_readiness_score"`
	GoalRealismScore      int `json:"goal_realism_score"`

	// Sleep
	RecommendedSleepHours float64 `json:"recommended_sleep_hours"`
	CurrentSleepDuration  float64 `json:"current_sleep_duration"`
	SleepEfficiencyScore  int     `json:"sleep_efficiency_score"`

	// Placeholders for the external aggregator
	DataCompletenessPercentage int `json:"data_completeness_percentage"`
	ReliabilityScore           int `json:"reliability_score"`
	PersonalizationLevel       int `json:"personalization_level"`
}

/* ─── Persistence rows ───────────────────────────────────────────────── */

// onboardingProfile maps to onboarding_profiles: one row per user with each
// section stored as a JSONB column. Nil pointer = section not yet submitted;
// pgx's JSON codec handles the struct <-> jsonb conversion.
type onboardingProfile struct {
	UserID             int                 `json:"user_id" db:"user_id"`
	PersonalInfo       *personalInfo       `json:"personal_info" db:"personal_info"`
	DietPreferences    *dietPreferences    `json:"diet_preferences" db:"diet_preferences"`
	BodyAnalysis       *bodyAnalysis       `json:"body_analysis" db:"body_analysis"`
	WorkoutPreferences *workoutPreferences `json:"workout_preferences" db:"workout_preferences"`
	UpdatedAt          *time.Time          `json:"updated_at" db:"updated_at"`
}

// advancedReview maps to advanced_reviews: a snapshot of the engine output at
// review time, kept so the plan validator can diff against it later.
type advancedReview struct {
	ID        int                 `json:"id" db:"id"`
	UserID    int                 `json:"user_id" db:"user_id"`
	Result    *advancedReviewData `json:"result" db:"result"`
	CreatedAt *time.Time          `json:"created_at" db:"created_at"`
}

// previewRequest is the request body for POST /api/advanced-review/preview:
// all four sections inline, engine output in the response, nothing stored.
type previewRequest struct {
	PersonalInfo       *personalInfo       `json:"personal_info"`
	DietPreferences    *dietPreferences    `json:"diet_preferences"`
	BodyAnalysis       *bodyAnalysis       `json:"body_analysis"`
	WorkoutPreferences *workoutPreferences `json:"workout_preferences"`
}
