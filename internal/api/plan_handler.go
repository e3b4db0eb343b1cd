package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
	"github.com/Kendal-dot/racebuddy/internal/plan"
	"github.com/Kendal-dot/racebuddy/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- Request/Response Structs ---

// GeneratePlanRequest is the JSON body for plan generation. Times and
// dates arrive as strings ("HH:MM:SS" and "YYYY-MM-DD") and are parsed
// into the domain request here.
type GeneratePlanRequest struct {
	Profile    ProfileRequest `json:"profile" binding:"required"`
	RaceID     string         `json:"race_id" binding:"required"`
	TargetTime string         `json:"target_time" binding:"required"`
	StartDate  string         `json:"start_date" binding:"required"`
	RaceDate   string         `json:"race_date" binding:"required"`
}

type ProfileRequest struct {
	Gender              string   `json:"gender" binding:"required"`
	HeightCm            int      `json:"height_cm" binding:"required"`
	WeightKg            float64  `json:"weight_kg" binding:"required"`
	Age                 int      `json:"age" binding:"required"`
	FitnessLevel        string   `json:"fitness_level" binding:"required"`
	TrainingDaysPerWeek int      `json:"training_days_per_week" binding:"required"`
	PreviousRaceTimes   []string `json:"previous_race_times"`
	Injuries            []string `json:"injuries"`
}

// GeneratePlanResponse wraps the stored plan with the calendar export
// download link, when one could be produced.
type GeneratePlanResponse struct {
	Plan           *domain.StoredPlan `json:"plan"`
	IcsDownloadURL string             `json:"ics_download_url,omitempty"`
}

// --- Handler Methods ---

// GeneratePlan builds a full training plan from the runner profile,
// the chosen race and the goal time.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	domainReq, err := req.toDomain()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user from token")
		return
	}

	generated, err := h.planService.GeneratePlan(c.Request.Context(), userID, domainReq)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed),
			errors.Is(err, plan.ErrInvalidInput),
			errors.Is(err, plan.ErrInvalidScheduleConstraint):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, plan.ErrInsufficientTime):
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrRaceNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during plan generation")
		}
		return
	}

	c.JSON(http.StatusCreated, GeneratePlanResponse{
		Plan:           generated.Plan,
		IcsDownloadURL: generated.IcsDownloadURL,
	})
}

// GetPlans lists the authenticated user's stored plans, newest first.
func (h *PlanHandler) GetPlans(c *gin.Context) {
	userID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user from token")
		return
	}

	plans, err := h.planService.GetPlansByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}
	if plans == nil {
		plans = []domain.StoredPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlanByID returns one stored plan owned by the authenticated user.
func (h *PlanHandler) GetPlanByID(c *gin.Context) {
	userID, planID, ok := planRequestIDs(c)
	if !ok {
		return
	}

	stored, err := h.planService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		respondPlanLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// DeletePlan removes a stored plan owned by the authenticated user.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, planID, ok := planRequestIDs(c)
	if !ok {
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		respondPlanLookupError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportPlanIcs streams a stored plan as an iCalendar file.
func (h *PlanHandler) ExportPlanIcs(c *gin.Context) {
	userID, planID, ok := planRequestIDs(c)
	if !ok {
		return
	}

	content, err := h.planService.ExportIcs(c.Request.Context(), userID, planID)
	if err != nil {
		respondPlanLookupError(c, err)
		return
	}

	filename := fmt.Sprintf("training-plan-%s.ics", planID.Hex())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}

// --- Helpers ---

func (r GeneratePlanRequest) toDomain() (domain.RacePlanRequest, error) {
	targetTime, err := parseTargetTime(r.TargetTime)
	if err != nil {
		return domain.RacePlanRequest{}, err
	}
	startDate, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return domain.RacePlanRequest{}, fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", r.StartDate)
	}
	raceDate, err := time.Parse("2006-01-02", r.RaceDate)
	if err != nil {
		return domain.RacePlanRequest{}, fmt.Errorf("invalid race_date %q: expected YYYY-MM-DD", r.RaceDate)
	}

	return domain.RacePlanRequest{
		Profile: domain.Profile{
			Gender:              domain.Gender(r.Profile.Gender),
			HeightCm:            r.Profile.HeightCm,
			WeightKg:            r.Profile.WeightKg,
			Age:                 r.Profile.Age,
			FitnessLevel:        domain.FitnessLevel(r.Profile.FitnessLevel),
			TrainingDaysPerWeek: r.Profile.TrainingDaysPerWeek,
			PreviousRaceTimes:   r.Profile.PreviousRaceTimes,
			Injuries:            r.Profile.Injuries,
		},
		RaceID:     r.RaceID,
		TargetTime: targetTime,
		StartDate:  startDate,
		RaceDate:   raceDate,
	}, nil
}

// parseTargetTime parses a goal time given as "HH:MM:SS".
func parseTargetTime(s string) (time.Duration, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("invalid target_time %q: expected HH:MM:SS", s)
	}
	if h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid target_time %q: expected HH:MM:SS", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// currentUserObjectID reads the authenticated user's ID from the
// request context and converts it back to an ObjectID.
func currentUserObjectID(c *gin.Context) (primitive.ObjectID, error) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(idStr)
}

// planRequestIDs resolves the user and :planId path parameter, writing
// the error response itself when either fails.
func planRequestIDs(c *gin.Context) (userID, planID primitive.ObjectID, ok bool) {
	userID, err := currentUserObjectID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user from token")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	planID, err = primitive.ObjectIDFromHex(c.Param("planId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return userID, planID, true
}

func respondPlanLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPlanAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve plan")
	}
}
