package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Kendal-dot/racebuddy/internal/domain"
	"github.com/Kendal-dot/racebuddy/internal/ics"
	"github.com/Kendal-dot/racebuddy/internal/plan"
	"github.com/Kendal-dot/racebuddy/internal/repository"
	"github.com/Kendal-dot/racebuddy/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound     = errors.New("training plan not found")
	ErrPlanAccessDenied = errors.New("access denied to this training plan")
	ErrValidationFailed = errors.New("plan request validation failed")
)

// GeneratedPlan is the service result for a fresh generation: the
// stored plan plus a presigned download URL for its calendar export.
type GeneratedPlan struct {
	Plan           *domain.StoredPlan
	IcsDownloadURL string
}

// PlanService runs the generation pipeline and manages stored plans.
type PlanService interface {
	GeneratePlan(ctx context.Context, userID primitive.ObjectID, req domain.RacePlanRequest) (*GeneratedPlan, error)
	GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.StoredPlan, error)
	GetPlansByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.StoredPlan, error)
	ExportIcs(ctx context.Context, userID, planID primitive.ObjectID) (string, error)
	DeletePlan(ctx context.Context, userID, planID primitive.ObjectID) error
}

type planService struct {
	generator   *plan.Generator
	raceService RaceService
	planRepo    repository.PlanRepository
	fileStorage storage.FileStorage
}

// NewPlanService creates a new instance of planService.
func NewPlanService(generator *plan.Generator, raceService RaceService, planRepo repository.PlanRepository, fileStorage storage.FileStorage) PlanService {
	return &planService{
		generator:   generator,
		raceService: raceService,
		planRepo:    planRepo,
		fileStorage: fileStorage,
	}
}

// GeneratePlan validates the request, runs the core generator, uploads
// the calendar export and persists the result. Generation errors from
// the core (invalid input, insufficient time, schedule constraint) are
// surfaced untouched so the API layer can map them to specific
// responses.
func (s *planService) GeneratePlan(ctx context.Context, userID primitive.ObjectID, req domain.RacePlanRequest) (*GeneratedPlan, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	generated, err := s.generator.Generate(req)
	if err != nil {
		return nil, err
	}

	stored := &domain.StoredPlan{
		UserID:     userID,
		Profile:    req.Profile,
		RaceID:     req.RaceID,
		TargetTime: formatTargetTime(req.TargetTime),
		Plan:       *generated,
	}

	planID, err := s.planRepo.Create(ctx, stored)
	if err != nil {
		return nil, err
	}
	stored.ID = planID

	// Export the calendar file. Plans remain usable without it, so an
	// upload failure is logged and skipped rather than failing the
	// whole generation.
	downloadURL := ""
	race, raceErr := s.raceService.GetRace(req.RaceID)
	if raceErr == nil {
		key := fmt.Sprintf("plans/%s-%s.ics", planID.Hex(), uuid.NewString()[:8])
		content := ics.Generate(*generated, race, planID.Hex(), time.Now().UTC())

		if err := s.fileStorage.UploadObject(ctx, key, "text/calendar", []byte(content)); err != nil {
			log.Printf("ERROR: Failed to upload calendar export for plan %s: %v", planID.Hex(), err)
		} else if err := s.planRepo.SetIcsKey(ctx, planID, key); err != nil {
			log.Printf("ERROR: Failed to record calendar key for plan %s: %v", planID.Hex(), err)
		} else {
			stored.IcsKey = key
			url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
			if err != nil {
				log.Printf("ERROR: Failed to presign calendar download for plan %s: %v", planID.Hex(), err)
			} else {
				downloadURL = url
			}
		}
	}

	return &GeneratedPlan{Plan: stored, IcsDownloadURL: downloadURL}, nil
}

// GetPlan fetches one stored plan, enforcing ownership.
func (s *planService) GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.StoredPlan, error) {
	stored, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if stored.UserID != userID {
		return nil, ErrPlanAccessDenied
	}
	return stored, nil
}

// GetPlansByUser lists a user's stored plans, newest first.
func (s *planService) GetPlansByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.StoredPlan, error) {
	return s.planRepo.GetByUserID(ctx, userID)
}

// ExportIcs re-serializes a stored plan as an iCalendar document.
func (s *planService) ExportIcs(ctx context.Context, userID, planID primitive.ObjectID) (string, error) {
	stored, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return "", err
	}
	race, err := s.raceService.GetRace(stored.RaceID)
	if err != nil {
		return "", err
	}
	return ics.Generate(stored.Plan, race, planID.Hex(), time.Now().UTC()), nil
}

// DeletePlan removes a stored plan and its exported calendar file.
// The object-storage cleanup is best effort; a dangling .ics object
// expires with its presigned URLs and is harmless.
func (s *planService) DeletePlan(ctx context.Context, userID, planID primitive.ObjectID) error {
	stored, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return err
	}
	if stored.IcsKey != "" {
		if err := s.fileStorage.DeleteObject(ctx, stored.IcsKey); err != nil {
			log.Printf("ERROR: Failed to delete calendar export %s for plan %s: %v", stored.IcsKey, planID.Hex(), err)
		}
	}
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// validateRequest checks the profile field ranges before the core
// runs. Date ordering and timeline length are the core's job; these
// are the intake-boundary checks.
func validateRequest(req domain.RacePlanRequest) error {
	p := req.Profile
	switch {
	case p.HeightCm < 100 || p.HeightCm > 250:
		return fmt.Errorf("%w: height must be 100-250 cm", ErrValidationFailed)
	case p.WeightKg < 30 || p.WeightKg > 200:
		return fmt.Errorf("%w: weight must be 30-200 kg", ErrValidationFailed)
	case p.Age < 18 || p.Age > 100:
		return fmt.Errorf("%w: age must be 18-100", ErrValidationFailed)
	case req.TargetTime <= 0:
		return fmt.Errorf("%w: target time must be positive", ErrValidationFailed)
	case req.StartDate.IsZero() || req.RaceDate.IsZero():
		return fmt.Errorf("%w: start date and race date are required", ErrValidationFailed)
	}
	switch p.Gender {
	case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrValidationFailed, p.Gender)
	}
	switch p.FitnessLevel {
	case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
	default:
		return fmt.Errorf("%w: unknown fitness level %q", ErrValidationFailed, p.FitnessLevel)
	}
	return nil
}

// formatTargetTime renders a duration as HH:MM:SS for storage and display.
func formatTargetTime(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
