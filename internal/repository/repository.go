package repository

import (
	"context"

	"github.com/Kendal-dot/racebuddy/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// PlanRepository defines the interface for interacting with stored
// training plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.StoredPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.StoredPlan, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.StoredPlan, error)
	SetIcsKey(ctx context.Context, id primitive.ObjectID, icsKey string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
