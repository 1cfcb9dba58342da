package port

import (
	"context"
	"med-voice/internal/core/domain"

	"github.com/google/uuid"
)

// RecordingRepository is an interface to define recording repository interactions
type RecordingRepository interface {
	Create(ctx context.Context, recording domain.Recording) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Recording, error)
	List(ctx context.Context, ownerID *string, limit int) ([]domain.Recording, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, ownerID *string) (int, error)
	UpdateAnalysis(ctx context.Context, id uuid.UUID, transcript, recommendations string) error
}

// RecordingService is an interface to define the recording query/delete service
type RecordingService interface {
	List(ctx context.Context, ownerID *string, limit int) ([]domain.Recording, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Recording, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, ownerID *string) (int, error)
}
