package recording

import (
	"context"
	"log/slog"
	"med-voice/internal/core/domain"
	"med-voice/internal/core/port"

	"github.com/google/uuid"
)

const defaultListLimit = 100

type recordingService struct {
	repo    port.RecordingRepository
	storage port.ObjectStorage
	logger  *slog.Logger
}

// NewRecordingService creates a new recording service
func NewRecordingService(repo port.RecordingRepository, storage port.ObjectStorage, logger *slog.Logger) port.RecordingService {
	return &recordingService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// List returns recordings ordered by upload time descending, optionally
// filtered by owner
func (r *recordingService) List(ctx context.Context, ownerID *string, limit int) ([]domain.Recording, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return r.repo.List(ctx, ownerID, limit)
}

// Get returns one recording by id
func (r *recordingService) Get(ctx context.Context, id uuid.UUID) (*domain.Recording, error) {
	return r.repo.FindByID(ctx, id)
}

// Delete removes one recording and its stored object. Storage removal is
// best-effort; the database row is the source of truth.
func (r *recordingService) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := r.storage.Remove(ctx, rec.StoragePath); err != nil {
		r.logger.Warn("failed to remove stored object", "object_key", rec.StoragePath, "error", err)
	}
	return nil
}

// DeleteAll removes every recording (optionally owner-scoped) and returns the
// count actually deleted so the client can detect incomplete deletion.
func (r *recordingService) DeleteAll(ctx context.Context, ownerID *string) (int, error) {
	recs, err := r.repo.List(ctx, ownerID, 0)
	if err != nil {
		return 0, err
	}

	count, err := r.repo.DeleteAll(ctx, ownerID)
	if err != nil {
		return count, err
	}

	for _, rec := range recs {
		if removeErr := r.storage.Remove(ctx, rec.StoragePath); removeErr != nil {
			r.logger.Warn("failed to remove stored object", "object_key", rec.StoragePath, "error", removeErr)
		}
	}
	return count, nil
}
