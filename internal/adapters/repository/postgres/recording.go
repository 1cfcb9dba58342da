package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"med-voice/internal/core/domain"
	"med-voice/internal/core/port"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SQLQuerier is the subset of *sql.DB the repository needs
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlRecordingRepository struct {
	db SQLQuerier
}

// NewSqlRecordingRepository creates sqlRecordingRepository that implements port.RecordingRepository
func NewSqlRecordingRepository(db SQLQuerier) port.RecordingRepository {
	return &sqlRecordingRepository{
		db: db,
	}
}

type dbRecording struct {
	ID              uuid.UUID
	Filename        string
	StoragePath     string
	StorageURL      string
	SizeBytes       int64
	UploadedAt      time.Time
	Transcript      sql.NullString
	Recommendations sql.NullString
	OwnerID         sql.NullString
	Metadata        []byte
}

// Create inserts a new recording entry
func (s *sqlRecordingRepository) Create(ctx context.Context, recording domain.Recording) error {
	metadata, err := json.Marshal(recording.Metadata)
	if err != nil {
		return fmt.Errorf("error marshaling recording metadata: %w", err)
	}

	query := `INSERT INTO recordings (id, filename, storage_path, storage_url, size_bytes, uploaded_at, transcript, recommendations, owner_id, metadata)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = s.db.ExecContext(ctx, query,
		recording.ID,
		recording.Filename,
		recording.StoragePath,
		recording.StorageURL,
		recording.SizeBytes,
		recording.UploadedAt,
		recording.Transcript,
		recording.Recommendations,
		recording.OwnerID,
		metadata,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("recording %s : %w", recording.ID, domain.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("error inserting recording: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlRecordingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Recording, error) {
	query := `SELECT id, filename, storage_path, storage_url, size_bytes, uploaded_at,
                     transcript, recommendations, owner_id, metadata
              FROM recordings
              WHERE id = $1`

	var row dbRecording
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.Filename,
		&row.StoragePath,
		&row.StorageURL,
		&row.SizeBytes,
		&row.UploadedAt,
		&row.Transcript,
		&row.Recommendations,
		&row.OwnerID,
		&row.Metadata,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding recording: %w", err)
	}

	return row.toDomain()
}

// List returns recordings ordered by uploaded_at descending, optionally
// filtered by owner. A limit <= 0 means no limit.
func (s *sqlRecordingRepository) List(ctx context.Context, ownerID *string, limit int) ([]domain.Recording, error) {
	query := `SELECT id, filename, storage_path, storage_url, size_bytes, uploaded_at,
                     transcript, recommendations, owner_id, metadata
              FROM recordings`

	var args []any
	if ownerID != nil {
		query += ` WHERE owner_id = $1`
		args = append(args, *ownerID)
	}
	query += ` ORDER BY uploaded_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing recordings: %w", err)
	}
	defer rows.Close()

	var recordings []domain.Recording
	for rows.Next() {
		var row dbRecording
		if err := rows.Scan(
			&row.ID,
			&row.Filename,
			&row.StoragePath,
			&row.StorageURL,
			&row.SizeBytes,
			&row.UploadedAt,
			&row.Transcript,
			&row.Recommendations,
			&row.OwnerID,
			&row.Metadata,
		); err != nil {
			return nil, fmt.Errorf("error scanning recording: %w", err)
		}
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		recordings = append(recordings, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recordings: %w", err)
	}
	return recordings, nil
}

// DeleteByID removes one recording
func (s *sqlRecordingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recordings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting recording: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrRecordingNotFound
	}
	return nil
}

// DeleteAll removes every recording, optionally owner-scoped, and reports the
// exact count deleted
func (s *sqlRecordingRepository) DeleteAll(ctx context.Context, ownerID *string) (int, error) {
	query := `DELETE FROM recordings`
	var args []any
	if ownerID != nil {
		query += ` WHERE owner_id = $1`
		args = append(args, *ownerID)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting recordings: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error checking rows affected: %w", err)
	}
	return int(rowsAffected), nil
}

// UpdateAnalysis sets the transcript and recommendations of a recording
func (s *sqlRecordingRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, transcript, recommendations string) error {
	query := `UPDATE recordings
              SET transcript = $1, recommendations = $2
              WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, transcript, recommendations, id)
	if err != nil {
		return fmt.Errorf("error updating recording analysis: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrRecordingNotFound
	}
	return nil
}

func (r *dbRecording) toDomain() (*domain.Recording, error) {
	rec := domain.Recording{
		ID:          r.ID,
		Filename:    r.Filename,
		StoragePath: r.StoragePath,
		StorageURL:  r.StorageURL,
		SizeBytes:   r.SizeBytes,
		UploadedAt:  r.UploadedAt,
	}
	if r.Transcript.Valid {
		rec.Transcript = &r.Transcript.String
	}
	if r.Recommendations.Valid {
		rec.Recommendations = &r.Recommendations.String
	}
	if r.OwnerID.Valid {
		rec.OwnerID = &r.OwnerID.String
	}
	if len(r.Metadata) > 0 {
		if err := json.Unmarshal(r.Metadata, &rec.Metadata); err != nil {
			return nil, fmt.Errorf("error unmarshaling recording metadata: %w", err)
		}
	}
	return &rec, nil
}
