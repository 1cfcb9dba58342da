package postgres_test

import (
	"context"
	"med-voice/internal/adapters/repository/postgres"
	"med-voice/internal/core/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newRecording(owner *string, uploadedAt time.Time) domain.Recording {
	return domain.Recording{
		ID:          uuid.New(),
		Filename:    "1700000000000.webm",
		StoragePath: "audio/1700000000000.webm",
		StorageURL:  "http://minio/recordings/audio/1700000000000.webm",
		SizeBytes:   2048,
		UploadedAt:  uploadedAt,
		OwnerID:     owner,
		Metadata: map[string]string{
			"originalFilename": "visit.webm",
			"mimeType":         "audio/webm",
		},
	}
}

func TestSqlRecordingRepository_CreateAndFindByID(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := postgres.NewSqlRecordingRepository(dbConnection)

	t.Run("nominal", func(t *testing.T) {
		truncate()
		owner := "user-1"
		rec := newRecording(&owner, time.Now().UTC())

		require.NoError(t, repo.Create(ctx, rec))

		found, err := repo.FindByID(ctx, rec.ID)
		require.NoError(t, err)
		require.Equal(t, rec.ID, found.ID)
		require.Equal(t, rec.Filename, found.Filename)
		require.Equal(t, rec.StoragePath, found.StoragePath)
		require.Equal(t, rec.SizeBytes, found.SizeBytes)
		require.Nil(t, found.Transcript)
		require.NotNil(t, found.OwnerID)
		require.Equal(t, owner, *found.OwnerID)
		require.Equal(t, "visit.webm", found.Metadata["originalFilename"])
	})

	t.Run("duplicate id", func(t *testing.T) {
		truncate()
		rec := newRecording(nil, time.Now().UTC())
		require.NoError(t, repo.Create(ctx, rec))

		err := repo.Create(ctx, rec)
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		truncate()
		_, err := repo.FindByID(ctx, uuid.New())
		require.ErrorIs(t, err, domain.ErrRecordingNotFound)
	})
}

func TestSqlRecordingRepository_List(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := postgres.NewSqlRecordingRepository(dbConnection)

	t.Run("ordered newest first", func(t *testing.T) {
		truncate()
		now := time.Now().UTC()
		older := newRecording(nil, now.Add(-time.Hour))
		newer := newRecording(nil, now)
		require.NoError(t, repo.Create(ctx, older))
		require.NoError(t, repo.Create(ctx, newer))

		recordings, err := repo.List(ctx, nil, 0)
		require.NoError(t, err)
		require.Len(t, recordings, 2)
		require.Equal(t, newer.ID, recordings[0].ID)
		require.Equal(t, older.ID, recordings[1].ID)
	})

	t.Run("owner scoped", func(t *testing.T) {
		truncate()
		ownerA := "user-a"
		ownerB := "user-b"
		now := time.Now().UTC()
		require.NoError(t, repo.Create(ctx, newRecording(&ownerA, now)))
		require.NoError(t, repo.Create(ctx, newRecording(&ownerB, now)))

		recordings, err := repo.List(ctx, &ownerA, 0)
		require.NoError(t, err)
		require.Len(t, recordings, 1)
		require.Equal(t, ownerA, *recordings[0].OwnerID)
	})

	t.Run("limit applies", func(t *testing.T) {
		truncate()
		now := time.Now().UTC()
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, newRecording(nil, now.Add(time.Duration(i)*time.Minute))))
		}

		recordings, err := repo.List(ctx, nil, 2)
		require.NoError(t, err)
		require.Len(t, recordings, 2)
	})
}

func TestSqlRecordingRepository_Delete(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := postgres.NewSqlRecordingRepository(dbConnection)

	t.Run("delete by id", func(t *testing.T) {
		truncate()
		rec := newRecording(nil, time.Now().UTC())
		require.NoError(t, repo.Create(ctx, rec))

		require.NoError(t, repo.DeleteByID(ctx, rec.ID))
		_, err := repo.FindByID(ctx, rec.ID)
		require.ErrorIs(t, err, domain.ErrRecordingNotFound)
	})

	t.Run("delete by id not found", func(t *testing.T) {
		truncate()
		require.ErrorIs(t, repo.DeleteByID(ctx, uuid.New()), domain.ErrRecordingNotFound)
	})

	t.Run("delete all owner scoped", func(t *testing.T) {
		truncate()
		owner := "user-a"
		other := "user-b"
		now := time.Now().UTC()
		require.NoError(t, repo.Create(ctx, newRecording(&owner, now)))
		require.NoError(t, repo.Create(ctx, newRecording(&owner, now)))
		require.NoError(t, repo.Create(ctx, newRecording(&other, now)))

		count, err := repo.DeleteAll(ctx, &owner)
		require.NoError(t, err)
		require.Equal(t, 2, count)

		remaining, err := repo.List(ctx, nil, 0)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
	})

	t.Run("delete all", func(t *testing.T) {
		truncate()
		now := time.Now().UTC()
		require.NoError(t, repo.Create(ctx, newRecording(nil, now)))
		require.NoError(t, repo.Create(ctx, newRecording(nil, now)))

		count, err := repo.DeleteAll(ctx, nil)
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})
}

func TestSqlRecordingRepository_UpdateAnalysis(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := postgres.NewSqlRecordingRepository(dbConnection)

	t.Run("nominal", func(t *testing.T) {
		truncate()
		rec := newRecording(nil, time.Now().UTC())
		require.NoError(t, repo.Create(ctx, rec))

		require.NoError(t, repo.UpdateAnalysis(ctx, rec.ID, "transcript", "recommendations"))

		found, err := repo.FindByID(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Transcript)
		require.Equal(t, "transcript", *found.Transcript)
		require.NotNil(t, found.Recommendations)
		require.Equal(t, "recommendations", *found.Recommendations)
	})

	t.Run("unknown recording", func(t *testing.T) {
		truncate()
		err := repo.UpdateAnalysis(ctx, uuid.New(), "transcript", "recommendations")
		require.ErrorIs(t, err, domain.ErrRecordingNotFound)
	})
}
