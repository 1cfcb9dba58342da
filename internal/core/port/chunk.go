package port

import (
	"context"
	"io"
	"med-voice/internal/core/domain"
	"time"
)

// SessionRegistry is an interface to track active chunked-upload sessions.
// Implementations must make each operation atomic with respect to the others.
type SessionRegistry interface {
	CreateIfAbsent(ctx context.Context, session domain.ChunkSession) (*domain.ChunkSession, error)
	AddPart(ctx context.Context, sessionID string, part domain.ChunkPart) (received int, err error)
	Find(ctx context.Context, sessionID string) (*domain.ChunkSession, error)
	Delete(ctx context.Context, sessionID string) error
	FindAllStale(ctx context.Context, olderThan time.Time) ([]domain.ChunkSession, error)
}

// ChunkService is an interface to define the chunked-upload service
type ChunkService interface {
	IngestChunk(ctx context.Context, upload domain.ChunkUpload, payload io.Reader) (*domain.IngestAck, error)
	FinalizeSession(ctx context.Context, sessionID string, expectedTotalChunks int) (*domain.Recording, error)
}
