package chunked

import (
	"context"
	"fmt"
	"io"
	"med-voice/internal/core/domain"
	"os"
	"path/filepath"
	"time"
)

// IngestChunk streams one chunk payload to its staging file and records its
// receipt. The staging file name is derived from the session id and chunk
// index, so a retransmitted chunk overwrites rather than duplicates. The
// session is created lazily on the first chunk seen for an unknown session id,
// whatever its index, since chunks may arrive in any order.
func (c *chunkService) IngestChunk(ctx context.Context, upload domain.ChunkUpload, payload io.Reader) (*domain.IngestAck, error) {

	if upload.ChunkNumber < 1 || upload.TotalChunks < 1 || upload.ChunkNumber > upload.TotalChunks {
		return nil, fmt.Errorf("%w: chunk %d of %d", domain.ErrInvalidChunkNumber, upload.ChunkNumber, upload.TotalChunks)
	}

	session, err := c.registry.CreateIfAbsent(ctx, domain.ChunkSession{
		SessionID:        upload.SessionID,
		TotalChunks:      upload.TotalChunks,
		OriginalFilename: upload.Filename,
		MimeType:         upload.MimeType,
		CreatedAt:        time.Now(),
	})
	if err != nil {
		return nil, err
	}

	// The session's chunk count is fixed by the first chunk seen. A later chunk
	// claiming a different total would let received parts exceed it.
	if upload.TotalChunks != session.TotalChunks {
		return nil, fmt.Errorf("%w: session %s expects %d chunks, got %d",
			domain.ErrTotalChunksMismatch, upload.SessionID, session.TotalChunks, upload.TotalChunks)
	}

	stagingPath, size, err := c.stageChunk(upload.SessionID, upload.ChunkNumber, payload)
	if err != nil {
		return nil, err
	}

	received, err := c.registry.AddPart(ctx, upload.SessionID, domain.ChunkPart{
		Index:       upload.ChunkNumber,
		StagingPath: stagingPath,
		SizeBytes:   size,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("chunk ingested",
		"session_id", upload.SessionID,
		"chunk", upload.ChunkNumber,
		"total", session.TotalChunks,
		"size_bytes", size,
	)

	return &domain.IngestAck{
		SessionID:   upload.SessionID,
		ChunkNumber: upload.ChunkNumber,
		TotalChunks: session.TotalChunks,
		Remaining:   session.TotalChunks - received,
	}, nil
}

// stageChunk writes the payload to <staging>/chunks/<sessionID>/chunk_<n>.part.
// On a write failure the partial file is removed so session state stays as it
// was before this chunk.
func (c *chunkService) stageChunk(sessionID string, chunkNumber int, payload io.Reader) (string, int64, error) {
	dir := filepath.Join(c.uploadCfg.StagingDir, "chunks", sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create staging dir: %w", err)
	}

	stagingPath := filepath.Join(dir, fmt.Sprintf("chunk_%d.part", chunkNumber))
	out, err := os.Create(stagingPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create staging file: %w", err)
	}

	size, err := io.Copy(out, payload)
	if err != nil {
		out.Close()
		os.Remove(stagingPath)
		return "", 0, fmt.Errorf("failed to write chunk to staging: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(stagingPath)
		return "", 0, fmt.Errorf("failed to close staging file: %w", err)
	}

	return stagingPath, size, nil
}
