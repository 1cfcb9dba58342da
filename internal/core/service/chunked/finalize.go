package chunked

import (
	"context"
	"fmt"
	"io"
	"med-voice/internal/core/domain"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FinalizeSession merges all staged chunks of a complete session into one file,
// uploads it, persists the recording record, and purges the session. Merge
// order is strictly ascending chunk index, never arrival order. Staging files
// are deleted only after the durable record is confirmed saved; on any
// collaborator failure the session and its staging files are left intact so a
// retry can re-attempt without re-uploading chunks.
func (c *chunkService) FinalizeSession(ctx context.Context, sessionID string, expectedTotalChunks int) (*domain.Recording, error) {

	session, err := c.registry.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if expectedTotalChunks > 0 && expectedTotalChunks != session.TotalChunks {
		return nil, fmt.Errorf("%w: session expects %d, caller sent %d",
			domain.ErrTotalChunksMismatch, session.TotalChunks, expectedTotalChunks)
	}

	if !session.Complete() {
		return nil, &domain.IncompleteSessionError{
			SessionID: sessionID,
			Received:  session.ReceivedIndices(),
			Missing:   session.MissingIndices(),
		}
	}

	ext := filepath.Ext(session.OriginalFilename)
	outName := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	mergedPath := filepath.Join(c.uploadCfg.StagingDir, outName)

	size, err := c.mergeChunks(session, mergedPath)
	if err != nil {
		return nil, err
	}

	objectKey := "audio/" + outName
	storageURL, err := c.storage.Upload(ctx, mergedPath, objectKey, session.MimeType)
	if err != nil {
		os.Remove(mergedPath)
		return nil, fmt.Errorf("failed to upload merged file: %w", err)
	}

	recording := domain.Recording{
		ID:          uuid.New(),
		Filename:    outName,
		StoragePath: objectKey,
		StorageURL:  storageURL,
		SizeBytes:   size,
		UploadedAt:  time.Now(),
		Metadata: map[string]string{
			"originalFilename": session.OriginalFilename,
			"mimeType":         session.MimeType,
		},
	}

	if err := c.recording.Create(ctx, recording); err != nil {
		os.Remove(mergedPath)
		return nil, fmt.Errorf("failed to save recording: %w", err)
	}

	// Analysis of chunked uploads runs out of band; publish failure must not
	// fail an upload that is already durable.
	publishErr := c.publisher.PublishRecordingUploaded(ctx, domain.RecordingUploadedEvent{
		RecordingID: recording.ID,
		ObjectKey:   objectKey,
		MimeType:    session.MimeType,
		SizeBytes:   size,
	})
	if publishErr != nil {
		c.logger.Warn("failed to publish recording uploaded event",
			"recording_id", recording.ID, "error", publishErr)
	}

	c.purgeSession(ctx, session, mergedPath)

	c.logger.Info("session finalized",
		"session_id", sessionID,
		"recording_id", recording.ID,
		"size_bytes", size,
	)

	return &recording, nil
}

// mergeChunks concatenates staged parts in ascending index order and flushes
// the result to disk
func (c *chunkService) mergeChunks(session *domain.ChunkSession, mergedPath string) (int64, error) {
	out, err := os.Create(mergedPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create merge file: %w", err)
	}

	var total int64
	for i := 1; i <= session.TotalChunks; i++ {
		part := session.Chunks[i]
		n, copyErr := appendChunk(out, part.StagingPath)
		if copyErr != nil {
			out.Close()
			os.Remove(mergedPath)
			return 0, fmt.Errorf("failed to merge chunk %d: %w", i, copyErr)
		}
		total += n
	}

	if err := out.Sync(); err != nil {
		out.Close()
		os.Remove(mergedPath)
		return 0, fmt.Errorf("failed to flush merge file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(mergedPath)
		return 0, fmt.Errorf("failed to close merge file: %w", err)
	}

	return total, nil
}

func appendChunk(out *os.File, stagingPath string) (int64, error) {
	in, err := os.Open(stagingPath)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	return io.Copy(out, in)
}

// purgeSession removes staging files and the registry entry. Deletion failures
// here are logged and ignored so they never mask the finalized result.
func (c *chunkService) purgeSession(ctx context.Context, session *domain.ChunkSession, mergedPath string) {
	if err := os.Remove(mergedPath); err != nil {
		c.logger.Warn("failed to remove merged temp file", "path", mergedPath, "error", err)
	}
	for _, part := range session.Chunks {
		if err := os.Remove(part.StagingPath); err != nil {
			c.logger.Warn("failed to remove chunk staging file", "path", part.StagingPath, "error", err)
		}
	}
	dir := filepath.Join(c.uploadCfg.StagingDir, "chunks", session.SessionID)
	if err := os.Remove(dir); err != nil {
		c.logger.Warn("failed to remove session staging dir", "path", dir, "error", err)
	}
	if err := c.registry.Delete(ctx, session.SessionID); err != nil {
		c.logger.Warn("failed to remove session from registry", "session_id", session.SessionID, "error", err)
	}
}
