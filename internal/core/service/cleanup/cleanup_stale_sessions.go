package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// CleanupStaleSessions reclaims chunk sessions older than the session TTL:
// their staging files are deleted and the sessions removed from the registry.
// An in-flight chunked upload abandoned by the client is reclaimed here rather
// than lingering until process restart.
func (c *cleanupService) CleanupStaleSessions(ctx context.Context, now time.Time) error {

	cutoff := now.Add(-c.uploadCfg.SessionTTL)
	sessions, err := c.registry.FindAllStale(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, session := range sessions {
		for _, part := range session.Chunks {
			if removeErr := os.Remove(part.StagingPath); removeErr != nil && !os.IsNotExist(removeErr) {
				c.logger.Warn("failed to remove stale chunk file", "path", part.StagingPath, "error", removeErr)
			}
		}

		dir := filepath.Join(c.uploadCfg.StagingDir, "chunks", session.SessionID)
		if removeErr := os.Remove(dir); removeErr != nil && !os.IsNotExist(removeErr) {
			c.logger.Warn("failed to remove stale session dir", "path", dir, "error", removeErr)
		}

		if deleteErr := c.registry.Delete(ctx, session.SessionID); deleteErr != nil {
			c.logger.Warn("failed to delete stale session", "session_id", session.SessionID, "error", deleteErr)
			continue
		}

		c.logger.Info("stale session reclaimed",
			"session_id", session.SessionID,
			"created_at", session.CreatedAt,
			"chunks", len(session.Chunks),
		)
	}
	return nil
}

// SweepDedupEntries removes deduplication entries past the freshness window
func (c *cleanupService) SweepDedupEntries(ctx context.Context, now time.Time) int {
	removed := c.dedup.Sweep(ctx, now)
	if removed > 0 {
		c.logger.Info("dedup entries swept", "removed", removed)
	}
	return removed
}
