package port

import (
	"context"
	"time"
)

// CleanupService is service that handles cleanup of abandoned sessions and
// expired deduplication entries
type CleanupService interface {
	CleanupStaleSessions(ctx context.Context, now time.Time) error
	SweepDedupEntries(ctx context.Context, now time.Time) int
}
