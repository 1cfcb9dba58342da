package registry

import (
	"context"
	"med-voice/internal/core/domain"
	"med-voice/internal/core/port"
	"sync"
	"time"

	"github.com/google/uuid"
)

type dedupIndex struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]domain.DeduplicationEntry
}

// NewDeduplicationIndex creates an in-memory deduplication index. An entry is
// treated as a duplicate only while younger than the freshness window; the
// window is a soft cache, not a guarantee against duplicates beyond it.
func NewDeduplicationIndex(window time.Duration) port.DeduplicationIndex {
	return &dedupIndex{
		window:  window,
		entries: make(map[string]domain.DeduplicationEntry),
	}
}

// CheckAndRecord returns the existing entry and true when the signature was
// seen within the freshness window and has a completed recording id. A fresh
// entry still awaiting Complete is in flight, not a replayable result, so the
// caller processes as usual. Check and record happen under one lock.
func (d *dedupIndex) CheckAndRecord(_ context.Context, signature string, now time.Time) (*domain.DeduplicationEntry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.entries[signature]
	if ok && now.Sub(entry.Timestamp) < d.window {
		if entry.RecordingID == uuid.Nil {
			return nil, false
		}
		found := entry
		return &found, true
	}

	d.entries[signature] = domain.DeduplicationEntry{Timestamp: now}
	return nil, false
}

// Complete stores the recording id produced for the signature
func (d *dedupIndex) Complete(_ context.Context, signature string, recordingID uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.entries[signature]
	if !ok {
		return
	}
	entry.RecordingID = recordingID
	d.entries[signature] = entry
}

// Forget drops the signature so a retry after a failed processing attempt is
// not replayed against a nonexistent result
func (d *dedupIndex) Forget(_ context.Context, signature string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, signature)
}

// Sweep removes every entry past the freshness window and returns the count
func (d *dedupIndex) Sweep(_ context.Context, now time.Time) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for signature, entry := range d.entries {
		if now.Sub(entry.Timestamp) >= d.window {
			delete(d.entries, signature)
			removed++
		}
	}
	return removed
}
