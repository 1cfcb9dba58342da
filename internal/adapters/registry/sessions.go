package registry

import (
	"context"
	"med-voice/internal/core/domain"
	"med-voice/internal/core/port"
	"sync"
	"time"
)

type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*domain.ChunkSession
}

// NewSessionRegistry creates an in-memory session registry. Sessions live only
// for the duration of one upload flow; nothing survives a process restart.
func NewSessionRegistry() port.SessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*domain.ChunkSession),
	}
}

// CreateIfAbsent registers the session unless one already exists for its id,
// and returns a copy of the stored session either way.
func (r *sessionRegistry) CreateIfAbsent(_ context.Context, session domain.ChunkSession) (*domain.ChunkSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.sessions[session.SessionID]
	if ok {
		return copySession(existing), nil
	}

	stored := session
	if stored.Chunks == nil {
		stored.Chunks = make(map[int]domain.ChunkPart)
	}
	r.sessions[session.SessionID] = &stored
	return copySession(&stored), nil
}

// AddPart inserts or replaces the part at its index and returns the number of
// distinct chunks received so far.
func (r *sessionRegistry) AddPart(_ context.Context, sessionID string, part domain.ChunkPart) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}

	session.Chunks[part.Index] = part
	return len(session.Chunks), nil
}

// Find returns a copy of the session, so callers never share the registry's map
func (r *sessionRegistry) Find(_ context.Context, sessionID string) (*domain.ChunkSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return copySession(session), nil
}

// Delete removes the session from the registry
func (r *sessionRegistry) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

// FindAllStale returns copies of every session created before the cutoff
func (r *sessionRegistry) FindAllStale(_ context.Context, olderThan time.Time) ([]domain.ChunkSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stale []domain.ChunkSession
	for _, session := range r.sessions {
		if session.CreatedAt.Before(olderThan) {
			stale = append(stale, *copySession(session))
		}
	}
	return stale, nil
}

func copySession(s *domain.ChunkSession) *domain.ChunkSession {
	out := *s
	out.Chunks = make(map[int]domain.ChunkPart, len(s.Chunks))
	for i, part := range s.Chunks {
		out.Chunks[i] = part
	}
	return &out
}
