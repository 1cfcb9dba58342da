package domain

import (
	"errors"
	"fmt"
)

// ErrMissingAudioPart is an error thrown when a multipart request carries no audio field
var ErrMissingAudioPart = errors.New("missing audio part")

// ErrSessionNotFound is an error thrown when a chunk session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrIncompleteSession is an error thrown when finalize runs before all chunks arrived
var ErrIncompleteSession = errors.New("incomplete session")

// ErrTotalChunksMismatch is an error thrown when the caller's expected total disagrees with the session
var ErrTotalChunksMismatch = errors.New("total chunks mismatch")

// ErrRecordingNotFound is an error thrown when a recording is not found
var ErrRecordingNotFound = errors.New("recording not found")

// ErrInvalidChunkNumber is an error thrown when a chunk index is outside 1..totalChunks
var ErrInvalidChunkNumber = errors.New("invalid chunk number")

// ErrAlreadyExists is an error thrown when an entity already exists
var ErrAlreadyExists = errors.New("already exists")

// IncompleteSessionError reports which chunk indices arrived and which are still
// missing, so the client can selectively resend. It unwraps to ErrIncompleteSession.
type IncompleteSessionError struct {
	SessionID string
	Received  []int
	Missing   []int
}

func (e *IncompleteSessionError) Error() string {
	return fmt.Sprintf("incomplete session %s: received %v, missing %v", e.SessionID, e.Received, e.Missing)
}

func (e *IncompleteSessionError) Unwrap() error {
	return ErrIncompleteSession
}
