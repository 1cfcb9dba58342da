package domain

import "time"

// ChunkPart represents one staged chunk of an upload session
type ChunkPart struct {
	Index       int
	StagingPath string
	SizeBytes   int64
}

// ChunkSession represents one client-driven chunked upload attempt.
// Chunk indices are 1-based; the session is complete once len(Chunks) == TotalChunks.
type ChunkSession struct {
	SessionID        string
	TotalChunks      int
	OriginalFilename string
	MimeType         string
	CreatedAt        time.Time
	Chunks           map[int]ChunkPart
}

// ReceivedIndices returns the sorted list of chunk indices present in the session
func (s *ChunkSession) ReceivedIndices() []int {
	received := make([]int, 0, len(s.Chunks))
	for i := 1; i <= s.TotalChunks; i++ {
		if _, ok := s.Chunks[i]; ok {
			received = append(received, i)
		}
	}
	return received
}

// MissingIndices returns the sorted list of chunk indices not yet received
func (s *ChunkSession) MissingIndices() []int {
	var missing []int
	for i := 1; i <= s.TotalChunks; i++ {
		if _, ok := s.Chunks[i]; !ok {
			missing = append(missing, i)
		}
	}
	return missing
}

// Complete reports whether every expected chunk is present
func (s *ChunkSession) Complete() bool {
	return len(s.Chunks) == s.TotalChunks
}

// ChunkUpload carries the scalar metadata of one inbound chunk
type ChunkUpload struct {
	SessionID   string
	ChunkNumber int
	TotalChunks int
	Filename    string
	MimeType    string
}

// IngestAck acknowledges one ingested chunk
type IngestAck struct {
	SessionID   string
	ChunkNumber int
	TotalChunks int
	Remaining   int
}
