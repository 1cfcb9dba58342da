package port

import (
	"context"
	"med-voice/internal/core/domain"
)

// Transcriber is an interface to define speech-to-text transcription
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, mimeType string, opts domain.AIOptions) (string, error)
}

// Recommender is an interface to define recommendation generation from a transcript
type Recommender interface {
	Recommend(ctx context.Context, transcript string, opts domain.AIOptions) (string, error)
}
