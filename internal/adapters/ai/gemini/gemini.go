package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"med-voice/internal/config"
	"med-voice/internal/core/domain"
	"os"

	"google.golang.org/genai"
)

const transcribePrompt = "Transcribe this audio recording verbatim. " +
	"Return only the transcript text, with no commentary."

const recommendPrompt = "You are a medical assistant. Based on the following " +
	"consultation transcript, provide concise, actionable recommendations for " +
	"the patient. Transcript:\n\n%s"

// Adapter implements transcription and recommendation generation against the
// Gemini API
type Adapter struct {
	client *genai.Client
	config config.AIConfig
	logger *slog.Logger
}

// NewAdapter creates the shared Gemini client
func NewAdapter(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Transcribe sends the audio bytes inline and returns the transcript text
func (a *Adapter) Transcribe(ctx context.Context, audioPath, mimeType string, opts domain.AIOptions) (string, error) {
	client, err := a.clientFor(ctx, opts)
	if err != nil {
		return "", err
	}

	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to read audio file: %w", err)
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{Text: transcribePrompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: audio}},
		},
	}}

	resp, err := client.Models.GenerateContent(ctx, a.config.Model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}
	return resp.Text(), nil
}

// Recommend derives recommendations from a transcript
func (a *Adapter) Recommend(ctx context.Context, transcript string, opts domain.AIOptions) (string, error) {
	client, err := a.clientFor(ctx, opts)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, a.config.Model,
		genai.Text(fmt.Sprintf(recommendPrompt, transcript)), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate recommendations: %w", err)
	}
	return resp.Text(), nil
}

// clientFor returns the shared client, or a scoped one when the request
// carries its own API key. The shared client is never mutated.
func (a *Adapter) clientFor(ctx context.Context, opts domain.AIOptions) (*genai.Client, error) {
	if opts.APIKey == "" {
		return a.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scoped gemini client: %w", err)
	}
	return client, nil
}
