package synthesizer

import (
	"context"
	"fmt"
	"io"
	"os"

	"coursecast/pkg/openai"
)

// Synthesizer turns a narration script into an audio file on disk
type Synthesizer interface {
	// Synthesize writes audio for the script to audioPath
	Synthesize(ctx context.Context, script, audioPath string) error
}

// Defaults for the OpenAI speech endpoint
const (
	DefaultModel  = "tts-1"
	DefaultVoice  = "sage"
	defaultFormat = "mp3" // compressed, keeps files small
)

// OpenAISynthesizer implements Synthesizer using the OpenAI TTS API
type OpenAISynthesizer struct {
	client *openai.Client
	model  string
	voice  string
}

// NewOpenAISynthesizer creates a synthesizer with the given client, model and
// voice. Empty model or voice fall back to the defaults.
func NewOpenAISynthesizer(client *openai.Client, model, voice string) *OpenAISynthesizer {
	if model == "" {
		model = DefaultModel
	}
	if voice == "" {
		voice = DefaultVoice
	}
	return &OpenAISynthesizer{
		client: client,
		model:  model,
		voice:  voice,
	}
}

// Synthesize requests MP3 audio for the script and streams the response
// directly to audioPath
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, script, audioPath string) error {
	stream, err := s.client.CreateSpeech(ctx, openai.SpeechRequest{
		Model:          s.model,
		Input:          script,
		Voice:          s.voice,
		ResponseFormat: defaultFormat,
	})
	if err != nil {
		return fmt.Errorf("speech call failed: %w", err)
	}
	defer stream.Close()

	file, err := os.Create(audioPath)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}

	if _, err := io.Copy(file, stream); err != nil {
		file.Close()
		os.Remove(audioPath)
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close audio file: %w", err)
	}

	return nil
}
