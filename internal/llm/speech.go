package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// SpeechClient turns chat replies into spoken audio. It is a thin wrapper over
// the OpenAI speech endpoint — strictly best-effort: callers treat any failure
// as "no audio", never as a chat failure.
type SpeechClient struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

// NewSpeechClient creates a text-to-speech client.
func NewSpeechClient(apiKey string) *SpeechClient {
	return &SpeechClient{
		client: openai.NewClient(apiKey),
		voice:  openai.VoiceNova,
	}
}

// Speak synthesizes the given text and returns base64-encoded MP3 bytes.
func (s *SpeechClient) Speak(ctx context.Context, text string) (string, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return "", fmt.Errorf("speech API call: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return "", fmt.Errorf("reading speech response: %w", err)
	}

	return base64.StdEncoding.EncodeToString(audio), nil
}
