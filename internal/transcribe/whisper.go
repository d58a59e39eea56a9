// Package transcribe converts finite audio clips into text through the
// OpenAI Whisper API.
package transcribe

import (
	"bytes"
	"context"
	"log"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/audio"
)

// Gateway transcribes mu-law telephony clips. When no API key is configured
// the gateway stays disabled for the process lifetime and every call returns
// empty text.
type Gateway struct {
	client  oai.Client
	model   string
	enabled bool
}

// New constructs a Gateway. An empty apiKey disables transcription.
func New(apiKey, model string, opts ...option.RequestOption) *Gateway {
	if model == "" {
		model = "whisper-1"
	}
	if apiKey == "" {
		log.Println("transcribe: no API key, transcription disabled")
		return &Gateway{model: model}
	}
	reqOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Gateway{client: oai.NewClient(reqOpts...), model: model, enabled: true}
}

// Transcribe converts a mu-law clip into text in the given language. A failed
// or empty transcription returns empty text: "nothing said" is a valid
// signal, not an error, and is never retried.
func (g *Gateway) Transcribe(ctx context.Context, clip []byte, language string) string {
	if !g.enabled || len(clip) == 0 {
		return ""
	}

	wav := audio.ClipToWAV(clip, audio.SampleRate)
	res, err := g.client.Audio.Transcriptions.New(ctx, oai.AudioTranscriptionNewParams{
		Model:    oai.AudioModel(g.model),
		File:     oai.File(bytes.NewReader(wav), "clip.wav", "audio/wav"),
		Language: oai.String(language),
	})
	if err != nil {
		log.Printf("transcribe: whisper error: %v", err)
		return ""
	}
	return strings.TrimSpace(res.Text)
}
