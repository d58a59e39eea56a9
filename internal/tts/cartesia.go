package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const cartesiaVersion = "2024-06-10"

// CartesiaClient synthesizes speech via the Cartesia bytes endpoint, asking
// for raw mu-law at 8 kHz so the result can go straight onto the call.
type CartesiaClient struct {
	APIKey     string
	VoiceID    string
	BaseURL    string
	HTTPClient *http.Client
}

// NewCartesiaClient constructs a Cartesia TTS client.
func NewCartesiaClient(apiKey, voiceID string) *CartesiaClient {
	return &CartesiaClient{
		APIKey:     apiKey,
		VoiceID:    voiceID,
		BaseURL:    "https://api.cartesia.ai",
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type cartesiaVoice struct {
	Mode string `json:"mode"`
	ID   string `json:"id"`
}

type cartesiaOutputFormat struct {
	Container  string `json:"container"`
	Encoding   string `json:"encoding"`
	SampleRate int    `json:"sample_rate"`
}

type cartesiaRequest struct {
	ModelID      string               `json:"model_id"`
	Transcript   string               `json:"transcript"`
	Voice        cartesiaVoice        `json:"voice"`
	OutputFormat cartesiaOutputFormat `json:"output_format"`
	Language     string               `json:"language"`
}

// Synthesize implements Synthesizer.
func (c *CartesiaClient) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("cartesia: API key missing")
	}
	if text == "" {
		return nil, nil
	}

	body, _ := json.Marshal(cartesiaRequest{
		ModelID:    "sonic-multilingual",
		Transcript: text,
		Voice:      cartesiaVoice{Mode: "id", ID: c.VoiceID},
		OutputFormat: cartesiaOutputFormat{
			Container:  "raw",
			Encoding:   "pcm_mulaw",
			SampleRate: 8000,
		},
		Language: language,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/tts/bytes", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cartesia-Version", cartesiaVersion)
	req.Header.Set("X-API-Key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cartesia: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cartesia: status=%d body=%s", resp.StatusCode, string(b))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cartesia: read body: %w", err)
	}
	return audio, nil
}
