// Package tts synthesizes reply text into telephony audio.
package tts

import "context"

// Synthesizer converts reply text into mu-law 8 kHz audio ready for the
// outbound media stream.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}
