// Package session owns the lifecycle of one phone call: it bridges the
// Twilio media stream to the segmenter, transcriber, dialog machine and
// speech synthesizer, and tears everything down when the call ends.
package session

import (
	"time"

	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/audio"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/dialog"
)

// Session is the per-call state. It is mutated only by the call's single
// event-processing goroutine; the registry just hands out references.
type Session struct {
	CallID    string
	StreamSid string

	Phase    dialog.Phase
	Language string
	History  *dialog.History

	segmenter   *audio.Segmenter
	transferred bool
	startedAt   time.Time
}

func newSession(callID, language string, phase dialog.Phase) *Session {
	return &Session{
		CallID:    callID,
		Phase:     phase,
		Language:  language,
		History:   &dialog.History{},
		segmenter: audio.NewSegmenter(audio.SampleRate, audio.MinClipDurationMs),
		startedAt: time.Now(),
	}
}

// Duration reports how long the call has been active.
func (s *Session) Duration() time.Duration {
	return time.Since(s.startedAt)
}
