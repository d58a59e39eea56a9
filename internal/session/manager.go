package session

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/dialog"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/storage"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/telephony"
	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/tts"
)

// Transcriber turns one audio clip into text. An empty string means the
// caller said nothing usable.
type Transcriber interface {
	Transcribe(ctx context.Context, clip []byte, language string) string
}

// CallControl redirects an in-progress call to the human line.
type CallControl interface {
	Transfer(callSID string) error
}

// streamConn is the slice of telephony.Conn the manager needs; tests drive
// the event loop through a scripted fake.
type streamConn interface {
	ReadMessage() (*telephony.StreamMessage, error)
	SendMedia(streamSid string, audio []byte) error
	Close() error
}

// Manager runs the media-stream event loop for every call.
type Manager struct {
	registry    *Registry
	machine     *dialog.Machine
	transcriber Transcriber
	speech      tts.Synthesizer
	calls       CallControl
	archive     storage.Archive

	defaultLanguage string
	startPhase      dialog.Phase

	upgrader websocket.Upgrader
}

// NewManager wires the per-call collaborators together. When
// skipLanguageSelect is set, calls start directly in the task flow using the
// default language instead of walking the welcome menus.
func NewManager(registry *Registry, machine *dialog.Machine, transcriber Transcriber, speech tts.Synthesizer, calls CallControl, archive storage.Archive, defaultLanguage string, skipLanguageSelect bool) *Manager {
	if defaultLanguage == "" {
		defaultLanguage = dialog.DefaultLanguage
	}
	startPhase := dialog.Welcome
	if skipLanguageSelect {
		startPhase = dialog.TaskFlow
	}
	return &Manager{
		registry:        registry,
		machine:         machine,
		transcriber:     transcriber,
		speech:          speech,
		calls:           calls,
		archive:         archive,
		defaultLanguage: defaultLanguage,
		startPhase:      startPhase,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Registry exposes the active-call registry for status reporting.
func (m *Manager) Registry() *Registry { return m.registry }

// HandleMediaStream upgrades the Twilio media-stream websocket and runs the
// call until the stream stops or the connection drops.
func (m *Manager) HandleMediaStream(c echo.Context) error {
	callID := c.Param("callSid")

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("Failed to upgrade media stream for call %s: %v", callID, err)
		return err
	}

	m.runCall(c.Request().Context(), callID, telephony.NewConn(ws))
	return nil
}

func (m *Manager) runCall(ctx context.Context, callID string, conn streamConn) {
	defer conn.Close()

	sess := newSession(callID, m.defaultLanguage, m.startPhase)
	registered := false
	defer func() {
		if registered {
			m.registry.Remove(sess.CallID)
			m.archiveTranscript(sess)
			log.Printf("Call %s ended after %s, %d turns", sess.CallID, sess.Duration().Round(0), sess.History.Len())
		}
	}()

	for {
		msg, err := conn.ReadMessage()
		if err != nil {
			if registered {
				log.Printf("Media stream for call %s closed: %v", sess.CallID, err)
			}
			return
		}

		switch msg.Event {
		case "connected":
			// Protocol preamble, nothing to do yet.

		case "start":
			if msg.Start == nil {
				continue
			}
			sess.StreamSid = msg.Start.StreamSid
			if msg.Start.CallSid != "" {
				sess.CallID = msg.Start.CallSid
			}
			m.registry.Add(sess)
			registered = true
			log.Printf("Call %s started, stream %s, phase %s", sess.CallID, sess.StreamSid, sess.Phase)
			m.speak(ctx, sess, conn, m.machine.Greeting(sess.Phase, sess.Language))

		case "media":
			if !registered || msg.Media == nil {
				continue
			}
			m.handleMedia(ctx, sess, conn, msg.Media.Payload)

		case "stop":
			log.Printf("Call %s received stop event", sess.CallID)
			return
		}
	}
}

// handleMedia buffers one inbound chunk and, once a full clip has
// accumulated, runs the transcribe/advance/speak cycle.
func (m *Manager) handleMedia(ctx context.Context, sess *Session, conn streamConn, payload string) {
	if sess.Phase == dialog.Transfer {
		// The caller is being handed over; stop listening.
		return
	}

	chunk, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		log.Printf("Call %s: dropping undecodable media payload: %v", sess.CallID, err)
		return
	}
	sess.segmenter.Append(chunk)
	if !sess.segmenter.Ready() {
		return
	}

	clip := sess.segmenter.Drain()
	text := m.transcriber.Transcribe(ctx, clip, sess.Language)
	if text == "" {
		return
	}
	log.Printf("Call %s heard (%s): %q", sess.CallID, sess.Language, text)

	out := m.machine.Advance(ctx, sess.Phase, sess.Language, sess.History, text)
	sess.Phase = out.Phase
	sess.Language = out.Language

	m.speak(ctx, sess, conn, out.Reply)

	if out.Transfer && !sess.transferred {
		sess.transferred = true
		if err := m.calls.Transfer(sess.CallID); err != nil {
			log.Printf("Call %s: transfer failed: %v", sess.CallID, err)
		}
	}
}

// speak synthesizes text and pushes the audio onto the call. Synthesis or
// send failures drop the utterance but keep the call alive.
func (m *Manager) speak(ctx context.Context, sess *Session, conn streamConn, text string) {
	if text == "" {
		return
	}
	clip, err := m.speech.Synthesize(ctx, text, sess.Language)
	if err != nil {
		log.Printf("Call %s: TTS failed, skipping utterance: %v", sess.CallID, err)
		return
	}
	if err := conn.SendMedia(sess.StreamSid, clip); err != nil {
		log.Printf("Call %s: failed to send media: %v", sess.CallID, err)
	}
}

func (m *Manager) archiveTranscript(sess *Session) {
	if m.archive == nil {
		return
	}
	turns := sess.History.All()
	if len(turns) == 0 {
		return
	}
	callID := sess.CallID
	go func() {
		if err := m.archive.ArchiveTranscript(callID, turns); err != nil {
			log.Printf("Call %s: failed to archive transcript: %v", callID, err)
		}
	}()
}
