package telephony

import (
	"encoding/base64"
	"sync"

	"github.com/gorilla/websocket"
)

// MediaSender pushes synthesized audio back onto a call.
type MediaSender interface {
	SendMedia(streamSid string, audio []byte) error
}

// Conn wraps a Media Stream websocket. Writes are serialized because
// gorilla connections allow only one concurrent writer.
type Conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

// NewConn wraps an upgraded websocket connection.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// ReadMessage reads and decodes the next inbound stream frame.
func (c *Conn) ReadMessage() (*StreamMessage, error) {
	var msg StreamMessage
	if err := c.ws.ReadJSON(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SendMedia base64-encodes mu-law audio and writes it as a media event.
func (c *Conn) SendMedia(streamSid string, audio []byte) error {
	if len(audio) == 0 {
		return nil
	}
	msg := outboundMedia{
		Event:     "media",
		StreamSid: streamSid,
		Media:     outboundPayload{Payload: base64.StdEncoding.EncodeToString(audio)},
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(msg)
}

// Close closes the underlying websocket.
func (c *Conn) Close() error {
	return c.ws.Close()
}
