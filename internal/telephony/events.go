// Package telephony handles the Twilio side of a call: the voice webhook,
// signature validation, Media Stream frames and mid-call transfer.
package telephony

// StreamMessage is one inbound JSON frame on a Twilio Media Stream
// connection. Only the fields relevant to the event type are populated.
type StreamMessage struct {
	Event string      `json:"event"`
	Start *StartFrame `json:"start,omitempty"`
	Media *MediaFrame `json:"media,omitempty"`

	// StreamSid accompanies media and stop events.
	StreamSid string `json:"streamSid,omitempty"`
}

// StartFrame carries the stream metadata Twilio sends once per call.
type StartFrame struct {
	StreamSid  string            `json:"streamSid"`
	CallSid    string            `json:"callSid"`
	AccountSid string            `json:"accountSid"`
	Parameters map[string]string `json:"customParameters,omitempty"`
}

// MediaFrame carries one base64-encoded chunk of mu-law caller audio.
type MediaFrame struct {
	Timestamp string `json:"timestamp,omitempty"`
	Payload   string `json:"payload"`
}

type outboundPayload struct {
	Payload string `json:"payload"`
}

// outboundMedia is the envelope for audio sent back onto the call.
type outboundMedia struct {
	Event     string          `json:"event"`
	StreamSid string          `json:"streamSid"`
	Media     outboundPayload `json:"media"`
}
