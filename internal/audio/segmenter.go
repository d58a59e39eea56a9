package audio

const (
	// SampleRate is the Twilio Media Streams telephony rate: 8 kHz mu-law,
	// one byte per sample.
	SampleRate = 8000
	// MinClipDurationMs is the minimum buffered duration before a clip is
	// considered worth transcribing.
	MinClipDurationMs = 1000
)

// Segmenter accumulates raw inbound audio bytes until enough have been
// buffered to form a transcribable clip. It is owned by a single call's
// event-processing flow and is not safe for concurrent use.
type Segmenter struct {
	buf        []byte
	sampleRate int
	minMs      int
}

// NewSegmenter creates a Segmenter for the given source encoding. sampleRate
// is in samples (bytes, for mu-law) per second; minDurationMs is the
// readiness threshold.
func NewSegmenter(sampleRate, minDurationMs int) *Segmenter {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	if minDurationMs <= 0 {
		minDurationMs = MinClipDurationMs
	}
	return &Segmenter{sampleRate: sampleRate, minMs: minDurationMs}
}

// Append buffers a chunk with no transformation. Chunks are never dropped;
// buffering is bounded only by call duration.
func (s *Segmenter) Append(chunk []byte) {
	s.buf = append(s.buf, chunk...)
}

// Ready reports whether the buffered bytes cover at least the minimum clip
// duration at the configured sample rate.
func (s *Segmenter) Ready() bool {
	return len(s.buf)*1000/s.sampleRate >= s.minMs
}

// Drain returns the concatenated buffer contents and resets the buffer.
func (s *Segmenter) Drain() []byte {
	clip := s.buf
	s.buf = nil
	return clip
}

// Buffered returns the number of bytes currently held.
func (s *Segmenter) Buffered() int { return len(s.buf) }
