package audio

import (
	"bytes"
	"encoding/binary"
)

// WrapPCM16 builds a mono 16-bit PCM WAV file around raw little-endian
// samples at the given rate.
func WrapPCM16(pcm []byte, sampleRate int) []byte {
	var buf bytes.Buffer
	dataLen := uint32(len(pcm))

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(pcm)

	return buf.Bytes()
}

// ClipToWAV converts a raw mu-law telephony clip into a WAV payload the
// transcription collaborator accepts.
func ClipToWAV(mulaw []byte, sampleRate int) []byte {
	return WrapPCM16(DecodeMulaw(mulaw), sampleRate)
}
