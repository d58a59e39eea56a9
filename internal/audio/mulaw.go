package audio

import "encoding/binary"

const mulawBias = 0x84

// mulawToLinear expands one G.711 mu-law byte to a 16-bit linear PCM sample.
func mulawToLinear(u byte) int16 {
	u = ^u
	t := (int16(u&0x0f) << 3) + mulawBias
	t <<= (u & 0x70) >> 4
	if u&0x80 != 0 {
		return mulawBias - t
	}
	return t - mulawBias
}

// DecodeMulaw converts mu-law samples to 16-bit little-endian linear PCM.
func DecodeMulaw(in []byte) []byte {
	out := make([]byte, len(in)*2)
	for i, u := range in {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(mulawToLinear(u)))
	}
	return out
}
