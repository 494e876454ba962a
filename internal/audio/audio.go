// Package audio plays synthesized sound cues.
package audio

import (
	"math"

	"github.com/vovakirdan/monkeytrain/internal/synth"
)

// Output format shared by every player: stereo 32-bit float little endian.
const (
	ChannelCount   = 2
	BytesPerSample = 4
	FrameSize      = ChannelCount * BytesPerSample
)

// Player plays cues without blocking the caller.
type Player interface {
	Play(c synth.Cue)
	SetMuted(muted bool)
	Muted() bool
	Close() error
}

// EncodeStereoF32 converts mono samples in [-1, 1] into interleaved stereo
// float32 LE frames. Samples outside the range are clipped.
func EncodeStereoF32(samples []float64) []byte {
	buf := make([]byte, len(samples)*FrameSize)
	for i, s := range samples {
		putStereoF32(buf, i, clip(s))
	}
	return buf
}

// putStereoF32 writes a sample to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		off := i*FrameSize + ch*BytesPerSample
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

func clip(s float64) float64 {
	switch {
	case math.IsNaN(s):
		return 0
	case s > 1:
		return 1
	case s < -1:
		return -1
	default:
		return s
	}
}

// Silent is a Player that discards every cue. It is used when sound is
// disabled or no output device is available.
type Silent struct {
	muted bool
}

func (s *Silent) Play(synth.Cue)      {}
func (s *Silent) SetMuted(muted bool) { s.muted = muted }
func (s *Silent) Muted() bool         { return s.muted }
func (s *Silent) Close() error        { return nil }
