// Package synth generates sound effects as raw sample buffers at runtime,
// so the game ships without any audio assets.
package synth

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidParameter is returned when a synthesis parameter is out of range.
// It signals a misconfiguration, not a runtime condition.
var ErrInvalidParameter = errors.New("synth: invalid parameter")

// MaxSamples bounds the length of a synthesized buffer, about six minutes
// at 44.1 kHz.
const MaxSamples = 1 << 24

// Shape selects the waveform.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeSine
)

// String returns the lowercase shape name used in config files.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeSine:
		return "sine"
	default:
		return "unknown"
	}
}

// ParseShape parses a shape name ("square" or "sine").
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square", "":
		return ShapeSquare, nil
	case "sine":
		return ShapeSine, nil
	default:
		return ShapeSquare, fmt.Errorf("unknown shape %q: %w", name, ErrInvalidParameter)
	}
}

// Synthesize renders a mono tone of the given frequency and duration.
//
// The buffer holds round(duration*sampleRate) samples in [-amplitude, amplitude].
// A duration shorter than one sample yields an empty buffer. Square waves are
// produced by toggling the sign every half period instead of evaluating a
// sine per sample; the flip happens exactly at period/2 within each cycle.
// Identical inputs always produce identical buffers.
func Synthesize(frequency, duration float64, shape Shape, sampleRate int, amplitude float64) ([]float64, error) {
	if !(frequency > 0) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("frequency %v Hz: %w", frequency, ErrInvalidParameter)
	}
	if !(duration >= 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("duration %v s: %w", duration, ErrInvalidParameter)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", sampleRate, ErrInvalidParameter)
	}
	if !(amplitude >= 0 && amplitude <= 1) {
		return nil, fmt.Errorf("amplitude %v: %w", amplitude, ErrInvalidParameter)
	}
	if shape != ShapeSquare && shape != ShapeSine {
		return nil, fmt.Errorf("shape %d: %w", int(shape), ErrInvalidParameter)
	}

	exact := duration * float64(sampleRate)
	if exact < 1 {
		return []float64{}, nil
	}
	if exact > MaxSamples {
		return nil, fmt.Errorf("duration %v s is %.0f samples, limit %d: %w", duration, exact, MaxSamples, ErrInvalidParameter)
	}
	n := int(math.Round(exact))
	samples := make([]float64, n)

	period := float64(sampleRate) / frequency
	switch shape {
	case ShapeSquare:
		half := period / 2
		for i := range samples {
			if math.Mod(float64(i), period) < half {
				samples[i] = amplitude
			} else {
				samples[i] = -amplitude
			}
		}
	case ShapeSine:
		step := 2 * math.Pi / period
		for i := range samples {
			samples[i] = amplitude * math.Sin(step*float64(i))
		}
	}

	return samples, nil
}
