package synth

import (
	"errors"
	"math"
	"testing"
)

func TestSynthesizeSquareSignFlip(t *testing.T) {
	samples, err := Synthesize(440, 0.01, ShapeSquare, 44100, 0.5)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(samples) != 441 {
		t.Fatalf("len = %d, expected 441", len(samples))
	}

	// period = 44100/440 ≈ 100.23 samples, so the sign flips after sample 50
	// and flips back after sample 100.
	for i := 0; i <= 50; i++ {
		if samples[i] != 0.5 {
			t.Fatalf("sample %d = %v, expected +0.5", i, samples[i])
		}
	}
	for i := 51; i <= 100; i++ {
		if samples[i] != -0.5 {
			t.Fatalf("sample %d = %v, expected -0.5", i, samples[i])
		}
	}
	if samples[101] != 0.5 {
		t.Errorf("sample 101 = %v, expected +0.5 (second cycle)", samples[101])
	}
}

func TestSynthesizeLengthAndBounds(t *testing.T) {
	rates := []int{8000, 22050, 44100}
	freqs := []float64{55, 200, 440, 800, 3000}
	durations := []float64{0, 0.01, 0.05, 0.2, 0.3, 1}
	amplitudes := []float64{0, 0.3, 1}

	for _, shape := range []Shape{ShapeSquare, ShapeSine} {
		for _, rate := range rates {
			for _, f := range freqs {
				for _, d := range durations {
					for _, a := range amplitudes {
						samples, err := Synthesize(f, d, shape, rate, a)
						if err != nil {
							t.Fatalf("Synthesize(%v, %v, %v, %d, %v) error = %v", f, d, shape, rate, a, err)
						}
						want := int(math.Round(d * float64(rate)))
						if len(samples) != want {
							t.Fatalf("len = %d, expected %d (f=%v d=%v rate=%d)", len(samples), want, f, d, rate)
						}
						for i, s := range samples {
							if math.Abs(s) > a {
								t.Fatalf("sample %d = %v exceeds amplitude %v", i, s, a)
							}
						}
					}
				}
			}
		}
	}
}

func TestSynthesizeShortDurationIsEmpty(t *testing.T) {
	samples, err := Synthesize(440, 0.00001, ShapeSquare, 44100, 0.5)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if samples == nil || len(samples) != 0 {
		t.Errorf("expected an empty, non-nil buffer, got %v", samples)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a, _ := Synthesize(600, 0.2, ShapeSine, 22050, 0.3)
	b, _ := Synthesize(600, 0.2, ShapeSine, 22050, 0.3)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSynthesizeSineStartsAtZero(t *testing.T) {
	samples, _ := Synthesize(441, 0.01, ShapeSine, 44100, 1)
	if samples[0] != 0 {
		t.Errorf("sample 0 = %v, expected 0", samples[0])
	}
	// quarter period of 100 samples is the peak
	if math.Abs(samples[25]-1) > 1e-9 {
		t.Errorf("sample 25 = %v, expected 1", samples[25])
	}
}

func TestSynthesizeInvalidParameters(t *testing.T) {
	tests := []struct {
		name      string
		freq, dur float64
		shape     Shape
		rate      int
		amp       float64
	}{
		{"zero frequency", 0, 0.1, ShapeSquare, 44100, 0.5},
		{"negative frequency", -440, 0.1, ShapeSquare, 44100, 0.5},
		{"NaN frequency", math.NaN(), 0.1, ShapeSquare, 44100, 0.5},
		{"negative duration", 440, -0.1, ShapeSquare, 44100, 0.5},
		{"huge duration", 440, 1e15, ShapeSquare, 44100, 0.5},
		{"duration past sample limit", 440, 400, ShapeSquare, 44100, 0.5},
		{"zero sample rate", 440, 0.1, ShapeSquare, 0, 0.5},
		{"amplitude above one", 440, 0.1, ShapeSquare, 44100, 1.5},
		{"negative amplitude", 440, 0.1, ShapeSquare, 44100, -0.1},
		{"unknown shape", 440, 0.1, Shape(9), 44100, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Synthesize(tc.freq, tc.dur, tc.shape, tc.rate, tc.amp)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error = %v, expected ErrInvalidParameter", err)
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	if s, err := ParseShape("Sine"); err != nil || s != ShapeSine {
		t.Errorf("ParseShape(Sine) = %v, %v", s, err)
	}
	if s, err := ParseShape(""); err != nil || s != ShapeSquare {
		t.Errorf("ParseShape(\"\") = %v, %v", s, err)
	}
	if _, err := ParseShape("sawtooth"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ParseShape(sawtooth) error = %v", err)
	}
}
