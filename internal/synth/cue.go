package synth

import "fmt"

// Cue is a short sound tied to a game event.
type Cue int

const (
	CueCorrect Cue = iota
	CueIncorrect
	CueLevelUp
	CueUIClick
)

// Cues returns every cue in declaration order.
func Cues() []Cue {
	return []Cue{CueCorrect, CueIncorrect, CueLevelUp, CueUIClick}
}

// String returns the cue name used in config files and logs.
func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	case CueLevelUp:
		return "level_up"
	case CueUIClick:
		return "ui_click"
	default:
		return "unknown"
	}
}

// ParseCue parses a cue name as produced by String.
func ParseCue(name string) (Cue, error) {
	for _, c := range Cues() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown cue %q: %w", name, ErrInvalidParameter)
}

// Tone is the synthesis recipe for one cue.
type Tone struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
	Shape     Shape
}

// DefaultTones returns the built-in cue table.
func DefaultTones() map[Cue]Tone {
	return map[Cue]Tone{
		CueCorrect:   {Frequency: 1000, Duration: 0.05, Shape: ShapeSquare},
		CueIncorrect: {Frequency: 200, Duration: 0.3, Shape: ShapeSquare},
		CueLevelUp:   {Frequency: 600, Duration: 0.2, Shape: ShapeSquare},
		CueUIClick:   {Frequency: 800, Duration: 0.05, Shape: ShapeSquare},
	}
}

// CueBank maps cues to synthesized buffers. All buffers are rendered once at
// construction; the recipes are constant for the bank's lifetime, so the cache
// never needs invalidation. Returned buffers must not be modified.
type CueBank struct {
	sampleRate int
	amplitude  float64
	tones      map[Cue]Tone
	buffers    map[Cue][]float64
}

// NewCueBank renders every cue in tones. Cues missing from tones fall back to
// DefaultTones. Any invalid recipe fails the whole bank.
func NewCueBank(sampleRate int, amplitude float64, tones map[Cue]Tone) (*CueBank, error) {
	b := &CueBank{
		sampleRate: sampleRate,
		amplitude:  amplitude,
		tones:      DefaultTones(),
		buffers:    make(map[Cue][]float64),
	}
	for c, t := range tones {
		b.tones[c] = t
	}

	for _, c := range Cues() {
		t := b.tones[c]
		buf, err := Synthesize(t.Frequency, t.Duration, t.Shape, sampleRate, amplitude)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", c, err)
		}
		b.buffers[c] = buf
	}
	return b, nil
}

// Samples returns the cached buffer for a cue, or nil for an unknown cue.
func (b *CueBank) Samples(c Cue) []float64 {
	return b.buffers[c]
}

// Tone returns the recipe for a cue.
func (b *CueBank) Tone(c Cue) (Tone, bool) {
	t, ok := b.tones[c]
	return t, ok
}

// SampleRate returns the rate all buffers were rendered at.
func (b *CueBank) SampleRate() int {
	return b.sampleRate
}
