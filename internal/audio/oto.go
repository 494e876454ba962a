package audio

import (
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/monkeytrain/internal/synth"
)

// maxVoices bounds the number of cues sounding at once.
const maxVoices = 4

// OtoPlayer plays cues on the default output device. Each cue is encoded
// once at construction; Play starts a goroutine that feeds a fresh oto
// player and closes it when the buffer drains.
//
// oto allows one context per process, so create at most one OtoPlayer.
type OtoPlayer struct {
	ctx    *oto.Context
	ready  chan struct{}
	pcm    map[synth.Cue][]byte
	logger *log.Logger

	muted  atomic.Bool
	voices atomic.Int32
	wg     sync.WaitGroup
}

// NewOtoPlayer opens the output device at the bank's sample rate.
func NewOtoPlayer(bank *synth.CueBank, logger *log.Logger) (*OtoPlayer, error) {
	ctx, ready, err := oto.NewContext(bank.SampleRate(), ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: open output: %w", err)
	}

	pcm := make(map[synth.Cue][]byte)
	for _, c := range synth.Cues() {
		pcm[c] = EncodeStereoF32(bank.Samples(c))
	}

	return &OtoPlayer{
		ctx:    ctx,
		ready:  ready,
		pcm:    pcm,
		logger: logger,
	}, nil
}

// Play starts c and returns immediately. Cues are dropped while the device
// is still starting, while muted, and when too many are already sounding.
func (p *OtoPlayer) Play(c synth.Cue) {
	if p.muted.Load() {
		return
	}
	select {
	case <-p.ready:
	default:
		p.logger.Debug("audio device not ready", "cue", c)
		return
	}

	data := p.pcm[c]
	if len(data) == 0 {
		return
	}
	if p.voices.Add(1) > maxVoices {
		p.voices.Add(-1)
		p.logger.Debug("cue dropped", "cue", c, "voices", maxVoices)
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.voices.Add(-1)

		player := p.ctx.NewPlayer(bytes.NewReader(data))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.logger.Warn("closing audio player", "cue", c, "error", err)
		}
	}()
}

// WaitReady blocks until the output device has started.
func (p *OtoPlayer) WaitReady() {
	<-p.ready
}

func (p *OtoPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

func (p *OtoPlayer) Muted() bool {
	return p.muted.Load()
}

// Close waits for sounding cues to finish.
func (p *OtoPlayer) Close() error {
	p.wg.Wait()
	return nil
}
