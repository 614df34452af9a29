// Package audio plays short tones for box flashes and round verdicts.
package audio

import (
	"context"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/memoryflash/internal/session"
)

const (
	sampleRate = beep.SampleRate(44100)
	baseFreq   = 261.63 // C4
	toneLength = 120 * time.Millisecond
)

// pentatonic holds the major pentatonic ratios within one octave.
var pentatonic = [...]float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3}

// Player turns session events into sounds. A Player whose speaker failed to
// initialise stays silent.
type Player struct {
	enabled bool
}

// New initialises the speaker when enabled is true. Failure is not fatal:
// the returned player is silent and the error is logged.
func New(enabled bool) *Player {
	p := &Player{}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.WithError(err).Warn("audio initialization failed, continuing without sound")
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether sounds are played.
func (p *Player) Enabled() bool {
	return p.enabled
}

// ToneFor returns the frequency for a box: ids climb a pentatonic scale,
// one octave every five boxes.
func ToneFor(box int) float64 {
	if box < 1 {
		return baseFreq
	}
	i := box - 1
	return baseFreq * pentatonic[i%len(pentatonic)] * math.Pow(2, float64(i/len(pentatonic)))
}

// HandleEvent plays the sound for ev.
func (p *Player) HandleEvent(_ context.Context, ev session.Event) {
	if !p.enabled {
		return
	}
	switch ev.Kind {
	case session.EventBoxActivated:
		p.play(ToneFor(ev.Box))
	case session.EventJudged:
		if ev.Outcome == session.OutcomeSuccess {
			p.play(ToneFor(11), ToneFor(13), ToneFor(16))
		} else {
			p.play(baseFreq/2, baseFreq/2*0.94)
		}
	}
}

// play queues the given frequencies back to back.
func (p *Player) play(freqs ...float64) {
	n := sampleRate.N(toneLength)
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			log.WithError(err).WithField("freq", f).Debug("skipping tone")
			continue
		}
		parts = append(parts, beep.Take(n, sine))
	}
	if len(parts) == 0 {
		return
	}
	speaker.Play(beep.Seq(parts...))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
