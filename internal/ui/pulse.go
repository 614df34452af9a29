package ui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultPulse is how long a box glow takes to fade.
const DefaultPulse = 500 * time.Millisecond

// Pulses eases each lit box's glow from full to zero.
type Pulses struct {
	tweens    map[int]*gween.Tween
	intensity map[int]float32
}

// NewPulses creates an empty set of glows.
func NewPulses() *Pulses {
	return &Pulses{
		tweens:    make(map[int]*gween.Tween),
		intensity: make(map[int]float32),
	}
}

// Trigger restarts the glow for box, fading over d.
func (p *Pulses) Trigger(box int, d time.Duration) {
	if d <= 0 {
		d = DefaultPulse
	}
	p.tweens[box] = gween.New(1, 0, float32(d.Seconds()), ease.OutQuad)
	p.intensity[box] = 1
}

// Update advances every glow by dt and drops finished ones.
func (p *Pulses) Update(dt time.Duration) {
	for box, t := range p.tweens {
		current, finished := t.Update(float32(dt.Seconds()))
		if finished {
			delete(p.tweens, box)
			delete(p.intensity, box)
			continue
		}
		p.intensity[box] = current
	}
}

// Intensity returns the glow of box in [0, 1].
func (p *Pulses) Intensity(box int) float32 {
	return p.intensity[box]
}

// Active returns the number of glows still fading.
func (p *Pulses) Active() int {
	return len(p.tweens)
}

// Clear drops every glow.
func (p *Pulses) Clear() {
	clear(p.tweens)
	clear(p.intensity)
}
