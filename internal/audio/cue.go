// Package audio plays the movement-rejection cue through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	bumpFreq     = 110.0
	bumpDuration = 120 * time.Millisecond
)

// Player owns the speaker and produces one-shot cues. It implements the
// mover's Cue interface. A nil *Player is a valid no-op, so headless builds
// just skip construction.
type Player struct{}

// NewPlayer initializes the speaker. Fails if no audio device is available;
// callers treat that as "run silent", not as a fatal error.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Player{}, nil
}

// Bump plays a short low buzz. Non-blocking: the speaker mixes it in the
// background while the frame loop continues.
func (p *Player) Bump() {
	if p == nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(bumpDuration), newBuzz(sampleRate, bumpFreq)))
}

// Close releases the audio device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}

// buzz is a square-wave streamer with a linear fade-out so the cue doesn't
// click when beep.Take cuts it off.
type buzz struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	total    int
}

func newBuzz(rate beep.SampleRate, freq float64) beep.Streamer {
	return &buzz{
		freq:  freq,
		rate:  rate,
		total: rate.N(bumpDuration),
	}
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := 0.3
		if b.phase >= 0.5 {
			val = -0.3
		}

		// Fade to silence over the cue's length.
		if b.total > 0 {
			fade := 1.0 - float64(b.position)/float64(b.total)
			if fade < 0 {
				fade = 0
			}
			val *= fade
		}

		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }
