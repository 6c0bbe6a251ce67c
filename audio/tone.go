package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone generates one synthesized cue: a sine sweep from startFreq to
// endFreq with a linear attack/release envelope. All cues are generated,
// no assets are shipped.
type tone struct {
	startFreq float64
	endFreq   float64
	volume    float64
	phase     float64
	duration  int
	position  int
	rate      beep.SampleRate
}

// NewTone creates a finite streamer sweeping between two frequencies
func NewTone(startFreq, endFreq, volume float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		startFreq: startFreq,
		endFreq:   endFreq,
		volume:    volume,
		duration:  rate.N(duration),
		rate:      rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		progress := float64(t.position) / float64(t.duration)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress
		val := math.Sin(2*math.Pi*t.phase) * t.volume * envelope(progress)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

// envelope shapes amplitude over the cue: 10% attack, 40% release
func envelope(progress float64) float64 {
	switch {
	case progress < 0.1:
		return progress / 0.1
	case progress > 0.6:
		return (1 - progress) / 0.4
	default:
		return 1
	}
}
