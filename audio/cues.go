// Package audio synthesizes short presentation cues through the beep
// speaker. Everything is generated at startup from oscillators; failure to
// open the audio device degrades to silence, never to a dead presenter.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/morph/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Cues plays navigation feedback sounds
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCues creates a silent cue player; call Initialize to open the device
func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences and detaches everything
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.mixer.Clear()
	c.initialized = false
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Advance plays a short rising blip for a forward step
func (c *Cues) Advance() {
	c.play(NewTone(440, 660, constants.CueVolume, 70*time.Millisecond, sampleRate))
}

// Back plays a falling blip for backward navigation
func (c *Cues) Back() {
	c.play(NewTone(660, 440, constants.CueVolume, 70*time.Millisecond, sampleRate))
}

// Settle plays a soft tick when an animation completes
func (c *Cues) Settle() {
	c.play(NewTone(880, 880, constants.CueVolume*0.6, 40*time.Millisecond, sampleRate))
}

// PageTurn plays a low sweep on page change
func (c *Cues) PageTurn() {
	c.play(NewTone(330, 180, constants.CueVolume, 160*time.Millisecond, sampleRate))
}
