// Package audio plays the optional wall-bump cue.
// Every operation is a no-op until Init succeeds, so the renderer runs unchanged without a sound device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cooldown is the minimum spacing between bumps; holding a key against a wall would otherwise queue one per frame
const Cooldown = 150 * time.Millisecond

// Cue owns the speaker and mixes bump sounds into it
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	last        time.Time
	now         func() time.Time
	played      int
}

// NewCue creates an uninitialized cue
func NewCue() *Cue {
	return &Cue{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Init opens the speaker; a failure leaves the cue silent
func (c *Cue) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Bump queues one bump sound and reports whether it was queued
func (c *Cue) Bump() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return false
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < Cooldown {
		return false
	}

	s, err := NewBumpSound(sampleRate)
	if err != nil {
		return false
	}
	c.last = now
	c.played++
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Played returns how many bumps have been queued
func (c *Cue) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Close silences the mixer and releases the speaker
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
