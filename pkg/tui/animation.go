package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/flipcal/pkg/face"
)

// frameMsg advances the running flip by one frame. seq ties the message to
// the rotation that scheduled it.
type frameMsg struct{ seq int }

// animator drives flips as a series of ticks. It implements flip.Animator;
// Rotate only records the request and the model turns it into a tick.
type animator struct {
	frames int
	delay  time.Duration

	seq     int
	frame   int
	to      face.Face
	dir     int
	active  bool
	started bool
}

func newAnimator(frames int, delay time.Duration) *animator {
	if frames < 1 {
		frames = 1
	}
	if delay < 0 {
		delay = 0
	}
	return &animator{frames: frames, delay: delay}
}

// Rotate implements flip.Animator.
func (a *animator) Rotate(to face.Face, dir int) {
	a.seq++
	a.frame = 0
	a.to = to
	a.dir = dir
	a.active = true
	a.started = true
}

// start returns the first tick of a rotation requested since the last call.
func (a *animator) start() tea.Cmd {
	if !a.started {
		return nil
	}
	a.started = false
	return a.tick()
}

func (a *animator) tick() tea.Cmd {
	seq := a.seq
	return tea.Tick(a.delay, func(time.Time) tea.Msg { return frameMsg{seq: seq} })
}

// advance consumes msg and reports whether the rotation just finished.
// Stale frames are ignored.
func (a *animator) advance(msg frameMsg) (next tea.Cmd, done bool) {
	if !a.active || msg.seq != a.seq {
		return nil, false
	}
	a.frame++
	if a.frame < a.frames {
		return a.tick(), false
	}
	a.active = false
	return nil, true
}

// progress is the fraction of the running rotation already shown.
func (a *animator) progress() float64 {
	if !a.active {
		return 0
	}
	return float64(a.frame) / float64(a.frames)
}
