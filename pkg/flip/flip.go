// Package flip sequences month changes as card flips between two faces.
//
// A flip pre-renders the target month on the hidden face, asks the Animator
// to rotate toward it and waits for Complete. Further flips wait in a queue
// that is drained one step per completion, so flips never overlap.
package flip

import (
	"go.uber.org/zap"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/face"
)

// MaxJumpSteps bounds the number of flips a single jump animates. Jumps
// further than this land short of their target.
const MaxJumpSteps = 24

// State is the controller's animation state.
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Renderer draws months into faces. *face.Board implements it.
type Renderer interface {
	RenderFace(f face.Face, month calendar.Month)
	UpdateTitle(month calendar.Month)
	SelectToday(f face.Face) bool
}

// Animator shows the rotation toward face to. dir is the month step, +1 or
// -1. The animation layer must call Controller.Complete when it is done.
type Animator interface {
	Rotate(to face.Face, dir int)
}

// Controller owns the visible face, the committed month and the step queue.
type Controller struct {
	current face.Face
	view    calendar.Month
	state   State
	target  calendar.Month
	inDir   int
	queue   []int
	flips   int

	// landToday selects today's cell once the queue lands on todayMonth.
	landToday  bool
	todayMonth calendar.Month

	r   Renderer
	a   Animator
	log *zap.Logger
}

// New returns an idle controller showing view on the front face.
func New(view calendar.Month, r Renderer, a Animator, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{current: face.Front, view: view, r: r, a: a, log: log}
}

// Init renders view on the front face and the following month on the back
// face so the first flip has something to reveal.
func (c *Controller) Init() {
	c.r.RenderFace(c.current, c.view)
	c.r.RenderFace(c.current.Other(), c.view.Add(1))
	c.r.UpdateTitle(c.view)
}

// View returns the committed month.
func (c *Controller) View() calendar.Month { return c.view }

// Current returns the visible face.
func (c *Controller) Current() face.Face { return c.current }

// State returns Idle or Animating.
func (c *Controller) State() State { return c.state }

// Pending returns the number of queued steps not yet started.
func (c *Controller) Pending() int { return len(c.queue) }

// Flips returns the number of completed flips.
func (c *Controller) Flips() int { return c.flips }

// Projected returns the month the view lands on once the in-flight flip and
// every queued step complete.
func (c *Controller) Projected() calendar.Month {
	delta := 0
	if c.state == Animating {
		delta += c.inDir
	}
	for _, d := range c.queue {
		delta += d
	}
	return c.view.Add(delta)
}

// QueueFlip adds a one month step in direction dir. It starts at once when
// idle, otherwise after the flips ahead of it.
func (c *Controller) QueueFlip(dir int) {
	switch {
	case dir > 0:
		dir = 1
	case dir < 0:
		dir = -1
	default:
		return
	}
	c.queue = append(c.queue, dir)
	if c.state == Idle {
		c.startNext()
	}
}

func (c *Controller) startNext() {
	if len(c.queue) == 0 {
		return
	}
	dir := c.queue[0]
	c.queue = c.queue[1:]

	c.inDir = dir
	c.target = c.view.Add(dir)
	hidden := c.current.Other()
	c.r.RenderFace(hidden, c.target)
	c.state = Animating
	c.log.Debug("flip: start",
		zap.Stringer("from", c.view),
		zap.Stringer("to", c.target),
		zap.Int("queued", len(c.queue)))
	c.a.Rotate(hidden, dir)
}

// Complete is the animation-finished signal. It commits the target month,
// re-renders the now visible face and starts the next queued step. It
// reports false when no flip was in flight.
func (c *Controller) Complete() bool {
	if c.state != Animating {
		return false
	}
	c.current = c.current.Other()
	c.view = c.target
	c.state = Idle
	c.inDir = 0
	c.flips++
	c.r.UpdateTitle(c.view)
	// Notes may have changed on the stale pre-render during the animation.
	c.r.RenderFace(c.current, c.view)
	if len(c.queue) == 0 && c.landToday {
		c.landToday = false
		if c.view == c.todayMonth {
			c.r.SelectToday(c.current)
		}
	}
	c.startNext()
	return true
}

// JumpTo queues the flips needed to reach target in one direction, capped at
// MaxJumpSteps, and returns how many were queued.
func (c *Controller) JumpTo(target calendar.Month) int {
	delta := calendar.MonthsBetween(c.Projected(), target)
	if delta == 0 {
		return 0
	}
	dir, steps := 1, delta
	if delta < 0 {
		dir, steps = -1, -delta
	}
	if steps > MaxJumpSteps {
		steps = MaxJumpSteps
	}
	c.log.Info("flip: jump",
		zap.Stringer("target", target),
		zap.Int("delta", delta),
		zap.Int("steps", steps))
	for i := 0; i < steps; i++ {
		c.queue = append(c.queue, dir)
	}
	if c.state == Idle {
		c.startNext()
	}
	return steps
}

// Today jumps to the month containing now. When that month is already
// showing and nothing is moving, today's cell is selected instead and
// Today reports false. When flips already in flight end on that month,
// nothing more is queued and today is selected as they land.
func (c *Controller) Today(today calendar.Day) bool {
	month := today.InMonth()
	moving := c.state == Animating || len(c.queue) > 0
	if !moving && c.view == month {
		c.r.SelectToday(c.current)
		return false
	}
	if moving && c.Projected() == month {
		c.landToday = true
		c.todayMonth = month
		return true
	}
	return c.JumpTo(month) > 0
}
