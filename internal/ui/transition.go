package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	transitionFPS       = 60
	transitionFrequency = 9.0 // angular frequency; higher settles faster
	transitionDamping   = 1.0 // critically damped, no overshoot
	settleEpsilon       = 0.005
	// dialogRise is how many rows the dialog sits below centre when fully hidden.
	dialogRise = 2
)

// Transition drives a progress value between 0 (hidden) and 1 (shown) with
// a spring. It is cosmetic: visibility never waits on it.
type Transition struct {
	enabled  bool
	spring   harmonica.Spring
	pos      float64
	vel      float64
	target   float64
	id       int
	animated bool
}

// NewTransition creates a transition at rest at 0. When enabled is false
// every change snaps immediately and no frames are scheduled.
func NewTransition(enabled bool) *Transition {
	return &Transition{
		enabled: enabled,
		spring:  harmonica.NewSpring(harmonica.FPS(transitionFPS), transitionFrequency, transitionDamping),
	}
}

// To retargets the transition and returns the first frame command, if any.
// Each call starts a new run; frames from earlier runs become stale.
func (t *Transition) To(target float64) tea.Cmd {
	t.target = target
	t.id++
	if !t.enabled {
		t.pos, t.vel, t.animated = target, 0, false
		return nil
	}
	t.animated = true
	return t.tick()
}

// Step advances one frame. Stale frames and frames after settling are ignored.
func (t *Transition) Step(msg frameMsg) tea.Cmd {
	if msg.id != t.id || !t.animated {
		return nil
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	if math.Abs(t.pos-t.target) < settleEpsilon && math.Abs(t.vel) < settleEpsilon {
		t.pos, t.vel, t.animated = t.target, 0, false
		return nil
	}
	return t.tick()
}

func (t *Transition) tick() tea.Cmd {
	id := t.id
	return tea.Tick(time.Second/transitionFPS, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

// Progress returns the current value clamped to [0, 1].
func (t *Transition) Progress() float64 {
	return math.Min(1, math.Max(0, t.pos))
}

// Animating reports whether frames are still being scheduled.
func (t *Transition) Animating() bool {
	return t.animated
}

// Rise returns how many rows below centre the dialog should be drawn.
func (t *Transition) Rise() int {
	return int(math.Round((1 - t.Progress()) * dialogRise))
}
