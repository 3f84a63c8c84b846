package wander

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// DefaultFadeDuration is the length of each half of a transition, in seconds.
const DefaultFadeDuration float32 = 0.35

type fadePhase uint8

const (
	fadeIdle fadePhase = iota
	fadeToCover
	fadeFromCover
)

// Coordinator serializes every navigation change behind a fade to an opaque
// full-screen cover and back. At most one transition is in flight per
// coordinator; requests made meanwhile are dropped, not queued.
//
// The coordinator also tracks which navigation graph is active so the back
// control can be shown only when that graph can go back.
type Coordinator struct {
	cover    *Node
	binder   Binder
	duration float32
	log      *zap.Logger

	phase   fadePhase
	tween   *Tween
	pending func()

	activeGraph *Graph
	backButton  *Node
}

// NewCoordinator creates a coordinator fading cover through binder. A nil
// cover makes every transition an immediate, synchronous apply.
func NewCoordinator(cover *Node, binder Binder, duration float32) *Coordinator {
	if binder == nil {
		binder = NodeBinder{}
	}
	c := &Coordinator{
		cover:    cover,
		binder:   binder,
		duration: duration,
		log:      zap.NewNop(),
	}
	if cover != nil {
		binder.SetAlpha(cover, 0)
		binder.SetActive(cover, false)
		cover.Interactable = false
	}
	return c
}

// Fading reports whether a transition is in flight.
func (c *Coordinator) Fading() bool {
	return c.phase != fadeIdle
}

// Duration returns the length of each half of a transition.
func (c *Coordinator) Duration() float32 {
	return c.duration
}

// SetDuration changes the fade length for transitions started afterwards.
func (c *Coordinator) SetDuration(d float32) {
	c.duration = d
}

// Cover returns the full-screen cover node, or nil.
func (c *Coordinator) Cover() *Node {
	return c.cover
}

// RunGated runs apply hidden behind the cover. It returns false, without
// calling apply, when another transition is still in flight.
//
// With no cover apply runs at once. With a non-positive duration the whole
// fade cycle, apply included, completes before RunGated returns. Otherwise
// apply runs from a later Update call, at full cover opacity.
func (c *Coordinator) RunGated(apply func()) bool {
	if c.phase != fadeIdle {
		c.log.Debug("transition dropped: fade in flight")
		return false
	}
	if c.cover == nil {
		c.runApply(apply)
		return true
	}

	c.phase = fadeToCover
	c.pending = apply
	c.binder.SetActive(c.cover, true)
	c.binder.SetAlpha(c.cover, 0)
	c.cover.Interactable = true // swallow clicks meant for triggers underneath
	c.tween = NewTween(0, 1, c.duration, ease.Linear, func(v float64) { c.binder.SetAlpha(c.cover, v) })
	c.tween.Start()
	if c.duration <= 0 {
		c.Update(0)
	}
	return true
}

// Update advances the in-flight fade by dt seconds of unscaled frame time.
func (c *Coordinator) Update(dt float32) {
	for c.phase != fadeIdle {
		if !c.tween.Update(dt) {
			return
		}
		dt = 0
		switch c.phase {
		case fadeToCover:
			apply := c.pending
			c.pending = nil
			c.runApply(apply)
			c.phase = fadeFromCover
			c.tween = NewTween(1, 0, c.duration, ease.Linear, func(v float64) { c.binder.SetAlpha(c.cover, v) })
			c.tween.Start()
			if c.duration > 0 {
				return
			}
		case fadeFromCover:
			c.cover.Interactable = false
			c.binder.SetActive(c.cover, false)
			c.phase = fadeIdle
			c.tween = nil
		}
	}
}

func (c *Coordinator) runApply(apply func()) {
	if apply != nil {
		apply()
	}
	c.RefreshBackButton()
}

// --- Active graph & back control ---

// SetActiveGraph makes g the graph the back control talks to.
func (c *Coordinator) SetActiveGraph(g *Graph) {
	c.activeGraph = g
	c.RefreshBackButton()
}

// ClearActiveGraph forgets g if it is the active graph.
func (c *Coordinator) ClearActiveGraph(g *Graph) {
	if c.activeGraph == g {
		c.activeGraph = nil
	}
	c.RefreshBackButton()
}

// ActiveGraph returns the graph the back control talks to, or nil.
func (c *Coordinator) ActiveGraph() *Graph {
	return c.activeGraph
}

// SetBackButton installs btn as the back control. Its OnClick is replaced
// with GoBack.
func (c *Coordinator) SetBackButton(btn *Node) {
	c.backButton = btn
	if btn != nil {
		btn.OnClick = func(ClickContext) { c.GoBack() }
	}
	c.RefreshBackButton()
}

// BackButton returns the back control, or nil.
func (c *Coordinator) BackButton() *Node {
	return c.backButton
}

// RefreshBackButton shows the back control iff the active graph can go back.
func (c *Coordinator) RefreshBackButton() {
	if c.backButton == nil {
		return
	}
	show := c.activeGraph != nil && c.activeGraph.CanGoBack()
	c.binder.SetActive(c.backButton, show)
}

// GoBack asks the active graph to navigate back.
func (c *Coordinator) GoBack() {
	if c.activeGraph == nil {
		return
	}
	c.activeGraph.GoBack()
	c.RefreshBackButton()
}

// SetLogger replaces the coordinator's logger. Nil restores the no-op logger.
func (c *Coordinator) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.log = l
}
