package wander

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween drives one float64 value over time. The host advances it with
// Update(dt) once per frame; there is no global animation manager.
//
// A zero or negative duration snaps to the end value on the first Update.
type Tween struct {
	From, To float64
	Duration float32
	Ease     ease.TweenFunc

	apply   func(float64)
	tw      *gween.Tween
	value   float64
	running bool
}

// NewTween creates a stopped tween that writes every computed value to apply.
// A nil fn means ease.Linear.
func NewTween(from, to float64, duration float32, fn ease.TweenFunc, apply func(float64)) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{From: from, To: to, Duration: duration, Ease: fn, apply: apply, value: from}
}

// Start (re)starts the tween from From and applies the start value.
func (t *Tween) Start() {
	t.tw = nil
	if t.Duration > 0 {
		t.tw = gween.New(float32(t.From), float32(t.To), t.Duration, t.Ease)
	}
	t.running = true
	t.set(t.From)
}

// Cancel stops the tween where it is. The last applied value stays.
func (t *Tween) Cancel() {
	t.running = false
}

// Running reports whether the tween has been started and not yet finished
// or cancelled.
func (t *Tween) Running() bool {
	return t.running
}

// Value returns the last applied value.
func (t *Tween) Value() float64 {
	return t.value
}

// Update advances the tween by dt seconds and reports whether it is done.
// Negative dt is treated as zero.
func (t *Tween) Update(dt float32) bool {
	if !t.running {
		return true
	}
	if dt < 0 {
		dt = 0
	}
	if t.tw == nil {
		t.set(t.To)
		t.running = false
		return true
	}
	val, finished := t.tw.Update(dt)
	if finished {
		t.set(t.To)
		t.running = false
		return true
	}
	t.set(float64(val))
	return false
}

func (t *Tween) set(v float64) {
	t.value = v
	if t.apply != nil {
		t.apply(v)
	}
}

// TweenGroup runs several tweens in one update loop, each on its own timer.
// Done becomes true once every member has finished.
type TweenGroup struct {
	tweens []*Tween
	Done   bool
}

// NewTweenGroup starts all tweens and returns the group driving them.
func NewTweenGroup(tweens ...*Tween) *TweenGroup {
	g := &TweenGroup{tweens: tweens}
	for _, tw := range tweens {
		tw.Start()
	}
	g.Done = len(tweens) == 0
	return g
}

// Update advances every unfinished tween by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for _, tw := range g.tweens {
		if !tw.Update(dt) {
			allDone = false
		}
	}
	g.Done = allDone
}

// Cancel stops every member tween and marks the group done.
func (g *TweenGroup) Cancel() {
	for _, tw := range g.tweens {
		tw.Cancel()
	}
	g.Done = true
}

// TweenAlpha creates a stopped tween that fades node from its current alpha
// to the target value through binder.
func TweenAlpha(b Binder, node *Node, to float64, duration float32, fn ease.TweenFunc) *Tween {
	from := 1.0
	if node != nil {
		from = node.Alpha
	}
	return NewTween(from, to, duration, fn, func(v float64) { b.SetAlpha(node, v) })
}

// TweenScale creates a stopped tween that scales node uniformly from its
// current X scale to the target value through binder.
func TweenScale(b Binder, node *Node, to float64, duration float32, fn ease.TweenFunc) *Tween {
	from := 1.0
	if node != nil {
		from = node.ScaleX
	}
	return NewTween(from, to, duration, fn, func(v float64) { b.SetScale(node, v) })
}
