package wander

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// OverlayState is the position of the overlay in its open/close cycle.
type OverlayState uint8

const (
	OverlayClosed OverlayState = iota
	OverlayOpening
	OverlayOpen
	OverlayClosing
)

func (s OverlayState) String() string {
	switch s {
	case OverlayClosed:
		return "closed"
	case OverlayOpening:
		return "opening"
	case OverlayOpen:
		return "open"
	case OverlayClosing:
		return "closing"
	}
	return "unknown"
}

// Animation trigger names sent to the binder when the overlay starts moving.
const (
	OverlayTriggerOpen  = "open"
	OverlayTriggerClose = "close"
)

// OverlayConfig controls the overlay's open and close animation. Alpha and
// scale run on independent timers.
type OverlayConfig struct {
	FadeIn, ZoomIn   float32 // open: alpha 0→1, scale ZoomFrom→1
	FadeOut, ZoomOut float32 // close: alpha →0, scale →CloseScale
	ZoomFrom         float64
	CloseScale       float64
	CloseDelay       float32 // extra wait after the close animation before deactivating
	StartOpen        bool
	Ease             ease.TweenFunc
}

// DefaultOverlayConfig returns the stock overlay timings.
func DefaultOverlayConfig() OverlayConfig {
	return OverlayConfig{
		FadeIn:     0.25,
		ZoomIn:     0.3,
		FadeOut:    0.2,
		ZoomOut:    0.2,
		ZoomFrom:   0.92,
		CloseScale: 0.98,
		Ease:       ease.OutQuad,
	}
}

// Overlay is the secondary "mask" layer: a root container holding a
// background sprite and one mask sprite picked by index from the committed
// asset set. Its content follows the active navigation node; its visibility
// follows TurnOn / TurnOff.
//
// All methods work with a nil root: state still changes, nothing animates.
type Overlay struct {
	root       *Node
	background *Node
	mask       *Node
	binder     Binder
	cfg        OverlayConfig
	log        *zap.Logger
	events     *handlerRegistry

	state OverlayState
	anim  *TweenGroup
	delay float32

	set            *AssetSet
	fallback       bool
	fallbackSprite Sprite
	maskIndex      int
}

// NewOverlay creates an overlay over root with the given background and mask
// sprite nodes. Any of the nodes may be nil.
func NewOverlay(root, background, mask *Node, binder Binder, cfg OverlayConfig) *Overlay {
	if binder == nil {
		binder = NodeBinder{}
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	o := &Overlay{
		root:       root,
		background: background,
		mask:       mask,
		binder:     binder,
		cfg:        cfg,
		log:        zap.NewNop(),
		maskIndex:  -1,
	}
	if cfg.StartOpen {
		o.state = OverlayOpen
		binder.SetActive(root, true)
		binder.SetAlpha(root, 1)
		binder.SetScale(root, 1)
	} else {
		binder.SetActive(root, false)
	}
	return o
}

// Root returns the overlay's root node, or nil.
func (o *Overlay) Root() *Node { return o.root }

// State returns the current animation state.
func (o *Overlay) State() OverlayState { return o.state }

// IsOpen reports whether the overlay is opening or open.
func (o *Overlay) IsOpen() bool {
	return o.state == OverlayOpening || o.state == OverlayOpen
}

// TurnOn opens the overlay. A running animation, open or close, is cancelled
// and the open animation restarts from alpha 0 and the zoom-from scale.
func (o *Overlay) TurnOn() {
	o.cancelAnim()
	o.setState(OverlayOpening, EventOverlayOpen)
	if o.root == nil {
		o.state = OverlayOpen
		o.apply()
		return
	}
	o.binder.SetActive(o.root, true)
	o.binder.PlayAnimationTrigger(o.root, OverlayTriggerOpen)
	o.anim = NewTweenGroup(
		NewTween(0, 1, o.cfg.FadeIn, o.cfg.Ease, func(v float64) { o.binder.SetAlpha(o.root, v) }),
		NewTween(o.cfg.ZoomFrom, 1, o.cfg.ZoomIn, o.cfg.Ease, func(v float64) { o.binder.SetScale(o.root, v) }),
	)
	o.apply()
	o.Update(0)
}

// TurnOff closes the overlay, animating from whatever alpha and scale the
// root currently has. No-op when already closing or closed.
func (o *Overlay) TurnOff() {
	if o.state == OverlayClosed || o.state == OverlayClosing {
		return
	}
	o.cancelAnim()
	o.setState(OverlayClosing, EventOverlayClose)
	if o.root == nil {
		o.state = OverlayClosed
		return
	}
	o.binder.PlayAnimationTrigger(o.root, OverlayTriggerClose)
	o.anim = NewTweenGroup(
		TweenAlpha(o.binder, o.root, 0, o.cfg.FadeOut, o.cfg.Ease),
		TweenScale(o.binder, o.root, o.cfg.CloseScale, o.cfg.ZoomOut, o.cfg.Ease),
	)
	o.delay = o.cfg.CloseDelay
	o.Update(0)
}

// Toggle closes an open or opening overlay and opens a closed or closing one.
func (o *Overlay) Toggle() {
	if o.IsOpen() {
		o.TurnOff()
		return
	}
	o.TurnOn()
}

// Update advances the running animation, and the close delay after it, by
// dt seconds of unscaled frame time.
func (o *Overlay) Update(dt float32) {
	switch o.state {
	case OverlayOpening:
		o.anim.Update(dt)
		if o.anim.Done {
			o.anim = nil
			o.state = OverlayOpen
		}
	case OverlayClosing:
		if o.anim != nil {
			o.anim.Update(dt)
			if !o.anim.Done {
				return
			}
			o.anim = nil
			dt = 0
		}
		o.delay -= dt
		if o.delay > 0 {
			return
		}
		o.binder.SetActive(o.root, false)
		o.state = OverlayClosed
	}
}

func (o *Overlay) cancelAnim() {
	if o.anim != nil {
		o.anim.Cancel()
		o.anim = nil
	}
	o.delay = 0
}

// setState moves to s before announcing t, so handlers observe the new state.
func (o *Overlay) setState(s OverlayState, t EventType) {
	o.state = s
	o.log.Debug("overlay", zap.Stringer("state", s))
	o.events.emit(Event{Type: t})
}

// --- Content ---

// Commit makes set the overlay content and remembers maskIndex as the
// requested mask. An empty set is ignored.
func (o *Overlay) Commit(set *AssetSet, maskIndex int) {
	if set.IsEmpty() {
		return
	}
	o.set = set
	o.fallback = false
	o.maskIndex = maskIndex
	o.apply()
}

// CommitFallback shows sprite as both background and mask and records that
// no asset set is active.
func (o *Overlay) CommitFallback(sprite Sprite) {
	o.fallback = true
	o.fallbackSprite = sprite
	o.apply()
}

// RequestMask selects which mask of the committed set to show.
func (o *Overlay) RequestMask(index int) {
	o.maskIndex = index
	o.apply()
}

// Assets returns the committed asset set. ok is false while the fallback is
// shown or before anything was committed.
func (o *Overlay) Assets() (set *AssetSet, ok bool) {
	if o.fallback || o.set == nil {
		return nil, false
	}
	return o.set, true
}

// FallbackActive reports whether the fallback sprite is being shown.
func (o *Overlay) FallbackActive() bool { return o.fallback }

// RequestedMask returns the last requested mask index, -1 for none.
func (o *Overlay) RequestedMask() int { return o.maskIndex }

// MaskIndex returns the mask index actually shown, or -1.
func (o *Overlay) MaskIndex() int {
	if o.fallback {
		return -1
	}
	return o.set.MaskIndex(o.maskIndex)
}

// MaskImage returns the sprite currently chosen for the mask slot.
func (o *Overlay) MaskImage() Sprite {
	if o.fallback {
		return o.fallbackSprite
	}
	m, _ := o.set.Mask(o.maskIndex)
	return m
}

// MaskAudio returns the clip aligned with the shown mask, if any.
func (o *Overlay) MaskAudio() AudioClip {
	if o.fallback {
		return AudioClip{}
	}
	return o.set.Audio(o.maskIndex)
}

func (o *Overlay) apply() {
	if o.fallback {
		o.binder.SetSprite(o.background, o.fallbackSprite)
		o.binder.SetSprite(o.mask, o.fallbackSprite)
		o.events.emit(Event{Type: EventMaskChanged, MaskIndex: -1, Mask: o.fallbackSprite, Fallback: true})
		return
	}
	if o.set == nil {
		return
	}
	o.binder.SetSprite(o.background, o.set.Background)
	m, ok := o.set.Mask(o.maskIndex)
	if ok {
		o.binder.SetSprite(o.mask, m)
	}
	o.events.emit(Event{
		Type:      EventMaskChanged,
		MaskIndex: o.set.MaskIndex(o.maskIndex),
		Mask:      m,
		Audio:     o.set.Audio(o.maskIndex),
	})
}

// SetLogger replaces the overlay's logger. Nil restores the no-op logger.
func (o *Overlay) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	o.log = l
}
