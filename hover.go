package wander

// HoverAlpha fades a button's own alpha between two levels as the pointer
// enters and leaves it. Values are clamped to [0, 1].
type HoverAlpha struct {
	On, Off float64
}

// DefaultHoverAlpha shows buttons only while hovered. Layout hover levels
// left unset take their value from it.
var DefaultHoverAlpha = HoverAlpha{On: 1, Off: 0}

// attach sets btn to the Off level and installs enter/leave handlers.
// A nil receiver leaves btn untouched.
func (h *HoverAlpha) attach(b Binder, btn *Node) {
	if h == nil || btn == nil {
		return
	}
	on, off := clamp01(h.On), clamp01(h.Off)
	b.SetAlpha(btn, off)
	btn.OnPointerEnter = func(PointerContext) { b.SetAlpha(btn, on) }
	btn.OnPointerLeave = func(PointerContext) { b.SetAlpha(btn, off) }
}
