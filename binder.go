package wander

// Binder is the visual boundary of the core. Navigation, the transition
// coordinator and the overlay never touch node fields directly; every visual
// change goes through a Binder so a host can mirror it into its own renderer.
//
// Every method must tolerate a nil node.
type Binder interface {
	SetActive(n *Node, active bool)
	SetAlpha(n *Node, alpha float64)
	SetScale(n *Node, scale float64)
	SetSprite(n *Node, sprite Sprite)
	PlayAnimationTrigger(n *Node, name string)
}

// NodeBinder is the default Binder. It writes straight into Node fields and
// enables or disables nested navigation graphs as their owning nodes enter
// or leave the active hierarchy, mirroring how a container's children wake
// up with it.
type NodeBinder struct{}

// SetActive sets n.Visible. When that changes whether n's subtree is active
// in the hierarchy, every nested graph in the subtree is enabled or disabled
// to match, parents before children.
func (NodeBinder) SetActive(n *Node, active bool) {
	if n == nil || n.disposed || n.Visible == active {
		return
	}
	n.Visible = active
	if n.Parent != nil && !n.Parent.ActiveInHierarchy() {
		return // subtree was and stays inactive
	}
	syncNestedGraphs(n, active)
}

// syncNestedGraphs brings the graphs owned under n in line with the
// subtree's new activation. Hidden branches stay disabled on activation.
func syncNestedGraphs(n *Node, active bool) {
	if n.disposed || (active && !n.Visible) {
		return
	}
	if g := n.Graph; g != nil && g.enabled != active {
		if active {
			g.Enable()
		} else {
			g.Disable()
		}
	}
	for _, c := range n.children {
		syncNestedGraphs(c, active)
	}
}

// SetAlpha sets n.Alpha, clamped to [0, 1].
func (NodeBinder) SetAlpha(n *Node, alpha float64) {
	if n == nil {
		return
	}
	n.Alpha = clamp01(alpha)
}

// SetScale sets both scale axes of n.
func (NodeBinder) SetScale(n *Node, scale float64) {
	if n == nil {
		return
	}
	n.ScaleX = scale
	n.ScaleY = scale
}

// SetSprite sets n.Sprite.
func (NodeBinder) SetSprite(n *Node, sprite Sprite) {
	if n == nil {
		return
	}
	n.Sprite = sprite
}

// PlayAnimationTrigger forwards name to n.OnAnimationTrigger.
func (NodeBinder) PlayAnimationTrigger(n *Node, name string) {
	if n == nil || n.OnAnimationTrigger == nil {
		return
	}
	n.OnAnimationTrigger(name)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
