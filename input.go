package wander

import "github.com/hajimehoshi/ebiten/v2"

// PointerContext carries pointer enter/leave data.
type PointerContext struct {
	Node   *Node
	X, Y   float64 // stage coordinates
	Button MouseButton
}

// ClickContext carries click event data.
type ClickContext struct {
	Node   *Node
	X, Y   float64 // stage coordinates
	Button MouseButton
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

type pointerState struct {
	down      bool
	hitNode   *Node
	hoverNode *Node
	button    MouseButton
}

// nodeContainsLocal tests a point in n's local space against its hit shape,
// or against its Width×Height box when it has none.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// hitTest returns the topmost visible, interactable node under (x, y).
// Later siblings are on top of earlier ones.
func (s *Stage) hitTest(x, y float64) *Node {
	return hitTestNode(s.root, x, y, 0, 0, 1, 1)
}

func hitTestNode(n *Node, x, y, px, py, psx, psy float64) *Node {
	if !n.Visible || n.disposed {
		return nil
	}
	wx, wy := px+n.X*psx, py+n.Y*psy
	sx, sy := psx*n.ScaleX, psy*n.ScaleY
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTestNode(n.children[i], x, y, wx, wy, sx, sy); hit != nil {
			return hit
		}
	}
	if !n.Interactable || sx == 0 || sy == 0 {
		return nil
	}
	if nodeContainsLocal(n, (x-wx)/sx, (y-wy)/sy) {
		return n
	}
	return nil
}

// processMouse feeds the real left mouse button through processPointer.
func (s *Stage) processMouse() {
	cx, cy := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(cx), float64(cy), pressed, MouseButtonLeft)
}

// processPointer updates hover state and fires a click when a press and the
// following release land on the same node.
func (s *Stage) processPointer(x, y float64, pressed bool, button MouseButton) {
	p := &s.pointer
	hit := s.hitTest(x, y)

	if hit != p.hoverNode {
		if old := p.hoverNode; old != nil && old.OnPointerLeave != nil {
			old.OnPointerLeave(PointerContext{Node: old, X: x, Y: y, Button: button})
		}
		if hit != nil && hit.OnPointerEnter != nil {
			hit.OnPointerEnter(PointerContext{Node: hit, X: x, Y: y, Button: button})
		}
		p.hoverNode = hit
	}

	switch {
	case pressed && !p.down:
		p.down = true
		p.hitNode = hit
		p.button = button
	case !pressed && p.down:
		p.down = false
		target := p.hitNode
		p.hitNode = nil
		if target != nil && target == hit && target.OnClick != nil {
			target.OnClick(ClickContext{Node: target, X: x, Y: y, Button: p.button})
		}
	}
}
