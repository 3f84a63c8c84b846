package wander

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// nodeIDCounter is a plain counter; wander is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a switchable visual container: a room, a trigger button, the fade
// cover or a layer of the overlay. A single flat struct is used for all of
// them; identity is the pointer.
//
// Visible is the node's activation state. A node is active in the hierarchy
// only when it and every ancestor are visible.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Only translation and uniform-per-axis scale are
	// supported; there is no rotation.
	X, Y          float64
	ScaleX        float64
	ScaleY        float64
	Width, Height float64

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Visual content. A non-zero Sprite is drawn stretched to Width×Height;
	// Fill paints a solid rectangle when Sprite has no image.
	Sprite Sprite
	Fill   *Color

	// Navigation. Graph is the nested navigation graph this node owns, if
	// any. RequiredRiddle gates entry until the riddle is solved; LockedHint
	// is reported to listeners when entry is refused.
	Graph          *Graph
	RequiredRiddle string
	LockedHint     string

	// Hit testing; nil means the Width×Height rectangle.
	HitShape HitShape

	// Metadata
	UserData any

	// Per-node callbacks (nil by default)
	OnClick            func(ClickContext)
	OnPointerEnter     func(PointerContext)
	OnPointerLeave     func(PointerContext)
	OnUpdate           func(dt float64)
	OnAnimationTrigger func(name string)

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Visible = true
}

// NewContainer creates a node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewSprite creates a node that draws sprite over a w×h rectangle.
func NewSprite(name string, sprite Sprite, w, h float64) *Node {
	n := &Node{Name: name, Sprite: sprite, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewButton creates an interactable w×h node. Buttons are the trigger
// handles of navigation graphs and puzzles.
func NewButton(name string, w, h float64) *Node {
	n := &Node{Name: name, Width: w, Height: h, Interactable: true}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("wander: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("wander: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("wander: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Find returns the first descendant (depth-first, including n) with the
// given name, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// ActiveInHierarchy reports whether n and all of its ancestors are visible.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible || p.disposed {
			return false
		}
	}
	return true
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.Graph = nil
	n.UserData = nil
	n.OnClick = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
	n.OnUpdate = nil
	n.OnAnimationTrigger = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// worldTransform returns the node's world translation, scale and alpha.
func (n *Node) worldTransform() (x, y, sx, sy, alpha float64) {
	if n.Parent == nil {
		return n.X, n.Y, n.ScaleX, n.ScaleY, n.Alpha
	}
	px, py, psx, psy, pa := n.Parent.worldTransform()
	return px + n.X*psx, py + n.Y*psy, psx * n.ScaleX, psy * n.ScaleY, pa * n.Alpha
}
