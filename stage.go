package wander

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// StageConfig configures a Stage. Start from DefaultStageConfig.
type StageConfig struct {
	Width, Height float64

	// FadeDuration is the length of each half of a transition. Zero makes
	// transitions complete synchronously.
	FadeDuration float32
	// DisableFade builds the stage without a transition cover; every
	// navigation change then applies immediately.
	DisableFade bool
	// CoverColor fills the transition cover.
	CoverColor Color

	// Overlay configures the overlay layer; nil builds no overlay.
	Overlay *OverlayConfig

	Binder Binder
	Logger *zap.Logger
}

// DefaultStageConfig returns a 1280×720 stage with the default fade and
// overlay timings.
func DefaultStageConfig() StageConfig {
	ov := DefaultOverlayConfig()
	return StageConfig{
		Width:        1280,
		Height:       720,
		FadeDuration: DefaultFadeDuration,
		CoverColor:   ColorBlack,
		Overlay:      &ov,
	}
}

// Stage is the top-level object: it owns the node tree, the service
// registry (coordinator, overlay, ledger, events) and the navigation graphs,
// and drives them all from one update loop.
//
// The tree under Root is, bottom to top: Content (rooms), the overlay root,
// UI (back button and other controls) and the transition cover.
type Stage struct {
	ClearColor Color

	cfg     StageConfig
	root    *Node
	content *Node
	ui      *Node
	svc     *Services
	graphs  []*Graph
	menus   []*Menu
	debug   bool

	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	updateFunc  func() error
}

// NewStage builds a stage and its services from cfg.
func NewStage(cfg StageConfig) *Stage {
	svc := NewServices()
	if cfg.Binder != nil {
		svc.Binder = cfg.Binder
	}
	if cfg.Logger != nil {
		svc.Logger = cfg.Logger
	}

	s := &Stage{cfg: cfg, svc: svc}
	s.root = NewContainer("root")
	s.content = NewContainer("content")
	s.root.AddChild(s.content)

	if cfg.Overlay != nil {
		ovRoot := NewContainer("overlay")
		bg := NewSprite("overlay_background", Sprite{}, cfg.Width, cfg.Height)
		mask := NewSprite("overlay_mask", Sprite{}, cfg.Width, cfg.Height)
		ovRoot.AddChild(bg)
		ovRoot.AddChild(mask)
		s.root.AddChild(ovRoot)
		svc.SetOverlay(NewOverlay(ovRoot, bg, mask, svc.binder(), *cfg.Overlay))
	}

	s.ui = NewContainer("ui")
	s.root.AddChild(s.ui)

	var cover *Node
	if !cfg.DisableFade {
		cover = NewContainer("fade_cover")
		cover.Width, cover.Height = cfg.Width, cfg.Height
		fill := cfg.CoverColor
		if fill == (Color{}) {
			fill = ColorBlack
		}
		cover.Fill = &fill
		s.root.AddChild(cover)
	}
	svc.SetCoordinator(NewCoordinator(cover, svc.binder(), cfg.FadeDuration))
	return s
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node { return s.root }

// Content returns the container rooms are added to.
func (s *Stage) Content() *Node { return s.content }

// UI returns the container drawn above the overlay and below the cover.
func (s *Stage) UI() *Node { return s.ui }

// Services returns the stage's service registry.
func (s *Stage) Services() *Services { return s.svc }

// Coordinator returns the transition coordinator.
func (s *Stage) Coordinator() *Coordinator { return s.svc.Coordinator }

// Overlay returns the overlay, or nil when the stage was built without one.
func (s *Stage) Overlay() *Overlay { return s.svc.Overlay }

// Ledger returns the riddle ledger, creating it on first use.
func (s *Stage) Ledger() *RiddleLedger { return s.svc.Ledger() }

// Graphs returns every graph created through NewGraph, in creation order.
// The returned slice MUST NOT be mutated.
func (s *Stage) Graphs() []*Graph { return s.graphs }

// Graph returns the graph with the given name, or nil.
func (s *Stage) Graph(name string) *Graph {
	for _, g := range s.graphs {
		if g.name == name {
			return g
		}
	}
	return nil
}

// NewGraph creates a graph wired to the stage's services.
func (s *Stage) NewGraph(cfg GraphConfig) *Graph {
	g := NewGraph(s.svc, cfg)
	s.graphs = append(s.graphs, g)
	return g
}

// NewMenu creates a start menu wired to the stage's services. Start shows it.
func (s *Stage) NewMenu(cfg MenuConfig) *Menu {
	m := NewMenu(s.svc, cfg)
	s.menus = append(s.menus, m)
	return m
}

// NewInventory creates an inventory wired to the stage's services whose
// display rooms are shown through display.
func (s *Stage) NewInventory(display *Graph, items []InventoryItem, hideIcons bool) *Inventory {
	return NewInventory(s.svc, display, items, hideIcons)
}

// SetBackButton adds btn to the UI layer and makes it the back control.
func (s *Stage) SetBackButton(btn *Node) {
	if btn != nil && btn.Parent == nil {
		s.ui.AddChild(btn)
	}
	s.svc.Coordinator.SetBackButton(btn)
}

// On registers a callback for navigation events of type t.
func (s *Stage) On(t EventType, fn func(Event)) CallbackHandle {
	return s.svc.On(t, fn)
}

// SetEventSink sets the optional event bridge.
func (s *Stage) SetEventSink(sink EventSink) {
	s.svc.SetEventSink(sink)
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Stage) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Start enables graphs that are not owned by any node, then every graph
// whose owner is active in the hierarchy, parents before children. The last
// graph enabled ends up holding the back control. Menus start last.
func (s *Stage) Start() {
	for _, g := range s.graphs {
		if g.owner == nil && !g.enabled {
			g.Enable()
		}
	}
	s.enableActiveGraphs(s.root)
	for _, m := range s.menus {
		m.Start()
	}
}

func (s *Stage) enableActiveGraphs(n *Node) {
	if !n.Visible || n.disposed {
		return
	}
	if n.Graph != nil && !n.Graph.enabled {
		n.Graph.Enable()
	}
	for _, c := range n.children {
		s.enableActiveGraphs(c)
	}
}

// ResetNavigation clears every graph's history and puzzle progress. Solved
// riddles are kept.
func (s *Stage) ResetNavigation() {
	for _, g := range s.graphs {
		g.Reset()
	}
	s.svc.Coordinator.RefreshBackButton()
}

// ResetLedger forgets every solved riddle.
func (s *Stage) ResetLedger() {
	s.svc.Ledger().Reset()
}

// Update is the per-frame entry point for an ebiten game loop. It reads the
// real mouse (unless injected input is pending), then steps the stage by one
// tick of 1/TPS seconds.
func (s *Stage) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if s.testRunner == nil && len(s.injectQueue) == 0 {
		s.processMouse()
	}
	s.Step(dt)
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Step advances the stage by dt seconds without touching real input:
// scripted steps, one injected pointer event, then Advance.
func (s *Stage) Step(dt float32) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
	s.Advance(dt)
}

// Advance moves every running animation forward by dt seconds: the
// transition fade, the overlay, and node OnUpdate callbacks.
func (s *Stage) Advance(dt float32) {
	s.svc.Coordinator.Update(dt)
	if s.svc.Overlay != nil {
		s.svc.Overlay.Update(dt)
	}
	updateNodes(s.root, float64(dt))
}

func updateNodes(n *Node, dt float64) {
	if !n.Visible || n.disposed {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, c := range n.children {
		updateNodes(c, dt)
	}
}
