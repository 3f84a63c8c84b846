package wander

// MenuConfig describes a start menu.
type MenuConfig struct {
	Root       *Node
	PlayButton *Node

	// ActivateOnStart shows the menu when Start runs; FadeOnStart does so
	// behind a transition.
	ActivateOnStart bool
	FadeOnStart     bool
	// FadeOnPlay hides the menu behind a transition when play is pressed.
	FadeOnPlay bool
	// OnPlay runs after the menu is hidden.
	OnPlay func()
}

// Menu is a start menu whose appearance and dismissal go through the
// transition coordinator like any other navigation change.
type Menu struct {
	svc *Services
	cfg MenuConfig
}

// NewMenu wires cfg.PlayButton to Play. A menu that fades in on start is
// hidden immediately so it does not flash before the first fade.
func NewMenu(svc *Services, cfg MenuConfig) *Menu {
	m := &Menu{svc: svc, cfg: cfg}
	if cfg.PlayButton != nil {
		cfg.PlayButton.OnClick = func(ClickContext) { m.Play() }
	}
	if cfg.ActivateOnStart && cfg.FadeOnStart {
		svc.binder().SetActive(cfg.Root, false)
	}
	return m
}

// Root returns the menu's root node.
func (m *Menu) Root() *Node { return m.cfg.Root }

// Start shows the menu if configured to.
func (m *Menu) Start() {
	if !m.cfg.ActivateOnStart {
		return
	}
	b := m.svc.binder()
	if m.cfg.FadeOnStart {
		b.SetActive(m.cfg.Root, false)
		m.svc.RunGated(func() { b.SetActive(m.cfg.Root, true) })
		return
	}
	b.SetActive(m.cfg.Root, true)
}

// Play hides the menu and runs OnPlay. Reports whether it happened; a play
// press during another transition is dropped.
func (m *Menu) Play() bool {
	hide := func() {
		m.svc.binder().SetActive(m.cfg.Root, false)
		if m.cfg.OnPlay != nil {
			m.cfg.OnPlay()
		}
	}
	if m.cfg.FadeOnPlay {
		return m.svc.RunGated(hide)
	}
	hide()
	return true
}
