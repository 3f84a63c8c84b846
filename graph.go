package wander

import "go.uber.org/zap"

// Trigger maps a button to the node it switches to. Assets, when non-empty,
// overrides every other overlay content source for switches made through
// this trigger.
type Trigger struct {
	Button *Node
	Target *Node
	Assets *AssetSet
}

// GraphConfig is the static description of a navigation graph.
type GraphConfig struct {
	Name string

	// Owner is the node this graph lives on. NewGraph sets Owner.Graph, which
	// is how a parent graph finds nested graphs and their asset sets.
	Owner *Node

	Triggers []Trigger
	Assets   *AssetSet
	Fallback Sprite
	Puzzle   *PuzzleConfig

	// BackOverride, when set, is always where GoBack goes.
	BackOverride *Node
	// DeactivateOnSwitch is hidden after every switch and puzzle success.
	DeactivateOnSwitch *Node
	// AfterSwitch runs at the end of every applied switch.
	AfterSwitch func(target *Node)
	// Hover, when set, is applied to every trigger and puzzle button.
	Hover *HoverAlpha
}

// Graph is a navigation graph: a set of trigger→target mappings with exactly
// one active target, a back history and an optional puzzle. Every change it
// makes runs behind the coordinator's fade.
type Graph struct {
	name         string
	owner        *Node
	triggers     []Trigger
	assets       *AssetSet
	fallback     Sprite
	puzzle       *Puzzle
	backOverride *Node
	deactivate   *Node
	afterSwitch  func(*Node)

	svc     *Services
	active  *Node
	history []*Node
	enabled bool
}

// NewGraph builds a graph wired through svc and hooks its trigger and puzzle
// buttons' OnClick. The graph starts disabled; see Enable.
func NewGraph(svc *Services, cfg GraphConfig) *Graph {
	if svc == nil {
		svc = NewServices()
	}
	g := &Graph{
		name:         cfg.Name,
		owner:        cfg.Owner,
		triggers:     append([]Trigger(nil), cfg.Triggers...),
		assets:       cfg.Assets,
		fallback:     cfg.Fallback,
		backOverride: cfg.BackOverride,
		deactivate:   cfg.DeactivateOnSwitch,
		afterSwitch:  cfg.AfterSwitch,
		svc:          svc,
	}
	if cfg.Owner != nil {
		cfg.Owner.Graph = g
	}
	if cfg.Puzzle != nil {
		g.puzzle = newPuzzle(*cfg.Puzzle)
	}

	for i, t := range g.triggers {
		if t.Button == nil {
			continue
		}
		index := i
		t.Button.OnClick = func(ClickContext) { g.SwitchIndex(index) }
		cfg.Hover.attach(svc.binder(), t.Button)
	}
	if g.puzzle != nil {
		for i, btn := range g.puzzle.Buttons() {
			if btn == nil {
				continue
			}
			index := i
			btn.OnClick = func(ClickContext) { g.PressPuzzleButton(index) }
			cfg.Hover.attach(svc.binder(), btn)
		}
	}
	g.syncActive()
	return g
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

// Owner returns the node the graph lives on, or nil.
func (g *Graph) Owner() *Node { return g.owner }

// Assets returns the graph's own asset set, or nil.
func (g *Graph) Assets() *AssetSet { return g.assets }

// Fallback returns the sprite shown when no asset set resolves.
func (g *Graph) Fallback() Sprite { return g.fallback }

// Puzzle returns the bound puzzle, or nil.
func (g *Graph) Puzzle() *Puzzle { return g.puzzle }

// Triggers returns the trigger mappings. The slice MUST NOT be mutated.
func (g *Graph) Triggers() []Trigger { return g.triggers }

// Active returns the active target, or nil.
func (g *Graph) Active() *Node { return g.active }

// Enabled reports whether the graph is enabled.
func (g *Graph) Enabled() bool { return g.enabled }

// History returns a copy of the back history, most recent last.
func (g *Graph) History() []*Node {
	return append([]*Node(nil), g.history...)
}

// CanGoBack reports whether GoBack has somewhere to go.
func (g *Graph) CanGoBack() bool {
	return g.backOverride != nil || len(g.history) > 0
}

// CanEnter reports whether n's riddle gate, if any, is open.
func (g *Graph) CanEnter(n *Node) bool {
	return g.svc.CanEnter(n)
}

// --- Lifecycle ---

// Enable arms the graph: the puzzle resets, the active target is re-read
// from which targets are visible, the graph becomes the coordinator's active
// graph and its own assets (or fallback) go to the overlay.
func (g *Graph) Enable() {
	g.enabled = true
	g.resetPuzzle()
	g.syncActive()
	if g.svc.Coordinator != nil {
		g.svc.Coordinator.SetActiveGraph(g)
	}
	if ov := g.svc.Overlay; ov != nil {
		if g.assets.IsEmpty() {
			ov.CommitFallback(g.fallback)
		} else {
			ov.Commit(g.assets, ov.RequestedMask())
		}
	}
}

// Disable releases the coordinator's back control if this graph holds it.
func (g *Graph) Disable() {
	g.enabled = false
	if g.svc.Coordinator != nil {
		g.svc.Coordinator.ClearActiveGraph(g)
	}
}

// Reset clears the back history and re-arms the puzzle. The riddle ledger is
// left alone.
func (g *Graph) Reset() {
	g.history = g.history[:0]
	g.resetPuzzle()
	g.syncActive()
}

func (g *Graph) syncActive() {
	g.active = nil
	for _, t := range g.triggers {
		if t.Target != nil && t.Target.Visible {
			g.active = t.Target
			return
		}
	}
}

// --- Switching ---

// Switch navigates to the target mapped to button. Unknown buttons are
// ignored. Reports whether a transition was started.
func (g *Graph) Switch(button *Node) bool {
	if button == nil {
		return false
	}
	for i, t := range g.triggers {
		if t.Button == button {
			return g.SwitchIndex(i)
		}
	}
	return false
}

// SwitchIndex navigates through the trigger at index, recording history.
// Reports whether a transition was started.
func (g *Graph) SwitchIndex(index int) bool {
	if index < 0 || index >= len(g.triggers) {
		return false
	}
	target := g.triggers[index].Target
	if target == nil {
		return false
	}
	if !g.svc.TryEnter(target, target.LockedHint) {
		return false
	}
	return g.gated(target, false, func() { g.switchNow(target, index, true, false) })
}

// SwitchTo shows target without recording history and without a mask
// request, as used for item display rooms.
func (g *Graph) SwitchTo(target *Node) bool {
	if target == nil {
		return false
	}
	return g.gated(target, false, func() { g.switchNow(target, -1, false, false) })
}

// GoBack navigates to the back override, or else to the most recent history
// entry. The destination is never pushed back onto history.
func (g *Graph) GoBack() bool {
	if g.svc.Fading() {
		g.svc.logger().Debug("back dropped: fade in flight", zap.String("graph", g.name))
		return false
	}
	target := g.backOverride
	if target == nil && len(g.history) > 0 {
		target = g.history[len(g.history)-1]
		g.history = g.history[:len(g.history)-1]
	}
	if target == nil {
		return false
	}
	return g.gated(target, true, func() { g.switchNow(target, -1, false, true) })
}

func (g *Graph) gated(target *Node, back bool, apply func()) bool {
	if g.svc.Fading() {
		g.svc.logger().Debug("switch dropped: fade in flight",
			zap.String("graph", g.name), zap.String("target", target.Name))
		return false
	}
	g.svc.emit(Event{Type: EventSwitchStart, Graph: g.name, From: g.active, To: target, Back: back})
	return g.svc.RunGated(apply)
}

// switchNow is the apply step: it runs with the screen fully covered.
func (g *Graph) switchNow(target *Node, triggerIndex int, recordHistory, back bool) {
	b := g.svc.binder()
	prev := g.active
	if recordHistory && prev != nil && prev != target && g.recordable(prev) {
		g.history = append(g.history, prev)
	}

	for _, t := range g.triggers {
		if t.Target != nil && t.Target != target {
			b.SetActive(t.Target, false)
		}
	}
	b.SetActive(target, true)
	g.active = target
	g.dropFromHistory(target)

	g.commitAssets(target, triggerIndex)

	// Leaving a room with a nested graph disables it and releases the back
	// control; take it back unless the new target's own graph claimed it.
	if c := g.svc.Coordinator; c != nil && g.enabled && c.ActiveGraph() == nil {
		c.SetActiveGraph(g)
	}

	if g.deactivate != nil {
		b.SetActive(g.deactivate, false)
	}
	if g.afterSwitch != nil {
		g.afterSwitch(target)
	}
	g.svc.logger().Debug("switch committed",
		zap.String("graph", g.name), zap.String("target", target.Name), zap.Int("history", len(g.history)))
	g.svc.emit(Event{Type: EventSwitchCommitted, Graph: g.name, From: prev, To: target, Back: back})
}

// recordable limits history to mapped targets and the back override.
func (g *Graph) recordable(n *Node) bool {
	if n == g.backOverride {
		return true
	}
	for _, t := range g.triggers {
		if t.Target == n {
			return true
		}
	}
	return false
}

func (g *Graph) dropFromHistory(n *Node) {
	kept := g.history[:0]
	for _, h := range g.history {
		if h != n {
			kept = append(kept, h)
		}
	}
	clear(g.history[len(kept):])
	g.history = kept
}

func (g *Graph) commitAssets(target *Node, triggerIndex int) {
	ov := g.svc.Overlay
	if ov == nil {
		return
	}
	var trigger *Trigger
	if triggerIndex >= 0 && triggerIndex < len(g.triggers) {
		trigger = &g.triggers[triggerIndex]
	}
	choice := resolveAssets(g, target, trigger)
	if choice.useFallback() {
		ov.CommitFallback(choice.fallback)
		return
	}
	ov.Commit(choice.set, triggerIndex)
}

// --- Puzzle ---

// PressPuzzleButton feeds a puzzle button press into the matcher. Completing
// the order applies the reward behind a transition.
func (g *Graph) PressPuzzleButton(index int) {
	p := g.puzzle
	if p == nil {
		return
	}
	switch p.press(index) {
	case pressAdvanced:
		g.emitProgress()
	case pressReset:
		g.setPuzzleButtonsInteractable(true)
		g.svc.logger().Debug("puzzle reset", zap.String("graph", g.name), zap.Int("pressed", index))
		g.svc.emit(Event{Type: EventPuzzleReset, Graph: g.name, RiddleID: p.ID(), Total: p.Len()})
	case pressSolved:
		g.emitProgress()
		if !g.svc.RunGated(g.applyPuzzleReward) {
			p.reopen()
		}
	}
}

func (g *Graph) emitProgress() {
	p := g.puzzle
	g.svc.emit(Event{Type: EventPuzzleProgress, Graph: g.name, RiddleID: p.ID(), Progress: p.Progress(), Total: p.Len()})
}

func (g *Graph) applyPuzzleReward() {
	p := g.puzzle
	b := g.svc.binder()
	if p.ID() != "" {
		g.svc.Ledger().MarkSolved(p.ID())
	}
	if p.cfg.Reward != nil {
		b.SetActive(p.cfg.Reward, true)
	}
	if p.cfg.LockOnSolve {
		g.setPuzzleButtonsInteractable(false)
	}
	if g.deactivate != nil {
		b.SetActive(g.deactivate, false)
	}
	g.svc.logger().Debug("puzzle solved", zap.String("graph", g.name), zap.String("riddle", p.ID()))
	g.svc.emit(Event{Type: EventPuzzleSolved, Graph: g.name, RiddleID: p.ID(), Node: p.cfg.Reward, Progress: p.Progress(), Total: p.Len()})
}

func (g *Graph) resetPuzzle() {
	if g.puzzle == nil {
		return
	}
	g.puzzle.Reset()
	g.setPuzzleButtonsInteractable(true)
}

func (g *Graph) setPuzzleButtonsInteractable(on bool) {
	for _, btn := range g.puzzle.Buttons() {
		if btn != nil {
			btn.Interactable = on
		}
	}
}
