package wander

import "go.uber.org/zap"

// Services is the registry every navigation component is wired through. It
// is built once, by NewStage or by hand, and passed to each graph at
// construction. Components never look collaborators up any other way.
//
// Coordinator and Overlay may be nil: transitions then apply immediately and
// overlay content resolution is skipped.
type Services struct {
	Binder      Binder
	Coordinator *Coordinator
	Overlay     *Overlay
	Logger      *zap.Logger

	ledger *RiddleLedger
	events handlerRegistry
}

// NewServices returns a registry with the default binder and a no-op logger.
func NewServices() *Services {
	return &Services{Binder: NodeBinder{}, Logger: zap.NewNop()}
}

// Ledger returns the riddle ledger, creating it on first use.
func (s *Services) Ledger() *RiddleLedger {
	if s.ledger == nil {
		s.ledger = NewRiddleLedger()
	}
	return s.ledger
}

// On registers fn for events of type t.
func (s *Services) On(t EventType, fn func(Event)) CallbackHandle {
	return s.events.on(t, fn)
}

// SetEventSink installs an optional bridge that receives every event.
func (s *Services) SetEventSink(sink EventSink) {
	s.events.sink = sink
}

// CanEnter reports whether n is free to enter: it names no riddle, or the
// riddle it names has been solved.
func (s *Services) CanEnter(n *Node) bool {
	if n == nil {
		return false
	}
	if n.RequiredRiddle == "" {
		return true
	}
	return s.Ledger().IsSolved(n.RequiredRiddle)
}

// TryEnter is CanEnter for user-initiated entries and pickups. A refusal
// changes no state; it logs and emits EventPickupBlocked carrying hint.
func (s *Services) TryEnter(n *Node, hint string) bool {
	if s.CanEnter(n) {
		return true
	}
	if n != nil {
		s.logger().Debug("entry blocked by riddle",
			zap.String("node", n.Name), zap.String("riddle", n.RequiredRiddle))
	}
	s.emit(Event{Type: EventPickupBlocked, Node: n, RiddleID: nodeRiddle(n), Hint: hint})
	return false
}

// RunGated runs apply through the coordinator, or at once without one.
func (s *Services) RunGated(apply func()) bool {
	if s.Coordinator == nil {
		apply()
		return true
	}
	return s.Coordinator.RunGated(apply)
}

// Fading reports whether a transition is in flight.
func (s *Services) Fading() bool {
	return s.Coordinator != nil && s.Coordinator.Fading()
}

func (s *Services) binder() Binder {
	if s.Binder == nil {
		s.Binder = NodeBinder{}
	}
	return s.Binder
}

func (s *Services) logger() *zap.Logger {
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return s.Logger
}

func (s *Services) emit(e Event) {
	s.events.emit(e)
}

func nodeRiddle(n *Node) string {
	if n == nil {
		return ""
	}
	return n.RequiredRiddle
}

// SetOverlay installs o and routes its notifications through s.
func (s *Services) SetOverlay(o *Overlay) {
	s.Overlay = o
	if o != nil {
		o.events = &s.events
		o.SetLogger(s.logger())
	}
}

// SetCoordinator installs c and shares s's logger with it.
func (s *Services) SetCoordinator(c *Coordinator) {
	s.Coordinator = c
	if c != nil {
		c.SetLogger(s.logger())
	}
}

// SetLogger replaces the logger used by s and the components it holds.
func (s *Services) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.Logger = l
	if s.Coordinator != nil {
		s.Coordinator.SetLogger(l)
	}
	if s.Overlay != nil {
		s.Overlay.SetLogger(l)
	}
}
