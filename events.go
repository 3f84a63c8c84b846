package wander

// EventType identifies a navigation notification.
type EventType uint8

const (
	EventSwitchStart     EventType = iota // a switch was accepted and its fade began
	EventSwitchCommitted                  // the new node is active (fires at full cover)
	EventPuzzleProgress                   // a puzzle button matched the next expected index
	EventPuzzleReset                      // a wrong puzzle button reset progress
	EventPuzzleSolved                     // the puzzle reward was applied
	EventOverlayOpen                      // the overlay started opening
	EventOverlayClose                     // the overlay started closing
	EventMaskChanged                      // the overlay committed new content
	EventPickupBlocked                    // an entry or pickup was refused by riddle gating
	EventItemCollected                    // an inventory item was collected
	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"switch_start",
	"switch_committed",
	"puzzle_progress",
	"puzzle_reset",
	"puzzle_solved",
	"overlay_open",
	"overlay_close",
	"mask_changed",
	"pickup_blocked",
	"item_collected",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event carries notification data. Only the fields relevant to Type are set.
type Event struct {
	Type  EventType
	Graph string // name of the graph that raised the event

	// Switch fields
	From, To *Node
	Back     bool

	// Puzzle fields
	RiddleID string
	Progress int
	Total    int

	// Overlay fields
	MaskIndex int
	Mask      Sprite
	Audio     AudioClip
	Fallback  bool

	// Gating and inventory fields
	Node   *Node
	ItemID string
	Hint   string
}

// EventSink receives every event after the registered callbacks ran. It is
// the bridge used by the ecs adapter.
type EventSink interface {
	EmitEvent(event Event)
}

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	handlers [eventTypeCount][]eventHandler
	nextID   uint32
	sink     EventSink
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	list := h.reg.handlers[h.event]
	for i, eh := range list {
		if eh.id == h.id {
			h.reg.handlers[h.event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

func (r *handlerRegistry) on(t EventType, fn func(Event)) CallbackHandle {
	if t >= eventTypeCount || fn == nil {
		return CallbackHandle{}
	}
	r.nextID++
	id := r.nextID
	r.handlers[t] = append(r.handlers[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: t}
}

// emit is fire-and-forget: handlers cannot veto or alter navigation.
func (r *handlerRegistry) emit(e Event) {
	if r == nil {
		return
	}
	if e.Type < eventTypeCount {
		for _, h := range r.handlers[e.Type] {
			h.fn(e)
		}
	}
	if r.sink != nil {
		r.sink.EmitEvent(e)
	}
}
