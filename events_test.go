package wander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkRecorder struct {
	events []Event
}

func (r *sinkRecorder) EmitEvent(e Event) { r.events = append(r.events, e) }

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "switch_start", EventSwitchStart.String())
	assert.Equal(t, "item_collected", EventItemCollected.String())
	assert.Equal(t, "unknown", EventType(200).String())
}

func TestCallbackHandleRemove(t *testing.T) {
	svc := NewServices()
	var a, b int
	ha := svc.On(EventPuzzleSolved, func(Event) { a++ })
	svc.On(EventPuzzleSolved, func(Event) { b++ })

	svc.emit(Event{Type: EventPuzzleSolved})
	ha.Remove()
	ha.Remove()
	svc.emit(Event{Type: EventPuzzleSolved})

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestOnIgnoresInvalidRegistrations(t *testing.T) {
	svc := NewServices()
	h := svc.On(EventType(200), func(Event) {})
	h.Remove()
	svc.On(EventSwitchStart, nil)
	svc.emit(Event{Type: EventSwitchStart})
	CallbackHandle{}.Remove()
}

func TestEventSinkReceivesEverything(t *testing.T) {
	h := newHouse(t, 0)
	sink := &sinkRecorder{}
	h.stage.SetEventSink(sink)

	require.True(t, h.graph.Switch(h.door))

	var types []EventType
	for _, e := range sink.events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []EventType{EventSwitchStart, EventMaskChanged, EventSwitchCommitted}, types)

	committed := sink.events[2]
	assert.Equal(t, "house", committed.Graph)
	assert.Same(t, h.lobby, committed.From)
	assert.Same(t, h.study, committed.To)
	assert.False(t, committed.Back)
}

func TestBackEventsAreMarked(t *testing.T) {
	h := newHouse(t, 0)
	events := recordEvents(h.stage, EventSwitchStart, EventSwitchCommitted)
	h.graph.Switch(h.door)
	h.graph.GoBack()

	start, _ := events.last(EventSwitchStart)
	committed, _ := events.last(EventSwitchCommitted)
	assert.True(t, start.Back)
	assert.True(t, committed.Back)
	assert.Same(t, h.lobby, committed.To)
}
