package ecs

import (
	"testing"

	"github.com/phanxgames/wander"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []wander.Event
	NavigationEventType.Subscribe(world, func(w donburi.World, e wander.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(wander.Event{
		Type:     wander.EventPuzzleProgress,
		Graph:    "desk",
		RiddleID: "Door-1",
		Progress: 2,
		Total:    3,
	})
	sink.EmitEvent(wander.Event{
		Type:      wander.EventMaskChanged,
		MaskIndex: 1,
		Mask:      wander.Sprite{Name: "m1"},
	})

	// Events are queued until processed.
	NavigationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != wander.EventPuzzleProgress || e0.RiddleID != "Door-1" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Progress != 2 || e0.Total != 3 {
		t.Errorf("event 0 progress: %d/%d", e0.Progress, e0.Total)
	}

	e1 := received[1]
	if e1.Type != wander.EventMaskChanged || e1.Mask.Name != "m1" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	NavigationEventType.Subscribe(world, func(w donburi.World, e wander.Event) {
		count1++
	})
	NavigationEventType.Subscribe(world, func(w donburi.World, e wander.Event) {
		count2++
	})

	sink.EmitEvent(wander.Event{Type: wander.EventOverlayOpen})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_StageSwitch(t *testing.T) {
	cfg := wander.DefaultStageConfig()
	cfg.FadeDuration = 0
	stage := wander.NewStage(cfg)

	lobby := wander.NewContainer("lobby")
	study := wander.NewContainer("study")
	study.Visible = false
	stage.Content().AddChild(lobby)
	stage.Content().AddChild(study)
	door := wander.NewButton("door", 10, 10)
	lobby.AddChild(door)
	g := stage.NewGraph(wander.GraphConfig{
		Name:     "house",
		Triggers: []wander.Trigger{{Button: door, Target: study}, {Target: lobby}},
	})
	stage.Start()

	world := donburi.NewWorld()
	stage.SetEventSink(NewDonburiSink(world))

	var committed []wander.Event
	NavigationEventType.Subscribe(world, func(w donburi.World, e wander.Event) {
		if e.Type == wander.EventSwitchCommitted {
			committed = append(committed, e)
		}
	})

	if !g.Switch(door) {
		t.Fatal("switch was not accepted")
	}
	if len(committed) != 0 {
		t.Fatal("events should be queued until processed")
	}
	NavigationEventType.ProcessEvents(world)

	if len(committed) != 1 {
		t.Fatalf("expected 1 committed switch, got %d", len(committed))
	}
	if committed[0].To != study || committed[0].Graph != "house" {
		t.Errorf("committed: %+v", committed[0])
	}
}
