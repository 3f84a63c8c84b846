package ecs

import (
	"github.com/phanxgames/wander"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NavigationEventType is the Donburi event type for wander navigation events.
// Subscribe to this in your ECS systems to receive switches, puzzle progress,
// overlay changes and pickups.
var NavigationEventType = events.NewEventType[wander.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Navigation events are published to NavigationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) wander.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event wander.Event) {
	NavigationEventType.Publish(s.world, event)
}
