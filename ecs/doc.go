// Package ecs provides ECS adapters for wander's navigation events.
//
// The primary adapter is [NewDonburiSink], which bridges wander events
// (switches, puzzle progress, overlay changes, pickups) into a [Donburi]
// world as typed events. Subscribe to [NavigationEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
