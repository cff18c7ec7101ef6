// Package ecs provides ECS adapters for cui's interaction events.
//
// The primary adapter is [NewDonburiSink], which publishes cui capture and
// click events into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctx.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
