package ecs

import (
	"github.com/phanxgames/cui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for cui interaction events.
var InteractionEventType = events.NewEventType[cui.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) cui.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event cui.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
