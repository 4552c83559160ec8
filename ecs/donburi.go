package ecs

import (
	"github.com/phanxgames/isobox"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GameEventType is the Donburi event type for isobox game events.
var GameEventType = events.NewEventType[isobox.GameEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Game
// events are published to GameEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) isobox.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event isobox.GameEvent) {
	GameEventType.Publish(s.world, event)
}

// LevelProgress is a component that tracks play statistics fed by game
// events.
type LevelProgress struct {
	Selections int
	Cleared    []string
}

// Progress is the component type for LevelProgress.
var Progress = donburi.NewComponentType[LevelProgress]()

// TrackProgress creates an entity holding a LevelProgress and subscribes it
// to GameEventType. The returned entry is updated whenever the world's
// events are processed.
func TrackProgress(world donburi.World) *donburi.Entry {
	entry := world.Entry(world.Create(Progress))
	GameEventType.Subscribe(world, func(w donburi.World, e isobox.GameEvent) {
		p := Progress.Get(entry)
		switch e.Type {
		case isobox.EventSelect:
			p.Selections++
		case isobox.EventLevelComplete:
			p.Cleared = append(p.Cleared, e.LevelName)
		}
	})
	return entry
}
