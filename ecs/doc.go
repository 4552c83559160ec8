// Package ecs bridges isobox game events into a [Donburi] world.
//
// [NewDonburiStore] publishes every selection and level completion as a
// typed [GameEventType] event. Subscribe to it in your ECS systems:
//
//	store := ecs.NewDonburiStore(world)
//	game.SetEntityStore(store)
//	ecs.GameEventType.Subscribe(world, onGameEvent)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
