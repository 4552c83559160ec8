package isobox

// GameEvent describes something that happened during a tick.
type GameEvent struct {
	Type    EventType
	Session string
	// Level is the index of the level the event happened in.
	Level     int
	LevelName string
	// Box is the selected pusher for EventSelect, 0 otherwise.
	Box BoxID
	// Tick counts ticks since the level started.
	Tick int
}

// EntityStore is the interface for optional ECS integration. When set on a
// Game, every GameEvent is forwarded to it after the registered callbacks.
type EntityStore interface {
	EmitEvent(event GameEvent)
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(GameEvent)
}

type handlerRegistry struct {
	selected []eventHandler
	complete []eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered game callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSelect:
		h.reg.selected = removeHandler(h.reg.selected, h.id)
	case EventLevelComplete:
		h.reg.complete = removeHandler(h.reg.complete, h.id)
	}
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnSelect registers fn to run whenever a pusher becomes the active grower.
func (g *Game) OnSelect(fn func(GameEvent)) CallbackHandle {
	g.handlers.nextID++
	id := g.handlers.nextID
	g.handlers.selected = append(g.handlers.selected, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &g.handlers, event: EventSelect}
}

// OnLevelComplete registers fn to run when every goal of a level is covered,
// before the next level is loaded.
func (g *Game) OnLevelComplete(fn func(GameEvent)) CallbackHandle {
	g.handlers.nextID++
	id := g.handlers.nextID
	g.handlers.complete = append(g.handlers.complete, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &g.handlers, event: EventLevelComplete}
}

// SetEntityStore sets the optional ECS bridge.
func (g *Game) SetEntityStore(store EntityStore) {
	g.store = store
}

// emit runs the callbacks registered for e.Type, then forwards e to the
// entity store.
func (g *Game) emit(e GameEvent) {
	var hs []eventHandler
	switch e.Type {
	case EventSelect:
		hs = g.handlers.selected
	case EventLevelComplete:
		hs = g.handlers.complete
	}
	for _, h := range hs {
		h.fn(e)
	}
	if g.store != nil {
		g.store.EmitEvent(e)
	}
}
