package isobox

import "testing"

func eventKinds(g *Game) []InputKind {
	kinds := make([]InputKind, len(g.events))
	for i, e := range g.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func equalKinds(a, b []InputKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProcessPointerClick(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.processPointer(100, 100, true)
	g.processPointer(102, 101, true) // inside the dead zone
	g.processPointer(102, 101, false)

	want := []InputKind{InputPress, InputClick}
	if got := eventKinds(g); !equalKinds(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestProcessPointerDrag(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.processPointer(100, 100, true)
	g.processPointer(110, 100, true)
	g.processPointer(120, 100, true)
	g.processPointer(120, 100, true) // no movement, no event
	g.processPointer(120, 100, false)

	want := []InputKind{InputPress, InputDragStart, InputDrag, InputDrag, InputDragEnd}
	if got := eventKinds(g); !equalKinds(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestProcessPointerHover(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.processPointer(30, 40, false)
	if len(g.events) != 0 {
		t.Errorf("hover queued %d events", len(g.events))
	}
	if p := g.Pointer(); p.X != 30 || p.Y != 40 {
		t.Errorf("Pointer = %+v, want (30, 40)", p)
	}
}

func TestTickDrainsEvents(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.processPointer(350, 300, true)
	g.processPointer(350, 300, false)
	g.Tick()
	if len(g.events) != 0 {
		t.Errorf("%d events left after Tick", len(g.events))
	}
	if g.World().Selected() == nil {
		t.Error("click should have selected the pusher")
	}
}

func TestRestartMidDragSwallowsRelease(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.processPointer(200, 100, true)
	g.processPointer(230, 100, true)
	g.Restart()

	// Still held: movement and the release over the pusher queue nothing.
	g.processPointer(350, 300, true)
	g.processPointer(350, 300, false)
	if len(g.events) != 0 {
		t.Fatalf("events = %v, want none", eventKinds(g))
	}
	g.Tick()
	if g.World().Selected() != nil {
		t.Error("release after restart selected a pusher")
	}

	// The next press behaves normally.
	g.processPointer(350, 300, true)
	g.processPointer(350, 300, false)
	want := []InputKind{InputPress, InputClick}
	if got := eventKinds(g); !equalKinds(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

// --- Injection ---

func TestInjectClick(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.InjectClick(350, 300)
	if g.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", g.PendingInjections())
	}

	// Update 1: press
	g.Update()
	if g.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining event after update 1, got %d", g.PendingInjections())
	}
	if g.World().Selected() != nil {
		t.Error("selection should not happen on the press update")
	}

	// Update 2: release selects
	g.Update()
	if g.PendingInjections() != 0 {
		t.Fatalf("expected 0 remaining events, got %d", g.PendingInjections())
	}
	if g.World().Selected() == nil {
		t.Error("selection should happen on the release update")
	}
}

func TestInjectDragTurnsCamera(t *testing.T) {
	g, _ := newTestGame(t, nil)
	start := g.World().Angles.Y
	sens := g.World().Tuning().DragSensitivity

	// press, 3 moves, release
	g.InjectDrag(100, 100, 200, 100, 5)
	if g.PendingInjections() != 5 {
		t.Fatalf("expected 5 queued events, got %d", g.PendingInjections())
	}
	for i := 0; i < 5; i++ {
		g.Update()
	}
	w := g.World()
	if w.Panning() {
		t.Error("drag should be finished")
	}
	assertNear(t, "yaw", w.Angles.Y, start+100*sens)
	if w.Selected() != nil {
		t.Error("a drag should not select")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.InjectDrag(0, 0, 50, 50, 0)
	if g.PendingInjections() != 2 {
		t.Errorf("expected press and release only, got %d", g.PendingInjections())
	}
}

func TestInjectDragInsideDeadZoneIsClick(t *testing.T) {
	g, _ := newTestGame(t, nil)
	start := g.World().Angles
	g.InjectDrag(349, 300, 351, 300, 3)
	for i := 0; i < 3; i++ {
		g.Update()
	}
	if g.World().Angles != start {
		t.Error("movement inside the dead zone should not turn the camera")
	}
	if g.World().Selected() == nil {
		t.Error("a short drag on a pusher is a click")
	}
}
