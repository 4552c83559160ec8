package isobox

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerState tracks the mouse between ticks.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
	// stale marks a press that began on a level that has since been
	// replaced. Its release and movement queue nothing.
	stale bool
}

// processInput reads one pointer sample, injected events first, then the
// keyboard. Called from Game.Update before the tick. A game driven by a
// TestRunner ignores the real mouse.
func (g *Game) processInput() {
	if !g.processInjectedInput() && g.live && g.testRunner == nil {
		mx, my := ebiten.CursorPosition()
		g.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}
	if !g.live {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.record(testStep{Action: "restart"})
		g.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.record(testStep{Action: "reset_camera"})
		g.world.ResetCamera()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.SetDebugMode(!g.debug)
	}
}

// processPointer runs the pointer state machine for one sample and queues the
// resulting InputEvents for the next tick. A press followed by movement past
// the drag dead zone is a drag; a release without one is a click.
func (g *Game) processPointer(x, y float64, pressed bool) {
	ps := &g.pointer

	switch {
	case pressed && !ps.down:
		g.record(testStep{Action: "press", X: x, Y: y})
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		ps.stale = false
		g.queue(InputPress, x, y)

	case !pressed && ps.down:
		g.record(testStep{Action: "release", X: x, Y: y})
		switch {
		case ps.stale:
		case ps.dragging:
			g.queue(InputDragEnd, x, y)
		default:
			g.queue(InputClick, x, y)
		}
		ps.down = false
		ps.dragging = false
		ps.stale = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			g.record(testStep{Action: "move", X: x, Y: y})
			if !ps.dragging && !ps.stale {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > g.tuning.DragDeadZone {
					ps.dragging = true
					g.queue(InputDragStart, x, y)
				}
			}
			if ps.dragging {
				g.queue(InputDrag, x, y)
			}
		}
		ps.lastX, ps.lastY = x, y

	default:
		// Hover.
		ps.lastX, ps.lastY = x, y
	}
}

// record adds st to the active recording, if any.
func (g *Game) record(st testStep) {
	if g.recorder != nil {
		g.recorder.add(st)
	}
}

func (g *Game) queue(kind InputKind, x, y float64) {
	g.events = append(g.events, InputEvent{Kind: kind, X: x, Y: y})
}

// Pointer returns the last known pointer position.
func (g *Game) Pointer() Vec2 {
	return Vec2{X: g.pointer.lastX, Y: g.pointer.lastY}
}
