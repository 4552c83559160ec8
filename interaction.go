package isobox

import "math"

// --- Hit testing ---

// HitPolygon is a convex polygon hit area in screen coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	// A fully degenerate polygon (all points collinear with the query)
	// covers no area.
	return positive || negative
}

// hitFace reports whether (x, y) falls on any projected face of b.
func hitFace(b *Box, x, y float64) bool {
	for f := range BoxFaces {
		if (HitPolygon{Points: facePoints(&b.Projected, f)}).Contains(x, y) {
			return true
		}
	}
	return false
}

// PickBox returns the topmost box whose projected faces contain the screen
// point, or nil. The base plate is never picked.
func (w *World) PickBox(x, y float64) *Box {
	for i := len(w.RenderOrder) - 1; i >= 0; i-- {
		b := w.RenderOrder[i]
		if b == w.Base {
			continue
		}
		if hitFace(b, x, y) {
			return b
		}
	}
	return nil
}

// --- Selection ---

// Select makes b the active pusher and reports whether the selection
// changed. Non-pushers, nil and the already active pusher are ignored. The
// pusher that was active before becomes the previous one and shrinks.
func (w *World) Select(b *Box) bool {
	if b == nil || b.Role != RolePusher || b.ID == w.selected {
		return false
	}
	if w.selected != 0 {
		w.previous = w.selected
	}
	w.selected = b.ID
	w.growing = true
	return true
}

// --- Growth ---

// stepGrowth grows the selected pusher on each free axis and shrinks every
// other pusher back toward unit size.
func (w *World) stepGrowth() {
	w.growingAxis = [2]bool{}
	step := w.tuning.GrowthStep

	shrinking := false
	for _, p := range w.boxes[RolePusher] {
		if p.ID != w.selected && w.shrink(p, step) {
			shrinking = true
		}
	}

	sel := w.Selected()
	if sel == nil || !w.growing {
		return
	}
	grew := false
	for i, axis := range growthAxes {
		size := sel.Size.Axis(axis)
		if size >= w.tuning.MaxSize {
			continue
		}
		if w.CollisionBlocked(sel, axis, 1) || w.CollisionBlocked(sel, axis, -1) {
			continue
		}
		sel.Size = sel.Size.WithAxis(axis, math.Min(size+step, w.tuning.MaxSize))
		w.growingAxis[i] = true
		grew = true
	}

	// Idle once nothing can grow. A shrinking pusher may still free an axis,
	// so stay selected while one is shrinking.
	atMax := sel.Size.X >= w.tuning.MaxSize && sel.Size.Z >= w.tuning.MaxSize
	if atMax || (!grew && !shrinking) {
		w.growing = false
	}
}

// shrink reduces p by step on each growth axis still above unit size and
// reports whether anything changed.
func (w *World) shrink(p *Box, step float64) bool {
	changed := false
	for _, axis := range growthAxes {
		size := p.Size.Axis(axis)
		if size > w.tuning.UnitSize {
			p.Size = p.Size.WithAxis(axis, math.Max(size-step, w.tuning.UnitSize))
			changed = true
		}
	}
	return changed
}

// --- Input ---

// InputKind identifies a pointer event delivered to the world.
type InputKind uint8

const (
	InputPress     InputKind = iota // button pressed
	InputDragStart                  // movement exceeded the dead zone
	InputDrag                       // pointer moved while dragging
	InputDragEnd                    // button released after a drag
	InputClick                      // button released without dragging
)

// InputEvent is a pointer event in screen coordinates.
type InputEvent struct {
	Kind InputKind
	X, Y float64
}

// HandleInput applies one pointer event and returns the pusher it selected,
// or nil.
func (w *World) HandleInput(e InputEvent) *Box {
	pos := Vec2{X: e.X, Y: e.Y}
	switch e.Kind {
	case InputPress:
		w.panAnchor = pos
		w.pointer = pos
		w.clickBlocked = false
	case InputDragStart:
		w.panning = true
		w.clickBlocked = true
		w.pointer = pos
		w.orbit = nil
	case InputDrag:
		w.pointer = pos
	case InputDragEnd:
		w.pointer = pos
		if w.panning {
			w.turn()
		}
		w.panning = false
	case InputClick:
		w.panning = false
		if w.clickBlocked {
			return nil
		}
		if b := w.PickBox(e.X, e.Y); b != nil && w.Select(b) {
			return b
		}
	}
	return nil
}
