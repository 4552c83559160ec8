package isobox

// World is the simulation state of one level. It is created by NewWorld
// when a level starts and discarded when the level ends; nothing in it
// outlives the level.
//
// World is not safe for concurrent use. The Game that owns it applies every
// input event and tick from a single goroutine.
type World struct {
	tuning Tuning

	// Level is the grid the world was built from; LevelNumber is its index
	// in the level source.
	Level       Level
	LevelNumber int

	// Base is the floor plate under the level footprint. It is drawn but
	// takes no part in collisions.
	Base *Box

	boxes [roleCount][]*Box
	all   []*Box
	index map[BoxID]*Box

	// byRole lists every box grouped pusher, wall, pushable, goal. Boxes
	// that tie in depth keep this order, so a goal under a pushable is
	// drawn first.
	byRole []*Box

	// RenderOrder is the back-to-front draw sequence, including Base. It is
	// derived each tick and never authoritative.
	RenderOrder []*Box

	// Angles is the camera rotation. Z stays 0.
	Angles Vec3

	screenCenter Vec2

	// Drag state. pointer is the latest drag position; the camera turns by
	// pointer - panAnchor on the next tick.
	panning   bool
	panAnchor Vec2
	pointer   Vec2
	orbit     *TweenGroup

	// Selection state. IDs resolve through index; 0 means none.
	selected     BoxID
	previous     BoxID
	growing      bool
	growingAxis  [2]bool
	clickBlocked bool
}

// NewWorld builds the boxes for level. Boxes get IDs in scan order and their
// initial, unrotated projection around screenCenter.
func NewWorld(level Level, number int, tuning Tuning, screenCenter Vec2) *World {
	tuning = tuning.withDefaults()
	w := &World{
		tuning:       tuning,
		Level:        level,
		LevelNumber:  number,
		index:        make(map[BoxID]*Box),
		Angles:       Vec3{X: tuning.InitialPitch, Y: tuning.InitialYaw},
		screenCenter: screenCenter,
	}

	unit := Vec3{tuning.UnitSize, tuning.UnitSize, tuning.UnitSize}
	var next BoxID
	level.each(func(role Role, col, row int) {
		next++
		b := newBox(next, role, unit, level.cellCenter(col, row), tuning.ScreenScale, screenCenter)
		w.boxes[role] = append(w.boxes[role], b)
		w.all = append(w.all, b)
		w.index[b.ID] = b
	})

	for _, bs := range w.boxes {
		w.byRole = append(w.byRole, bs...)
	}

	// The base spans the whole footprint and sits just under the boxes.
	first := level.cellCenter(0, 0)
	last := level.cellCenter(level.Width()-1, level.Depth()-1)
	next++
	w.Base = newBox(next, RoleWall,
		Vec3{X: float64(level.Width()), Y: tuning.FloorThickness, Z: float64(level.Depth())},
		Vec3{
			X: (first.X + last.X) / 2,
			Y: -tuning.UnitSize/2 - tuning.FloorThickness/2,
			Z: (first.Z + last.Z) / 2,
		},
		tuning.ScreenScale, screenCenter)

	w.updateRenderOrder()
	return w
}

// Tuning returns the constants the world runs with.
func (w *World) Tuning() Tuning {
	return w.tuning
}

// Boxes returns the boxes of a role in level scan order. The returned slice
// MUST NOT be mutated.
func (w *World) Boxes(role Role) []*Box {
	return w.boxes[role]
}

// AllBoxes returns every box except Base in scan order. The returned slice
// MUST NOT be mutated.
func (w *World) AllBoxes() []*Box {
	return w.all
}

// Box returns the box with the given ID, or nil.
func (w *World) Box(id BoxID) *Box {
	return w.index[id]
}

// Selected returns the active pusher, or nil.
func (w *World) Selected() *Box {
	return w.index[w.selected]
}

// Previous returns the previously selected pusher, or nil.
func (w *World) Previous() *Box {
	return w.index[w.previous]
}

// Growing reports whether the selected pusher is still growing (the
// Selected state). False means Idle.
func (w *World) Growing() bool {
	return w.growing
}

// Panning reports whether a camera drag is in progress.
func (w *World) Panning() bool {
	return w.panning
}

// SetScreenCenter moves the projection center, e.g. after a window resize.
func (w *World) SetScreenCenter(c Vec2) {
	w.screenCenter = c
}

// updateRenderOrder re-ranks every box for the current camera and places
// the base plate at the front or back.
func (w *World) updateRenderOrder() {
	order := ComputeRenderOrder(w.byRole, w.Angles)
	if FloorDrawnLast(w.Angles) {
		order = append(order, w.Base)
	} else {
		order = append([]*Box{w.Base}, order...)
	}
	w.RenderOrder = order
}

// updateGeometry regenerates the corners and projection of every box in
// render order.
func (w *World) updateGeometry() {
	for _, b := range w.RenderOrder {
		b.updateGeometry(w.Angles, w.tuning.ScreenScale, w.screenCenter)
	}
}

// Step advances the world by one tick of dt seconds: re-rank, re-project,
// turn the camera, grow or shrink pushers, propagate pushes and fade tints.
// onProjected, if non-nil, runs right after projection so drawables can be
// rebuilt from fresh geometry.
func (w *World) Step(dt float32, onProjected func()) {
	w.updateRenderOrder()
	w.updateGeometry()
	if onProjected != nil {
		onProjected()
	}
	w.updateCamera(dt)
	w.stepGrowth()
	if sel := w.Selected(); sel != nil {
		w.propagatePush(sel, map[BoxID]bool{})
	}
	w.settleFinished()
	w.updateTints(dt)
}

// Busy reports whether anything is still changing without further input: a
// growing or shrinking pusher, a moving box or a camera animation.
func (w *World) Busy() bool {
	if w.growing || w.orbit != nil {
		return true
	}
	for _, p := range w.boxes[RolePusher] {
		if p.ID != w.selected && (p.Size.X > w.tuning.UnitSize || p.Size.Z > w.tuning.UnitSize) {
			return true
		}
	}
	for _, b := range w.boxes[RolePushable] {
		if b.Moving {
			return true
		}
	}
	return false
}
