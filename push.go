package isobox

import "math"

const (
	// cellProbe nudges a face coordinate into the neighboring cell so that
	// rounding picks the cell the face is about to enter.
	cellProbe = 1e-6
	// alignEpsilon is the tolerance for "same row" comparisons.
	alignEpsilon = 1e-9
)

// axisSlot maps a growth axis to its index in growthAxes.
func axisSlot(a Axis) int {
	if a == AxisX {
		return 0
	}
	return 1
}

// neighborCell returns the center of the first grid cell past b's face along
// axis in direction dir (+1 or -1), on b's row.
func neighborCell(b *Box, axis Axis, dir int) Vec3 {
	d := float64(dir)
	face := b.Center.Axis(axis) + d*b.half(axis)
	cross := axis.cross()
	cell := b.Center.WithAxis(axis, math.Round(face+d*cellProbe))
	return cell.WithAxis(cross, math.Round(b.Center.Axis(cross)))
}

// occupantAt returns the first box in scan order, other than the excluded
// ones, whose footprint covers cell. Goals are floor markers and never
// occupy a cell.
func (w *World) occupantAt(cell Vec3, exclude map[BoxID]bool) *Box {
	for _, b := range w.all {
		if b.Role == RoleGoal || exclude[b.ID] {
			continue
		}
		if b.occupies(cell) {
			return b
		}
	}
	return nil
}

// CollisionBlocked reports whether b is blocked along axis in direction dir
// (+1 or -1). A Wall or Pusher in the neighboring cell blocks; a Pushable
// defers to whatever lies beyond it; an empty cell does not block.
func (w *World) CollisionBlocked(b *Box, axis Axis, dir int) bool {
	return w.collisionBlocked(b, axis, dir, map[BoxID]bool{})
}

func (w *World) collisionBlocked(b *Box, axis Axis, dir int, visited map[BoxID]bool) bool {
	visited[b.ID] = true
	next := w.occupantAt(neighborCell(b, axis, dir), visited)
	if next == nil {
		return false
	}
	switch next.Role {
	case RoleWall, RolePusher:
		return true
	case RolePushable:
		return w.collisionBlocked(next, axis, dir, visited)
	default:
		return false
	}
}

// aligned reports whether a and b share a row along axis: same height and
// same coordinate on the cross axis.
func aligned(a, b *Box, axis Axis) bool {
	cross := axis.cross()
	return math.Abs(a.Center.Axis(cross)-b.Center.Axis(cross)) < alignEpsilon &&
		math.Abs(a.Center.Y-b.Center.Y) < alignEpsilon
}

// rootContact reports whether the growing pusher p touches the resting box b
// and, if so, along which axis and in which direction b must move.
//
// b must be aligned with p on one axis and exactly one unit away on the other,
// and p must have grown past one unit along that other axis this tick.
func (w *World) rootContact(p, b *Box) (Axis, float64, bool) {
	for i, axis := range growthAxes {
		if !w.growingAxis[i] || p.Size.Axis(axis) <= w.tuning.UnitSize {
			continue
		}
		if !aligned(p, b, axis) {
			continue
		}
		delta := b.Center.Axis(axis) - p.Center.Axis(axis)
		if math.Abs(math.Abs(delta)-w.tuning.UnitSize) < alignEpsilon {
			return axis, math.Copysign(1, delta), true
		}
	}
	return 0, 0, false
}

// chainContact reports whether the moving box m has run into the resting
// box b: same row, b ahead of m and closer than one unit.
func chainContact(m, b *Box, unit float64) bool {
	axis := m.pushAxis
	if !aligned(m, b, axis) {
		return false
	}
	ahead := (b.Center.Axis(axis) - m.Center.Axis(axis)) * math.Copysign(1, m.Movement.Axis(axis))
	return ahead > 0 && ahead < unit-alignEpsilon
}

// propagatePush starts pushes caused by pushing, advances every box it is
// currently pushing and recurses so pushed boxes can push further boxes.
func (w *World) propagatePush(pushing *Box, visited map[BoxID]bool) {
	visited[pushing.ID] = true
	for _, b := range w.boxes[RolePushable] {
		if visited[b.ID] {
			continue
		}
		if !b.Moving {
			var axis Axis
			var sign float64
			switch {
			case pushing.Role == RolePusher:
				var ok bool
				if axis, sign, ok = w.rootContact(pushing, b); !ok {
					continue
				}
			case pushing.Moving && chainContact(pushing, b, w.tuning.UnitSize):
				axis = pushing.pushAxis
				sign = math.Copysign(1, pushing.Movement.Axis(axis))
			default:
				continue
			}
			b.Moving = true
			b.pushedBy = pushing.ID
			b.pushAxis = axis
			b.Movement = Vec3{}.WithAxis(axis, sign*w.tuning.GrowthStep/2)
		}
		if b.pushedBy != pushing.ID {
			continue
		}
		b.Center = b.Center.Add(b.Movement)
		w.propagatePush(b, visited)
	}
}

// pushFinished reports whether src no longer drives a push along axis.
// A pusher stops when it is deselected, reaches maximum size or did not grow
// this tick; a pushed box stops when it is no longer moving.
func (w *World) pushFinished(src *Box, axis Axis) bool {
	if src.Role != RolePusher {
		return !src.Moving
	}
	return src.ID != w.selected ||
		!w.growingAxis[axisSlot(axis)] ||
		src.Size.Axis(axis) >= w.tuning.MaxSize
}

// settleFinished stops every moving box whose pusher has stopped, along
// with everything it was pushing in turn.
func (w *World) settleFinished() {
	for _, b := range w.boxes[RolePushable] {
		if !b.Moving {
			continue
		}
		src := w.index[b.pushedBy]
		if src == nil || w.pushFinished(src, b.pushAxis) {
			w.settleChain(b)
		}
	}
}

// settleChain settles b and, recursively, the boxes b was pushing.
func (w *World) settleChain(b *Box) {
	id := b.ID
	b.settle()
	for _, o := range w.boxes[RolePushable] {
		if o.Moving && o.pushedBy == id {
			w.settleChain(o)
		}
	}
}

// AllGoalsCovered reports whether every goal's center equals some pushable's
// center. A level without goals is trivially covered.
func (w *World) AllGoalsCovered() bool {
	for _, g := range w.boxes[RoleGoal] {
		if w.pushableOn(g) == nil {
			return false
		}
	}
	return true
}

// Won reports whether the level has goals and all of them are covered.
func (w *World) Won() bool {
	return len(w.boxes[RoleGoal]) > 0 && w.AllGoalsCovered()
}

// pushableOn returns the pushable whose center equals g's, or nil.
func (w *World) pushableOn(g *Box) *Box {
	for _, b := range w.boxes[RolePushable] {
		if b.Center == g.Center {
			return b
		}
	}
	return nil
}

// covered reports whether b rests exactly on some goal.
func (w *World) covered(b *Box) bool {
	for _, g := range w.boxes[RoleGoal] {
		if g.Center == b.Center {
			return true
		}
	}
	return false
}
