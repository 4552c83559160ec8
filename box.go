package isobox

import "math"

// BoxID identifies a box within one level. IDs are assigned in level scan
// order starting at 1; 0 means "no box".
type BoxID uint32

// Box is a single puzzle cube. Size and Center are authoritative; Corners
// and Projected are regenerated from them every tick.
type Box struct {
	ID     BoxID
	Role   Role
	Size   Vec3
	Center Vec3

	// Moving is set while the box is being pushed; Movement is its per-tick
	// displacement.
	Moving   bool
	Movement Vec3

	Corners   [8]Vec3
	Projected [8]Vec2

	// Tint is the current display color. It starts at the role's palette
	// entry and may be tweened (e.g. when a pushable covers a goal).
	Tint Color

	pushedBy   BoxID
	pushAxis   Axis
	tintTarget Color
	tween      *TweenGroup
}

// newBox creates a box and computes its initial, unrotated geometry.
func newBox(id BoxID, role Role, size, center Vec3, scale float64, screen Vec2) *Box {
	b := &Box{
		ID:     id,
		Role:   role,
		Size:   size,
		Center: center,
		Tint:   Palette[role],
	}
	b.tintTarget = b.Tint
	b.Corners = BuildCorners(size, center)
	b.Projected = ProjectFlat(b.Corners, scale, screen)
	return b
}

// updateGeometry regenerates the corners and projected points.
func (b *Box) updateGeometry(angles Vec3, scale float64, screen Vec2) {
	b.Corners = BuildCorners(b.Size, b.Center)
	b.Projected = Project(b.Corners, angles, scale, screen)
}

// half returns half of the box's extent along a.
func (b *Box) half(a Axis) float64 {
	return b.Size.Axis(a) / 2
}

// occupies reports whether the grid cell centered on cell lies within the
// box's horizontal footprint at the box's height.
func (b *Box) occupies(cell Vec3) bool {
	for _, a := range growthAxes {
		if math.Abs(cell.Axis(a)-b.Center.Axis(a)) >= b.half(a)+occupyEpsilon {
			return false
		}
	}
	return math.Abs(cell.Y-b.Center.Y) < b.half(AxisY)
}

// settle stops the box and snaps its horizontal center to the grid.
func (b *Box) settle() {
	b.Moving = false
	b.Movement = Vec3{}
	b.pushedBy = 0
	b.Center.X = math.Round(b.Center.X)
	b.Center.Z = math.Round(b.Center.Z)
}

const occupyEpsilon = 1e-9

