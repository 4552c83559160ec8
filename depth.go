package isobox

import "math"

const (
	deg45  = math.Pi / 4
	deg90  = math.Pi / 2
	deg135 = 3 * math.Pi / 4
	deg180 = math.Pi
	deg225 = 5 * math.Pi / 4
	deg270 = 3 * math.Pi / 2
	deg315 = 7 * math.Pi / 4
)

// depthRule is the painter's comparator for one octant of camera yaw. A
// descending axis means larger coordinates are further from the camera.
type depthRule struct {
	primary       Axis
	primaryDesc   bool
	secondaryDesc bool
}

// depthRuleFor picks the comparator for a yaw already normalized to [0, 2π).
// Every octant is half-open: >= lower, < upper. The secondary axis flips
// strictly past 90°, 180° and 270°.
func depthRuleFor(yaw float64) depthRule {
	switch {
	case yaw >= deg45 && yaw < deg135:
		return depthRule{primary: AxisX, primaryDesc: false, secondaryDesc: yaw <= deg90}
	case yaw >= deg135 && yaw < deg225:
		return depthRule{primary: AxisZ, primaryDesc: false, secondaryDesc: yaw > deg180}
	case yaw >= deg225 && yaw < deg315:
		return depthRule{primary: AxisX, primaryDesc: true, secondaryDesc: yaw > deg270}
	default:
		return depthRule{primary: AxisZ, primaryDesc: true, secondaryDesc: yaw >= deg315}
	}
}

// nearness maps a coordinate to a value that grows toward the camera.
func nearness(v float64, desc bool) float64 {
	if desc {
		return -v
	}
	return v
}

// inFrontOf reports whether a is strictly closer to the camera than b.
func (r depthRule) inFrontOf(a, b *Box) bool {
	pa := nearness(a.Center.Axis(r.primary), r.primaryDesc)
	pb := nearness(b.Center.Axis(r.primary), r.primaryDesc)
	if pa != pb {
		return pa > pb
	}
	sec := r.primary.cross()
	sa := nearness(a.Center.Axis(sec), r.secondaryDesc)
	sb := nearness(b.Center.Axis(sec), r.secondaryDesc)
	return sa > sb
}

// ComputeRenderOrder returns boxes ordered back to front for the camera yaw
// in angles. Each box is inserted after every already placed box it is in
// front of, so of two tied boxes the later one is drawn first. The input
// slice is not modified.
func ComputeRenderOrder(boxes []*Box, angles Vec3) []*Box {
	rule := depthRuleFor(normalizeAngle(angles.Y))
	order := make([]*Box, 0, len(boxes))
	for _, b := range boxes {
		pos := 0
		for _, placed := range order {
			if rule.inFrontOf(b, placed) {
				pos++
			}
		}
		order = append(order, nil)
		copy(order[pos+1:], order[pos:])
		order[pos] = b
	}
	return order
}

// FloorDrawnLast reports whether the base plate must be drawn after every box
// instead of before them.
func FloorDrawnLast(angles Vec3) bool {
	pitch := normalizeAngle(angles.X)
	yaw := normalizeAngle(angles.Y)
	front := yaw <= deg90 || yaw >= deg270
	return (pitch > math.Pi && front) || (pitch < math.Pi && !front)
}
