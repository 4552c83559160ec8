package isobox

// Corner indexing contract shared by the transform pipeline, the draw list
// and hit testing:
//
//	0-3: face at +Z/2, winding (-x,-y) (+x,-y) (+x,+y) (-x,+y)
//	4-7: same X/Y pattern at -Z/2
const cornerCount = 8

// BoxEdges lists the 12 edges of a box as corner index pairs.
var BoxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxFaces lists the 6 faces of a box as corner index quads: the two caps
// followed by the four side quads (p, p+1, p+1+4, p+4).
var BoxFaces = [6][4]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// cornerSigns holds the per-axis offset sign of each corner.
var cornerSigns = [cornerCount][3]float64{
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
}

// BuildCorners returns the 8 corners of the axis-aligned box with the given
// full size centered on center, in the fixed corner order.
func BuildCorners(size, center Vec3) [8]Vec3 {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	var out [8]Vec3
	for i, s := range cornerSigns {
		out[i] = Vec3{
			X: center.X + s[0]*hx,
			Y: center.Y + s[1]*hy,
			Z: center.Z + s[2]*hz,
		}
	}
	return out
}

// facePoints gathers the projected points of face f.
func facePoints(projected *[8]Vec2, f int) []Vec2 {
	q := BoxFaces[f]
	return []Vec2{projected[q[0]], projected[q[1]], projected[q[2]], projected[q[3]]}
}
