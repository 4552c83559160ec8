package isobox

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Handle identifies one drawable owned by a Surface. The zero Handle is
// never returned by a Surface and is safe to Destroy.
type Handle uint64

// Paint tags a drawable with the role it belongs to and the box's current
// tint. Surfaces derive fill, edge and marker colors from it.
type Paint struct {
	Role Role
	Tint Color
}

// Surface turns projected points into drawables. Drawables are drawn in the
// order they were created and live until destroyed.
type Surface interface {
	// DrawPolygon creates a filled convex polygon.
	DrawPolygon(p Paint, points []Vec2) Handle
	// DrawLine creates a line segment from a to b.
	DrawLine(p Paint, a, b Vec2) Handle
	// DrawMarker creates a small filled dot at at.
	DrawMarker(p Paint, at Vec2) Handle
	// Destroy releases a drawable. Unknown or stale handles are ignored.
	Destroy(h Handle)
	// HitTest reports whether the screen point (x, y) lies on the drawable.
	HitTest(h Handle, x, y float64) bool
}

// faceShade darkens each face of a box so the cube reads as a solid: the
// two caps, then the four sides in BoxFaces order.
var faceShade = [6]float64{1, 0.55, 0.85, 0.7, 0.8, 0.65}

// boxDrawables is everything drawn for one box in one tick.
type boxDrawables struct {
	faces   [6]Handle
	edges   [12]Handle
	markers [8]Handle
}

// drawList owns the drawables of every box, keyed by BoxID. It is cleared and
// refilled from scratch each tick; drawables are never patched in place.
type drawList struct {
	surface Surface
	boxes   map[BoxID]*boxDrawables
	order   []BoxID
}

func newDrawList(s Surface) *drawList {
	return &drawList{surface: s, boxes: make(map[BoxID]*boxDrawables)}
}

// clear destroys every drawable.
func (d *drawList) clear() {
	for _, id := range d.order {
		bd := d.boxes[id]
		for _, h := range bd.faces {
			d.surface.Destroy(h)
		}
		for _, h := range bd.edges {
			d.surface.Destroy(h)
		}
		for _, h := range bd.markers {
			d.surface.Destroy(h)
		}
		delete(d.boxes, id)
	}
	d.order = d.order[:0]
}

// rebuild destroys the previous drawables and creates faces, edges and
// markers for every box in render order. Within a box, faces are drawn far
// to near so the visible ones end up on top.
func (d *drawList) rebuild(order []*Box, angles Vec3) {
	d.clear()
	rot := cameraRotation(angles)
	for _, b := range order {
		bd := &boxDrawables{}
		paint := Paint{Role: b.Role, Tint: b.Tint}

		for i, f := range faceDrawOrder(b, rot) {
			fp := Paint{Role: b.Role, Tint: b.Tint.shade(faceShade[f])}
			bd.faces[i] = d.surface.DrawPolygon(fp, facePoints(&b.Projected, f))
		}
		for i, e := range BoxEdges {
			bd.edges[i] = d.surface.DrawLine(paint, b.Projected[e[0]], b.Projected[e[1]])
		}
		for i, p := range b.Projected {
			bd.markers[i] = d.surface.DrawMarker(paint, p)
		}

		d.boxes[b.ID] = bd
		d.order = append(d.order, b.ID)
	}
}

// faceDrawOrder returns the face indices of b sorted far to near. After
// rotation the viewer looks down -Z, so a larger rotated Z is nearer.
func faceDrawOrder(b *Box, rot mgl64.Mat3) [6]int {
	var depth [6]float64
	var idx [6]int
	for f, q := range BoxFaces {
		var c Vec3
		for _, i := range q {
			c = c.Add(b.Corners[i])
		}
		depth[f] = rotate(rot, c.Scale(0.25)).Z
		idx[f] = f
	}
	sort.SliceStable(idx[:], func(i, j int) bool {
		return depth[idx[i]] < depth[idx[j]]
	})
	return idx
}

// pick returns the topmost box whose face drawables contain (x, y), or 0.
// skip is never picked.
func (d *drawList) pick(x, y float64, skip BoxID) BoxID {
	for i := len(d.order) - 1; i >= 0; i-- {
		id := d.order[i]
		if id == skip {
			continue
		}
		for _, h := range d.boxes[id].faces {
			if d.surface.HitTest(h, x, y) {
				return id
			}
		}
	}
	return 0
}

// count returns the number of live drawables.
func (d *drawList) count() int {
	return len(d.order) * (6 + 12 + 8)
}
