package isobox

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type primKind uint8

const (
	primPolygon primKind = iota
	primLine
	primMarker
)

// primitive is one retained drawable.
type primitive struct {
	kind   primKind
	paint  Paint
	points []Vec2
	alive  bool
}

// EbitenSurface is a retained Surface that draws onto an ebiten image.
// Polygons are fan-triangulated and filled with DrawTriangles on a shared
// white pixel; lines and markers use the vector package.
//
// Handles carry a generation so a handle from a cleared frame never resolves
// to a newer drawable at the same slot.
type EbitenSurface struct {
	EdgeWidth    float64
	MarkerRadius float64

	prims []primitive
	live  int
	gen   uint32

	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenSurface creates an empty surface.
func NewEbitenSurface(edgeWidth, markerRadius float64) *EbitenSurface {
	return &EbitenSurface{EdgeWidth: edgeWidth, MarkerRadius: markerRadius}
}

func (s *EbitenSurface) add(p primitive) Handle {
	p.alive = true
	s.prims = append(s.prims, p)
	s.live++
	return Handle(uint64(s.gen)<<32 | uint64(len(s.prims)))
}

// resolve maps a handle to its live primitive, or nil.
func (s *EbitenSurface) resolve(h Handle) *primitive {
	if uint32(h>>32) != s.gen {
		return nil
	}
	idx := int(uint32(h))
	if idx < 1 || idx > len(s.prims) {
		return nil
	}
	p := &s.prims[idx-1]
	if !p.alive {
		return nil
	}
	return p
}

// DrawPolygon implements Surface.
func (s *EbitenSurface) DrawPolygon(p Paint, points []Vec2) Handle {
	return s.add(primitive{kind: primPolygon, paint: p, points: append([]Vec2(nil), points...)})
}

// DrawLine implements Surface.
func (s *EbitenSurface) DrawLine(p Paint, a, b Vec2) Handle {
	return s.add(primitive{kind: primLine, paint: p, points: []Vec2{a, b}})
}

// DrawMarker implements Surface.
func (s *EbitenSurface) DrawMarker(p Paint, at Vec2) Handle {
	return s.add(primitive{kind: primMarker, paint: p, points: []Vec2{at}})
}

// Destroy implements Surface. Once every drawable is destroyed the slots are
// recycled and the generation advances.
func (s *EbitenSurface) Destroy(h Handle) {
	p := s.resolve(h)
	if p == nil {
		return
	}
	p.alive = false
	p.points = nil
	s.live--
	if s.live == 0 {
		s.prims = s.prims[:0]
		s.gen++
	}
}

// Len returns the number of live drawables.
func (s *EbitenSurface) Len() int {
	return s.live
}

// HitTest implements Surface.
func (s *EbitenSurface) HitTest(h Handle, x, y float64) bool {
	p := s.resolve(h)
	if p == nil {
		return false
	}
	switch p.kind {
	case primPolygon:
		return HitPolygon{Points: p.points}.Contains(x, y)
	case primLine:
		return segmentDistance(p.points[0], p.points[1], x, y) <= math.Max(s.EdgeWidth/2, 1)
	default:
		dx, dy := x-p.points[0].X, y-p.points[0].Y
		return dx*dx+dy*dy <= s.MarkerRadius*s.MarkerRadius
	}
}

// segmentDistance returns the distance from (x, y) to segment ab.
func segmentDistance(a, b Vec2, x, y float64) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = math.Max(0, math.Min(1, ((x-a.X)*dx+(y-a.Y)*dy)/l2))
	}
	px, py := a.X+t*dx-x, a.Y+t*dy-y
	return math.Sqrt(px*px + py*py)
}

// edgeColor and markerColor derive stroke colors from a paint.
func edgeColor(p Paint) color.RGBA   { return p.Tint.shade(0.35).toRGBA() }
func markerColor(p Paint) color.RGBA { return p.Tint.shade(0.2).toRGBA() }

// Draw renders every live drawable in creation order.
func (s *EbitenSurface) Draw(dst *ebiten.Image) {
	white := ensureWhitePixel()
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	for i := range s.prims {
		p := &s.prims[i]
		if !p.alive {
			continue
		}
		switch p.kind {
		case primPolygon:
			s.verts, s.inds = buildPolygonFan(s.verts[:0], s.inds[:0], p.points, p.paint.Tint)
			if len(s.inds) > 0 {
				dst.DrawTriangles(s.verts, s.inds, white, &op)
			}
		case primLine:
			a, b := p.points[0], p.points[1]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
				float32(s.EdgeWidth), edgeColor(p.paint), true)
		case primMarker:
			c := p.points[0]
			vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(s.MarkerRadius),
				markerColor(p.paint), true)
		}
	}
}

// buildPolygonFan appends vertices and indices for a fan-triangulated convex
// polygon filled with c. N vertices, 3*(N-2) indices.
func buildPolygonFan(verts []ebiten.Vertex, inds []uint16, points []Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}
	a := float32(clamp01(c.A))
	r := float32(clamp01(c.R)) * a
	g := float32(clamp01(c.G)) * a
	b := float32(clamp01(c.B)) * a
	base := uint16(len(verts))
	for _, p := range points {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	// Fan triangulation: the first vertex is the hub.
	for i := 0; i < n-2; i++ {
		inds = append(inds, base, base+uint16(i+1), base+uint16(i+2))
	}
	return verts, inds
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel lazily creates the shared 1x1 white source image for
// untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
