package isobox

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenColor or TweenAngles and call Update(dt) each tick.
//
// There is no global animation manager; the world updates the tint tweens it
// owns and the camera updates its own orbit tween.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenColor creates a TweenGroup that animates all four components of *c to
// the target color over the specified duration.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}

// TweenAngles creates a TweenGroup that animates pitch (X) and yaw (Y) of *a.
// Z is left alone.
func TweenAngles(a *Vec3, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(a.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(a.Y), float32(to.Y), duration, fn)
	g.fields[0] = &a.X
	g.fields[1] = &a.Y
	return g
}

// updateTints starts a tint tween on every pushable whose goal coverage
// changed and advances the running ones.
func (w *World) updateTints(dt float32) {
	dur := float32(w.tuning.CoverTweenSeconds)
	for _, b := range w.boxes[RolePushable] {
		target := Palette[RolePushable]
		if !b.Moving && w.covered(b) {
			target = ColorCovered
		}
		if target != b.tintTarget {
			b.tintTarget = target
			b.tween = TweenColor(&b.Tint, target, dur, ease.OutQuad)
		}
		if b.tween != nil {
			b.tween.Update(dt)
			if b.tween.Done {
				b.tween = nil
			}
		}
	}
}
