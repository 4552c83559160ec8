package isobox

import (
	"github.com/tanema/gween/ease"
)

// The camera is an orbit around the world origin described by World.Angles:
// X is pitch, Y is yaw and Z stays 0. Pointer drags turn it directly;
// OrbitTo animates it.

// OrbitTo animates the camera to the given pitch and yaw over duration
// seconds. A drag started while the animation runs cancels it.
func (w *World) OrbitTo(pitch, yaw float64, duration float32, easeFn ease.TweenFunc) {
	w.orbit = TweenAngles(&w.Angles, Vec3{X: pitch, Y: yaw}, duration, easeFn)
}

// ResetCamera animates the camera back to the initial pitch and yaw. The
// current angles are first wrapped into [0, 2π) so the camera takes the
// short way home after several full turns.
func (w *World) ResetCamera() {
	w.Angles.X = unwrapToward(normalizeAngle(w.Angles.X), w.tuning.InitialPitch)
	w.Angles.Y = unwrapToward(normalizeAngle(w.Angles.Y), w.tuning.InitialYaw)
	w.OrbitTo(w.tuning.InitialPitch, w.tuning.InitialYaw,
		float32(w.tuning.CameraResetSeconds), ease.InOutQuad)
}

// Orbiting reports whether an OrbitTo animation is running.
func (w *World) Orbiting() bool {
	return w.orbit != nil
}

// unwrapToward shifts a by whole turns so it lies within π of target.
func unwrapToward(a, target float64) float64 {
	for a-target > deg180 {
		a -= 2 * deg180
	}
	for target-a > deg180 {
		a += 2 * deg180
	}
	return a
}

// updateCamera applies the orbit animation and turns pointer movement since
// the last tick into yaw and pitch.
func (w *World) updateCamera(dt float32) {
	if w.orbit != nil {
		w.orbit.Update(dt)
		if w.orbit.Done {
			w.orbit = nil
		}
	}
	if w.panning {
		w.turn()
	}
}

// turn rotates the camera by the pointer movement since the anchor and
// moves the anchor to the pointer.
func (w *World) turn() {
	dx := w.pointer.X - w.panAnchor.X
	dy := w.pointer.Y - w.panAnchor.Y
	w.Angles.Y += dx * w.tuning.DragSensitivity
	w.Angles.X += dy * w.tuning.DragSensitivity
	w.panAnchor = w.pointer
}
