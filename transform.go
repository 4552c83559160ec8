package isobox

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cameraRotation composes the camera rotation for the given angles.
//
// Composition order:
//
//	RotateX -> RotateY -> RotateZ
//
// so the matrix is Rz * Ry * Rx and X is applied to the point first.
func cameraRotation(angles Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DZ(angles.Z).Mul3(mgl64.Rotate3DY(angles.Y)).Mul3(mgl64.Rotate3DX(angles.X))
}

// rotate applies rot to p.
func rotate(rot mgl64.Mat3, p Vec3) Vec3 {
	return vec3From(rot.Mul3x1(p.vec()))
}

// Rotate applies the camera rotation for angles to p.
func Rotate(p Vec3, angles Vec3) Vec3 {
	return rotate(cameraRotation(angles), p)
}

// screenTransform builds the affine matrix that maps rotated X/Y onto the
// screen: scale, flip Y so world up is screen up, then translate to center.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
func screenTransform(scale float64, center Vec2) [6]float64 {
	return [6]float64{scale, 0, 0, -scale, center.X, center.Y}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Project rotates each corner by angles, drops Z (orthographic) and maps the
// result onto the screen with the given scale and center.
func Project(points [8]Vec3, angles Vec3, scale float64, center Vec2) [8]Vec2 {
	return projectWith(points, cameraRotation(angles), screenTransform(scale, center))
}

// ProjectFlat maps points onto the screen without any rotation. Used for the
// first placement of a freshly created box.
func ProjectFlat(points [8]Vec3, scale float64, center Vec2) [8]Vec2 {
	return projectWith(points, mgl64.Ident3(), screenTransform(scale, center))
}

func projectWith(points [8]Vec3, rot mgl64.Mat3, screen [6]float64) [8]Vec2 {
	var out [8]Vec2
	for i, p := range points {
		r := rotate(rot, p)
		x, y := transformPoint(screen, r.X, r.Y)
		out[i] = Vec2{X: x, Y: y}
	}
	return out
}

// normalizeAngle wraps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// Mod can return exactly 2π after the correction for tiny negatives.
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
