package isobox

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or extent in world space. Y is vertical; the puzzle grid
// lies on the X/Z plane.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func vec3From(m mgl64.Vec3) Vec3 {
	return Vec3{X: m[0], Y: m[1], Z: m[2]}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return vec3From(v.vec().Add(o.vec()))
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return vec3From(v.vec().Mul(s))
}

// Axis returns the component selected by a.
func (v Vec3) Axis(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// WithAxis returns a copy of v with the component selected by a set to val.
func (v Vec3) WithAxis(a Axis, val float64) Vec3 {
	switch a {
	case AxisX:
		v.X = val
	case AxisY:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// Vec2 is a screen-space point in pixels. Y increases downward.
type Vec2 struct {
	X, Y float64
}

// Axis names a world axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// cross returns the other horizontal axis. Only meaningful for AxisX and AxisZ.
func (a Axis) cross() Axis {
	if a == AxisX {
		return AxisZ
	}
	return AxisX
}

// growthAxes are the axes a pusher grows along.
var growthAxes = [2]Axis{AxisX, AxisZ}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// shade returns c with its RGB components multiplied by f.
func (c Color) shade(f float64) Color {
	return Color{clamp01(c.R * f), clamp01(c.G * f), clamp01(c.B * f), c.A}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Role identifies what a box does in the puzzle. The role also picks the
// box's tint, so it is both gameplay and presentation.
type Role uint8

const (
	RolePusher   Role = iota // grows when clicked (red)
	RoleWall                 // immovable obstacle (white)
	RolePushable             // displaced by growth (blue)
	RoleGoal                 // target cell for a pushable (green)

	roleCount = 4
)

// String returns the role's level-file name.
func (r Role) String() string {
	switch r {
	case RolePusher:
		return "pusher"
	case RoleWall:
		return "wall"
	case RolePushable:
		return "pushable"
	case RoleGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Palette maps roles to their tints.
var Palette = [roleCount]Color{
	RolePusher:   {R: 0.86, G: 0.24, B: 0.24, A: 1},
	RoleWall:     {R: 0.92, G: 0.92, B: 0.92, A: 1},
	RolePushable: {R: 0.25, G: 0.45, B: 0.9, A: 1},
	RoleGoal:     {R: 0.3, G: 0.82, B: 0.42, A: 1},
}

// ColorCovered is the tint a pushable fades to once it rests on a goal.
var ColorCovered = Color{R: 0.55, G: 0.35, B: 0.85, A: 1}

// ColorBackground clears the screen before each frame.
var ColorBackground = Color{R: 0.137, G: 0.118, B: 0.176, A: 1}

// EventType identifies a kind of game event.
type EventType uint8

const (
	EventSelect        EventType = iota // a pusher became the active grower
	EventLevelComplete                  // every goal is covered
)
