package isobox

import (
	"math"
	"testing"
)

func boxesAt(centers ...Vec3) []*Box {
	out := make([]*Box, len(centers))
	for i, c := range centers {
		out[i] = &Box{ID: BoxID(i + 1), Center: c, Size: Vec3{1, 1, 1}}
	}
	return out
}

func centersOf(boxes []*Box) []Vec3 {
	out := make([]Vec3, len(boxes))
	for i, b := range boxes {
		out[i] = b.Center
	}
	return out
}

func TestComputeRenderOrderQuarterTurn(t *testing.T) {
	// At 90° yaw larger X is nearer, so boxes run in ascending X.
	boxes := boxesAt(Vec3{X: 2}, Vec3{X: -1}, Vec3{X: 0})
	got := centersOf(ComputeRenderOrder(boxes, Vec3{Y: math.Pi / 2}))
	want := []Vec3{{X: -1}, {X: 0}, {X: 2}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestComputeRenderOrderFront(t *testing.T) {
	// At 0° yaw larger Z is further away.
	boxes := boxesAt(Vec3{Z: -1}, Vec3{Z: 2}, Vec3{Z: 0})
	got := centersOf(ComputeRenderOrder(boxes, Vec3{}))
	want := []Vec3{{Z: 2}, {Z: 0}, {Z: -1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestComputeRenderOrderSecondaryAxis(t *testing.T) {
	// Same X at 60° yaw: the Z axis breaks the tie, descending.
	boxes := boxesAt(Vec3{Z: -1}, Vec3{Z: 1})
	got := centersOf(ComputeRenderOrder(boxes, Vec3{Y: math.Pi / 3}))
	if got[0] != (Vec3{Z: 1}) || got[1] != (Vec3{Z: -1}) {
		t.Errorf("order = %v, want Z=1 first", got)
	}

	// Past 90° the tie break flips.
	got = centersOf(ComputeRenderOrder(boxes, Vec3{Y: 2 * math.Pi / 3}))
	if got[0] != (Vec3{Z: -1}) || got[1] != (Vec3{Z: 1}) {
		t.Errorf("order = %v, want Z=-1 first", got)
	}
}

func TestComputeRenderOrderExactAngles(t *testing.T) {
	// The secondary axis flips only once yaw is strictly past the angle.
	tests := []struct {
		name  string
		yaw   float64
		boxes []Vec3
		want  []Vec3
	}{
		{"90", deg90, []Vec3{{Z: 0}, {Z: 1}}, []Vec3{{Z: 1}, {Z: 0}}},
		{"180", deg180, []Vec3{{X: 0}, {X: 1}}, []Vec3{{X: 0}, {X: 1}}},
		{"270", deg270, []Vec3{{Z: 1}, {Z: 0}}, []Vec3{{Z: 0}, {Z: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := centersOf(ComputeRenderOrder(boxesAt(tt.boxes...), Vec3{Y: tt.yaw}))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestComputeRenderOrderTiesDrawLaterFirst(t *testing.T) {
	boxes := boxesAt(Vec3{X: 1, Z: 1}, Vec3{X: 1, Z: 1})
	for _, yaw := range []float64{0, deg90, deg180, deg270} {
		got := ComputeRenderOrder(boxes, Vec3{Y: yaw})
		if got[0] != boxes[1] || got[1] != boxes[0] {
			t.Errorf("yaw %v: tied boxes not reversed", yaw)
		}
	}
}

func TestDepthRuleBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		yaw     float64
		primary Axis
		desc    bool
	}{
		{"0", 0, AxisZ, true},
		{"just below 45", deg45 - 1e-9, AxisZ, true},
		{"45", deg45, AxisX, false},
		{"135", deg135, AxisZ, false},
		{"225", deg225, AxisX, true},
		{"315", deg315, AxisZ, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := depthRuleFor(tt.yaw)
			if r.primary != tt.primary || r.primaryDesc != tt.desc {
				t.Errorf("depthRuleFor(%v) = %+v, want primary %v desc %v", tt.yaw, r, tt.primary, tt.desc)
			}
		})
	}
}

func TestComputeRenderOrderIdempotent(t *testing.T) {
	var centers []Vec3
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			centers = append(centers, Vec3{X: float64((x * 3) % 5), Z: float64(z)})
		}
	}
	boxes := boxesAt(centers...)
	for _, yaw := range []float64{0, 0.6, 2, 3.5, 5, -1} {
		angles := Vec3{X: 0.5, Y: yaw}
		once := ComputeRenderOrder(boxes, angles)
		twice := ComputeRenderOrder(once, angles)
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("yaw %v: order changed on second pass at %d", yaw, i)
			}
		}
	}
}

func TestComputeRenderOrderLeavesInputAlone(t *testing.T) {
	boxes := boxesAt(Vec3{Z: -1}, Vec3{Z: 1})
	first := boxes[0]
	_ = ComputeRenderOrder(boxes, Vec3{})
	if boxes[0] != first {
		t.Error("input slice was reordered")
	}
}

func TestComputeRenderOrderNormalizesYaw(t *testing.T) {
	boxes := boxesAt(Vec3{X: 2}, Vec3{X: -1}, Vec3{X: 0}, Vec3{Z: 1})
	a := ComputeRenderOrder(boxes, Vec3{Y: 1})
	b := ComputeRenderOrder(boxes, Vec3{Y: 1 - 4*math.Pi})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("orders differ at %d", i)
		}
	}
}

func TestFloorDrawnLast(t *testing.T) {
	tests := []struct {
		name   string
		angles Vec3
		want   bool
	}{
		{"default view", Vec3{X: 0.5, Y: 0.6}, false},
		{"from below, front", Vec3{X: 4, Y: 0.6}, true},
		{"from above, back", Vec3{X: 0.5, Y: math.Pi}, true},
		{"from below, back", Vec3{X: 4, Y: math.Pi}, false},
		{"negative pitch wraps below", Vec3{X: -0.5, Y: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloorDrawnLast(tt.angles); got != tt.want {
				t.Errorf("FloorDrawnLast(%+v) = %v, want %v", tt.angles, got, tt.want)
			}
		})
	}
}
