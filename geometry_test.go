package isobox

import "testing"

func TestBuildCorners(t *testing.T) {
	c := BuildCorners(Vec3{2, 1, 4}, Vec3{1, 0, 0})
	assertVec3(t, "corner 0", c[0], Vec3{0, -0.5, 2})
	assertVec3(t, "corner 2", c[2], Vec3{2, 0.5, 2})
	assertVec3(t, "corner 4", c[4], Vec3{0, -0.5, -2})
	assertVec3(t, "corner 6", c[6], Vec3{2, 0.5, -2})
}

func TestBoxEdgesDifferInOneAxis(t *testing.T) {
	for i, e := range BoxEdges {
		a, b := cornerSigns[e[0]], cornerSigns[e[1]]
		diff := 0
		for k := range a {
			if a[k] != b[k] {
				diff++
			}
		}
		if diff != 1 {
			t.Errorf("edge %d %v: corners differ in %d axes, want 1", i, e, diff)
		}
	}
}

func TestBoxFacesArePlanar(t *testing.T) {
	for f, q := range BoxFaces {
		shared := 0
		for k := 0; k < 3; k++ {
			s := cornerSigns[q[0]][k]
			same := true
			for _, i := range q[1:] {
				if cornerSigns[i][k] != s {
					same = false
				}
			}
			if same {
				shared++
			}
		}
		if shared != 1 {
			t.Errorf("face %d %v: corners share %d axis signs, want 1", f, q, shared)
		}
	}
}

func TestFacePoints(t *testing.T) {
	var projected [8]Vec2
	for i := range projected {
		projected[i] = Vec2{X: float64(i)}
	}
	got := facePoints(&projected, 3)
	want := BoxFaces[3]
	for i := range got {
		if got[i].X != float64(want[i]) {
			t.Errorf("point %d = %v, want corner %d", i, got[i], want[i])
		}
	}
}
