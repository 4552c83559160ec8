package isobox

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("crlf", "www\r\nwrw\r\nwbw\r\n\r\n  \n")
	if err != nil {
		t.Fatal(err)
	}
	if l.Depth() != 3 || l.Width() != 3 {
		t.Errorf("size = %dx%d, want 3x3", l.Width(), l.Depth())
	}
	if l.Rows[1] != "wrw" {
		t.Errorf("row 1 = %q, want carriage returns stripped", l.Rows[1])
	}
}

func TestParseLevelEmpty(t *testing.T) {
	_, err := ParseLevel("blank", "   \n  x \n")
	if !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("err = %v, want ErrEmptyLevel", err)
	}
}

func TestLevelWidthUsesLongestRow(t *testing.T) {
	l := Level{Rows: []string{"w", "wrbg", "ww"}}
	if l.Width() != 4 {
		t.Errorf("Width = %d, want 4", l.Width())
	}
}

func TestCellCenter(t *testing.T) {
	l := Level{Rows: []string{"wwwww", "wrbgw", "wwwww"}}
	tests := []struct {
		col, row int
		want     Vec3
	}{
		{0, 0, Vec3{X: -2, Z: -1}},
		{2, 1, Vec3{}},
		{4, 2, Vec3{X: 2, Z: 1}},
	}
	for _, tt := range tests {
		assertVec3(t, "cellCenter", l.cellCenter(tt.col, tt.row), tt.want)
	}
}

func TestLevelEachSkipsUnknownCells(t *testing.T) {
	l := Level{Rows: []string{"r.x", " bg", "W w"}}
	var roles []Role
	l.each(func(r Role, _, _ int) { roles = append(roles, r) })
	want := []Role{RolePusher, RolePushable, RoleGoal, RoleWall}
	if len(roles) != len(want) {
		t.Fatalf("roles = %v, want %v", roles, want)
	}
	for i := range want {
		if roles[i] != want[i] {
			t.Errorf("role %d = %v, want %v", i, roles[i], want[i])
		}
	}
}

func TestParseLevelPack(t *testing.T) {
	raw := []byte(`
levels:
  - name: one
    rows: ["wrbgw"]
  - name: two
    rows:
      - "r b g"
`)
	pack, err := ParseLevelPack(raw)
	if err != nil {
		t.Fatal(err)
	}
	if pack.Count() != 2 {
		t.Fatalf("Count = %d, want 2", pack.Count())
	}
	l, err := pack.Level(1)
	if err != nil || l.Name != "two" {
		t.Errorf("Level(1) = %+v, %v", l, err)
	}
	if _, err := pack.Level(2); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Level(2) err = %v, want ErrLevelNotFound", err)
	}
}

func TestParseLevelPackErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad yaml", "levels: [unclosed"},
		{"no levels", "levels: []"},
		{"empty level", "levels:\n  - name: x\n    rows: ['   ']\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevelPack([]byte(tt.raw)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTextLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"lv/b.txt":     {Data: []byte("rbg\n")},
		"lv/a.txt":     {Data: []byte("wrw\n")},
		"lv/notes.md":  {Data: []byte("ignored")},
		"lv/sub/c.txt": {Data: []byte("r")},
	}
	src, err := NewTextLevels(fsys, "lv")
	if err != nil {
		t.Fatal(err)
	}
	if src.Count() != 2 {
		t.Fatalf("Count = %d, want 2", src.Count())
	}
	l, err := src.Level(0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "a" || l.Rows[0] != "wrw" {
		t.Errorf("Level(0) = %+v, want a.txt first", l)
	}
	if _, err := src.Level(-1); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Level(-1) err = %v", err)
	}
}

func TestNewTextLevelsEmptyDir(t *testing.T) {
	fsys := fstest.MapFS{"lv/readme": {Data: []byte("x")}}
	if _, err := NewTextLevels(fsys, "lv"); err == nil {
		t.Error("expected error for a directory without levels")
	}
}

func TestDefaultLevelsMatchTextLevels(t *testing.T) {
	pack := DefaultLevels()
	text := DefaultTextLevels()
	if pack.Count() != 3 || text.Count() != pack.Count() {
		t.Fatalf("counts = %d, %d, want 3", pack.Count(), text.Count())
	}
	for i := 0; i < pack.Count(); i++ {
		a, _ := pack.Level(i)
		b, err := text.Level(i)
		if err != nil {
			t.Fatal(err)
		}
		if len(a.Rows) != len(b.Rows) {
			t.Fatalf("level %d: %d rows vs %d", i, len(a.Rows), len(b.Rows))
		}
		for r := range a.Rows {
			if a.Rows[r] != b.Rows[r] {
				t.Errorf("level %d row %d: %q vs %q", i, r, a.Rows[r], b.Rows[r])
			}
		}
	}
}
