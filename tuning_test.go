package isobox

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTuningPartial(t *testing.T) {
	tuning, err := ParseTuning([]byte("growth_step: 0.25\nscreen_scale: 64\n"))
	if err != nil {
		t.Fatal(err)
	}
	d := DefaultTuning()
	if tuning.GrowthStep != 0.25 || tuning.ScreenScale != 64 {
		t.Errorf("overrides lost: %+v", tuning)
	}
	if tuning.MaxSize != d.MaxSize || tuning.TPS != d.TPS || tuning.CoverTweenSeconds != d.CoverTweenSeconds {
		t.Errorf("defaults not filled: %+v", tuning)
	}
	if tuning.InitialPitch != d.InitialPitch || tuning.InitialYaw != d.InitialYaw {
		t.Errorf("camera angles = %v, %v, want defaults", tuning.InitialPitch, tuning.InitialYaw)
	}
}

func TestParseTuningZeroAngles(t *testing.T) {
	tuning, err := ParseTuning([]byte("initial_pitch: 0\ninitial_yaw: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tuning.InitialPitch != 0 || tuning.InitialYaw != 0 {
		t.Errorf("explicit zero angles replaced: %v, %v", tuning.InitialPitch, tuning.InitialYaw)
	}
}

func TestParseTuningInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad yaml", "growth_step: [1"},
		{"max below unit", "max_size: 0.5\nunit_size: 1\n"},
		{"step too large", "growth_step: 4\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTuning([]byte(tt.raw)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("tps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	if tuning.TPS != 30 {
		t.Errorf("TPS = %d, want 30", tuning.TPS)
	}
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWithDefaultsKeepsSetFields(t *testing.T) {
	in := Tuning{GrowthStep: 0.5, DragSensitivity: -0.02}
	out := in.withDefaults()
	if out.GrowthStep != 0.5 || out.DragSensitivity != -0.02 {
		t.Errorf("withDefaults = %+v", out)
	}
	if out.UnitSize != 1 || out.FloorThickness != DefaultTuning().FloorThickness {
		t.Errorf("zero fields not filled: %+v", out)
	}
}
