package isobox

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the simulation and presentation constants. Zero fields are
// replaced by DefaultTuning values, so a tuning file only needs the keys it
// changes.
type Tuning struct {
	// GrowthStep is the per-tick size change of a growing or shrinking
	// pusher. Pushed boxes move at half this rate.
	GrowthStep float64 `yaml:"growth_step"`
	MaxSize    float64 `yaml:"max_size"`
	UnitSize   float64 `yaml:"unit_size"`

	ScreenScale     float64 `yaml:"screen_scale"`
	DragSensitivity float64 `yaml:"drag_sensitivity"`
	DragDeadZone    float64 `yaml:"drag_dead_zone"`
	InitialPitch    float64 `yaml:"initial_pitch"`
	InitialYaw      float64 `yaml:"initial_yaw"`

	MarkerRadius       float64 `yaml:"marker_radius"`
	EdgeWidth          float64 `yaml:"edge_width"`
	FloorThickness     float64 `yaml:"floor_thickness"`
	CoverTweenSeconds  float64 `yaml:"cover_tween_seconds"`
	CameraResetSeconds float64 `yaml:"camera_reset_seconds"`
	TPS                int     `yaml:"tps"`
}

// DefaultTuning returns the stock constants. The growth step is a power of
// two so sizes and centers stay exact in float64.
func DefaultTuning() Tuning {
	return Tuning{
		GrowthStep:         0.125,
		MaxSize:            3,
		UnitSize:           1,
		ScreenScale:        50,
		DragSensitivity:    0.01,
		DragDeadZone:       4,
		InitialPitch:       0.5,
		InitialYaw:         0.6,
		MarkerRadius:       2,
		EdgeWidth:          1,
		FloorThickness:     0.2,
		CoverTweenSeconds:  0.4,
		CameraResetSeconds: 0.6,
		TPS:                60,
	}
}

// withDefaults fills zero fields from DefaultTuning. Pitch and yaw are
// left alone since zero is a meaningful angle.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.GrowthStep <= 0 {
		t.GrowthStep = d.GrowthStep
	}
	if t.MaxSize <= 0 {
		t.MaxSize = d.MaxSize
	}
	if t.UnitSize <= 0 {
		t.UnitSize = d.UnitSize
	}
	if t.ScreenScale <= 0 {
		t.ScreenScale = d.ScreenScale
	}
	if t.DragSensitivity == 0 {
		t.DragSensitivity = d.DragSensitivity
	}
	if t.DragDeadZone <= 0 {
		t.DragDeadZone = d.DragDeadZone
	}
	if t.MarkerRadius <= 0 {
		t.MarkerRadius = d.MarkerRadius
	}
	if t.EdgeWidth <= 0 {
		t.EdgeWidth = d.EdgeWidth
	}
	if t.FloorThickness <= 0 {
		t.FloorThickness = d.FloorThickness
	}
	if t.CoverTweenSeconds <= 0 {
		t.CoverTweenSeconds = d.CoverTweenSeconds
	}
	if t.CameraResetSeconds <= 0 {
		t.CameraResetSeconds = d.CameraResetSeconds
	}
	if t.TPS <= 0 {
		t.TPS = d.TPS
	}
	return t
}

// validate rejects combinations the simulation cannot run with.
func (t Tuning) validate() error {
	if t.MaxSize < t.UnitSize {
		return fmt.Errorf("max_size %v is below unit_size %v", t.MaxSize, t.UnitSize)
	}
	if t.GrowthStep > t.MaxSize-t.UnitSize && t.MaxSize > t.UnitSize {
		return fmt.Errorf("growth_step %v exceeds the growth range %v", t.GrowthStep, t.MaxSize-t.UnitSize)
	}
	return nil
}

// ParseTuning decodes YAML tuning data and fills defaults.
func ParseTuning(raw []byte) (Tuning, error) {
	var t Tuning
	t.InitialPitch = DefaultTuning().InitialPitch
	t.InitialYaw = DefaultTuning().InitialYaw
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tuning{}, fmt.Errorf("tuning: %w", err)
	}
	t = t.withDefaults()
	if err := t.validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file.
func LoadTuning(path string) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, err
	}
	t, err := ParseTuning(raw)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
