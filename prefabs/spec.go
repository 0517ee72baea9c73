package prefabs

import (
	"errors"
	"fmt"

	"github.com/G9Pedro/colony-game-sub001/camera"
	"gopkg.in/yaml.v3"
)

// CameraFile is the prefab holding the camera tuning.
const CameraFile = "camera.yaml"

type TileSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ZoomSpec struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

type InertiaSpec struct {
	Damping         float64 `yaml:"damping"`
	MinimumVelocity float64 `yaml:"minimum_velocity"`
}

type GestureSpec struct {
	PinchScale     float64 `yaml:"pinch_scale"`
	ClickThreshold float64 `yaml:"click_threshold"`
}

type CameraSpec struct {
	Name        string      `yaml:"name"`
	Tile        TileSpec    `yaml:"tile"`
	Zoom        ZoomSpec    `yaml:"zoom"`
	WorldRadius float64     `yaml:"world_radius"`
	PanMargin   float64     `yaml:"pan_margin"`
	Inertia     InertiaSpec `yaml:"inertia"`
	Gestures    GestureSpec `yaml:"gestures"`
	Tour        string      `yaml:"tour"`
}

var (
	ErrZoomRange = errors.New("zoom.min must not exceed zoom.max")
	ErrNegative  = errors.New("negative value")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", CameraFile, err)
	}
	return &spec, nil
}

// Validate rejects tunings that cannot be normalized sensibly. Zero fields
// are allowed and fall back to the camera defaults.
func (s CameraSpec) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"tile.width", s.Tile.Width},
		{"tile.height", s.Tile.Height},
		{"zoom.initial", s.Zoom.Initial},
		{"zoom.min", s.Zoom.Min},
		{"zoom.max", s.Zoom.Max},
		{"world_radius", s.WorldRadius},
		{"pan_margin", s.PanMargin},
		{"inertia.damping", s.Inertia.Damping},
		{"inertia.minimum_velocity", s.Inertia.MinimumVelocity},
		{"gestures.pinch_scale", s.Gestures.PinchScale},
		{"gestures.click_threshold", s.Gestures.ClickThreshold},
	}
	for _, f := range fields {
		if f.v < 0 {
			return fmt.Errorf("%s: %w", f.name, ErrNegative)
		}
	}
	if s.Zoom.Min > 0 && s.Zoom.Max > 0 && s.Zoom.Min > s.Zoom.Max {
		return ErrZoomRange
	}
	return nil
}

// Config converts the spec into camera tuning.
func (s CameraSpec) Config() camera.Config {
	return camera.Config{
		TileWidth:       s.Tile.Width,
		TileHeight:      s.Tile.Height,
		Zoom:            s.Zoom.Initial,
		MinZoom:         s.Zoom.Min,
		MaxZoom:         s.Zoom.Max,
		WorldRadius:     s.WorldRadius,
		PanMargin:       s.PanMargin,
		Damping:         s.Inertia.Damping,
		MinimumVelocity: s.Inertia.MinimumVelocity,
		PinchScale:      s.Gestures.PinchScale,
		ClickThreshold:  s.Gestures.ClickThreshold,
	}
}
