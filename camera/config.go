package camera

import (
	"time"

	"github.com/G9Pedro/colony-game-sub001/projection"
	"github.com/jakecoffman/cp"
)

// Tuned interaction constants.
const (
	PanMargin       = 2.0
	DragDamping     = 7.5
	MinimumVelocity = 0.02
	PinchZoomScale  = 0.0022
	ClickThreshold  = 5.0
	CenterEpsilon   = 1e-4
	MinWorldRadius  = 4.0

	// MinDragElapsed floors the time between drag samples.
	MinDragElapsed = time.Millisecond
)

// Config describes a camera at construction time.
type Config struct {
	TileWidth   float64
	TileHeight  float64
	Zoom        float64
	MinZoom     float64
	MaxZoom     float64
	WorldRadius float64

	PanMargin       float64
	Damping         float64
	MinimumVelocity float64
	PinchScale      float64
	ClickThreshold  float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TileWidth:       64,
		TileHeight:      32,
		Zoom:            1,
		MinZoom:         0.5,
		MaxZoom:         3,
		WorldRadius:     24,
		PanMargin:       PanMargin,
		Damping:         DragDamping,
		MinimumVelocity: MinimumVelocity,
		PinchScale:      PinchZoomScale,
		ClickThreshold:  ClickThreshold,
	}
}

// normalized replaces non-positive fields with the defaults and orders the
// zoom range.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.TileWidth <= 0 {
		c.TileWidth = def.TileWidth
	}
	if c.TileHeight <= 0 {
		c.TileHeight = def.TileHeight
	}
	if c.MinZoom <= 0 {
		c.MinZoom = def.MinZoom
	}
	if c.MaxZoom <= 0 {
		c.MaxZoom = def.MaxZoom
	}
	if c.MaxZoom < c.MinZoom {
		c.MinZoom, c.MaxZoom = c.MaxZoom, c.MinZoom
	}
	if c.Zoom <= 0 {
		c.Zoom = def.Zoom
	}
	c.Zoom = clamp(c.Zoom, c.MinZoom, c.MaxZoom)
	if c.WorldRadius < MinWorldRadius {
		c.WorldRadius = MinWorldRadius
	}
	if c.PanMargin <= 0 {
		c.PanMargin = def.PanMargin
	}
	if c.Damping <= 0 {
		c.Damping = def.Damping
	}
	if c.MinimumVelocity <= 0 {
		c.MinimumVelocity = def.MinimumVelocity
	}
	if c.PinchScale <= 0 {
		c.PinchScale = def.PinchScale
	}
	if c.ClickThreshold <= 0 {
		c.ClickThreshold = def.ClickThreshold
	}
	return c
}

// Projector maps between world and screen space for a view.
type Projector interface {
	WorldToScreen(x, z float64, v projection.View) (float64, float64)
	ScreenToWorld(sx, sy float64, v projection.View) (float64, float64)
	ScreenDeltaToWorld(dx, dy float64, v projection.View) (float64, float64, bool)
}

// ZoomPolicy computes the next zoom level from a zoom delta.
type ZoomPolicy interface {
	Next(zoom, delta, minZoom, maxZoom float64) float64
}

// InertiaModel advances the center by one frame of drift.
type InertiaModel interface {
	Step(center, velocity cp.Vector, dt float64) (cp.Vector, cp.Vector)
}

// Clock supplies the monotonic time used to measure drag speed.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Option customizes a Camera.
type Option func(*Camera)

func WithClock(c Clock) Option {
	return func(cam *Camera) {
		if c != nil {
			cam.clock = c
		}
	}
}

func WithProjector(p Projector) Option {
	return func(cam *Camera) {
		if p != nil {
			cam.projector = p
		}
	}
}

func WithZoomPolicy(z ZoomPolicy) Option {
	return func(cam *Camera) {
		if z != nil {
			cam.zoomPolicy = z
		}
	}
}

func WithInertia(m InertiaModel) Option {
	return func(cam *Camera) {
		if m != nil {
			cam.inertia = m
		}
	}
}
