package camera

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Point is a screen or world position.
type Point struct {
	X float64
	Y float64
}

// Pinch is the geometry of a two-finger gesture.
type Pinch struct {
	Distance float64
	MidX     float64
	MidY     float64
}

// ClampCenter keeps each axis within worldRadius+panMargin of the origin.
func ClampCenter(x, z, worldRadius, panMargin float64) (float64, float64) {
	limit := worldRadius + panMargin
	return clamp(x, -limit, limit), clamp(z, -limit, limit)
}

// InertiaStep is the input to a single inertia integration step. Center and
// Velocity use X for world x and Y for world z.
type InertiaStep struct {
	Center          cp.Vector
	Velocity        cp.Vector
	DeltaSeconds    float64
	Damping         float64
	MinimumVelocity float64
}

// ApplyInertia advances the center by the velocity and decays the velocity.
// Components that fall below MinimumVelocity snap to zero.
func ApplyInertia(s InertiaStep) (center, velocity cp.Vector) {
	center = s.Center.Add(s.Velocity.Mult(s.DeltaSeconds))
	velocity = s.Velocity.Mult(math.Max(0, 1-s.Damping*s.DeltaSeconds))
	if math.Abs(velocity.X) < s.MinimumVelocity {
		velocity.X = 0
	}
	if math.Abs(velocity.Y) < s.MinimumVelocity {
		velocity.Y = 0
	}
	return center, velocity
}

// DampedInertia is the default InertiaModel.
type DampedInertia struct {
	Damping         float64
	MinimumVelocity float64
}

func (d DampedInertia) Step(center, velocity cp.Vector, dt float64) (cp.Vector, cp.Vector) {
	return ApplyInertia(InertiaStep{
		Center:          center,
		Velocity:        velocity,
		DeltaSeconds:    dt,
		Damping:         d.Damping,
		MinimumVelocity: d.MinimumVelocity,
	})
}

// BuildPinchGesture returns the distance and midpoint between two touches.
func BuildPinchGesture(a, b Point) Pinch {
	va := cp.Vector{X: a.X, Y: a.Y}
	vb := cp.Vector{X: b.X, Y: b.Y}
	mid := va.Lerp(vb, 0.5)
	return Pinch{Distance: va.Distance(vb), MidX: mid.X, MidY: mid.Y}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
