package camera

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestClampCenter(t *testing.T) {
	cases := []struct {
		name         string
		x, z         float64
		radius       float64
		wantX, wantZ float64
	}{
		{"inside", 3, -4, 10, 3, -4},
		{"positive_edge", 50, 12, 10, 12, 12},
		{"negative_edge", -50, -12.5, 10, -12, -12},
		{"independent_axes", 100, 0, 4, 6, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, z := ClampCenter(c.x, c.z, c.radius, PanMargin)
			if x != c.wantX || z != c.wantZ {
				t.Fatalf("expected (%v,%v), got (%v,%v)", c.wantX, c.wantZ, x, z)
			}
		})
	}
}

func TestApplyInertia(t *testing.T) {
	cases := []struct {
		name       string
		velocity   cp.Vector
		dt         float64
		wantCenter cp.Vector
		wantVel    cp.Vector
	}{
		{"decays", cp.Vector{X: 2, Y: -4}, 0.1, cp.Vector{X: 0.2, Y: -0.4}, cp.Vector{X: 0.5, Y: -1}},
		{"below_floor_snaps", cp.Vector{X: 0.015, Y: -0.015}, 0.001, cp.Vector{X: 0.000015, Y: -0.000015}, cp.Vector{}},
		{"large_step_stops", cp.Vector{X: 3, Y: 3}, 1, cp.Vector{X: 3, Y: 3}, cp.Vector{}},
		{"zero_step", cp.Vector{X: 1, Y: 0.01}, 0, cp.Vector{}, cp.Vector{X: 1, Y: 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			center, vel := ApplyInertia(InertiaStep{
				Velocity:        c.velocity,
				DeltaSeconds:    c.dt,
				Damping:         DragDamping,
				MinimumVelocity: MinimumVelocity,
			})
			if math.Abs(center.X-c.wantCenter.X) > 1e-9 || math.Abs(center.Y-c.wantCenter.Y) > 1e-9 {
				t.Fatalf("center: expected %v, got %v", c.wantCenter, center)
			}
			if math.Abs(vel.X-c.wantVel.X) > 1e-9 || math.Abs(vel.Y-c.wantVel.Y) > 1e-9 {
				t.Fatalf("velocity: expected %v, got %v", c.wantVel, vel)
			}
		})
	}
}

func TestApplyInertiaFloorIsExactZero(t *testing.T) {
	for _, dt := range []float64{0, 0.001, 0.016, 0.5, 2} {
		_, vel := ApplyInertia(InertiaStep{
			Velocity:        cp.Vector{X: 0.015, Y: 0.015},
			DeltaSeconds:    dt,
			Damping:         DragDamping,
			MinimumVelocity: MinimumVelocity,
		})
		if vel.X != 0 || vel.Y != 0 {
			t.Fatalf("dt=%v: expected exact zero velocity, got %v", dt, vel)
		}
	}
}

func TestBuildPinchGesture(t *testing.T) {
	g := BuildPinchGesture(Point{X: 10, Y: 20}, Point{X: 13, Y: 24})
	if g.Distance != 5 {
		t.Fatalf("expected distance 5, got %v", g.Distance)
	}
	if g.MidX != 11.5 || g.MidY != 22 {
		t.Fatalf("expected midpoint (11.5,22), got (%v,%v)", g.MidX, g.MidY)
	}

	g = BuildPinchGesture(Point{X: 7, Y: 7}, Point{X: 7, Y: 7})
	if g.Distance != 0 || g.MidX != 7 || g.MidY != 7 {
		t.Fatalf("collapsed touches: got %+v", g)
	}
}
