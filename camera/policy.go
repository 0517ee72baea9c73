package camera

import (
	"math"
	"time"

	"github.com/G9Pedro/colony-game-sub001/projection"
)

// ZoomStep scales zoom multiplicatively by (1-delta) and clamps the result.
func ZoomStep(zoom, delta, minZoom, maxZoom float64) float64 {
	return clamp(zoom*(1-delta), minZoom, maxZoom)
}

// MultiplicativeZoom is the default ZoomPolicy.
type MultiplicativeZoom struct{}

func (MultiplicativeZoom) Next(zoom, delta, minZoom, maxZoom float64) float64 {
	return ZoomStep(zoom, delta, minZoom, maxZoom)
}

// VelocityFromScreenDelta converts a drag of (dx, dy) pixels over elapsed
// into a world velocity in units per second. The world moves opposite to the
// drag, so the result is negated.
func VelocityFromScreenDelta(p Projector, dx, dy float64, elapsed time.Duration, v projection.View) (float64, float64) {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0, 0
	}
	wx, wz, ok := p.ScreenDeltaToWorld(dx, dy, v)
	if !ok {
		return 0, 0
	}
	return -wx / seconds, -wz / seconds
}

// DidCenterMove reports whether either axis moved by more than epsilon.
func DidCenterMove(before, after Point, epsilon float64) bool {
	return math.Abs(after.X-before.X) > epsilon || math.Abs(after.Y-before.Y) > epsilon
}

// IsDragClick reports whether a drag was short enough to count as a tap.
func IsDragClick(distance, threshold float64) bool {
	return distance < threshold
}
