package projection

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-4
}

func TestWorldScreenRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		x, z float64
		v    View
	}{
		{"origin", 0, 0, View{Width: 800, Height: 600, Zoom: 1, TileWidth: 64, TileHeight: 32}},
		{"offset_center", 3.25, -7.5, View{CenterX: 1.5, CenterZ: -2, Width: 1280, Height: 720, Zoom: 1, TileWidth: 64, TileHeight: 32}},
		{"zoomed_in", -12.1, 4.4, View{CenterX: -3, CenterZ: 9, Width: 320, Height: 240, Zoom: 2.75, TileWidth: 64, TileHeight: 32}},
		{"zoomed_out", 100, 100, View{CenterX: 24, CenterZ: -24, Width: 1, Height: 1, Zoom: 0.05, TileWidth: 48, TileHeight: 24}},
		{"odd_tiles", 0.333, 0.777, View{Width: 997, Height: 501, Zoom: 1.3, TileWidth: 37, TileHeight: 11}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sx, sy := WorldToScreenPoint(c.x, c.z, c.v)
			x, z := ScreenToWorldPoint(sx, sy, c.v)
			if !near(x, c.x) || !near(z, c.z) {
				t.Fatalf("round trip (%v,%v) -> (%v,%v) -> (%v,%v)", c.x, c.z, sx, sy, x, z)
			}
		})
	}
}

func TestWorldToScreenCenterMapsToViewportCenter(t *testing.T) {
	v := View{CenterX: 5, CenterZ: -3, Width: 800, Height: 600, Zoom: 1, TileWidth: 64, TileHeight: 32}
	sx, sy := WorldToScreenPoint(5, -3, v)
	if sx != 400 || sy != 300 {
		t.Fatalf("expected (400,300), got (%v,%v)", sx, sy)
	}

	// one step along +x moves right and down by half a tile
	sx, sy = WorldToScreenPoint(6, -3, v)
	if sx != 432 || sy != 316 {
		t.Fatalf("expected (432,316), got (%v,%v)", sx, sy)
	}
}

func TestScreenToWorldDegenerateScale(t *testing.T) {
	cases := []struct {
		name string
		v    View
	}{
		{"zero_zoom", View{CenterX: 2, CenterZ: 3, Width: 100, Height: 100, Zoom: 0, TileWidth: 64, TileHeight: 32}},
		{"negative_zoom", View{CenterX: 2, CenterZ: 3, Width: 100, Height: 100, Zoom: -1, TileWidth: 64, TileHeight: 32}},
		{"zero_tile_height", View{CenterX: 2, CenterZ: 3, Width: 100, Height: 100, Zoom: 1, TileWidth: 64, TileHeight: 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, z := ScreenToWorldPoint(10, 90, c.v)
			if x != 2 || z != 3 {
				t.Fatalf("expected center (2,3), got (%v,%v)", x, z)
			}
			if _, _, ok := ScreenDeltaToWorldDelta(10, 10, c.v); ok {
				t.Fatalf("expected no delta for degenerate scale")
			}
		})
	}
}

func TestScreenDeltaToWorldDelta(t *testing.T) {
	v := View{Width: 800, Height: 600, Zoom: 1, TileWidth: 64, TileHeight: 32}
	wx, wz, ok := ScreenDeltaToWorldDelta(64, 0, v)
	if !ok {
		t.Fatalf("expected delta")
	}
	if !near(wx, 0.5) || !near(wz, -0.5) {
		t.Fatalf("expected (0.5,-0.5), got (%v,%v)", wx, wz)
	}

	wx, wz, _ = ScreenDeltaToWorldDelta(0, 32, v)
	if !near(wx, 0.5) || !near(wz, 0.5) {
		t.Fatalf("expected (0.5,0.5), got (%v,%v)", wx, wz)
	}

	v.Zoom = 2
	wx, wz, _ = ScreenDeltaToWorldDelta(64, 0, v)
	if !near(wx, 0.25) || !near(wz, -0.25) {
		t.Fatalf("expected zoom to halve the delta, got (%v,%v)", wx, wz)
	}
}
