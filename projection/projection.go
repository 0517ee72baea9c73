// Package projection maps between isometric world coordinates and screen
// pixels.
package projection

// View is the camera state needed to project a point.
type View struct {
	CenterX    float64
	CenterZ    float64
	Width      float64
	Height     float64
	Zoom       float64
	TileWidth  float64
	TileHeight float64
}

// TilePixelScale returns the on-screen size of one tile at the given zoom.
func TilePixelScale(zoom, tileWidth, tileHeight float64) (float64, float64) {
	return tileWidth * zoom, tileHeight * zoom
}

// HalfTileSize returns half the on-screen tile footprint.
func HalfTileSize(zoom, tileWidth, tileHeight float64) (float64, float64) {
	w, h := TilePixelScale(zoom, tileWidth, tileHeight)
	return w / 2, h / 2
}

// WorldToScreenPoint projects world (x, z) onto the screen.
func WorldToScreenPoint(x, z float64, v View) (float64, float64) {
	halfW, halfH := HalfTileSize(v.Zoom, v.TileWidth, v.TileHeight)
	dx := x - v.CenterX
	dz := z - v.CenterZ
	isoX := dx - dz
	isoY := dx + dz
	return v.Width/2 + isoX*halfW, v.Height/2 + isoY*halfH
}

// ScreenToWorldPoint is the inverse of WorldToScreenPoint. A non-positive
// scale yields the view center.
func ScreenToWorldPoint(sx, sy float64, v View) (float64, float64) {
	halfW, halfH := HalfTileSize(v.Zoom, v.TileWidth, v.TileHeight)
	if halfW <= 0 || halfH <= 0 {
		return v.CenterX, v.CenterZ
	}
	isoX := (sx - v.Width/2) / halfW
	isoY := (sy - v.Height/2) / halfH
	return v.CenterX + (isoX+isoY)/2, v.CenterZ + (isoY-isoX)/2
}

// ScreenDeltaToWorldDelta converts a screen-space movement into a world-space
// movement at the view's tile scale. ok is false when the scale is
// degenerate and the delta must be ignored.
func ScreenDeltaToWorldDelta(dx, dy float64, v View) (wx, wz float64, ok bool) {
	sw, sh := TilePixelScale(v.Zoom, v.TileWidth, v.TileHeight)
	if sw <= 0 || sh <= 0 {
		return 0, 0, false
	}
	ix := dx / sw
	iy := dy / sh
	return (ix + iy) / 2, (iy - ix) / 2, true
}

// Isometric is the default diamond projection.
type Isometric struct{}

func (Isometric) WorldToScreen(x, z float64, v View) (float64, float64) {
	return WorldToScreenPoint(x, z, v)
}

func (Isometric) ScreenToWorld(sx, sy float64, v View) (float64, float64) {
	return ScreenToWorldPoint(sx, sy, v)
}

func (Isometric) ScreenDeltaToWorld(dx, dy float64, v View) (float64, float64, bool) {
	return ScreenDeltaToWorldDelta(dx, dy, v)
}
