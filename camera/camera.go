// Package camera owns the isometric view: center, zoom, inertial drift and
// the drag and pinch gestures that drive them.
package camera

import (
	"math"
	"time"

	"github.com/G9Pedro/colony-game-sub001/projection"
	"github.com/jakecoffman/cp"
)

// Gesture is the input currently owning the camera.
type Gesture int

const (
	GestureIdle Gesture = iota
	GestureDragging
	GesturePinching
)

func (g Gesture) String() string {
	switch g {
	case GestureDragging:
		return "dragging"
	case GesturePinching:
		return "pinching"
	default:
		return "idle"
	}
}

// Tile is an integer grid cell.
type Tile struct {
	X int
	Z int
}

// TileRect is an inclusive range of tiles.
type TileRect struct {
	MinX, MinZ int
	MaxX, MaxZ int
}

// State is a read-only snapshot of the camera for overlays and minimaps.
type State struct {
	CenterX     float64
	CenterZ     float64
	Zoom        float64
	TileWidth   float64
	TileHeight  float64
	Width       int
	Height      int
	WorldRadius float64
}

// DragResult reports how a drag ended.
type DragResult struct {
	WasClick bool
}

type pinchState struct {
	active   bool
	distance float64
	midX     float64
	midY     float64
}

// Camera is not safe for concurrent use; it is owned by one input/render loop.
type Camera struct {
	cfg Config

	width   int
	height  int
	centerX float64
	centerZ float64
	zoom    float64

	// velocity is the inertial drift in world units per second (X=x, Y=z).
	velocity cp.Vector

	dragging     bool
	lastX        float64
	lastY        float64
	lastDragAt   time.Time
	dragDistance float64
	// dragVelocity is handed to velocity when the drag is released.
	dragVelocity cp.Vector

	pinch pinchState

	clock      Clock
	projector  Projector
	zoomPolicy ZoomPolicy
	inertia    InertiaModel
}

// New creates a camera centered on the world origin with a 1x1 viewport.
func New(cfg Config, opts ...Option) *Camera {
	cfg = cfg.normalized()
	c := &Camera{
		cfg:        cfg,
		width:      1,
		height:     1,
		zoom:       cfg.Zoom,
		clock:      SystemClock,
		projector:  projection.Isometric{},
		zoomPolicy: MultiplicativeZoom{},
		inertia:    DampedInertia{Damping: cfg.Damping, MinimumVelocity: cfg.MinimumVelocity},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the active tuning.
func (c *Camera) Config() Config {
	return c.cfg
}

// Tune swaps in new tuning. The current zoom and center are kept and
// re-clamped to the new limits.
func (c *Camera) Tune(cfg Config) {
	cfg = cfg.normalized()
	if _, ok := c.inertia.(DampedInertia); ok {
		c.inertia = DampedInertia{Damping: cfg.Damping, MinimumVelocity: cfg.MinimumVelocity}
	}
	c.cfg = cfg
	c.zoom = clamp(c.zoom, cfg.MinZoom, cfg.MaxZoom)
	c.clampCenter()
}

// SetViewport updates the viewport size in pixels. Sizes below 1 become 1.
func (c *Camera) SetViewport(w, h int) {
	c.width = max(1, w)
	c.height = max(1, h)
}

// SetWorldRadius updates the pannable half-extent and re-clamps the center.
func (c *Camera) SetWorldRadius(r float64) {
	c.cfg.WorldRadius = math.Max(MinWorldRadius, r)
	c.clampCenter()
}

func (c *Camera) view() projection.View {
	return projection.View{
		CenterX:    c.centerX,
		CenterZ:    c.centerZ,
		Width:      float64(c.width),
		Height:     float64(c.height),
		Zoom:       c.zoom,
		TileWidth:  c.cfg.TileWidth,
		TileHeight: c.cfg.TileHeight,
	}
}

func (c *Camera) WorldToScreen(x, z float64) (float64, float64) {
	return c.projector.WorldToScreen(x, z, c.view())
}

func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return c.projector.ScreenToWorld(sx, sy, c.view())
}

// WorldToTile rounds a world point to the nearest tile, halves rounding up.
func (c *Camera) WorldToTile(x, z float64) Tile {
	return Tile{X: roundHalfUp(x), Z: roundHalfUp(z)}
}

func (c *Camera) ScreenToTile(sx, sy float64) Tile {
	return c.WorldToTile(c.ScreenToWorld(sx, sy))
}

// VisibleTiles returns the tiles touched by the viewport, padded by one.
func (c *Camera) VisibleTiles() TileRect {
	w, h := float64(c.width), float64(c.height)
	corners := [4]Point{{0, 0}, {w, 0}, {0, h}, {w, h}}
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, z := c.ScreenToWorld(p.X, p.Y)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minZ, maxZ = math.Min(minZ, z), math.Max(maxZ, z)
	}
	return TileRect{
		MinX: int(math.Floor(minX)) - 1,
		MinZ: int(math.Floor(minZ)) - 1,
		MaxX: int(math.Ceil(maxX)) + 1,
		MaxZ: int(math.Ceil(maxZ)) + 1,
	}
}

// PanByScreenDelta moves the view so the world follows a screen drag.
func (c *Camera) PanByScreenDelta(dx, dy float64) {
	wx, wz, ok := c.projector.ScreenDeltaToWorld(dx, dy, c.view())
	if !ok {
		return
	}
	c.centerX -= wx
	c.centerZ -= wz
	c.clampCenter()
}

// ZoomAt changes zoom by delta while keeping the world point under (sx, sy)
// fixed on screen.
func (c *Camera) ZoomAt(delta, sx, sy float64) {
	bx, bz := c.ScreenToWorld(sx, sy)
	c.zoom = c.zoomPolicy.Next(c.zoom, delta, c.cfg.MinZoom, c.cfg.MaxZoom)
	ax, az := c.ScreenToWorld(sx, sy)
	c.centerX += bx - ax
	c.centerZ += bz - az
	c.clampCenter()
}

// StartDrag grabs the camera at (x, y), cancelling any inertia. It returns
// false and does nothing while a pinch owns the camera.
func (c *Camera) StartDrag(x, y float64) bool {
	if c.pinch.active {
		return false
	}
	c.dragging = true
	c.lastX = x
	c.lastY = y
	c.lastDragAt = c.clock.Now()
	c.dragDistance = 0
	c.dragVelocity = cp.Vector{}
	c.velocity = cp.Vector{}
	return true
}

// DragTo pans by the movement since the last drag sample.
func (c *Camera) DragTo(x, y float64) {
	if !c.dragging {
		return
	}
	now := c.clock.Now()
	elapsed := now.Sub(c.lastDragAt)
	if elapsed < MinDragElapsed {
		elapsed = MinDragElapsed
	}

	dx := x - c.lastX
	dy := y - c.lastY
	c.dragDistance += math.Hypot(dx, dy)

	before := Point{X: c.centerX, Y: c.centerZ}
	view := c.view()
	c.PanByScreenDelta(dx, dy)

	vx, vz := VelocityFromScreenDelta(c.projector, dx, dy, elapsed, view)
	if !DidCenterMove(before, Point{X: c.centerX, Y: c.centerZ}, CenterEpsilon) {
		vx, vz = 0, 0
	}
	c.dragVelocity = cp.Vector{X: vx, Y: vz}

	c.lastX = x
	c.lastY = y
	c.lastDragAt = now
}

// EndDrag releases the camera and hands the last drag velocity to inertia.
func (c *Camera) EndDrag() DragResult {
	if !c.dragging {
		return DragResult{}
	}
	c.dragging = false
	c.velocity = c.dragVelocity
	c.dragVelocity = cp.Vector{}
	return DragResult{WasClick: IsDragClick(c.dragDistance, c.cfg.ClickThreshold)}
}

func (c *Camera) cancelDrag() {
	c.dragging = false
	c.dragDistance = 0
	c.dragVelocity = cp.Vector{}
}

// BeginPinch starts a two-finger zoom. An active drag is cancelled without
// producing a click.
func (c *Camera) BeginPinch(a, b Point) {
	if c.dragging {
		c.cancelDrag()
	}
	g := BuildPinchGesture(a, b)
	c.pinch = pinchState{active: true, distance: g.Distance, midX: g.MidX, midY: g.MidY}
	c.velocity = cp.Vector{}
}

// UpdatePinch zooms by the change in finger distance, anchored at the
// midpoint. Collapsed touches are ignored.
func (c *Camera) UpdatePinch(a, b Point) {
	if !c.pinch.active {
		return
	}
	g := BuildPinchGesture(a, b)
	if g.Distance == 0 {
		return
	}
	delta := (c.pinch.distance - g.Distance) * c.cfg.PinchScale
	c.ZoomAt(delta, g.MidX, g.MidY)
	c.pinch.distance = g.Distance
	c.pinch.midX = g.MidX
	c.pinch.midY = g.MidY
}

func (c *Camera) EndPinch() {
	c.pinch.active = false
}

// Gesture reports which input currently owns the camera.
func (c *Camera) Gesture() Gesture {
	switch {
	case c.dragging:
		return GestureDragging
	case c.pinch.active:
		return GesturePinching
	default:
		return GestureIdle
	}
}

// Velocity returns the inertial drift in world units per second.
func (c *Camera) Velocity() (float64, float64) {
	return c.velocity.X, c.velocity.Y
}

// Update applies one frame of inertia. Active gestures own the camera, so no
// drift is applied while dragging or pinching.
func (c *Camera) Update(deltaSeconds float64) {
	if c.dragging || c.pinch.active {
		return
	}
	center, velocity := c.inertia.Step(cp.Vector{X: c.centerX, Y: c.centerZ}, c.velocity, deltaSeconds)
	c.centerX, c.centerZ = center.X, center.Y
	c.velocity = velocity
	c.clampCenter()
}

// CenterOn jumps to a world point and stops any drift.
func (c *Camera) CenterOn(x, z float64) {
	c.centerX = x
	c.centerZ = z
	c.velocity = cp.Vector{}
	c.clampCenter()
}

// State returns a snapshot of the camera.
func (c *Camera) State() State {
	return State{
		CenterX:     c.centerX,
		CenterZ:     c.centerZ,
		Zoom:        c.zoom,
		TileWidth:   c.cfg.TileWidth,
		TileHeight:  c.cfg.TileHeight,
		Width:       c.width,
		Height:      c.height,
		WorldRadius: c.cfg.WorldRadius,
	}
}

func (c *Camera) clampCenter() {
	c.centerX, c.centerZ = ClampCenter(c.centerX, c.centerZ, c.cfg.WorldRadius, c.cfg.PanMargin)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
