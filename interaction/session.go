// Package interaction turns pointer, wheel and touch events into camera
// operations and reports the tiles they land on.
package interaction

import (
	"github.com/G9Pedro/colony-game-sub001/camera"
)

// WheelZoomScale converts wheel pixels into a zoom delta.
const WheelZoomScale = 0.001

// Viewport supplies the host element's position and size in client pixels.
type Viewport interface {
	Origin() (float64, float64)
	Size() (int, int)
}

// Listener receives the tile-level results of input. Coordinates are local
// pixels inside the viewport.
type Listener interface {
	TileHovered(tile camera.Tile, x, y float64)
	GroundClicked(tile camera.Tile, x, y float64)
	EntitySelected(id int, tile camera.Tile)
}

// EntityFinder looks up a selectable entity on a tile.
type EntityFinder interface {
	EntityAt(tile camera.Tile) (int, bool)
}

// Touch is one active touch point in client pixels.
type Touch struct {
	ID int
	X  float64
	Y  float64
}

// Session binds one camera to one input source. Like the camera it is
// owned by a single loop.
type Session struct {
	cam      *camera.Camera
	viewport Viewport
	listener Listener
	finder   EntityFinder

	pressed bool
	// last pointer position in client pixels, used to synthesize releases
	lastX float64
	lastY float64
}

// NewSession wires a camera to its collaborators. listener and finder may be
// nil.
func NewSession(cam *camera.Camera, viewport Viewport, listener Listener, finder EntityFinder) *Session {
	if listener == nil {
		listener = nopListener{}
	}
	return &Session{cam: cam, viewport: viewport, listener: listener, finder: finder}
}

// Camera returns the camera driven by the session.
func (s *Session) Camera() *camera.Camera {
	return s.cam
}

// Pressed reports whether a pointer is held down on the camera.
func (s *Session) Pressed() bool {
	return s.pressed
}

// local converts client pixels to viewport pixels and keeps the camera's
// viewport in sync with the host.
func (s *Session) local(x, y float64) (float64, float64) {
	if s.viewport == nil {
		return x, y
	}
	w, h := s.viewport.Size()
	s.cam.SetViewport(w, h)
	ox, oy := s.viewport.Origin()
	return x - ox, y - oy
}

func (s *Session) PointerDown(x, y float64) {
	s.lastX, s.lastY = x, y
	lx, ly := s.local(x, y)
	s.pressed = s.cam.StartDrag(lx, ly)
}

// PointerMove drags while pressed and always reports the hovered tile.
func (s *Session) PointerMove(x, y float64) {
	s.lastX, s.lastY = x, y
	lx, ly := s.local(x, y)
	if s.pressed {
		s.cam.DragTo(lx, ly)
	}
	s.listener.TileHovered(s.cam.ScreenToTile(lx, ly), lx, ly)
}

// PointerUp ends the drag. A release that never travelled past the click
// threshold picks the tile under the pointer.
func (s *Session) PointerUp(x, y float64) {
	s.lastX, s.lastY = x, y
	if !s.pressed {
		return
	}
	s.pressed = false
	lx, ly := s.local(x, y)
	if res := s.cam.EndDrag(); res.WasClick {
		s.pick(lx, ly)
	}
}

func (s *Session) pick(lx, ly float64) {
	tile := s.cam.ScreenToTile(lx, ly)
	if s.finder != nil {
		if id, ok := s.finder.EntityAt(tile); ok {
			s.listener.EntitySelected(id, tile)
			return
		}
	}
	s.listener.GroundClicked(tile, lx, ly)
}

// Wheel zooms at the cursor. Positive deltaY zooms out.
func (s *Session) Wheel(deltaY, x, y float64) {
	lx, ly := s.local(x, y)
	s.cam.ZoomAt(deltaY*WheelZoomScale, lx, ly)
}

// TouchStart handles a new touch; touches lists every active touch.
func (s *Session) TouchStart(touches []Touch) {
	switch {
	case len(touches) >= 2:
		// the camera cancels the drag itself
		s.pressed = false
		s.cam.BeginPinch(s.touchPoint(touches[0]), s.touchPoint(touches[1]))
	case len(touches) == 1:
		s.PointerDown(touches[0].X, touches[0].Y)
	}
}

func (s *Session) TouchMove(touches []Touch) {
	switch {
	case len(touches) >= 2 && s.cam.Gesture() == camera.GesturePinching:
		s.cam.UpdatePinch(s.touchPoint(touches[0]), s.touchPoint(touches[1]))
	case len(touches) == 1:
		s.PointerMove(touches[0].X, touches[0].Y)
	}
}

// TouchEnd ends any pinch and then releases the pointer as a mouse would.
// remaining lists the touches still down.
func (s *Session) TouchEnd(remaining []Touch) {
	if s.cam.Gesture() == camera.GesturePinching {
		s.cam.EndPinch()
	}
	s.PointerUp(s.lastX, s.lastY)
}

func (s *Session) touchPoint(t Touch) camera.Point {
	lx, ly := s.local(t.X, t.Y)
	return camera.Point{X: lx, Y: ly}
}

type nopListener struct{}

func (nopListener) TileHovered(camera.Tile, float64, float64)   {}
func (nopListener) GroundClicked(camera.Tile, float64, float64) {}
func (nopListener) EntitySelected(int, camera.Tile)             {}
