package interaction

import (
	"testing"
	"time"

	"github.com/G9Pedro/colony-game-sub001/camera"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(10 * time.Millisecond)
	return c.now
}

type recorder struct {
	hovered  []camera.Tile
	ground   []camera.Tile
	selected []int
}

func (r *recorder) TileHovered(tile camera.Tile, x, y float64) {
	r.hovered = append(r.hovered, tile)
}

func (r *recorder) GroundClicked(tile camera.Tile, x, y float64) {
	r.ground = append(r.ground, tile)
}

func (r *recorder) EntitySelected(id int, tile camera.Tile) {
	r.selected = append(r.selected, id)
}

type entityMap map[camera.Tile]int

func (m entityMap) EntityAt(tile camera.Tile) (int, bool) {
	id, ok := m[tile]
	return id, ok
}

func newTestSession(entities entityMap) (*Session, *recorder) {
	cam := camera.New(camera.DefaultConfig(), camera.WithClock(&stepClock{now: time.Unix(0, 0)}))
	rec := &recorder{}
	vp := &ScreenViewport{X: 100, Y: 50, W: 800, H: 600}
	return NewSession(cam, vp, rec, entities), rec
}

func TestSessionSyncsViewport(t *testing.T) {
	s, _ := newTestSession(nil)
	s.PointerMove(500, 350)
	st := s.Camera().State()
	if st.Width != 800 || st.Height != 600 {
		t.Fatalf("expected 800x600 viewport, got %dx%d", st.Width, st.Height)
	}
}

func TestSessionClickPicksGround(t *testing.T) {
	s, rec := newTestSession(nil)
	// client (500,350) is the viewport center once the origin is removed
	s.PointerDown(500, 350)
	s.PointerMove(501, 351)
	s.PointerUp(501, 351)

	if len(rec.ground) != 1 {
		t.Fatalf("expected one ground click, got %d", len(rec.ground))
	}
	if rec.ground[0] != (camera.Tile{X: 0, Z: 0}) {
		t.Fatalf("expected tile (0,0), got %+v", rec.ground[0])
	}
	if len(rec.hovered) != 1 {
		t.Fatalf("expected one hover report, got %d", len(rec.hovered))
	}
}

func TestSessionClickSelectsEntity(t *testing.T) {
	s, rec := newTestSession(entityMap{{X: 0, Z: 0}: 42})
	s.PointerDown(500, 350)
	s.PointerUp(500, 350)
	if len(rec.selected) != 1 || rec.selected[0] != 42 {
		t.Fatalf("expected entity 42 selected, got %v", rec.selected)
	}
	if len(rec.ground) != 0 {
		t.Fatalf("entity selection should not also report ground")
	}
}

func TestSessionDragIsNotClick(t *testing.T) {
	s, rec := newTestSession(nil)
	s.PointerDown(500, 350)
	s.PointerMove(540, 350)
	s.PointerUp(540, 350)

	if len(rec.ground)+len(rec.selected) != 0 {
		t.Fatalf("a drag must not pick a tile")
	}
	st := s.Camera().State()
	if st.CenterX == 0 && st.CenterZ == 0 {
		t.Fatalf("drag should have panned the camera")
	}
}

func TestSessionHoverWithoutPress(t *testing.T) {
	s, rec := newTestSession(nil)
	s.PointerMove(532, 366)
	if len(rec.hovered) != 1 || rec.hovered[0] != (camera.Tile{X: 1, Z: 0}) {
		t.Fatalf("expected hover on (1,0), got %v", rec.hovered)
	}
	if st := s.Camera().State(); st.CenterX != 0 || st.CenterZ != 0 {
		t.Fatalf("hover must not pan")
	}
	s.PointerUp(532, 366)
	if len(rec.ground) != 0 {
		t.Fatalf("release without press must not click")
	}
}

func TestSessionWheelZoomsAtCursor(t *testing.T) {
	s, _ := newTestSession(nil)
	cam := s.Camera()
	s.PointerMove(700, 500)
	bx, bz := cam.ScreenToWorld(600, 450)

	s.Wheel(100, 700, 500)
	if z := cam.State().Zoom; z < 0.9-1e-9 || z > 0.9+1e-9 {
		t.Fatalf("expected zoom 0.9, got %v", z)
	}
	ax, az := cam.ScreenToWorld(600, 450)
	if d := (ax-bx)*(ax-bx) + (az-bz)*(az-bz); d > 1e-8 {
		t.Fatalf("wheel zoom moved the anchor from (%v,%v) to (%v,%v)", bx, bz, ax, az)
	}
}

func TestSessionPinch(t *testing.T) {
	s, rec := newTestSession(nil)
	cam := s.Camera()

	s.TouchStart([]Touch{{ID: 1, X: 496, Y: 350}})
	if cam.Gesture() != camera.GestureDragging {
		t.Fatalf("one finger should drag, got %v", cam.Gesture())
	}
	s.TouchStart([]Touch{{ID: 1, X: 496, Y: 350}, {ID: 2, X: 504, Y: 350}})
	if cam.Gesture() != camera.GesturePinching {
		t.Fatalf("two fingers should pinch, got %v", cam.Gesture())
	}

	s.TouchMove([]Touch{{ID: 1, X: 498, Y: 350}, {ID: 2, X: 502, Y: 350}})
	want := 1 - 4*camera.PinchZoomScale
	if z := cam.State().Zoom; z < want-1e-9 || z > want+1e-9 {
		t.Fatalf("expected zoom %v, got %v", want, z)
	}

	s.TouchEnd([]Touch{{ID: 2, X: 502, Y: 350}})
	if cam.Gesture() != camera.GestureIdle {
		t.Fatalf("expected idle after touch end, got %v", cam.Gesture())
	}
	if len(rec.ground)+len(rec.selected) != 0 {
		t.Fatalf("a pinch must not be reported as a tap")
	}
}

func TestSessionTapByTouch(t *testing.T) {
	s, rec := newTestSession(nil)
	s.TouchStart([]Touch{{ID: 3, X: 500, Y: 350}})
	s.TouchMove([]Touch{{ID: 3, X: 501, Y: 350}})
	s.TouchEnd(nil)
	if len(rec.ground) != 1 {
		t.Fatalf("expected tap to click ground, got %d clicks", len(rec.ground))
	}
}

func TestSessionNilListener(t *testing.T) {
	cam := camera.New(camera.DefaultConfig())
	s := NewSession(cam, nil, nil, nil)
	s.PointerDown(0, 0)
	s.PointerMove(1, 1)
	s.PointerUp(1, 1)
	s.Wheel(-50, 0, 0)
}
