package interaction

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WheelPixelsPerNotch converts Ebiten wheel notches into wheel pixels.
const WheelPixelsPerNotch = 100

// ScreenViewport is a Viewport for a full-window Ebiten game. The host
// updates W and H from Layout.
type ScreenViewport struct {
	X, Y float64
	W, H int
}

func (v *ScreenViewport) Origin() (float64, float64) { return v.X, v.Y }

func (v *ScreenViewport) Size() (int, int) { return v.W, v.H }

// EbitenInput polls Ebiten's mouse, wheel and touch state once per tick and
// feeds the session.
type EbitenInput struct {
	session *Session

	touchIDs []ebiten.TouchID
	touches  []Touch
	prev     map[ebiten.TouchID][2]int

	cursorX int
	cursorY int
}

func NewEbitenInput(session *Session) *EbitenInput {
	return &EbitenInput{session: session, prev: make(map[ebiten.TouchID][2]int)}
}

// Update dispatches this tick's input. It reports whether the user touched
// the camera so callers can cancel scripted motion.
func (in *EbitenInput) Update() bool {
	if in.updateTouches() {
		return true
	}
	return in.updateMouse()
}

func (in *EbitenInput) updateTouches() bool {
	pressed := inpututil.AppendJustPressedTouchIDs(nil)
	released := inpututil.AppendJustReleasedTouchIDs(nil)
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])

	in.touches = in.touches[:0]
	moved := false
	seen := make(map[ebiten.TouchID]struct{}, len(in.touchIDs))
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if p, ok := in.prev[id]; !ok || p[0] != x || p[1] != y {
			moved = true
		}
		in.prev[id] = [2]int{x, y}
		seen[id] = struct{}{}
		in.touches = append(in.touches, Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	for id := range in.prev {
		if _, ok := seen[id]; !ok {
			delete(in.prev, id)
		}
	}

	switch {
	case len(pressed) > 0:
		in.session.TouchStart(in.touches)
	case moved && len(in.touches) > 0:
		in.session.TouchMove(in.touches)
	}
	if len(released) > 0 {
		in.session.TouchEnd(in.touches)
	}
	return len(pressed) > 0 || len(released) > 0 || len(in.touches) > 0
}

func (in *EbitenInput) updateMouse() bool {
	active := false
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.session.PointerDown(x, y)
		active = true
	}
	if mx != in.cursorX || my != in.cursorY {
		in.cursorX, in.cursorY = mx, my
		in.session.PointerMove(x, y)
		active = active || in.session.Pressed()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.session.PointerUp(x, y)
		active = true
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		in.session.Wheel(-wy*WheelPixelsPerNotch, x, y)
		active = true
	}
	return active
}
