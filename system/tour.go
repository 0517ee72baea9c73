// Package system holds frame-driven behaviours that sit on top of the
// camera.
package system

import (
	"fmt"

	"github.com/G9Pedro/colony-game-sub001/camera"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const tourDispatchScript = `
update(__engine, __state)
`

// Tour drives the camera from a tengo script until the script finishes or
// the player takes over. The script defines update(engine, state).
type Tour struct {
	cam      *camera.Camera
	compiled *tengo.Compiled
	state    *tengo.Map
	elapsed  float64
	done     bool
}

func NewTour(src []byte, cam *camera.Camera) (*Tour, error) {
	if cam == nil {
		return nil, fmt.Errorf("tour: nil camera")
	}
	script := tengo.NewScript(append(append([]byte{}, src...), tourDispatchScript...))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tour: compile: %w", err)
	}
	return &Tour{
		cam:      cam,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Done reports whether the tour has finished or been cancelled.
func (t *Tour) Done() bool {
	return t == nil || t.done
}

// Cancel stops the tour; the camera keeps its current view.
func (t *Tour) Cancel() {
	if t != nil {
		t.done = true
	}
}

// Update runs one frame of the script. A script error ends the tour.
func (t *Tour) Update(deltaSeconds float64) error {
	if t.Done() {
		return nil
	}
	// user gestures own the camera
	if t.cam.Gesture() != camera.GestureIdle {
		t.done = true
		return nil
	}
	t.elapsed += deltaSeconds

	if err := t.compiled.Set("__engine", t.engine()); err != nil {
		t.done = true
		return fmt.Errorf("tour: %w", err)
	}
	if err := t.compiled.Set("__state", t.state); err != nil {
		t.done = true
		return fmt.Errorf("tour: %w", err)
	}
	if err := t.compiled.Run(); err != nil {
		t.done = true
		return fmt.Errorf("tour: run: %w", err)
	}
	return nil
}

func (t *Tour) engine() *tengo.ImmutableMap {
	st := t.cam.State()
	values := map[string]tengo.Object{
		"elapsed":      &tengo.Float{Value: t.elapsed},
		"center_x":     &tengo.Float{Value: st.CenterX},
		"center_z":     &tengo.Float{Value: st.CenterZ},
		"zoom":         &tengo.Float{Value: st.Zoom},
		"width":        &tengo.Int{Value: int64(st.Width)},
		"height":       &tengo.Int{Value: int64(st.Height)},
		"world_radius": &tengo.Float{Value: st.WorldRadius},
	}

	values["center_on"] = &tengo.UserFunction{Name: "center_on", Value: func(args ...tengo.Object) (tengo.Object, error) {
		f, ok := floatArgs(args, 2)
		if !ok {
			return tengo.FalseValue, nil
		}
		t.cam.CenterOn(f[0], f[1])
		return tengo.TrueValue, nil
	}}

	values["zoom_at"] = &tengo.UserFunction{Name: "zoom_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
		f, ok := floatArgs(args, 3)
		if !ok {
			return tengo.FalseValue, nil
		}
		t.cam.ZoomAt(f[0], f[1], f[2])
		return tengo.TrueValue, nil
	}}

	values["pan"] = &tengo.UserFunction{Name: "pan", Value: func(args ...tengo.Object) (tengo.Object, error) {
		f, ok := floatArgs(args, 2)
		if !ok {
			return tengo.FalseValue, nil
		}
		t.cam.PanByScreenDelta(f[0], f[1])
		return tengo.TrueValue, nil
	}}

	values["finish"] = &tengo.UserFunction{Name: "finish", Value: func(args ...tengo.Object) (tengo.Object, error) {
		t.done = true
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func floatArgs(args []tengo.Object, n int) ([]float64, bool) {
	if len(args) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, ok := tengo.ToFloat64(args[i])
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
