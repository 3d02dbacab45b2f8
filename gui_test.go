package gui

import "testing"

// mockRenderer captures rendered draw lists for assertions.
type mockRenderer struct {
	renderCalls int
	lastVtx     int
	lastCmds    int
	vtx         []Vertex
	width       int
	height      int
}

func (m *mockRenderer) Render(dl *DrawList) error {
	m.renderCalls++
	m.lastVtx = len(dl.VtxBuffer)
	m.lastCmds = len(dl.CmdBuffer)
	m.vtx = append(m.vtx[:0], dl.VtxBuffer...)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(w, h int) {
	m.width = w
	m.height = h
}

func TestGUIFrameLifecycle(t *testing.T) {
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	ctx := ui.Begin(input, Vec2{X: 800, Y: 600}, 1.0/60.0)
	if ctx.DrawList == nil {
		t.Fatal("Begin did not attach a draw list")
	}

	NumberDialer(ctx, "lifecycle", DialerParams[int]{
		Value: 5, Min: 0, Max: 99,
		Pos: Vec2{X: 10, Y: 10}, Width: 200, Height: 100,
	})

	if err := ui.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if r.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", r.renderCalls)
	}
	if r.lastVtx == 0 {
		t.Error("dialer produced no vertices")
	}
}

// frame runs one full GUI frame containing a single dialer and returns
// the dialer's output.
func frame[T Number](t *testing.T, ui *GUI, input *InputState, label string, p DialerParams[T]) (T, bool) {
	t.Helper()
	ctx := ui.Begin(input, Vec2{X: 800, Y: 600}, 1.0/60.0)
	v, changed := NumberDialer(ctx, label, p)
	if err := ui.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	return v, changed
}

func TestNumberDialerDragAdjustsValue(t *testing.T) {
	// Dialer at origin, 200x100, no label, no frame. With the default
	// 24px glyphs the two slots of "42" are 18px wide starting at x=82.
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	params := DialerParams[int]{
		Value: 42, Min: 0, Max: 99,
		Pos: Vec2{X: 0, Y: 0}, Width: 200, Height: 100,
	}

	calls := 0
	params.OnChange = func(v int) { calls++ }

	// Frame 1: hover the tens slot, button up.
	input.Reset()
	input.SetMousePos(85, 50)
	v, changed := frame(t, ui, input, "drag", params)
	if v != 42 || changed {
		t.Fatalf("hover frame: got (%d, %v), want (42, false)", v, changed)
	}
	if calls != 0 {
		t.Fatalf("hover frame fired callback")
	}

	// Frame 2: press. The press edge fires the callback once, without a
	// value change.
	input.Reset()
	input.SetMouseButton(MouseButtonLeft, true)
	v, changed = frame(t, ui, input, "drag", params)
	if v != 42 || changed {
		t.Fatalf("press frame: got (%d, %v), want (42, false)", v, changed)
	}
	if calls != 1 {
		t.Fatalf("press frame: callback fired %d times, want 1", calls)
	}

	// Frame 3: drag up by 10px. The tens digit increments.
	input.Reset()
	input.SetMousePos(85, 40)
	params.Value = v
	v, changed = frame(t, ui, input, "drag", params)
	if v != 52 || !changed {
		t.Fatalf("drag frame: got (%d, %v), want (52, true)", v, changed)
	}
	if calls != 2 {
		t.Fatalf("drag frame: callback fired %d times, want 2", calls)
	}

	// Frame 4: drag down past the start. The tens digit decrements.
	input.Reset()
	input.SetMousePos(85, 55)
	params.Value = v
	v, changed = frame(t, ui, input, "drag", params)
	if v != 42 || !changed {
		t.Fatalf("drag back frame: got (%d, %v), want (42, true)", v, changed)
	}

	// Frame 5: release over the widget. The release edge fires the
	// callback without changing the value.
	before := calls
	input.Reset()
	input.SetMouseButton(MouseButtonLeft, false)
	params.Value = v
	v, changed = frame(t, ui, input, "drag", params)
	if v != 42 || changed {
		t.Fatalf("release frame: got (%d, %v), want (42, false)", v, changed)
	}
	if calls != before+1 {
		t.Fatalf("release frame: callback fired %d times, want %d", calls, before+1)
	}
}

func TestNumberDialerDragContinuesOutsideBounds(t *testing.T) {
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	params := DialerParams[int]{
		Value: 42, Min: 0, Max: 99,
		Pos: Vec2{X: 0, Y: 0}, Width: 200, Height: 100,
	}

	// Hover, then press the tens slot.
	input.Reset()
	input.SetMousePos(85, 50)
	frame(t, ui, input, "outside", params)

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, true)
	frame(t, ui, input, "outside", params)

	// Drag far above the widget while still holding the button. The
	// grabbed slot keeps adjusting even though the pointer left.
	input.Reset()
	input.SetMousePos(85, -200)
	v, changed := frame(t, ui, input, "outside", params)
	if v != 52 || !changed {
		t.Fatalf("outside drag: got (%d, %v), want (52, true)", v, changed)
	}
}

func TestNumberDialerOversizedFrameClamped(t *testing.T) {
	// A frame wider than half the widget height is bounded so every
	// emitted vertex stays inside the widget rectangle.
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	input.Reset()
	input.SetMousePos(-10, -10)
	frame(t, ui, input, "thick", DialerParams[int]{
		Value: 5, Min: 0, Max: 9,
		Pos: Vec2{X: 0, Y: 0}, Width: 100, Height: 50,
		Frame: &FrameSpec{Width: 1000},
	})

	if len(r.vtx) == 0 {
		t.Fatal("dialer produced no vertices")
	}
	for _, v := range r.vtx {
		if v.Pos[0] < 0 || v.Pos[0] > 100 || v.Pos[1] < 0 || v.Pos[1] > 50 {
			t.Fatalf("vertex (%v, %v) outside widget rect", v.Pos[0], v.Pos[1])
		}
	}
}

func TestNumberDialerWideLabelPinned(t *testing.T) {
	// When label+value are wider than the widget, the content pins to
	// the left edge instead of centering past it. With a 216px label
	// ("setting: " at 24px) in a 220px widget at x=50, the single value
	// slot then starts at x=266.
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	params := DialerParams[int]{
		Value: 5, Min: 0, Max: 9,
		Pos: Vec2{X: 50, Y: 0}, Width: 220, Height: 50,
		Label: &LabelSpec{Text: "setting", Size: 24},
	}

	// x=262 lies inside the pinned label region, so a drag there must
	// not adjust the value.
	input.Reset()
	input.SetMousePos(262, 25)
	frame(t, ui, input, "pinned", params)

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, true)
	frame(t, ui, input, "pinned", params)

	input.Reset()
	input.SetMousePos(262, 20)
	v, changed := frame(t, ui, input, "pinned", params)
	if v != 5 || changed {
		t.Fatalf("label drag: got (%d, %v), want (5, false)", v, changed)
	}

	// x=267 lies inside the pinned value slot, so the same drag there
	// adjusts the ones digit.
	input.Reset()
	input.SetMouseButton(MouseButtonLeft, false)
	input.SetMousePos(267, 25)
	frame(t, ui, input, "slot", params)

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, true)
	frame(t, ui, input, "slot", params)

	input.Reset()
	input.SetMousePos(267, 20)
	v, changed = frame(t, ui, input, "slot", params)
	if v != 6 || !changed {
		t.Fatalf("slot drag: got (%d, %v), want (6, true)", v, changed)
	}
}

func TestNumberDialerClampsAtBounds(t *testing.T) {
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	params := DialerParams[int]{
		Value: 99, Min: 0, Max: 99,
		Pos: Vec2{X: 0, Y: 0}, Width: 200, Height: 100,
	}

	input.Reset()
	input.SetMousePos(85, 50)
	frame(t, ui, input, "clamp", params)

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, true)
	frame(t, ui, input, "clamp", params)

	// Dragging up at the maximum stays at the maximum.
	input.Reset()
	input.SetMousePos(85, 40)
	v, changed := frame(t, ui, input, "clamp", params)
	if v != 99 || changed {
		t.Fatalf("clamped drag: got (%d, %v), want (99, false)", v, changed)
	}
}

func TestNumberDialerOutOfRangeValueClamped(t *testing.T) {
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	v, changed := frame(t, ui, input, "range", DialerParams[int]{
		Value: 500, Min: 0, Max: 99,
		Pos: Vec2{X: 0, Y: 0}, Width: 200, Height: 100,
	})
	if v != 99 {
		t.Errorf("out of range value: got %d, want 99", v)
	}
	if !changed {
		t.Error("clamping the input value should report a change")
	}
}

func TestNumberDialerFloatPrecisionDrag(t *testing.T) {
	// max 99.99 at precision 2 renders "03.00" for value 3 in five 18px
	// slots starting at x=(200-90)/2=55. Slot 3 (tenths) spans [109, 127).
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	params := DialerParams[float64]{
		Value: 3, Min: 0, Max: 99.99, Precision: 2,
		Pos: Vec2{X: 0, Y: 0}, Width: 200, Height: 100,
	}

	input.Reset()
	input.SetMousePos(110, 50)
	frame(t, ui, input, "float", params)

	input.Reset()
	input.SetMouseButton(MouseButtonLeft, true)
	frame(t, ui, input, "float", params)

	input.Reset()
	input.SetMousePos(110, 45)
	v, changed := frame(t, ui, input, "float", params)
	if !changed {
		t.Fatal("tenths drag did not change the value")
	}
	if diff := v - 3.1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("tenths drag: got %v, want 3.1", v)
	}
}

func TestNumberDialerStatePersistsAcrossFrames(t *testing.T) {
	r := &mockRenderer{}
	ui := New(r, WithStyle(DefaultStyle()))
	input := NewInputState()

	params := DialerParams[int]{
		Value: 1, Min: 0, Max: 9,
		Pos: Vec2{X: 0, Y: 0}, Width: 100, Height: 50,
	}

	ctx := ui.Begin(input, Vec2{X: 800, Y: 600}, 1.0/60.0)
	NumberDialer(ctx, "persist", params)
	if err := ui.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	// IDs depend on the per-frame call order, so the dialer's ID is
	// recovered by issuing the same first GetID call in a fresh frame.
	ctx = ui.Begin(input, Vec2{X: 800, Y: 600}, 1.0/60.0)
	id := ctx.GetID("persist")
	if err := ui.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	st := GetDialerState(id)
	if st == nil {
		t.Fatal("no state stored after drawing")
	}
	if st.Bounds.W != 100 || st.Bounds.H != 50 {
		t.Errorf("stored bounds = %+v, want 100x50", st.Bounds)
	}

	// A dialer that stops being drawn has its state reclaimed.
	for i := 0; i < 3; i++ {
		ui.Begin(input, Vec2{X: 800, Y: 600}, 1.0/60.0)
		if err := ui.End(); err != nil {
			t.Fatalf("End: %v", err)
		}
	}
	if GetDialerState(id) != nil {
		t.Error("stale dialer state survived cleanup")
	}
}
