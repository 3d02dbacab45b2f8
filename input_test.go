package gui

import "testing"

func TestInputStateEdges(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseDown(MouseButtonLeft) {
		t.Error("MouseDown false after press")
	}
	if !in.MouseClicked(MouseButtonLeft) {
		t.Error("MouseClicked false on the press frame")
	}

	// The click edge clears on Reset, held state does not.
	in.Reset()
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("MouseClicked true after Reset")
	}
	if !in.MouseDown(MouseButtonLeft) {
		t.Error("MouseDown cleared by Reset")
	}

	in.SetMouseButton(MouseButtonLeft, false)
	if in.MouseDown(MouseButtonLeft) {
		t.Error("MouseDown true after release")
	}
	if !in.MouseReleased(MouseButtonLeft) {
		t.Error("MouseReleased false on the release frame")
	}
}

func TestInputStateRepeatedPressNoEdge(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	in.Reset()
	// Setting an already-held button again is not a new click.
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("held button reported a new click")
	}
}

func TestInputStateOutOfRangeButton(t *testing.T) {
	in := NewInputState()
	in.SetMouseButton(MouseButton(-1), true)
	in.SetMouseButton(MouseButtonCount, true)
	if in.MouseDown(MouseButton(-1)) || in.MouseDown(MouseButtonCount) {
		t.Error("out of range button reported down")
	}
}

func TestInputStateMousePos(t *testing.T) {
	in := NewInputState()
	in.SetMousePos(12, 34)
	if got := in.MousePos(); got != (Vec2{X: 12, Y: 34}) {
		t.Errorf("MousePos = %v", got)
	}

	// Position persists across Reset, wheel does not.
	in.SetMouseWheel(1, 2)
	in.Reset()
	if got := in.MousePos(); got != (Vec2{X: 12, Y: 34}) {
		t.Errorf("MousePos after Reset = %v", got)
	}
	if in.MouseWheelX != 0 || in.MouseWheelY != 0 {
		t.Error("wheel delta survived Reset")
	}
}
