package gui

import "fmt"

// ElementKind tags the variants of Element.
type ElementKind uint8

const (
	// ElemRect is the widget body: inside the outer rectangle but not
	// over the label or a value glyph slot.
	ElemRect ElementKind = iota
	// ElemLabel is the label text region.
	ElemLabel
	// ElemValueGlyph is a single digit slot of the value string.
	ElemValueGlyph
)

// Element identifies the part of a dialer the pointer interacts with.
// For ElemValueGlyph it also carries the slot column and the vertical
// pointer coordinate recorded at the most recent relevant frame, which is
// the reference for the next frame's drag delta.
type Element struct {
	Kind  ElementKind
	Slot  int     // Digit slot column, ElemValueGlyph only
	DragY float32 // Drag-reference Y, ElemValueGlyph only
}

// RectElement returns the widget body element.
func RectElement() Element {
	return Element{Kind: ElemRect}
}

// LabelElement returns the label region element.
func LabelElement() Element {
	return Element{Kind: ElemLabel}
}

// ValueGlyphElement returns the element for the digit slot at the given
// column, recording y as the drag reference.
func ValueGlyphElement(slot int, y float32) Element {
	return Element{Kind: ElemValueGlyph, Slot: slot, DragY: y}
}

func (e Element) String() string {
	switch e.Kind {
	case ElemRect:
		return "Rect"
	case ElemLabel:
		return "Label"
	case ElemValueGlyph:
		return fmt.Sprintf("ValueGlyph(%d, %g)", e.Slot, e.DragY)
	}
	return "Element(?)"
}

// StateKind tags the variants of State.
type StateKind uint8

const (
	// StateNormal is the rest state: no pointer interaction.
	StateNormal StateKind = iota
	// StateHighlighted means the pointer is over an element, button up.
	StateHighlighted
	// StateClicked means the button is down and the press originated on,
	// or continues over, an element.
	StateClicked
)

// State is a dialer's interaction state for one frame. It is the only
// cross-frame memory the widget needs; it lives in the per-widget store
// and is looked up and replaced once per frame.
type State struct {
	Kind StateKind
	Elem Element // Valid for StateHighlighted and StateClicked
}

// NormalState returns the rest state.
func NormalState() State {
	return State{Kind: StateNormal}
}

// HighlightedState returns the state for a pointer hovering elem.
func HighlightedState(elem Element) State {
	return State{Kind: StateHighlighted, Elem: elem}
}

// ClickedState returns the state for a press on elem.
func ClickedState(elem Element) State {
	return State{Kind: StateClicked, Elem: elem}
}

func (s State) String() string {
	switch s.Kind {
	case StateNormal:
		return "Normal"
	case StateHighlighted:
		return "Highlighted(" + s.Elem.String() + ")"
	case StateClicked:
		return "Clicked(" + s.Elem.String() + ")"
	}
	return "State(?)"
}

// nextState advances the interaction state machine by one frame.
//
// Inputs are the hit-test result (hit, hitOK), the previous frame's state,
// the left button state, and the pointer's vertical position. A press never
// starts from cold Normal; a drag on a value glyph keeps tracking the
// original slot while the button stays down, updating only the
// drag-reference Y, even when the pointer has left the widget entirely.
func nextState(hit Element, hitOK bool, prev State, down bool, pointerY float32) State {
	switch {
	case hitOK && prev.Kind == StateNormal && down:
		return NormalState()
	case hitOK && !down:
		return HighlightedState(hit)
	case hitOK && prev.Kind == StateHighlighted && down:
		return ClickedState(hit)
	case prev.Kind == StateClicked && down:
		elem := prev.Elem
		if elem.Kind == ElemValueGlyph {
			elem.DragY = pointerY
		}
		return ClickedState(elem)
	default:
		return NormalState()
	}
}
