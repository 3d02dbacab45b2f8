package gui

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Number is the constraint for values a dialer can edit: any primitive
// integer or float kind, or a named type whose underlying type is one.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// dialerStore is the per-widget store for dialer interaction state.
var dialerStore = NewFrameStore[DialerState]()

// DialerState is the cross-frame memory of one dialer: its interaction
// state and the bounds it was last drawn with.
type DialerState struct {
	State  State
	Bounds Rect
}

// FrameSpec describes an optional border around the dialer body.
type FrameSpec struct {
	Width float32
	Color uint32 // 0 = style FrameColor
}

// LabelSpec describes an optional text label drawn before the value.
type LabelSpec struct {
	Text  string
	Size  float32 // Pixel size; 0 = style FontSize
	Color uint32  // 0 = style TextColor
}

// DialerParams configures one NumberDialer call. The caller owns it and
// passes it fresh every frame; nothing in it is persisted.
type DialerParams[T Number] struct {
	Value     T
	Min, Max  T // Inclusive bounds; Value is clamped into them
	Precision int

	Pos           Vec2
	Width, Height float32

	Color    uint32     // Body fill; 0 = style WidgetColor
	Frame    *FrameSpec // nil = no border
	Label    *LabelSpec // nil = no label
	OnChange func(T)    // Invoked at most once per frame
}

// NumberDialer draws a numeric dialer and advances its interaction state
// by one frame. The widget shows the value as a row of fixed-width digit
// slots; dragging vertically over a slot increments or decrements the
// decimal place that slot represents, clamped into [Min, Max].
//
// The label string keys the widget's persisted state, so it must be stable
// across frames (use PushID for dialers drawn in loops). OnChange fires at
// most once per frame: when the value changed, or on the press/release
// edge of a click. Returns the possibly-adjusted value and whether it
// differs from DialerParams.Value.
//
// Usage:
//
//	gui.NumberDialer(ctx, "volume", gui.DialerParams[float64]{
//	    Value: vol, Min: 0, Max: 99.99, Precision: 2,
//	    Pos: gui.Vec2{X: 40, Y: 40}, Width: 160, Height: 48,
//	    OnChange: func(v float64) { vol = v },
//	})
func NumberDialer[T Number](ctx *Context, label string, p DialerParams[T]) (T, bool) {
	id := ctx.GetID(label)
	st := dialerStore.Get(id, DialerState{})

	value := clampNumber(p.Value, p.Min, p.Max)

	frameW := float32(0)
	frameColor := ctx.style.FrameColor
	if p.Frame != nil {
		// The frame may not swallow the glyph row.
		frameW = clampf(p.Frame.Width, 0, p.Height/2)
		if p.Frame.Color != 0 {
			frameColor = p.Frame.Color
		}
	}

	bodyColor := p.Color
	if bodyColor == 0 {
		bodyColor = ctx.style.WidgetColor
	}

	// Value glyphs take the label's size when a label is present.
	valSize := ctx.style.FontSize
	labelStr := ""
	labelW, labelH := float32(0), float32(0)
	if p.Label != nil {
		size := p.Label.Size
		if size <= 0 {
			size = ctx.style.FontSize
		}
		labelStr = p.Label.Text + ": "
		labelW = ctx.MeasureText(labelStr, size).X
		labelH = size
		valSize = size
	}

	totalLen := integerDigits(float64(p.Max))
	if p.Precision > 0 {
		totalLen += 1 + p.Precision
	}
	valStr := formatValue(value, totalLen, p.Precision)

	slotW := valueSlotWidth(valSize)
	valW := slotW * float32(len(valStr))

	// Center label+value horizontally, glyph row vertically. Content
	// wider than the widget pins to the left edge.
	labelPos := Vec2{
		X: p.Pos.X + maxf(p.Width-(labelW+valW), 0)/2,
		Y: p.Pos.Y + (p.Height-valSize)/2,
	}

	var mouse Vec2
	down := false
	hitOK := false
	var hit Element
	if ctx.Input != nil {
		mouse = ctx.Input.MousePos()
		down = ctx.Input.MouseDown(MouseButtonLeft)
		hit, hitOK = hitTest(p.Pos, frameW, mouse, p.Width, p.Height,
			labelPos, labelW, labelH, valW, valSize, len(valStr))
	}

	newState := nextState(hit, hitOK, st.State, down, mouse.Y)
	if guiVerbose() && newState != st.State {
		guiLogger.Debug("dialer state", "id", id, "from", st.State, "to", newState)
	}

	// Widget body (with optional frame).
	ctx.DrawList.AddFramedRect(p.Pos.X, p.Pos.Y, p.Width, p.Height, bodyColor, frameColor, frameW)

	// Label, and the color used for the value glyphs.
	valColor := PlainContrast(bodyColor)
	if p.Label != nil {
		labelColor := p.Label.Color
		if labelColor == 0 {
			labelColor = ctx.style.TextColor
		}
		ctx.AddText(labelPos.X, labelPos.Y, labelStr, labelH, labelColor)
		valColor = labelColor
	} else if ctx.style.TextColor != 0 {
		valColor = ctx.style.TextColor
	}

	// A drag across two consecutive clicked frames on the same slot
	// adjusts the value by the slot's place value.
	newVal := value
	if st.State.Kind == StateClicked && newState.Kind == StateClicked &&
		st.State.Elem.Kind == ElemValueGlyph && newState.Elem.Kind == ElemValueGlyph {
		ord := compareY(newState.Elem.DragY, st.State.Elem.DragY)
		adjusted := adjustValue(float64(value), float64(p.Min), float64(p.Max),
			st.State.Elem.Slot, ord, valStr)
		newVal = clampNumber(numberFromFloat(adjusted, value), p.Min, p.Max)
	}

	if newVal != value {
		valStr = formatValue(newVal, totalLen, p.Precision)
	}

	// Changed is relative to the caller's value, so clamping an
	// out-of-range input also reports a change.
	changed := newVal != p.Value

	valuePos := Vec2{X: labelPos.X + labelW, Y: labelPos.Y}
	drawValueString(ctx, newState, p.Pos.Y+frameW, bodyColor,
		slotW, p.Height-frameW*2, valuePos, valSize, valColor, valStr)

	// Fire the callback on a value change or on the press/release edge of
	// a click, at most once per frame.
	pressEdge := (st.State.Kind == StateHighlighted && newState.Kind == StateClicked) ||
		(st.State.Kind == StateClicked && newState.Kind == StateHighlighted)
	if (changed || pressEdge) && p.OnChange != nil {
		p.OnChange(newVal)
	}

	st.State = newState
	st.Bounds = Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}

	return newVal, changed
}

// GetDialerState returns the persisted state for a dialer, or nil if the
// dialer has not been drawn. Intended for tests and debugging.
func GetDialerState(id ID) *DialerState {
	return dialerStore.GetIfExists(id)
}

// valueSlotWidth returns the fixed width of one value glyph slot.
func valueSlotWidth(size float32) float32 {
	return float32(math.Floor(float64(size) * 0.75))
}

// integerDigits returns the number of digits in the integer part of v.
func integerDigits(v float64) int {
	return len(strconv.FormatFloat(math.Trunc(math.Abs(v)), 'f', -1, 64))
}

// formatValue renders value as a fixed-length digit string: the fractional
// part is truncated or zero-padded to exactly precision digits (none, and
// no decimal point, when precision is 0), then the whole string is
// left-padded with zeros up to totalLen characters. The string is never
// truncated below totalLen, only padded.
//
// Negative values are not special-cased: a minus sign counts toward the
// length like any other character.
func formatValue[T Number](value T, totalLen, precision int) string {
	s := numberString(value)

	dot := strings.IndexByte(s, '.')
	switch {
	case dot < 0 && precision == 0:
		// Integer rendering of an integer value, nothing to do.
	case dot < 0:
		s += "." + strings.Repeat("0", precision)
	case precision == 0:
		s = s[:dot]
	default:
		want := dot + precision + 1
		if len(s) > want {
			s = s[:want]
		} else if len(s) < want {
			s += strings.Repeat("0", want-len(s))
		}
	}

	if len(s) < totalLen {
		s = strings.Repeat("0", totalLen-len(s)) + s
	}
	return s
}

// numberString converts a value to its default decimal representation.
// Floats use the shortest representation that round-trips at their own
// precision, never scientific notation.
func numberString[T Number](v T) string {
	switch n := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	default:
		// Named types with a numeric underlying type. Floats must go
		// through FormatFloat so the result never uses scientific
		// notation, which the fixed-width formatter cannot digest.
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Float32:
			return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
		case reflect.Float64:
			return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(rv.Int(), 10)
		default:
			return strconv.FormatUint(rv.Uint(), 10)
		}
	}
}

// hitTest resolves which element of the dialer the pointer covers, if any.
//
// Resolution order, first match wins: outside the outer rectangle (no
// hit), the label sub-rectangle, outside the value slot region (the body),
// then a left-to-right scan of the digit slots. A scan that exhausts
// without containing the pointer falls back to the body.
func hitTest(pos Vec2, frameW float32, mouse Vec2, rectW, rectH float32,
	labelPos Vec2, labelW, labelH, valW, valH float32, digitCount int) (Element, bool) {

	outer := Rect{X: pos.X, Y: pos.Y, W: rectW, H: rectH}
	if !outer.Contains(mouse) {
		return Element{}, false
	}

	label := Rect{X: labelPos.X, Y: labelPos.Y, W: labelW, H: labelH}
	if label.Contains(mouse) {
		return LabelElement(), true
	}

	// Value slot region: starts after the label, inset vertically by the
	// frame width on each side.
	slots := Rect{X: labelPos.X + labelW, Y: pos.Y + frameW, W: valW, H: rectH - frameW*2}
	if !slots.Contains(mouse) {
		return RectElement(), true
	}

	slotW := valueSlotWidth(valH)
	x := slots.X
	for i := 0; i < digitCount; i++ {
		col := Rect{X: x, Y: slots.Y, W: slotW, H: slots.H}
		if col.Contains(mouse) {
			return ValueGlyphElement(i, mouse.Y), true
		}
		x += slotW
	}
	// Rounding edge: inside the slot region but no column claimed it.
	return RectElement(), true
}

// compareY orders a new drag-reference Y against the previous one.
// Returns -1 when the pointer moved up, 1 when it moved down, 0 otherwise.
func compareY(newY, oldY float32) int {
	switch {
	case newY < oldY:
		return -1
	case newY > oldY:
		return 1
	default:
		return 0
	}
}

// adjustValue computes the value after one vertical drag step on the digit
// slot at the given column. The slot's decimal place is derived from its
// position relative to the decimal point in valString; moving up adds
// 10^power, moving down subtracts it, and the result is clamped into
// [minVal, maxVal].
func adjustValue(value, minVal, maxVal float64, slot int, ord int, valString string) float64 {
	if ord == 0 {
		return value
	}

	var power int
	if dot := strings.IndexByte(valString, '.'); dot < 0 {
		power = len(valString) - slot - 1
	} else {
		power = dot - slot - 1
		// The slot immediately after the point is the tenths place; slots
		// further right shift one extra because the point itself occupies
		// a column.
		if power < -1 {
			power++
		}
	}

	delta := math.Pow(10, float64(power))
	if ord < 0 {
		return clamp64(value+delta, minVal, maxVal)
	}
	return clamp64(value-delta, minVal, maxVal)
}

// numberFromFloat converts an adjusted float back to T. A value that
// cannot be represented (NaN or infinite) keeps the fallback instead of
// producing an unguarded conversion.
func numberFromFloat[T Number](f float64, fallback T) T {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return T(f)
}

// clampNumber clamps v into [lo, hi].
func clampNumber[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// drawValueString draws the value glyphs, one per fixed-width slot, with a
// hover or press highlight behind the slot named by the current state.
func drawValueString(ctx *Context, state State, slotY float32, rectColor uint32,
	slotW, padH float32, pos Vec2, size float32, fontColor uint32, s string) {

	highlightSlot := -1
	var slotColor uint32
	if state.Elem.Kind == ElemValueGlyph {
		switch state.Kind {
		case StateHighlighted:
			highlightSlot = state.Elem.Slot
			slotColor = Highlighted(rectColor)
		case StateClicked:
			highlightSlot = state.Elem.Slot
			slotColor = Clicked(rectColor)
		}
	}

	x := pos.X
	halfSlot := slotW / 2
	for i, r := range s {
		if i == highlightSlot {
			ctx.DrawList.AddRect(x, slotY, slotW, padH, slotColor)
		}
		adv := ctx.CharAdvance(r, size)
		ctx.AddChar(x+halfSlot-adv/2, pos.Y, r, size, fontColor)
		x += slotW
	}
}
