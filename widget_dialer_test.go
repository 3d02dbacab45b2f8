package gui

import (
	"math"
	"strconv"
	"testing"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		totalLen  int
		precision int
		want      string
	}{
		{"integer no pad", 42, 2, 0, "42"},
		{"integer zero pad", 42, 3, 0, "042"},
		{"integer drops fraction", 42.7, 3, 0, "042"},
		{"fraction zero padded", 3, 5, 2, "03.00"},
		{"fraction truncated", 3.567, 5, 2, "03.56"},
		{"fraction extended", 3.5, 5, 2, "03.50"},
		{"tenths", 3.1, 5, 2, "03.10"},
		{"at max", 99.99, 5, 2, "99.99"},
		{"zero", 0, 5, 2, "00.00"},
		{"no pad needed", 123.4, 5, 1, "123.4"},
		{"wider than total", 1234, 3, 0, "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatValue(tt.value, tt.totalLen, tt.precision)
			if got != tt.want {
				t.Errorf("formatValue(%v, %d, %d) = %q, want %q",
					tt.value, tt.totalLen, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFormatValueInt(t *testing.T) {
	if got := formatValue(7, 3, 0); got != "007" {
		t.Errorf("formatValue(7, 3, 0) = %q, want %q", got, "007")
	}
	if got := formatValue(uint8(255), 3, 0); got != "255" {
		t.Errorf("formatValue(uint8(255), 3, 0) = %q, want %q", got, "255")
	}
	// Integer values with nonzero precision still gain a fraction.
	if got := formatValue(7, 5, 2); got != "07.00" {
		t.Errorf("formatValue(7, 5, 2) = %q, want %q", got, "07.00")
	}
}

func TestFormatValueFloat32NoNoise(t *testing.T) {
	// float32 values must not pick up binary representation noise
	// (0.1 must not render as 0.10000000149...).
	if got := formatValue(float32(0.1), 4, 2); got != "0.10" {
		t.Errorf("formatValue(float32(0.1), 4, 2) = %q, want %q", got, "0.10")
	}
}

type (
	volumeLevel float32
	gainDB      float64
	stepCount   int32
	portNumber  uint16
)

func TestFormatValueNamedTypes(t *testing.T) {
	// Named numeric types must format like their underlying kind. In
	// particular, extreme float magnitudes must never leak scientific
	// notation into the fixed-width digit string.
	if got := formatValue(volumeLevel(0.0000001), 4, 2); got != "0.00" {
		t.Errorf("formatValue(volumeLevel(1e-7), 4, 2) = %q, want %q", got, "0.00")
	}
	if got := formatValue(volumeLevel(0.1), 4, 2); got != "0.10" {
		t.Errorf("formatValue(volumeLevel(0.1), 4, 2) = %q, want %q", got, "0.10")
	}
	if got := formatValue(gainDB(0.0000001), 4, 2); got != "0.00" {
		t.Errorf("formatValue(gainDB(1e-7), 4, 2) = %q, want %q", got, "0.00")
	}
	if got := formatValue(gainDB(12345678.9), 8, 0); got != "12345678" {
		t.Errorf("formatValue(gainDB(12345678.9), 8, 0) = %q, want %q", got, "12345678")
	}
	if got := formatValue(stepCount(7), 3, 0); got != "007" {
		t.Errorf("formatValue(stepCount(7), 3, 0) = %q, want %q", got, "007")
	}
	if got := formatValue(portNumber(80), 4, 0); got != "0080" {
		t.Errorf("formatValue(portNumber(80), 4, 0) = %q, want %q", got, "0080")
	}
}

func TestFormatValueRoundTrip(t *testing.T) {
	// Formatting a value, parsing the string back, and reformatting
	// must reproduce the identical string.
	tests := []struct {
		value     float64
		totalLen  int
		precision int
	}{
		{3.567, 5, 2},
		{3.1, 5, 2},
		{0, 5, 2},
		{99.99, 5, 2},
		{42, 2, 0},
		{42.7, 3, 0},
		{123.4, 5, 1},
	}
	for _, tt := range tests {
		first := formatValue(tt.value, tt.totalLen, tt.precision)
		parsed, err := strconv.ParseFloat(first, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", first, err)
		}
		second := formatValue(parsed, tt.totalLen, tt.precision)
		if second != first {
			t.Errorf("formatValue(%v, %d, %d) round trip: %q then %q",
				tt.value, tt.totalLen, tt.precision, first, second)
		}
	}
}

func TestIntegerDigits(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99.99, 2},
		{100, 3},
		{999, 3},
		{-250, 3},
	}
	for _, tt := range tests {
		if got := integerDigits(tt.v); got != tt.want {
			t.Errorf("integerDigits(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestValueSlotWidth(t *testing.T) {
	if got := valueSlotWidth(24); got != 18 {
		t.Errorf("valueSlotWidth(24) = %v, want 18", got)
	}
	if got := valueSlotWidth(10); got != 7 {
		t.Errorf("valueSlotWidth(10) = %v, want 7", got)
	}
}

func TestHitTest(t *testing.T) {
	// Dialer at (100, 100), 200x80, frame width 2. Label 50x24 at
	// (120, 128); value row "42" right after it at 24px glyphs, so two
	// 18px slots from x=170.
	pos := Vec2{X: 100, Y: 100}
	labelPos := Vec2{X: 120, Y: 128}
	const (
		frameW         = float32(2)
		rectW, rectH   = float32(200), float32(80)
		labelW, labelH = float32(50), float32(24)
		valW, valH     = float32(36), float32(24)
		digits         = 2
	)

	tests := []struct {
		name     string
		mouse    Vec2
		wantElem Element
		wantOK   bool
	}{
		{"outside left", Vec2{X: 99, Y: 140}, Element{}, false},
		{"outside above", Vec2{X: 150, Y: 99}, Element{}, false},
		{"outside right edge exclusive", Vec2{X: 300, Y: 140}, Element{}, false},
		{"label", Vec2{X: 130, Y: 140}, LabelElement(), true},
		{"body left of label", Vec2{X: 105, Y: 140}, RectElement(), true},
		{"body below value row", Vec2{X: 175, Y: 179}, RectElement(), true},
		{"slot 0", Vec2{X: 171, Y: 140}, ValueGlyphElement(0, 140), true},
		{"slot 1", Vec2{X: 190, Y: 140}, ValueGlyphElement(1, 140), true},
		{"slot boundary belongs to next", Vec2{X: 188, Y: 140}, ValueGlyphElement(1, 140), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elem, ok := hitTest(pos, frameW, tt.mouse, rectW, rectH,
				labelPos, labelW, labelH, valW, valH, digits)
			if ok != tt.wantOK {
				t.Fatalf("hitTest(%v) ok = %v, want %v", tt.mouse, ok, tt.wantOK)
			}
			if ok && elem != tt.wantElem {
				t.Errorf("hitTest(%v) = %v, want %v", tt.mouse, elem, tt.wantElem)
			}
		})
	}
}

func TestHitTestNoLabel(t *testing.T) {
	// Without a label the label rectangle is zero-sized and can never match.
	pos := Vec2{X: 0, Y: 0}
	labelPos := Vec2{X: 82, Y: 38}
	elem, ok := hitTest(pos, 0, Vec2{X: 82, Y: 38}, 200, 100,
		labelPos, 0, 0, 36, 24, 2)
	if !ok {
		t.Fatal("expected a hit inside the dialer")
	}
	if elem.Kind != ElemValueGlyph || elem.Slot != 0 {
		t.Errorf("expected slot 0 hit, got %v", elem)
	}
}

func TestAdjustValue(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		min, max  float64
		slot      int
		ord       int
		valString string
		want      float64
	}{
		{"ones up", 42, 0, 999, 2, -1, "042", 43},
		{"ones down", 42, 0, 999, 2, 1, "042", 41},
		{"tens up", 42, 0, 999, 1, -1, "042", 52},
		{"hundreds up", 42, 0, 999, 0, -1, "042", 142},
		{"no movement", 42, 0, 999, 2, 0, "042", 42},
		{"clamp high", 998, 0, 999, 0, -1, "998", 999},
		{"clamp low", 5, 0, 999, 1, 1, "005", 0},
		{"units before point", 3, 0, 99.99, 1, -1, "03.00", 4},
		{"tens with point", 3, 0, 99.99, 0, -1, "03.00", 13},
		{"tenths", 3, 0, 99.99, 3, -1, "03.00", 3.1},
		{"hundredths", 3, 0, 99.99, 4, -1, "03.00", 3.01},
		{"point column acts as tenths", 3, 0, 99.99, 2, -1, "03.00", 3.1},
		{"clamp at float max", 99.99, 0, 99.99, 4, -1, "99.99", 99.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustValue(tt.value, tt.min, tt.max, tt.slot, tt.ord, tt.valString)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("adjustValue(%v, slot %d, ord %d, %q) = %v, want %v",
					tt.value, tt.slot, tt.ord, tt.valString, got, tt.want)
			}
		})
	}
}

func TestCompareY(t *testing.T) {
	if got := compareY(10, 20); got != -1 {
		t.Errorf("compareY(10, 20) = %d, want -1", got)
	}
	if got := compareY(20, 10); got != 1 {
		t.Errorf("compareY(20, 10) = %d, want 1", got)
	}
	if got := compareY(15, 15); got != 0 {
		t.Errorf("compareY(15, 15) = %d, want 0", got)
	}
}

func TestNumberFromFloat(t *testing.T) {
	if got := numberFromFloat(12.9, 0); got != 12 {
		t.Errorf("numberFromFloat[int](12.9) = %d, want 12", got)
	}
	if got := numberFromFloat(12.9, float64(0)); got != 12.9 {
		t.Errorf("numberFromFloat[float64](12.9) = %v, want 12.9", got)
	}
	if got := numberFromFloat(math.NaN(), 7); got != 7 {
		t.Errorf("numberFromFloat[int](NaN) = %d, want fallback 7", got)
	}
	if got := numberFromFloat(math.Inf(1), 7); got != 7 {
		t.Errorf("numberFromFloat[int](+Inf) = %d, want fallback 7", got)
	}
}

func TestClampNumber(t *testing.T) {
	if got := clampNumber(5, 0, 3); got != 3 {
		t.Errorf("clampNumber(5, 0, 3) = %d, want 3", got)
	}
	if got := clampNumber(-1.5, 0.0, 3.0); got != 0 {
		t.Errorf("clampNumber(-1.5, 0, 3) = %v, want 0", got)
	}
	if got := clampNumber(2, 0, 3); got != 2 {
		t.Errorf("clampNumber(2, 0, 3) = %d, want 2", got)
	}
}
