package gui

import "testing"

func TestNextState(t *testing.T) {
	slot := ValueGlyphElement(2, 100)

	tests := []struct {
		name   string
		hit    Element
		hitOK  bool
		prev   State
		down   bool
		mouseY float32
		want   State
	}{
		{
			name: "idle outside stays normal",
			prev: NormalState(),
			want: NormalState(),
		},
		{
			name:  "hover highlights the element",
			hit:   slot,
			hitOK: true,
			prev:  NormalState(),
			want:  HighlightedState(slot),
		},
		{
			name:  "press while normal is swallowed",
			hit:   slot,
			hitOK: true,
			prev:  NormalState(),
			down:  true,
			want:  NormalState(),
		},
		{
			name:  "press while highlighted clicks",
			hit:   slot,
			hitOK: true,
			prev:  HighlightedState(slot),
			down:  true,
			want:  ClickedState(slot),
		},
		{
			name:  "release over widget highlights hit",
			hit:   RectElement(),
			hitOK: true,
			prev:  ClickedState(slot),
			want:  HighlightedState(RectElement()),
		},
		{
			name:   "held click keeps element and tracks y",
			hit:    slot,
			hitOK:  true,
			prev:   ClickedState(slot),
			down:   true,
			mouseY: 80,
			want:   ClickedState(ValueGlyphElement(2, 80)),
		},
		{
			name:   "drag continues outside the widget",
			prev:   ClickedState(slot),
			down:   true,
			mouseY: 60,
			want:   ClickedState(ValueGlyphElement(2, 60)),
		},
		{
			name: "drag on body keeps body element",
			prev: ClickedState(RectElement()),
			down: true,
			want: ClickedState(RectElement()),
		},
		{
			name: "release outside resets",
			prev: ClickedState(slot),
			want: NormalState(),
		},
		{
			name: "hover leaves resets highlight",
			prev: HighlightedState(slot),
			want: NormalState(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextState(tt.hit, tt.hitOK, tt.prev, tt.down, tt.mouseY)
			if got != tt.want {
				t.Errorf("nextState() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementString(t *testing.T) {
	if got := ValueGlyphElement(3, 0).String(); got == "" {
		t.Error("ValueGlyphElement String() is empty")
	}
	if RectElement().String() == LabelElement().String() {
		t.Error("distinct elements must not share a String()")
	}
}

func TestStateString(t *testing.T) {
	states := []State{NormalState(), HighlightedState(RectElement()), ClickedState(RectElement())}
	seen := map[string]bool{}
	for _, s := range states {
		str := s.String()
		if str == "" {
			t.Errorf("State %v String() is empty", s.Kind)
		}
		if seen[str] {
			t.Errorf("duplicate String() %q", str)
		}
		seen[str] = true
	}
}
