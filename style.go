package gui

// Style defines the visual appearance of the dialer and its companions.
// Per-element hover and press variants are derived from the base colors
// with Highlighted and Clicked rather than stored separately.
type Style struct {
	// Colors
	WidgetColor uint32 // Dialer body fill
	FrameColor  uint32 // Default border color when a frame is requested
	TextColor   uint32 // Label and value glyphs (0 = contrast of WidgetColor)

	// Value glyphs
	FontSize float32 // Pixel size of the value glyph row

	// Built-in monospace font metrics (used when no FontProvider is set)
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	// Border
	FrameWidth float32 // Default frame width when a frame is requested

	// Layout
	ItemSpacing float32 // Default gap between successive widgets
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		WidgetColor: RGBA(50, 50, 50, 255),
		FrameColor:  RGBA(100, 100, 100, 255),
		TextColor:   ColorWhite,

		FontSize: 24,

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,

		FrameWidth:  1,
		ItemSpacing: 4,
	}
}

// DarkStyle returns a darker theme with a blue accent frame.
func DarkStyle() Style {
	s := DefaultStyle()
	s.WidgetColor = RGBA(25, 25, 30, 255)
	s.FrameColor = RGBA(65, 105, 225, 255)
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	return Style{
		WidgetColor: RGBA(235, 235, 235, 255),
		FrameColor:  RGBA(150, 150, 150, 255),
		TextColor:   RGBA(20, 20, 20, 255),

		FontSize: 24,

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,

		FrameWidth:  1,
		ItemSpacing: 4,
	}
}
