package gui

// FontProvider is the interface for font management in the GUI system.
// It abstracts font loading, caching, and selection, allowing different
// implementations to be injected (system fonts, game fonts, mocks for tests).
//
// The gui package does not depend on any concrete font implementation.
// When no provider is set, the built-in monospace bitmap font is used.
type FontProvider interface {
	// ActiveFont returns the currently active font for rendering.
	// Returns nil if no font is loaded or active.
	ActiveFont() Font

	// SetActiveFont sets the active font by name.
	// Returns an error if the font is not found.
	SetActiveFont(name string) error
}

// Font is the interface for a single font that can render text.
//
// Implementations should be GPU-oriented, using pre-generated texture
// atlases rather than CPU rasterization at render time. Glyph lookups are
// assumed to succeed; fonts degrade to a visible fallback glyph for
// unsupported runes rather than reporting an error.
type Font interface {
	// TextureID returns the OpenGL texture ID for the font atlas.
	TextureID() uint32

	// MeasureText returns the pixel dimensions of the given text at the
	// specified pixel size.
	MeasureText(text string, size float32) Vec2

	// AdvanceWidth returns the horizontal advance of a single rune at the
	// specified pixel size. The dialer uses this to center each value
	// glyph inside its fixed-width slot.
	AdvanceWidth(r rune, size float32) float32

	// GlyphQuads generates quads for rendering the given text at (x, y).
	// Each quad contains screen coordinates and texture coordinates.
	// The returned slice should be used immediately and not stored.
	GlyphQuads(text string, x, y, size float32) []GlyphQuad

	// LineHeight returns the line height at the specified pixel size.
	LineHeight(size float32) float32
}
