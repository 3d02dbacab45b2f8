package gui

import (
	"fmt"
	"log/slog"
	"os"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if GUI debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// guiLogger is the logger for GUI debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
// The frame driver obtains one from GUI.Begin, runs every widget update
// against it, and hands it back in GUI.End. Widgets own no hidden state;
// everything cross-frame lives in FrameStores keyed by widget ID.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Styling
	style Style

	// Layout cursor for widgets placed without explicit positions
	cursor Vec2

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2
	DPIScale    float32

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Font texture ID (set by renderer) for the built-in font
	FontTextureID uint32

	// FontProvider for proportional font support (optional, interface-based)
	fontProvider FontProvider

	// Pre-allocated glyph buffer reused between text draws to avoid
	// per-call allocations.
	glyphBuffer []GlyphQuad

	// Per-frame text measurement cache. Key format: "text\x00size".
	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		idStack:          make([]ID, 0, 32),
		glyphBuffer:      make([]GlyphQuad, 0, 64),
		textMeasureCache: make(map[string]Vec2, 32),
		style:            DefaultStyle(),
		DPIScale:         1.0,
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance the frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.cursor = Vec2{0, 0}
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	// Measurements are only valid within one frame
	clear(ctx.textMeasureCache)
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// AdvanceCursor moves the cursor below an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
}

// SetFontProvider sets the font provider for proportional font support.
// Pass nil to fall back to the built-in monospace font.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
}

// FontProvider returns the current font provider, or nil if not set.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// SetFont sets the active font by name.
// Does nothing if no font provider is set.
func (ctx *Context) SetFont(name string) error {
	if ctx.fontProvider == nil {
		return nil
	}
	if err := ctx.fontProvider.SetActiveFont(name); err != nil {
		return fmt.Errorf("set font %q: %w", name, err)
	}
	return nil
}

// activeFont returns the current active font, or nil if no provider is set.
func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// LineHeight returns the height of a line of text at the given pixel size.
func (ctx *Context) LineHeight(size float32) float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(size)
	}
	return size
}

// MeasureText returns the pixel size of rendered text at the given font
// size. Uses the font provider if available, otherwise the monospace
// calculation. Results are cached per-frame.
func (ctx *Context) MeasureText(text string, size float32) Vec2 {
	key := text + "\x00" + fmt.Sprintf("%g", size)
	if cached, ok := ctx.textMeasureCache[key]; ok {
		return cached
	}

	var result Vec2
	if f := ctx.activeFont(); f != nil {
		result = f.MeasureText(text, size)
	} else {
		scale := ctx.monoScale(size)
		result = Vec2{X: float32(len(text)) * ctx.style.CharWidth * scale, Y: size}
	}

	ctx.textMeasureCache[key] = result
	return result
}

// CharAdvance returns the horizontal advance of one rune at the given
// font size. The dialer uses it to center a glyph within its slot.
func (ctx *Context) CharAdvance(r rune, size float32) float32 {
	if f := ctx.activeFont(); f != nil {
		return f.AdvanceWidth(r, size)
	}
	return ctx.style.CharWidth * ctx.monoScale(size)
}

// AddText draws text at (x, y) at the given pixel size.
// Uses the font provider if available, otherwise the built-in monospace font.
func (ctx *Context) AddText(x, y float32, text string, size float32, color uint32) {
	if f := ctx.activeFont(); f != nil {
		ctx.DrawList.SetTexture(f.TextureID())
		quads := f.GlyphQuads(text, x, y, size)

		if cap(ctx.glyphBuffer) < len(quads) {
			ctx.glyphBuffer = make([]GlyphQuad, 0, len(quads)*2)
		}
		ctx.glyphBuffer = append(ctx.glyphBuffer[:0], quads...)

		ctx.DrawList.AddGlyphQuads(ctx.glyphBuffer, color)
		ctx.DrawList.SetTexture(0)
		return
	}

	ctx.DrawList.SetTexture(ctx.FontTextureID)
	scale := ctx.monoScale(size)
	ctx.DrawList.AddText(x, y, text, color, scale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// AddChar draws a single glyph at (x, y) at the given pixel size.
func (ctx *Context) AddChar(x, y float32, r rune, size float32, color uint32) {
	if f := ctx.activeFont(); f != nil {
		ctx.DrawList.SetTexture(f.TextureID())
		quads := f.GlyphQuads(string(r), x, y, size)

		if cap(ctx.glyphBuffer) < len(quads) {
			ctx.glyphBuffer = make([]GlyphQuad, 0, len(quads)*2)
		}
		ctx.glyphBuffer = append(ctx.glyphBuffer[:0], quads...)

		ctx.DrawList.AddGlyphQuads(ctx.glyphBuffer, color)
		ctx.DrawList.SetTexture(0)
		return
	}

	ctx.DrawList.SetTexture(ctx.FontTextureID)
	scale := ctx.monoScale(size)
	ctx.DrawList.AddChar(x, y, r, color, scale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// monoScale converts a pixel size into a scale factor for the built-in
// monospace font's character cell.
func (ctx *Context) monoScale(size float32) float32 {
	if ctx.style.CharHeight <= 0 {
		return ctx.style.FontScale
	}
	return size / ctx.style.CharHeight
}
