// Package gui provides an immediate-mode numeric dialer widget and the
// small frame/draw/input plumbing it runs on. It uses a dedicated Context
// type (not context.Context) passed explicitly into the per-frame update.
package gui

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
// Containment is half-open: the left/top edges are inside, the
// right/bottom edges are not.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Highlighted returns the hover variant of a color: each channel is
// nudged toward white while alpha is preserved.
func Highlighted(c uint32) uint32 {
	return brighten(c, 30)
}

// Clicked returns the pressed variant of a color, brighter than the
// Highlighted variant.
func Clicked(c uint32) uint32 {
	return brighten(c, 60)
}

// brighten adds amt to each color channel, saturating at 255.
func brighten(c uint32, amt int) uint32 {
	r, g, b, a := UnpackRGBA(c)
	add := func(ch uint8) uint8 {
		v := int(ch) + amt
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return RGBA(add(r), add(g), add(b), a)
}

// PlainContrast returns black or white, whichever contrasts more with c.
// Used for value glyphs when no explicit label color is given.
func PlainContrast(c uint32) uint32 {
	r, g, b, _ := UnpackRGBA(c)
	luma := (299*int(r) + 587*int(g) + 114*int(b)) / 1000
	if luma > 127 {
		return ColorBlack
	}
	return ColorWhite
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp64 clamps a float64 value to a range.
func clamp64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
