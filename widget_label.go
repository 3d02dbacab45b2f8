package gui

// Label draws a text string at an explicit position. Size is the pixel
// height of the text; 0 uses the style font size, and a zero color uses
// the style text color.
func (ctx *Context) Label(pos Vec2, text string, size float32, color uint32) {
	if size <= 0 {
		size = ctx.style.FontSize
	}
	if color == 0 {
		color = ctx.style.TextColor
	}
	ctx.AddText(pos.X, pos.Y, text, size, color)
}

// Text draws text at the current cursor position and advances the cursor.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color at the current cursor
// position and advances the cursor.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.GetCursorPos()
	size := ctx.style.FontSize
	ctx.AddText(pos.X, pos.Y, text, size, color)
	ctx.AdvanceCursor(ctx.MeasureText(text, size))
}
