package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer     Renderer
	style        Style
	ctx          *Context
	fontProvider FontProvider
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithFontProvider sets the font provider used for all frames.
func WithFontProvider(fp FontProvider) GUIOption {
	return func(g *GUI) { g.fontProvider = fp }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()

	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()
	if g.fontProvider != nil {
		ctx.SetFontProvider(g.fontProvider)
	}

	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	if g.ctx.DrawList == nil {
		return nil
	}

	g.ctx.DrawList.Finalize()
	err := g.renderer.Render(g.ctx.DrawList)

	ReleaseDrawList(g.ctx.DrawList)
	g.ctx.DrawList = nil

	return err
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}

// SetFontProvider sets the font provider for advanced font support.
// The provider will be passed to each frame's Context.
func (g *GUI) SetFontProvider(fp FontProvider) {
	g.fontProvider = fp
}

// FontProvider returns the current font provider, or nil if not set.
func (g *GUI) FontProvider() FontProvider {
	return g.fontProvider
}
