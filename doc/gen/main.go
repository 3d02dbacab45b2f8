// Command gen renders the number dialer in its interaction states with
// sample data, captures framebuffer pixels, and saves JPEG screenshots
// to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-dialer/gui"
	"github.com/go-dialer/gui/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single dialer screenshot to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	style  func() gui.Style       // nil = DefaultStyle
	draw   func(ctx *gui.Context) // drawing function, run every frame
	frames int                    // frames to render (0 = default 2)

	// drive simulates pointer input before each frame; nil leaves the
	// input untouched (no pointer over the widget).
	drive func(frame int, in *gui.InputState)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection — do NOT call window.SetSize because
	// GLFW processes resizes asynchronously, causing framebuffer/scissor mismatches.
	// The hidden window stays at 800×600 (larger than every screenshot).
	renderer.Resize(s.width, s.height)

	style := gui.DefaultStyle()
	if s.style != nil {
		style = s.style()
	}

	// Fresh GUI per screenshot to avoid state leaking between captures.
	ui := gui.New(renderer, gui.WithStyle(style))
	input := gui.NewInputState()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		input.Reset()
		if s.drive != nil {
			s.drive(i, input)
		}

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(input, displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of dialer screenshots to generate.
func buildScreenshots() []screenshot {
	intParams := gui.DialerParams[int]{
		Value: 42, Min: 0, Max: 999,
		Pos: gui.Vec2{X: 20, Y: 20}, Width: 360, Height: 80,
		Frame: &gui.FrameSpec{Width: 2},
	}

	floatParams := gui.DialerParams[float64]{
		Value: 32.5, Min: 0, Max: 99.99, Precision: 2,
		Pos: gui.Vec2{X: 20, Y: 20}, Width: 360, Height: 80,
		Frame: &gui.FrameSpec{Width: 2},
		Label: &gui.LabelSpec{Text: "Volume", Size: 24},
	}

	// The float dialer above centers "Volume: 32.50" at x=20..380; the
	// value row starts right after the label and the tens slot is near
	// x=190 at the default metrics. Pointing there shows the hover and
	// press highlights.
	overSlot := gui.Vec2{X: 195, Y: 60}

	return []screenshot{
		{
			name: "dialer_int", width: 400, height: 120,
			draw: func(ctx *gui.Context) {
				gui.NumberDialer(ctx, "int", intParams)
			},
		},
		{
			name: "dialer_float_labeled", width: 400, height: 120,
			draw: func(ctx *gui.Context) {
				gui.NumberDialer(ctx, "float", floatParams)
			},
		},
		{
			name: "dialer_highlighted", width: 400, height: 120, frames: 3,
			drive: func(frame int, in *gui.InputState) {
				in.SetMousePos(overSlot.X, overSlot.Y)
			},
			draw: func(ctx *gui.Context) {
				gui.NumberDialer(ctx, "hover", floatParams)
			},
		},
		{
			name: "dialer_clicked", width: 400, height: 120, frames: 4,
			drive: func(frame int, in *gui.InputState) {
				in.SetMousePos(overSlot.X, overSlot.Y)
				// Hover first so the press lands on a highlighted slot.
				if frame >= 1 {
					in.SetMouseButton(gui.MouseButtonLeft, true)
				}
			},
			draw: func(ctx *gui.Context) {
				gui.NumberDialer(ctx, "click", floatParams)
			},
		},
		{
			name: "dialer_dark", width: 400, height: 120,
			style: gui.DarkStyle,
			draw: func(ctx *gui.Context) {
				gui.NumberDialer(ctx, "dark", floatParams)
			},
		},
		{
			name: "dialer_light", width: 400, height: 120,
			style: gui.LightStyle,
			draw: func(ctx *gui.Context) {
				gui.NumberDialer(ctx, "light", floatParams)
			},
		},
		{
			name: "dialer_stack", width: 400, height: 300,
			draw: func(ctx *gui.Context) {
				gui.NumberDialer(ctx, "a", gui.DialerParams[int]{
					Value: 7, Min: 0, Max: 99,
					Pos: gui.Vec2{X: 20, Y: 20}, Width: 360, Height: 70,
					Frame: &gui.FrameSpec{Width: 2},
					Label: &gui.LabelSpec{Text: "Count", Size: 24},
				})
				gui.NumberDialer(ctx, "b", gui.DialerParams[float32]{
					Value: 1.5, Min: 0, Max: 9.9, Precision: 1,
					Pos: gui.Vec2{X: 20, Y: 110}, Width: 360, Height: 70,
					Frame: &gui.FrameSpec{Width: 2},
					Label: &gui.LabelSpec{Text: "Speed", Size: 24},
				})
				gui.NumberDialer(ctx, "c", gui.DialerParams[int]{
					Value: 180, Min: 0, Max: 359,
					Pos: gui.Vec2{X: 20, Y: 200}, Width: 360, Height: 70,
					Frame: &gui.FrameSpec{Width: 2},
					Label: &gui.LabelSpec{Text: "Angle", Size: 24},
				})
			},
		},
	}
}
