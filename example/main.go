// Example demonstrates number dialers in a minimal GUI window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL GUI renderer,
// and renders two number dialers: an integer one and a fixed-precision
// float one. Click a digit and drag vertically to change its value.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-dialer/gui"
	"github.com/go-dialer/gui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "number dialer example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
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

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	// Load a theme from disk when present, fall back to the dark style.
	style := gui.DarkStyle()
	if loaded, err := gui.LoadTheme("theme.yaml"); err == nil {
		style = loaded
	}

	ui := gui.New(renderer, gui.WithStyle(style))

	// Application state.
	volume := 32.5
	count := 7

	for !window.ShouldClose() {
		glfw.PollEvents()
		inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := gui.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(inputAdapter.Input(), displaySize, 1.0/60.0)

		gui.NumberDialer(ctx, "volume", gui.DialerParams[float64]{
			Value:     volume,
			Min:       0,
			Max:       99.99,
			Precision: 2,
			Pos:       gui.Vec2{X: 220, Y: 180},
			Width:     360,
			Height:    80,
			Frame:     &gui.FrameSpec{Width: 2},
			Label:     &gui.LabelSpec{Text: "Volume", Size: 24},
			OnChange:  func(v float64) { volume = v },
		})

		gui.NumberDialer(ctx, "count", gui.DialerParams[int]{
			Value:    count,
			Min:      0,
			Max:      999,
			Pos:      gui.Vec2{X: 220, Y: 300},
			Width:    360,
			Height:   80,
			Frame:    &gui.FrameSpec{Width: 2},
			Label:    &gui.LabelSpec{Text: "Count", Size: 24},
			OnChange: func(v int) { count = v },
		})

		ctx.Label(gui.Vec2{X: 220, Y: 420},
			fmt.Sprintf("volume=%.2f count=%d", volume, count), 16, 0)

		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
