// Command example shows the overlay on a GLFW window: a tab bar, a
// titled panel with a counter, and widgets mutating caller-owned state.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-debug-overlay/dui"
	"github.com/go-debug-overlay/dui/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("failed to initialize glfw: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "dui example", nil, nil)
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("failed to initialize opengl: %v", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}
	defer renderer.Delete()

	ui, err := dui.New(renderer,
		dui.WithPointerSource(opengl.NewGLFWPointerSource(window)),
	)
	if err != nil {
		log.Fatalf("failed to create ui: %v", err)
	}
	defer ui.Terminate()

	// All widget state lives here, owned by the caller.
	var (
		currentTab int
		ticks      int
		autoTick   bool
		direction  int // 0 increments, 1 decrements
	)

	for !window.ShouldClose() {
		glfw.PollEvents()

		gl.ClearColor(0.2, 0.3, 0.3, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ui.Update()
		ctx := ui.Context()

		ctx.MoveCursor(32, 32)
		ctx.BeginTabBar()

		if ctx.Tab("COUNTER", 0, &currentTab) {
			ctx.PanelStart("TICKER", 160, 0, false)

			ctx.Println("TICKS: %d", ticks)

			if ctx.Button("TICK!") || autoTick {
				if direction == 0 {
					ticks++
				} else {
					ticks--
				}
			}
			ctx.Newline()

			ctx.Checkbox("AUTO TICK", &autoTick)
			ctx.Newline()

			ctx.Radio("INCREMENT", 0, &direction)
			ctx.Newline()
			ctx.Radio("DECREMENT", 1, &direction)

			ctx.PanelEnd()
		}

		if ctx.Tab("STYLE", 1, &currentTab) {
			ctx.PanelStart("STYLE", 160, 0, false)

			if ctx.Button("DEFAULT") {
				ctx.SetStyle(dui.DefaultStyle())
			}
			ctx.Newline()
			if ctx.Button("DARK") {
				ctx.SetStyle(dui.DarkStyle())
			}
			ctx.Newline()
			if ctx.Button("LIGHT") {
				ctx.SetStyle(dui.LightStyle())
			}

			ctx.PanelEnd()
		}

		if ctx.Tab("INPUT", 2, &currentTab) {
			ctx.PanelStart("POINTER", 160, 0, false)

			in := ctx.Input()
			pos := in.Position()
			ctx.Println("X: %d Y: %d", pos.X, pos.Y)
			ctx.Println("DOWN: %t", in.Down())

			ctx.PanelEnd()
		}

		if ctx.Tab("ABOUT", 3, &currentTab) {
			ctx.PanelStart("ABOUT", 240, 0, false)

			ctx.Println("IMMEDIATE-MODE DEBUG OVERLAY")
			ctx.Println("ALL STATE IS OWNED BY MAIN")

			ctx.PanelEnd()
		}

		ui.Render()
		window.SwapBuffers()
	}
}
