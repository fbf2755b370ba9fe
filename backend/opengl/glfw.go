package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWPointerSource adapts a GLFW window to dui.PointerSource.
type GLFWPointerSource struct {
	window *glfw.Window
}

// NewGLFWPointerSource creates a pointer source polling the given
// window's cursor and left mouse button.
func NewGLFWPointerSource(window *glfw.Window) *GLFWPointerSource {
	return &GLFWPointerSource{window: window}
}

// PointerState returns the cursor position in window coordinates and
// whether the left button is held.
func (p *GLFWPointerSource) PointerState() (int, int, bool) {
	x, y := p.window.GetCursorPos()
	down := p.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	return int(x), int(y), down
}
