package dui

import (
	"log/slog"
	"os"
)

// duiLogLevel controls debug logging for the package.
// Set DUI_DEBUG=1 to enable debug output.
var duiLogLevel = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	if os.Getenv("DUI_DEBUG") != "" {
		v.Set(slog.LevelDebug)
	}
	return v
}()

var duiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: duiLogLevel}))

// Context holds all state for one UI session: style, cursor, panel
// stack, and the per-frame input snapshot. Widgets are methods on
// Context so independent sessions (e.g. one per window) never share
// state. A Context is not safe for concurrent use; confine it to the
// render thread.
type Context struct {
	renderer Renderer
	glyphs   GlyphProvider
	fontTex  Texture

	style Style

	// Cursor and the x position new lines return to.
	cursor    Point
	lineStart int

	// Where the next tab in the current bar starts. See BeginTabBar.
	tabCursor Point

	// Panel stack. Slot 0 is the root panel (the presentation surface,
	// surface nil, never popped); panelIdx is the active slot.
	panels   []panelFrame
	panelIdx int

	overlay Surface

	input Input

	// Scratch buffer for Print formatting, reused across calls.
	printBuf []byte
}

// Style returns the current style by value.
func (ctx *Context) Style() Style {
	return ctx.style
}

// StyleRef returns a mutable reference to the current style for
// in-place tuning. Changes take effect on the next draw call.
func (ctx *Context) StyleRef() *Style {
	return &ctx.style
}

// SetStyle replaces the whole style record. The char cell size fields
// are preserved; they are derived from the glyph provider at init.
func (ctx *Context) SetStyle(style Style) {
	style.CharWidth = ctx.style.CharWidth
	style.CharHeight = ctx.style.CharHeight
	ctx.style = style
}

// Input returns the current frame's input snapshot.
func (ctx *Context) Input() *Input {
	return &ctx.input
}

// MoveCursor sets the cursor to an absolute position. The x coordinate
// becomes the start of future lines for Newline.
func (ctx *Context) MoveCursor(x, y int) {
	ctx.cursor = Point{X: x, Y: y}
	ctx.lineStart = x
}

// MoveCursorRelative offsets the cursor from its current position.
// The resulting x coordinate becomes the start of future lines.
func (ctx *Context) MoveCursorRelative(dx, dy int) {
	ctx.cursor.X += dx
	ctx.cursor.Y += dy
	ctx.lineStart = ctx.cursor.X
}

// Cursor returns the current cursor position.
func (ctx *Context) Cursor() (x, y int) {
	return ctx.cursor.X, ctx.cursor.Y
}

// Newline moves the cursor to the beginning of the next line:
// y advances by the char height plus line padding, x returns to the
// line start. The new position contributes to the active panel's
// bounds even if nothing is printed after it.
func (ctx *Context) Newline() {
	ctx.cursor.Y += ctx.style.CharHeight + ctx.style.LinePadding
	ctx.cursor.X = ctx.lineStart
	ctx.growPanel()
}

// fill paints a rectangle on the current target, applying the color to
// the renderer just before the fill.
func (ctx *Context) fill(r Rect, color uint32) {
	ctx.renderer.SetColor(color)
	ctx.renderer.FillRect(r)
}

// stroke outlines a rectangle on the current target.
func (ctx *Context) stroke(r Rect, color uint32) {
	ctx.renderer.SetColor(color)
	ctx.renderer.StrokeRect(r)
}
