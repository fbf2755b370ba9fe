package dui

import (
	"errors"
	"fmt"
)

// DefaultMaxDepth is the panel stack depth used unless WithMaxDepth is
// given. Slot 0 is the root panel and does not count against it.
const DefaultMaxDepth = 10

// Panel stack discipline violations. There is no way to recover a
// consistent compositing target once the stack is unbalanced, so these
// are raised as panics (wrapping the sentinel) rather than returned.
var (
	ErrPanelOverflow  = errors.New("dui: panel stack overflow")
	ErrPanelUnderflow = errors.New("dui: panel stack underflow")
)

// panelFrame is one slot of the panel stack.
type panelFrame struct {
	fixed   bool
	bounds  Rect
	title   string
	surface Surface // nil for slot 0 (the presentation surface)
}

func (ctx *Context) currentPanel() *panelFrame {
	return &ctx.panels[ctx.panelIdx]
}

func (ctx *Context) pushPanel() *panelFrame {
	if ctx.panelIdx >= len(ctx.panels)-1 {
		duiLogger.Error("panel stack overflow", "depth", ctx.panelIdx)
		panic(fmt.Errorf("%w: max depth %d exceeded", ErrPanelOverflow, len(ctx.panels)-1))
	}
	ctx.panelIdx++
	p := ctx.currentPanel()
	p.bounds = Rect{}
	return p
}

func (ctx *Context) popPanel() {
	if ctx.panelIdx <= 0 {
		duiLogger.Error("panel stack underflow")
		panic(fmt.Errorf("%w: PanelEnd without matching PanelStart", ErrPanelUnderflow))
	}
	ctx.panelIdx--
}

// growPanel extends the active panel's bounds to enclose the cursor.
// Bounds only ever grow within a start/end bracket; fixed panels are
// left alone. Every draw primitive calls this.
func (ctx *Context) growPanel() {
	p := ctx.currentPanel()
	if p.fixed {
		return
	}
	if w := ctx.cursor.X - p.bounds.X; w > p.bounds.W {
		p.bounds.W = w
	}
	if h := ctx.cursor.Y - p.bounds.Y; h > p.bounds.H {
		p.bounds.H = h
	}
}

// PanelStart begins a panel at the cursor with the given minimum size.
// Drawing is redirected to the panel's offscreen surface until the
// matching PanelEnd, which composites it onto the parent. A non-fixed
// panel grows to enclose everything drawn inside it.
//
// A non-empty title reserves room for a title tab above the top-left
// corner. Every PanelStart must be matched by a PanelEnd in the same
// frame; exceeding the configured stack depth panics with
// ErrPanelOverflow.
func (ctx *Context) PanelStart(title string, width, height int, fixed bool) {
	p := ctx.pushPanel()
	p.fixed = fixed
	p.title = title
	p.bounds = Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: width + ctx.style.PanelPadding,
		H: height + ctx.style.PanelPadding,
	}

	if p.title != "" {
		p.bounds.Y += ctx.style.CharHeight / 2
		ctx.MoveCursorRelative(0, ctx.style.CharHeight)
	}

	ctx.MoveCursorRelative(ctx.style.PanelPadding, ctx.style.PanelPadding)

	ctx.renderer.SetTarget(p.surface)
	ctx.renderer.Clear(ColorTransparent)
}

// PanelEnd finishes the active panel: pads the grown bounds, draws the
// title tab if present, fills and outlines the bounding rectangle on
// the parent surface, composites the panel's surface over it, and
// moves the cursor to just below the panel at its left edge.
func (ctx *Context) PanelEnd() {
	if ctx.panelIdx <= 0 {
		duiLogger.Error("panel stack underflow")
		panic(fmt.Errorf("%w: PanelEnd without matching PanelStart", ErrPanelUnderflow))
	}

	p := ctx.currentPanel()
	p.bounds.W += ctx.style.PanelPadding
	p.bounds.H += ctx.style.PanelPadding

	bounds := p.bounds

	if p.title != "" {
		tab := Rect{
			X: bounds.X + ctx.style.CharWidth,
			Y: bounds.Y - ctx.style.CharHeight/2,
			W: ctx.style.CharWidth * (labelCells(p.title) + 2),
			H: ctx.style.CharHeight,
		}
		ctx.fill(tab, ctx.style.ColorBackground)
		ctx.PrintAt(tab.X+ctx.style.CharWidth, tab.Y, "%s", p.title)
	}

	// Composite onto the parent. The panel surface is window-sized and
	// transparent outside the bounded region, so the whole-surface blit
	// only contributes the panel's content.
	ctx.renderer.SetTarget(ctx.panels[ctx.panelIdx-1].surface)
	ctx.fill(bounds, ctx.style.ColorBackground)
	ctx.stroke(bounds, ctx.style.ColorBorder)
	ctx.renderer.BlitSurface(p.surface, Rect{}, Rect{})

	ctx.MoveCursor(bounds.X, bounds.Y+bounds.H+ctx.style.LinePadding)

	ctx.popPanel()
}

// Panel draws a fixed background box of the given size at the cursor
// and insets the cursor by the panel padding. Unlike PanelStart it does
// not redirect drawing or touch the panel stack; use it for a simple
// backdrop that needs no auto-sizing.
func (ctx *Context) Panel(width, height int) {
	bounds := Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: width, H: height}
	ctx.fill(bounds, ctx.style.ColorBackground)
	ctx.stroke(bounds, ctx.style.ColorBorder)
	ctx.MoveCursorRelative(ctx.style.PanelPadding, ctx.style.PanelPadding)
	ctx.growPanel()
}

// OverlayStart redirects drawing to the overlay surface, which is
// composited over everything else by UI.Render at the end of the
// frame. Must be balanced with OverlayEnd and must not span a panel
// bracket.
func (ctx *Context) OverlayStart() {
	ctx.renderer.SetTarget(ctx.overlay)
}

// OverlayEnd restores drawing to the active panel's surface.
func (ctx *Context) OverlayEnd() {
	ctx.renderer.SetTarget(ctx.currentPanel().surface)
}
