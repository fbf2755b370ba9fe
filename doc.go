/*
Package dui provides an immediate-mode debug overlay for drawing simple
panels and widgets on top of an application's own rendering.

# Overview

The overlay is rebuilt every frame. There is no retained widget tree and
no callbacks: widget calls draw immediately and report interaction
through their return values, and every piece of widget state (a
checkbox's boolean, a radio group's index) is a variable the caller
owns and passes in by pointer. Dropping a widget from the frame loop
removes it; there is nothing to unregister.

Rendering goes through the Renderer interface, so the overlay works on
any host that can fill rectangles and blit textures. The backend/opengl
package renders on OpenGL 4.1; backend/software renders into in-memory
images for headless use.

# Quick Start

	renderer, err := opengl.NewRenderer(1280, 720)
	if err != nil {
	    log.Fatal(err)
	}
	ui, err := dui.New(renderer,
	    dui.WithPointerSource(opengl.NewGLFWPointerSource(window)))
	if err != nil {
	    log.Fatal(err)
	}
	defer ui.Terminate()

	showDetails := false

	for !window.ShouldClose() {
	    ui.Update()
	    ctx := ui.Context()

	    ctx.MoveCursor(32, 32)
	    ctx.PanelStart("DEBUG", 120, 0, false)
	    ctx.Println("FRAME TIME: %0.1f MS", frameMS)
	    if ctx.Button("RESET") {
	        frameMS = 0
	    }
	    ctx.Newline()
	    ctx.Checkbox("DETAILS", &showDetails)
	    ctx.PanelEnd()

	    ui.Render()
	    window.SwapBuffers()
	}

# Cursor and Layout

Layout is a cursor, not a constraint system. Widgets draw at the cursor
and advance it; Newline drops to the next line at the x position of the
last MoveCursor. Each widget's *At variant draws at an explicit position
and leaves the cursor alone.

# Panels

PanelStart redirects drawing to an offscreen surface until the matching
PanelEnd composites it onto the parent, so a panel's background is drawn
under content that was emitted before the panel's final size was known.
Non-fixed panels grow to fit whatever is drawn inside them. Panels nest
up to the configured depth (WithMaxDepth, default 10); unbalanced
start/end calls panic with ErrPanelOverflow or ErrPanelUnderflow since
the frame cannot be composited sensibly after that.

# Widgets

	ctx.Button(label string) bool
	    Returns true on the frame it is clicked.

	ctx.Checkbox(label string, checked *bool) bool
	    Toggles *checked on click; returns the resulting state.

	ctx.Radio(label string, index int, currentIndex *int) bool
	    Sets *currentIndex to index on click; returns whether this
	    option is active. One shared currentIndex makes a group.

	ctx.BeginTabBar()
	ctx.Tab(label string, index int, currentIndex *int) bool
	    Tabs share a row anchored by BeginTabBar; draw a tab's body
	    inside the branch where Tab returns true.

	ctx.Print / ctx.Println / ctx.PrintAt
	    Formatted bitmap-font text.

A click registers on the frame the button goes down, at most once per
physical press.

# Text

Text uses a fixed-cell bitmap font. The builtin font covers uppercase
ASCII and folds lowercase; unmapped characters render as '?'. Inject a
different atlas with WithGlyphProvider.

# Concurrency

A UI and its Context are confined to the host's render thread. Nothing
in the package is safe for concurrent use.
*/
package dui
