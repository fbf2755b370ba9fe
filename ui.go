package dui

import "fmt"

// UI owns one overlay session: the context, the panel surfaces, the
// font texture, and the optional pointer source polled each frame.
type UI struct {
	ctx     Context
	pointer PointerSource
}

type config struct {
	style    Style
	maxDepth int
	glyphs   GlyphProvider
	pointer  PointerSource
}

// Option configures a UI at construction time.
type Option func(*config)

// WithStyle sets the initial style. The char cell size fields are
// overwritten from the glyph provider.
func WithStyle(style Style) Option {
	return func(c *config) {
		c.style = style
	}
}

// WithMaxDepth sets how many panels may be nested. Values below 1 are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth >= 1 {
			c.maxDepth = depth
		}
	}
}

// WithGlyphProvider replaces the builtin font.
func WithGlyphProvider(glyphs GlyphProvider) Option {
	return func(c *config) {
		if glyphs != nil {
			c.glyphs = glyphs
		}
	}
}

// WithPointerSource sets the pointer polled by Update. Without one,
// input can still be fed manually through Context().Input().
func WithPointerSource(pointer PointerSource) Option {
	return func(c *config) {
		c.pointer = pointer
	}
}

// New creates a UI on the given renderer. It uploads the font atlas and
// allocates one window-sized offscreen surface per panel depth plus the
// overlay surface, so construction cost scales with the configured
// depth, not with per-frame usage.
func New(renderer Renderer, opts ...Option) (*UI, error) {
	cfg := config{
		style:    DefaultStyle(),
		maxDepth: DefaultMaxDepth,
		glyphs:   BuiltinFont(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	width, height := renderer.Size()
	cfg.style.CharWidth, cfg.style.CharHeight = cfg.glyphs.CellSize()

	fontTex, err := renderer.CreateTexture(cfg.glyphs.Atlas())
	if err != nil {
		return nil, fmt.Errorf("dui: uploading font atlas: %w", err)
	}

	// Slot 0 is the root panel: it draws straight to the presentation
	// surface and its bounds never move.
	panels := make([]panelFrame, cfg.maxDepth+1)
	panels[0] = panelFrame{
		fixed:  true,
		bounds: Rect{W: width, H: height},
	}

	release := func(n int) {
		for i := 1; i <= n; i++ {
			panels[i].surface.Release()
		}
		fontTex.Release()
	}

	for i := 1; i <= cfg.maxDepth; i++ {
		surface, err := renderer.CreateSurface(width, height)
		if err != nil {
			release(i - 1)
			return nil, fmt.Errorf("dui: allocating panel surface %d: %w", i, err)
		}
		panels[i].surface = surface
	}

	overlay, err := renderer.CreateSurface(width, height)
	if err != nil {
		release(cfg.maxDepth)
		return nil, fmt.Errorf("dui: allocating overlay surface: %w", err)
	}

	ui := &UI{
		ctx: Context{
			renderer: renderer,
			glyphs:   cfg.glyphs,
			fontTex:  fontTex,
			style:    cfg.style,
			panels:   panels,
			overlay:  overlay,
			printBuf: make([]byte, 0, printBufSize),
		},
		pointer: cfg.pointer,
	}

	duiLogger.Debug("ui created",
		"width", width, "height", height,
		"max_depth", cfg.maxDepth,
		"char_width", cfg.style.CharWidth, "char_height", cfg.style.CharHeight)

	return ui, nil
}

// Context returns the drawing context. Widgets, cursor movement, and
// panels are methods on it.
func (ui *UI) Context() *Context {
	return &ui.ctx
}

// Update begins a frame: it polls the pointer source once and rebuilds
// the input snapshot. Call it before any widget, once per frame.
func (ui *UI) Update() {
	if ui.pointer == nil {
		return
	}
	x, y, down := ui.pointer.PointerState()
	ui.ctx.input.update(x, y, down)
}

// Render finishes a frame: it composites the overlay surface onto the
// presentation surface and clears the overlay for the next frame. The
// panel stack must be balanced by now; an unmatched PanelStart leaves
// drawing redirected to an offscreen surface.
func (ui *UI) Render() {
	r := ui.ctx.renderer
	r.SetTarget(nil)
	r.BlitSurface(ui.ctx.overlay, Rect{}, Rect{})

	r.SetTarget(ui.ctx.overlay)
	r.Clear(ColorTransparent)
	r.SetTarget(nil)
}

// Terminate releases every surface and texture the UI allocated. The UI
// must not be used afterwards.
func (ui *UI) Terminate() {
	for i := 1; i < len(ui.ctx.panels); i++ {
		if ui.ctx.panels[i].surface != nil {
			ui.ctx.panels[i].surface.Release()
			ui.ctx.panels[i].surface = nil
		}
	}
	if ui.ctx.overlay != nil {
		ui.ctx.overlay.Release()
		ui.ctx.overlay = nil
	}
	if ui.ctx.fontTex != nil {
		ui.ctx.fontTex.Release()
		ui.ctx.fontTex = nil
	}
	duiLogger.Debug("ui terminated")
}
