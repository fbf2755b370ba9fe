package dui

// Style defines the visual appearance and spacing of UI elements.
// The char cell size is taken from the glyph provider at init and should
// normally be left alone; everything else is free to tune at runtime
// through StyleRef.
type Style struct {
	// Char cell size in pixels. Derived from the glyph provider at init.
	CharWidth  int
	CharHeight int

	// Spacing
	LinePadding   int // Extra pixels between lines of text
	PanelPadding  int // Interior margin of panels
	ButtonPadding int // Space between a button's border and its label
	ButtonMargin  int // Horizontal gap after a button
	TabPadding    int // Space between a tab's border and its label
	TabMargin     int // Horizontal gap after a tab

	// Colors
	ColorBackground uint32 // Panel fill and title tab
	ColorBorder     uint32 // Panel and widget outlines
	ColorHover      uint32 // Widget fill under the pointer (and active tabs)
	ColorDefault    uint32 // Widget fill otherwise
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		LinePadding:   4,
		PanelPadding:  8,
		ButtonPadding: 4,
		ButtonMargin:  8,
		TabPadding:    8,
		TabMargin:     8,

		ColorBackground: RGBA(0xEE, 0xEE, 0xEE, 0xFF),
		ColorBorder:     RGBA(0x00, 0x00, 0x00, 0xFF),
		ColorHover:      RGBA(0xEE, 0xEE, 0xEE, 0xEE),
		ColorDefault:    RGBA(0xAA, 0xAA, 0xAA, 0xAA),
	}
}

// DarkStyle returns a dark theme suited to overlays on bright scenes.
func DarkStyle() Style {
	s := DefaultStyle()
	s.ColorBackground = RGBA(25, 25, 25, 240)
	s.ColorBorder = RGBA(100, 100, 100, 255)
	s.ColorHover = RGBA(70, 70, 70, 238)
	s.ColorDefault = RGBA(45, 45, 45, 170)
	return s
}

// LightStyle returns a light theme with opaque fills.
func LightStyle() Style {
	s := DefaultStyle()
	s.ColorBackground = RGBA(245, 245, 245, 255)
	s.ColorBorder = RGBA(60, 60, 60, 255)
	s.ColorHover = RGBA(220, 220, 220, 255)
	s.ColorDefault = RGBA(200, 200, 200, 255)
	return s
}
