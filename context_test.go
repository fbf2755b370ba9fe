package dui_test

import (
	"testing"

	"github.com/go-debug-overlay/dui"
)

func TestMoveCursor(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ctx := ui.Context()

	ctx.MoveCursor(40, 60)
	if x, y := ctx.Cursor(); x != 40 || y != 60 {
		t.Errorf("Cursor() = (%d, %d), want (40, 60)", x, y)
	}

	ctx.MoveCursorRelative(10, -20)
	if x, y := ctx.Cursor(); x != 50 || y != 40 {
		t.Errorf("Cursor() = (%d, %d), want (50, 40)", x, y)
	}
}

func TestNewlineReturnsToLineStart(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ctx := ui.Context()

	// Builtin font cells are 8x8 and the default line padding is 4, so
	// a line is 12 pixels tall.
	ctx.MoveCursor(10, 20)
	ctx.Newline()
	if x, y := ctx.Cursor(); x != 10 || y != 32 {
		t.Errorf("Cursor() = (%d, %d), want (10, 32)", x, y)
	}

	// Relative moves shift the line start too.
	ctx.MoveCursorRelative(15, 0)
	ctx.Newline()
	if x, y := ctx.Cursor(); x != 25 || y != 44 {
		t.Errorf("Cursor() = (%d, %d), want (25, 44)", x, y)
	}
}

func TestSetStylePreservesCellSize(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ctx := ui.Context()

	custom := dui.DarkStyle()
	custom.CharWidth = 99
	custom.CharHeight = 99
	ctx.SetStyle(custom)

	got := ctx.Style()
	if got.CharWidth != 8 || got.CharHeight != 8 {
		t.Errorf("cell size = %dx%d, want 8x8 from the glyph provider", got.CharWidth, got.CharHeight)
	}
	if got.ColorBackground != dui.DarkStyle().ColorBackground {
		t.Error("SetStyle did not apply the new colors")
	}
}

func TestStyleRefMutatesInPlace(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ctx := ui.Context()

	ctx.StyleRef().LinePadding = 10

	ctx.MoveCursor(0, 0)
	ctx.Newline()
	if _, y := ctx.Cursor(); y != 18 {
		t.Errorf("line height = %d, want 18 after raising LinePadding", y)
	}
}
