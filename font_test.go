package dui_test

import (
	"testing"

	"github.com/go-debug-overlay/dui"
)

func TestBuiltinFontCellSize(t *testing.T) {
	font := dui.BuiltinFont()

	w, h := font.CellSize()
	if w != 8 || h != 8 {
		t.Errorf("CellSize() = %dx%d, want 8x8", w, h)
	}

	bounds := font.Atlas().Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 32 {
		t.Errorf("atlas = %dx%d, want 128x32", bounds.Dx(), bounds.Dy())
	}
}

func TestBuiltinFontGlyphLookup(t *testing.T) {
	font := dui.BuiltinFont()

	src, ok := font.Glyph('A')
	if !ok {
		t.Fatal("'A' must be mapped")
	}
	if src.W != 8 || src.H != 8 {
		t.Errorf("glyph cell = %dx%d, want 8x8", src.W, src.H)
	}

	lower, ok := font.Glyph('a')
	if !ok || lower != src {
		t.Error("lowercase must fold to the uppercase glyph")
	}

	if _, ok := font.Glyph('~'); ok {
		t.Error("'~' is not in the builtin set and must not resolve")
	}
	if _, ok := font.Glyph('?'); !ok {
		t.Error("the substitute glyph must be mapped")
	}
}

func TestBuiltinFontAtlasHasInk(t *testing.T) {
	font := dui.BuiltinFont()
	atlas := font.Atlas()

	src, _ := font.Glyph('A')
	opaque := 0
	for y := src.Y; y < src.Y+src.H; y++ {
		for x := src.X; x < src.X+src.W; x++ {
			_, _, _, a := atlas.At(x, y).RGBA()
			if a > 0 {
				opaque++
			}
		}
	}
	if opaque == 0 {
		t.Error("the 'A' cell is blank")
	}
}
