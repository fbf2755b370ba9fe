package dui

import (
	"image"
	"image/color"
	"strings"
	"unicode"
)

// GlyphProvider is the mapping from a character to its source rectangle
// in a fixed bitmap font atlas. Alternate fonts are a configuration
// choice: inject a provider via WithGlyphProvider.
//
// The provider owns the case-folding policy; Glyph applies it before
// the lookup. Unmapped characters return ok=false and the printer falls
// back to the '?' glyph.
type GlyphProvider interface {
	// Atlas returns the font atlas bitmap. It is uploaded once at init.
	Atlas() image.Image

	// CellSize returns the glyph cell dimensions in atlas pixels.
	CellSize() (width, height int)

	// Glyph returns the atlas source rectangle for a character.
	Glyph(ch rune) (src Rect, ok bool)
}

const (
	builtinCellW = 8
	builtinCellH = 8
	builtinCols  = 16
)

// builtinMap lists the characters in the builtin atlas in grid order,
// 16 per row. Uppercase only; Glyph folds lowercase before the lookup.
const builtinMap = ` !"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\]^_`

// builtinBitmaps holds one 8x8 bitmap per builtinMap character, one byte
// per row, most significant bit leftmost.
var builtinBitmaps = [64][8]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // space
	{0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18, 0x00}, // !
	{0x66, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // "
	{0x24, 0x7E, 0x24, 0x24, 0x7E, 0x24, 0x00, 0x00}, // #
	{0x18, 0x3E, 0x60, 0x3C, 0x06, 0x7C, 0x18, 0x00}, // $
	{0x62, 0x64, 0x08, 0x10, 0x26, 0x46, 0x00, 0x00}, // %
	{0x38, 0x6C, 0x38, 0x76, 0xDC, 0xCC, 0x76, 0x00}, // &
	{0x18, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00}, // '
	{0x0C, 0x18, 0x30, 0x30, 0x30, 0x18, 0x0C, 0x00}, // (
	{0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x18, 0x30, 0x00}, // )
	{0x00, 0x66, 0x3C, 0xFF, 0x3C, 0x66, 0x00, 0x00}, // *
	{0x00, 0x18, 0x18, 0x7E, 0x18, 0x18, 0x00, 0x00}, // +
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30}, // ,
	{0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00}, // -
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00}, // .
	{0x02, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x40, 0x00}, // /
	{0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00}, // 0
	{0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00}, // 1
	{0x3C, 0x66, 0x06, 0x1C, 0x30, 0x60, 0x7E, 0x00}, // 2
	{0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00}, // 3
	{0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0x00}, // 4
	{0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00}, // 5
	{0x1C, 0x30, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00}, // 6
	{0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00}, // 7
	{0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00}, // 8
	{0x3C, 0x66, 0x66, 0x3E, 0x06, 0x0C, 0x38, 0x00}, // 9
	{0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00}, // :
	{0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x30}, // ;
	{0x06, 0x0C, 0x18, 0x30, 0x18, 0x0C, 0x06, 0x00}, // <
	{0x00, 0x00, 0x7E, 0x00, 0x7E, 0x00, 0x00, 0x00}, // =
	{0x60, 0x30, 0x18, 0x0C, 0x18, 0x30, 0x60, 0x00}, // >
	{0x3C, 0x66, 0x06, 0x1C, 0x18, 0x00, 0x18, 0x00}, // ?
	{0x3C, 0x66, 0x6E, 0x6A, 0x6E, 0x60, 0x3C, 0x00}, // @
	{0x18, 0x3C, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x00}, // A
	{0x7C, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x7C, 0x00}, // B
	{0x3C, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3C, 0x00}, // C
	{0x78, 0x6C, 0x66, 0x66, 0x66, 0x6C, 0x78, 0x00}, // D
	{0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x7E, 0x00}, // E
	{0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x60, 0x00}, // F
	{0x3C, 0x66, 0x60, 0x6E, 0x66, 0x66, 0x3E, 0x00}, // G
	{0x66, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}, // H
	{0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00}, // I
	{0x3E, 0x0C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38, 0x00}, // J
	{0x66, 0x6C, 0x78, 0x70, 0x78, 0x6C, 0x66, 0x00}, // K
	{0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7E, 0x00}, // L
	{0x63, 0x77, 0x7F, 0x6B, 0x63, 0x63, 0x63, 0x00}, // M
	{0x66, 0x76, 0x7E, 0x7E, 0x6E, 0x66, 0x66, 0x00}, // N
	{0x3C, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00}, // O
	{0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60, 0x60, 0x00}, // P
	{0x3C, 0x66, 0x66, 0x66, 0x6A, 0x6C, 0x36, 0x00}, // Q
	{0x7C, 0x66, 0x66, 0x7C, 0x6C, 0x66, 0x66, 0x00}, // R
	{0x3C, 0x66, 0x60, 0x3C, 0x06, 0x66, 0x3C, 0x00}, // S
	{0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00}, // T
	{0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00}, // U
	{0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00}, // V
	{0x63, 0x63, 0x63, 0x6B, 0x7F, 0x77, 0x63, 0x00}, // W
	{0x66, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x66, 0x00}, // X
	{0x66, 0x66, 0x66, 0x3C, 0x18, 0x18, 0x18, 0x00}, // Y
	{0x7E, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x7E, 0x00}, // Z
	{0x1C, 0x18, 0x18, 0x18, 0x18, 0x18, 0x1C, 0x00}, // [
	{0x40, 0x60, 0x30, 0x18, 0x0C, 0x06, 0x02, 0x00}, // backslash
	{0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x38, 0x00}, // ]
	{0x18, 0x3C, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00}, // ^
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E, 0x00}, // _
}

// builtinFont is the embedded uppercase 8x8 bitmap font.
type builtinFont struct {
	atlas *image.RGBA
}

// BuiltinFont returns the embedded 8x8 uppercase bitmap font.
// Lowercase letters fold to uppercase before lookup.
func BuiltinFont() GlyphProvider {
	rows := (len(builtinMap) + builtinCols - 1) / builtinCols
	atlas := image.NewRGBA(image.Rect(0, 0, builtinCols*builtinCellW, rows*builtinCellH))

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i, bitmap := range builtinBitmaps {
		cellX := (i % builtinCols) * builtinCellW
		cellY := (i / builtinCols) * builtinCellH
		for y := 0; y < builtinCellH; y++ {
			for x := 0; x < builtinCellW; x++ {
				if bitmap[y]&(0x80>>x) != 0 {
					atlas.SetRGBA(cellX+x, cellY+y, white)
				}
			}
		}
	}

	return &builtinFont{atlas: atlas}
}

func (f *builtinFont) Atlas() image.Image {
	return f.atlas
}

func (f *builtinFont) CellSize() (int, int) {
	return builtinCellW, builtinCellH
}

func (f *builtinFont) Glyph(ch rune) (Rect, bool) {
	idx := strings.IndexRune(builtinMap, unicode.ToUpper(ch))
	if idx < 0 {
		return Rect{}, false
	}
	return Rect{
		X: (idx % builtinCols) * builtinCellW,
		Y: (idx / builtinCols) * builtinCellH,
		W: builtinCellW,
		H: builtinCellH,
	}, true
}
