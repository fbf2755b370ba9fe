package dui

import "fmt"

// printBufSize caps formatted output per Print call. Longer output is
// truncated silently.
const printBufSize = 1024

// substituteGlyph stands in for characters the glyph provider cannot
// map.
const substituteGlyph = '?'

// Print draws formatted text at the cursor and moves the cursor to the
// end of the printed text. Spaces advance the cursor without drawing
// and newlines behave like Newline. Characters without a glyph are
// drawn as the substitute glyph. Print does not append a trailing
// newline.
func (ctx *Context) Print(format string, args ...any) {
	buf := fmt.Appendf(ctx.printBuf[:0], format, args...)
	ctx.printBuf = buf
	if len(buf) > printBufSize {
		buf = buf[:printBufSize]
	}

	dst := Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: ctx.style.CharWidth,
		H: ctx.style.CharHeight,
	}

	for _, r := range string(buf) {
		switch r {
		case ' ':
			dst.X += ctx.style.CharWidth
			continue
		case '\n':
			ctx.Newline()
			dst.X = ctx.cursor.X
			dst.Y = ctx.cursor.Y
			continue
		}

		src, ok := ctx.glyphs.Glyph(r)
		if !ok {
			src, ok = ctx.glyphs.Glyph(substituteGlyph)
		}
		if ok {
			ctx.renderer.Blit(ctx.fontTex, src, dst)
		}
		dst.X += ctx.style.CharWidth
	}

	ctx.cursor = Point{X: dst.X, Y: dst.Y}
	ctx.growPanel()
}

// Println draws formatted text like Print, then moves to the next line.
func (ctx *Context) Println(format string, args ...any) {
	ctx.Print(format, args...)
	ctx.Newline()
}

// PrintAt draws formatted text at an explicit position and restores the
// prior cursor afterwards, so it has no layout side effect.
func (ctx *Context) PrintAt(x, y int, format string, args ...any) {
	savedX, savedY := ctx.Cursor()
	ctx.MoveCursor(x, y)
	ctx.Print(format, args...)
	ctx.MoveCursor(savedX, savedY)
}
