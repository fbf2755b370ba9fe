// Package software provides a pure-CPU backend for the overlay.
//
// Surfaces are plain RGBA images, so the backend needs no window or GPU
// context. It suits headless use: golden-image tests, screenshot tools,
// and compositing the overlay into frames produced elsewhere.
package software

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/go-debug-overlay/dui"
)

// Renderer implements dui.Renderer on in-memory images.
type Renderer struct {
	frame  *image.RGBA
	target *image.RGBA
	color  color.NRGBA
}

// NewRenderer creates a software renderer with a width x height
// presentation image.
func NewRenderer(width, height int) *Renderer {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Renderer{frame: frame, target: frame}
}

// Frame returns the presentation image. The host reads it after
// UI.Render to display or encode the frame.
func (r *Renderer) Frame() *image.RGBA {
	return r.frame
}

// Size returns the presentation image dimensions.
func (r *Renderer) Size() (int, int) {
	b := r.frame.Bounds()
	return b.Dx(), b.Dy()
}

// surface is an offscreen RGBA image.
type surface struct {
	img *image.RGBA
}

func (s *surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *surface) Release() {}

// CreateSurface allocates a transparent offscreen image.
func (r *Renderer) CreateSurface(width, height int) (dui.Surface, error) {
	return &surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// texture is an immutable copy of an uploaded image.
type texture struct {
	img *image.RGBA
}

func (t *texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *texture) Release() {}

// CreateTexture copies the image so later mutation of the source does
// not affect blits.
func (r *Renderer) CreateTexture(img image.Image) (dui.Texture, error) {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return &texture{img: rgba}, nil
}

// SetTarget redirects drawing to the given surface, or back to the
// presentation image for nil.
func (r *Renderer) SetTarget(s dui.Surface) {
	if s == nil {
		r.target = r.frame
		return
	}
	r.target = s.(*surface).img
}

// Clear replaces the whole target with the given color, alpha included.
func (r *Renderer) Clear(c uint32) {
	draw.Draw(r.target, r.target.Bounds(), image.NewUniform(nrgba(c)), image.Point{}, draw.Src)
}

// SetColor sets the color used by FillRect and StrokeRect.
func (r *Renderer) SetColor(c uint32) {
	r.color = nrgba(c)
}

// FillRect fills a rectangle with the current color, blending over
// existing pixels.
func (r *Renderer) FillRect(rect dui.Rect) {
	draw.Draw(r.target, imageRect(rect), image.NewUniform(r.color), image.Point{}, draw.Over)
}

// StrokeRect draws a one-pixel outline with the current color.
func (r *Renderer) StrokeRect(rect dui.Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	src := image.NewUniform(r.color)
	top := image.Rect(rect.X, rect.Y, rect.X+rect.W, rect.Y+1)
	bottom := image.Rect(rect.X, rect.Y+rect.H-1, rect.X+rect.W, rect.Y+rect.H)
	left := image.Rect(rect.X, rect.Y+1, rect.X+1, rect.Y+rect.H-1)
	right := image.Rect(rect.X+rect.W-1, rect.Y+1, rect.X+rect.W, rect.Y+rect.H-1)
	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(r.target, edge, src, image.Point{}, draw.Over)
	}
}

// Blit draws the src region of a texture into the dst region of the
// current target, scaling with nearest-neighbor if the regions differ.
func (r *Renderer) Blit(t dui.Texture, src, dst dui.Rect) {
	r.blit(t.(*texture).img, src, dst)
}

// BlitSurface composites a surface onto the current target. A zero src
// or dst Rect means the whole surface or target.
func (r *Renderer) BlitSurface(s dui.Surface, src, dst dui.Rect) {
	img := s.(*surface).img
	if src.Empty() {
		b := img.Bounds()
		src = dui.Rect{W: b.Dx(), H: b.Dy()}
	}
	if dst.Empty() {
		b := r.target.Bounds()
		dst = dui.Rect{W: b.Dx(), H: b.Dy()}
	}
	r.blit(img, src, dst)
}

func (r *Renderer) blit(img *image.RGBA, src, dst dui.Rect) {
	if src.W == dst.W && src.H == dst.H {
		draw.Draw(r.target, imageRect(dst), img, image.Pt(src.X, src.Y), draw.Over)
		return
	}
	xdraw.NearestNeighbor.Scale(r.target, imageRect(dst), img, imageRect(src), xdraw.Over, nil)
}

func imageRect(r dui.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func nrgba(c uint32) color.NRGBA {
	cr, cg, cb, ca := dui.UnpackRGBA(c)
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}
}
