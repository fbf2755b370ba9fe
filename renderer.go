package dui

import "image"

// Renderer is the drawing capability the host hands to the UI.
// It exposes exactly what the overlay needs: rectangle fill and stroke,
// textured blits, offscreen surfaces, and render-target switching.
//
// All coordinates are in pixels with the origin at the top-left.
// Implementations are not required to be safe for concurrent use; the
// UI calls them only from the host's render thread.
type Renderer interface {
	// Size returns the pixel dimensions of the presentation surface.
	Size() (width, height int)

	// CreateSurface allocates an offscreen render target. Surfaces are
	// created fully transparent.
	CreateSurface(width, height int) (Surface, error)

	// CreateTexture uploads an image as an immutable texture.
	CreateTexture(img image.Image) (Texture, error)

	// SetTarget redirects subsequent drawing to the given surface.
	// A nil surface targets the presentation surface.
	SetTarget(s Surface)

	// Clear fills the entire current target with the given color,
	// replacing any existing pixels (no blending).
	Clear(color uint32)

	// SetColor sets the color used by FillRect and StrokeRect.
	SetColor(color uint32)

	// FillRect fills a rectangle on the current target with the
	// current color, alpha-blending over existing pixels.
	FillRect(r Rect)

	// StrokeRect draws a one-pixel outline of the rectangle on the
	// current target with the current color.
	StrokeRect(r Rect)

	// Blit copies the src region of a texture to the dst region of the
	// current target, scaling if the regions differ, alpha-blending
	// over existing pixels.
	Blit(t Texture, src, dst Rect)

	// BlitSurface composites a surface onto the current target like
	// Blit. A zero src or dst Rect means the entire surface or target.
	BlitSurface(s Surface, src, dst Rect)
}

// Surface is an offscreen render target owned by the renderer.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Release frees the surface. The surface must not be used after.
	Release()
}

// Texture is an immutable image uploaded to the renderer.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (width, height int)

	// Release frees the texture. The texture must not be used after.
	Release()
}

// PointerSource is the host capability for per-frame pointer polling.
// UI.Update reads it exactly once per frame to build the input snapshot.
type PointerSource interface {
	// PointerState returns the current pointer position and whether
	// the primary button is held down.
	PointerState() (x, y int, down bool)
}
