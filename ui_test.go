package dui_test

import (
	"errors"
	"image"
	"testing"

	"github.com/go-debug-overlay/dui"
)

// mockRenderer is a test renderer that records draw calls instead of
// rendering.
type mockRenderer struct {
	width  int
	height int

	// 0 means never fail; n fails the nth CreateSurface call.
	failSurfaceAt int

	surfacesCreated int
	texturesCreated int
	released        int

	fills     []dui.Rect
	strokes   []dui.Rect
	blits     []blitCall
	surfBlits int
	clears    int
}

type blitCall struct {
	src dui.Rect
	dst dui.Rect
}

type mockSurface struct {
	r      *mockRenderer
	width  int
	height int
}

func (s *mockSurface) Size() (int, int) { return s.width, s.height }
func (s *mockSurface) Release()         { s.r.released++ }

type mockTexture struct {
	r      *mockRenderer
	width  int
	height int
}

func (t *mockTexture) Size() (int, int) { return t.width, t.height }
func (t *mockTexture) Release()         { t.r.released++ }

func (m *mockRenderer) Size() (int, int) { return m.width, m.height }

func (m *mockRenderer) CreateSurface(width, height int) (dui.Surface, error) {
	m.surfacesCreated++
	if m.failSurfaceAt > 0 && m.surfacesCreated == m.failSurfaceAt {
		return nil, errors.New("out of surfaces")
	}
	return &mockSurface{r: m, width: width, height: height}, nil
}

func (m *mockRenderer) CreateTexture(img image.Image) (dui.Texture, error) {
	m.texturesCreated++
	b := img.Bounds()
	return &mockTexture{r: m, width: b.Dx(), height: b.Dy()}, nil
}

func (m *mockRenderer) SetTarget(s dui.Surface)   {}
func (m *mockRenderer) Clear(color uint32)        { m.clears++ }
func (m *mockRenderer) SetColor(color uint32)     {}
func (m *mockRenderer) FillRect(r dui.Rect)       { m.fills = append(m.fills, r) }
func (m *mockRenderer) StrokeRect(r dui.Rect)     { m.strokes = append(m.strokes, r) }
func (m *mockRenderer) Blit(t dui.Texture, src, dst dui.Rect) {
	m.blits = append(m.blits, blitCall{src: src, dst: dst})
}
func (m *mockRenderer) BlitSurface(s dui.Surface, src, dst dui.Rect) { m.surfBlits++ }

// stubPointer feeds scripted pointer state into UI.Update.
type stubPointer struct {
	x, y int
	down bool
}

func (p *stubPointer) PointerState() (int, int, bool) { return p.x, p.y, p.down }

func newTestUI(t *testing.T, opts ...dui.Option) (*dui.UI, *mockRenderer, *stubPointer) {
	t.Helper()

	renderer := &mockRenderer{width: 800, height: 600}
	pointer := &stubPointer{}

	opts = append(opts, dui.WithPointerSource(pointer))
	ui, err := dui.New(renderer, opts...)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return ui, renderer, pointer
}

func TestNewAllocatesSurfaces(t *testing.T) {
	_, renderer, _ := newTestUI(t)

	// One surface per panel depth plus the overlay.
	want := dui.DefaultMaxDepth + 1
	if renderer.surfacesCreated != want {
		t.Errorf("expected %d surfaces, got %d", want, renderer.surfacesCreated)
	}
	if renderer.texturesCreated != 1 {
		t.Errorf("expected 1 font texture, got %d", renderer.texturesCreated)
	}
}

func TestNewMaxDepth(t *testing.T) {
	renderer := &mockRenderer{width: 800, height: 600}
	_, err := dui.New(renderer, dui.WithMaxDepth(3))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if renderer.surfacesCreated != 4 {
		t.Errorf("expected 4 surfaces (3 panels + overlay), got %d", renderer.surfacesCreated)
	}
}

func TestNewSurfaceFailureReleases(t *testing.T) {
	renderer := &mockRenderer{width: 800, height: 600, failSurfaceAt: 3}
	_, err := dui.New(renderer)
	if err == nil {
		t.Fatal("expected error from failed surface allocation")
	}

	// The two surfaces that were created and the font texture must be
	// released again.
	if renderer.released != 3 {
		t.Errorf("expected 3 releases, got %d", renderer.released)
	}
}

func TestRenderCompositesOverlay(t *testing.T) {
	ui, renderer, _ := newTestUI(t)

	ui.Update()
	ui.Render()

	if renderer.surfBlits != 1 {
		t.Errorf("expected 1 overlay composite, got %d", renderer.surfBlits)
	}
	if renderer.clears != 1 {
		t.Errorf("expected overlay to be cleared once, got %d clears", renderer.clears)
	}
}

func TestTerminateReleasesEverything(t *testing.T) {
	ui, renderer, _ := newTestUI(t)

	ui.Terminate()

	// Panel surfaces, overlay, and font texture.
	want := dui.DefaultMaxDepth + 2
	if renderer.released != want {
		t.Errorf("expected %d releases, got %d", want, renderer.released)
	}
}

func TestUpdateWithoutPointerSource(t *testing.T) {
	renderer := &mockRenderer{width: 800, height: 600}
	ui, err := dui.New(renderer)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	// Must not panic; input just stays at its zero state.
	ui.Update()

	if ui.Context().Input().Down() {
		t.Error("input should be idle without a pointer source")
	}
}

func BenchmarkFrame(b *testing.B) {
	renderer := &mockRenderer{width: 800, height: 600}
	pointer := &stubPointer{}
	ui, err := dui.New(renderer, dui.WithPointerSource(pointer))
	if err != nil {
		b.Fatalf("New() returned error: %v", err)
	}

	checked := false
	current := 0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.fills = renderer.fills[:0]
		renderer.strokes = renderer.strokes[:0]
		renderer.blits = renderer.blits[:0]

		ui.Update()
		ctx := ui.Context()

		ctx.MoveCursor(32, 32)
		ctx.PanelStart("BENCH", 120, 0, false)
		ctx.Println("FRAME %d", i)
		ctx.Button("TICK!")
		ctx.Newline()
		ctx.Checkbox("AUTO", &checked)
		ctx.Newline()
		ctx.Radio("UP", 0, &current)
		ctx.PanelEnd()

		ui.Render()
	}
}
