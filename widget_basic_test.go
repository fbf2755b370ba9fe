package dui_test

import "testing"

func TestButtonClick(t *testing.T) {
	ui, _, pointer := newTestUI(t)
	ctx := ui.Context()

	// A two-character button at the origin is 24x16.
	pointer.x, pointer.y = 10, 8
	pointer.down = true
	ui.Update()

	ctx.MoveCursor(0, 0)
	if !ctx.Button("GO") {
		t.Error("button under the pressed pointer should report a click")
	}

	// The cursor moves past the button for row layout.
	if x, y := ctx.Cursor(); x != 32 || y != 0 {
		t.Errorf("Cursor() = (%d, %d), want (32, 0)", x, y)
	}
}

func TestButtonHeldDoesNotRepeat(t *testing.T) {
	ui, _, pointer := newTestUI(t)
	ctx := ui.Context()

	pointer.x, pointer.y = 10, 8
	pointer.down = true

	ui.Update()
	ctx.MoveCursor(0, 0)
	if !ctx.Button("GO") {
		t.Fatal("first frame should click")
	}

	ui.Update()
	ctx.MoveCursor(0, 0)
	if ctx.Button("GO") {
		t.Error("held button must not click again")
	}
}

func TestButtonMiss(t *testing.T) {
	ui, _, pointer := newTestUI(t)
	ctx := ui.Context()

	pointer.x, pointer.y = 200, 200
	pointer.down = true
	ui.Update()

	ctx.MoveCursor(0, 0)
	if ctx.Button("GO") {
		t.Error("click outside the button must not register")
	}
}

func TestCheckboxToggles(t *testing.T) {
	ui, _, pointer := newTestUI(t)
	ctx := ui.Context()

	checked := false
	pointer.x, pointer.y = 5, 5

	pointer.down = true
	ui.Update()
	ctx.MoveCursor(0, 0)
	if !ctx.Checkbox("AUTO", &checked) {
		t.Error("click should toggle to checked and report it the same frame")
	}
	if !checked {
		t.Error("caller state should be true after the click")
	}

	// Idle frame: state holds.
	pointer.down = false
	ui.Update()
	ctx.MoveCursor(0, 0)
	if !ctx.Checkbox("AUTO", &checked) {
		t.Error("checkbox should stay checked without a click")
	}

	// Second click toggles back off.
	pointer.down = true
	ui.Update()
	ctx.MoveCursor(0, 0)
	if ctx.Checkbox("AUTO", &checked) {
		t.Error("second click should toggle back to unchecked")
	}
	if checked {
		t.Error("caller state should be false after the second click")
	}
}

func TestCheckboxMarkFilledOnClickFrame(t *testing.T) {
	ui, renderer, pointer := newTestUI(t)
	ctx := ui.Context()

	checked := false
	pointer.x, pointer.y = 5, 5
	pointer.down = true
	ui.Update()

	ctx.MoveCursor(0, 0)
	ctx.Checkbox("AUTO", &checked)

	// The mark's inner fill is the 8x8 mark inset by one pixel.
	found := false
	for _, f := range renderer.fills {
		if f.X == 5 && f.Y == 5 && f.W == 6 && f.H == 6 {
			found = true
			break
		}
	}
	if !found {
		t.Error("mark fill should appear on the same frame as the toggling click")
	}
}

func TestRadioGroupExclusive(t *testing.T) {
	ui, _, pointer := newTestUI(t)
	ctx := ui.Context()

	current := 0

	// Click the second option. Single-character options at the origin
	// are 32x16, and the second starts at x=40 after the margin.
	pointer.x, pointer.y = 45, 5
	pointer.down = true
	ui.Update()

	ctx.MoveCursor(0, 0)
	ctx.Radio("A", 0, &current)
	if !ctx.Radio("B", 1, &current) {
		t.Error("clicked option should become active")
	}
	if current != 1 {
		t.Errorf("currentIndex = %d, want 1", current)
	}

	// Next frame only the clicked option is active.
	pointer.down = false
	ui.Update()
	ctx.MoveCursor(0, 0)
	if ctx.Radio("A", 0, &current) {
		t.Error("option A should no longer be active")
	}
	if !ctx.Radio("B", 1, &current) {
		t.Error("option B should remain active")
	}
}

func TestTabRowLayout(t *testing.T) {
	ui, _, pointer := newTestUI(t)
	ctx := ui.Context()

	current := 0
	pointer.x, pointer.y = 200, 200
	ui.Update()

	ctx.MoveCursor(0, 0)
	ctx.BeginTabBar()

	if !ctx.Tab("A", 0, &current) {
		t.Error("tab 0 should be active initially")
	}

	// Body drawing between tabs must not displace the next tab.
	ctx.MoveCursor(300, 400)
	ctx.Println("BODY CONTENT")

	if ctx.Tab("B", 1, &current) {
		t.Error("tab 1 should not be active")
	}

	// Single-character tabs are 24 wide; each ends TabMargin past the
	// previous: A ends at x=32, B ends at x=64.
	if x, y := ctx.Cursor(); x != 64 || y != 0 {
		t.Errorf("Cursor() = (%d, %d), want (64, 0)", x, y)
	}
}

func TestTabClickSwitches(t *testing.T) {
	ui, _, pointer := newTestUI(t)
	ctx := ui.Context()

	current := 0

	// Click inside the second tab (x in [32, 56)).
	pointer.x, pointer.y = 40, 10
	pointer.down = true
	ui.Update()

	ctx.MoveCursor(0, 0)
	ctx.BeginTabBar()
	ctx.Tab("A", 0, &current)
	if !ctx.Tab("B", 1, &current) {
		t.Error("clicked tab should become active")
	}
	if current != 1 {
		t.Errorf("currentIndex = %d, want 1", current)
	}
}

func TestAtVariantsPreserveCursor(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ctx := ui.Context()

	checked := false
	current := 0
	ui.Update()

	ctx.MoveCursor(7, 9)
	ctx.ButtonAt(100, 100, "GO")
	ctx.CheckboxAt(100, 140, "AUTO", &checked)
	ctx.RadioAt(100, 180, "A", 0, &current)

	if x, y := ctx.Cursor(); x != 7 || y != 9 {
		t.Errorf("Cursor() = (%d, %d), want (7, 9)", x, y)
	}
}
