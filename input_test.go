package dui_test

import "testing"

func TestClickFiresOncePerPress(t *testing.T) {
	ui, _, pointer := newTestUI(t)
	in := ui.Context().Input()

	frames := []struct {
		down        bool
		wantClicked bool
	}{
		{down: true, wantClicked: true},
		{down: true, wantClicked: false},
		{down: true, wantClicked: false},
		{down: false, wantClicked: false},
		{down: true, wantClicked: true},
		{down: false, wantClicked: false},
	}

	for i, frame := range frames {
		pointer.down = frame.down
		ui.Update()

		if in.Clicked() != frame.wantClicked {
			t.Errorf("frame %d: Clicked() = %t, want %t", i, in.Clicked(), frame.wantClicked)
		}
		if in.Down() != frame.down {
			t.Errorf("frame %d: Down() = %t, want %t", i, in.Down(), frame.down)
		}
	}
}

func TestInputPosition(t *testing.T) {
	ui, _, pointer := newTestUI(t)

	pointer.x, pointer.y = 123, 456
	ui.Update()

	pos := ui.Context().Input().Position()
	if pos.X != 123 || pos.Y != 456 {
		t.Errorf("Position() = (%d, %d), want (123, 456)", pos.X, pos.Y)
	}
}
