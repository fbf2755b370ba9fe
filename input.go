package dui

// Input is the per-frame pointer snapshot widgets hit-test against.
// It is rebuilt once per frame by UI.Update; widgets only ever read it.
type Input struct {
	pos      Point
	down     bool
	clicked  bool
	prevDown bool
}

// update recomputes the snapshot from raw pointer state.
// The click edge fires on the frame the button transitions from up to
// down and stays false while the button is held.
func (in *Input) update(x, y int, down bool) {
	in.pos = Point{X: x, Y: y}
	in.clicked = down && !in.prevDown
	in.down = down
	in.prevDown = down
}

// Position returns the pointer position captured this frame.
func (in *Input) Position() Point {
	return in.pos
}

// Down returns true if the primary button is held this frame.
func (in *Input) Down() bool {
	return in.down
}

// Clicked returns true on the single frame the primary button was
// pressed. It never fires twice for one physical press.
func (in *Input) Clicked() bool {
	return in.clicked
}
