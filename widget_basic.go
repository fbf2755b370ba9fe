package dui

import "unicode/utf8"

// labelCells returns how many glyph cells a label occupies.
func labelCells(label string) int {
	return utf8.RuneCountInString(label)
}

// boxState hit-tests a widget rectangle against the input snapshot.
// clicked is true only on the frame the press edge fires while the
// pointer is inside the rectangle.
func (ctx *Context) boxState(bounds Rect) (hover, clicked bool) {
	hover = bounds.Contains(ctx.input.pos)
	clicked = hover && ctx.input.clicked
	return hover, clicked
}

// Button draws a button with the given label at the cursor and returns
// true on the frame it is clicked. The cursor ends at the button's
// top-right corner plus the button margin, so consecutive buttons form
// a row.
func (ctx *Context) Button(label string) bool {
	st := &ctx.style

	bounds := Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: labelCells(label)*st.CharWidth + st.ButtonPadding*2,
		H: st.CharHeight + st.ButtonPadding*2,
	}

	hover, clicked := ctx.boxState(bounds)

	fillColor := st.ColorDefault
	if hover {
		fillColor = st.ColorHover
	}
	ctx.fill(bounds, fillColor)
	ctx.stroke(bounds, st.ColorBorder)

	ctx.cursor.X += st.ButtonPadding
	ctx.cursor.Y += st.ButtonPadding
	ctx.Print("%s", label)

	ctx.cursor.X = bounds.X + bounds.W + st.ButtonMargin
	ctx.cursor.Y = bounds.Y

	return clicked
}

// ButtonAt draws a button at an explicit position without moving the
// ambient cursor.
func (ctx *Context) ButtonAt(x, y int, label string) bool {
	saved := ctx.cursor
	ctx.cursor = Point{X: x, Y: y}

	clicked := ctx.Button(label)

	ctx.cursor = saved
	return clicked
}

// Checkbox draws a checkbox that toggles the caller-owned boolean when
// clicked and fills its mark while the boolean is true. The new state
// is visible the same frame the click occurs. Returns the resulting
// checked state.
func (ctx *Context) Checkbox(label string, checked *bool) bool {
	st := &ctx.style

	bounds := Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: labelCells(label)*st.CharWidth + st.CharWidth*2 + st.ButtonPadding*2,
		H: st.CharHeight + st.ButtonPadding*2,
	}

	hover, clicked := ctx.boxState(bounds)

	fillColor := st.ColorDefault
	if hover {
		fillColor = st.ColorHover
	}
	ctx.fill(bounds, fillColor)
	ctx.stroke(bounds, st.ColorBorder)

	mark := Rect{
		X: bounds.X + st.CharWidth/2,
		Y: bounds.Y + st.CharHeight/2,
		W: st.CharWidth,
		H: st.CharWidth,
	}
	ctx.stroke(mark, st.ColorBorder)

	// Toggle before the fill decision so the click is visualized this
	// frame rather than one frame late.
	if clicked {
		*checked = !*checked
	}
	if *checked {
		inner := Rect{X: mark.X + 1, Y: mark.Y + 1, W: mark.W - 2, H: mark.H - 2}
		ctx.fill(inner, st.ColorBorder)
	}

	ctx.cursor.X += st.ButtonPadding + st.CharWidth + st.CharWidth/2
	ctx.cursor.Y += st.ButtonPadding
	ctx.Print("%s", label)

	ctx.cursor.X = bounds.X + bounds.W + st.ButtonMargin
	ctx.cursor.Y = bounds.Y

	return *checked
}

// CheckboxAt draws a checkbox at an explicit position without moving
// the ambient cursor.
func (ctx *Context) CheckboxAt(x, y int, label string, checked *bool) bool {
	saved := ctx.cursor
	ctx.cursor = Point{X: x, Y: y}

	selected := ctx.Checkbox(label, checked)

	ctx.cursor = saved
	return selected
}

// Radio draws one option of a radio group. Clicking it stores index
// into the caller-owned currentIndex; the mark is filled whenever the
// group's current index equals this option's index. Returns true if
// this option is now the active one.
func (ctx *Context) Radio(label string, index int, currentIndex *int) bool {
	st := &ctx.style

	bounds := Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: labelCells(label)*st.CharWidth + st.CharWidth*2 + st.ButtonPadding*2,
		H: st.CharHeight + st.ButtonPadding*2,
	}

	hover, clicked := ctx.boxState(bounds)

	if clicked {
		*currentIndex = index
	}
	active := *currentIndex == index

	fillColor := st.ColorDefault
	if hover {
		fillColor = st.ColorHover
	}
	ctx.fill(bounds, fillColor)
	ctx.stroke(bounds, st.ColorBorder)

	mark := Rect{
		X: bounds.X + st.CharWidth/2,
		Y: bounds.Y + st.CharHeight/2,
		W: st.CharWidth,
		H: st.CharWidth,
	}
	ctx.stroke(mark, st.ColorBorder)

	if active {
		inner := Rect{X: mark.X + 1, Y: mark.Y + 1, W: mark.W - 2, H: mark.H - 2}
		ctx.fill(inner, st.ColorBorder)
	}

	ctx.cursor.X += st.ButtonPadding + st.CharWidth + st.CharWidth/2
	ctx.cursor.Y += st.ButtonPadding
	ctx.Print("%s", label)

	ctx.cursor.X = bounds.X + bounds.W + st.ButtonMargin
	ctx.cursor.Y = bounds.Y

	return active
}

// RadioAt draws a radio option at an explicit position without moving
// the ambient cursor.
func (ctx *Context) RadioAt(x, y int, label string, index int, currentIndex *int) bool {
	saved := ctx.cursor
	ctx.cursor = Point{X: x, Y: y}

	selected := ctx.Radio(label, index, currentIndex)

	ctx.cursor = saved
	return selected
}

// BeginTabBar captures the cursor as the position of the first tab in
// a bar. Each Tab call repositions to and then re-saves this anchor,
// so content drawn for a selected tab's body between tab calls never
// displaces the following tabs.
func (ctx *Context) BeginTabBar() {
	ctx.tabCursor = ctx.cursor
}

// Tab draws one tab of the current bar. Clicking it stores index into
// the caller-owned currentIndex. The tab is drawn highlighted when
// hovered or selected. Returns true if this tab is the active one;
// the caller typically draws the tab's body inside that branch.
func (ctx *Context) Tab(label string, index int, currentIndex *int) bool {
	ctx.cursor = ctx.tabCursor

	st := &ctx.style

	bounds := Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: labelCells(label)*st.CharWidth + st.TabPadding*2,
		H: st.CharHeight + st.TabPadding*2,
	}

	hover, clicked := ctx.boxState(bounds)

	if clicked {
		*currentIndex = index
	}
	active := *currentIndex == index

	fillColor := st.ColorDefault
	if hover || active {
		fillColor = st.ColorHover
	}
	ctx.fill(bounds, fillColor)
	ctx.stroke(bounds, st.ColorBorder)

	ctx.cursor.X += st.TabPadding
	ctx.cursor.Y += st.TabPadding
	ctx.Print("%s", label)

	ctx.cursor.X = bounds.X + bounds.W + st.TabMargin
	ctx.cursor.Y = bounds.Y

	ctx.tabCursor = ctx.cursor

	return active
}
