package control

// PointerMove handles the pointer moving onto (col, row). Painting only
// happens when the pointer enters a different cell than the one selected.
func (c *Controller) PointerMove(col, row int) {
	col, row = c.grid.Clamp(col, row)
	if col == c.selection.Col && row == c.selection.Row {
		return
	}
	c.PaintMove(col, row)
	c.selection.Col, c.selection.Row = col, row
}

// PointerDown handles the primary button being pressed over (col, row).
func (c *Controller) PointerDown(col, row int) {
	col, row = c.grid.Clamp(col, row)
	c.BeginPaint(col, row)
	c.selection.Col, c.selection.Row = col, row
}

// PointerUp handles the primary button being released.
func (c *Controller) PointerUp() { c.EndPaint() }

// PointerEnter handles the pointer entering the canvas.
func (c *Controller) PointerEnter() { c.SetHover(true) }

// PointerLeave handles the pointer leaving the canvas.
func (c *Controller) PointerLeave() { c.SetHover(false) }
