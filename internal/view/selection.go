package view

// Cursor tracks the selected row of a flattened table. A cursor over an empty
// table selects nothing. Movement clamps at the bounds; there is no
// wraparound, so moving up at the first row and down at the last are no-ops.
//
// The main table and the profile selector each hold their own Cursor; the two
// never share storage.
type Cursor struct {
	index int
	count int
}

// NewCursor returns a cursor over count rows with the first row selected, or
// an empty selection when count is zero.
func NewCursor(count int) Cursor {
	c := Cursor{}
	c.Reset(count)
	return c
}

// Index reports the selected row, with ok false when nothing is selected.
func (c Cursor) Index() (int, bool) {
	if c.count == 0 {
		return 0, false
	}
	return c.index, true
}

// Count returns the number of rows the cursor ranges over.
func (c Cursor) Count() int { return c.count }

// Up moves the selection one row up, clamping at the first row.
func (c *Cursor) Up() {
	if c.count == 0 {
		return
	}
	if c.index > 0 {
		c.index--
	}
}

// Down moves the selection one row down, clamping at the last row.
func (c *Cursor) Down() {
	if c.count == 0 {
		return
	}
	if c.index < c.count-1 {
		c.index++
	}
}

// Select moves the selection to the given row when it is in range.
func (c *Cursor) Select(index int) {
	if index >= 0 && index < c.count {
		c.index = index
	}
}

// Clamp adjusts the cursor for a table whose row count changed, keeping the
// stored index inside [0, count). The selection survives a snapshot
// replacement unless the table shrank past it.
func (c *Cursor) Clamp(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	if count == 0 {
		c.index = 0
		return
	}
	if c.index >= count {
		c.index = count - 1
	}
	if c.index < 0 {
		c.index = 0
	}
}

// Reset discards the selection and starts over at the first row of a table
// with count rows.
func (c *Cursor) Reset(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.index = 0
}
