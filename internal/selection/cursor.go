// Package selection tracks the highlighted row of a ranked result list.
package selection

// Cursor is an index into a list of n items, clamped to [0, n-1].
// With no items the index is -1. The zero value is an empty cursor.
type Cursor struct {
	n     int
	index int
}

// Reset points the cursor at the first of n items. Call it whenever the
// list is replaced.
func (c *Cursor) Reset(n int) {
	if n < 0 {
		n = 0
	}
	c.n = n
	c.index = 0
}

// Move shifts the cursor by delta, clamping at both ends.
func (c *Cursor) Move(delta int) {
	if c.n == 0 {
		return
	}
	c.index = min(max(c.index+delta, 0), c.n-1)
}

// Up moves one row towards the top.
func (c *Cursor) Up() { c.Move(-1) }

// Down moves one row towards the bottom.
func (c *Cursor) Down() { c.Move(1) }

// Index returns the selected position, or -1 when there is nothing to select.
func (c *Cursor) Index() int {
	if c.n == 0 {
		return -1
	}
	return c.index
}

// Valid reports whether something is selected.
func (c *Cursor) Valid() bool {
	return c.n > 0
}

// Len returns the number of items the cursor ranges over.
func (c *Cursor) Len() int {
	return c.n
}
