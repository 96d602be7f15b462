package vtcore

// Buffer is a rectangular grid of cells with dimensions cols x rows, plus
// a scroll region [Top, Bottom] (inclusive, default full height).
//
// Invariants maintained by every mutator in this file: every row has
// exactly Cols cells; 0 <= Top <= Bottom < Rows; a TrailingWide cell is
// always immediately right of a LeadingWide cell in the same row.
type Buffer struct {
	Cols, Rows int
	Top, Bottom int
	cells       [][]Cell
	saved       SavedState
	dirty       *dirtyTracker
}

// newBuffer returns a Buffer of the given dimensions, every cell blank
// with the default pen, scroll region spanning the whole height.
func newBuffer(cols, rows int) *Buffer {
	b := &Buffer{
		Cols: cols, Rows: rows,
		Top: 0, Bottom: rows - 1,
		dirty: newDirtyTracker(),
	}
	b.cells = make([][]Cell, rows)
	for r := range b.cells {
		b.cells[r] = newBlankRow(cols, DefaultPen)
	}
	return b
}

func newBlankRow(cols int, pen Pen) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = blankCell(pen)
	}
	return row
}

// Cell returns the cell at (col, row). Out-of-range coordinates return a
// blank cell rather than panicking, keeping queries total.
func (b *Buffer) Cell(col, row int) Cell {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
		return blankCell(DefaultPen)
	}
	return b.cells[row][col]
}

// setCell writes a cell and marks its row dirty.
func (b *Buffer) setCell(col, row int, c Cell) {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
		return
	}
	b.cells[row][col] = c
	b.dirty.mark(row)
}

// RowText concatenates the base characters (and any combining marks) of
// every cell in row, without trimming trailing blanks; callers trim as
// they see fit.
func (b *Buffer) RowText(row int) string {
	if row < 0 || row >= b.Rows {
		return ""
	}
	var sb []rune
	for _, c := range b.cells[row] {
		if c.Width == TrailingWide {
			continue
		}
		sb = append(sb, []rune(c.Text())...)
	}
	return string(sb)
}

// ResetScrollRegion sets the scroll region back to the full buffer height.
func (b *Buffer) ResetScrollRegion() {
	b.Top, b.Bottom = 0, b.Rows-1
}

// SetScrollRegion sets [top, bottom] after validating and clamping; a
// degenerate region (top >= bottom) is ignored, matching DECSTBM's
// documented behavior.
func (b *Buffer) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= b.Rows || bottom < 0 {
		bottom = b.Rows - 1
	}
	if top >= bottom {
		return
	}
	b.Top, b.Bottom = top, bottom
}

// ScrollUp shifts rows [top, bottom] up by n, discarding the top n rows of
// the region and filling the bottom n with blanks carrying pen.
func (b *Buffer) ScrollUp(top, bottom, n int, pen Pen) {
	if n <= 0 || top > bottom || top < 0 || bottom >= b.Rows {
		return
	}
	height := bottom - top + 1
	if n > height {
		n = height
	}
	for r := top; r <= bottom-n; r++ {
		b.cells[r] = b.cells[r+n]
	}
	for r := bottom - n + 1; r <= bottom; r++ {
		b.cells[r] = newBlankRow(b.Cols, pen)
	}
	b.dirty.markRange(top, bottom)
}

// ScrollDown shifts rows [top, bottom] down by n, discarding the bottom n
// rows of the region and filling the top n with blanks carrying pen.
func (b *Buffer) ScrollDown(top, bottom, n int, pen Pen) {
	if n <= 0 || top > bottom || top < 0 || bottom >= b.Rows {
		return
	}
	height := bottom - top + 1
	if n > height {
		n = height
	}
	for r := bottom; r >= top+n; r-- {
		b.cells[r] = b.cells[r-n]
	}
	for r := top; r < top+n; r++ {
		b.cells[r] = newBlankRow(b.Cols, pen)
	}
	b.dirty.markRange(top, bottom)
}

// InsertLines inserts n blank lines at row, within [row, bottom], shifting
// existing lines in that span down (later lines fall off the bottom of the
// region).
func (b *Buffer) InsertLines(row, n, bottom int, pen Pen) {
	b.ScrollDown(row, bottom, n, pen)
}

// DeleteLines deletes n lines at row, within [row, bottom], shifting lines
// below up and filling the bottom with blanks.
func (b *Buffer) DeleteLines(row, n, bottom int, pen Pen) {
	b.ScrollUp(row, bottom, n, pen)
}

// InsertBlanks inserts n blank cells at (col, row), shifting the row's tail
// right and discarding cells that fall off the right edge.
func (b *Buffer) InsertBlanks(col, row, n int, pen Pen) {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols || n <= 0 {
		return
	}
	line := b.cells[row]
	if n > b.Cols-col {
		n = b.Cols - col
	}
	copy(line[col+n:], line[col:b.Cols-n])
	for i := col; i < col+n; i++ {
		line[i] = blankCell(pen)
	}
	b.dirty.mark(row)
}

// DeleteChars deletes n cells at (col, row), shifting the row's tail left
// and filling the vacated right edge with blanks.
func (b *Buffer) DeleteChars(col, row, n int, pen Pen) {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols || n <= 0 {
		return
	}
	line := b.cells[row]
	if n > b.Cols-col {
		n = b.Cols - col
	}
	copy(line[col:], line[col+n:])
	for i := b.Cols - n; i < b.Cols; i++ {
		line[i] = blankCell(pen)
	}
	b.dirty.mark(row)
}

// EraseChars overwrites n cells starting at (col, row) in place with blanks
// carrying pen, without shifting anything (ECH semantics).
func (b *Buffer) EraseChars(col, row, n int, pen Pen) {
	if row < 0 || row >= b.Rows || col < 0 || n <= 0 {
		return
	}
	end := col + n
	if end > b.Cols {
		end = b.Cols
	}
	for i := col; i < end; i++ {
		if i >= 0 {
			b.cells[row][i] = blankCell(pen)
		}
	}
	b.dirty.mark(row)
}

// ClearLineRange erases columns [from, to] (inclusive) of row with blanks
// carrying pen. Used for EL 0/1/2.
func (b *Buffer) ClearLineRange(row, from, to int, pen Pen) {
	if row < 0 || row >= b.Rows {
		return
	}
	if from < 0 {
		from = 0
	}
	if to >= b.Cols {
		to = b.Cols - 1
	}
	for i := from; i <= to; i++ {
		b.cells[row][i] = blankCell(pen)
	}
	b.dirty.mark(row)
}

// ClearRows erases rows [from, to] (inclusive) entirely with blanks
// carrying pen. Used for ED 0/1/2 (ED 3 changes nothing).
func (b *Buffer) ClearRows(from, to int, pen Pen) {
	if from < 0 {
		from = 0
	}
	if to >= b.Rows {
		to = b.Rows - 1
	}
	for r := from; r <= to; r++ {
		b.cells[r] = newBlankRow(b.Cols, pen)
		b.dirty.mark(r)
	}
}

// Fill overwrites every cell in the buffer with r under the default pen,
// used by DECALN.
func (b *Buffer) Fill(r rune) {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			b.cells[row][col] = Cell{Char: r, Pen: DefaultPen, Width: Single}
		}
		b.dirty.mark(row)
	}
}

// ClearAll resets the whole buffer to blank cells under pen; used when
// switching into the alternate screen.
func (b *Buffer) ClearAll(pen Pen) {
	b.ClearRows(0, b.Rows-1, pen)
}

// Resize reshapes the buffer to (cols', rows'): content is preserved
// top-left as far as possible, extra rows/cols discarded from the
// bottom/right, missing rows/cols padded blank, scroll region reset to the
// full new height.
func (b *Buffer) Resize(cols, rows int, pen Pen) {
	newCells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		row := newBlankRow(cols, pen)
		if r < len(b.cells) {
			copy(row, b.cells[r])
		}
		newCells[r] = row
	}
	b.cells = newCells
	b.Cols, b.Rows = cols, rows
	b.ResetScrollRegion()
	b.dirty.markRange(0, rows-1)
}

// Equal reports whether a and b have identical dimensions and cell
// contents (base character, combining marks, pen, width marker), ignoring
// scroll region and saved state.
func (a *Buffer) Equal(b *Buffer) bool {
	if a.Cols != b.Cols || a.Rows != b.Rows {
		return false
	}
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			ca, cb := a.cells[r][c], b.cells[r][c]
			if ca.Char != cb.Char || ca.Width != cb.Width || ca.Pen != cb.Pen || ca.nmarks != cb.nmarks {
				return false
			}
			for i := uint8(0); i < ca.nmarks; i++ {
				if ca.marks[i] != cb.marks[i] {
					return false
				}
			}
		}
	}
	return true
}
