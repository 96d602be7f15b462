package vtcore

import "errors"

// ErrInvalidDimensions is returned by New and Resize when either dimension
// is non-positive. It is the only error this package ever returns; every
// other operation is total.
var ErrInvalidDimensions = errors.New("vtcore: invalid dimensions")

// Row is one line of a Dump: a run-length-encoded sequence of text
// segments sharing a Pen, in column order.
type Row struct {
	Runs []Run
}

// Run is a contiguous span of cells sharing one Pen.
type Run struct {
	Text string
	Pen  Pen
}

// Terminal is the public feed+query facade: it owns the primary and
// alternate buffers, the cursor, the current pen, charset state, tab
// stops, modes, and the parser driving it all. It is single-threaded and
// synchronous: every method runs to completion before returning, and
// nothing here spawns goroutines or performs I/O.
type Terminal struct {
	cols, rows int

	primary   *Buffer
	alternate *Buffer
	active    *Buffer

	cursor Cursor
	pen    Pen

	g0, g1      Charset
	charsetSlot int // 0 = G0 active, 1 = G1 active

	tabs  *TabStops
	modes Modes

	parser *Parser

	scoSaved      SavedState
	scoSavedValid bool
}

// New constructs a Terminal with the given column and row counts, both of
// which must be >= 1 (the grid model requires at least one row and one
// addressable column). Returns ErrInvalidDimensions otherwise.
func New(cols, rows int) (*Terminal, error) {
	if cols < 1 || rows < 1 {
		return nil, ErrInvalidDimensions
	}
	t := &Terminal{}
	t.resetToFreshState(cols, rows)
	return t, nil
}

// resetToFreshState rebuilds every piece of terminal state as if newly
// constructed at the given size. Used by New and by RIS.
func (t *Terminal) resetToFreshState(cols, rows int) {
	t.cols, t.rows = cols, rows
	t.primary = newBuffer(cols, rows)
	t.alternate = newBuffer(cols, rows)
	t.active = t.primary
	t.cursor = newCursor()
	t.pen = DefaultPen
	t.g0 = CharsetASCII
	t.g1 = CharsetASCII
	t.charsetSlot = 0
	t.tabs = newTabStops(cols)
	t.modes = defaultModes()
	t.parser = NewParser()
	t.scoSaved = SavedState{}
	t.scoSavedValid = false
}

// Feed ingests a sequence of Unicode scalar values, driving them through
// the parser and executor. It never panics and never returns an error.
func (t *Terminal) Feed(input []rune) {
	for _, r := range input {
		t.parser.Advance(r, t)
	}
}

// FeedString is a convenience wrapper over Feed for UTF-8 text.
func (t *Terminal) FeedString(s string) {
	t.Feed([]rune(s))
}

// Size returns the current column and row counts.
func (t *Terminal) Size() (cols, rows int) {
	return t.cols, t.rows
}

// CursorPos returns the cursor's column, row, and visibility. Col may
// legitimately equal Size()'s cols value: see Cursor's pending-wrap note.
func (t *Terminal) CursorPos() (col, row int, visible bool) {
	return t.cursor.Col, t.cursor.Row, t.cursor.Visible
}

// Cell returns the cell at (col, row) in the active buffer. Out-of-range
// coordinates return a blank cell.
func (t *Terminal) Cell(col, row int) Cell {
	return t.active.Cell(col, row)
}

// RowText returns the concatenated base characters (plus combining marks)
// of row in the active buffer, without trimming trailing blanks.
func (t *Terminal) RowText(row int) string {
	return t.active.RowText(row)
}

// ViewChanges returns the set of rows in the active buffer that changed
// since the last call, and atomically clears that set.
func (t *Terminal) ViewChanges() []int {
	return t.active.dirty.viewChanges()
}

// IsAlternateScreen reports whether the alternate buffer is currently
// active.
func (t *Terminal) IsAlternateScreen() bool {
	return t.active == t.alternate
}

// Dump returns every row of the active buffer as a run-length-encoded
// sequence of (text, Pen) segments, for snapshot rendering.
func (t *Terminal) Dump() []Row {
	rows := make([]Row, t.rows)
	for r := 0; r < t.rows; r++ {
		rows[r] = t.dumpRow(r)
	}
	return rows
}

func (t *Terminal) dumpRow(row int) Row {
	var out Row
	var curText []rune
	var curPen Pen
	have := false
	flush := func() {
		if have && len(curText) > 0 {
			out.Runs = append(out.Runs, Run{Text: string(curText), Pen: curPen})
		}
		curText = nil
	}
	for col := 0; col < t.cols; col++ {
		c := t.active.Cell(col, row)
		if c.Width == TrailingWide {
			continue
		}
		if !have || c.Pen != curPen {
			flush()
			curPen = c.Pen
			have = true
		}
		curText = append(curText, []rune(c.Text())...)
	}
	flush()
	return out
}

// Resize reshapes both buffers to (cols, rows): visible content is
// preserved top-left as far as possible, the cursor is clamped into the
// new dimensions, and the scroll region resets to the full new
// height. Returns ErrInvalidDimensions for non-positive sizes.
func (t *Terminal) Resize(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return ErrInvalidDimensions
	}
	t.primary.Resize(cols, rows, DefaultPen)
	t.alternate.Resize(cols, rows, DefaultPen)
	t.cols, t.rows = cols, rows
	t.tabs.Resize(cols)
	if t.cursor.Col > cols-1 {
		t.cursor.Col = cols - 1
	}
	if t.cursor.Row > rows-1 {
		t.cursor.Row = rows - 1
	}
	return nil
}
