package vtcore

import "testing"

func TestNewBuffer(t *testing.T) {
	b := newBuffer(80, 24)
	if b.Cols != 80 || b.Rows != 24 {
		t.Fatalf("dims = (%d,%d), want (80,24)", b.Cols, b.Rows)
	}
	if b.Top != 0 || b.Bottom != 23 {
		t.Errorf("scroll region = [%d,%d], want [0,23]", b.Top, b.Bottom)
	}
	for r := 0; r < 24; r++ {
		for c := 0; c < 80; c++ {
			if cell := b.Cell(c, r); cell.Char != ' ' {
				t.Fatalf("cell(%d,%d) = %q, want blank", c, r, cell.Char)
			}
		}
	}
}

func TestBufferCellOutOfRange(t *testing.T) {
	b := newBuffer(10, 5)
	if c := b.Cell(-1, 0); c.Char != ' ' {
		t.Error("expected blank for negative col")
	}
	if c := b.Cell(0, -1); c.Char != ' ' {
		t.Error("expected blank for negative row")
	}
	if c := b.Cell(10, 0); c.Char != ' ' {
		t.Error("expected blank for col == cols")
	}
	if c := b.Cell(0, 5); c.Char != ' ' {
		t.Error("expected blank for row == rows")
	}
}

func TestBufferSetCellMarksDirty(t *testing.T) {
	b := newBuffer(10, 5)
	b.setCell(2, 1, Cell{Char: 'x', Width: Single})
	changes := b.dirty.viewChanges()
	if len(changes) != 1 || changes[0] != 1 {
		t.Errorf("dirty rows = %v, want [1]", changes)
	}
	if b.Cell(2, 1).Char != 'x' {
		t.Errorf("cell(2,1) = %q, want 'x'", b.Cell(2, 1).Char)
	}
}

func TestBufferRowText(t *testing.T) {
	b := newBuffer(5, 1)
	for i, r := range []rune("hi") {
		b.setCell(i, 0, Cell{Char: r, Width: Single})
	}
	if got := b.RowText(0); got != "hi   " {
		t.Errorf("RowText = %q, want %q", got, "hi   ")
	}
}

func TestBufferScrollUp(t *testing.T) {
	b := newBuffer(3, 5)
	for r := 0; r < 5; r++ {
		b.setCell(0, r, Cell{Char: rune('0' + r), Width: Single})
	}
	b.ScrollUp(0, 4, 2, DefaultPen)

	if b.Cell(0, 0).Char != '2' {
		t.Errorf("row 0 = %q, want '2'", b.Cell(0, 0).Char)
	}
	if b.Cell(0, 2).Char != '4' {
		t.Errorf("row 2 = %q, want '4'", b.Cell(0, 2).Char)
	}
	for r := 3; r < 5; r++ {
		if b.Cell(0, r).Char != ' ' {
			t.Errorf("row %d = %q, want blank", r, b.Cell(0, r).Char)
		}
	}
}

func TestBufferScrollDown(t *testing.T) {
	b := newBuffer(3, 5)
	for r := 0; r < 5; r++ {
		b.setCell(0, r, Cell{Char: rune('0' + r), Width: Single})
	}
	b.ScrollDown(0, 4, 2, DefaultPen)

	if b.Cell(0, 2).Char != '0' {
		t.Errorf("row 2 = %q, want '0'", b.Cell(0, 2).Char)
	}
	if b.Cell(0, 4).Char != '2' {
		t.Errorf("row 4 = %q, want '2'", b.Cell(0, 4).Char)
	}
	for r := 0; r < 2; r++ {
		if b.Cell(0, r).Char != ' ' {
			t.Errorf("row %d = %q, want blank", r, b.Cell(0, r).Char)
		}
	}
}

func TestBufferScrollRegionConfinesShift(t *testing.T) {
	b := newBuffer(3, 5)
	for r := 0; r < 5; r++ {
		b.setCell(0, r, Cell{Char: rune('0' + r), Width: Single})
	}
	b.ScrollUp(1, 3, 1, DefaultPen)

	if b.Cell(0, 0).Char != '0' {
		t.Errorf("row 0 outside region changed: %q", b.Cell(0, 0).Char)
	}
	if b.Cell(0, 4).Char != '4' {
		t.Errorf("row 4 outside region changed: %q", b.Cell(0, 4).Char)
	}
	if b.Cell(0, 1).Char != '2' {
		t.Errorf("row 1 = %q, want '2'", b.Cell(0, 1).Char)
	}
}

func TestBufferSetScrollRegionRejectsDegenerate(t *testing.T) {
	b := newBuffer(10, 10)
	b.SetScrollRegion(5, 5)
	if b.Top != 0 || b.Bottom != 9 {
		t.Errorf("degenerate region was accepted: [%d,%d]", b.Top, b.Bottom)
	}
	b.SetScrollRegion(2, 7)
	if b.Top != 2 || b.Bottom != 7 {
		t.Errorf("region = [%d,%d], want [2,7]", b.Top, b.Bottom)
	}
}

func TestBufferInsertDeleteBlanks(t *testing.T) {
	b := newBuffer(5, 1)
	for i, r := range []rune("abcde") {
		b.setCell(i, 0, Cell{Char: r, Width: Single})
	}
	b.InsertBlanks(1, 0, 2, DefaultPen)
	if got := b.RowText(0); got != "a  bc" {
		t.Errorf("after insert = %q, want %q", got, "a  bc")
	}
	b.DeleteChars(1, 0, 2, DefaultPen)
	if got := b.RowText(0); got != "abc  " {
		t.Errorf("after delete = %q, want %q", got, "abc  ")
	}
}

func TestBufferEraseChars(t *testing.T) {
	b := newBuffer(5, 1)
	for i, r := range []rune("abcde") {
		b.setCell(i, 0, Cell{Char: r, Width: Single})
	}
	b.EraseChars(1, 0, 2, DefaultPen)
	if got := b.RowText(0); got != "a  de" {
		t.Errorf("RowText = %q, want %q", got, "a  de")
	}
}

func TestBufferClearRows(t *testing.T) {
	b := newBuffer(3, 3)
	b.Fill('x')
	b.ClearRows(1, 1, DefaultPen)
	if b.Cell(0, 0).Char != 'x' || b.Cell(0, 2).Char != 'x' {
		t.Error("rows outside range were cleared")
	}
	if b.Cell(0, 1).Char != ' ' {
		t.Error("row 1 was not cleared")
	}
}

func TestBufferResizePreservesTopLeft(t *testing.T) {
	b := newBuffer(5, 3)
	for i, r := range []rune("abcde") {
		b.setCell(i, 0, Cell{Char: r, Width: Single})
	}
	b.Resize(3, 2, DefaultPen)
	if b.Cols != 3 || b.Rows != 2 {
		t.Fatalf("dims = (%d,%d), want (3,2)", b.Cols, b.Rows)
	}
	if got := b.RowText(0); got != "abc" {
		t.Errorf("RowText(0) = %q, want %q", got, "abc")
	}
	if b.Top != 0 || b.Bottom != 1 {
		t.Errorf("scroll region = [%d,%d], want [0,1]", b.Top, b.Bottom)
	}
}

func TestBufferEqual(t *testing.T) {
	a := newBuffer(3, 2)
	b := newBuffer(3, 2)
	if !a.Equal(b) {
		t.Error("two fresh buffers of the same size should be equal")
	}
	a.setCell(0, 0, Cell{Char: 'x', Width: Single})
	if a.Equal(b) {
		t.Error("buffers with differing content should not be equal")
	}
}
