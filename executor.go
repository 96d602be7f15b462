package vtcore

// This file implements actionSink on *Terminal: the executor role,
// translating parser actions into mutations on the active buffer, cursor,
// pen, charsets, tab stops, and modes.

var _ actionSink = (*Terminal)(nil)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// paramDefault1 reads groups[idx][0], treating an omitted group or a zero
// value as the default 1 — the convention for cursor-motion-style params.
func paramDefault1(groups [][]int, idx int) int {
	if idx >= len(groups) || len(groups[idx]) == 0 {
		return 1
	}
	v := first(groups[idx])
	if v <= 0 {
		return 1
	}
	return v
}

// paramRaw reads groups[idx][0] verbatim, using def only when the group is
// entirely omitted (not when it is present and zero) — the convention for
// params like ED/EL/TBC where 0 is a meaningful value.
func paramRaw(groups [][]int, idx, def int) int {
	if idx >= len(groups) || len(groups[idx]) == 0 {
		return def
	}
	return first(groups[idx])
}

func (t *Terminal) activeCharset() Charset {
	if t.charsetSlot == 1 {
		return t.g1
	}
	return t.g0
}

// --- actionSink ---

func (t *Terminal) print(r rune) {
	r = t.activeCharset().translate(r)
	buf := t.active

	if IsCombiningMark(r) && (t.cursor.Col == t.cols || t.cursor.Col > 0) {
		col := t.cursor.Col
		if col >= t.cols {
			col = t.cols - 1
		} else {
			col--
		}
		if col >= 0 {
			c := buf.Cell(col, t.cursor.Row)
			c.appendMark(r)
			buf.setCell(col, t.cursor.Row, c)
		}
		return
	}

	width := runeWidth(r)
	if width < 1 {
		width = 1
	}

	awm := t.modes.has(ModeDECAWM)

	if t.cursor.Col >= t.cols {
		if awm {
			t.advanceLineWrapping()
		} else {
			t.cursor.Col = t.cols - 1
		}
	}

	if width == 2 && t.cursor.Col == t.cols-1 && awm {
		t.advanceLineWrapping()
	}

	if t.modes.has(ModeIRM) {
		buf.InsertBlanks(t.cursor.Col, t.cursor.Row, width, t.pen)
	}

	if width == 2 && t.cursor.Col+1 < t.cols {
		buf.setCell(t.cursor.Col, t.cursor.Row, Cell{Char: r, Pen: t.pen, Width: LeadingWide})
		buf.setCell(t.cursor.Col+1, t.cursor.Row, Cell{Char: ' ', Pen: t.pen, Width: TrailingWide})
	} else {
		buf.setCell(t.cursor.Col, t.cursor.Row, Cell{Char: r, Pen: t.pen, Width: Single})
		width = 1
	}

	t.cursor.Col += width
	if t.cursor.Col > t.cols {
		t.cursor.Col = t.cols
	}
}

// advanceLineWrapping moves the cursor to column 0 of the next row,
// scrolling the active scroll region if already at its bottom. Used by
// Print's deferred-wrap resolution; IND/LF go through lineFeed instead.
func (t *Terminal) advanceLineWrapping() {
	buf := t.active
	if t.cursor.Row == buf.Bottom {
		buf.ScrollUp(buf.Top, buf.Bottom, 1, t.pen)
	} else if t.cursor.Row < t.rows-1 {
		t.cursor.Row++
	}
	t.cursor.Col = 0
}

func (t *Terminal) execute(b byte) {
	switch b {
	case 0x07: // BEL
	case 0x08: // BS
		t.cursor.Col = maxInt(0, minInt(t.cursor.Col, t.cols)-1)
	case 0x09: // HT
		t.cursor.Col = t.tabs.Next(minInt(t.cursor.Col, t.cols-1))
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		t.lineFeed()
		if t.modes.has(ModeLNM) {
			t.cursor.Col = 0
		}
	case 0x0D: // CR
		t.cursor.Col = 0
	case 0x0E: // SO
		t.charsetSlot = 1
	case 0x0F: // SI
		t.charsetSlot = 0
	}
}

// lineFeed scrolls the active region if the cursor sits on its bottom row,
// otherwise moves down one row. The column is only clamped to cols-1,
// disarming a pending wrap; it is not reset (CR is separate).
func (t *Terminal) lineFeed() {
	buf := t.active
	if t.cursor.Row == buf.Bottom {
		buf.ScrollUp(buf.Top, buf.Bottom, 1, t.pen)
	} else if t.cursor.Row < t.rows-1 {
		t.cursor.Row++
	}
	if t.cursor.Col > t.cols-1 {
		t.cursor.Col = t.cols - 1
	}
}

func (t *Terminal) escDispatch(intermediates []byte, final byte) {
	hasInter := func(b byte) bool {
		for _, i := range intermediates {
			if i == b {
				return true
			}
		}
		return false
	}

	if len(intermediates) == 0 {
		switch final {
		case '7': // DECSC
			t.saveState(t.active)
			return
		case '8': // DECRC
			t.restoreState(t.active)
			return
		case 'D': // IND
			t.lineFeed()
			return
		case 'M': // RI
			buf := t.active
			if t.cursor.Row == buf.Top {
				buf.ScrollDown(buf.Top, buf.Bottom, 1, t.pen)
			} else if t.cursor.Row > 0 {
				t.cursor.Row--
			}
			t.clampColAfterMove()
			return
		case 'E': // NEL
			t.lineFeed()
			t.cursor.Col = 0
			return
		case 'H': // HTS
			t.tabs.Set(minInt(t.cursor.Col, t.cols-1))
			return
		case 'c': // RIS
			t.resetToFreshState(t.cols, t.rows)
			return
		}
		return
	}

	if hasInter('#') && final == '8' { // DECALN
		t.active.Fill('E')
		return
	}
	if hasInter('(') {
		t.g0 = charsetForDesignator(final)
		return
	}
	if hasInter(')') {
		t.g1 = charsetForDesignator(final)
		return
	}
	// Unrecognized ESC sequence: ignored, keeping Feed total over any input.
}

func charsetForDesignator(final byte) Charset {
	if final == '0' {
		return CharsetDECSpecialGraphics
	}
	return CharsetASCII
}

func (t *Terminal) saveState(buf *Buffer) {
	buf.saved = SavedState{
		Col: t.cursor.Col, Row: t.cursor.Row,
		Pen:         t.pen,
		CharsetSlot: t.charsetSlot,
		PendingWrap: t.cursor.Col >= t.cols,
		OriginMode:  t.modes.has(ModeDECOM),
		valid:       true,
	}
}

func (t *Terminal) restoreState(buf *Buffer) {
	if !buf.saved.valid {
		t.cursor.Col, t.cursor.Row = 0, 0
		return
	}
	s := buf.saved
	t.cursor.Col, t.cursor.Row = s.Col, s.Row
	if s.PendingWrap {
		t.cursor.Col = t.cols
	}
	t.pen = s.Pen
	t.charsetSlot = s.CharsetSlot
	if s.OriginMode {
		t.modes.set(ModeDECOM)
	} else {
		t.modes.reset(ModeDECOM)
	}
}

func (t *Terminal) csiDispatch(params [][]int, private byte, intermediates []byte, final byte) {
	buf := t.active
	switch final {
	case 'A': // CUU
		n := paramDefault1(params, 0)
		floor := 0
		if t.cursor.Row >= buf.Top {
			floor = buf.Top
		}
		t.cursor.Row = maxInt(floor, t.cursor.Row-n)
		t.clampColAfterMove()
	case 'B': // CUD
		n := paramDefault1(params, 0)
		ceil := t.rows - 1
		if t.cursor.Row <= buf.Bottom {
			ceil = buf.Bottom
		}
		t.cursor.Row = minInt(ceil, t.cursor.Row+n)
		t.clampColAfterMove()
	case 'C': // CUF
		n := paramDefault1(params, 0)
		t.cursor.Col = minInt(t.cols-1, t.cursor.Col+n)
	case 'D': // CUB
		n := paramDefault1(params, 0)
		t.cursor.Col = maxInt(0, minInt(t.cursor.Col, t.cols)-n)
	case 'E': // CNL
		n := paramDefault1(params, 0)
		ceil := t.rows - 1
		if t.cursor.Row <= buf.Bottom {
			ceil = buf.Bottom
		}
		t.cursor.Row = minInt(ceil, t.cursor.Row+n)
		t.cursor.Col = 0
	case 'F': // CPL
		n := paramDefault1(params, 0)
		floor := 0
		if t.cursor.Row >= buf.Top {
			floor = buf.Top
		}
		t.cursor.Row = maxInt(floor, t.cursor.Row-n)
		t.cursor.Col = 0
	case 'G', '`': // CHA, HPA
		n := paramDefault1(params, 0)
		t.cursor.Col = clampInt(n-1, 0, t.cols-1)
	case 'H', 'f': // CUP, HVP
		row := paramDefault1(params, 0) - 1
		col := paramDefault1(params, 1) - 1
		if t.modes.has(ModeDECOM) {
			t.cursor.Row = clampInt(row+buf.Top, buf.Top, buf.Bottom)
		} else {
			t.cursor.Row = clampInt(row, 0, t.rows-1)
		}
		t.cursor.Col = clampInt(col, 0, t.cols-1)
	case 'I': // CHT
		n := paramDefault1(params, 0)
		col := minInt(t.cursor.Col, t.cols-1)
		for i := 0; i < n; i++ {
			col = t.tabs.Next(col)
		}
		t.cursor.Col = col
	case 'J': // ED
		t.eraseInDisplay(paramRaw(params, 0, 0))
	case 'K': // EL
		t.eraseInLine(paramRaw(params, 0, 0))
	case 'L': // IL
		n := paramDefault1(params, 0)
		if t.cursor.Row >= buf.Top && t.cursor.Row <= buf.Bottom {
			buf.InsertLines(t.cursor.Row, n, buf.Bottom, t.pen)
		}
	case 'M': // DL
		n := paramDefault1(params, 0)
		if t.cursor.Row >= buf.Top && t.cursor.Row <= buf.Bottom {
			buf.DeleteLines(t.cursor.Row, n, buf.Bottom, t.pen)
		}
	case 'P': // DCH
		n := paramDefault1(params, 0)
		buf.DeleteChars(t.cursor.Col, t.cursor.Row, n, t.pen)
	case 'S': // SU
		n := paramDefault1(params, 0)
		buf.ScrollUp(buf.Top, buf.Bottom, n, t.pen)
	case 'T': // SD
		n := paramDefault1(params, 0)
		buf.ScrollDown(buf.Top, buf.Bottom, n, t.pen)
	case 'X': // ECH
		n := paramDefault1(params, 0)
		buf.EraseChars(t.cursor.Col, t.cursor.Row, n, t.pen)
	case 'Z': // CBT
		n := paramDefault1(params, 0)
		col := minInt(t.cursor.Col, t.cols-1)
		for i := 0; i < n; i++ {
			col = t.tabs.Prev(col)
		}
		t.cursor.Col = col
	case '@': // ICH
		n := paramDefault1(params, 0)
		buf.InsertBlanks(t.cursor.Col, t.cursor.Row, n, t.pen)
	case 'd': // VPA
		n := paramDefault1(params, 0)
		t.cursor.Row = clampInt(n-1, 0, t.rows-1)
		t.clampColAfterMove()
	case 'g': // TBC
		switch paramRaw(params, 0, 0) {
		case 0:
			t.tabs.Clear(minInt(t.cursor.Col, t.cols-1))
		case 3:
			t.tabs.ClearAll()
		}
	case 'h':
		t.setModes(params, private, true)
	case 'l':
		t.setModes(params, private, false)
	case 'm': // SGR
		applySGR(&t.pen, params)
	case 'r': // DECSTBM
		top := paramDefault1(params, 0) - 1
		bottomRaw := paramRaw(params, 1, 0)
		bottom := t.rows - 1
		if bottomRaw > 0 {
			bottom = bottomRaw - 1
		}
		buf.SetScrollRegion(top, bottom)
		t.homeCursor()
	case 's': // SCO-SC
		t.scoSaved = SavedState{Col: t.cursor.Col, Row: t.cursor.Row, valid: true}
		t.scoSavedValid = true
	case 'u': // SCO-RC
		if t.scoSavedValid {
			t.cursor.Col = clampInt(t.scoSaved.Col, 0, t.cols-1)
			t.cursor.Row = clampInt(t.scoSaved.Row, 0, t.rows-1)
		}
	case 'p':
		if hasByte(intermediates, '!') { // DECSTR soft reset
			t.modes = defaultModes()
			t.pen = DefaultPen
			t.cursor = newCursor()
			t.active.ResetScrollRegion()
		}
	default:
		// Unknown dispatch final: ignored, keeping Feed total over any input.
	}
}

func hasByte(bs []byte, b byte) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}

// clampColAfterMove keeps Col within [0, cols-1] after a vertical-only
// move, disarming any pending wrap.
func (t *Terminal) clampColAfterMove() {
	if t.cursor.Col > t.cols-1 {
		t.cursor.Col = t.cols - 1
	}
}

func (t *Terminal) homeCursor() {
	buf := t.active
	if t.modes.has(ModeDECOM) {
		t.cursor.Row = buf.Top
	} else {
		t.cursor.Row = 0
	}
	t.cursor.Col = 0
}

func (t *Terminal) eraseInDisplay(mode int) {
	buf := t.active
	row, col := t.cursor.Row, minInt(t.cursor.Col, t.cols-1)
	switch mode {
	case 0:
		buf.ClearLineRange(row, col, t.cols-1, DefaultPen)
		buf.ClearRows(row+1, t.rows-1, DefaultPen)
	case 1:
		buf.ClearRows(0, row-1, DefaultPen)
		buf.ClearLineRange(row, 0, col, DefaultPen)
	case 2:
		buf.ClearRows(0, t.rows-1, DefaultPen)
	case 3:
		// No visible effect: erasing scrollback is out of scope here, so
		// this stays a pure no-op.
	}
	t.cursor.Col = minInt(t.cursor.Col, t.cols-1)
}

func (t *Terminal) eraseInLine(mode int) {
	buf := t.active
	row, col := t.cursor.Row, minInt(t.cursor.Col, t.cols-1)
	switch mode {
	case 0:
		buf.ClearLineRange(row, col, t.cols-1, t.pen)
	case 1:
		buf.ClearLineRange(row, 0, col, t.pen)
	case 2:
		buf.ClearLineRange(row, 0, t.cols-1, t.pen)
	}
	t.cursor.Col = minInt(t.cursor.Col, t.cols-1)
}

// setModes applies SM/RM (private=0) or DECSET/DECRST (private=='?') for
// every parameter in the list. Unknown mode numbers succeed silently with
// no effect.
func (t *Terminal) setModes(params [][]int, private byte, enable bool) {
	for _, g := range params {
		n := first(g)
		if private == '?' {
			t.setDECMode(n, enable)
		} else {
			t.setANSIMode(n, enable)
		}
	}
}

func (t *Terminal) setANSIMode(n int, enable bool) {
	switch n {
	case 4:
		if enable {
			t.modes.set(ModeIRM)
		} else {
			t.modes.reset(ModeIRM)
		}
	case 20:
		if enable {
			t.modes.set(ModeLNM)
		} else {
			t.modes.reset(ModeLNM)
		}
	}
}

func (t *Terminal) setDECMode(n int, enable bool) {
	switch n {
	case 1:
		t.toggleMode(ModeDECCKM, enable)
	case 6:
		t.toggleMode(ModeDECOM, enable)
		t.homeCursor()
	case 7:
		t.toggleMode(ModeDECAWM, enable)
	case 25:
		t.toggleMode(ModeDECTCEM, enable)
		t.cursor.Visible = enable
	case 47, 1047:
		if enable {
			t.switchToAlternate()
		} else {
			t.switchToPrimary()
		}
	case 1048:
		if enable {
			t.saveState(t.active)
		} else {
			t.restoreState(t.active)
		}
	case 1049:
		if enable {
			t.saveState(t.primary)
			t.switchToAlternate()
		} else {
			t.switchToPrimary()
			t.restoreState(t.primary)
		}
	default:
		// Unknown mode: silently succeeds without effect.
	}
}

func (t *Terminal) toggleMode(bit Modes, enable bool) {
	if enable {
		t.modes.set(bit)
	} else {
		t.modes.reset(bit)
	}
}

func (t *Terminal) switchToAlternate() {
	if t.active == t.alternate {
		return
	}
	t.active = t.alternate
	t.active.ClearAll(DefaultPen)
}

func (t *Terminal) switchToPrimary() {
	t.active = t.primary
}

// Hook/Put/Unhook (DCS) and OscStart/OscPut/OscEnd are collected but not
// acted upon.
func (t *Terminal) hook(params [][]int, private byte, intermediates []byte, final byte) {}
func (t *Terminal) put(b byte)                                                          {}
func (t *Terminal) unhook()                                                             {}
func (t *Terminal) oscStart()                                                           {}
func (t *Terminal) oscPut(r rune)                                                       {}
func (t *Terminal) oscEnd()                                                             {}
