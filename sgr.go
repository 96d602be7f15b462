package vtcore

// first returns g[0], or 0 if g is empty (an omitted parameter).
func first(g []int) int {
	if len(g) == 0 {
		return 0
	}
	return g[0]
}

func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// applySGR updates pen according to the Select Graphic Rendition table.
// groups is the semicolon-delimited parameter list, each entry itself
// possibly holding colon-delimited sub-parameters (used by the
// extended-color forms).
func applySGR(pen *Pen, groups [][]int) {
	if len(groups) == 0 {
		pen.Reset()
		return
	}
	for i := 0; i < len(groups); {
		code := first(groups[i])
		switch {
		case code == 0:
			pen.Reset()
			i++
		case code == 1:
			pen.SetAttr(AttrBold)
			i++
		case code == 2:
			pen.SetAttr(AttrFaint)
			i++
		case code == 3:
			pen.SetAttr(AttrItalic)
			i++
		case code == 4:
			pen.SetAttr(AttrUnderline)
			i++
		case code == 5 || code == 6:
			pen.SetAttr(AttrBlink)
			i++
		case code == 7:
			pen.SetAttr(AttrInverse)
			i++
		case code == 8:
			pen.SetAttr(AttrConceal)
			i++
		case code == 9:
			pen.SetAttr(AttrStrikethrough)
			i++
		case code == 21:
			pen.ClearAttr(AttrBold)
			i++
		case code == 22:
			pen.ClearAttr(AttrBold | AttrFaint)
			i++
		case code == 23:
			pen.ClearAttr(AttrItalic)
			i++
		case code == 24:
			pen.ClearAttr(AttrUnderline)
			i++
		case code == 25:
			pen.ClearAttr(AttrBlink)
			i++
		case code == 27:
			pen.ClearAttr(AttrInverse)
			i++
		case code == 28:
			pen.ClearAttr(AttrConceal)
			i++
		case code == 29:
			pen.ClearAttr(AttrStrikethrough)
			i++
		case code >= 30 && code <= 37:
			pen.Fg = Indexed(uint8(code - 30))
			i++
		case code == 38:
			c, consumed := parseExtendedColor(groups, i)
			if c != nil {
				pen.Fg = *c
			}
			i += consumed
		case code == 39:
			pen.Fg = DefaultColor
			i++
		case code >= 40 && code <= 47:
			pen.Bg = Indexed(uint8(code - 40))
			i++
		case code == 48:
			c, consumed := parseExtendedColor(groups, i)
			if c != nil {
				pen.Bg = *c
			}
			i += consumed
		case code == 49:
			pen.Bg = DefaultColor
			i++
		case code >= 90 && code <= 97:
			pen.Fg = Indexed(uint8(code - 90 + 8))
			i++
		case code >= 100 && code <= 107:
			pen.Bg = Indexed(uint8(code - 100 + 8))
			i++
		default:
			i++
		}
	}
}

// parseExtendedColor handles both the sub-parameter (colon) and legacy
// (semicolon) forms of extended 38/48 color selection, returning the
// parsed color (nil if malformed) and how many top-level groups were
// consumed starting at i.
func parseExtendedColor(groups [][]int, i int) (*Color, int) {
	g := groups[i]
	if len(g) > 1 {
		// Colon form: 38:5:N or 38:2::R:G:B, all within one group.
		mode := g[1]
		switch mode {
		case 5:
			if len(g) >= 3 {
				c := Indexed(clamp255(g[2]))
				return &c, 1
			}
		case 2:
			if len(g) >= 5 {
				n := len(g)
				c := RGB(clamp255(g[n-3]), clamp255(g[n-2]), clamp255(g[n-1]))
				return &c, 1
			}
		}
		return nil, 1
	}
	// Legacy semicolon form: mode and components are separate top-level
	// groups following this one.
	if i+1 >= len(groups) {
		return nil, 1
	}
	mode := first(groups[i+1])
	switch mode {
	case 5:
		if i+2 < len(groups) {
			c := Indexed(clamp255(first(groups[i+2])))
			return &c, 3
		}
		return nil, 2
	case 2:
		if i+4 < len(groups) {
			c := RGB(clamp255(first(groups[i+2])), clamp255(first(groups[i+3])), clamp255(first(groups[i+4])))
			return &c, 5
		}
		return nil, 2
	}
	return nil, 2
}
