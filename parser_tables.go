package vtcore

// pstate is a state of the DEC ANSI parser state diagram (Paul Williams).
type pstate uint8

const (
	psGround pstate = iota
	psEscape
	psEscapeIntermediate
	psCsiEntry
	psCsiParam
	psCsiIntermediate
	psCsiIgnore
	psDcsEntry
	psDcsParam
	psDcsIntermediate
	psDcsPassthrough
	psDcsIgnore
	psOscString
	psSosPmApcString
)

// byteClass groups input code points the way the state diagram does. There
// is no (state, class) transition table: each state's step function in
// parser.go switches on the class.
type byteClass uint8

const (
	clC0            byteClass = iota // 0x00-0x17, 0x19, 0x1C-0x1F: C0 controls other than CAN/SUB/ESC
	clCanSub                         // 0x18, 0x1A: CAN, SUB
	clEsc                            // 0x1B
	clDel                            // 0x7F
	clIntermediate                   // 0x20-0x2F
	clDigit                          // 0x30-0x39
	clColon                          // 0x3A
	clSemi                           // 0x3B
	clPrivateMarker                  // 0x3C-0x3F
	clFinal                          // 0x40-0x7E
	clC1                             // 0x80-0x9F
	clPrintable                      // everything else: printable text, including >= 0xA0
)

// classify returns the table row for r. Anywhere-transitions (CAN/SUB, ESC,
// specific C1 codes) are resolved separately before classify is consulted:
// they preempt the per-state table regardless of current state.
func classify(r rune) byteClass {
	switch {
	case r == 0x18 || r == 0x1A:
		return clCanSub
	case r == 0x1B:
		return clEsc
	case r == 0x7F:
		return clDel
	case r <= 0x17 || r == 0x19 || (r >= 0x1C && r <= 0x1F):
		return clC0
	case r >= 0x20 && r <= 0x2F:
		return clIntermediate
	case r >= 0x30 && r <= 0x39:
		return clDigit
	case r == 0x3A:
		return clColon
	case r == 0x3B:
		return clSemi
	case r >= 0x3C && r <= 0x3F:
		return clPrivateMarker
	case r >= 0x40 && r <= 0x7E:
		return clFinal
	case r >= 0x80 && r <= 0x9F:
		return clC1
	default:
		return clPrintable
	}
}

// The C1 control codes (0x80-0x9F) that the anywhere-transition logic in
// parser.go handles directly, each shorthand for a 7-bit escape sequence.
// Other C1 codes get no anywhere transition.
//
//	0x9B CSI, 0x90 DCS, 0x9D OSC, 0x98 SOS, 0x9E PM, 0x9F APC
const (
	c1CSI = 0x9B
	c1DCS = 0x90
	c1OSC = 0x9D
	c1SOS = 0x98
	c1PM  = 0x9E
	c1APC = 0x9F
	c1ST  = 0x9C // String Terminator
)
