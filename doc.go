// Package vtcore implements a headless virtual terminal emulator core.
//
// It is display-side only: it consumes the output stream of a PTY (or a
// recorded session) one Unicode scalar value at a time and maintains an in-memory model of what
// an ANSI-compatible video terminal would be showing, without performing
// any rasterization, keyboard handling, or transport of its own. Embedders
// are expected to be session players, recording servers, or renderers built
// on top of [Terminal]'s feed and query surface.
//
// # Quick start
//
//	term, err := vtcore.New(80, 24)
//	if err != nil {
//		log.Fatal(err)
//	}
//	term.Feed([]rune("\x1b[31mHello\x1b[0m"))
//	fmt.Println(term.RowText(0))
//
// # Architecture
//
// Bytes flow through a [Parser] implementing Paul Williams' DEC ANSI state
// diagram, which emits a small set of actions (print, execute, escape
// dispatch, CSI dispatch, DCS hook/put/unhook, OSC start/put/end, ignore).
// [Terminal] implements the Executor role: it consumes those actions and
// mutates its active [Buffer], [Cursor], pen, charsets, modes, tab stops,
// and scroll region.
//
// # Totality
//
// Every public method is infallible except [New] and [Terminal.Resize],
// which return [ErrInvalidDimensions] for non-positive sizes. No input byte
// sequence, however malformed, causes a panic; CsiIgnore/DcsIgnore/string
// states swallow anything they cannot parse.
package vtcore
