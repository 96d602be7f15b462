package vtcore

import "testing"

// FuzzFeed drives arbitrary byte sequences through Feed, asserting only that
// it never panics: the totality guarantee covers any input, well-formed or
// not.
func FuzzFeed(f *testing.F) {
	seeds := []string{
		"",
		"hello, world\r\n",
		"\x1b[1;31mred\x1b[0m",
		"\x1b[2J\x1b[H",
		"\x1b]0;title\x07",
		"\x1bP+q544e\x1b\\",
		"\x1b[?1049h\x1b[?1049l",
		"\x1b[38:2::10:20:30m",
		string([]byte{0x9b, '1', ';', '2', 'H'}),
		"\x18\x1a\x1b",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		term, err := New(80, 24)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		term.FeedString(s)
		_ = term.Dump()
		_ = term.ViewChanges()
	})
}
