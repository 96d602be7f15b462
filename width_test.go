package vtcore

import "testing"

func TestRuneWidthASCII(t *testing.T) {
	for _, r := range []rune{'A', 'a', '1', ' ', '~'} {
		if got := runeWidth(r); got != 1 {
			t.Errorf("runeWidth(%q) = %d, want 1", r, got)
		}
	}
}

func TestRuneWidthWide(t *testing.T) {
	for _, r := range []rune{'中', '日', '한'} {
		if got := runeWidth(r); got != 2 {
			t.Errorf("runeWidth(%q) = %d, want 2", r, got)
		}
	}
}

func TestRuneWidthZero(t *testing.T) {
	if got := runeWidth(0x0301); got != 0 {
		t.Errorf("runeWidth(combining acute) = %d, want 0", got)
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("ab中"); got != 4 {
		t.Errorf("StringWidth = %d, want 4", got)
	}
}
