package vtcore

import "testing"

func TestCharsetASCIIPassthrough(t *testing.T) {
	if got := CharsetASCII.translate('q'); got != 'q' {
		t.Errorf("translate('q') = %q, want 'q'", got)
	}
}

func TestCharsetDECSpecialGraphics(t *testing.T) {
	tests := []struct {
		in   rune
		want rune
	}{
		{'q', '─'},
		{'x', '│'},
		{'j', '┘'},
		{'l', '┌'},
	}
	for _, tt := range tests {
		if got := CharsetDECSpecialGraphics.translate(tt.in); got != tt.want {
			t.Errorf("translate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCharsetDECSpecialGraphicsUnmapped(t *testing.T) {
	if got := CharsetDECSpecialGraphics.translate('A'); got != 'A' {
		t.Errorf("translate('A') = %q, want 'A' (unmapped passthrough)", got)
	}
}
