package extract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizeSpace(t *testing.T) {
	if got := normalizeSpace("  a\t b\n\nc  "); got != "a b c" {
		t.Fatalf("got %q", got)
	}
}

func TestStripNoise_PreservesLines(t *testing.T) {
	got := stripNoise("ligne un   \nligne\x00deux\t\nligne trois")
	want := "ligne un\nligne deux\nligne trois"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClip(t *testing.T) {
	if got := clip("court", 100); got != "court" {
		t.Fatalf("got %q", got)
	}
	got := clip("une phrase beaucoup trop longue pour la limite", 20)
	if len(got) > 20 {
		t.Fatalf("too long: %q", got)
	}
	if got[len(got)-3:] != "..." {
		t.Fatalf("missing ellipsis: %q", got)
	}
}

func TestClip_RuneBoundary(t *testing.T) {
	// The cut point lands inside a 2-byte "é"; the result must still be
	// valid UTF-8.
	got := clip(strings.Repeat("é", 50), 20)
	if !utf8.ValidString(got) {
		t.Fatalf("invalid UTF-8: %q", got)
	}
	if len(got) > 20 {
		t.Fatalf("too long: %q", got)
	}
}

func TestTruncBytes(t *testing.T) {
	if got := truncBytes("court", 100); got != "court" {
		t.Fatalf("got %q", got)
	}
	got := truncBytes(strings.Repeat("à", 10), 5)
	if len(got) != 4 || !utf8.ValidString(got) {
		t.Fatalf("got %q (len %d)", got, len(got))
	}
}

func TestDedupeFold(t *testing.T) {
	got := dedupeFold([]string{"Alpha", "beta", "ALPHA", "", "  ", "gamma", "beta"}, 10)
	if len(got) != 3 || got[0] != "Alpha" || got[1] != "beta" || got[2] != "gamma" {
		t.Fatalf("got %v", got)
	}
	capped := dedupeFold([]string{"a", "b", "c"}, 2)
	if len(capped) != 2 {
		t.Fatalf("cap ignored: %v", capped)
	}
}
