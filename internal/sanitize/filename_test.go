package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestToSafeFilename_Basics(t *testing.T) {
	got := ToSafeFilename("Hello:/\\*?\"<>| World", "mp4")
	if got != "Hello_ World.mp4" {
		t.Fatalf("got %q", got)
	}
}

func TestToSafeFilename_Defaults(t *testing.T) {
	got := ToSafeFilename("", "")
	if got != "video.mp4" {
		t.Fatalf("got %q", got)
	}
}

func TestToSafeFilename_Ext(t *testing.T) {
	tests := []struct {
		title    string
		ext      string
		expected string
	}{
		{title: "clip", ext: "FLV", expected: "clip.flv"},
		{title: "clip", ext: ".3gp", expected: "clip.3gp"},
		{title: "clip", ext: "m/p4", expected: "clip.mp4"},
		{title: "..", ext: "mp4", expected: "video.mp4"},
		{title: "tab\there", ext: "mp4", expected: "tab_here.mp4"},
	}

	for _, tt := range tests {
		if got := ToSafeFilename(tt.title, tt.ext); got != tt.expected {
			t.Errorf("ToSafeFilename(%q, %q): expected %q, got %q", tt.title, tt.ext, tt.expected, got)
		}
	}
}

func TestToSafeFilename_Long(t *testing.T) {
	title := strings.Repeat("a", 200)
	got := ToSafeFilename(title, "mp4")
	if len(got) > 124 { // name(120)+.ext
		t.Fatalf("too long: %d", len(got))
	}
}

func TestToSafeFilename_LongMultibyte(t *testing.T) {
	title := strings.Repeat("é", 100)
	got := ToSafeFilename(title, "mp4")
	if !utf8.ValidString(got) {
		t.Fatalf("invalid UTF-8: %q", got)
	}
	if len(got) > 124 {
		t.Fatalf("too long: %d", len(got))
	}
}
