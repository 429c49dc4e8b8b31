package formats

import (
	"sort"
	"testing"
)

func TestHasURL(t *testing.T) {
	if !hasURL("http://x") {
		t.Fatal("expected true for non-empty URL")
	}
	if hasURL("") || hasURL("  ") {
		t.Fatal("expected false for blank URL")
	}
}

func TestLessID(t *testing.T) {
	ids := []string{"37", "5", "abc", "18", "100", "22", "9x"}
	sort.Slice(ids, func(i, j int) bool { return lessID(ids[i], ids[j]) })

	expected := []string{"5", "18", "22", "37", "100", "9x", "abc"}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatalf("Expected order %v, got %v", expected, ids)
		}
	}
}

func TestNormalizeID(t *testing.T) {
	if got := normalizeID(" 22 "); got != "22" {
		t.Errorf("Expected '22', got '%s'", got)
	}
}
