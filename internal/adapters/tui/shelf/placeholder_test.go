package shelf

import "testing"

func TestPlaceholderLetter(t *testing.T) {
	tests := map[string]string{
		"dune":      "D",
		"  éclipse": "É",
		"":          "?",
		"   ":       "?",
		"1984":      "1",
	}
	for name, want := range tests {
		if got := PlaceholderLetter(name); got != want {
			t.Errorf("PlaceholderLetter(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestPlaceholderColorIsStable(t *testing.T) {
	if PlaceholderColor("Dune") != PlaceholderColor("Dune") {
		t.Error("colour should depend only on the name")
	}
}
