package segment

import (
	"strings"
	"testing"
)

func TestPoemBodyLinesStripsHeaderBlock(t *testing.T) {
	text := strings.Join([]string{
		"Evening Song",
		"by A. Reader",
		"",
		"The light goes down",
		"behind the town",
	}, "\n")
	lines := PoemBodyLines(text)
	if len(lines) != 2 {
		t.Fatalf("expected 2 body lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "The light goes down" {
		t.Fatalf("header should be stripped, got first line %q", lines[0])
	}
}

func TestPoemBodyLinesKeepsPunctuatedOpening(t *testing.T) {
	text := "The light goes down, slowly.\nbehind the town"
	lines := PoemBodyLines(text)
	if len(lines) != 2 {
		t.Fatalf("punctuated opening is body text, got %v", lines)
	}
}

func TestStanzasSplitOnBlankLines(t *testing.T) {
	lines := []string{"one", "two", "", "", "three"}
	stanzas := Stanzas(lines)
	if len(stanzas) != 2 {
		t.Fatalf("expected 2 stanzas, got %d", len(stanzas))
	}
	if len(stanzas[0]) != 2 || len(stanzas[1]) != 1 {
		t.Fatalf("unexpected stanza shapes: %v", stanzas)
	}
}
