package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFilePlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.txt")
	if err := os.WriteFile(path, []byte("line one\r\nline two\r"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if doc.Title != "draft" {
		t.Fatalf("expected title from filename, got %q", doc.Title)
	}
	if doc.Text != "line one\nline two\n" {
		t.Fatalf("expected normalized line endings, got %q", doc.Text)
	}
}

func TestParseFileRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.xyz")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := ParseFile(path); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestDetectFormatScreenplay(t *testing.T) {
	script := strings.Join([]string{
		"FADE IN:",
		"",
		"INT. KITCHEN - NIGHT",
		"",
		"JANE",
		"I can't stay here.",
		"",
		"EXT. STREET - DAY",
		"",
		"MARCUS",
		"Then go.",
		"",
		"CUT TO:",
	}, "\n")
	if got := DetectFormat(script); got != Screenplay {
		t.Fatalf("expected screenplay, got %q", got)
	}
}

func TestDetectFormatProse(t *testing.T) {
	prose := strings.Repeat("She walked along the shore and thought about the letter.\n", 40)
	if got := DetectFormat(prose); got != Prose {
		t.Fatalf("expected prose, got %q", got)
	}
	if got := DetectFormat(""); got != Prose {
		t.Fatalf("empty text defaults to prose, got %q", got)
	}
}
