package registry

import (
	"strings"
	"testing"
)

func TestValidateEmptyRegistryPassesCandidatesThrough(t *testing.T) {
	got := Validate([]string{"Anna", "Bram", "anna", ""}, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 deduplicated characters, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Anna" || got[1].Name != "Bram" {
		t.Fatalf("unexpected names: %+v", got)
	}
}

func TestValidateResolvesAliasesToCanonical(t *testing.T) {
	snap := NewSnapshot([]string{"Anna Pine", "Bram"}, map[string][]string{
		"Anna Pine": {"Annie", "Ms. Pine"},
	})
	got := Validate([]string{"Annie", "bram", "Stranger"}, snap)
	if len(got) != 2 {
		t.Fatalf("expected 2 validated characters, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Anna Pine" {
		t.Fatalf("alias should resolve to canonical name, got %q", got[0].Name)
	}
	joined := strings.Join(got[0].Aliases, "|")
	if !strings.Contains(joined, "Anna Pine") || !strings.Contains(joined, "Annie") {
		t.Fatalf("aliases should include canonical key and registry aliases, got %v", got[0].Aliases)
	}
}

func TestValidateNoCandidatesUsesWholeRegistry(t *testing.T) {
	snap := NewSnapshot([]string{"Anna", "Bram"}, nil)
	got := Validate(nil, snap)
	if len(got) != 2 {
		t.Fatalf("expected every registry entry, got %d: %+v", len(got), got)
	}
}

func TestValidateDropsDuplicateCanonicals(t *testing.T) {
	snap := NewSnapshot([]string{"Anna"}, map[string][]string{"Anna": {"Annie"}})
	got := Validate([]string{"Anna", "Annie"}, snap)
	if len(got) != 1 {
		t.Fatalf("expected one character after canonical dedup, got %d", len(got))
	}
}

func TestExtractCandidatesRequiresEvidence(t *testing.T) {
	text := `Anna walked in. Anna sat down. Anna smiled. ` +
		`Bram said nothing, though Bram's coat dripped. ` +
		`Suddenly the Window rattled once.`
	got := ExtractCandidates(text)
	joined := strings.Join(got, "|")
	if !strings.Contains(joined, "Anna") {
		t.Fatalf("expected Anna (three mentions), got %v", got)
	}
	if !strings.Contains(joined, "Bram") {
		t.Fatalf("expected Bram (possessive evidence), got %v", got)
	}
	if strings.Contains(joined, "Window") {
		t.Fatalf("single-mention noun should be rejected, got %v", got)
	}
	if strings.Contains(joined, "Suddenly") {
		t.Fatalf("stopword should be rejected, got %v", got)
	}
}
