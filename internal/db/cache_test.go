package db

import (
	"path/filepath"
	"testing"

	"quillpilot/internal/analysis"
	"quillpilot/internal/registry"
	"quillpilot/internal/segment"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer cache.Close()

	key := Key("some manuscript text", analysis.Options{Style: analysis.StyleProse})
	if _, ok, err := cache.Lookup(key); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	want := analysis.Results{WordCount: 42, ReadingLevel: "Grade 7"}
	if err := cache.Store(key, "Draft", want); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, ok, err := cache.Lookup(key)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.WordCount != want.WordCount || got.ReadingLevel != want.ReadingLevel {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	// Upsert replaces the payload for the same key.
	want.WordCount = 99
	if err := cache.Store(key, "Draft", want); err != nil {
		t.Fatalf("Store upsert: %v", err)
	}
	got, _, _ = cache.Lookup(key)
	if got.WordCount != 99 {
		t.Fatalf("expected upserted payload, got %+v", got)
	}
}

func TestKeyChangesWithOptions(t *testing.T) {
	text := "same text"
	base := Key(text, analysis.Options{})
	if base == Key(text, analysis.Options{Style: analysis.StylePoetry}) {
		t.Fatalf("style must participate in the key")
	}
	if base == Key(text, analysis.Options{Characters: []string{"Anna"}}) {
		t.Fatalf("character list must participate in the key")
	}
	if base != Key(text, analysis.Options{}) {
		t.Fatalf("key must be stable for identical input")
	}
	if base == Key(text, analysis.Options{PageCountOverride: 9}) {
		t.Fatalf("page-count override must participate in the key")
	}
	if base == Key(text, analysis.Options{PageBreaks: []int{0, 100}}) {
		t.Fatalf("page breaks must participate in the key")
	}
	if base == Key(text, analysis.Options{Outline: []segment.OutlineEntry{{Title: "Chapter 1", Level: 1, End: 4}}}) {
		t.Fatalf("outline must participate in the key")
	}

	withReg := Key(text, analysis.Options{
		Characters: []string{"Anna"},
		Registry:   registry.NewSnapshot([]string{"Anna"}, map[string][]string{"Anna": {"Annie"}}),
	})
	without := Key(text, analysis.Options{
		Characters: []string{"Anna"},
		Registry:   registry.NewSnapshot([]string{"Anna"}, nil),
	})
	if withReg == without {
		t.Fatalf("registry aliases must participate in the key")
	}
}
