package analysis

import (
	"reflect"
	"strings"
	"testing"

	"quillpilot/internal/registry"
)

func TestAnalyzeEmptyDocument(t *testing.T) {
	res := Analyze("", Options{})
	if res.WordCount != 0 || res.SentenceCount != 0 || res.ParagraphCount != 0 {
		t.Fatalf("expected zero counts, got %+v", res)
	}
	if res.ReadingLevel != "--" {
		t.Fatalf("expected -- reading level, got %q", res.ReadingLevel)
	}
	if res.PageCount != 0 || res.DialogueCount != 0 {
		t.Fatalf("expected zero pages and dialogue, got %+v", res)
	}
	if res.Truncated {
		t.Fatalf("empty document must not be marked truncated")
	}
	if res.SentenceLengths == nil || len(res.SentenceLengths) != 0 {
		t.Fatalf("expected empty sentence-length series, got %v", res.SentenceLengths)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	text := `Chapter 1: Arrival
Anna believed the town was safe. "I won't leave," Anna said. Anna decided to stay.

Chapter 2: Flood
Bram argued with Anna. The result was immediate. Bram never forgot.`
	opts := Options{Characters: []string{"Anna", "Bram"}}
	a := Analyze(text, opts)
	b := Analyze(text, opts)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input must produce identical results")
	}
}

func TestAnalyzeProsePipeline(t *testing.T) {
	text := `Chapter 1: Arrival
Anna was taken to the store. She quickly ran home. "I won't stay here," Anna said.
Anna believed the flood was coming because the river rose. Anna decided to warn Bram.

Chapter 2: Flood
Bram fought the current. Anna pulled Bram ashore. "Why did you wait?" Anna asked.`
	res := Analyze(text, Options{Characters: []string{"Anna", "Bram"}})

	if res.ChapterCount != 2 {
		t.Fatalf("expected 2 chapters, got %d", res.ChapterCount)
	}
	if res.PassiveVoice.Count < 1 {
		t.Fatalf("expected passive voice detection, got %+v", res.PassiveVoice)
	}
	if res.Adverbs.Count != 1 {
		t.Fatalf("expected one adverb, got %+v", res.Adverbs)
	}
	if res.DialogueCount != 2 {
		t.Fatalf("expected 2 dialogue segments, got %d", res.DialogueCount)
	}
	if len(res.BeliefShiftMatrices) != 2 || len(res.DecisionConsequenceChains) != 2 {
		t.Fatalf("expected narrative output per character, got %d/%d",
			len(res.BeliefShiftMatrices), len(res.DecisionConsequenceChains))
	}
	for _, m := range res.BeliefShiftMatrices {
		if m.Entries == nil {
			t.Fatalf("belief entries must be non-nil for %s", m.Character)
		}
	}
	for _, c := range res.DecisionConsequenceChains {
		if len(c.Entries) == 0 {
			t.Fatalf("decision chain must hold at least one entry for %s", c.Character)
		}
	}
	if res.PlotAnalysis == nil || len(res.PlotAnalysis.Chapters) != 2 {
		t.Fatalf("expected plot pacing for each chapter, got %+v", res.PlotAnalysis)
	}
	if len(res.LanguageDrift) == 0 {
		t.Fatalf("expected at least one drift window")
	}
	if res.PoetryInsights != nil {
		t.Fatalf("prose analysis must not emit poetry insights")
	}
}

func TestAnalyzePoetryBranch(t *testing.T) {
	poem := "The light goes down tonight,\nand I am left alone.\nThe dark becomes my own,\nuntil the morning light."
	res := Analyze(poem, Options{Style: StylePoetry})
	if res.PoetryInsights == nil {
		t.Fatalf("expected poetry insights")
	}
	if res.PoetryInsights.InsufficientContent {
		t.Fatalf("four lines are analyzable")
	}
	if res.PlotAnalysis != nil || res.DialogueCount != 0 || len(res.CharacterPresence) != 0 {
		t.Fatalf("poetry branch must skip prose-only analytics, got %+v", res)
	}
}

func TestAnalyzePoetryEmptyAndDegenerate(t *testing.T) {
	if got := Analyze("", Options{Style: StylePoetry}).PoetryInsights; got != nil {
		t.Fatalf("empty document must carry no poetry insights, got %+v", got)
	}
	if got := Analyze("  \n\n  ", Options{Style: StylePoetry}).PoetryInsights; got != nil {
		t.Fatalf("whitespace-only document must carry no poetry insights, got %+v", got)
	}
	got := Analyze("one lonely line", Options{Style: StylePoetry}).PoetryInsights
	if got == nil || !got.InsufficientContent {
		t.Fatalf("one-line poem should be marked insufficient, got %+v", got)
	}
}

func TestAnalyzeTruncatesLongInput(t *testing.T) {
	text := strings.Repeat("Seven small words fill this sentence nicely. ", 300_000/45+1)
	for len(text) <= MaxAnalyzedChars {
		text += text
	}
	res := Analyze(text, Options{})
	if !res.Truncated {
		t.Fatalf("oversized input must be marked truncated")
	}
	if res.WordCount <= MaxAnalyzedChars/10 {
		t.Fatalf("word count must come from the full text, got %d", res.WordCount)
	}
}

func TestTruncationKeepsDerivedRatiosStable(t *testing.T) {
	unit := `He said, "No way home now." Then they walked back home slowly. `
	small := Analyze(strings.Repeat(unit, 100), Options{})
	big := Analyze(strings.Repeat(unit, MaxAnalyzedChars/len(unit)+100), Options{})
	if small.Truncated || !big.Truncated {
		t.Fatalf("expected only the oversized document to truncate")
	}
	if big.ReadingLevel != small.ReadingLevel {
		t.Fatalf("uniform prose must grade identically when truncated: %q vs %q",
			big.ReadingLevel, small.ReadingLevel)
	}
	if big.DialoguePercentage != small.DialoguePercentage {
		t.Fatalf("uniform prose must keep its dialogue share when truncated: %d vs %d",
			big.DialoguePercentage, small.DialoguePercentage)
	}
}

func TestPageCountOverrideAndStyles(t *testing.T) {
	text := strings.Repeat("word ", 300)
	if got := Analyze(text, Options{}).PageCount; got != 2 {
		t.Fatalf("expected 2 manuscript pages for 300 words, got %d", got)
	}
	if got := Analyze(text, Options{PageCountOverride: 7}).PageCount; got != 7 {
		t.Fatalf("override must win, got %d", got)
	}
	script := strings.Repeat("line one here\n", 60)
	if got := Analyze(script, Options{Style: StyleScreenplay}).PageCount; got != 2 {
		t.Fatalf("expected 2 screenplay pages for 60 lines, got %d", got)
	}
	if got := Analyze(text, Options{PageBreaks: []int{0, 500, 1000}}).PageCount; got != 3 {
		t.Fatalf("caller pagination should win over the estimate, got %d", got)
	}
}

func TestValidatedCharactersRegistryWins(t *testing.T) {
	snap := registry.NewSnapshot([]string{"Anna"}, map[string][]string{"Anna": {"Annie"}})
	text := "Annie waved. Stranger McFake waved back. Annie left. Annie returned."
	res := Analyze(text, Options{Characters: []string{"Annie", "Stranger"}, Registry: snap})
	if len(res.CharacterPresence) != 1 || res.CharacterPresence[0].Character != "Anna" {
		t.Fatalf("registry must canonicalize and filter candidates, got %+v", res.CharacterPresence)
	}
}

func TestChapterPacingScoresConflict(t *testing.T) {
	chapters := Analyze(`Chapter 1: Quiet
She read by the window all afternoon and the house stayed silent for hours on end.

Chapter 2: Breaking
"Stop!" he shouted. They fought. She screamed back. He attacked the door. They argued until midnight.`, Options{}).PlotAnalysis.Chapters
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	if chapters[1].Pacing <= chapters[0].Pacing {
		t.Fatalf("conflict-heavy chapter should pace faster: %d vs %d",
			chapters[0].Pacing, chapters[1].Pacing)
	}
	if chapters[1].ConflictDensity == 0 {
		t.Fatalf("expected conflict markers in chapter 2")
	}
}
