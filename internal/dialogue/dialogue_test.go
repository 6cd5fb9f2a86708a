package dialogue

import (
	"strings"
	"testing"
)

func TestExtractProsePairsQuotes(t *testing.T) {
	text := `She said, "Hello there." He nodded. “Fine,” he said.`
	segments := ExtractProse(text)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Text != "Hello there." {
		t.Fatalf("unexpected first segment: %q", segments[0].Text)
	}
	if segments[1].Text != "Fine," {
		t.Fatalf("unexpected second segment: %q", segments[1].Text)
	}
}

func TestExtractProseIgnoresUnclosedQuote(t *testing.T) {
	segments := ExtractProse(`He began, "I never finished`)
	if len(segments) != 0 {
		t.Fatalf("unclosed quote should yield no segments, got %+v", segments)
	}
}

func TestExtractScreenplayJoinsCueLines(t *testing.T) {
	text := strings.Join([]string{
		"JANE",
		"I can't stay here.",
		"Not after what happened.",
		"",
		"INT. KITCHEN - NIGHT",
		"Jane pours coffee.",
	}, "\n")
	segments := ExtractScreenplay(text)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segments), segments)
	}
	if segments[0].Speaker != "JANE" {
		t.Fatalf("unexpected speaker: %q", segments[0].Speaker)
	}
	want := "I can't stay here. Not after what happened."
	if segments[0].Text != want {
		t.Fatalf("expected joined text %q, got %q", want, segments[0].Text)
	}
}

func TestExtractScreenplaySkipsHeadingsAndTransitions(t *testing.T) {
	text := strings.Join([]string{
		"INT. OFFICE - DAY",
		"",
		"CUT TO:",
		"",
		"MARCUS",
		"We had a deal.",
	}, "\n")
	segments := ExtractScreenplay(text)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segments), segments)
	}
	if segments[0].Speaker != "MARCUS" {
		t.Fatalf("unexpected speaker: %q", segments[0].Speaker)
	}
}

func TestScoreZeroSegments(t *testing.T) {
	report := Score(nil, "some text")
	if report.Quality != 0 || report.Pacing != 0 || report.Repetition != 0 || report.HasConflict {
		t.Fatalf("expected zeroed report for empty dialogue, got %+v", report)
	}
}

func TestScoreRewardsVariedConflictedDialogue(t *testing.T) {
	segments := []Segment{
		{Text: "No! I won't let you walk away from this family, not now and not ever again."},
		{Text: "Why do you always blame me for everything that goes wrong around here?"},
		{Text: "Stop. Just stop talking... please?"},
		{Text: "You think I wanted this? I fought for years to keep us together and you never noticed!"},
	}
	full := `"No," she said. "Why," he asked. She whispered. He shouted. She murmured. He snapped back.` +
		` "Enough," she cried. He muttered something.`
	report := Score(segments, full)
	if !report.HasConflict {
		t.Fatalf("expected conflict to be detected")
	}
	if report.Quality < 60 {
		t.Fatalf("expected quality >= 60 for varied conflicted dialogue, got %d", report.Quality)
	}
	if report.Repetition != 100 {
		t.Fatalf("expected repetition score 100 with no repeated lines, got %d", report.Repetition)
	}
}

func TestScorePenalizesRepeatedLines(t *testing.T) {
	segments := make([]Segment, 0, 12)
	for i := 0; i < 12; i++ {
		segments = append(segments, Segment{Text: "We need to talk."})
	}
	report := Score(segments, "said said said")
	if report.Repetition != 0 {
		t.Fatalf("expected repetition score 0 for identical lines, got %d", report.Repetition)
	}
	if report.Quality > 40 {
		t.Fatalf("expected low quality for degenerate dialogue, got %d", report.Quality)
	}
}
