package detect

import (
	"strings"
	"testing"

	"quillpilot/internal/segment"
)

func TestPassiveAndAdverbDetection(t *testing.T) {
	text := "She was taken to the store. She quickly ran home."
	passive := PassiveVoice(text)
	if passive.Count < 1 {
		t.Fatalf("expected at least one passive construction, got %d", passive.Count)
	}
	adverbs := Adverbs(segment.TokenizeWords(text))
	if adverbs.Count != 1 {
		t.Fatalf("expected exactly one adverb, got %d (%v)", adverbs.Count, adverbs.Examples)
	}
	if adverbs.Examples[0] != "quickly" {
		t.Fatalf("expected quickly as the adverb example, got %q", adverbs.Examples[0])
	}
}

func TestPassiveVoiceMatchesIrregularParticiples(t *testing.T) {
	res := PassiveVoice("The letter was written in haste. The bread is eaten.")
	if res.Count != 2 {
		t.Fatalf("expected 2 passive hits, got %d (%v)", res.Count, res.Examples)
	}
}

func TestAdverbExceptionsAreSkipped(t *testing.T) {
	res := Adverbs([]string{"family", "only", "early", "silently"})
	if res.Count != 1 {
		t.Fatalf("expected only silently to count, got %d (%v)", res.Count, res.Examples)
	}
}

func TestWeakVerbsAndFilterWords(t *testing.T) {
	tokens := segment.TokenizeWords("He was tired and got angry. She seemed to notice that he felt something.")
	weak := WeakVerbs(tokens)
	if weak.Count < 3 {
		t.Fatalf("expected at least 3 weak verbs, got %d (%v)", weak.Count, weak.Examples)
	}
	filter := FilterWords(tokens)
	if filter.Count < 2 {
		t.Fatalf("expected filter words (seemed, notice, felt), got %d (%v)", filter.Count, filter.Examples)
	}
}

func TestClichesCountOverlappingOccurrences(t *testing.T) {
	res := Cliches("At the end of the day her blood ran cold. At the end of the day she left.")
	if res.Count != 3 {
		t.Fatalf("expected 3 cliche hits, got %d (%v)", res.Count, res.Examples)
	}
}

func TestSensoryWordsSpanSenses(t *testing.T) {
	res := SensoryWords("A bright glow, a bitter taste, and the soft fragrant air.")
	if res.Count < 4 {
		t.Fatalf("expected several sensory hits, got %d (%v)", res.Count, res.Examples)
	}
}

func TestExamplesAreCappedAndDeduplicated(t *testing.T) {
	tokens := strings.Fields(strings.Repeat("was Was got GOT seemed ", 10))
	res := WeakVerbs(tokens)
	if res.Count != 50 {
		t.Fatalf("expected every occurrence counted, got %d", res.Count)
	}
	if len(res.Examples) != 3 {
		t.Fatalf("expected 3 distinct examples, got %v", res.Examples)
	}
}
