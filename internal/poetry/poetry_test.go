package poetry

import (
	"strings"
	"testing"
)

func TestRhymeSchemeABAB(t *testing.T) {
	stanza := []string{
		"I walked into the day",
		"and waited for the night",
		"to carry me toward day",
		"toward a distant light",
	}
	if got := rhymeScheme(stanza); got != "ABAB" {
		t.Fatalf("expected ABAB, got %q", got)
	}
}

func TestRhymeSchemeMarksUnusableLines(t *testing.T) {
	stanza := []string{"1917", "42 — 42", "...", "!!"}
	if got := rhymeScheme(stanza); got != "----" {
		t.Fatalf("expected ---- for lines with no usable end word, got %q", got)
	}
}

func TestRhymeSchemeExhaustsLetterSupply(t *testing.T) {
	stanza := make([]string, 0, 28)
	for i := 0; i < 28; i++ {
		end := string([]byte{'b' + byte(i/10), 'a' + byte(i%10), 'x'})
		stanza = append(stanza, "a line that ends with "+end)
	}
	got := rhymeScheme(stanza)
	if len(got) != 28 {
		t.Fatalf("expected one symbol per line, got %q", got)
	}
	if got[25] != 'Z' {
		t.Fatalf("expected 26th distinct key to take Z, got %q", got)
	}
	if got[26] != '-' || got[27] != '-' {
		t.Fatalf("keys past Z must render as dashes, got %q", got)
	}
}

func TestRhymeKeyUsesWholeShortWords(t *testing.T) {
	if got := rhymeKey("carry me to"); got != "to" {
		t.Fatalf("short end word is its own key, got %q", got)
	}
	if got := rhymeKey("a distant light."); got != "ght" {
		t.Fatalf("expected last three letters, got %q", got)
	}
}

func TestEnjambmentAndCaesura(t *testing.T) {
	if !isEnjambed("the river carries on") {
		t.Fatalf("line without closing punctuation is enjambed")
	}
	if isEnjambed("the river stops here.") {
		t.Fatalf("period-terminated line is end-stopped")
	}
	if !hasCaesura("I called, and no one came at all") {
		t.Fatalf("expected mid-line pause to register as caesura")
	}
	if hasCaesura("no pause lives in this line at all,") {
		t.Fatalf("trailing comma is not a caesura")
	}
}

func TestAnaphoraDetection(t *testing.T) {
	lines := []string{
		"We carry the water",
		"We carry the ashes",
		"We carry the names",
		"and nothing else moves",
	}
	got := anaphoraPhrases(lines)
	if len(got) == 0 {
		t.Fatalf("expected anaphora for repeated line opening")
	}
	found := false
	for _, p := range got {
		if p.Phrase == "we carry" && p.Count == 3 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'we carry' x3, got %+v", got)
	}
}

func TestLineScoreAmplification(t *testing.T) {
	base := lineScore("the light of love")
	if base != 1 {
		t.Fatalf("all-positive line should score 1, got %v", base)
	}
	if got := lineScore("dark grief and cold pain"); got != -1 {
		t.Fatalf("all-negative line should score -1, got %v", got)
	}
	if got := lineScore("half light half dark here now"); got != 0 {
		t.Fatalf("balanced line should score 0, got %v", got)
	}
	if got := lineScore("nothing but shadow remains"); got >= 0 {
		t.Fatalf("negative line with intensifier should stay negative, got %v", got)
	}
}

func TestClassifyAddressModes(t *testing.T) {
	v := VoiceRhetoric{SecondPerson: 5, FirstPerson: 1}
	if got := classifyAddress(v, 0, 0); got != "address" {
		t.Fatalf("expected address, got %q", got)
	}
	v = VoiceRhetoric{ThirdPerson: 4, FirstPerson: 1}
	if got := classifyAddress(v, 3, 0); got != "narrative voice" {
		t.Fatalf("expected narrative voice, got %q", got)
	}
	v = VoiceRhetoric{FirstPerson: 6}
	if got := classifyAddress(v, 0, 0); got != "first-person stance" {
		t.Fatalf("expected first-person stance, got %q", got)
	}
	if got := classifyAddress(VoiceRhetoric{}, 0, 0); got != "observational" {
		t.Fatalf("expected observational default, got %q", got)
	}
}

func TestAnalyzeInsufficientContent(t *testing.T) {
	got := Analyze("one lonely line")
	if !got.InsufficientContent {
		t.Fatalf("single line should be insufficient")
	}
	if len(got.Writers.Observations) != 0 {
		t.Fatalf("insufficient poems carry no commentary, got %+v", got.Writers.Observations)
	}
}

func TestAnalyzeFullPoem(t *testing.T) {
	poem := strings.Join([]string{
		"Morning Walk",
		"",
		"I walked into the day",
		"and waited for the night",
		"to carry me toward day",
		"toward a distant light",
		"",
		"But grief came down like rain,",
		"and I remembered the cold,",
		"the silence and the pain",
		"of every story told.",
	}, "\n")
	got := Analyze(poem)
	if got.InsufficientContent {
		t.Fatalf("expected analyzable poem")
	}
	if got.Formal.LineCount != 8 || got.Formal.StanzaCount != 2 {
		t.Fatalf("expected 8 lines in 2 stanzas, got %d/%d", got.Formal.LineCount, got.Formal.StanzaCount)
	}
	if got.Formal.RhymeSchemes[0] != "ABAB" {
		t.Fatalf("expected ABAB first stanza, got %q", got.Formal.RhymeSchemes[0])
	}
	if got.Voice.VoltaLine != 4 {
		t.Fatalf("expected volta at the But line (index 4), got %d", got.Voice.VoltaLine)
	}
	if got.Voice.FirstPerson < 3 {
		t.Fatalf("expected first-person pronouns counted, got %d", got.Voice.FirstPerson)
	}
	if len(got.Emotion.LineScores) != 8 {
		t.Fatalf("expected a score per line, got %d", len(got.Emotion.LineScores))
	}
	if got.Emotion.StanzaScores[1] >= got.Emotion.StanzaScores[0] {
		t.Fatalf("second stanza should read darker: %v", got.Emotion.StanzaScores)
	}
	if got.Writers.Mode == "" || got.Writers.FormContext == "" {
		t.Fatalf("writers analysis should be populated: %+v", got.Writers)
	}
	if len(got.Writers.Observations) == 0 {
		t.Fatalf("expected craft observations")
	}
}
