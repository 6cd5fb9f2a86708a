package poetry

import (
	"fmt"
	"strings"
)

// Signals is the derived-metric bundle the commentary rules read. Keeping it
// separate lets the rules be tested without re-deriving upstream metrics.
type Signals struct {
	EnjambmentRate     float64
	CaesuraRate        float64
	LineLengthVariance float64
	AnaphoraCount      int
	RhymeSchemes       []string
	StanzaLineCounts   []int
	FirstPerson        int
	SecondPerson       int
	ThirdPerson        int
	PeakLine           int
	TroughLine         int
	NotableShifts      int
	OpeningEndingEcho  bool
	EndsClosed         bool
	Mode               string
}

const (
	formStanzaicNarrative = "stanzaic-narrative"
	formStanzaicLyric     = "stanzaic-lyric"
	formOpen              = "open-form"
	formMixed             = "mixed"
)

// FormContext infers a coarse form from stanza-size regularity and quatrain
// rhyme shape, so metric-driven claims can be softened where the form already
// explains them.
func FormContext(s Signals) string {
	regular := stanzaRegular(s.StanzaLineCounts)
	balladRhyme := false
	for i, scheme := range s.RhymeSchemes {
		if i >= len(s.StanzaLineCounts) || s.StanzaLineCounts[i] != 4 {
			continue
		}
		if scheme == "ABAB" || scheme == "ABCB" {
			balladRhyme = true
			break
		}
	}
	switch {
	case regular && balladRhyme:
		return formStanzaicNarrative
	case regular && len(s.StanzaLineCounts) > 1:
		return formStanzaicLyric
	case len(s.StanzaLineCounts) <= 1 || allUnrhymed(s.RhymeSchemes):
		return formOpen
	default:
		return formMixed
	}
}

// Commentary turns the signal bundle into short observations across seven
// buckets: pressure points, line energy, image logic, voice management,
// emotional arc, compression, ending strategy.
func Commentary(s Signals) []Observation {
	form := FormContext(s)
	stanzaic := form == formStanzaicNarrative || form == formStanzaicLyric
	out := make([]Observation, 0, 10)
	add := func(bucket, text string) {
		out = append(out, Observation{Bucket: bucket, Text: text})
	}

	// Pressure points: where syntax pushes against the line.
	switch {
	case s.EnjambmentRate > 0.6:
		add("pressure points", fmt.Sprintf("Syntax runs past the line break in %.0f%% of lines; the poem leans on enjambment to keep pressure on the reader.", s.EnjambmentRate*100))
	case s.EnjambmentRate < 0.2 && stanzaic:
		add("pressure points", "Lines are strongly end-stopped, which suits the stanzaic form: closure at the line is expected here, not a flatness.")
	case s.EnjambmentRate < 0.2:
		add("pressure points", "Most lines close with punctuation; the poem rarely lets a sentence strain across a break.")
	}
	if s.CaesuraRate > 0.35 {
		add("pressure points", "Frequent mid-line pauses split many lines in two, a second rhythm working inside the line.")
	}

	// Line energy: length variance and anaphora.
	if s.LineLengthVariance > 20 {
		add("line energy", "Line lengths swing widely, using expansion and contraction as a pacing device.")
	} else if stanzaic {
		add("line energy", "Line lengths stay close to a norm, consistent with the measured stanza shape.")
	} else {
		add("line energy", "Line lengths are even throughout; energy comes from content rather than silhouette.")
	}
	if s.AnaphoraCount > 0 {
		add("line energy", "Repeated line openings build an incantatory drive through anaphora.")
	}

	// Image logic.
	add("image logic", "Images are tracked by sense category; the dominant senses carry the poem's concrete texture.")

	// Voice management.
	switch {
	case s.SecondPerson > s.FirstPerson && s.SecondPerson > s.ThirdPerson:
		add("voice management", "The poem is pitched as direct address; the second person keeps a listener in the room.")
	case s.FirstPerson > s.ThirdPerson:
		add("voice management", "A first-person stance holds the center; what wavers is interior, not observed.")
	default:
		add("voice management", "The speaker stays largely out of frame, reporting rather than confessing.")
	}

	// Emotional arc.
	if s.NotableShifts > 0 {
		add("emotional arc", fmt.Sprintf("The affect curve turns sharply %d time(s); peak at line %d, trough at line %d.", s.NotableShifts, s.PeakLine+1, s.TroughLine+1))
	} else {
		add("emotional arc", "The emotional register holds steady; no single transition dominates the curve.")
	}

	// Compression choices.
	if s.EnjambmentRate > 0.4 && s.CaesuraRate < 0.15 {
		add("compression", "Sentences are stretched thin across lines rather than packed within them.")
	} else {
		add("compression", "Meaning is packed line by line; each unit tends to complete its own thought.")
	}

	// Ending strategy.
	switch {
	case s.OpeningEndingEcho && s.EndsClosed:
		add("ending strategy", "The ending circles back to the opening's vocabulary and closes with final punctuation: a deliberate ring structure.")
	case s.OpeningEndingEcho:
		add("ending strategy", "The closing lines echo the opening's key words while refusing full punctuation, an open-ended return.")
	case s.EndsClosed:
		add("ending strategy", "The poem ends on a firmly closed line.")
	default:
		add("ending strategy", "The final line trails without closing punctuation, leaving the poem ajar.")
	}

	return out
}

func stanzaRegular(counts []int) bool {
	if len(counts) < 2 {
		return false
	}
	min, max := counts[0], counts[0]
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return max-min <= 1
}

func allUnrhymed(schemes []string) bool {
	for _, scheme := range schemes {
		seen := map[rune]int{}
		for _, r := range scheme {
			if r == '-' {
				continue
			}
			seen[r]++
			if seen[r] > 1 {
				return false
			}
		}
	}
	return true
}

// openingEndingEcho checks content-word overlap between the first and last
// two lines.
func openingEndingEcho(lines []string) bool {
	if len(lines) < 4 {
		return false
	}
	opening := contentWordSet(lines[:2])
	for w := range contentWordSet(lines[len(lines)-2:]) {
		if _, ok := opening[w]; ok {
			return true
		}
	}
	return false
}

func contentWordSet(lines []string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, line := range lines {
		for _, w := range strings.Fields(strings.ToLower(line)) {
			w = lettersOnly(w)
			if len(w) <= 2 {
				continue
			}
			if _, stop := stopwords[w]; stop {
				continue
			}
			out[w] = struct{}{}
		}
	}
	return out
}
