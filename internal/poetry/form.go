package poetry

import (
	"sort"
	"strings"
)

const rhymeKeyLength = 3
const maxListedPhrases = 10

var closingPunctuation = `.,;:!?"')` + "`" + `—–’”`

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "but": {}, "for": {}, "nor": {}, "yet": {}, "with": {},
	"that": {}, "this": {}, "those": {}, "these": {}, "its": {}, "his": {},
	"her": {}, "their": {}, "our": {}, "your": {}, "was": {}, "were": {},
	"are": {}, "has": {}, "had": {}, "have": {}, "not": {}, "all": {},
	"from": {}, "into": {}, "out": {}, "over": {}, "under": {}, "when": {},
	"then": {}, "than": {}, "what": {}, "who": {}, "how": {}, "where": {},
	"there": {}, "here": {}, "she": {}, "him": {}, "they": {}, "them": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "upon": {}, "like": {},
}

func analyzeForm(lines []string, stanzas [][]string) FormalTechnical {
	ft := FormalTechnical{
		LineCount:    len(lines),
		StanzaCount:  len(stanzas),
		RhymeSchemes: make([]string, 0, len(stanzas)),
	}
	for _, st := range stanzas {
		ft.RhymeSchemes = append(ft.RhymeSchemes, rhymeScheme(st))
	}

	enjambed := 0
	caesurae := 0
	for _, line := range lines {
		if isEnjambed(line) {
			enjambed++
		}
		if hasCaesura(line) {
			caesurae++
		}
	}
	if len(lines) > 0 {
		ft.EnjambmentRate = float64(enjambed) / float64(len(lines))
		ft.CaesuraRate = float64(caesurae) / float64(len(lines))
	}

	ft.Repetitions = contentWordRepetitions(lines)
	ft.Anaphora = anaphoraPhrases(lines)
	ft.Alliteration = alliterationRuns(lines)
	return ft
}

// rhymeScheme assigns scheme letters by comparing each line's rhyme key: the
// last 3 letters of its cleaned final word (the whole word when shorter).
// Lines with no usable end-word get "-".
func rhymeScheme(stanza []string) string {
	var scheme strings.Builder
	keyLetters := map[string]byte{}
	next := byte('A')
	for _, line := range stanza {
		key := rhymeKey(line)
		if key == "" {
			scheme.WriteByte('-')
			continue
		}
		letter, ok := keyLetters[key]
		if !ok {
			if next > 'Z' {
				scheme.WriteByte('-')
				continue
			}
			letter = next
			keyLetters[key] = letter
			next++
		}
		scheme.WriteByte(letter)
	}
	return scheme.String()
}

func rhymeKey(line string) string {
	words := strings.Fields(line)
	for i := len(words) - 1; i >= 0; i-- {
		w := lettersOnly(words[i])
		if w == "" {
			continue
		}
		if len(w) > rhymeKeyLength {
			return w[len(w)-rhymeKeyLength:]
		}
		return w
	}
	return ""
}

func isEnjambed(line string) bool {
	trim := strings.TrimSpace(line)
	if trim == "" {
		return false
	}
	return !strings.ContainsRune(closingPunctuation, lastRune(trim))
}

// hasCaesura looks for a mid-line pause mark in the first half with
// meaningful content still to come.
func hasCaesura(line string) bool {
	trim := strings.TrimSpace(line)
	half := len(trim) / 2
	for i, r := range trim {
		if i >= half {
			break
		}
		if r != ',' && r != ';' && r != ':' && r != '—' && r != '–' {
			continue
		}
		rest := strings.TrimSpace(trim[i+len(string(r)):])
		if len(strings.Fields(rest)) >= 2 {
			return true
		}
	}
	return false
}

func contentWordRepetitions(lines []string) []PhraseCount {
	counts := map[string]int{}
	for _, line := range lines {
		for _, w := range strings.Fields(strings.ToLower(line)) {
			w = lettersOnly(w)
			if len(w) <= 2 {
				continue
			}
			if _, stop := stopwords[w]; stop {
				continue
			}
			counts[w]++
		}
	}
	return rankedPhrases(counts)
}

func anaphoraPhrases(lines []string) []PhraseCount {
	counts := map[string]int{}
	for _, line := range lines {
		words := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
		if len(words) == 0 {
			continue
		}
		counts[lettersOnly(words[0])]++
		if len(words) > 1 {
			counts[lettersOnly(words[0])+" "+lettersOnly(words[1])]++
		}
	}
	delete(counts, "")
	return rankedPhrases(counts)
}

func rankedPhrases(counts map[string]int) []PhraseCount {
	out := make([]PhraseCount, 0, len(counts))
	for phrase, n := range counts {
		if n >= 2 {
			out = append(out, PhraseCount{Phrase: phrase, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Phrase < out[j].Phrase
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > maxListedPhrases {
		out = out[:maxListedPhrases]
	}
	return out
}

// alliterationRuns reports, per line, the longest run of consecutive words
// sharing an initial letter, for runs of at least two.
func alliterationRuns(lines []string) []string {
	out := []string{}
	for _, line := range lines {
		words := strings.Fields(strings.ToLower(line))
		bestStart, bestLen := 0, 0
		runStart := 0
		for i := 1; i <= len(words); i++ {
			if i < len(words) && initialLetter(words[i]) != 0 &&
				initialLetter(words[i]) == initialLetter(words[runStart]) {
				continue
			}
			if i-runStart > bestLen && initialLetter(words[runStart]) != 0 {
				bestStart, bestLen = runStart, i-runStart
			}
			runStart = i
		}
		if bestLen >= 2 {
			out = append(out, strings.Join(words[bestStart:bestStart+bestLen], " "))
		}
		if len(out) >= maxListedPhrases {
			break
		}
	}
	return out
}

func initialLetter(w string) byte {
	w = lettersOnly(w)
	if w == "" {
		return 0
	}
	return w[0]
}

func lettersOnly(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
