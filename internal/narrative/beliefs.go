package narrative

import (
	"regexp"

	"quillpilot/internal/registry"
	"quillpilot/internal/segment"
)

const (
	maxBeliefEntries  = 8
	beliefSentenceCap = 120
)

var beliefIndicator = regexp.MustCompile(
	`\b(believe[ds]?|think[s]?|thought|realize[ds]?|realised?|know[s]?|knew|trust(s|ed)?|value[ds]?|convinced|certain|sure|faith|understood)\b`)

var evidenceIndicator = regexp.MustCompile(
	`\b(because|since|shows?|showed|demonstrate[ds]?|proved?|proof|chose|evidence|witnessed|confirmed)\b`)

var counterpressureIndicator = regexp.MustCompile(
	`\b(but|however|yet|although|though|despite|challenged|questioned|doubt(s|ed)?|against|torn|conflict(ed)?|pressure[ds]?)\b`)

const (
	fallbackEvidence        = "No explicit supporting evidence stated in this chapter."
	fallbackCounterpressure = "No explicit counterpressure stated in this chapter."
)

// ExtractBeliefShifts builds one matrix per validated character. Every
// character always gets a matrix; one that appears in no sampled chapter gets
// a single best-effort entry from its first chapter of appearance anywhere in
// the document, or an empty entry list if it never appears at all.
func ExtractBeliefShifts(chapters []segment.Chapter, characters []registry.Character) []BeliefShiftMatrix {
	out := make([]BeliefShiftMatrix, 0, len(characters))
	for _, c := range characters {
		alias := aliasPattern(c)
		matrix := BeliefShiftMatrix{Character: c.Name, Entries: []BeliefEntry{}}

		for _, idx := range sampleIndexes(len(chapters)) {
			if len(matrix.Entries) >= maxBeliefEntries {
				break
			}
			ch := chapters[idx]
			if !alias.MatchString(ch.Text) {
				continue
			}
			sentences := segment.SplitSentences(ch.Text)

			belief := firstSentence(sentences, alias, beliefIndicator)
			if belief == "" {
				belief = firstSentence(sentences, alias, nil)
			}
			if belief == "" {
				continue
			}
			matrix.Entries = append(matrix.Entries, BeliefEntry{
				Chapter:         ch.Index,
				CoreBelief:      truncate(belief, beliefSentenceCap),
				Evidence:        twoTier(sentences, alias, evidenceIndicator, fallbackEvidence),
				Counterpressure: twoTier(sentences, alias, counterpressureIndicator, fallbackCounterpressure),
			})
		}

		if len(matrix.Entries) == 0 {
			for _, ch := range chapters {
				if !alias.MatchString(ch.Text) {
					continue
				}
				sentences := segment.SplitSentences(ch.Text)
				matrix.Entries = append(matrix.Entries, BeliefEntry{
					Chapter:         ch.Index,
					CoreBelief:      truncate(firstSentence(sentences, alias, nil), beliefSentenceCap),
					Evidence:        fallbackEvidence,
					Counterpressure: fallbackCounterpressure,
				})
				break
			}
		}
		out = append(out, matrix)
	}
	return out
}

// twoTier prefers an alias+indicator sentence, falls back to any indicator
// sentence, then to the placeholder.
func twoTier(sentences []string, alias, indicator *regexp.Regexp, placeholder string) string {
	if s := firstSentence(sentences, alias, indicator); s != "" {
		return truncate(s, beliefSentenceCap)
	}
	if s := firstSentence(sentences, nil, indicator); s != "" {
		return truncate(s, beliefSentenceCap)
	}
	return placeholder
}
