package narrative

import (
	"regexp"
	"strings"

	"quillpilot/internal/registry"
	"quillpilot/internal/segment"
)

var introspectiveVerb = regexp.MustCompile(
	`\b(thought|felt|wondered|remembered|realized|realised|knew|believed|feared|hoped|wished|imagined|doubted)\b`)

var actionVerb = regexp.MustCompile(
	`\b(ran|walked|grabbed|opened|closed|struck|moved|took|threw|pulled|pushed|turned|stood|left|arrived|climbed|jumped|drove|fought|reached|slammed)\b`)

// BuildAlignment contrasts each character's introspective sentences with
// outward action sentences. Alignment is the external share in [0,1]; with no
// hits either way it stays 0.5 (nothing to tilt the balance).
func BuildAlignment(chapters []segment.Chapter, characters []registry.Character) []AlignmentEntry {
	out := make([]AlignmentEntry, 0, len(characters))
	for _, c := range characters {
		alias := aliasPattern(c)
		entry := AlignmentEntry{Character: c.Name}
		for _, ch := range chapters {
			if !alias.MatchString(ch.Text) {
				continue
			}
			for _, s := range segment.SplitSentences(ch.Text) {
				if !alias.MatchString(s) {
					continue
				}
				lower := strings.ToLower(s)
				if introspectiveVerb.MatchString(lower) {
					entry.Internal++
				}
				if actionVerb.MatchString(lower) {
					entry.External++
				}
			}
		}
		total := entry.Internal + entry.External
		if total == 0 {
			entry.Alignment = 0.5
		} else {
			entry.Alignment = float64(entry.External) / float64(total)
		}
		out = append(out, entry)
	}
	return out
}

// BuildDecisionBeliefLoops joins belief and decision entries that share a
// character and chapter.
func BuildDecisionBeliefLoops(beliefs []BeliefShiftMatrix, chains []DecisionConsequenceChain) []DecisionBeliefLoop {
	decisionsByKey := map[string]map[int]string{}
	for _, chain := range chains {
		byChapter := map[int]string{}
		for _, e := range chain.Entries {
			if e.Decision == fallbackDecision {
				continue
			}
			if _, ok := byChapter[e.Chapter]; !ok {
				byChapter[e.Chapter] = e.Decision
			}
		}
		decisionsByKey[chain.Character] = byChapter
	}

	out := []DecisionBeliefLoop{}
	for _, matrix := range beliefs {
		byChapter := decisionsByKey[matrix.Character]
		for _, e := range matrix.Entries {
			decision, ok := byChapter[e.Chapter]
			if !ok {
				continue
			}
			out = append(out, DecisionBeliefLoop{
				Character: matrix.Character,
				Chapter:   e.Chapter,
				Belief:    e.CoreBelief,
				Decision:  decision,
			})
		}
	}
	return out
}
