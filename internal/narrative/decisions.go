package narrative

import (
	"regexp"

	"quillpilot/internal/registry"
	"quillpilot/internal/segment"
)

const maxChainEntries = 6

var decisionIndicator = regexp.MustCompile(
	`\b(decide[ds]?|chose|chooses?|agree[ds]?|refuse[ds]?|resolve[ds]?|commit(s|ted)?|determined|opted|vow(s|ed)?|swore|promise[ds]?)\b`)

var outcomeIndicator = regexp.MustCompile(
	`\b(result(s|ed)?|consequence[s]?|led to|caused|immediately|outcome|response|reaction|at once|suddenly)\b`)

var effectIndicator = regexp.MustCompile(
	`\b(changed|shaped|learned|transformed|became|grew|from then on|never again|forever|haunted|carried)\b`)

const (
	fallbackDecision = "No explicit decision keyword found for this character."
	fallbackOutcome  = "No explicit immediate outcome stated."
	fallbackEffect   = "No explicit long-term effect stated."
)

// ExtractDecisionChains mirrors the belief-shift sampling and two-tier
// fallback discipline. Every validated character gets a chain; with no
// decision keywords anywhere, the chain holds exactly one placeholder entry.
func ExtractDecisionChains(chapters []segment.Chapter, characters []registry.Character) []DecisionConsequenceChain {
	out := make([]DecisionConsequenceChain, 0, len(characters))
	for _, c := range characters {
		alias := aliasPattern(c)
		chain := DecisionConsequenceChain{Character: c.Name, Entries: []ChainEntry{}}

		for _, idx := range sampleIndexes(len(chapters)) {
			if len(chain.Entries) >= maxChainEntries {
				break
			}
			ch := chapters[idx]
			if !alias.MatchString(ch.Text) {
				continue
			}
			sentences := segment.SplitSentences(ch.Text)

			decision := firstSentence(sentences, alias, decisionIndicator)
			if decision == "" {
				continue
			}
			chain.Entries = append(chain.Entries, ChainEntry{
				Chapter:          ch.Index,
				Decision:         truncate(decision, beliefSentenceCap),
				ImmediateOutcome: twoTier(sentences, alias, outcomeIndicator, fallbackOutcome),
				LongTermEffect:   twoTier(sentences, alias, effectIndicator, fallbackEffect),
			})
		}

		if len(chain.Entries) == 0 {
			chapter := 1
			for _, ch := range chapters {
				if alias.MatchString(ch.Text) {
					chapter = ch.Index
					break
				}
			}
			chain.Entries = append(chain.Entries, ChainEntry{
				Chapter:          chapter,
				Decision:         fallbackDecision,
				ImmediateOutcome: fallbackOutcome,
				LongTermEffect:   fallbackEffect,
			})
		}
		out = append(out, chain)
	}
	return out
}
