package registry

import (
	"regexp"
	"strings"
)

// Free-text candidate extraction. This is a fallback for the no-registry
// branch only; registry-backed analytics never consult it.

const minCandidateMentions = 3

var properNamePattern = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)

const speechVerbAlternation = `(said|asked|replied|whispered|shouted|murmured|called|told|answered|cried|snapped)`

var weakNameStopwords = map[string]struct{}{
	"what": {}, "maybe": {}, "not": {}, "well": {}, "yes": {}, "the": {},
	"however": {}, "anyway": {}, "therefore": {}, "meanwhile": {}, "then": {},
	"also": {}, "still": {}, "chapter": {}, "when": {}, "after": {}, "before": {},
	"suddenly": {}, "perhaps": {}, "monday": {}, "tuesday": {}, "wednesday": {},
	"thursday": {}, "friday": {}, "saturday": {}, "sunday": {},
}

// ExtractCandidates scans for capitalized words that behave like character
// names: mentioned repeatedly, or backed by possessive, title, or speech-verb
// evidence.
func ExtractCandidates(text string) []string {
	counts := map[string]int{}
	order := make([]string, 0, 32)
	for _, n := range properNamePattern.FindAllString(text, -1) {
		if _, weak := weakNameStopwords[strings.ToLower(n)]; weak {
			continue
		}
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}

	out := make([]string, 0, len(order))
	for _, n := range order {
		if counts[n] >= minCandidateMentions || hasStrongNameEvidence(n, text) {
			out = append(out, n)
		}
	}
	return out
}

func hasStrongNameEvidence(name, text string) bool {
	// Possessive and vocative usage are strong indicators of a real name.
	if strings.Contains(text, name+"'s") || strings.Contains(text, name+"’s") {
		return true
	}

	quoted := regexp.QuoteMeta(name)
	if regexp.MustCompile(`(?i)\b(mr|mrs|ms|dr|prof)\.?\s+` + quoted + `\b`).MatchString(text) {
		return true
	}
	if regexp.MustCompile(`\b` + quoted + `\b\s+` + speechVerbAlternation + `\b`).MatchString(text) {
		return true
	}
	return regexp.MustCompile(`(?i)\b` + speechVerbAlternation + `\s+` + quoted + `\b`).MatchString(text)
}
