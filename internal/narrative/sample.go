package narrative

import (
	"math"
	"regexp"
	"strings"

	"quillpilot/internal/registry"
)

// maxSampledChapters bounds scanning cost on long documents: beyond this many
// chapters, extraction samples evenly spaced indices instead of every chapter.
const maxSampledChapters = 18

func sampleIndexes(total int) []int {
	if total <= maxSampledChapters {
		out := make([]int, total)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, maxSampledChapters)
	seen := map[int]struct{}{}
	for i := 0; i < maxSampledChapters; i++ {
		idx := int(math.Round(float64(i) * float64(total-1) / float64(maxSampledChapters-1)))
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}

func aliasPattern(c registry.Character) *regexp.Regexp {
	quoted := make([]string, 0, len(c.Aliases))
	for _, a := range c.Aliases {
		quoted = append(quoted, regexp.QuoteMeta(a))
	}
	if len(quoted) == 0 {
		quoted = append(quoted, regexp.QuoteMeta(c.Name))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return strings.TrimSpace(s[:limit])
}

// firstSentence returns the first sentence satisfying both predicates, or ""
func firstSentence(sentences []string, alias *regexp.Regexp, indicator *regexp.Regexp) string {
	for _, s := range sentences {
		if alias != nil && !alias.MatchString(s) {
			continue
		}
		if indicator != nil && !indicator.MatchString(strings.ToLower(s)) {
			continue
		}
		return s
	}
	return ""
}
