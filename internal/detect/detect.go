package detect

import (
	"regexp"
	"strings"
)

const maxExamples = 10

// Result is one detector's output: the full match count and a bounded,
// case-insensitively deduplicated sample of matched phrases.
type Result struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

var passivePattern = regexp.MustCompile(
	`(?i)\b(am|is|are|was|were|be|been|being)\s+([a-z]+ed|` + strings.Join(irregularParticiples, "|") + `)\b`)

var sensoryPattern = regexp.MustCompile(`(?i)\b(` + strings.Join([]string{
	// visual
	"glimmer", "glisten", "gleam", "shimmer", "sparkl", "glow", "flash", "shadow", "bright", "dim",
	// auditory
	"whisper", "echo", "rustl", "hum", "roar", "creak", "murmur", "thud", "clang", "rattle",
	// tactile
	"rough", "smooth", "silky", "gritty", "velvet", "prickl", "slick", "coarse", "warm", "icy",
	// olfactory
	"scent", "aroma", "stench", "fragran", "musty", "perfume", "reek", "whiff",
	// gustatory
	"sweet", "bitter", "sour", "salty", "savory", "tangy", "tart",
}, "|") + `)[a-z]*\b`)

func PassiveVoice(text string) Result {
	return collectMatches(passivePattern.FindAllString(text, -1))
}

func Adverbs(tokens []string) Result {
	var res Result
	seen := map[string]struct{}{}
	for _, tok := range tokens {
		w := cleanWord(tok)
		if len(w) <= 2 || !strings.HasSuffix(w, "ly") {
			continue
		}
		if _, skip := adverbExceptions[w]; skip {
			continue
		}
		res.Count++
		addExample(&res, seen, w)
	}
	return res
}

func WeakVerbs(tokens []string) Result {
	return membership(tokens, weakVerbs)
}

func FilterWords(tokens []string) Result {
	return membership(tokens, filterWords)
}

// Cliches runs a case-insensitive substring scan so matches can cross token
// boundaries and punctuation.
func Cliches(text string) Result {
	lower := strings.ToLower(text)
	var res Result
	seen := map[string]struct{}{}
	for _, phrase := range clichePhrases {
		n := strings.Count(lower, phrase)
		if n == 0 {
			continue
		}
		res.Count += n
		addExample(&res, seen, phrase)
	}
	return res
}

// SensoryWords counts regex matches rather than token membership so stem
// variants (glimmering, scented) still count.
func SensoryWords(text string) Result {
	return collectMatches(sensoryPattern.FindAllString(text, -1))
}

func membership(tokens []string, set map[string]struct{}) Result {
	var res Result
	seen := map[string]struct{}{}
	for _, tok := range tokens {
		w := cleanWord(tok)
		if _, ok := set[w]; !ok {
			continue
		}
		res.Count++
		addExample(&res, seen, w)
	}
	return res
}

func collectMatches(matches []string) Result {
	res := Result{Count: len(matches)}
	seen := map[string]struct{}{}
	for _, m := range matches {
		addExample(&res, seen, strings.ToLower(m))
	}
	return res
}

func addExample(res *Result, seen map[string]struct{}, phrase string) {
	if len(res.Examples) >= maxExamples {
		return
	}
	key := strings.ToLower(phrase)
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = struct{}{}
	res.Examples = append(res.Examples, phrase)
}

func cleanWord(tok string) string {
	return strings.Trim(strings.ToLower(tok), `.,;:!?"'()[]{}*_-—“”‘’…`)
}
