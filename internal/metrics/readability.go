package metrics

import (
	"fmt"
	"math"
	"strings"
)

// Tunable scoring constants, kept for behavioral compatibility with the
// original heuristics rather than any principled derivation.
const (
	varietyFullStdev    = 5.0
	manuscriptWordsPage = 250
	screenplayLinesPage = 55
	maxGrade            = 18
)

func Clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// SyllableCount estimates syllables by vowel-group transitions, subtracting a
// trailing silent "e". Never returns less than 1.
func SyllableCount(word string) int {
	w := strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return r < 'a' || r > 'z'
	}))
	if w == "" {
		return 1
	}
	count := 0
	prevVowel := false
	for _, r := range w {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// ReadingLevel renders the Flesch-Kincaid grade estimate, or "--" when there
// is nothing to measure.
func ReadingLevel(words []string, sentenceCount int) string {
	if len(words) == 0 || sentenceCount == 0 {
		return "--"
	}
	syllables := 0
	for _, w := range words {
		syllables += SyllableCount(w)
	}
	grade := 0.39*(float64(len(words))/float64(sentenceCount)) +
		11.8*(float64(syllables)/float64(len(words))) - 15.59
	if grade < 0 {
		grade = 0
	}
	if grade > maxGrade {
		grade = maxGrade
	}
	return fmt.Sprintf("Grade %d", int(math.Round(grade)))
}

// SentenceVariety scores the standard deviation of per-sentence word counts,
// saturating at stdev >= 5. Fewer than two sentences scores zero.
func SentenceVariety(lengths []int) int {
	if len(lengths) < 2 {
		return 0
	}
	sd := Stdev(lengths)
	score := sd / varietyFullStdev * 100
	if score > 100 {
		score = 100
	}
	return int(score)
}

func Stdev(values []int) float64 {
	if len(values) < 2 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += float64(v)
	}
	mean := total / float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// ManuscriptPages estimates pages at 250 words per page.
func ManuscriptPages(wordCount int) int {
	if wordCount <= 0 {
		return 0
	}
	return int(math.Ceil(float64(wordCount) / manuscriptWordsPage))
}

// ScreenplayPages estimates pages at 55 content lines per page.
func ScreenplayPages(text string) int {
	lines := 0
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines++
		}
	}
	if lines == 0 {
		return 0
	}
	return int(math.Ceil(float64(lines) / screenplayLinesPage))
}

// DialoguePercentage is the share of words inside dialogue segments.
func DialoguePercentage(segments []string, totalWords int) int {
	if totalWords == 0 {
		return 0
	}
	inside := 0
	for _, s := range segments {
		inside += len(strings.Fields(s))
	}
	pct := inside * 100 / totalWords
	if pct > 100 {
		pct = 100
	}
	return pct
}
