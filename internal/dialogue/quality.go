package dialogue

import (
	"regexp"
	"strings"

	"quillpilot/internal/metrics"
)

// Report carries the dialogue scores. Quality is scored in steps of 10 across
// ten equally weighted checks; Pacing and Repetition are 0-100.
type Report struct {
	Quality     int  `json:"quality"`
	Pacing      int  `json:"pacing"`
	Repetition  int  `json:"repetition"`
	HasConflict bool `json:"hasConflict"`
}

// Tunable thresholds kept verbatim from the original heuristics.
const (
	depthMinAvgChars   = 50
	repetitionMaxRatio = 0.30
	fillerMaxRatio     = 0.20
	minDistinctTags    = 6
	maxPredictableHits = 3
	expositionMaxRatio = 0.20
	conflictMinRatio   = 0.20
	pacingFullStdev    = 30.0
	pacingMinScore     = 60
)

var fillerWords = map[string]struct{}{
	"uh": {}, "um": {}, "well": {}, "like": {}, "so": {}, "anyway": {},
	"actually": {}, "basically": {}, "literally": {}, "right": {},
}

var tagVerbPattern = regexp.MustCompile(
	`\b(said|asked|replied|whispered|shouted|murmured|called|told|answered|cried|snapped|muttered|exclaimed|growled)\b`)

var predictablePhrases = []string{
	"we need to talk",
	"it's not what it looks like",
	"i can explain",
	"you don't understand",
	"we've got company",
	"is that a threat",
	"i was born ready",
	"don't you die on me",
	"you just don't get it",
	"this isn't over",
}

var conflictWords = map[string]struct{}{
	"no": {}, "never": {}, "stop": {}, "liar": {}, "hate": {}, "wrong": {},
	"leave": {}, "enough": {}, "why": {}, "fault": {}, "blame": {}, "angry": {},
	"fight": {}, "can't": {}, "won't": {}, "don't": {},
}

var wordOnlyPattern = regexp.MustCompile(`[a-z']+`)

// Score evaluates all extracted dialogue segments against the whole text. With
// no segments every metric stays zero.
func Score(segments []Segment, fullText string) Report {
	if len(segments) == 0 {
		return Report{}
	}
	texts := Texts(segments)

	var report Report
	report.Pacing = pacingScore(texts)
	ratio := repetitionRatio(texts)
	report.Repetition = metrics.Clamp100(100 - int(ratio*100))
	report.HasConflict = conflictRatio(texts) > conflictMinRatio

	points := 0
	if averageLength(texts) > depthMinAvgChars {
		points++
	}
	if ratio < repetitionMaxRatio {
		points++
	}
	if fillerRatio(texts) < fillerMaxRatio {
		points++
	}
	if distinctTagVerbs(fullText) >= minDistinctTags {
		points++
	}
	if predictableHits(texts) < maxPredictableHits {
		points++
	}
	if vocabularyGrows(texts) {
		points++
	}
	if expositionRatio(texts) < expositionMaxRatio {
		points++
	}
	if report.HasConflict {
		points++
	}
	if punctuationRange(texts) >= 2 {
		points++
	}
	if report.Pacing > pacingMinScore {
		points++
	}
	report.Quality = points * 10
	return report
}

func averageLength(texts []string) int {
	total := 0
	for _, t := range texts {
		total += len(t)
	}
	return total / len(texts)
}

// repetitionRatio is the share of normalized segment phrases repeated more
// than twice, against the segment count.
func repetitionRatio(texts []string) float64 {
	counts := map[string]int{}
	for _, t := range texts {
		counts[normalizePhrase(t)]++
	}
	repeated := 0
	for _, n := range counts {
		if n > 2 {
			repeated += n
		}
	}
	return float64(repeated) / float64(len(texts))
}

func fillerRatio(texts []string) float64 {
	total := 0
	filler := 0
	for _, t := range texts {
		for _, w := range wordOnlyPattern.FindAllString(strings.ToLower(t), -1) {
			total++
			if _, ok := fillerWords[w]; ok {
				filler++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(filler) / float64(total)
}

func distinctTagVerbs(fullText string) int {
	seen := map[string]struct{}{}
	for _, v := range tagVerbPattern.FindAllString(strings.ToLower(fullText), -1) {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func predictableHits(texts []string) int {
	hits := 0
	for _, t := range texts {
		lower := strings.ToLower(t)
		for _, p := range predictablePhrases {
			if strings.Contains(lower, p) {
				hits++
			}
		}
	}
	return hits
}

// vocabularyGrows compares distinct-word counts between the first and second
// half of the segments; checked only when there are more than ten segments.
func vocabularyGrows(texts []string) bool {
	if len(texts) <= 10 {
		return true
	}
	half := len(texts) / 2
	return distinctWords(texts[half:]) > distinctWords(texts[:half])
}

func distinctWords(texts []string) int {
	seen := map[string]struct{}{}
	for _, t := range texts {
		for _, w := range wordOnlyPattern.FindAllString(strings.ToLower(t), -1) {
			seen[w] = struct{}{}
		}
	}
	return len(seen)
}

func expositionRatio(texts []string) float64 {
	exposition := 0
	for _, t := range texts {
		if len(t) > 100 && !strings.ContainsAny(t, "?!") {
			exposition++
		}
	}
	return float64(exposition) / float64(len(texts))
}

func conflictRatio(texts []string) float64 {
	hits := 0
	for _, t := range texts {
		for _, w := range wordOnlyPattern.FindAllString(strings.ToLower(t), -1) {
			if _, ok := conflictWords[w]; ok {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(texts))
}

func punctuationRange(texts []string) int {
	joined := strings.Join(texts, " ")
	kinds := 0
	if strings.Contains(joined, "!") {
		kinds++
	}
	if strings.Contains(joined, "?") {
		kinds++
	}
	if strings.Contains(joined, "...") || strings.Contains(joined, "…") {
		kinds++
	}
	return kinds
}

func pacingScore(texts []string) int {
	if len(texts) < 2 {
		return 0
	}
	lengths := make([]int, 0, len(texts))
	for _, t := range texts {
		lengths = append(lengths, len(t))
	}
	score := metrics.Stdev(lengths) / pacingFullStdev * 100
	if score > 100 {
		score = 100
	}
	return int(score)
}

func normalizePhrase(s string) string {
	return strings.Join(wordOnlyPattern.FindAllString(strings.ToLower(s), -1), " ")
}
