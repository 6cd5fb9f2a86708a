package poetry

import (
	"math"
	"sort"
	"strings"
)

var positiveWords = map[string]struct{}{
	"love": {}, "light": {}, "joy": {}, "sweet": {}, "warm": {}, "bright": {},
	"hope": {}, "gold": {}, "golden": {}, "bloom": {}, "laugh": {}, "smile": {},
	"grace": {}, "soft": {}, "gentle": {}, "sing": {}, "song": {}, "dawn": {},
	"spring": {}, "summer": {}, "peace": {}, "home": {}, "beauty": {}, "beautiful": {},
	"free": {}, "alive": {}, "tender": {}, "shine": {}, "delight": {},
}

var negativeWords = map[string]struct{}{
	"dark": {}, "death": {}, "dead": {}, "cold": {}, "grief": {}, "pain": {},
	"fear": {}, "alone": {}, "lost": {}, "gone": {}, "grave": {}, "shadow": {},
	"broken": {}, "weep": {}, "cry": {}, "tears": {}, "ash": {}, "bitter": {},
	"empty": {}, "silence": {}, "winter": {}, "night": {}, "fall": {}, "wound": {},
	"sorrow": {}, "mourn": {}, "rage": {}, "ruin": {}, "hollow": {},
}

var intensifierWords = map[string]struct{}{
	"so": {}, "very": {}, "too": {}, "never": {}, "always": {}, "ever": {},
	"utterly": {}, "wholly": {}, "all": {}, "every": {}, "nothing": {},
}

const (
	exclamationBoost   = 0.15
	intensifierMax     = 0.25
	notableShiftsCount = 3
)

func analyzeEmotion(lines []string, stanzas [][]string, voltaLine int) EmotionalTrajectory {
	traj := EmotionalTrajectory{
		LineScores: make([]float64, 0, len(lines)),
	}
	for _, line := range lines {
		traj.LineScores = append(traj.LineScores, lineScore(line))
	}

	lineAt := 0
	for _, st := range stanzas {
		sum := 0.0
		for range st {
			if lineAt < len(traj.LineScores) {
				sum += traj.LineScores[lineAt]
			}
			lineAt++
		}
		if len(st) > 0 {
			traj.StanzaScores = append(traj.StanzaScores, sum/float64(len(st)))
		}
	}

	traj.PeakLine, traj.TroughLine = argmaxArgmin(traj.LineScores)
	traj.Volatility = meanAbsDelta(traj.LineScores)
	traj.NotableLineShifts = largestShifts(traj.LineScores, voltaLine)
	traj.NotableStanzaShifts = largestShifts(traj.StanzaScores, stanzaOf(stanzas, voltaLine))
	return traj
}

// lineScore is the balance of sentiment hits in [-1,1], amplified for an
// exclamation ending and for intensifier density. Lines with no hits score a
// neutral 0.
func lineScore(line string) float64 {
	words := strings.Fields(strings.ToLower(line))
	pos, neg, intense := 0, 0, 0
	for _, w := range words {
		w = lettersOnly(w)
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
		if _, ok := intensifierWords[w]; ok {
			intense++
		}
	}
	total := pos + neg
	if total == 0 {
		return 0
	}
	score := float64(pos-neg) / float64(total)
	if strings.HasSuffix(strings.TrimSpace(line), "!") {
		score *= 1 + exclamationBoost
	}
	if len(words) > 0 {
		density := float64(intense) / float64(len(words))
		if density > intensifierMax {
			density = intensifierMax
		}
		score *= 1 + density
	}
	return clampUnit(score)
}

func argmaxArgmin(scores []float64) (peak, trough int) {
	if len(scores) == 0 {
		return -1, -1
	}
	for i, s := range scores {
		if s > scores[peak] {
			peak = i
		}
		if s < scores[trough] {
			trough = i
		}
	}
	return peak, trough
}

func meanAbsDelta(scores []float64) float64 {
	if len(scores) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(scores); i++ {
		total += math.Abs(scores[i] - scores[i-1])
	}
	return total / float64(len(scores)-1)
}

// largestShifts returns the indices of the 3 largest score transitions (the
// later index of each pair), always including the volta position when one was
// found and not already listed.
func largestShifts(scores []float64, volta int) []int {
	type shift struct {
		index int
		delta float64
	}
	shifts := make([]shift, 0, len(scores))
	for i := 1; i < len(scores); i++ {
		shifts = append(shifts, shift{index: i, delta: math.Abs(scores[i] - scores[i-1])})
	}
	sort.Slice(shifts, func(i, j int) bool {
		if shifts[i].delta == shifts[j].delta {
			return shifts[i].index < shifts[j].index
		}
		return shifts[i].delta > shifts[j].delta
	})

	out := []int{}
	for i, s := range shifts {
		if i >= notableShiftsCount {
			break
		}
		out = append(out, s.index)
	}
	if volta > 0 && volta < len(scores) {
		present := false
		for _, idx := range out {
			if idx == volta {
				present = true
				break
			}
		}
		if !present {
			out = append(out, volta)
		}
	}
	sort.Ints(out)
	return out
}

func stanzaOf(stanzas [][]string, line int) int {
	if line < 0 {
		return -1
	}
	at := 0
	for i, st := range stanzas {
		if line < at+len(st) {
			return i
		}
		at += len(st)
	}
	return -1
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
