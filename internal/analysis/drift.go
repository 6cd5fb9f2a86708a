package analysis

import (
	"strings"

	"quillpilot/internal/segment"
)

// Sliding-window sizes for the language-drift pass.
const (
	driftWindowTokens  = 1500
	driftOverlapTokens = 200
)

// buildDrift measures vocabulary richness and sentence length over
// overlapping word windows, so a reader can see where the prose flattens.
func buildDrift(text string) []DriftWindow {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	step := driftWindowTokens - driftOverlapTokens
	out := make([]DriftWindow, 0, len(tokens)/step+1)
	for start := 0; start < len(tokens); start += step {
		end := start + driftWindowTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		window := strings.Join(tokens[start:end], " ")
		out = append(out, DriftWindow{
			Index:             len(out),
			StartWord:         start,
			EndWord:           end,
			TypeTokenRatio:    typeTokenRatio(tokens[start:end]),
			AvgSentenceLength: avgSentenceLength(window),
		})
		if end == len(tokens) {
			break
		}
	}
	return out
}

func typeTokenRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	seen := map[string]struct{}{}
	for _, t := range tokens {
		seen[strings.ToLower(strings.Trim(t, `.,;:!?"'()`))] = struct{}{}
	}
	return float64(len(seen)) / float64(len(tokens))
}

func avgSentenceLength(text string) float64 {
	lengths := segment.SentenceLengths(text)
	if len(lengths) == 0 {
		return 0
	}
	total := 0
	for _, l := range lengths {
		total += l
	}
	return float64(total) / float64(len(lengths))
}
