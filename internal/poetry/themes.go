package poetry

import "strings"

func analyzeThemes(lines []string) ThemeMotif {
	words := map[string]int{}
	bigrams := map[string]int{}
	var prev string
	for _, line := range lines {
		prev = ""
		for _, raw := range strings.Fields(strings.ToLower(line)) {
			w := lettersOnly(raw)
			if len(w) <= 2 {
				prev = ""
				continue
			}
			if _, stop := stopwords[w]; stop {
				prev = ""
				continue
			}
			words[w]++
			if prev != "" {
				bigrams[prev+" "+w]++
			}
			prev = w
		}
	}
	return ThemeMotif{Words: rankedPhrases(words), Bigrams: rankedPhrases(bigrams)}
}

func analyzeMacro(stanzas [][]string) MacroStructure {
	counts := make([]int, 0, len(stanzas))
	for _, st := range stanzas {
		counts = append(counts, len(st))
	}
	return MacroStructure{StanzaLineCounts: counts}
}
