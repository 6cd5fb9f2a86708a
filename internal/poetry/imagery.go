package poetry

import (
	"sort"
	"strings"
)

var senseLexicons = map[string][]string{
	"visual": {
		"light", "dark", "shadow", "bright", "color", "colour", "glow", "gleam",
		"shimmer", "shine", "pale", "golden", "silver", "grey", "gray", "red",
		"blue", "green", "white", "black", "glitter", "blaze", "flicker",
	},
	"auditory": {
		"sound", "silence", "whisper", "echo", "song", "sing", "hum", "roar",
		"ring", "bell", "cry", "voice", "murmur", "thunder", "rustle", "hush",
	},
	"tactile": {
		"touch", "cold", "warm", "rough", "smooth", "soft", "sharp", "skin",
		"hand", "press", "hold", "silk", "stone", "ice", "burn", "ache",
	},
	"olfactory": {
		"smell", "scent", "perfume", "smoke", "aroma", "musk", "stench", "sweetness",
		"incense", "fragrance",
	},
	"gustatory": {
		"taste", "sweet", "bitter", "sour", "salt", "honey", "wine", "bread",
		"fruit", "tongue",
	},
	"kinesthetic": {
		"run", "fall", "rise", "turn", "dance", "leap", "drift", "float",
		"climb", "sink", "reach", "spin", "tremble", "sway", "stumble",
	},
}

func analyzeImagery(lines []string) ImagerySensory {
	counts := map[string]int{}
	for sense := range senseLexicons {
		counts[sense] = 0
	}
	for _, line := range lines {
		for _, w := range strings.Fields(strings.ToLower(line)) {
			w = lettersOnly(w)
			for sense, lexicon := range senseLexicons {
				for _, entry := range lexicon {
					if w == entry {
						counts[sense]++
						break
					}
				}
			}
		}
	}

	type tally struct {
		sense string
		count int
	}
	ranked := make([]tally, 0, len(counts))
	for sense, n := range counts {
		if n > 0 {
			ranked = append(ranked, tally{sense: sense, count: n})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count == ranked[j].count {
			return ranked[i].sense < ranked[j].sense
		}
		return ranked[i].count > ranked[j].count
	})

	dominant := []string{}
	for i, t := range ranked {
		if i >= 2 {
			break
		}
		dominant = append(dominant, t.sense)
	}
	return ImagerySensory{Counts: counts, Dominant: dominant}
}
