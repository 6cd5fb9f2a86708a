package narrative

import (
	"regexp"
	"sort"

	"quillpilot/internal/registry"
	"quillpilot/internal/segment"
)

// Thresholds for the significant-character read-side filter.
const (
	presenceThreshold    = 3
	interactionThreshold = 2
	minSignificant       = 5
	maxSignificant       = 15
)

// BuildPresence counts alias mentions per chapter for every validated
// character.
func BuildPresence(chapters []segment.Chapter, characters []registry.Character) []CharacterPresence {
	out := make([]CharacterPresence, 0, len(characters))
	for _, c := range characters {
		alias := aliasPattern(c)
		p := CharacterPresence{Character: c.Name, Chapters: []ChapterCount{}}
		for _, ch := range chapters {
			n := len(alias.FindAllString(ch.Text, -1))
			if n == 0 {
				continue
			}
			p.Total += n
			p.Chapters = append(p.Chapters, ChapterCount{Chapter: ch.Index, Count: n})
		}
		out = append(out, p)
	}
	return out
}

// BuildInteractions counts, per character pair, the sentences where both
// appear; a chapter where both appear but never share a sentence still counts
// once.
func BuildInteractions(chapters []segment.Chapter, characters []registry.Character) []CharacterInteraction {
	pairs := map[[2]int]int{}
	patterns := make([]aliasMatcher, len(characters))
	for i, c := range characters {
		patterns[i] = aliasMatcher{name: c.Name, re: aliasPattern(c)}
	}

	for _, ch := range chapters {
		sentences := segment.SplitSentences(ch.Text)
		for i := 0; i < len(patterns); i++ {
			if !patterns[i].re.MatchString(ch.Text) {
				continue
			}
			for j := i + 1; j < len(patterns); j++ {
				if !patterns[j].re.MatchString(ch.Text) {
					continue
				}
				shared := 0
				for _, s := range sentences {
					if patterns[i].re.MatchString(s) && patterns[j].re.MatchString(s) {
						shared++
					}
				}
				if shared == 0 {
					shared = 1
				}
				pairs[[2]int{i, j}] += shared
			}
		}
	}

	out := make([]CharacterInteraction, 0, len(pairs))
	for key, count := range pairs {
		out = append(out, CharacterInteraction{
			CharacterA: patterns[key[0]].name,
			CharacterB: patterns[key[1]].name,
			Count:      count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			if out[i].CharacterA == out[j].CharacterA {
				return out[i].CharacterB < out[j].CharacterB
			}
			return out[i].CharacterA < out[j].CharacterA
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// BuildRelationshipEvolution tracks each interacting pair's co-mention count
// chapter by chapter.
func BuildRelationshipEvolution(chapters []segment.Chapter, characters []registry.Character) []RelationshipEvolution {
	out := make([]RelationshipEvolution, 0, 8)
	for i := 0; i < len(characters); i++ {
		reA := aliasPattern(characters[i])
		for j := i + 1; j < len(characters); j++ {
			reB := aliasPattern(characters[j])
			points := []ChapterCount{}
			for _, ch := range chapters {
				a := len(reA.FindAllString(ch.Text, -1))
				b := len(reB.FindAllString(ch.Text, -1))
				if a == 0 || b == 0 {
					continue
				}
				n := a
				if b < n {
					n = b
				}
				points = append(points, ChapterCount{Chapter: ch.Index, Count: n})
			}
			if len(points) == 0 {
				continue
			}
			out = append(out, RelationshipEvolution{
				CharacterA: characters[i].Name,
				CharacterB: characters[j].Name,
				Points:     points,
			})
		}
	}
	return out
}

type aliasMatcher struct {
	name string
	re   *regexp.Regexp
}

// SignificantCharacters ranks by total presence (or, lacking presence data, by
// total interaction count), keeps everyone over the threshold, and clamps the
// cast to [5, 15]. Reproducible from the aggregates alone.
func SignificantCharacters(presence []CharacterPresence, interactions []CharacterInteraction) []string {
	type ranked struct {
		name  string
		count int
	}
	var all []ranked
	threshold := presenceThreshold
	if len(presence) > 0 {
		for _, p := range presence {
			all = append(all, ranked{name: p.Character, count: p.Total})
		}
	} else {
		threshold = interactionThreshold
		totals := map[string]int{}
		order := []string{}
		for _, in := range interactions {
			for _, name := range []string{in.CharacterA, in.CharacterB} {
				if _, ok := totals[name]; !ok {
					order = append(order, name)
				}
				totals[name] += in.Count
			}
		}
		for _, name := range order {
			all = append(all, ranked{name: name, count: totals[name]})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].count == all[j].count {
			return all[i].name < all[j].name
		}
		return all[i].count > all[j].count
	})

	out := make([]string, 0, len(all))
	for i, r := range all {
		if i >= maxSignificant {
			break
		}
		if r.count >= threshold || i < minSignificant {
			out = append(out, r.name)
		}
	}
	return out
}
