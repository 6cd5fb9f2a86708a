// Package registry canonicalizes character names against a caller-supplied
// registry so narrative analytics never run on free-text-guessed names.
package registry

import (
	"sort"
	"strings"
)

// Registry supplies the canonical cast list and known aliases per character.
type Registry interface {
	CanonicalKeys() []string
	AliasesFor(key string) []string
}

// Character is a validated name plus every alias worth scanning for,
// canonical key included.
type Character struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// Snapshot is an immutable in-memory Registry.
type Snapshot struct {
	ordered []string
	aliases map[string][]string
}

func NewSnapshot(names []string, aliases map[string][]string) *Snapshot {
	s := &Snapshot{ordered: make([]string, 0, len(names)), aliases: map[string][]string{}}
	seen := map[string]struct{}{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		s.ordered = append(s.ordered, n)
		s.aliases[key] = dedupAliases(n, aliases[n])
	}
	return s
}

func (s *Snapshot) CanonicalKeys() []string {
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *Snapshot) AliasesFor(key string) []string {
	found := s.aliases[strings.ToLower(strings.TrimSpace(key))]
	out := make([]string, len(found))
	copy(out, found)
	return out
}

// Validate intersects candidate names with the registry. Candidates matching
// an alias resolve to their canonical entry. With an empty registry the
// caller-supplied list passes through verbatim; with no candidates the whole
// registry is used.
func Validate(candidates []string, reg Registry) []Character {
	keys := registryKeys(reg)
	if len(keys) == 0 {
		out := make([]Character, 0, len(candidates))
		seen := map[string]struct{}{}
		for _, c := range candidates {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			lower := strings.ToLower(c)
			if _, ok := seen[lower]; ok {
				continue
			}
			seen[lower] = struct{}{}
			out = append(out, Character{Name: c, Aliases: []string{c}})
		}
		return out
	}

	if len(candidates) == 0 {
		candidates = keys
	}

	byAlias := map[string]string{}
	for _, key := range keys {
		byAlias[strings.ToLower(key)] = key
		for _, a := range reg.AliasesFor(key) {
			byAlias[strings.ToLower(strings.TrimSpace(a))] = key
		}
	}

	out := make([]Character, 0, len(candidates))
	emitted := map[string]struct{}{}
	for _, c := range candidates {
		canonical, ok := byAlias[strings.ToLower(strings.TrimSpace(c))]
		if !ok {
			continue
		}
		if _, dup := emitted[canonical]; dup {
			continue
		}
		emitted[canonical] = struct{}{}
		out = append(out, Character{Name: canonical, Aliases: dedupAliases(canonical, reg.AliasesFor(canonical))})
	}
	return out
}

func registryKeys(reg Registry) []string {
	if reg == nil {
		return nil
	}
	return reg.CanonicalKeys()
}

func dedupAliases(canonical string, aliases []string) []string {
	out := []string{canonical}
	seen := map[string]struct{}{strings.ToLower(canonical): {}}
	for _, a := range aliases {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		lower := strings.ToLower(a)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, a)
	}
	sort.Strings(out[1:])
	return out
}
