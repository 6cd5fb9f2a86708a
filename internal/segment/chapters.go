package segment

import (
	"fmt"
	"regexp"
	"strings"
)

type Chapter struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// OutlineEntry is a heading supplied by an outline provider. Start and End are
// byte offsets into the document and may disagree with the actual text length.
type OutlineEntry struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

var chapterHeaderPattern = regexp.MustCompile(`(?i)^\s*(chapter\s+\d+|ch\.\s+\d+|\d+\.)\b.*`)
var chapterTitlePattern = regexp.MustCompile(`(?i)^\s*chapter\s+\d+\b`)
var partTitlePattern = regexp.MustCompile(`(?i)^\s*(part|book|act)\s+`)

// SplitIntoChapters prefers outline-driven boundaries, falls back to header
// regex splitting, and finally treats the whole document as one chapter.
func SplitIntoChapters(text string, outline []OutlineEntry) []Chapter {
	if chapters := splitByOutline(text, outline); len(chapters) > 0 {
		return chapters
	}
	if chapters := splitByHeaders(text); len(chapters) > 0 {
		return chapters
	}
	return []Chapter{{Index: 1, Title: "Chapter 1", Text: text}}
}

func splitByOutline(text string, outline []OutlineEntry) []Chapter {
	entries := mostChapterLike(outline)
	if len(entries) == 0 {
		return nil
	}
	out := make([]Chapter, 0, len(entries))
	for _, e := range entries {
		start := clampOffset(e.Start, len(text))
		end := clampOffset(e.End, len(text))
		if end < start {
			start, end = end, start
		}
		chunk := strings.TrimSpace(text[start:end])
		if chunk == "" {
			continue
		}
		title := strings.TrimSpace(e.Title)
		if title == "" {
			title = fmt.Sprintf("Chapter %d", len(out)+1)
		}
		out = append(out, Chapter{Index: len(out) + 1, Title: title, Text: chunk})
	}
	return out
}

// mostChapterLike picks one outline level to split on: exact "Chapter N"
// headings beat generic headings, which beat part/book/act dividers.
func mostChapterLike(outline []OutlineEntry) []OutlineEntry {
	byLevel := map[int][]OutlineEntry{}
	for _, e := range outline {
		byLevel[e.Level] = append(byLevel[e.Level], e)
	}

	bestLevel := 0
	bestScore := -1
	for level, entries := range byLevel {
		score := 0
		for _, e := range entries {
			switch {
			case chapterTitlePattern.MatchString(e.Title):
				score += 4
			case partTitlePattern.MatchString(e.Title):
				score -= 1
			default:
				score += 1
			}
		}
		if score > bestScore || (score == bestScore && level < bestLevel) {
			bestScore = score
			bestLevel = level
		}
	}
	if bestScore < 0 {
		return nil
	}
	return byLevel[bestLevel]
}

func clampOffset(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

func splitByHeaders(text string) []Chapter {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]Chapter, 0, 32)
	var currentTitle string
	var current []string
	sawHeader := false
	flush := func() {
		if len(current) == 0 {
			return
		}
		idx := len(out) + 1
		title := currentTitle
		if title == "" {
			title = fmt.Sprintf("Chapter %d", idx)
		}
		out = append(out, Chapter{Index: idx, Title: title, Text: strings.Join(current, "\n")})
		current = nil
	}

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if chapterHeaderPattern.MatchString(trim) {
			sawHeader = true
			flush()
			currentTitle = trim
			continue
		}
		if trim != "" {
			current = append(current, trim)
		}
	}
	flush()

	if !sawHeader {
		return nil
	}
	return out
}
