package ingest

import (
	"regexp"
	"strings"
)

// Format detection: a document is treated as screenplay-formatted when its
// line shapes look like screenplay markup often enough.

const (
	Prose      = "prose"
	Screenplay = "screenplay"
)

const screenplaySampleLines = 400
const screenplayMinRatio = 0.08

var sceneHeadingPattern = regexp.MustCompile(`^(INT\.|EXT\.|INT/EXT|I/E\.)`)
var cueLikePattern = regexp.MustCompile(`^[A-Z][A-Z0-9 .()'-]{1,39}$`)

// DetectFormat samples the document's leading lines and counts scene
// headings, transitions, and all-caps character cues.
func DetectFormat(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > screenplaySampleLines {
		lines = lines[:screenplaySampleLines]
	}

	total := 0
	markers := 0
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" {
			continue
		}
		total++
		if sceneHeadingPattern.MatchString(trim) {
			markers += 3
			continue
		}
		if strings.HasSuffix(trim, "TO:") || trim == "FADE IN:" || trim == "FADE OUT." {
			markers += 2
			continue
		}
		if cueLikePattern.MatchString(trim) && trim == strings.ToUpper(trim) && len(strings.Fields(trim)) <= 4 {
			markers++
		}
	}

	if total == 0 {
		return Prose
	}
	if float64(markers)/float64(total) >= screenplayMinRatio {
		return Screenplay
	}
	return Prose
}
