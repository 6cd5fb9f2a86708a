package dialogue

import (
	"regexp"
	"strings"
)

// Segment is one extracted piece of dialogue. Speaker is set only for
// screenplay cue extraction.
type Segment struct {
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
}

const maxCueLength = 40

var cuePattern = regexp.MustCompile(`^[A-Z0-9 .()'"-]+$`)
var transitionPattern = regexp.MustCompile(`^(CUT TO|FADE IN|FADE OUT|FADE TO|DISSOLVE TO|SMASH CUT|MATCH CUT)\b`)

// ExtractProse toggles an inside-dialogue flag on straight or curly double
// quotes and emits one segment per open/close pair.
func ExtractProse(text string) []Segment {
	out := make([]Segment, 0, 16)
	var current strings.Builder
	inside := false
	for _, r := range text {
		switch r {
		case '"', '“', '”':
			if inside {
				if s := strings.TrimSpace(current.String()); s != "" {
					out = append(out, Segment{Text: s})
				}
				current.Reset()
			}
			inside = !inside
		default:
			if inside {
				current.WriteRune(r)
			}
		}
	}
	return out
}

// ExtractScreenplay finds character cue lines and joins the lines that follow
// each cue, up to the next blank line, cue, scene heading, or transition.
func ExtractScreenplay(text string) []Segment {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]Segment, 0, 16)
	for i := 0; i < len(lines); i++ {
		cue := strings.TrimSpace(lines[i])
		if !isCueLine(cue) {
			continue
		}
		var spoken []string
		j := i + 1
		for ; j < len(lines); j++ {
			line := strings.TrimSpace(lines[j])
			if line == "" || isCueLine(line) || isSceneHeading(line) || isTransition(line) {
				break
			}
			spoken = append(spoken, line)
		}
		if len(spoken) > 0 {
			out = append(out, Segment{Speaker: cue, Text: strings.Join(spoken, " ")})
		}
		i = j - 1
	}
	return out
}

func isCueLine(line string) bool {
	if line == "" || len(line) > maxCueLength {
		return false
	}
	if strings.Contains(line, ":") {
		return false
	}
	if line != strings.ToUpper(line) || !cuePattern.MatchString(line) {
		return false
	}
	if isSceneHeading(line) || isTransition(line) {
		return false
	}
	// Require at least one letter so bare numbers are not treated as cues.
	return strings.IndexFunc(line, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
}

func isSceneHeading(line string) bool {
	return strings.HasPrefix(line, "INT.") || strings.HasPrefix(line, "EXT.") ||
		strings.HasPrefix(line, "INT/EXT") || strings.HasPrefix(line, "I/E.")
}

func isTransition(line string) bool {
	return transitionPattern.MatchString(line) || strings.HasSuffix(line, ":")
}

// Texts strips speakers, keeping only the spoken text.
func Texts(segments []Segment) []string {
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		out = append(out, s.Text)
	}
	return out
}
