package segment

import "strings"

const maxHeaderLines = 3
const shortHeaderRunes = 48

// PoemBodyLines normalizes line endings and strips a short title/author header
// block before returning the poem's lines, blank lines included so stanza
// boundaries survive.
func PoemBodyLines(text string) []string {
	text = strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}

	if blank := firstBlank(lines); blank > 0 && blank <= maxHeaderLines {
		header := true
		for _, l := range lines[:blank] {
			if !looksLikeHeaderLine(l) {
				header = false
				break
			}
		}
		if header {
			rest := lines[blank:]
			for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
				rest = rest[1:]
			}
			return rest
		}
	} else if blank == -1 {
		strip := 0
		for strip < maxHeaderLines && strip < len(lines) && looksLikeHeaderLine(lines[strip]) {
			strip++
		}
		if strip > 0 && len(lines)-strip >= 8 {
			return lines[strip:]
		}
	}
	return lines
}

// Stanzas groups contiguous non-blank lines; a blank line always closes the
// open stanza.
func Stanzas(lines []string) [][]string {
	out := make([][]string, 0, 8)
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

func firstBlank(lines []string) int {
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			return i
		}
	}
	return -1
}

func looksLikeHeaderLine(line string) bool {
	trim := strings.TrimSpace(line)
	if trim == "" || len([]rune(trim)) > shortHeaderRunes {
		return false
	}
	return !strings.ContainsAny(trim, ".!?,;:")
}
