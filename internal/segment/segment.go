package segment

import (
	"regexp"
	"strings"
)

// LongParagraphWords is the threshold above which a paragraph is flagged as long.
const LongParagraphWords = 150

var sentenceEndPattern = regexp.MustCompile(`[.!?]+`)

type Paragraph struct {
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
	Long      bool   `json:"long"`
}

func TokenizeWords(text string) []string {
	return strings.Fields(text)
}

// CountWords counts on the raw text. Callers that truncate for scanning should
// still call this with the untruncated text so totals stay accurate.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

func CountSentences(text string) int {
	return len(SplitSentences(text))
}

func SplitSentences(text string) []string {
	parts := sentenceEndPattern.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SentenceLengths returns the per-sentence word counts in document order.
func SentenceLengths(text string) []int {
	sentences := SplitSentences(text)
	out := make([]int, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, len(strings.Fields(s)))
	}
	return out
}

func SplitParagraphs(text string) []Paragraph {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]Paragraph, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		wc := len(strings.Fields(line))
		out = append(out, Paragraph{Text: line, WordCount: wc, Long: wc > LongParagraphWords})
	}
	return out
}
