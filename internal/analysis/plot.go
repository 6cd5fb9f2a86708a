package analysis

import (
	"regexp"
	"strings"

	"quillpilot/internal/dialogue"
	"quillpilot/internal/metrics"
	"quillpilot/internal/segment"
)

// Position windows for structural beat marks, as fractions of the chapter
// count.
var beatWindows = []struct {
	name       string
	startRatio float64
	endRatio   float64
}{
	{name: "Catalyst", startRatio: 0.10, endRatio: 0.12},
	{name: "Midpoint", startRatio: 0.45, endRatio: 0.55},
	{name: "Crisis", startRatio: 0.75, endRatio: 0.76},
}

var timeMarkerPattern = regexp.MustCompile(`(?i)\b(next day|yesterday|today|tomorrow|last night|that evening|\d{4})\b`)

var conflictMarkerPattern = regexp.MustCompile(
	`(?i)\b(fight|fought|argue[ds]?|shout(ed)?|scream(ed)?|threat(en(ed)?)?|attack(ed)?|refuse[ds]?|betray(ed)?|confront(ed)?|struggle[ds]?)\b`)

func buildPlotAnalysis(chapters []segment.Chapter, style Style) PlotAnalysis {
	plot := PlotAnalysis{Chapters: make([]ChapterPacing, 0, len(chapters))}
	for _, ch := range chapters {
		plot.Chapters = append(plot.Chapters, chapterPacing(ch, style))
	}

	total := len(chapters)
	for _, w := range beatWindows {
		start := int(float64(total)*w.startRatio) + 1
		end := int(float64(total)*w.endRatio) + 1
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		if start > end {
			start = end
		}
		if start < 1 {
			continue
		}
		plot.Beats = append(plot.Beats, BeatMark{Name: w.name, StartChapter: start, EndChapter: end})
	}
	return plot
}

// chapterPacing blends dialogue share, conflict density, time-marker count,
// and sentence-length pressure into one 0-100 pacing score.
func chapterPacing(ch segment.Chapter, style Style) ChapterPacing {
	wordCount := segment.CountWords(ch.Text)
	p := ChapterPacing{
		Chapter:     ch.Index,
		Title:       ch.Title,
		WordCount:   wordCount,
		TimeMarkers: len(timeMarkerPattern.FindAllString(ch.Text, -1)),
	}
	if wordCount == 0 {
		return p
	}

	var segments []dialogue.Segment
	if style == StyleScreenplay {
		segments = dialogue.ExtractScreenplay(ch.Text)
	} else {
		segments = dialogue.ExtractProse(ch.Text)
	}
	dialogueWords := 0
	for _, s := range segments {
		dialogueWords += len(strings.Fields(s.Text))
	}
	p.DialogueShare = float64(dialogueWords) / float64(wordCount)
	p.ConflictDensity = float64(len(conflictMarkerPattern.FindAllString(ch.Text, -1))) * 1000 / float64(wordCount)

	// Shorter sentences read faster; measure against an 18-word norm.
	lengths := segment.SentenceLengths(ch.Text)
	avg := 18.0
	if len(lengths) > 0 {
		total := 0
		for _, l := range lengths {
			total += l
		}
		avg = float64(total) / float64(len(lengths))
	}
	speed := (18.0 - avg) * 3
	if speed < 0 {
		speed = 0
	}

	score := p.DialogueShare*40 + p.ConflictDensity*4 + float64(p.TimeMarkers)*3 + speed
	p.Pacing = metrics.Clamp100(int(score))
	return p
}
