package poetry

import (
	"strings"

	"quillpilot/internal/metrics"
	"quillpilot/internal/segment"
)

// Analyze runs the full poetry branch. With fewer than two body lines the
// result is marked insufficient rather than treated as an error.
func Analyze(text string) Insights {
	rawLines := segment.PoemBodyLines(text)
	stanzas := segment.Stanzas(rawLines)
	lines := make([]string, 0, len(rawLines))
	for _, st := range stanzas {
		lines = append(lines, st...)
	}

	if len(lines) < 2 {
		return Insights{InsufficientContent: true}
	}

	insights := Insights{
		Formal:  analyzeForm(lines, stanzas),
		Imagery: analyzeImagery(lines),
		Voice:   analyzeVoice(lines),
		Themes:  analyzeThemes(lines),
		Macro:   analyzeMacro(stanzas),
	}
	insights.Emotion = analyzeEmotion(lines, stanzas, insights.Voice.VoltaLine)

	signals := Signals{
		EnjambmentRate:     insights.Formal.EnjambmentRate,
		CaesuraRate:        insights.Formal.CaesuraRate,
		LineLengthVariance: lineLengthVariance(lines),
		AnaphoraCount:      len(insights.Formal.Anaphora),
		RhymeSchemes:       insights.Formal.RhymeSchemes,
		StanzaLineCounts:   insights.Macro.StanzaLineCounts,
		FirstPerson:        insights.Voice.FirstPerson,
		SecondPerson:       insights.Voice.SecondPerson,
		ThirdPerson:        insights.Voice.ThirdPerson,
		PeakLine:           insights.Emotion.PeakLine,
		TroughLine:         insights.Emotion.TroughLine,
		NotableShifts:      len(insights.Emotion.NotableLineShifts),
		OpeningEndingEcho:  openingEndingEcho(lines),
		EndsClosed:         endsClosed(lines),
	}
	signals.Mode = classifyMode(lines, insights.Voice)

	insights.Writers = WritersAnalysis{
		Mode:         signals.Mode,
		FormContext:  FormContext(signals),
		Observations: Commentary(signals),
	}
	return insights
}

func lineLengthVariance(lines []string) float64 {
	lengths := make([]int, 0, len(lines))
	for _, l := range lines {
		lengths = append(lengths, len(strings.TrimSpace(l)))
	}
	sd := metrics.Stdev(lengths)
	return sd * sd
}

func endsClosed(lines []string) bool {
	last := strings.TrimSpace(lines[len(lines)-1])
	return last != "" && strings.ContainsRune(`.!?”"`, lastRune(last))
}
