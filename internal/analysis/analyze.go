package analysis

import (
	"unicode/utf8"

	"quillpilot/internal/detect"
	"quillpilot/internal/dialogue"
	"quillpilot/internal/metrics"
	"quillpilot/internal/narrative"
	"quillpilot/internal/poetry"
	"quillpilot/internal/registry"
	"quillpilot/internal/segment"
)

// MaxAnalyzedChars bounds worst-case scanning cost. Word and sentence totals
// are still computed against the full text; everything else scans the
// truncated snapshot.
const MaxAnalyzedChars = 500_000

// Analyze runs the whole pipeline once. It never fails: missing context
// degrades to empty or placeholder output.
func Analyze(text string, opts Options) Results {
	scan, truncated := truncateAtRune(text, MaxAnalyzedChars)

	res := Results{
		Truncated:       truncated,
		WordCount:       segment.CountWords(text),
		SentenceCount:   segment.CountSentences(text),
		SentenceLengths: segment.SentenceLengths(scan),
	}
	if len(res.SentenceLengths) < 2 {
		res.SentenceLengths = []int{}
	}

	paragraphs := segment.SplitParagraphs(scan)
	res.ParagraphCount = len(paragraphs)
	for _, p := range paragraphs {
		if p.Long {
			res.LongParagraphs++
		}
	}

	// Derived ratios use scan-side counts throughout so a truncated document
	// grades the same as its untruncated prefix; only the reported totals
	// come from the full text.
	words := segment.TokenizeWords(scan)
	scanSentences := segment.CountSentences(scan)
	res.ReadingLevel = metrics.ReadingLevel(words, scanSentences)
	res.SentenceVariety = metrics.SentenceVariety(res.SentenceLengths)

	res.PassiveVoice = detect.PassiveVoice(scan)
	res.Adverbs = detect.Adverbs(words)
	res.WeakVerbs = detect.WeakVerbs(words)
	res.FilterWords = detect.FilterWords(words)
	res.Cliches = detect.Cliches(scan)
	res.SensoryWords = detect.SensoryWords(scan)

	res.PageCount = pageCount(text, res.WordCount, opts)

	if opts.Style == StylePoetry {
		// An empty document yields no insights at all; a degenerate one-line
		// poem still gets the insufficient-content marker.
		if len(segment.PoemBodyLines(scan)) > 0 {
			insights := poetry.Analyze(scan)
			res.PoetryInsights = &insights
		}
		return res
	}

	chapters := segment.SplitIntoChapters(scan, opts.Outline)
	res.ChapterCount = len(chapters)

	var segments []dialogue.Segment
	if opts.Style == StyleScreenplay {
		segments = dialogue.ExtractScreenplay(scan)
	} else {
		segments = dialogue.ExtractProse(scan)
	}
	res.DialogueCount = len(segments)
	res.DialoguePercentage = metrics.DialoguePercentage(dialogue.Texts(segments), len(words))
	report := dialogue.Score(segments, scan)
	res.DialogueQuality = report.Quality
	res.DialoguePacing = report.Pacing
	res.DialogueRepetition = report.Repetition
	res.HasConflict = report.HasConflict

	characters := validatedCharacters(scan, opts)
	if len(characters) > 0 {
		res.BeliefShiftMatrices = narrative.ExtractBeliefShifts(chapters, characters)
		res.DecisionConsequenceChains = narrative.ExtractDecisionChains(chapters, characters)
		res.CharacterPresence = narrative.BuildPresence(chapters, characters)
		res.CharacterInteractions = narrative.BuildInteractions(chapters, characters)
		res.RelationshipEvolution = narrative.BuildRelationshipEvolution(chapters, characters)
		res.InternalExternalAlignment = narrative.BuildAlignment(chapters, characters)
		res.DecisionBeliefLoops = narrative.BuildDecisionBeliefLoops(res.BeliefShiftMatrices, res.DecisionConsequenceChains)
	}

	plot := buildPlotAnalysis(chapters, opts.Style)
	res.PlotAnalysis = &plot
	res.LanguageDrift = buildDrift(scan)
	return res
}

// validatedCharacters routes everything through registry validation. The
// free-text name scan runs only on the explicit no-registry branch, so it can
// never contaminate registry-backed analytics.
func validatedCharacters(scan string, opts Options) []registry.Character {
	candidates := opts.Characters
	registryEmpty := opts.Registry == nil || len(opts.Registry.CanonicalKeys()) == 0
	if registryEmpty && len(candidates) == 0 {
		candidates = registry.ExtractCandidates(scan)
	}
	return registry.Validate(candidates, opts.Registry)
}

func pageCount(text string, wordCount int, opts Options) int {
	if opts.PageCountOverride > 0 {
		return opts.PageCountOverride
	}
	if len(opts.PageBreaks) > 0 {
		return len(opts.PageBreaks)
	}
	if opts.Style == StyleScreenplay {
		return metrics.ScreenplayPages(text)
	}
	return metrics.ManuscriptPages(wordCount)
}

func truncateAtRune(text string, limit int) (string, bool) {
	if len(text) <= limit {
		return text, false
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut], true
}
