// Package analysis is the engine's entry point: one synchronous, pure pass
// over a text snapshot producing an immutable Results aggregate.
package analysis

import (
	"quillpilot/internal/detect"
	"quillpilot/internal/narrative"
	"quillpilot/internal/poetry"
	"quillpilot/internal/registry"
	"quillpilot/internal/segment"
)

type Style string

const (
	StyleProse      Style = "prose"
	StyleScreenplay Style = "screenplay"
	StylePoetry     Style = "poetry"
)

// Options is the optional context a caller can supply alongside the text.
type Options struct {
	Style   Style
	Outline []segment.OutlineEntry

	// PageBreaks holds the byte offsets where each page begins, when a
	// layout-aware caller knows the real pagination. PageCountOverride, when
	// positive, beats both the break list and the per-style estimate.
	PageBreaks        []int
	PageCountOverride int

	Characters []string
	Registry   registry.Registry
}

// ChapterPacing is one chapter's pacing snapshot.
type ChapterPacing struct {
	Chapter         int     `json:"chapter"`
	Title           string  `json:"title"`
	WordCount       int     `json:"wordCount"`
	DialogueShare   float64 `json:"dialogueShare"`
	ConflictDensity float64 `json:"conflictDensity"`
	TimeMarkers     int     `json:"timeMarkers"`
	Pacing          int     `json:"pacing"`
}

type BeatMark struct {
	Name         string `json:"name"`
	StartChapter int    `json:"startChapter"`
	EndChapter   int    `json:"endChapter"`
}

type PlotAnalysis struct {
	Chapters []ChapterPacing `json:"chapters"`
	Beats    []BeatMark      `json:"beats"`
}

// DriftWindow is one sliding vocabulary window for language-drift charting.
type DriftWindow struct {
	Index             int     `json:"index"`
	StartWord         int     `json:"startWord"`
	EndWord           int     `json:"endWord"`
	TypeTokenRatio    float64 `json:"typeTokenRatio"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
}

// Results is the single output aggregate. Immutable once produced; callers
// may cache it keyed by document identity.
type Results struct {
	WordCount      int  `json:"wordCount"`
	SentenceCount  int  `json:"sentenceCount"`
	ParagraphCount int  `json:"paragraphCount"`
	LongParagraphs int  `json:"longParagraphs"`
	PageCount      int  `json:"pageCount"`
	ChapterCount   int  `json:"chapterCount"`
	Truncated      bool `json:"truncated"`

	ReadingLevel    string `json:"readingLevel"`
	SentenceVariety int    `json:"sentenceVariety"`
	SentenceLengths []int  `json:"sentenceLengths"`

	PassiveVoice detect.Result `json:"passiveVoice"`
	Adverbs      detect.Result `json:"adverbs"`
	WeakVerbs    detect.Result `json:"weakVerbs"`
	FilterWords  detect.Result `json:"filterWords"`
	Cliches      detect.Result `json:"cliches"`
	SensoryWords detect.Result `json:"sensoryWords"`

	DialogueCount      int  `json:"dialogueCount"`
	DialoguePercentage int  `json:"dialoguePercentage"`
	DialogueQuality    int  `json:"dialogueQuality"`
	DialoguePacing     int  `json:"dialoguePacing"`
	DialogueRepetition int  `json:"dialogueRepetition"`
	HasConflict        bool `json:"hasConflict"`

	PlotAnalysis              *PlotAnalysis                        `json:"plotAnalysis,omitempty"`
	DecisionBeliefLoops       []narrative.DecisionBeliefLoop       `json:"decisionBeliefLoops,omitempty"`
	CharacterInteractions     []narrative.CharacterInteraction     `json:"characterInteractions,omitempty"`
	CharacterPresence         []narrative.CharacterPresence        `json:"characterPresence,omitempty"`
	BeliefShiftMatrices       []narrative.BeliefShiftMatrix        `json:"beliefShiftMatrices,omitempty"`
	DecisionConsequenceChains []narrative.DecisionConsequenceChain `json:"decisionConsequenceChains,omitempty"`
	RelationshipEvolution     []narrative.RelationshipEvolution    `json:"relationshipEvolution,omitempty"`
	InternalExternalAlignment []narrative.AlignmentEntry           `json:"internalExternalAlignment,omitempty"`
	LanguageDrift             []DriftWindow                        `json:"languageDrift,omitempty"`
	PoetryInsights            *poetry.Insights                     `json:"poetryInsights,omitempty"`
}
