// Package poetry analyzes poem structure, imagery, voice, and emotional
// trajectory from plain text, and derives craft commentary from the signals.
package poetry

type Insights struct {
	InsufficientContent bool                `json:"insufficientContent"`
	Formal              FormalTechnical     `json:"formal"`
	Imagery             ImagerySensory      `json:"imagery"`
	Voice               VoiceRhetoric       `json:"voice"`
	Emotion             EmotionalTrajectory `json:"emotion"`
	Themes              ThemeMotif          `json:"themes"`
	Macro               MacroStructure      `json:"macro"`
	Writers             WritersAnalysis     `json:"writers"`
}

type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

type FormalTechnical struct {
	LineCount      int           `json:"lineCount"`
	StanzaCount    int           `json:"stanzaCount"`
	RhymeSchemes   []string      `json:"rhymeSchemes"`
	EnjambmentRate float64       `json:"enjambmentRate"`
	CaesuraRate    float64       `json:"caesuraRate"`
	Repetitions    []PhraseCount `json:"repetitions"`
	Anaphora       []PhraseCount `json:"anaphora"`
	Alliteration   []string      `json:"alliteration"`
}

type ImagerySensory struct {
	Counts   map[string]int `json:"counts"`
	Dominant []string       `json:"dominant"`
}

type VoiceRhetoric struct {
	FirstPerson  int    `json:"firstPerson"`
	SecondPerson int    `json:"secondPerson"`
	ThirdPerson  int    `json:"thirdPerson"`
	Questions    int    `json:"questions"`
	Exclamations int    `json:"exclamations"`
	Hedges       int    `json:"hedges"`
	Modality     int    `json:"modality"`
	AddressMode  string `json:"addressMode"`
	VoltaLine    int    `json:"voltaLine"` // zero-based; -1 when no turn found
	VoltaText    string `json:"voltaText,omitempty"`
}

type EmotionalTrajectory struct {
	LineScores          []float64 `json:"lineScores"`
	StanzaScores        []float64 `json:"stanzaScores"`
	PeakLine            int       `json:"peakLine"`
	TroughLine          int       `json:"troughLine"`
	Volatility          float64   `json:"volatility"`
	NotableLineShifts   []int     `json:"notableLineShifts"`
	NotableStanzaShifts []int     `json:"notableStanzaShifts"`
}

type ThemeMotif struct {
	Words   []PhraseCount `json:"words"`
	Bigrams []PhraseCount `json:"bigrams"`
}

type MacroStructure struct {
	StanzaLineCounts []int `json:"stanzaLineCounts"`
}

type Observation struct {
	Bucket string `json:"bucket"`
	Text   string `json:"text"`
}

type WritersAnalysis struct {
	Mode         string        `json:"mode"`
	FormContext  string        `json:"formContext"`
	Observations []Observation `json:"observations"`
}
