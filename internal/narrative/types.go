// Package narrative extracts character-centric arcs from chaptered text:
// belief timelines, decision chains, presence and interaction aggregates.
package narrative

type BeliefEntry struct {
	Chapter         int    `json:"chapter"`
	CoreBelief      string `json:"coreBelief"`
	Evidence        string `json:"evidence"`
	Counterpressure string `json:"counterpressure"`
}

// BeliefShiftMatrix is one character's belief timeline. Entries are sparse:
// only chapters where the character and a belief indicator co-occur.
type BeliefShiftMatrix struct {
	Character string        `json:"character"`
	Entries   []BeliefEntry `json:"entries"`
}

type ChainEntry struct {
	Chapter          int    `json:"chapter"`
	Decision         string `json:"decision"`
	ImmediateOutcome string `json:"immediateOutcome"`
	LongTermEffect   string `json:"longTermEffect"`
}

type DecisionConsequenceChain struct {
	Character string       `json:"character"`
	Entries   []ChainEntry `json:"entries"`
}

type ChapterCount struct {
	Chapter int `json:"chapter"`
	Count   int `json:"count"`
}

type CharacterPresence struct {
	Character string         `json:"character"`
	Total     int            `json:"total"`
	Chapters  []ChapterCount `json:"chapters"`
}

type CharacterInteraction struct {
	CharacterA string `json:"characterA"`
	CharacterB string `json:"characterB"`
	Count      int    `json:"count"`
}

type RelationshipEvolution struct {
	CharacterA string         `json:"characterA"`
	CharacterB string         `json:"characterB"`
	Points     []ChapterCount `json:"points"`
}

// AlignmentEntry contrasts a character's introspective sentences with their
// outward action sentences.
type AlignmentEntry struct {
	Character string  `json:"character"`
	Internal  int     `json:"internal"`
	External  int     `json:"external"`
	Alignment float64 `json:"alignment"`
}

// DecisionBeliefLoop joins a belief entry and a decision entry that land in
// the same chapter for the same character.
type DecisionBeliefLoop struct {
	Character string `json:"character"`
	Chapter   int    `json:"chapter"`
	Belief    string `json:"belief"`
	Decision  string `json:"decision"`
}
