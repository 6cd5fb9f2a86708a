package poetry

import (
	"regexp"
	"strings"
)

// Coarse mode classification. This is a heuristic reading aid, not a
// literary-critical ground truth.

const (
	narrativeMargin = 10
	lyricMargin     = 4
)

var temporalPattern = regexp.MustCompile(
	`\b(then|when|after|before|night|morning|evening|day|year|once|again|soon|later|first|last)\b`)

var eventVerbPattern = regexp.MustCompile(
	`\b(came|went|ran|walked|took|fell|left|arrived|said|found|turned|opened|crossed|climbed|returned|rode)\b`)

var reflectionPattern = regexp.MustCompile(
	`\b(think|thought|wonder|wondered|remember|remembered|believe|believed|feel|felt|know|knew|dream|dreamed|imagine|imagined)\b`)

var abstractNounPattern = regexp.MustCompile(
	`\b(truth|time|love|death|memory|soul|silence|hope|grief|beauty|sorrow|faith|desire|longing|absence)\b`)

func classifyMode(lines []string, voice VoiceRhetoric) string {
	joined := strings.ToLower(strings.Join(lines, "\n"))

	action := 0
	action += len(temporalPattern.FindAllString(joined, -1))
	action += len(eventVerbPattern.FindAllString(joined, -1)) * 2
	action += strings.Count(joined, `"`) + strings.Count(joined, "“")
	for _, w := range strings.Fields(joined) {
		if strings.HasSuffix(lettersOnly(w), "ed") {
			action++
		}
	}

	reflection := 0
	reflection += len(reflectionPattern.FindAllString(joined, -1)) * 2
	reflection += len(abstractNounPattern.FindAllString(joined, -1)) * 2
	reflection += voice.SecondPerson
	reflection += voice.Questions * 2

	switch {
	case action-reflection >= narrativeMargin:
		return "narrative"
	case reflection-action >= narrativeMargin:
		return "contemplative"
	}

	// Close call: weigh stance and reflection against action directly.
	voiceSignal := voice.FirstPerson + voice.SecondPerson + reflection/2
	if voiceSignal-action >= lyricMargin {
		return "lyric"
	}
	return "hybrid"
}
