package poetry

import (
	"regexp"
	"strings"
)

var firstPersonPronouns = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "mine": {}, "myself": {}, "we": {}, "us": {}, "our": {}, "ours": {},
}
var secondPersonPronouns = map[string]struct{}{
	"you": {}, "your": {}, "yours": {}, "yourself": {},
}
var thirdPersonPronouns = map[string]struct{}{
	"he": {}, "she": {}, "they": {}, "him": {}, "her": {}, "them": {},
	"his": {}, "hers": {}, "their": {}, "theirs": {}, "it": {}, "its": {},
}

var hedgeWords = map[string]struct{}{
	"perhaps": {}, "maybe": {}, "almost": {}, "seems": {}, "seem": {},
	"nearly": {}, "somewhat": {}, "might": {}, "possibly": {}, "apparently": {},
}
var modalityWords = map[string]struct{}{
	"must": {}, "should": {}, "shall": {}, "will": {}, "would": {},
	"can": {}, "cannot": {}, "may": {}, "could": {}, "ought": {},
}

var turnCuePattern = regexp.MustCompile(`(?i)\b(but|yet|however|though|although|instead|still|until|then again)\b`)

var narrativeVerbPattern = regexp.MustCompile(
	`\b(said|told|came|went|ran|walked|saw|took|found|left|arrived|stood|fell|turned|opened)\b`)

func analyzeVoice(lines []string) VoiceRhetoric {
	v := VoiceRhetoric{VoltaLine: -1}
	narrativeVerbs := 0
	quoteMarks := 0
	for i, line := range lines {
		trim := strings.TrimSpace(line)
		if strings.HasSuffix(trim, "?") {
			v.Questions++
		}
		if strings.HasSuffix(trim, "!") {
			v.Exclamations++
		}
		if v.VoltaLine == -1 && turnCuePattern.MatchString(trim) {
			v.VoltaLine = i
			v.VoltaText = trim
		}
		quoteMarks += strings.Count(trim, `"`) + strings.Count(trim, "“") + strings.Count(trim, "”")
		lower := strings.ToLower(trim)
		narrativeVerbs += len(narrativeVerbPattern.FindAllString(lower, -1))
		for _, w := range strings.Fields(lower) {
			w = lettersOnly(w)
			if _, ok := firstPersonPronouns[w]; ok {
				v.FirstPerson++
			}
			if _, ok := secondPersonPronouns[w]; ok {
				v.SecondPerson++
			}
			if _, ok := thirdPersonPronouns[w]; ok {
				v.ThirdPerson++
			}
			if _, ok := hedgeWords[w]; ok {
				v.Hedges++
			}
			if _, ok := modalityWords[w]; ok {
				v.Modality++
			}
		}
	}

	v.AddressMode = classifyAddress(v, narrativeVerbs, quoteMarks)
	return v
}

func classifyAddress(v VoiceRhetoric, narrativeVerbs, quoteMarks int) string {
	switch {
	case v.SecondPerson > v.FirstPerson && v.SecondPerson > v.ThirdPerson:
		return "address"
	case v.ThirdPerson >= v.FirstPerson && narrativeVerbs+quoteMarks >= 3:
		return "narrative voice"
	case v.FirstPerson > v.ThirdPerson && v.FirstPerson > v.SecondPerson:
		return "first-person stance"
	default:
		return "observational"
	}
}
