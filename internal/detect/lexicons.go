package detect

// Curated word lists for the stateless detectors. These are deliberately small
// fixed sets, not learned vocabularies.

var irregularParticiples = []string{
	"taken", "given", "written", "spoken", "broken", "chosen", "driven", "eaten",
	"fallen", "forgotten", "frozen", "hidden", "known", "seen", "shown", "stolen",
	"thrown", "worn", "done", "gone", "been", "begun", "brought", "built", "caught",
	"felt", "found", "held", "kept", "left", "lost", "made", "put", "said", "sent",
	"told", "thought", "understood", "won",
}

// Common -ly words that are not adverbs.
var adverbExceptions = map[string]struct{}{
	"family": {}, "only": {}, "lovely": {}, "early": {}, "ugly": {}, "holy": {},
	"friendly": {}, "lonely": {}, "likely": {}, "lily": {}, "reply": {}, "supply": {},
	"apply": {}, "belly": {}, "bully": {}, "jelly": {}, "rally": {}, "silly": {},
	"fly": {}, "ally": {}, "italy": {}, "assembly": {}, "monopoly": {},
}

var weakVerbs = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"am": {}, "get": {}, "got": {}, "gets": {}, "getting": {}, "make": {}, "makes": {},
	"made": {}, "making": {}, "go": {}, "goes": {}, "went": {}, "going": {},
	"take": {}, "takes": {}, "took": {}, "taking": {}, "give": {}, "gives": {},
	"gave": {}, "giving": {}, "put": {}, "puts": {}, "putting": {}, "seem": {},
	"seems": {}, "seemed": {}, "become": {}, "becomes": {}, "became": {},
}

var filterWords = map[string]struct{}{
	"saw": {}, "see": {}, "seen": {}, "watched": {}, "watch": {}, "looked": {},
	"look": {}, "heard": {}, "hear": {}, "listened": {}, "felt": {}, "feel": {},
	"noticed": {}, "notice": {}, "realized": {}, "realize": {}, "wondered": {},
	"wonder": {}, "thought": {}, "knew": {}, "know": {}, "decided": {},
	"remembered": {}, "remember": {}, "seemed": {}, "smelled": {}, "tasted": {},
}

var clichePhrases = []string{
	"at the end of the day",
	"in the nick of time",
	"dead as a doornail",
	"avoid like the plague",
	"cold sweat",
	"heart skipped a beat",
	"blood ran cold",
	"crystal clear",
	"easier said than done",
	"every fiber of her being",
	"every fiber of his being",
	"fit as a fiddle",
	"in the blink of an eye",
	"last but not least",
	"light at the end of the tunnel",
	"like a kid in a candy store",
	"needle in a haystack",
	"only time will tell",
	"scared to death",
	"take the bull by the horns",
	"the calm before the storm",
	"time stood still",
	"tip of the iceberg",
	"without a care in the world",
	"a chill ran down",
	"breath she didn't know she was holding",
	"breath he didn't know he was holding",
}
