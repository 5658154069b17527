package nlp

// stopwords is a compact English stopword list used when selecting keyword
// tags. Deliberately small: tags only need the salient content words.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "have": true, "has": true, "had": true,
	"was": true, "were": true, "are": true, "will": true, "would": true,
	"should": true, "could": true, "about": true, "after": true,
	"before": true, "into": true, "over": true, "under": true, "out": true,
	"but": true, "not": true, "all": true, "any": true, "can": true,
	"her": true, "his": true, "its": true, "our": true, "their": true,
	"them": true, "they": true, "you": true, "your": true, "she": true,
	"him": true, "who": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "how": true, "why": true, "than": true,
	"then": true, "there": true, "here": true, "been": true, "being": true,
	"some": true, "such": true, "only": true, "also": true, "very": true,
	"just": true, "each": true, "more": true, "most": true, "other": true,
	"both": true, "during": true, "between": true, "these": true,
	"those": true, "same": true, "too": true, "until": true, "again": true,
}
