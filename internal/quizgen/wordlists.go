package quizgen

// Fixed word lists backing the heuristics. These are deliberately small:
// the engine trades recall for zero external dependencies on language data.

// stopwords are excluded from key-phrase candidates and focus concepts.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "his": true, "its": true, "this": true, "that": true,
	"with": true, "from": true, "they": true, "them": true, "then": true,
	"than": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "these": true, "those": true, "there": true, "their": true,
	"about": true, "would": true, "should": true, "could": true, "been": true,
	"being": true, "have": true, "into": true, "over": true, "under": true,
	"also": true, "such": true, "some": true, "most": true, "more": true,
	"other": true, "each": true, "between": true, "through": true,
	"because": true, "however": true, "therefore": true, "thus": true,
	"very": true, "many": true, "much": true, "both": true, "during": true,
	"after": true, "before": true, "will": true, "were": true, "does": true,
	"used": true, "using": true, "within": true, "upon": true,
}

// domainIndicators boost key phrases that name abstractions a document is
// likely to be *about* rather than merely mention.
var domainIndicators = []string{
	"process", "theory", "framework", "method", "system", "model",
	"principle", "concept", "analysis", "structure", "function",
	"mechanism", "strategy", "approach",
}

// genericDistractors pad option lists when too few plausible distractors
// can be mined from the document itself.
var genericDistractors = []string{
	"concept", "process", "factor", "element", "system", "method",
	"theory", "principle", "structure", "mechanism",
}

// antonyms backs falsification strategy one. Both directions are listed
// explicitly so lookup stays a single map read.
var antonyms = map[string]string{
	"increase": "decrease", "decrease": "increase",
	"increases": "decreases", "decreases": "increases",
	"high": "low", "low": "high",
	"higher": "lower", "lower": "higher",
	"large": "small", "small": "large",
	"larger": "smaller", "smaller": "larger",
	"more": "less", "less": "more",
	"most": "least", "least": "most",
	"positive": "negative", "negative": "positive",
	"important": "unimportant", "major": "minor", "minor": "major",
	"early": "late", "late": "early",
	"fast": "slow", "slow": "fast",
	"faster": "slower", "slower": "faster",
	"strong": "weak", "weak": "strong",
	"common": "rare", "rare": "common",
	"simple": "complex", "complex": "simple",
	"internal": "external", "external": "internal",
	"direct": "indirect", "indirect": "direct",
	"always": "never", "never": "always",
	"first": "last", "last": "first",
	"improve": "worsen", "improves": "worsens",
	"enable": "prevent", "enables": "prevents",
}

// fillerNouns substitute for a content word when no antonym applies.
var fillerNouns = []string{
	"furniture", "weather", "geometry", "folklore", "cuisine", "plumbing",
}

// unrelatedSubjects replace a proper noun (or long content word) in
// falsification strategy four.
var unrelatedSubjects = []string{
	"Atlantis", "Mozart", "Jupiter", "the Renaissance", "Antarctica",
	"origami",
}

// absolutizers inject an over-strong qualifier when a sentence has no
// number to inflate.
var absolutizers = []string{"always", "never", "all", "none"}
