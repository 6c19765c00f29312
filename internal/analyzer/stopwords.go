package analyzer

// stopWords is the fixed set of tokens excluded from keyword extraction.
// The list covers common English function words plus a handful of terms
// that appear on virtually every page of a documentation site and would
// otherwise dominate the keyword lists without carrying any signal.
var stopWords = map[string]struct{}{
	// Articles, conjunctions, prepositions
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "with": {}, "this": {}, "that": {}, "have": {},
	"from": {}, "they": {}, "been": {}, "were": {}, "into": {}, "your": {},
	"will": {}, "each": {}, "when": {}, "then": {}, "them": {}, "these": {},
	"there": {}, "their": {}, "what": {}, "which": {}, "while": {},
	"would": {}, "about": {}, "after": {}, "before": {}, "should": {},
	"could": {}, "where": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "than": {}, "only": {}, "over": {}, "also": {},
	"just": {}, "like": {}, "very": {}, "here": {}, "does": {}, "doing": {},
	"both": {}, "between": {}, "through": {}, "during": {}, "under": {},
	"above": {}, "below": {}, "again": {}, "once": {}, "how": {}, "why": {},
	"any": {}, "its": {}, "has": {}, "had": {}, "did": {}, "get": {},
	"use": {}, "using": {}, "used": {},

	// Ubiquitous documentation-site terms
	"page": {}, "click": {}, "see": {}, "section": {}, "example": {},
	"note": {}, "following": {},
}

// IsStopWord reports whether the token is in the fixed stop-word set.
// Tokens are expected to be normalized (lowercased) before the check.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
