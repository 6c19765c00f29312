package analyzer

import "github.com/contentscan/contentscan/internal/model"

// Scoring constants.
// The tag bonus and relevance threshold are tuning values inherited from
// the site's original widgets; they are exposed as configurable options
// rather than "corrected", so existing behavior is reproduced exactly.
const (
	// DefaultTagBonus is the flat score added when two documents share at
	// least one curated tag.
	DefaultTagBonus = 0.2

	// DefaultMinRelevance is the minimum similarity a candidate must exceed
	// (strictly) to appear in related-content results.
	DefaultMinRelevance = 0.1

	// keywordMatchWeight is the suggestion score per query keyword found in
	// a document's keyword list.
	keywordMatchWeight = 1.0

	// tagMatchWeight is the suggestion score per query keyword found in a
	// document's tag list.
	tagMatchWeight = 0.5
)

// Options holds the tunable scoring parameters.
type Options struct {
	// TagBonus is added once when the documents share any tag.
	TagBonus float64

	// MinRelevance is the related-content inclusion threshold; candidates
	// scoring <= MinRelevance are excluded.
	MinRelevance float64
}

// DefaultOptions returns the scoring parameters the site's widgets shipped
// with.
func DefaultOptions() Options {
	return Options{
		TagBonus:     DefaultTagBonus,
		MinRelevance: DefaultMinRelevance,
	}
}

// Jaccard computes |intersection| / |union| over two token sets.
// Two empty sets score 0 by definition, never NaN.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Similarity scores two indexed documents in [0, 1]: Jaccard similarity
// over keyword token sets (counts ignored), plus a flat tag bonus when the
// documents share at least one tag, clamped to 1.0.
//
// The flat bonus is a deliberate simplification, not a weighted model;
// it is preserved exactly for behavioral compatibility.
func Similarity(a, b *model.IndexedDocument, opts Options) float64 {
	score := Jaccard(a.KeywordSet(), b.KeywordSet())
	if a.Document.SharesTag(&b.Document) {
		score += opts.TagBonus
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
