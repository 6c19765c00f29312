package analyzer

import (
	"sort"
	"strings"

	"github.com/contentscan/contentscan/internal/model"
)

// RelatedTo ranks every other indexed document by similarity to the source
// document and returns up to max entries. The source itself is never
// compared or returned, and candidates scoring at or below the relevance
// threshold are excluded. Ties keep the index insertion order.
//
// The caller is responsible for handling an absent source ID; see
// Analyzer.RelatedContent for the logging contract.
func RelatedTo(index *model.ContentIndex, sourceID string, max int, opts Options) []model.ScoredDocument {
	source := index.Get(sourceID)
	if source == nil || max <= 0 {
		return []model.ScoredDocument{}
	}

	scored := make([]model.ScoredDocument, 0, index.Len())
	index.Each(func(candidate *model.IndexedDocument) bool {
		if candidate.Document.ID == sourceID {
			return true
		}
		score := Similarity(source, candidate, opts)
		if score <= opts.MinRelevance {
			return true
		}
		scored = append(scored, newScoredDocument(candidate, score))
		return true
	})

	// SliceStable preserves index insertion order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

// SuggestFor ranks documents against an arbitrary query keyword list using
// a simple additive model: keywordMatchWeight per query keyword present in
// the document's keyword list, tagMatchWeight per query keyword present in
// its tag list. Documents scoring zero are excluded; ties keep insertion
// order.
//
// A query keyword matches the keyword list when all of its normalized
// tokens are present (for single-word keywords this is plain membership),
// and matches the tag list on a case-insensitive whole-tag comparison, so
// hyphenated tags like "getting-started" stay matchable.
func SuggestFor(index *model.ContentIndex, keywords []string, excludeID string, max int) []model.ScoredDocument {
	if max <= 0 || len(keywords) == 0 {
		return []model.ScoredDocument{}
	}

	scored := make([]model.ScoredDocument, 0)
	index.Each(func(candidate *model.IndexedDocument) bool {
		if candidate.Document.ID == excludeID {
			return true
		}

		score := 0.0
		for _, kw := range keywords {
			lower := strings.ToLower(strings.TrimSpace(kw))
			if lower == "" {
				continue
			}
			if matchesKeywordList(candidate, kw) {
				score += keywordMatchWeight
			}
			if matchesTagList(&candidate.Document, lower) {
				score += tagMatchWeight
			}
		}
		if score > 0 {
			scored = append(scored, newScoredDocument(candidate, score))
		}
		return true
	})

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

// matchesKeywordList reports whether every normalized token of the query
// keyword appears in the document's keyword set.
func matchesKeywordList(doc *model.IndexedDocument, keyword string) bool {
	tokens := Tokenize(keyword)
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !doc.HasKeyword(tok) {
			return false
		}
	}
	return true
}

// matchesTagList reports whether the lowercased query keyword equals any of
// the document's tags, compared case-insensitively.
func matchesTagList(doc *model.Document, lowerKeyword string) bool {
	for _, tag := range doc.Tags {
		if strings.ToLower(tag) == lowerKeyword {
			return true
		}
	}
	return false
}

// newScoredDocument copies the widget-facing document fields next to the
// score that produced the rank.
func newScoredDocument(doc *model.IndexedDocument, score float64) model.ScoredDocument {
	return model.ScoredDocument{
		ID:          doc.Document.ID,
		Title:       doc.Document.Title,
		Description: doc.Document.Description,
		URL:         doc.Document.URL,
		Type:        doc.Document.Type,
		Score:       score,
	}
}
