package analyzer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/contentscan/contentscan/internal/model"
)

// MinTokenLength is the minimum token length in characters (runes, not
// bytes): tokens of length <= 2 are discarded because they are almost
// always noise (articles, abbreviations, list markers).
const MinTokenLength = 3

// ExtractKeywords produces the ordered keyword list for a document's
// combined text fields.
//
// The contract, preserved for behavioral compatibility with the site's
// related-content widgets:
//  1. Normalize: NFKC fold, lowercase, strip non-alphanumeric characters,
//     split on whitespace.
//  2. Count occurrences per token.
//  3. Filter stop words and tokens shorter than MinTokenLength.
//  4. Sort by descending count, stable on first-encountered order for ties.
//  5. Truncate to model.MaxKeywordsPerDocument entries.
//
// Empty input yields an empty (non-nil) slice; there are no error conditions.
func ExtractKeywords(text string) []model.Keyword {
	tokens := Tokenize(text)

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	keywords := make([]model.Keyword, 0, len(order))
	for _, tok := range order {
		keywords = append(keywords, model.Keyword{Token: tok, Count: counts[tok]})
	}

	// SliceStable keeps the first-encountered order for equal counts
	// because the input slice is already in first-encountered order.
	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	if len(keywords) > model.MaxKeywordsPerDocument {
		keywords = keywords[:model.MaxKeywordsPerDocument]
	}
	return keywords
}

// Tokenize normalizes free text into the token stream keyword extraction
// counts. Stop words and short tokens are already filtered out here so that
// query keywords and document text go through the identical normalization.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	// NFKC folds compatibility forms (full-width characters, ligatures)
	// before the ASCII-ish token split below.
	normalized := strings.ToLower(norm.NFKC.String(text))

	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) < MinTokenLength {
			continue
		}
		if IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
