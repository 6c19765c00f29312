package analyzer

import (
	"math"
	"testing"

	"github.com/contentscan/contentscan/internal/model"
)

// indexWith builds a content index from explicit keyword token lists,
// bypassing extraction so scores can be asserted exactly.
func indexWith(t *testing.T, docs []model.Document, keywords map[string][]string) *model.ContentIndex {
	t.Helper()
	index := model.NewContentIndex()
	for _, doc := range docs {
		kws := make([]model.Keyword, 0, len(keywords[doc.ID]))
		for _, tok := range keywords[doc.ID] {
			kws = append(kws, model.Keyword{Token: tok, Count: 1})
		}
		if err := index.Add(doc, kws); err != nil {
			t.Fatalf("failed to add document %q: %v", doc.ID, err)
		}
	}
	return index
}

func TestJaccard(t *testing.T) {
	t.Parallel()

	set := func(tokens ...string) map[string]struct{} {
		s := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			s[tok] = struct{}{}
		}
		return s
	}

	tests := []struct {
		name string
		a, b map[string]struct{}
		want float64
	}{
		{"both empty is zero, not NaN", set(), set(), 0},
		{"one empty", set("install"), set(), 0},
		{"disjoint", set("install", "setup"), set("quick", "start"), 0},
		{"identical", set("install", "setup"), set("install", "setup"), 1},
		{"one of seven", set("install", "setup", "python", "pip"), set("quick", "start", "tutorial", "python"), 1.0 / 7.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Jaccard(tt.a, tt.b)
			if math.IsNaN(got) {
				t.Fatal("Jaccard returned NaN")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Jaccard = %v, want %v", got, tt.want)
			}
			// Jaccard similarity is symmetric.
			if rev := Jaccard(tt.b, tt.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("Jaccard not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()

	t.Run("worked example: shared keyword plus shared tag", func(t *testing.T) {
		t.Parallel()
		index := indexWith(t,
			[]model.Document{
				{ID: "installation", URL: "/docs/installation.html", Tags: []string{"getting-started"}},
				{ID: "quick-start", URL: "/docs/quick-start.html", Tags: []string{"getting-started"}},
			},
			map[string][]string{
				"installation": {"install", "setup", "python", "pip"},
				"quick-start":  {"quick", "start", "tutorial", "python"},
			},
		)

		a := index.Get("installation")
		b := index.Get("quick-start")
		want := 1.0/7.0 + DefaultTagBonus
		if got := Similarity(a, b, opts); math.Abs(got-want) > 1e-9 {
			t.Errorf("Similarity = %v, want %v", got, want)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		index := indexWith(t,
			[]model.Document{
				{ID: "a", URL: "/a", Tags: []string{"x"}},
				{ID: "b", URL: "/b", Tags: []string{"x", "y"}},
			},
			map[string][]string{
				"a": {"alpha", "beta"},
				"b": {"beta", "gamma", "delta"},
			},
		)
		ab := Similarity(index.Get("a"), index.Get("b"), opts)
		ba := Similarity(index.Get("b"), index.Get("a"), opts)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Similarity not symmetric: %v vs %v", ab, ba)
		}
	})

	t.Run("disjoint keywords and no shared tags score exactly zero", func(t *testing.T) {
		t.Parallel()
		index := indexWith(t,
			[]model.Document{
				{ID: "a", URL: "/a", Tags: []string{"x"}},
				{ID: "b", URL: "/b", Tags: []string{"y"}},
			},
			map[string][]string{
				"a": {"alpha"},
				"b": {"beta"},
			},
		)
		if got := Similarity(index.Get("a"), index.Get("b"), opts); got != 0 {
			t.Errorf("expected exactly 0, got %v", got)
		}
	})

	t.Run("identical keywords with shared tag clamp to exactly one", func(t *testing.T) {
		t.Parallel()
		index := indexWith(t,
			[]model.Document{
				{ID: "a", URL: "/a", Tags: []string{"shared"}},
				{ID: "b", URL: "/b", Tags: []string{"shared"}},
			},
			map[string][]string{
				"a": {"alpha", "beta"},
				"b": {"alpha", "beta"},
			},
		)
		if got := Similarity(index.Get("a"), index.Get("b"), opts); got != 1.0 {
			t.Errorf("expected exactly 1.0 (clamped from 1.2), got %v", got)
		}
	})

	t.Run("score stays in unit interval", func(t *testing.T) {
		t.Parallel()
		index := indexWith(t,
			[]model.Document{
				{ID: "a", URL: "/a", Tags: []string{"t"}},
				{ID: "b", URL: "/b", Tags: []string{"t"}},
			},
			map[string][]string{
				"a": {"alpha", "beta", "gamma"},
				"b": {"alpha", "beta", "delta"},
			},
		)
		got := Similarity(index.Get("a"), index.Get("b"), opts)
		if got < 0 || got > 1 {
			t.Errorf("score %v outside [0, 1]", got)
		}
	})

	t.Run("empty keyword sets without tags score zero", func(t *testing.T) {
		t.Parallel()
		index := indexWith(t,
			[]model.Document{
				{ID: "a", URL: "/a"},
				{ID: "b", URL: "/b"},
			},
			map[string][]string{},
		)
		if got := Similarity(index.Get("a"), index.Get("b"), opts); got != 0 {
			t.Errorf("expected 0 for empty keyword sets, got %v", got)
		}
	})
}
