package report

import (
	"encoding/json"
	"io"

	"github.com/contentscan/contentscan/internal/model"
)

// RelatedMapWriter outputs only the related-content map as JSON.
// This is the artifact the site's client-side widgets fetch at page load:
// a flat object keyed by document ID, each value a ranked entry list.
type RelatedMapWriter struct {
	baseWriter

	// indent enables pretty-printed output.
	indent bool
}

// RelatedMapWriterOption configures a RelatedMapWriter.
type RelatedMapWriterOption func(*RelatedMapWriter)

// WithRelatedPrettyPrint enables indented output.
func WithRelatedPrettyPrint() RelatedMapWriterOption {
	return func(w *RelatedMapWriter) {
		w.indent = true
	}
}

// NewRelatedMapWriter creates a RelatedMapWriter writing to output.
func NewRelatedMapWriter(output io.Writer, opts ...RelatedMapWriterOption) *RelatedMapWriter {
	w := &RelatedMapWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report's related-content map.
// Documents whose related list is empty are still present with an empty
// array so widgets can distinguish "no matches" from "unknown document".
func (w *RelatedMapWriter) Write(report *model.AnalysisReport) (int, error) {
	related := report.RelatedMap
	if related == nil {
		related = make(map[string][]model.ScoredDocument)
	}

	// Empty lists must serialize as [], not null.
	out := make(map[string][]model.ScoredDocument, len(related))
	for id, entries := range related {
		if entries == nil {
			entries = []model.ScoredDocument{}
		}
		out[id] = entries
	}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}

// Ensure all writers implement Writer.
var (
	_ Writer = (*SimpleWriter)(nil)
	_ Writer = (*JSONWriter)(nil)
	_ Writer = (*FullJSONWriter)(nil)
	_ Writer = (*MarkdownWriter)(nil)
	_ Writer = (*RelatedMapWriter)(nil)
	_ Writer = (*MultiWriter)(nil)
)
