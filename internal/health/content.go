package health

import (
	"context"
	"strings"

	"github.com/contentscan/contentscan/internal/model"
)

// minBodyWords is the body length below which a page counts as thin.
const minBodyWords = 40

// ContentCheck inspects per-document metadata quality: missing titles
// and descriptions, untagged documents, documents that yielded no
// keywords, and thin pages.
type ContentCheck struct{}

// NewContentCheck creates a ContentCheck.
func NewContentCheck() *ContentCheck {
	return &ContentCheck{}
}

// Name returns the check name.
func (c *ContentCheck) Name() string {
	return "content"
}

// Check records metadata-quality findings for every indexed document.
func (c *ContentCheck) Check(ctx context.Context, data *Data) error {
	if data.Index == nil {
		return nil
	}

	var err error
	data.Index.Each(func(doc *model.IndexedDocument) bool {
		if ctx.Err() != nil {
			err = ctx.Err()
			return false
		}

		id := doc.Document.ID

		if doc.Document.Title == "" {
			data.Report.AddFinding("missing_title",
				"Document Without Title",
				"The document has no title from its source or the content table.",
				"", id)
		}
		if doc.Document.Description == "" {
			data.Report.AddFinding("missing_description",
				"Document Without Description",
				"The document has no description for previews or meta tags.",
				"", id)
		}
		if len(doc.Document.Tags) == 0 {
			data.Report.AddFinding("untagged_document",
				"Untagged Document",
				"The document carries no curated tags.",
				"", id)
		}
		if len(doc.Keywords) == 0 {
			data.Report.AddFinding("empty_keywords",
				"No Extractable Keywords",
				"Keyword extraction produced nothing for this document.",
				"", id)
		}

		// Sections are authored as short blurbs; thinness only matters
		// for pages.
		if doc.Document.Type == model.TypePage &&
			len(strings.Fields(doc.Document.Body)) < minBodyWords {
			data.Report.AddFinding("thin_content",
				"Thin Page Body",
				"The page body is very short, which weakens keyword extraction.",
				"", id)
		}

		return true
	})
	return err
}

// Ensure ContentCheck implements Check.
var _ Check = (*ContentCheck)(nil)
