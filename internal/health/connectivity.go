package health

import (
	"context"

	"github.com/contentscan/contentscan/internal/model"
)

// ConnectivityCheck inspects the related-content graph: documents whose
// widgets render empty (isolated) and pages no other document's widget
// recommends (orphans).
type ConnectivityCheck struct{}

// NewConnectivityCheck creates a ConnectivityCheck.
func NewConnectivityCheck() *ConnectivityCheck {
	return &ConnectivityCheck{}
}

// Name returns the check name.
func (c *ConnectivityCheck) Name() string {
	return "connectivity"
}

// Check records connectivity findings from the related-content map.
func (c *ConnectivityCheck) Check(ctx context.Context, data *Data) error {
	if data.Index == nil || data.Related == nil {
		return nil
	}

	// Incoming edge counts across every document's related list.
	incoming := make(map[string]int, data.Index.Len())
	for _, entries := range data.Related {
		for _, e := range entries {
			incoming[e.ID]++
		}
	}

	var err error
	data.Index.Each(func(doc *model.IndexedDocument) bool {
		if ctx.Err() != nil {
			err = ctx.Err()
			return false
		}

		id := doc.Document.ID

		if len(data.Related[id]) == 0 {
			data.Report.AddFinding("isolated_document",
				"Document With Empty Related-Content Widget",
				"No other document scores above the relevance threshold for this document.",
				"", id)
		}

		// Sections are always reachable from the homepage itself, so the
		// orphan check only applies to pages.
		if doc.Document.Type == model.TypePage && incoming[id] == 0 {
			data.Report.AddFinding("orphan_document",
				"Page Not Recommended Anywhere",
				"No related-content widget on any other document recommends this page.",
				"", id)
		}

		return true
	})
	return err
}

// Ensure ConnectivityCheck implements Check.
var _ Check = (*ConnectivityCheck)(nil)
