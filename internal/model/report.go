package model

import "time"

// ScoredDocument is a ranked recommendation entry: the document metadata a
// related-content widget needs, plus the score that produced its rank.
type ScoredDocument struct {
	// ID is the recommended document's identifier.
	ID string `json:"id"`

	// Title is the document title.
	Title string `json:"title"`

	// Description is the document summary.
	Description string `json:"description,omitempty"`

	// URL is the resolved site URL.
	URL string `json:"url"`

	// Type classifies the document.
	Type DocType `json:"type"`

	// Score is the similarity or suggestion score that ranked this entry.
	Score float64 `json:"score"`
}

// Finding represents a single content-health finding.
type Finding struct {
	// Type is the finding type identifier.
	// This maps to the findingInfoMapping in severity.go.
	Type string `json:"type"`

	// Severity is the impact level.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Title is a short description of the finding.
	Title string `json:"title"`

	// Description provides more detail about the finding.
	Description string `json:"description,omitempty"`

	// Impact explains why this finding matters.
	Impact string `json:"impact,omitempty"`

	// Recommendation provides guidance on how to address this finding.
	Recommendation string `json:"recommendation,omitempty"`

	// Value is the specific value found (tag name, EXIF tag, ...).
	Value string `json:"value,omitempty"`

	// Location is the document ID or file path the finding refers to.
	Location string `json:"location,omitempty"`
}

// AnalysisReport is the main analysis result structure.
// It contains everything collected while analyzing one site source tree.
//
// Design decision: We use a single struct for both the in-flight pipeline
// state and the serialized report. Heavy in-memory members (the content
// index) are excluded from JSON; everything a report consumer needs is in
// the serializable fields.
type AnalysisReport struct {
	// SiteRoot is the analyzed site source directory.
	SiteRoot string `json:"site_root"`

	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Documents lists the indexed documents with their keywords.
	Documents []*IndexedDocument `json:"documents,omitempty"`

	// RelatedMap maps each document ID to its ranked related content.
	// This is the artifact the site's client-side widgets consume.
	RelatedMap map[string][]ScoredDocument `json:"related_map,omitempty"`

	// Findings contains all content-health findings.
	Findings []Finding `json:"findings,omitempty"`

	// === Severity Summary ===

	// CriticalCount is the number of critical findings.
	CriticalCount int `json:"critical_count"`

	// HighCount is the number of high severity findings.
	HighCount int `json:"high_count"`

	// MediumCount is the number of medium severity findings.
	MediumCount int `json:"medium_count"`

	// LowCount is the number of low severity findings.
	LowCount int `json:"low_count"`

	// InfoCount is the number of informational findings.
	InfoCount int `json:"info_count"`

	// === Analysis State ===

	// PerformedSteps lists the pipeline steps that actually ran.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// TimedOut is true if the analysis was cancelled before completing.
	TimedOut bool `json:"timed_out"`

	// Index is the in-memory content index built during analysis.
	// Excluded from JSON; Documents carries the serializable view.
	Index *ContentIndex `json:"-"`

	// Err contains any error that occurred during analysis.
	Err error `json:"-"`

	// ErrorMessage is the string representation of Err for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewAnalysisReport creates a new report for the given site root.
func NewAnalysisReport(siteRoot string) *AnalysisReport {
	return &AnalysisReport{
		SiteRoot:     siteRoot,
		DateAnalyzed: time.Now(),
		RelatedMap:   make(map[string][]ScoredDocument),
	}
}

// SetIndex stores the content index and refreshes the serializable
// document list from it.
func (r *AnalysisReport) SetIndex(index *ContentIndex) {
	r.Index = index
	r.Documents = r.Documents[:0]
	index.Each(func(doc *IndexedDocument) bool {
		r.Documents = append(r.Documents, doc)
		return true
	})
}

// DocumentCount returns the number of indexed documents.
func (r *AnalysisReport) DocumentCount() int {
	return len(r.Documents)
}

// AddFinding appends a finding, filling severity metadata from the central
// mapping and keeping the severity counters in sync. Duplicate findings
// (same type, value, and location) are dropped.
func (r *AnalysisReport) AddFinding(findingType, title, description, value, location string) {
	for _, f := range r.Findings {
		if f.Type == findingType && f.Value == value && f.Location == location {
			return
		}
	}

	info := GetFindingInfo(findingType)
	r.Findings = append(r.Findings, Finding{
		Type:           findingType,
		Severity:       info.Severity,
		SeverityText:   info.Severity.String(),
		Title:          title,
		Description:    description,
		Impact:         info.Impact,
		Recommendation: info.Recommendation,
		Value:          value,
		Location:       location,
	})

	switch info.Severity {
	case SeverityCritical:
		r.CriticalCount++
	case SeverityHigh:
		r.HighCount++
	case SeverityMedium:
		r.MediumCount++
	case SeverityLow:
		r.LowCount++
	case SeverityInfo:
		r.InfoCount++
	}
}

// TotalFindings returns the total number of findings.
func (r *AnalysisReport) TotalFindings() int {
	return len(r.Findings)
}

// HasFindings returns true if there are any findings.
func (r *AnalysisReport) HasFindings() bool {
	return len(r.Findings) > 0
}

// FindingsBySeverity returns findings filtered by severity.
func (r *AnalysisReport) FindingsBySeverity(severity Severity) []Finding {
	var result []Finding
	for _, f := range r.Findings {
		if f.Severity == severity {
			result = append(result, f)
		}
	}
	return result
}

// SectionCount returns the number of indexed homepage sections.
func (r *AnalysisReport) SectionCount() int {
	n := 0
	for _, doc := range r.Documents {
		if doc.Document.Type == TypeSection {
			n++
		}
	}
	return n
}

// PageCount returns the number of indexed documentation pages.
func (r *AnalysisReport) PageCount() int {
	n := 0
	for _, doc := range r.Documents {
		if doc.Document.Type == TypePage {
			n++
		}
	}
	return n
}
