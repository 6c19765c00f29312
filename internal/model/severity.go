package model

// Severity represents the impact level of a content-health finding.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates informational findings with no maintenance impact.
	// Examples: documents with very short bodies, single-keyword documents.
	SeverityInfo Severity = iota

	// SeverityLow indicates minor issues worth cleaning up eventually.
	// Examples: EXIF software tags in published images, missing descriptions.
	SeverityLow

	// SeverityMedium indicates issues that degrade discoverability.
	// Examples: untagged documents, documents with no outgoing related content.
	SeverityMedium

	// SeverityHigh indicates issues that hurt readers or leak device details.
	// Examples: orphan documents unreachable from any related-content widget,
	// device serial numbers in image EXIF data.
	SeverityHigh

	// SeverityCritical indicates findings that must be fixed before publishing.
	// Examples: GPS coordinates embedded in site images.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// FindingInfo contains metadata about a finding type: its severity, why it
// matters, and how to address it.
type FindingInfo struct {
	Severity       Severity
	Impact         string
	Recommendation string
}

// findingInfoMapping maps finding types to their metadata.
// This centralized mapping keeps impact assessment consistent across the
// health checks and the report writers.
var findingInfoMapping = map[string]FindingInfo{
	// CRITICAL - must be fixed before publishing
	"exif_gps": {
		Severity:       SeverityCritical,
		Impact:         "A published image embeds GPS coordinates in its EXIF metadata, revealing where the photo was taken.",
		Recommendation: "Strip EXIF metadata from all site images before publishing (e.g. exiftool -all=).",
	},

	// HIGH - hurts readers or leaks device details
	"exif_serial": {
		Severity:       SeverityHigh,
		Impact:         "A published image embeds a device serial number, a unique identifier that links photos to a specific device.",
		Recommendation: "Strip EXIF metadata from all site images before publishing.",
	},
	"orphan_document": {
		Severity:       SeverityHigh,
		Impact:         "No other document recommends this page, so readers can only reach it through navigation or search.",
		Recommendation: "Add shared tags or overlapping terminology so related-content widgets can surface the page.",
	},

	// MEDIUM - degrades discoverability
	"untagged_document": {
		Severity:       SeverityMedium,
		Impact:         "The document carries no tags, so it never receives the shared-tag relevance bonus.",
		Recommendation: "Add at least one curated tag in the content table or page front matter.",
	},
	"isolated_document": {
		Severity:       SeverityMedium,
		Impact:         "The document has no related content above the relevance threshold; its widget renders empty.",
		Recommendation: "Review the document's wording and tags for overlap with the rest of the site.",
	},
	"missing_title": {
		Severity:       SeverityMedium,
		Impact:         "The document has no title; widgets and search results fall back to the raw identifier.",
		Recommendation: "Add a top-level heading or a title entry in the content table.",
	},
	"exif_camera": {
		Severity:       SeverityMedium,
		Impact:         "A published image embeds camera make/model information.",
		Recommendation: "Strip EXIF metadata from all site images before publishing.",
	},

	// LOW - cosmetic or minor hygiene
	"missing_description": {
		Severity:       SeverityLow,
		Impact:         "The document has no description; previews and meta tags render without a summary.",
		Recommendation: "Add a meta description or an introductory paragraph.",
	},
	"exif_software": {
		Severity:       SeverityLow,
		Impact:         "A published image embeds editing-software information.",
		Recommendation: "Strip EXIF metadata from all site images before publishing.",
	},
	"exif_metadata": {
		Severity:       SeverityLow,
		Impact:         "A published image carries EXIF metadata, adding weight and potentially leaking details.",
		Recommendation: "Strip EXIF metadata from all site images before publishing.",
	},

	// INFO
	"empty_keywords": {
		Severity:       SeverityInfo,
		Impact:         "No keywords could be extracted from the document, so it can only match through tags.",
		Recommendation: "Add descriptive body text, or accept tag-only matching for this document.",
	},
	"thin_content": {
		Severity:       SeverityInfo,
		Impact:         "The document body is very short; extracted keywords may not represent it well.",
		Recommendation: "Expand the document or fold it into a larger page.",
	},
}

// GetFindingInfo returns the metadata for the given finding type.
// Unknown types default to informational severity with empty guidance.
func GetFindingInfo(findingType string) FindingInfo {
	if info, ok := findingInfoMapping[findingType]; ok {
		return info
	}
	return FindingInfo{Severity: SeverityInfo}
}
