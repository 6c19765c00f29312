package config

// Section defines a homepage section in the hand-authored content table.
// Sections have no source file of their own; the table is their single
// source of truth, mirroring the data the homepage widgets render.
type Section struct {
	// ID is the section identifier, conventionally the anchor
	// (e.g. "#features").
	ID string `yaml:"id"`

	// Title is the section heading.
	Title string `yaml:"title"`

	// Description is a short summary of the section.
	Description string `yaml:"description,omitempty"`

	// Body is the section's free-text content used for keyword extraction.
	Body string `yaml:"body,omitempty"`

	// Tags are curated labels for the similarity tag bonus.
	Tags []string `yaml:"tags,omitempty"`

	// URL is the resolved link to the section. Defaults to "/" + ID.
	URL string `yaml:"url,omitempty"`
}

// PageOverride customizes how a documentation page is indexed.
// Keys in File.Pages are page paths relative to the site root.
type PageOverride struct {
	// Tags replace the page's tags when non-empty.
	Tags []string `yaml:"tags,omitempty"`

	// Title overrides the extracted title when non-empty.
	Title string `yaml:"title,omitempty"`

	// Description overrides the extracted description when non-empty.
	Description string `yaml:"description,omitempty"`

	// URL overrides the derived site URL when non-empty.
	URL string `yaml:"url,omitempty"`

	// Skip excludes the page from the index entirely (drafts, templates).
	Skip bool `yaml:"skip,omitempty"`
}

// File represents the structure of the .contentscan configuration file.
type File struct {
	// Sections is the homepage content table, in widget render order.
	// Order matters: it becomes the index insertion order for sections,
	// which breaks ranking ties.
	Sections []Section `yaml:"sections,omitempty"`

	// Pages maps site-relative page paths to their overrides.
	Pages map[string]PageOverride `yaml:"pages,omitempty"`

	// IgnorePatterns are path patterns (filepath.Match syntax, matched
	// against the site-relative path) excluded from loading.
	IgnorePatterns []string `yaml:"ignorePatterns,omitempty"`

	// BaseURL is prepended to derived page URLs (e.g. "/docs").
	// Section URLs and explicit overrides are used as-is.
	BaseURL string `yaml:"baseURL,omitempty"`
}

// PageOverrideFor returns the override for a page path and whether one
// exists.
func (f *File) PageOverrideFor(path string) (PageOverride, bool) {
	if f == nil || f.Pages == nil {
		return PageOverride{}, false
	}
	override, ok := f.Pages[path]
	return override, ok
}
