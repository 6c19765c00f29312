package loader

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/contentscan/contentscan/internal/config"
	"github.com/contentscan/contentscan/internal/model"
)

// File extensions the loader recognizes as documentation pages.
var pageExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// SiteLoader loads a documentation site's documents from its source tree
// and the hand-authored content tables. It implements analyzer.Source.
type SiteLoader struct {
	// root is the site source directory.
	root string

	// site holds the content tables and per-page overrides. May be nil,
	// in which case only filesystem pages are loaded.
	site *config.File

	// logger receives diagnostics for pages that could not be fully
	// parsed. Never nil.
	logger *slog.Logger
}

// Option configures a SiteLoader.
type Option func(*SiteLoader)

// WithSiteFile sets the content tables and overrides.
func WithSiteFile(site *config.File) Option {
	return func(l *SiteLoader) { l.site = site }
}

// WithLogger sets the loader's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *SiteLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a SiteLoader for the given site root.
func New(root string, opts ...Option) *SiteLoader {
	l := &SiteLoader{
		root:   root,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the homepage sections and documentation pages for the site.
//
// Sections come first, in content table order, then pages in lexical walk
// order. That ordering becomes the index insertion order, which breaks
// ranking ties, so it must be deterministic across runs.
//
// A page that fails to parse is still returned, with defaults derived
// from its path, and the failure is logged. Only a missing or unreadable
// site root fails the whole load.
func (l *SiteLoader) Load(ctx context.Context) ([]model.Document, error) {
	if _, err := os.Stat(l.root); err != nil {
		return nil, fmt.Errorf("site root %s: %w", l.root, err)
	}

	docs := l.sectionDocuments()

	pages, err := l.pageDocuments(ctx)
	if err != nil {
		return nil, err
	}
	docs = append(docs, pages...)

	l.logger.Debug("site loaded",
		"root", l.root,
		"sections", len(docs)-len(pages),
		"pages", len(pages))
	return docs, nil
}

// sectionDocuments converts the content table's sections to documents.
func (l *SiteLoader) sectionDocuments() []model.Document {
	if l.site == nil {
		return nil
	}

	docs := make([]model.Document, 0, len(l.site.Sections))
	for _, s := range l.site.Sections {
		if s.ID == "" {
			l.logger.Warn("section without id skipped", "title", s.Title)
			continue
		}
		url := s.URL
		if url == "" {
			url = "/" + s.ID
		}
		docs = append(docs, model.Document{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Body:        s.Body,
			Tags:        s.Tags,
			URL:         url,
			Type:        model.TypeSection,
		})
	}
	return docs
}

// pageDocuments walks the site root and loads every recognized page.
func (l *SiteLoader) pageDocuments(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := d.Name()
		if d.IsDir() {
			if path != l.root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !pageExtensions[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if l.ignored(rel) {
			return nil
		}

		doc, include := l.loadPage(path, rel)
		if include {
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// ignored reports whether a site-relative path matches an ignore pattern.
// Patterns use filepath.Match syntax and are tried against both the full
// relative path and the base name.
func (l *SiteLoader) ignored(rel string) bool {
	if l.site == nil {
		return false
	}
	base := filepath.Base(rel)
	for _, pattern := range l.site.IgnorePatterns {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// loadPage reads and parses a single page file. The returned bool is
// false when the page is excluded (skip override or draft).
func (l *SiteLoader) loadPage(path, rel string) (model.Document, bool) {
	doc := model.Document{
		ID:         rel,
		Title:      defaultTitle(rel),
		URL:        l.pageURL(rel),
		Type:       model.TypePage,
		SourcePath: path,
	}

	data, err := os.ReadFile(path) //nolint:gosec // Paths come from walking the user's site root
	if err != nil {
		l.logger.Warn("page unreadable, registered with defaults",
			"path", rel, "error", err)
		return l.applyOverride(doc, rel)
	}

	switch strings.ToLower(filepath.Ext(rel)) {
	case ".md", ".markdown":
		page, err := parseMarkdown(data)
		if err != nil {
			l.logger.Warn("markdown parse failed, registered with defaults",
				"path", rel, "error", err)
			break
		}
		if page.Draft {
			l.logger.Debug("draft page skipped", "path", rel)
			return model.Document{}, false
		}
		if page.Title != "" {
			doc.Title = page.Title
		}
		doc.Description = page.Description
		doc.Body = page.Body
		doc.Tags = page.Tags
		if page.URL != "" {
			doc.URL = page.URL
		}
	case ".html", ".htm":
		page, err := parseHTML(data)
		if err != nil {
			l.logger.Warn("html parse failed, registered with defaults",
				"path", rel, "error", err)
			break
		}
		if page.Title != "" {
			doc.Title = page.Title
		}
		doc.Description = page.Description
		doc.Body = page.Body
		doc.Tags = page.Tags
	}

	return l.applyOverride(doc, rel)
}

// applyOverride applies the content table's per-page override, if any.
func (l *SiteLoader) applyOverride(doc model.Document, rel string) (model.Document, bool) {
	override, ok := l.site.PageOverrideFor(rel)
	if !ok {
		return doc, true
	}
	if override.Skip {
		l.logger.Debug("page skipped by override", "path", rel)
		return model.Document{}, false
	}
	if override.Title != "" {
		doc.Title = override.Title
	}
	if override.Description != "" {
		doc.Description = override.Description
	}
	if len(override.Tags) > 0 {
		doc.Tags = override.Tags
	}
	if override.URL != "" {
		doc.URL = override.URL
	}
	return doc, true
}

// pageURL derives the site URL for a page from its relative path.
// The extension is dropped and "index" pages map to their directory.
func (l *SiteLoader) pageURL(rel string) string {
	url := strings.TrimSuffix(rel, filepath.Ext(rel))
	if base := filepath.Base(url); base == "index" {
		url = strings.TrimSuffix(url, "index")
	}
	url = "/" + strings.Trim(url, "/")
	if l.site != nil && l.site.BaseURL != "" {
		url = strings.TrimSuffix(l.site.BaseURL, "/") + url
	}
	return url
}

// defaultTitle derives a human-readable title from a page path, used
// when the page itself yields none.
func defaultTitle(rel string) string {
	base := filepath.Base(rel)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return base
}
