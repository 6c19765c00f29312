// Package loader reads a documentation site's source tree and turns it
// into the documents the analyzer indexes. Homepage sections come from
// the hand-authored content table in the configuration file; pages come
// from the Markdown and HTML files under the site root.
//
// Malformed files never abort a load. A page that cannot be parsed is
// registered with whatever could be salvaged (at minimum its path) so
// the rest of the site still gets related-content results.
package loader
