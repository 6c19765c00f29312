package loader

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// htmlPage is the content extracted from a single HTML file.
type htmlPage struct {
	Title       string
	Description string
	Body        string
	Tags        []string
}

// Elements whose text is boilerplate rather than page content.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"noscript": true,
}

// parseHTML extracts the indexable content from an HTML source.
//
// The title comes from the <title> tag, falling back to the first <h1>.
// The description comes from the description meta tag. Tags come from the
// keywords meta tag, split on commas. The body is the visible text of the
// document.
//
// Design decision: We use golang.org/x/net/html rather than regex because
// it correctly handles malformed HTML, which hand-edited documentation
// pages reliably contain.
func parseHTML(src []byte) (*htmlPage, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	page := &htmlPage{}
	var body strings.Builder
	var firstHeading string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					page.Title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			case "h1":
				if firstHeading == "" {
					firstHeading = strings.TrimSpace(nodeText(n))
				}
			case "meta":
				name := getAttr(n, "name")
				if name == "" {
					name = getAttr(n, "property")
				}
				content := strings.TrimSpace(getAttr(n, "content"))
				switch strings.ToLower(name) {
				case "description", "og:description":
					if page.Description == "" {
						page.Description = content
					}
				case "keywords":
					page.Tags = splitKeywords(content)
				}
				return
			default:
				if skippedElements[n.Data] {
					return
				}
			}
		}

		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if body.Len() > 0 {
					body.WriteByte(' ')
				}
				body.WriteString(t)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if page.Title == "" {
		page.Title = firstHeading
	}
	page.Body = body.String()

	return page, nil
}

// nodeText collects the text content of a node and its children.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// splitKeywords splits a keywords meta tag value into trimmed tags.
func splitKeywords(content string) []string {
	if content == "" {
		return nil
	}
	parts := strings.Split(content, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
