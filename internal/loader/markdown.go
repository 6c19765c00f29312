package loader

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML block between "---" fences at the top of a
// Markdown page. All fields are optional.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	URL         string   `yaml:"url"`
	Draft       bool     `yaml:"draft"`
}

// markdownPage is the content extracted from a single Markdown file.
type markdownPage struct {
	Title       string
	Description string
	Body        string
	Tags        []string
	URL         string
	Draft       bool
}

// parseMarkdown extracts the indexable content from a Markdown source.
//
// The title is the front matter title, falling back to the first heading.
// The description is the front matter description, falling back to the
// first paragraph. The body is the plain text of every block, headings
// included, so keyword extraction sees the full page.
func parseMarkdown(src []byte) (*markdownPage, error) {
	page := &markdownPage{}

	rest, err := parseFrontMatter(src, page)
	if err != nil {
		return nil, err
	}
	src = rest

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var body strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			if page.Title == "" {
				page.Title = title
			}
			appendBlock(&body, title)
		case *ast.Paragraph:
			t := blockText(n, src)
			if page.Description == "" {
				page.Description = t
			}
			appendBlock(&body, t)
		default:
			appendBlock(&body, blockText(n, src))
		}
	}
	page.Body = body.String()

	return page, nil
}

// frontMatterFence delimits the YAML front matter block.
const frontMatterFence = "---"

// parseFrontMatter strips and decodes a leading YAML front matter block,
// returning the remaining Markdown source. Sources without a block are
// returned unchanged.
func parseFrontMatter(src []byte, page *markdownPage) ([]byte, error) {
	trimmed := bytes.TrimPrefix(src, []byte("\ufeff"))
	if !bytes.HasPrefix(trimmed, []byte(frontMatterFence+"\n")) &&
		!bytes.HasPrefix(trimmed, []byte(frontMatterFence+"\r\n")) {
		return src, nil
	}

	after := trimmed[len(frontMatterFence):]
	idx := bytes.Index(after, []byte("\n"+frontMatterFence))
	if idx < 0 {
		// Unterminated fence. Treat the whole file as Markdown.
		return src, nil
	}

	var fm frontMatter
	if err := yaml.Unmarshal(after[:idx], &fm); err != nil {
		return nil, err
	}

	page.Title = fm.Title
	page.Description = fm.Description
	page.Tags = fm.Tags
	page.URL = fm.URL
	page.Draft = fm.Draft

	rest := after[idx+1+len(frontMatterFence):]
	if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		rest = nil
	}
	return rest, nil
}

// blockText gets the plain text content of a goldmark AST node, raw
// block lines plus inline text children.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}

func appendBlock(b *strings.Builder, t string) {
	if t == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString(t)
}
