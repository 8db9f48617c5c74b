package corpus

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractText strips markup from an HTML document, returning the
// concatenated visible text. Script and style bodies are dropped. Used
// for corpora of saved web pages; plain-text corpora pass through
// untouched apart from a parse.
func ExtractText(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return src
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return b.String()
}

// HTMLSource wraps a Source, extracting visible text from each block.
type HTMLSource struct {
	inner Source
}

// NewHTMLSource wraps src with HTML text extraction.
func NewHTMLSource(src Source) *HTMLSource {
	return &HTMLSource{inner: src}
}

// Next implements Source.
func (s *HTMLSource) Next() (Block, error) {
	b, err := s.inner.Next()
	if err != nil {
		return b, err
	}
	b.Text = ExtractText(b.Text)
	return b, nil
}
