package corpus

import (
	"io"
	"strings"
	"testing"
)

func TestExtractText(t *testing.T) {
	src := `<html><head><style>body{color:red}</style></head>
<body><h1>Title</h1><p>First paragraph.</p><script>alert(1)</script></body></html>`

	got := ExtractText(src)
	if !strings.Contains(got, "Title") || !strings.Contains(got, "First paragraph.") {
		t.Errorf("visible text missing: %q", got)
	}
	if strings.Contains(got, "alert") || strings.Contains(got, "color:red") {
		t.Errorf("script/style leaked: %q", got)
	}
}

func TestExtractTextPlain(t *testing.T) {
	got := ExtractText("just plain text")
	if !strings.Contains(got, "just plain text") {
		t.Errorf("plain text lost: %q", got)
	}
}

type stubSource struct {
	blocks []Block
	pos    int
}

func (s *stubSource) Next() (Block, error) {
	if s.pos >= len(s.blocks) {
		return Block{}, io.EOF
	}
	b := s.blocks[s.pos]
	s.pos++
	return b, nil
}

func TestHTMLSource(t *testing.T) {
	inner := &stubSource{blocks: []Block{
		{Path: "p1", Text: "<p>hello</p>"},
	}}

	src := NewHTMLSource(inner)
	b, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.Text, "hello") || strings.Contains(b.Text, "<p>") {
		t.Errorf("text = %q", b.Text)
	}
	if _, err := src.Next(); err != io.EOF {
		t.Errorf("err = %v, want EOF", err)
	}
}
