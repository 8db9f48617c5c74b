// Package corpus yields text blocks from a file corpus, one block per
// document, read lazily so memory stays bounded in corpus size.
package corpus

import (
	"fmt"
	"io"
	"os"
)

// Block is one logical document of the corpus.
type Block struct {
	Path string
	Text string
}

// Source yields blocks in enumeration order. Next returns io.EOF when
// the corpus is exhausted; any other error identifies a single
// unreadable block and the caller may keep pulling.
type Source interface {
	Next() (Block, error)
}

// FileSource yields the given paths in order, reading each file only
// when it is pulled.
type FileSource struct {
	paths []string
	pos   int
}

// NewFileSource creates a source over an explicit ordered path list.
func NewFileSource(paths []string) *FileSource {
	return &FileSource{paths: paths}
}

// Next implements Source.
func (s *FileSource) Next() (Block, error) {
	if s.pos >= len(s.paths) {
		return Block{}, io.EOF
	}
	path := s.paths[s.pos]
	s.pos++

	data, err := os.ReadFile(path)
	if err != nil {
		return Block{Path: path}, fmt.Errorf("read block %s: %w", path, err)
	}
	return Block{Path: path, Text: string(data)}, nil
}
