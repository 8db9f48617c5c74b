package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirSource enumerates root/<subdir>/<prefix>* lazily: the candidate
// path list is built up front (cheap), file contents are read one block
// per Next. Wikipedia extractor dumps follow this layout
// (wiki_zh/AA/wiki_00 ... wiki_zh/AM/wiki_99).
type DirSource struct {
	files *FileSource
}

// DirOptions configures corpus directory enumeration.
type DirOptions struct {
	// Root is the corpus root directory.
	Root string

	// Subdirs restricts enumeration to the named subdirectories, in
	// the given order. Empty means every subdirectory of Root in
	// lexical order.
	Subdirs []string

	// Prefix keeps only files whose name starts with it. Empty keeps
	// everything.
	Prefix string
}

// NewDirSource builds a DirSource. Missing subdirectories are skipped;
// a missing root is an error.
func NewDirSource(opts DirOptions) (*DirSource, error) {
	if _, err := os.Stat(opts.Root); err != nil {
		return nil, fmt.Errorf("corpus root %s: %w", opts.Root, err)
	}

	subdirs := opts.Subdirs
	if len(subdirs) == 0 {
		entries, err := os.ReadDir(opts.Root)
		if err != nil {
			return nil, fmt.Errorf("list corpus root %s: %w", opts.Root, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				subdirs = append(subdirs, e.Name())
			}
		}
		sort.Strings(subdirs)
	}

	var paths []string
	for _, sub := range subdirs {
		dir := filepath.Join(opts.Root, sub)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("list corpus dir %s: %w", dir, err)
		}

		var names []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if opts.Prefix != "" && !strings.HasPrefix(e.Name(), opts.Prefix) {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	return &DirSource{files: NewFileSource(paths)}, nil
}

// Len returns the number of enumerated blocks.
func (s *DirSource) Len() int {
	return len(s.files.paths)
}

// Next implements Source.
func (s *DirSource) Next() (Block, error) {
	b, err := s.files.Next()
	if err == io.EOF {
		return Block{}, io.EOF
	}
	return b, err
}
