package corpus

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func drain(t *testing.T, src Source) ([]Block, int) {
	t.Helper()
	var blocks []Block
	errs := 0
	for {
		b, err := src.Next()
		if err == io.EOF {
			return blocks, errs
		}
		if err != nil {
			errs++
			continue
		}
		blocks = append(blocks, b)
	}
}

func TestFileSourceOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "second")
	writeFile(t, filepath.Join(dir, "a.txt"), "first")

	src := NewFileSource([]string{
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "a.txt"),
	})

	blocks, errs := drain(t, src)
	if errs != 0 {
		t.Fatalf("errs = %d", errs)
	}
	if len(blocks) != 2 || blocks[0].Text != "second" || blocks[1].Text != "first" {
		t.Errorf("blocks = %v", blocks)
	}
}

func TestFileSourceUnreadableBlockIsSkippable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.txt"), "fine")

	src := NewFileSource([]string{
		filepath.Join(dir, "missing.txt"),
		filepath.Join(dir, "ok.txt"),
	})

	blocks, errs := drain(t, src)
	if errs != 1 {
		t.Errorf("errs = %d, want 1", errs)
	}
	if len(blocks) != 1 || blocks[0].Text != "fine" {
		t.Errorf("blocks = %v", blocks)
	}
}

func TestDirSourceEnumeration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "AA", "wiki_00"), "one")
	writeFile(t, filepath.Join(root, "AA", "wiki_01"), "two")
	writeFile(t, filepath.Join(root, "AB", "wiki_00"), "three")
	writeFile(t, filepath.Join(root, "AA", "notes.md"), "ignored")

	src, err := NewDirSource(DirOptions{Root: root, Prefix: "wiki_"})
	if err != nil {
		t.Fatal(err)
	}
	if src.Len() != 3 {
		t.Errorf("len = %d, want 3", src.Len())
	}

	blocks, errs := drain(t, src)
	if errs != 0 {
		t.Fatalf("errs = %d", errs)
	}
	got := []string{blocks[0].Text, blocks[1].Text, blocks[2].Text}
	want := []string{"one", "two", "three"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDirSourceExplicitSubdirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "AA", "wiki_00"), "aa")
	writeFile(t, filepath.Join(root, "AB", "wiki_00"), "ab")

	// AM missing on disk: skipped, not an error
	src, err := NewDirSource(DirOptions{
		Root:    root,
		Subdirs: []string{"AB", "AM"},
		Prefix:  "wiki_",
	})
	if err != nil {
		t.Fatal(err)
	}

	blocks, _ := drain(t, src)
	if len(blocks) != 1 || blocks[0].Text != "ab" {
		t.Errorf("blocks = %v", blocks)
	}
}

func TestDirSourceMissingRoot(t *testing.T) {
	_, err := NewDirSource(DirOptions{Root: filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Error("expected error for missing root")
	}
}
