package texture

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
// When several files share a stem, PPM wins, then the order of Extensions.
type Index struct {
	entries map[string]string
}

// BuildIndex walks dir recursively and indexes every supported texture file.
// A missing directory yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !supported(path) {
			return nil
		}
		stem := stemOf(path)
		existing, exists := idx.entries[stem]
		if !exists || rank(path) < rank(existing) {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the path indexed for texName, or ("", false).
// Directory prefixes and extensions in texName are ignored.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	texName = strings.ReplaceAll(texName, "\\", "/")
	path, ok := idx.entries[stemOf(texName)]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

func rank(path string) int {
	return slices.Index(Extensions, strings.ToLower(filepath.Ext(path)))
}
