package dirsize

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeTree creates files under root. Keys are slash separated paths; a key
// ending in "/" creates an empty directory, any other key a file holding
// that many bytes.
func makeTree(t *testing.T, root string, files map[string]int) {
	t.Helper()

	for name, size := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))

			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	}
}

// newTestWalker returns a walker reading the real filesystem.
func newTestWalker(workers int, excludes ...string) *walker {
	return &walker{
		patterns: NewPatterns(excludes),
		pool:     newPool(workers),
		tally:    &tally{},
		list:     os.ReadDir,
	}
}

// denyDirs makes the walker fail to list the named directories, the way a
// permission error would.
func denyDirs(w *walker, dirs ...string) {
	list := w.list

	w.list = func(name string) ([]fs.DirEntry, error) {
		for _, dir := range dirs {
			if name == dir {
				return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
			}
		}

		return list(name)
	}
}

// tuple is the comparable part of an Entry.
type tuple struct {
	Path  string
	Size  uint64
	IsDir bool
}

// tuples converts entries for order-independent comparison.
func tuples(entries []Entry) []tuple {
	out := make([]tuple, 0, len(entries))
	for _, e := range entries {
		out = append(out, tuple{Path: e.Path, Size: e.Size, IsDir: e.IsDir})
	}

	return out
}
