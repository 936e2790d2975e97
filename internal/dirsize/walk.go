package dirsize

import (
	"io/fs"
	"path/filepath"
)

// walker holds the read-only configuration shared by every node of a scan.
// Each node owns its own accumulator and returns its result to the parent,
// so no result state is shared between goroutines.
type walker struct {
	patterns Patterns
	pool     *pool
	tally    *tally
	log      logger
	// list reads a directory, os.ReadDir outside of tests.
	list func(name string) ([]fs.DirEntry, error)
}

// subtree is the result of scanning one directory.
type subtree struct {
	// total is the sum of file bytes below the directory.
	total uint64
	// entries lists every file and directory below it, itself excluded.
	entries []Entry
}

// readDir lists the children of dir that are not excluded at depth.
// A directory that cannot be read yields whatever was listed before the
// failure, usually nothing.
func (w *walker) readDir(dir string, depth int) []fs.DirEntry {
	entries, err := w.list(dir)
	if err != nil {
		w.tally.skipped.Add(1)
		w.log.printf("[debug]: error reading directory %s: %v\n", filepath.ToSlash(dir), err)
	}

	kept := entries[:0]

	for _, d := range entries {
		if w.patterns.Excluded(depth, d.Name(), true) {
			w.log.printf("[debug]: excluding %s\n", filepath.ToSlash(filepath.Join(dir, d.Name())))

			continue
		}

		kept = append(kept, d)
	}

	return kept
}

// probe resolves a listed entry and records it.
func (w *walker) probe(path string, d fs.DirEntry) Probe {
	probe := ProbeEntry(d)

	w.tally.record(probe)

	if probe.Skipped() {
		w.log.printf("[debug]: skipping %s: %v\n", filepath.ToSlash(path), probe.Reason)
	}

	return probe
}

// aggregate returns the sum of file bytes under path, path included when it
// is itself a file. Unreadable nodes count as zero.
func (w *walker) aggregate(path string, depth int) uint64 {
	probe := ProbePath(path)
	if probe.Kind != KindDir {
		return probe.Size
	}

	return w.aggregateDir(path, depth)
}

// aggregateDir sums the file bytes below dir without materializing entries.
func (w *walker) aggregateDir(dir string, depth int) uint64 {
	children := w.readDir(dir, depth)
	sizes := make([]uint64, len(children))

	w.pool.each(len(children), func(i int) {
		path := filepath.Join(dir, children[i].Name())

		switch probe := w.probe(path, children[i]); probe.Kind {
		case KindFile:
			sizes[i] = probe.Size
		case KindDir:
			sizes[i] = w.aggregateDir(path, depth+1)
		case KindOther:
		}
	})

	var total uint64
	for _, size := range sizes {
		total += size
	}

	return total
}

// scan walks dir and returns its subtree total together with an entry for
// every file and directory below it.
func (w *walker) scan(dir string, depth int) subtree {
	children := w.readDir(dir, depth)
	results := make([]subtree, len(children))

	w.pool.each(len(children), func(i int) {
		name := children[i].Name()
		path := filepath.Join(dir, name)

		switch probe := w.probe(path, children[i]); probe.Kind {
		case KindFile:
			results[i] = subtree{
				total:   probe.Size,
				entries: []Entry{{Name: name, Size: probe.Size, Path: path}},
			}
		case KindDir:
			sub := w.scan(path, depth+1)
			sub.entries = append(sub.entries, Entry{Name: name, Size: sub.total, IsDir: true, Path: path})
			results[i] = sub
		case KindOther:
		}
	})

	return merge(results)
}

// merge sums the totals and concatenates the entries of sibling subtrees.
func merge(parts []subtree) subtree {
	count := 0
	for _, part := range parts {
		count += len(part.entries)
	}

	merged := subtree{entries: make([]Entry, 0, count)}

	for _, part := range parts {
		merged.total += part.total
		merged.entries = append(merged.entries, part.entries...)
	}

	return merged
}
