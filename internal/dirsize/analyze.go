package dirsize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the file or directory to analyze.
	Path string
	// Recursive lists every node of the tree instead of the direct children only.
	Recursive bool
	// Excludes contains exact names to skip among the direct children of Path.
	Excludes []string
	// Workers bounds the concurrent filesystem work (0 = fastwalk's default).
	Workers int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Sort orders entries by size, largest first.
	Sort bool
	// JSON selects JSON output.
	JSON bool
	// Chart draws a bar per entry.
	Chart bool
	// Summary prints only the path, total and counts.
	Summary bool
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output integration script.
	Integration bool
}

// Analyze scans opt.Path and returns its report.
//
// For a file, the report holds that single file. For a directory in shallow
// mode, each direct child is one entry and child directories carry the total
// of their whole subtree. In recursive mode every file and directory below
// the root is an entry, and the total counts file entries only.
//
// Only a missing root fails, with a *NotFoundError. Unreadable nodes below
// the root count as empty. The scan always runs to completion; ctx bounds
// the progress reporter, which calls progressHook if provided.
func Analyze(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Report, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	root := filepath.Clean(opt.Path)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: root}
		}

		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	}

	if !info.IsDir() {
		return fileReport(root, info), nil
	}

	if opt.Workers <= 0 {
		opt.Workers = fastwalk.DefaultNumWorkers()
	}

	counts := &tally{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, counts, progressHook, opt.ProgressInterval)

	walk := &walker{
		patterns: NewPatterns(opt.Excludes),
		pool:     newPool(opt.Workers),
		tally:    counts,
		log:      log,
		list:     os.ReadDir,
	}

	log.printf("[debug]: path: %s\n", filepath.ToSlash(root))
	log.printf("[debug]: recursive: %t, workers: %d\n", opt.Recursive, opt.Workers)
	log.printf("[debug]: excluded names:\n")

	for name := range walk.patterns {
		log.printf("[debug]:   - %s\n", name)
	}

	start := time.Now()

	var report *Report
	if opt.Recursive {
		report = walk.recursive(root)
	} else {
		report = walk.shallow(root)
	}

	log.printf("[debug]: %d files, %d directories, %d skipped, %d bytes in %v\n",
		counts.files.Load(), counts.dirs.Load(), counts.skipped.Load(), report.TotalSize, time.Since(start))

	return report, nil
}

// fileReport describes a root that is not a directory.
func fileReport(root string, info fs.FileInfo) *Report {
	name := filepath.Base(root)
	if name == "." || name == string(filepath.Separator) {
		name = root
	}

	size := uint64(info.Size()) //nolint:gosec // Sizes reported by stat are never negative

	return &Report{
		TotalSize: size,
		Entries:   []Entry{{Name: name, Size: size, Path: root}},
		Path:      root,
	}
}

// shallow lists the direct children of root, collapsing each child directory
// into one entry sized by its subtree.
func (w *walker) shallow(root string) *Report {
	children := w.readDir(root, 0)
	found := make([]Entry, len(children))
	ok := make([]bool, len(children))

	w.pool.each(len(children), func(i int) {
		name := children[i].Name()
		path := filepath.Join(root, name)

		switch probe := w.probe(path, children[i]); probe.Kind {
		case KindFile:
			found[i], ok[i] = Entry{Name: name, Size: probe.Size, Path: path}, true
		case KindDir:
			found[i], ok[i] = Entry{Name: name, Size: w.aggregate(path, 1), IsDir: true, Path: path}, true
		case KindOther:
		}
	})

	report := &Report{Entries: make([]Entry, 0, len(children)), Path: root}

	for i, entry := range found {
		if !ok[i] {
			continue
		}

		report.Entries = append(report.Entries, entry)
		report.TotalSize += entry.Size
	}

	return report
}

// recursive lists every node below root. Directory entries are left out of
// the total since their sizes repeat the file entries below them.
func (w *walker) recursive(root string) *Report {
	tree := w.scan(root, 0)
	report := &Report{Entries: tree.entries, Path: root}

	for _, entry := range tree.entries {
		if !entry.IsDir {
			report.TotalSize += entry.Size
		}
	}

	return report
}
