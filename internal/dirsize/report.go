package dirsize

import (
	"cmp"
	"slices"
)

// Entry describes a single file or directory surfaced by a scan.
type Entry struct {
	// Name is the base name of the node.
	Name string `json:"name"`
	// Size is the byte length of a file, or the sum of file bytes below a directory.
	Size uint64 `json:"size"`
	// IsDir reports whether the node is a directory.
	IsDir bool `json:"is_dir"`
	// Path is the full path of the node, unique within a scan.
	Path string `json:"path"`
}

// Report is the result of a single scan.
type Report struct {
	// TotalSize is the sum of all file bytes below the root.
	TotalSize uint64 `json:"total_size"`
	// Entries holds the scanned nodes in no particular order.
	Entries []Entry `json:"entries"`
	// Path is the scanned root.
	Path string `json:"path"`
}

// Summary condenses a Report into counts.
type Summary struct {
	Path      string `json:"path"`
	TotalSize uint64 `json:"total_size"`
	ItemCount int    `json:"item_count"`
	FileCount int    `json:"file_count"`
	DirCount  int    `json:"dir_count"`
}

// Summary counts the files and directories of the report.
func (r *Report) Summary() Summary {
	summary := Summary{
		Path:      r.Path,
		TotalSize: r.TotalSize,
		ItemCount: len(r.Entries),
	}

	for _, e := range r.Entries {
		if e.IsDir {
			summary.DirCount++
		} else {
			summary.FileCount++
		}
	}

	return summary
}

// SortedBySize returns a copy of the report with entries ordered by size,
// largest first, and ties broken by name.
func (r *Report) SortedBySize() *Report {
	entries := slices.Clone(r.Entries)

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Size, a.Size); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return &Report{
		TotalSize: r.TotalSize,
		Entries:   entries,
		Path:      r.Path,
	}
}

// MaxSize returns the size of the largest entry, or 0 for an empty report.
func (r *Report) MaxSize() uint64 {
	var largest uint64

	for _, e := range r.Entries {
		largest = max(largest, e.Size)
	}

	return largest
}
