package dirsize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Kind classifies a filesystem node.
type Kind uint8

const (
	// KindOther is anything that is neither a regular file nor a directory.
	KindOther Kind = iota
	// KindFile is a regular file.
	KindFile
	// KindDir is a directory.
	KindDir
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

var errIrregular = errors.New("not a regular file or directory")

// Probe is the resolved metadata of a node.
// A non-nil Reason marks the node as skipped: it contributes no bytes and
// does not appear in any listing.
type Probe struct {
	Kind   Kind
	Size   uint64
	Reason error
}

// Skipped reports whether the node is left out of the scan.
func (p Probe) Skipped() bool {
	return p.Reason != nil
}

// ProbeEntry resolves a listed directory entry. Symlinks are not followed.
func ProbeEntry(d fs.DirEntry) Probe {
	info, err := d.Info()
	if err != nil {
		return Probe{Reason: err}
	}

	return probeInfo(info)
}

// ProbePath resolves the node at path, following symlinks.
func ProbePath(path string) Probe {
	info, err := os.Stat(path)
	if err != nil {
		return Probe{Reason: err}
	}

	return probeInfo(info)
}

func probeInfo(info fs.FileInfo) Probe {
	mode := info.Mode()

	switch {
	case mode.IsRegular():
		return Probe{Kind: KindFile, Size: uint64(info.Size())} //nolint:gosec // Regular file sizes are never negative
	case mode.IsDir():
		return Probe{Kind: KindDir}
	default:
		return Probe{Reason: fmt.Errorf("%w: %v", errIrregular, mode.Type())}
	}
}
