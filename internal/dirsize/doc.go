// Package dirsize computes disk-space usage for a directory tree.
//
// It lists the direct children of a root directory in parallel, sums the
// file bytes below every child directory, and optionally flattens the whole
// tree into one entry per file and directory. Every call produces an
// immutable Report; no state survives between scans.
//
// Nodes that cannot be read are treated as empty rather than failing the
// scan. Only a root path that does not exist is an error.
package dirsize
