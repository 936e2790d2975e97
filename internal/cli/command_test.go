package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// run executes the command with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := New("v1.2.3").Command()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// writeTree creates root/{a.txt(10 bytes), sub/b.txt(20 bytes), build/c(5 bytes)}.
func writeTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), make([]byte, 10), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), make([]byte, 20), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "build", "c"), make([]byte, 5), 0o644))

	return root
}

func decodeReport(t *testing.T, out string) dirsize.Report {
	t.Helper()

	var report dirsize.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	return report
}

func TestCommandVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", out)
}

func TestCommandJSON(t *testing.T) {
	t.Parallel()

	root := writeTree(t)

	out, err := run(t, "--json", "--path", root)
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, root, report.Path)
	assert.Equal(t, uint64(35), report.TotalSize)
	assert.Len(t, report.Entries, 3)
}

func TestCommandPositionalPathWins(t *testing.T) {
	t.Parallel()

	root := writeTree(t)

	out, err := run(t, "-j", "-p", filepath.Join(root, "missing"), filepath.Join(root, "sub"))
	require.NoError(t, err)
	assert.Equal(t, uint64(20), decodeReport(t, out).TotalSize)
}

func TestCommandRecursiveExcludeSorted(t *testing.T) {
	t.Parallel()

	root := writeTree(t)

	out, err := run(t, "-r", "-s", "-j", "-e", "build", "-e", "nothing", root)
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, uint64(30), report.TotalSize)
	assert.Equal(t, []dirsize.Entry{
		{Name: "b.txt", Size: 20, Path: filepath.Join(root, "sub", "b.txt")},
		{Name: "sub", Size: 20, IsDir: true, Path: filepath.Join(root, "sub")},
		{Name: "a.txt", Size: 10, Path: filepath.Join(root, "a.txt")},
	}, report.Entries)
}

func TestCommandJSONSummary(t *testing.T) {
	t.Parallel()

	root := writeTree(t)

	out, err := run(t, "--recursive", "--summary", "--json", root)
	require.NoError(t, err)

	var summary dirsize.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, dirsize.Summary{Path: root, TotalSize: 35, ItemCount: 5, FileCount: 3, DirCount: 2}, summary)
}

func TestCommandText(t *testing.T) {
	t.Parallel()

	root := writeTree(t)

	out, err := run(t, "--chart", "--sort", root)
	require.NoError(t, err)

	assert.Contains(t, out, "Directory: "+root)
	assert.Contains(t, out, "Total size: 35 B")
	assert.Contains(t, out, "Total: 3 items")
	assert.Contains(t, out, "█")
}

func TestCommandNotFound(t *testing.T) {
	t.Parallel()

	_, err := run(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, dirsize.ErrNotFound)
}

func TestCommandInvalidArguments(t *testing.T) {
	t.Parallel()

	_, err := run(t, "a", "b")
	require.Error(t, err)

	_, err = run(t, "--workers=-1", t.TempDir())
	require.EqualError(t, err, "workers cannot be negative")
}

func TestCommandEnvironment(t *testing.T) {
	root := writeTree(t)

	t.Setenv("DIRSIZE_EXCLUDE", "build sub")
	t.Setenv("DIRSIZE_JSON", "true")

	out, err := run(t, root)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), decodeReport(t, out).TotalSize)

	// Flags win over the environment.
	out, err = run(t, "-e", "sub", root)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), decodeReport(t, out).TotalSize)
}

func TestCommandConfigFile(t *testing.T) {
	t.Parallel()

	root := writeTree(t)
	config := filepath.Join(t.TempDir(), "dirsize.yaml")
	require.NoError(t, os.WriteFile(config, []byte("json: true\nrecursive: true\nexclude:\n  - build\n"), 0o644))

	out, err := run(t, "--config", config, root)
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, uint64(30), report.TotalSize)
	assert.Len(t, report.Entries, 3)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), root)
	require.Error(t, err)
}
