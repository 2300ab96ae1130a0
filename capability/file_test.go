package capability

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReaderReadsText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("  line one\nline two  \n"), 0o644))

	r := NewFileReader()
	out, err := r.Call(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", out)
}

func TestFileReaderMissingFile(t *testing.T) {
	r := NewFileReader()
	out, err := r.Call(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err, "a missing file is an observation, not a failure")
	assert.True(t, strings.HasPrefix(out, "File not found: "), "got %q", out)
}

func TestFileReaderUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binary.exe")
	require.NoError(t, os.WriteFile(path, []byte("MZ"), 0o644))

	r := NewFileReader()
	out, err := r.Call(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Unsupported file type: .exe", out)
}

func TestFileReaderCapsOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.md")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 20000)), 0o644))

	r := NewFileReader()
	out, err := r.Call(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, out, readMaxChars)
}

func TestFileWriterWritesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "summary.txt")

	w := NewFileWriter()
	out, err := w.Call(context.Background(), `"`+path+`", "Sales increased by 15% in Q1."`)
	require.NoError(t, err)
	assert.Equal(t, "Content written to "+path+" successfully.", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sales increased by 15% in Q1.", string(data))
}

func TestFileWriterMultilineContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "multi.txt")

	w := NewFileWriter()
	_, err := w.Call(context.Background(), `"`+path+`", "line one
line two"`)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", string(data))
}

func TestFileWriterOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	w := NewFileWriter()
	_, err := w.Call(context.Background(), `"`+path+`", "new"`)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestFileWriterBadFormat(t *testing.T) {
	w := NewFileWriter()
	_, err := w.Call(context.Background(), "no quotes here")
	assert.ErrorContains(t, err, "invalid format")

	_, err = w.Call(context.Background(), `"only-a-path.txt"`)
	assert.ErrorContains(t, err, "invalid format")
}
