package capability

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const readMaxChars = 8000

var readableExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".csv": true,
}

// FileReader reads the content of a local text file.
type FileReader struct {
	maxChars int
}

// NewFileReader returns the file reading capability.
func NewFileReader() *FileReader {
	return &FileReader{maxChars: readMaxChars}
}

func (f *FileReader) Name() string {
	return "read_file_content"
}

func (f *FileReader) Description() string {
	return "Read content from a local file.\n" +
		"Example:\n" +
		"Action: read_file_content: notes.txt"
}

// Call returns the file's content, or a descriptive observation when the
// file is missing or has a type the agent cannot read.
func (f *FileReader) Call(_ context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Sprintf("File not found: %s", path), nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !readableExtensions[ext] {
		return fmt.Sprintf("Unsupported file type: %s", ext), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if len(text) > f.maxChars {
		text = text[:f.maxChars]
	}
	return text, nil
}

// writeArgsRe matches the two quoted arguments: a path and the content.
// (?s) lets content span multiple lines.
var writeArgsRe = regexp.MustCompile(`(?s)^\s*"(.*?)"\s*,\s*"(.*)"\s*$`)

// FileWriter writes text to a local file, overwriting existing content.
type FileWriter struct{}

// NewFileWriter returns the file writing capability.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

func (f *FileWriter) Name() string {
	return "write_file_content"
}

func (f *FileWriter) Description() string {
	return "Write or append text to a local file.\n" +
		"Example:\n" +
		"Action: write_file_content: \"summary.txt\", \"Final summary of research\""
}

func (f *FileWriter) Call(_ context.Context, input string) (string, error) {
	m := writeArgsRe.FindStringSubmatch(input)
	if m == nil {
		return "", fmt.Errorf(`invalid format, expected: "<file_path>", "<content>"`)
	}
	path, content := m[1], m[2]

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return fmt.Sprintf("Content written to %s successfully.", path), nil
}
