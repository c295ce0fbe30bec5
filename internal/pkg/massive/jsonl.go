package massive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/firdawws/massive-tools/internal/pkg/filesystem"
)

// FileExtension of the input files.
const FileExtension = ".jsonl"

// File is one parsed JSONL input file.
type File struct {
	Path    string
	Records []*Record
}

// Stem returns the file name without directory and extension.
func (f *File) Stem() string {
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFile parses JSONL content, one record per line, blank lines are skipped.
// A malformed line aborts the whole parse.
func ParseFile(path string, content string) ([]*Record, error) {
	var records []*Record
	for index, line := range strings.Split(content, "\n") {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		record, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("malformed record \"%s:%d\": %w", path, index+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// ReadDir reads and parses all JSONL files from the directory, in file name order.
func ReadDir(fs filesystem.Fs, dir string) ([]*File, error) {
	if !fs.IsDir(dir) {
		return nil, fmt.Errorf("input directory \"%s\" not found", dir)
	}

	items, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []*File
	for _, item := range items {
		if item.IsDir() || !strings.HasSuffix(item.Name(), FileExtension) {
			continue
		}

		path := filesystem.Join(dir, item.Name())
		content, err := fs.ReadFile(path)
		if err != nil {
			return nil, err
		}

		records, err := ParseFile(path, content)
		if err != nil {
			return nil, err
		}

		files = append(files, &File{Path: path, Records: records})
	}

	return files, nil
}

// MarshalLines serializes records to JSONL, one ASCII-escaped JSON object per line.
func MarshalLines(records []*Record) (string, error) {
	var out strings.Builder
	for _, record := range records {
		line, err := record.MarshalASCII()
		if err != nil {
			return "", err
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String(), nil
}
