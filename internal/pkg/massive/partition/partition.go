// Package partition splits a JSONL corpus into per-language, per-split files.
//
// For every (language, partition) pair one output file is written,
// named "<language>-<partition>.jsonl", holding all matching records
// with their original content, ASCII-escaped.
package partition

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/firdawws/massive-tools/internal/pkg/filesystem"
	"github.com/firdawws/massive-tools/internal/pkg/massive"
)

type Options struct {
	InputDir   string   `flag:"input-dir" validate:"required"`
	OutputDir  string   `flag:"output-dir" validate:"required"`
	Languages  []string `flag:"languages" validate:"min=1"`
	Partitions []string `flag:"partitions" validate:"min=1"`
}

// Result of one generated (language, partition) file.
type Result struct {
	Language  string
	Partition string
	Path      string
	Records   int
}

type Summary struct {
	Results []Result
	Records int
}

// Run partitions all JSONL files from the input directory.
// A record belongs to a (language, partition) pair if its locale language
// equals the language code and its partition field equals the partition name.
// An output file is written for every pair, even if no record matches.
func Run(fs filesystem.Fs, logger *zap.SugaredLogger, o Options) (*Summary, error) {
	files, err := massive.ReadDir(fs, o.InputDir)
	if err != nil {
		return nil, err
	}

	if err := fs.Mkdir(o.OutputDir); err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, language := range o.Languages {
		for _, partition := range o.Partitions {
			var matched []*massive.Record
			for _, file := range files {
				for _, record := range file.Records {
					if record.Language() == language && record.Partition() == partition {
						matched = append(matched, record)
					}
				}
			}

			content, err := massive.MarshalLines(matched)
			if err != nil {
				return nil, err
			}

			path := filesystem.Join(o.OutputDir, fmt.Sprintf("%s-%s%s", language, partition, massive.FileExtension))
			if err := fs.WriteFile(path, content); err != nil {
				return nil, err
			}

			logger.Infof("Generated \"%s\" with %d records", path, len(matched))
			summary.Results = append(summary.Results, Result{Language: language, Partition: partition, Path: path, Records: len(matched)})
			summary.Records += len(matched)
		}
	}

	return summary, nil
}
