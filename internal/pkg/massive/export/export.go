// Package export writes per-file, per-language XLSX exports of a JSONL corpus.
//
// Every input file produces one spreadsheet with the columns
// id, utt, annot_utt, containing the records whose locale
// belongs to the selected language.
package export

import (
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/firdawws/massive-tools/internal/pkg/filesystem"
	"github.com/firdawws/massive-tools/internal/pkg/massive"
)

const FileExtension = ".xlsx"

type Options struct {
	InputDir  string `flag:"input-dir" validate:"required"`
	OutputDir string `flag:"output-dir" validate:"required"`
	Language  string `flag:"language" validate:"required"`
}

// Result of one exported file.
type Result struct {
	InputPath  string
	OutputPath string
	Records    int
}

type Summary struct {
	Results []Result
	Records int
}

// Run exports every JSONL file from the input directory.
// An output file is written for every input file, even if no record matches.
func Run(fs filesystem.Fs, logger *zap.SugaredLogger, o Options) (*Summary, error) {
	files, err := massive.ReadDir(fs, o.InputDir)
	if err != nil {
		return nil, err
	}

	if err := fs.Mkdir(o.OutputDir); err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, file := range files {
		var matched []*massive.Record
		for _, record := range file.Records {
			if record.Language() == o.Language {
				matched = append(matched, record)
			}
		}

		content, err := sheetContent(matched)
		if err != nil {
			return nil, err
		}

		// Output name = language code + input file stem
		path := filesystem.Join(o.OutputDir, o.Language+file.Stem()+FileExtension)
		if err := fs.WriteFile(path, content); err != nil {
			return nil, err
		}

		logger.Debugf("Exported %d records from \"%s\" to \"%s\"", len(matched), file.Path, path)
		summary.Results = append(summary.Results, Result{InputPath: file.Path, OutputPath: path, Records: len(matched)})
		summary.Records += len(matched)
	}

	return summary, nil
}

// sheetContent builds a single-sheet XLSX document,
// a header row and one row per record.
func sheetContent(records []*massive.Record) (string, error) {
	doc := excelize.NewFile()
	defer func() {
		_ = doc.Close()
	}()

	sheet := doc.GetSheetName(0)
	header := []interface{}{massive.FieldID, massive.FieldUtt, massive.FieldAnnotUtt}
	if err := doc.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", err
	}

	for index, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return "", err
		}

		row := []interface{}{record.ID(), record.Utt(), record.AnnotUtt()}
		if err := doc.SetSheetRow(sheet, cell, &row); err != nil {
			return "", err
		}
	}

	buffer, err := doc.WriteToBuffer()
	if err != nil {
		return "", err
	}
	return buffer.String(), nil
}
