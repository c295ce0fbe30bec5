package partition

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firdawws/massive-tools/internal/pkg/filesystem"
	"github.com/firdawws/massive-tools/internal/pkg/log"
)

func testOptions() Options {
	return Options{
		InputDir:   "data/dataset",
		OutputDir:  "outputs/partitions",
		Languages:  []string{"en", "sw", "de"},
		Partitions: []string{"test", "train", "dev"},
	}
}

func TestRun(t *testing.T) {
	fs := filesystem.NewMemoryFs()
	logger, buffer := log.NewDebugLogger()
	require.NoError(t, fs.WriteFile("data/dataset/a.jsonl", strings.Join([]string{
		`{"id":"1","utt":"hi","annot_utt":"[hi]","locale":"en-US","partition":"train"}`,
		`{"id":"2","utt":"jambo","annot_utt":"[jambo]","locale":"sw-KE","partition":"dev"}`,
		``,
	}, "\n")))
	require.NoError(t, fs.WriteFile("data/dataset/b.jsonl", strings.Join([]string{
		`{"id":"3","utt":"hello","annot_utt":"[hello]","locale":"en-GB","partition":"train"}`,
		`{"id":"4","utt":"hallo","annot_utt":"[hallo]","locale":"de-DE","partition":"test"}`,
		``,
	}, "\n")))

	summary, err := Run(fs, logger, testOptions())
	require.NoError(t, err)

	// One file per (language, partition) pair
	require.Len(t, summary.Results, 9)
	assert.Equal(t, 4, summary.Records)

	// Records are collected across files, in file name order
	content, err := fs.ReadFile("outputs/partitions/en-train.jsonl")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		`{"id":"1","utt":"hi","annot_utt":"[hi]","locale":"en-US","partition":"train"}`,
		`{"id":"3","utt":"hello","annot_utt":"[hello]","locale":"en-GB","partition":"train"}`,
		``,
	}, "\n"), content)

	// A pair without matches produces an empty file
	content, err = fs.ReadFile("outputs/partitions/sw-train.jsonl")
	require.NoError(t, err)
	assert.Equal(t, "", content)

	// One progress line per generated file
	assert.Contains(t, buffer.String(), `Generated "outputs/partitions/en-train.jsonl" with 2 records`)
	assert.Contains(t, buffer.String(), `Generated "outputs/partitions/sw-train.jsonl" with 0 records`)
}

func TestRunKeepsAllFieldsAndEscapesNonASCII(t *testing.T) {
	fs := filesystem.NewMemoryFs()
	logger, _ := log.NewDebugLogger()
	require.NoError(t, fs.WriteFile("data/dataset/de-DE.jsonl",
		`{"id":"5","utt":"schön","annot_utt":"[schön]","locale":"de-DE","partition":"dev","worker_id":7}`+"\n"))

	_, err := Run(fs, logger, testOptions())
	require.NoError(t, err)

	content, err := fs.ReadFile("outputs/partitions/de-dev.jsonl")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"5","utt":"sch\u00f6n","annot_utt":"[sch\u00f6n]","locale":"de-DE","partition":"dev","worker_id":7}`+"\n", content)

	// Output is plain ASCII
	for _, b := range []byte(content) {
		assert.Less(t, b, byte(0x80))
	}
}

func TestRunRecordWithoutPartitionField(t *testing.T) {
	fs := filesystem.NewMemoryFs()
	logger, _ := log.NewDebugLogger()
	require.NoError(t, fs.WriteFile("data/dataset/a.jsonl",
		`{"id":"1","utt":"hi","annot_utt":"[hi]","locale":"en-US"}`+"\n"))

	summary, err := Run(fs, logger, testOptions())
	require.NoError(t, err)

	// No pair matches, all files are generated empty
	assert.Equal(t, 0, summary.Records)
	require.Len(t, summary.Results, 9)
	for _, result := range summary.Results {
		content, err := fs.ReadFile(result.Path)
		require.NoError(t, err)
		assert.Equal(t, "", content)
	}
}

func TestRunDeterministicOutput(t *testing.T) {
	fs := filesystem.NewMemoryFs()
	logger, _ := log.NewDebugLogger()
	require.NoError(t, fs.WriteFile("data/dataset/a.jsonl",
		`{"id":"1","utt":"hi","annot_utt":"[hi]","locale":"en-US","partition":"train"}`+"\n"))

	_, err := Run(fs, logger, testOptions())
	require.NoError(t, err)
	first, err := fs.ReadFile("outputs/partitions/en-train.jsonl")
	require.NoError(t, err)

	_, err = Run(fs, logger, testOptions())
	require.NoError(t, err)
	second, err := fs.ReadFile("outputs/partitions/en-train.jsonl")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunMissingInputDir(t *testing.T) {
	fs := filesystem.NewMemoryFs()
	logger, _ := log.NewDebugLogger()

	o := testOptions()
	o.InputDir = "missing"
	_, err := Run(fs, logger, o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `input directory "missing" not found`)
}
