package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/firdawws/massive-tools/internal/pkg/massive/export"
	"github.com/firdawws/massive-tools/internal/pkg/options"
)

const exportShortDescription = `Export JSONL files to per-language XLSX files`
const exportLongDescription = `Command "export"

Every JSONL file in the input directory is filtered by the selected
language and written to the output directory as an XLSX file with
the columns: id, utt, annot_utt.

The language of a record is the part of its "locale" field
before the first hyphen, eg. "en-US" -> "en".`

func exportCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: exportShortDescription,
		Long:  exportLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := export.Options{}
			if err := options.Load(&o, root.envs, cmd.Flags()); err != nil {
				return err
			}
			if err := options.Validate(&o); err != nil {
				return err
			}
			root.logger.Debug(options.Dump(o))

			summary, err := export.Run(root.fs, root.logger, o)
			if err != nil {
				return err
			}

			root.logger.Infof("Exported %d records to %d files | %s", summary.Records, len(summary.Results), time.Since(root.start))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = true
	flags.StringP("input-dir", "i", "./data/dataset", "directory with JSONL input files")
	flags.StringP("output-dir", "o", "./outputs", "directory for XLSX output files")
	flags.StringP("language", "l", "en", "language code to export")
	return cmd
}
