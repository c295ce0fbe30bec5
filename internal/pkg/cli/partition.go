package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/firdawws/massive-tools/internal/pkg/massive/partition"
	"github.com/firdawws/massive-tools/internal/pkg/options"
)

const partitionShortDescription = `Partition JSONL files by language and split`
const partitionLongDescription = `Command "partition"

All JSONL files in the input directory are partitioned into one
output file per (language, partition) pair, named
"<language>-<partition>.jsonl".

A record belongs to a pair if the language of its "locale" field
(the part before the first hyphen) equals the language code
and its "partition" field equals the partition name.
All original record fields are kept, non-ASCII characters
are escaped, so the output is plain ASCII text.`

func partitionCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition",
		Short: partitionShortDescription,
		Long:  partitionLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := partition.Options{}
			if err := options.Load(&o, root.envs, cmd.Flags()); err != nil {
				return err
			}
			if err := options.Validate(&o); err != nil {
				return err
			}
			root.logger.Debug(options.Dump(o))

			summary, err := partition.Run(root.fs, root.logger, o)
			if err != nil {
				return err
			}

			root.logger.Infof("Partitioned %d records to %d files | %s", summary.Records, len(summary.Results), time.Since(root.start))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = true
	flags.StringP("input-dir", "i", "./data/dataset", "directory with JSONL input files")
	flags.StringP("output-dir", "o", "./outputs/partitions", "directory for partitioned JSONL files")
	flags.StringSlice("languages", []string{"en", "sw", "de"}, "language codes to partition")
	flags.StringSlice("partitions", []string{"test", "train", "dev"}, "partition names to generate")
	return cmd
}
