package cli

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/firdawws/massive-tools/internal/pkg/env"
	"github.com/firdawws/massive-tools/internal/pkg/filesystem"
	"github.com/firdawws/massive-tools/internal/pkg/log"
	"github.com/firdawws/massive-tools/internal/pkg/options"
	"github.com/firdawws/massive-tools/internal/pkg/version"
)

const description = `MASSIVE corpus tools

Convert JSONL files with annotated utterances
into per-language XLSX exports, or partition them
into per-language, per-split JSONL files.
`

type rootCommand struct {
	cmd          *cobra.Command
	fs           filesystem.Fs
	envs         *env.Map         // ENVs from OS and .env files
	options      *options.Root    // parsed persistent flags
	logger       *zap.SugaredLogger
	logFile      *os.File // log file instance
	logFileClear bool     // is the log file temporary? it is removed if no error occurs
	start        time.Time
	initialized  bool
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer, envs *env.Map, fs filesystem.Fs) *rootCommand {
	root := &rootCommand{
		fs:      fs,
		envs:    envs,
		options: &options.Root{},
		start:   time.Now(),
	}

	// Command definition
	root.cmd = &cobra.Command{
		Use:          "masstool",
		Version:      version.Version(),
		Short:        description,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.cmd.Help()
		},
	}

	// Setup in/out
	root.cmd.SetIn(stdin)
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)
	root.cmd.SetVersionTemplate("{{.Version}}")

	// Persistent flags for all sub-commands
	flags := root.cmd.PersistentFlags()
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.String("log-file", "", "path to a log file for details")
	flags.BoolP("verbose", "v", false, "print details")

	// Root command flags
	root.cmd.Flags().SortFlags = true
	root.cmd.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return root.init(cmd)
	}

	// Sub-commands
	root.cmd.AddCommand(
		exportCommand(root),
		partitionCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *rootCommand) Execute() (exitCode int) {
	defer root.tearDown()
	if err := root.cmd.Execute(); err != nil {
		// Init, it can be uninitialized, if an error occurred before PersistentPreRun call
		_ = root.init(root.cmd)

		// Error is already printed by cobra, keep the log file
		root.logFileClear = false
		return 1
	}
	return 0
}

// init sets logger and options after flags are parsed.
func (root *rootCommand) init(cmd *cobra.Command) (err error) {
	if root.initialized {
		return
	}

	// Run only once
	root.initialized = true

	// Logger must always be set up, even if options loading fails
	defer func() {
		if root.logger == nil {
			root.setupLogger()
		}
	}()

	// Load ENVs from ".env" files, OS variables take precedence
	tmpLogger := zap.NewNop().Sugar()
	root.envs = env.LoadDotEnv(tmpLogger, root.envs, root.fs, ".")

	// Load values from flags and envs
	if err = options.Load(root.options, root.envs, cmd.Flags()); err != nil {
		return err
	}

	// Setup logger
	root.setupLogger()
	root.logDebugInfo()

	return nil
}

// setupLogger according to the options.
func (root *rootCommand) setupLogger() {
	logFile, logFileErr := root.getLogFile()
	root.logger = log.NewLogger(root.cmd.OutOrStdout(), root.cmd.ErrOrStderr(), logFile, root.options.Verbose)
	root.logFile = logFile
	root.cmd.SetOut(log.ToInfoWriter(root.logger))
	root.cmd.SetErr(log.ToWarnWriter(root.logger))

	// Warn if user specified log file and it cannot be opened
	if logFileErr != nil && !root.logFileClear {
		root.logger.Warnf("Cannot open log file: %s", logFileErr)
	}
}

func (root *rootCommand) logDebugInfo() {
	if _, err := log.ToDebugWriter(root.logger).WriteString(root.cmd.Version); err != nil {
		panic(err)
	}
	root.logger.Debugf("Running command %v", os.Args)
	root.logger.Debug(options.Dump(root.options))
}

// getLogFile opens the log file defined in the flags or creates a temp file.
// The log file can be outside the working directory, so it is NOT using the virtual filesystem.
func (root *rootCommand) getLogFile() (logFile *os.File, logFileErr error) {
	if len(root.options.LogFilePath) > 0 {
		root.logFileClear = false // log file defined by user will be preserved
	} else {
		// Generate a unique hash if multiple instances start simultaneously
		randomHash := ""
		randomBytes := make([]byte, 6)
		if _, err := rand.Read(randomBytes); err == nil {
			randomHash = fmt.Sprintf("-%x", randomBytes)
		}

		root.options.LogFilePath = filepath.Join(os.TempDir(), fmt.Sprintf("massive-tools-%d%s.txt", time.Now().Unix(), randomHash))
		root.logFileClear = true // temp log file will be removed, it is preserved only in case of an error
	}

	logFile, logFileErr = os.OpenFile(root.options.LogFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if logFileErr != nil {
		root.options.LogFilePath = ""
	}
	return
}

// tearDown makes clean-up after command execution.
func (root *rootCommand) tearDown() {
	if root.logFile != nil {
		if err := root.logFile.Close(); err != nil {
			panic(fmt.Errorf("cannot close log file \"%s\": %w", root.options.LogFilePath, err))
		}
		root.logFile = nil
	}

	// Remove log file if temporary
	if root.logFileClear && len(root.options.LogFilePath) > 0 {
		if err := os.Remove(root.options.LogFilePath); err != nil {
			panic(fmt.Errorf("cannot remove temp log file \"%s\": %w", root.options.LogFilePath, err))
		}
		root.options.LogFilePath = ""
	}
}
