// Package cmd wires up the clipvault command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/clipvault/clipvault/internal/config"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	noColors bool

	// Shared resources, built in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clipvault",
	Short: "A clipboard history daemon with search and recall",
	Long: `Clipvault watches the system clipboard and keeps a bounded,
persistent history of everything you copy:
  • Text, URL, and email captures with automatic classification
  • Image captures stored as compact thumbnails
  • Duplicate-aware retention with a configurable cap
  • Recall any entry back onto the clipboard`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger, err = buildLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimize output")
	rootCmd.PersistentFlags().BoolVar(&noColors, "no-colors", false, "disable colored output")

	rootCmd.AddCommand(
		newRunCmd(),
		newHistoryCmd(),
		newCopyCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

func buildLogger() (*zap.Logger, error) {
	var zcfg zap.Config

	switch {
	case verbose:
		zcfg = zap.NewDevelopmentConfig()
	case quiet:
		zcfg = zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		zcfg = zap.NewProductionConfig()
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			level = zapcore.InfoLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	if cfg.Log.Format == "console" && !verbose {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
