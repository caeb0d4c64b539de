package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audioshelf/internal/adapters/sqlite"
	"audioshelf/internal/config"
	"audioshelf/internal/logging"
	"audioshelf/internal/ports"
)

var (
	libraryPath string
	lib         *sqlite.Library
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "audioshelf-cli",
	Short: "CLI for managing an audiobook shelf",
	Long: `audioshelf-cli is a command-line interface for the audiobook shelf.

It reads and writes the same library as the audioshelf TUI, so changes
made here show up on a running shelf at its next refresh.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		cfg.OverrideLibraryPath(libraryPath)

		logger, err = logging.New(cfg.Log)
		if err != nil {
			return err
		}

		lib = sqlite.NewLibrary()
		if err := lib.Open(cfg.Library.Path); err != nil {
			return err
		}
		logger.Debug("library opened", zap.String("path", cfg.Library.Path))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		if lib != nil {
			return lib.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&libraryPath, "library", "l", "",
		"path to the library database (default library.path from config, "+config.DefaultLibraryPath+")")
}

// GetLibrary returns the opened library
func GetLibrary() ports.Library {
	return lib
}
