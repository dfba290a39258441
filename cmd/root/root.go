// Package root contains the root command for the application
package root

import (
	"jzorko/emso-scan/internal/batch"
	"jzorko/emso-scan/internal/config"
	"jzorko/emso-scan/internal/fileutils"
	"jzorko/emso-scan/internal/pdfextract"
	"jzorko/emso-scan/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "emso-scan",
		Short: "A CLI tool to extract EMŠO and Številka values from PDF files.",
		Long: `emso-scan scans the text layer of PDF documents for a Slovenian EMŠO
personal identification number and a document reference number (Številka),
validates the EMŠO control digit, and writes the results as JSON or CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to emso-scan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration and logging
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to all packages
			batch.SetLogger(Log)
			pdfextract.SetLogger(Log)
			report.SetLogger(Log)
			fileutils.SetLogger(Log)
		},
	}
)
