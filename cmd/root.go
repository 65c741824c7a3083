// Package cmd implements the CLI commands for docpipe using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docpipe/core/config"
	"github.com/gaurav-prasanna/docpipe/core/logging"
)

var (
	flagConfig  string
	flagLogMode string
)

// app holds what every command needs once flags are parsed.
var app struct {
	cfg *config.Config
	log *logging.Logger
}

var rootCmd = &cobra.Command{
	Use:   "docpipe",
	Short: "docpipe: turn course, blog and glossary documents into publishable markup",
	Long: `docpipe reads a .docx (or HTML) document, recovers its structure with
lexical heuristics and writes publishable HTML, Markdown, JSON or PDF.

Usage:
  docpipe course <file> [flags]
  docpipe blog <file> [flags]
  docpipe glossary <file> [flags]`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if app.log != nil {
			app.log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogMode, "log_mode", "", "Log mode: development or production (default from config)")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log_mode") {
		cfg.Log.Mode = flagLogMode
	}

	log, err := logging.New(cfg.Log.Mode)
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.log = log
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
