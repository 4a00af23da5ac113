package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/sdbkit/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	logDir  string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdbtool",
		Short: "Inspect Windows shim databases",
		Long: `sdbtool reads Windows application compatibility databases (.sdb files)
and renders their tag tree as XML or summarises their metadata.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug log on stderr)")
	cmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to dated files in this directory")

	cmd.AddCommand(newSDB2XMLCmd(), newInfoCmd(), newVersionCmd())
	return cmd
}

func initLogging() error {
	switch {
	case verbose && !quiet:
		return logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug, Output: os.Stderr})
	case logDir != "":
		return logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug, LogDir: logDir})
	default:
		return logger.Init(logger.Options{})
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled. It goes
// to stderr so it never mixes with XML written to stdout.
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printYAML outputs data as YAML
func printYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
