package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winetools/regkit/pkg/registry"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	prefixFlag string
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Inspect and edit Wine prefix registry files",
	Long: `regctl reads and edits the text registry files (.reg) of a Wine prefix.
It resolves the prefix from --prefix, the config file, or WINEPREFIX, loads
system.reg/userdef.reg/user.reg with the usual precedence, and writes changes
back to user.reg.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVarP(&prefixFlag, "prefix", "p", "", "Wine prefix directory (default: config file, then $WINEPREFIX, then ~/.wine)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file path")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openPrefix resolves the target prefix and loads its registry files.
func openPrefix(ctx context.Context) (*registry.WineRegistry, string, error) {
	prefix, err := resolvePrefix()
	if err != nil {
		return nil, "", err
	}
	printVerbose("Loading registry from prefix: %s\n", prefix)
	w, err := registry.LoadFromPrefix(ctx, prefix)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load prefix registry: %w", err)
	}
	return w, prefix, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
