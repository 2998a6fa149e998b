package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the prefix registry as regedit5 text",
		Long: `The export command serializes the loaded registry document to .reg
text, to stdout or to a file.

Example:
  regctl export
  regctl export -o backup.reg
  regctl --prefix ~/.wine-games export -o games.reg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd)
		},
	}
	return cmd
}

func runExport(cmd *cobra.Command) error {
	w, _, err := openPrefix(cmd.Context())
	if err != nil {
		return err
	}

	data, err := w.Export(cmd.Context())
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	printInfo("Exported registry to %s\n", exportOutput)
	return nil
}
