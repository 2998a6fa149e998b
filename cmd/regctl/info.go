package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/winetools/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report prefix registry files and key counts",
		Long: `The info command shows which registry files the prefix carries, their
sizes, and the key count of the loaded document.

Example:
  regctl info
  regctl info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context())
		},
	}
	return cmd
}

func runInfo(ctx context.Context) error {
	prefix, err := resolvePrefix()
	if err != nil {
		return err
	}

	files := map[string]int64{}
	for _, name := range []string{registry.SystemRegFile, registry.UserDefRegFile, registry.UserRegFile} {
		if stat, err := os.Stat(filepath.Join(prefix, name)); err == nil {
			files[name] = stat.Size()
		}
	}

	w, err := registry.LoadFromPrefix(ctx, prefix)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"prefix": prefix,
			"files":  files,
			"keys":   w.KeyCount(),
		})
	}

	printInfo("\nPrefix: %s\n", prefix)
	printInfo("\nRegistry files:\n")
	for _, name := range []string{registry.SystemRegFile, registry.UserDefRegFile, registry.UserRegFile} {
		if size, ok := files[name]; ok {
			printInfo("  %-12s %d bytes\n", name, size)
		} else {
			printInfo("  %-12s (missing)\n", name)
		}
	}
	printInfo("\nLoaded keys: %d\n", w.KeyCount())

	return nil
}
