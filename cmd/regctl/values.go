package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/winetools/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <key-path>",
		Short: "List all values of a key",
		Long: `The values command lists every value stored under a key, with the
default slot shown as "(default)".

Example:
  regctl values "Software\\Wine"
  regctl values "Software\\Wine\\Direct3D" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(cmd, args)
		},
	}
	return cmd
}

func runValues(cmd *cobra.Command, args []string) error {
	keyPath := args[0]

	w, prefix, err := openPrefix(cmd.Context())
	if err != nil {
		return err
	}

	values, err := w.GetKeyValues(cmd.Context(), keyPath)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	if jsonOut {
		rendered := make(map[string]string, len(values))
		for name, v := range values {
			rendered[name] = registry.FormatValue(v)
		}
		return printJSON(map[string]interface{}{
			"prefix": prefix,
			"key":    keyPath,
			"values": rendered,
			"count":  len(values),
		})
	}

	printInfo("\nValues in %s:\n", keyPath)
	for _, name := range names {
		printInfo("  %-30s %s\n", name, registry.FormatValue(values[name]))
	}
	printInfo("\nTotal: %d values\n", len(values))

	return nil
}
