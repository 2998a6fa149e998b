package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winetools/regkit/pkg/registry"
	"github.com/winetools/regkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key-path> [name]",
		Short: "Get a specific registry value",
		Long: `The get command retrieves one value from a key. Omitting the name
reads the key's default slot.

Example:
  regctl get "Software\\Wine" Version
  regctl get "Software\\Wine\\Drivers\\Audio"
  regctl get "Software\\Wine\\Direct3D" csmt --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args)
		},
	}
	return cmd
}

// slotName maps the optional CLI argument to a value slot: absent means the
// default slot.
func slotName(args []string) types.ValueName {
	if len(args) > 1 {
		return types.NamedValue(args[1])
	}
	return types.DefaultName()
}

func runGet(cmd *cobra.Command, args []string) error {
	keyPath := args[0]
	name := slotName(args)

	w, prefix, err := openPrefix(cmd.Context())
	if err != nil {
		return err
	}

	v, ok, err := w.GetValue(cmd.Context(), keyPath, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("value %s not found in %s", name, keyPath)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"prefix": prefix,
			"key":    keyPath,
			"name":   name.String(),
			"type":   v.Type().String(),
			"value":  registry.FormatValue(v),
		})
	}

	printInfo("%s\n", registry.FormatValue(v))
	return nil
}
