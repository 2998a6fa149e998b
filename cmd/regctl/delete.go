package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/winetools/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <key-path> [name]",
		Short: "Delete a key or a value and save user.reg",
		Long: `The delete command removes a value, or with no name the entire key.
Deletions are recorded as tombstones so Wine picks them up on the next
registry merge.

Example:
  regctl delete "Software\\Wine\\Direct3D" csmt
  regctl delete "Software\\Wine\\AppDefaults\\game.exe"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args)
		},
	}
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	keyPath := args[0]

	w, prefix, err := openPrefix(cmd.Context())
	if err != nil {
		return err
	}

	if len(args) > 1 {
		if err := w.DeleteValue(cmd.Context(), keyPath, argName(args[1])); err != nil {
			return err
		}
		printInfo("Deleted value %s from %s\n", args[1], keyPath)
	} else {
		if err := w.DeleteKey(cmd.Context(), keyPath); err != nil {
			return err
		}
		printInfo("Deleted key %s\n", keyPath)
	}

	userReg := filepath.Join(prefix, registry.UserRegFile)
	if err := w.SaveToFile(cmd.Context(), userReg); err != nil {
		return fmt.Errorf("failed to save %s: %w", userReg, err)
	}
	return nil
}
