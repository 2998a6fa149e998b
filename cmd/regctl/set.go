package main

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winetools/regkit/pkg/registry"
	"github.com/winetools/regkit/pkg/types"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().
		StringVarP(&setType, "type", "t", "sz", "Value type: sz, expand, dword, multi, binary")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key-path> <name> <value>",
		Short: "Set a registry value and save user.reg",
		Long: `The set command writes one value into the prefix registry and saves
the result to user.reg. Use "@" as the name to target the default slot.
Multi-string values separate elements with commas; binary values are hex
byte pairs.

Example:
  regctl set "Software\\Wine" Version win10
  regctl set "Software\\Wine\\Direct3D" csmt 1 --type dword
  regctl set "Software\\Wine\\Drivers\\Audio" @ pulse
  regctl set "Software\\Wine\\Misc" blob deadbeef --type binary`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, args)
		},
	}
	return cmd
}

// parseTypedValue builds a registry value from the CLI spelling.
func parseTypedValue(kind, raw string) (types.Value, error) {
	switch kind {
	case "sz":
		return types.Sz(raw), nil
	case "expand":
		return types.ExpandSz(raw), nil
	case "dword":
		n, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid dword %q: %w", raw, err)
		}
		return types.Dword(uint32(n)), nil
	case "multi":
		return types.MultiSz(strings.Split(raw, ",")), nil
	case "binary":
		data, err := hex.DecodeString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return nil, fmt.Errorf("invalid binary payload %q: %w", raw, err)
		}
		return types.Binary(data), nil
	default:
		return nil, fmt.Errorf("unknown value type %q", kind)
	}
}

func argName(s string) types.ValueName {
	if s == "@" {
		return types.DefaultName()
	}
	return types.NamedValue(s)
}

func runSet(cmd *cobra.Command, args []string) error {
	keyPath := args[0]
	name := argName(args[1])

	v, err := parseTypedValue(setType, args[2])
	if err != nil {
		return err
	}

	w, prefix, err := openPrefix(cmd.Context())
	if err != nil {
		return err
	}

	if err := w.SetValue(cmd.Context(), keyPath, name, v); err != nil {
		return err
	}
	userReg := filepath.Join(prefix, registry.UserRegFile)
	if err := w.SaveToFile(cmd.Context(), userReg); err != nil {
		return fmt.Errorf("failed to save %s: %w", userReg, err)
	}

	printInfo("Set %s in %s\n", name, keyPath)
	return nil
}
