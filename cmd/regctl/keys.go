package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys [substring]",
		Short: "List registry key paths",
		Long: `The keys command lists key paths in the prefix registry, optionally
filtered by a substring match.

Example:
  regctl keys
  regctl keys "Direct3D"
  regctl keys "Software\\Wine" --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(cmd, args)
		},
	}
	return cmd
}

func runKeys(cmd *cobra.Command, args []string) error {
	var substr string
	if len(args) > 0 {
		substr = args[0]
	}

	w, prefix, err := openPrefix(cmd.Context())
	if err != nil {
		return err
	}

	keys, err := w.FindKeys(cmd.Context(), substr)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"prefix": prefix,
			"filter": substr,
			"keys":   keys,
			"count":  len(keys),
		})
	}

	if substr != "" {
		printInfo("\nKeys matching %q:\n", substr)
	} else {
		printInfo("\nKeys:\n")
	}
	for _, key := range keys {
		printInfo("  %s\n", key)
	}
	printInfo("\nTotal: %d keys\n", len(keys))

	return nil
}
