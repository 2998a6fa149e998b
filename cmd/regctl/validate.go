package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winetools/regkit/pkg/cache"
	"github.com/winetools/regkit/pkg/editor"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the prefix registry against the settings schema",
		Long: `The validate command walks every key and value in the prefix registry
and reports entries that violate the path and naming rules the settings
editor enforces. It exits nonzero when issues are found.

Example:
  regctl validate
  regctl validate --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd)
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command) error {
	prefix, err := resolvePrefix()
	if err != nil {
		return err
	}

	e, err := editor.WithPrefix(cmd.Context(), cache.NewInMemoryCache(cacheTTL()), prefix)
	if err != nil {
		return err
	}

	issues, err := e.ValidateRegistry(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		rendered := make([]string, len(issues))
		for i, issue := range issues {
			rendered[i] = issue.String()
		}
		if err := printJSON(map[string]interface{}{
			"prefix": prefix,
			"issues": rendered,
			"count":  len(issues),
		}); err != nil {
			return err
		}
	} else {
		if len(issues) == 0 {
			printInfo("No issues found\n")
		}
		for _, issue := range issues {
			printInfo("  %s\n", issue)
		}
	}

	if len(issues) > 0 {
		return fmt.Errorf("%d validation issue(s)", len(issues))
	}
	return nil
}
