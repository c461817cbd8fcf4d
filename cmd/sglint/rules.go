package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sglint/internal/lint/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in rules",
	Long:  `List every built-in rule with its id, default severity and description`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	for _, r := range rules.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-5s %s\n", r.ID(), r.Severity(), r.Describe())
	}
	return nil
}
