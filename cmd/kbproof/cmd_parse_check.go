package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/parser"
)

var parseCheckCmd = &cobra.Command{
	Use:   "parse-check <file.pl>",
	Short: "parse a clause file and report facts, rules, and skipped clauses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readFileWithContext(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		result := parser.Parse(string(data))
		fmt.Printf("facts: %d\n", len(result.Facts))
		for _, f := range result.Facts {
			fmt.Printf("  %s\n", f.String())
		}
		fmt.Printf("rules: %d\n", len(result.Rules))
		for _, r := range result.Rules {
			fmt.Printf("  %s\n", r.String())
		}
		if len(result.Skipped) > 0 {
			fmt.Printf("skipped: %d\n", len(result.Skipped))
			for _, s := range result.Skipped {
				fmt.Printf("  %q: %s\n", s.Source, s.Reason)
			}
		}
		return nil
	},
}
