package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/prover"
)

var solveCmd = &cobra.Command{
	Use:   "solve <file.pl> <goal>",
	Short: "enumerate every solution for goal against the clauses in file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, goal, err := loadKBAndGoal(cmd, args[0], args[1])
		if err != nil {
			return err
		}

		p := prover.New(kb, proverConfig(), proverLogger())
		solutions, trace := p.Solve(goal)

		fmt.Printf("solve(%s) -> %d solution(s)\n", goal.String(), len(solutions))
		for _, s := range solutions {
			fmt.Printf("  %s\n", formatSolution(s))
		}
		if cfg.Prover.Trace {
			fmt.Println(trace)
		}
		return nil
	},
}

func formatSolution(s prover.Solution) string {
	if len(s.Bindings) == 0 {
		return "{}"
	}
	names := make([]string, 0, len(s.Bindings))
	for k := range s.Bindings {
		names = append(names, k)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, n := range names {
		pairs[i] = fmt.Sprintf("%s=%s", n, s.Bindings[n])
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
