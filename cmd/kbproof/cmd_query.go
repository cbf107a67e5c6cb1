package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/prover"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/retrieval"
)

// queryCmd mirrors the repository's "retrieval then prove" demo
// pipeline: build a retriever over the full clause file, hand the
// prover only the subset the retriever thinks is relevant to goal,
// and report the result. A retrieval subset that omits a needed rule
// is not an error; it just may make the proof fail where the full KB
// would have succeeded.
var queryCmd = &cobra.Command{
	Use:   "query <file.pl> <goal>",
	Short: "retrieve a relevant clause subset, then prove goal against it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fullKB, goal, err := loadKBAndGoal(cmd, args[0], args[1])
		if err != nil {
			return err
		}

		r := retrieval.New(fullKB, retrieval.Config{TopK: cfg.Retrieval.TopK})
		subset := r.TopK(goal)

		p := prover.New(subset, proverConfig(), proverLogger())
		solutions, trace := p.Solve(goal)

		fmt.Printf("retrieved %d fact(s), %d rule(s)\n", len(subset.Facts()), len(subset.Rules()))
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
