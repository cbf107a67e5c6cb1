package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/parser"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/prover"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/term"
)

var proveCmd = &cobra.Command{
	Use:   "prove <file.pl> <goal>",
	Short: "report whether goal has at least one solution against the clauses in file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, goal, err := loadKBAndGoal(cmd, args[0], args[1])
		if err != nil {
			return err
		}

		p := prover.New(kb, proverConfig(), proverLogger())
		ok, trace := p.Prove(goal)

		fmt.Printf("prove(%s) = %v\n", goal.String(), ok)
		if cfg.Prover.Trace {
			fmt.Println(trace)
		}
		return nil
	},
}

// loadKBAndGoal reads kbPath, parses it into a term.KB, and parses
// goalText as a single top-level goal atom.
func loadKBAndGoal(cmd *cobra.Command, kbPath, goalText string) (*term.KB, term.Atom, error) {
	data, err := readFileWithContext(cmd.Context(), kbPath)
	if err != nil {
		return nil, term.Atom{}, err
	}
	kb := parser.Parse(string(data)).KB()

	goal, err := parser.ParseGoal(goalText)
	if err != nil {
		return nil, term.Atom{}, fmt.Errorf("parsing goal %q: %w", goalText, err)
	}
	return kb, goal, nil
}

func proverConfig() prover.Config {
	return prover.Config{MaxDepth: cfg.Prover.MaxDepth, Trace: cfg.Prover.Trace}
}

// kbproofLogger adapts internal/logging's categorized logger to
// prover.Logger, writing one completion line per top-level call.
type kbproofLogger struct{}

func (kbproofLogger) Complete(goal string, success bool, elapsed time.Duration, correlationID string) {
	cliLogger().WithRequestID(correlationID).Info("goal=%s success=%v elapsed=%s", goal, success, elapsed)
}

func proverLogger() prover.Logger {
	return kbproofLogger{}
}
