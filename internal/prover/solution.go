package prover

import (
	"sort"
	"strings"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/env"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/term"
)

// Solution is a binding environment restricted to the query variables —
// the variables that appeared in the top-level goal. Internal variables
// introduced by rule renaming never appear here.
type Solution struct {
	Bindings map[string]string
}

// key returns a canonical string for duplicate suppression: the sorted
// "name=value" pairs joined together, independent of map iteration order.
func (s Solution) key() string {
	if len(s.Bindings) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(s.Bindings))
	for k, v := range s.Bindings {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// extractSolution walks each query variable through e's binding chain,
// emitting a mapping only when the chain terminates in a constant. A
// variable-free goal with no concrete bindings still yields the empty
// solution (a yes/no query).
func extractSolution(queryVars []term.Term, e *env.Env) Solution {
	bindings := make(map[string]string)
	for _, v := range queryVars {
		resolved := env.Resolve(v, e)
		if resolved.IsConstant() {
			bindings[v.Name()] = resolved.Name()
		}
	}
	return Solution{Bindings: bindings}
}
