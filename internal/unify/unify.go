// Package unify implements structural unification over the term model
// in internal/term, threading an internal/env.Env binding environment
// through each step. Unification never mutates its input environment:
// on success it returns an extended copy; on failure it returns
// nothing, with no error surface (arity/predicate mismatches and
// constant clashes are ordinary negative results, not error paths).
package unify

import (
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/env"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/term"
)

// Atoms attempts to unify two atoms under e. Predicate name and arity
// must match exactly, then arguments are unified pairwise, left to
// right, threading the environment through each pair.
func Atoms(a, b term.Atom, e *env.Env) (*env.Env, bool) {
	if a.Predicate != b.Predicate || len(a.Args) != len(b.Args) {
		return nil, false
	}
	cur := e
	for i := range a.Args {
		var ok bool
		cur, ok = Terms(a.Args[i], b.Args[i], cur)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Terms attempts to unify two terms under e.
func Terms(x, y term.Term, e *env.Env) (*env.Env, bool) {
	rx := env.Resolve(x, e)
	ry := env.Resolve(y, e)

	switch {
	case rx.IsVariable() && ry.IsVariable():
		if rx == ry {
			// Same variable after resolution: no binding needed.
			return e, true
		}
		// Deterministic direction for reproducible traces: bind the
		// higher-numbered (later-allocated) identity to the lower one.
		if rx.ID() < ry.ID() {
			return e.Extend(ry, rx), true
		}
		return e.Extend(rx, ry), true

	case rx.IsVariable():
		return e.Extend(rx, ry), true

	case ry.IsVariable():
		return e.Extend(ry, rx), true

	default:
		if rx == ry {
			return e, true
		}
		return nil, false
	}
}
