// Package env implements the unifier's binding environment as an
// immutable, persistent structure: each branch of the search extends
// a parent environment with new bindings, and sibling branches never
// observe each other's extensions (Design Notes option (b) in
// SPEC_FULL.md).
package env

import "github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/term"

// Env is a binding environment: a partial mapping from variable
// identities to terms, represented as a cons-list so that extending
// it never mutates the parent. A nil *Env is the empty environment.
type Env struct {
	parent *Env
	v      term.Term
	bound  term.Term
}

// Extend returns a new environment that binds v to t on top of e,
// without modifying e. Per the data model invariant, v must be a
// variable; the unifier never calls Extend with a constant on the
// left.
func (e *Env) Extend(v, t term.Term) *Env {
	return &Env{parent: e, v: v, bound: t}
}

// lookup returns the term directly bound to v in e, if any. It does
// not follow chains.
func (e *Env) lookup(v term.Term) (term.Term, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.v == v {
			return cur.bound, true
		}
	}
	return term.Term{}, false
}

// Resolve walks v's (or, for a constant, the trivial) binding chain in
// e until it reaches a constant or an unbound variable, guarding
// against cycles with a visited set so that a malformed chain
// terminates instead of looping forever.
func Resolve(t term.Term, e *Env) term.Term {
	if t.IsConstant() {
		return t
	}
	visited := make(map[term.Term]bool)
	cur := t
	for cur.IsVariable() {
		if visited[cur] {
			return cur
		}
		visited[cur] = true
		next, ok := e.lookup(cur)
		if !ok {
			return cur
		}
		cur = next
	}
	return cur
}

// SubstituteAtom resolves every argument of a through e, returning a
// new atom with each argument replaced by its fully-resolved value.
// Applying an environment to an already-resolved atom is a no-op,
// since Resolve on a constant (or a variable with no binding) returns
// it unchanged.
func SubstituteAtom(a term.Atom, e *Env) term.Atom {
	args := make([]term.Term, len(a.Args))
	for i, arg := range a.Args {
		args[i] = Resolve(arg, e)
	}
	return term.MakeAtom(a.Predicate, args...)
}
