// Package prover implements backward-chaining (SLD-style) resolution
// over a term.KB: depth-first, left-to-right, facts before rules,
// fresh variable renaming per rule trial, goal-stack cycle detection,
// depth bounding, and memoisation of proved ground goals.
//
// The prover is single-threaded and synchronous by design: no
// goroutine, channel, or context.Context appears anywhere in Prove or
// Solve. That is a deliberate departure from this module's ambient
// CLI layer, which does use context for process-level I/O — the
// prover's search loop never crosses that boundary.
package prover

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/env"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/term"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/unify"
)

// Config bounds a single prover's search.
type Config struct {
	// MaxDepth caps the goal-stack length. Exceeding it fails the
	// branch rather than recursing further.
	MaxDepth int
	// Trace, when true, records a line-oriented proof trace.
	Trace bool
}

// DefaultConfig matches spec: a max depth of 50, tracing off.
func DefaultConfig() Config {
	return Config{MaxDepth: 50}
}

// Logger receives one structured line per top-level Prove/Solve call.
// It is never consulted inside the search loop itself.
type Logger interface {
	Complete(goal string, success bool, elapsed time.Duration, correlationID string)
}

// Prover runs backward-chaining proofs against a fixed KB. A single
// Prover instance must not be used concurrently from multiple
// goroutines; callers needing concurrency use separate instances
// against the same (immutable, shareable) KB.
type Prover struct {
	kb     *term.KB
	cfg    Config
	logger Logger

	goalStack   []term.Atom
	proved      map[string]bool
	ruleCounter uint64
	trace       *traceBuf
}

// New builds a Prover. logger may be nil.
func New(kb *term.KB, cfg Config, logger Logger) *Prover {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultConfig().MaxDepth
	}
	return &Prover{kb: kb, cfg: cfg, logger: logger}
}

// reset clears all per-call state. Prove and Solve each start with a
// clean goal stack, proved set, and rule counter; nothing survives
// between top-level calls.
func (p *Prover) reset() {
	p.goalStack = nil
	p.proved = make(map[string]bool)
	p.ruleCounter = 0
	p.trace = &traceBuf{enabled: p.cfg.Trace}
}

// cont is the continuation a goal proof invokes on every success. It
// returns true to stop searching for further alternatives (used by
// Prove, which only needs one), or false to keep backtracking into
// more alternatives (used by Solve, which enumerates all of them).
type cont func(*env.Env) bool

// Prove reports whether at least one solution exists for goal.
func (p *Prover) Prove(goal term.Atom) (bool, string) {
	p.reset()
	start := time.Now()
	id := uuid.NewString()

	found := false
	p.proveGoal(goal, nil, func(*env.Env) bool {
		found = true
		return true
	})

	if p.logger != nil {
		p.logger.Complete(goal.String(), found, time.Since(start), id)
	}
	return found, p.trace.String()
}

// Solve enumerates all solutions for goal, in a deterministic order:
// facts before rules, source order within each, duplicates (by their
// query-variable restricted mapping) suppressed.
func (p *Prover) Solve(goal term.Atom) ([]Solution, string) {
	p.reset()
	start := time.Now()
	id := uuid.NewString()

	queryVars := varsIn(goal)
	var solutions []Solution
	seen := make(map[string]bool)

	p.proveGoal(goal, nil, func(e *env.Env) bool {
		sol := extractSolution(queryVars, e)
		k := sol.key()
		if !seen[k] {
			seen[k] = true
			solutions = append(solutions, sol)
		}
		return false
	})

	if p.logger != nil {
		p.logger.Complete(goal.String(), len(solutions) > 0, time.Since(start), id)
	}
	return solutions, p.trace.String()
}

// proveGoal attempts to prove goal under e, invoking k on every
// environment that makes it succeed. It returns true iff k ever
// returned true (a request to stop searching further alternatives).
func (p *Prover) proveGoal(goal term.Atom, e *env.Env, k cont) bool {
	resolved := env.SubstituteAtom(goal, e)
	depth := len(p.goalStack)
	p.trace.goal(depth, resolved.String())

	if depth >= p.cfg.MaxDepth {
		p.trace.maxDepthReached(depth, resolved.String())
		return false
	}

	if resolved.IsGround() && p.proved[resolved.Key()] {
		return k(e)
	}

	for _, g := range p.goalStack {
		if env.SubstituteAtom(g, e).Key() == resolved.Key() {
			p.trace.cycleDetected(depth, resolved.String())
			return false
		}
	}

	p.goalStack = append(p.goalStack, resolved)
	defer func() { p.goalStack = p.goalStack[:len(p.goalStack)-1] }()

	stopped := p.tryFacts(resolved, e, k)
	if !stopped {
		stopped = p.tryRules(resolved, e, k)
	}
	if !stopped {
		p.trace.cannotProve(depth, resolved.String())
	}
	return stopped
}

func (p *Prover) tryFacts(goal term.Atom, e *env.Env, k cont) bool {
	depth := len(p.goalStack) - 1
	for _, fact := range p.kb.FactsFor(goal.Predicate, goal.Arity()) {
		fresh := p.renameAtom(fact, make(map[term.Term]term.Term))
		e2, ok := unify.Atoms(goal, fresh, e)
		if !ok {
			continue
		}
		p.trace.matchedFact(depth, fresh.String())
		if goal.IsGround() {
			p.proved[goal.Key()] = true
		}
		if k(e2) {
			return true
		}
	}
	return false
}

func (p *Prover) tryRules(goal term.Atom, e *env.Env, k cont) bool {
	depth := len(p.goalStack) - 1
	for _, rule := range p.kb.Rules() {
		if rule.Head.Predicate != goal.Predicate || rule.Head.Arity() != goal.Arity() {
			continue
		}
		head, body := p.renameRule(rule)
		p.trace.tryingRule(depth, rule.String())

		e2, ok := unify.Atoms(goal, head, e)
		if !ok {
			continue
		}

		succeeded := p.proveBody(body, 0, e2, func(e3 *env.Env) bool {
			p.trace.ruleSucceeded(depth, rule.String())
			if goal.IsGround() {
				p.proved[goal.Key()] = true
			}
			return k(e3)
		})
		if succeeded {
			return true
		}
	}
	return false
}

// proveBody proves a rule's body premises strictly left-to-right: the
// environment produced by premise i is the input to premise i+1.
func (p *Prover) proveBody(body []term.Atom, idx int, e *env.Env, k cont) bool {
	if idx >= len(body) {
		return k(e)
	}
	return p.proveGoal(body[idx], e, func(e2 *env.Env) bool {
		return p.proveBody(body, idx+1, e2, k)
	})
}

// renameRule allocates one fresh-variable mapping shared by a rule's
// head and body, so repeated occurrences of the same rule variable
// stay the same variable after renaming.
func (p *Prover) renameRule(c term.Clause) (term.Atom, []term.Atom) {
	mapping := make(map[term.Term]term.Term)
	head := p.renameAtom(c.Head, mapping)
	body := make([]term.Atom, len(c.Body))
	for i, b := range c.Body {
		body[i] = p.renameAtom(b, mapping)
	}
	return head, body
}

func (p *Prover) renameAtom(a term.Atom, mapping map[term.Term]term.Term) term.Atom {
	args := make([]term.Term, len(a.Args))
	for i, arg := range a.Args {
		args[i] = p.renameTerm(arg, mapping)
	}
	return term.MakeAtom(a.Predicate, args...)
}

func (p *Prover) renameTerm(t term.Term, mapping map[term.Term]term.Term) term.Term {
	if !t.IsVariable() {
		return t
	}
	if nv, ok := mapping[t]; ok {
		return nv
	}
	p.ruleCounter++
	nv := term.MakeVariable(fmt.Sprintf("%s#%d", t.Name(), p.ruleCounter))
	mapping[t] = nv
	return nv
}

// varsIn returns the distinct variables of goal, in first-occurrence
// order — the query variables whose bindings Solve surfaces.
func varsIn(goal term.Atom) []term.Term {
	var vars []term.Term
	seen := make(map[term.Term]bool)
	for _, arg := range goal.Args {
		if arg.IsVariable() && !seen[arg] {
			seen[arg] = true
			vars = append(vars, arg)
		}
	}
	return vars
}
