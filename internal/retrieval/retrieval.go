// Package retrieval stands in for the bag-of-sentences vector-store
// collaborator described at the core's external boundary: it hands
// the prover a *subset* of a clause set, chosen by its own lexical
// relevance policy, with no completeness guarantee. A clause the
// retriever omits is not an error — a goal that needed it simply
// fails to prove.
//
// Unlike the ripgrep-backed file retriever this package is modeled
// on, there is no external process and no filesystem: scoring is
// plain token overlap between a goal's rendering and each clause's
// rendering, computed in-process.
package retrieval

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/term"
)

// Config tunes the retriever. Zero value is usable: DefaultConfig
// documents the intended defaults.
type Config struct {
	// TopK bounds how many clauses TopK returns. Zero or negative
	// means "all positively-scored clauses".
	TopK int
}

// DefaultConfig returns sensible defaults: no cap, every clause that
// shares at least one token with the goal is returned.
func DefaultConfig() Config {
	return Config{TopK: 0}
}

// entry is one indexed clause: its original position (for stable tie
// breaking), the clause itself, and its token bag.
type entry struct {
	index  int
	fact   *term.Atom
	rule   *term.Clause
	tokens map[string]bool
}

// Retriever indexes a clause set once and answers TopK lookups
// against it. Building a Retriever is read-only with respect to the
// KB it was built from.
type Retriever struct {
	cfg     Config
	entries []entry
}

// New builds a Retriever over every fact and rule in kb, tokenizing
// each clause's rendered text into a lowercase word bag.
func New(kb *term.KB, cfg Config) *Retriever {
	r := &Retriever{cfg: cfg}
	idx := 0
	for i := range kb.Facts() {
		f := kb.Facts()[i]
		r.entries = append(r.entries, entry{index: idx, fact: &f, tokens: tokenize(f.String())})
		idx++
	}
	for i := range kb.Rules() {
		rule := kb.Rules()[i]
		r.entries = append(r.entries, entry{index: idx, rule: &rule, tokens: tokenize(rule.String())})
		idx++
	}
	return r
}

// scored pairs an entry with its overlap score against a query's
// token bag.
type scored struct {
	entry entry
	score int
}

// TopK scores every indexed clause against goal's token bag and
// returns the top-scoring ones (or all positively-scored clauses if
// cfg.TopK <= 0), in descending score order, ties broken by source
// order. A goal sharing no tokens with any clause yields an empty KB.
func (r *Retriever) TopK(goal term.Atom) *term.KB {
	goalTokens := tokenize(goal.String())

	var candidates []scored
	for _, e := range r.entries {
		score := overlap(goalTokens, e.tokens)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, scored{entry: e, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].entry.index < candidates[j].entry.index
	})

	limit := r.cfg.TopK
	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}

	out := term.NewKB()
	for _, c := range candidates[:limit] {
		if c.entry.fact != nil {
			out.AddFact(*c.entry.fact)
		}
		if c.entry.rule != nil {
			out.AddRule(*c.entry.rule)
		}
	}
	return out
}

func overlap(a, b map[string]bool) int {
	n := 0
	for tok := range a {
		if b[tok] {
			n++
		}
	}
	return n
}

func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens[strings.ToLower(cur.String())] = true
			cur.Reset()
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
