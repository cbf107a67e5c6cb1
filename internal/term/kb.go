package term

import "strconv"

// KB is a clause set: a fact index (duplicates coalesced by structural
// equality, insertion order not observable) and an ordered rule list
// (order is observable — it determines solution enumeration order).
//
// A KB is built once and treated as read-only for the lifetime of a
// proof; nothing about proving mutates it.
type KB struct {
	factOrder   []Atom             // stable iteration order
	factSeen    map[string]bool    // dedupe by Key()
	byPredArity map[string][]Atom
	rules       []Clause
}

// NewKB returns an empty clause set.
func NewKB() *KB {
	return &KB{
		factSeen:    make(map[string]bool),
		byPredArity: make(map[string][]Atom),
	}
}

func predArityKey(predicate string, arity int) string {
	// arity is bounded by argument count parsed from text; two digits
	// of separation is enough to avoid collisions between e.g. "p1"/2
	// and "p"/12 because '/' cannot appear in a predicate identifier.
	return predicate + "/" + strconv.Itoa(arity)
}

// AddFact inserts a into the fact index. A structurally equal atom
// already present is not duplicated.
func (kb *KB) AddFact(a Atom) {
	key := a.Key()
	if kb.factSeen[key] {
		return
	}
	kb.factSeen[key] = true
	kb.factOrder = append(kb.factOrder, a)
	pak := predArityKey(a.Predicate, a.Arity())
	kb.byPredArity[pak] = append(kb.byPredArity[pak], a)
}

// AddRule appends a rule to the ordered rule list.
func (kb *KB) AddRule(c Clause) {
	kb.rules = append(kb.rules, c)
}

// Facts returns all facts in a stable (though not semantically
// meaningful) iteration order.
func (kb *KB) Facts() []Atom { return kb.factOrder }

// FactsFor returns the facts matching a given predicate/arity, in the
// order they were added — the "implementation-defined but stable
// order" the prover tries before rules.
func (kb *KB) FactsFor(predicate string, arity int) []Atom {
	return kb.byPredArity[predArityKey(predicate, arity)]
}

// Rules returns the rule list in source order.
func (kb *KB) Rules() []Clause { return kb.rules }
