package term

import "strings"

// ClauseKind distinguishes a Fact from a Rule. An empty-bodied Rule
// behaves like a Fact during proving but the two stay distinct here,
// per the data model: a Rule with no premises is still a Rule.
type ClauseKind int

const (
	FactClause ClauseKind = iota
	RuleClause
)

// Clause is a Fact (Kind == FactClause, Body empty) or a Rule
// (Kind == RuleClause, possibly empty Body).
type Clause struct {
	Kind ClauseKind
	Head Atom
	Body []Atom
}

// MakeFact builds a Fact clause.
func MakeFact(head Atom) Clause {
	return Clause{Kind: FactClause, Head: head}
}

// MakeRule builds a Rule clause with the given ordered body.
func MakeRule(head Atom, body []Atom) Clause {
	cp := make([]Atom, len(body))
	copy(cp, body)
	return Clause{Kind: RuleClause, Head: head, Body: cp}
}

// String renders the clause in surface syntax, without the trailing ".".
func (c Clause) String() string {
	if c.Kind == FactClause || len(c.Body) == 0 {
		return c.Head.String()
	}
	parts := make([]string, len(c.Body))
	for i, p := range c.Body {
		parts[i] = p.String()
	}
	return c.Head.String() + " :- " + strings.Join(parts, ", ")
}
