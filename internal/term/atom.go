package term

import (
	"strconv"
	"strings"
)

// Atom is a predicate applied to a fixed-arity tuple of argument terms.
type Atom struct {
	Predicate string
	Args      []Term
}

// MakeAtom builds an Atom. The arg slice is copied so callers may
// reuse their backing array.
func MakeAtom(predicate string, args ...Term) Atom {
	cp := make([]Term, len(args))
	copy(cp, args)
	return Atom{Predicate: predicate, Args: cp}
}

// Arity returns the number of arguments.
func (a Atom) Arity() int { return len(a.Args) }

// IsGround reports whether every argument is a constant.
func (a Atom) IsGround() bool {
	for _, arg := range a.Args {
		if arg.IsVariable() {
			return false
		}
	}
	return true
}

// Key returns a canonical string identifying a structurally equal atom,
// suitable for use as a map key in the fact index and the proved set.
// Two atoms with the same predicate, arity, and argument identities
// produce the same Key.
func (a Atom) Key() string {
	var b strings.Builder
	b.WriteString(a.Predicate)
	b.WriteByte('/')
	for _, arg := range a.Args {
		b.WriteByte('|')
		if arg.IsVariable() {
			b.WriteByte('?')
			b.WriteString(strconv.FormatUint(arg.ID(), 10))
		} else {
			b.WriteByte('=')
			b.WriteString(arg.Name())
		}
	}
	return b.String()
}

// String renders the atom the way it appears in the surface syntax,
// e.g. "parent(john, mary)" or the bare predicate "flightless" for a
// zero-arity atom.
func (a Atom) String() string {
	if len(a.Args) == 0 {
		return a.Predicate
	}
	var b strings.Builder
	b.WriteString(a.Predicate)
	b.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}
