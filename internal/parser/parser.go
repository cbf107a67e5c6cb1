// Package parser converts the surface syntax (facts "name(arg1, ...)."
// and rules "head :- body1, body2, ..." terminated by ".") into the
// term.Clause representation the prover consumes.
//
// Comments start with '%' and run to end of line. A clause may span
// multiple lines; it ends at the first '.' that sits outside any
// parenthesised argument list. Rule bodies split on commas only at
// paren-depth zero.
//
// Predicate arity is fixed by usage within a single clause, never
// inferred across clauses: the parser never looks at any other
// clause while parsing one.
//
// Identifiers that begin with a backslash-escape operator — e.g. "\="
// for disequality — are recognised and silently dropped from rule
// bodies. The engine has no notion of disequality or any other
// builtin operator; this is documented, deliberate behaviour carried
// over unchanged from the system this parser was modeled on, not a
// bug to be "fixed" here.
package parser

import (
	"fmt"
	"strings"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/term"
)

// Skipped records a clause the parser could not make sense of. Parsing
// never aborts on one of these; it just moves on to the next clause.
type Skipped struct {
	Source string
	Reason string
}

// Result is everything Parse extracted from an input, in source order.
type Result struct {
	Facts   []term.Atom
	Rules   []term.Clause
	Skipped []Skipped
}

// KB builds a term.KB from a parse Result.
func (r Result) KB() *term.KB {
	kb := term.NewKB()
	for _, f := range r.Facts {
		kb.AddFact(f)
	}
	for _, rule := range r.Rules {
		kb.AddRule(rule)
	}
	return kb
}

// Parse converts a full clause-file body into facts and rules,
// preserving source order within each list. Malformed clauses are
// skipped, not fatal; an empty or comment-only input yields empty
// results.
func Parse(input string) Result {
	var result Result
	for _, raw := range splitClauses(input) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if topLevelIndex(raw, ":-") >= 0 {
			rule, err := parseRule(raw)
			if err != nil {
				result.Skipped = append(result.Skipped, Skipped{Source: raw, Reason: err.Error()})
				continue
			}
			result.Rules = append(result.Rules, rule)
			continue
		}
		atom, err := parseAtomString(raw, make(map[string]term.Term))
		if err != nil {
			result.Skipped = append(result.Skipped, Skipped{Source: raw, Reason: err.Error()})
			continue
		}
		result.Facts = append(result.Facts, atom)
	}
	return result
}

// ParseGoal parses a single top-level goal atom, as a collaborator
// hands it to the core: no trailing period, no body. It returns an
// error rather than silently skipping, so a caller can distinguish
// "the goal didn't parse" from "the goal parsed but didn't prove".
func ParseGoal(input string) (term.Atom, error) {
	input = strings.TrimSpace(stripLineComment(input))
	input = strings.TrimSuffix(strings.TrimSpace(input), ".")
	if input == "" {
		return term.Atom{}, fmt.Errorf("parser: empty goal")
	}
	return parseAtomString(input, make(map[string]term.Term))
}

// splitClauses strips comments, then splits the remaining text into
// raw clause strings at every '.' that sits outside parentheses. When
// a '(' is never closed, the unterminated text is cut at its first '.'.
func splitClauses(input string) []string {
	var sb strings.Builder
	for _, line := range strings.Split(input, "\n") {
		sb.WriteString(stripLineComment(line))
		sb.WriteByte('\n')
	}
	cleaned := sb.String()

	var clauses []string
	var cur strings.Builder
	depth := 0
	for _, r := range cleaned {
		switch r {
		case '(':
			depth++
			cur.WriteRune(r)
		case ')':
			depth--
			cur.WriteRune(r)
		case '.':
			if depth == 0 {
				clauses = append(clauses, cur.String())
				cur.Reset()
				continue
			}
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	if tail := cur.String(); strings.TrimSpace(tail) != "" {
		if depth > 0 {
			// An unclosed '(' hid every later '.': end the malformed
			// clause at its first '.' and split the rest afresh, so one
			// bad clause does not swallow the clauses after it.
			if dot := strings.IndexByte(tail, '.'); dot >= 0 {
				clauses = append(clauses, tail[:dot])
				return append(clauses, splitClauses(tail[dot+1:])...)
			}
		}
		clauses = append(clauses, tail)
	}
	return clauses
}

func stripLineComment(line string) string {
	if idx := strings.Index(line, "%"); idx >= 0 {
		return line[:idx]
	}
	return line
}

// topLevelIndex returns the index of the first occurrence of sep that
// sits at paren-depth zero, or -1 if sep never appears at depth zero.
func topLevelIndex(s, sep string) int {
	depth := 0
	for i := 0; i+len(sep) <= len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && s[i:i+len(sep)] == sep {
			return i
		}
	}
	return -1
}

// splitTopLevel splits s on sep, but only where sep sits at
// paren-depth zero — used for both a rule's body and an atom's
// argument list.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(':
			depth++
			cur.WriteByte(c)
		case ')':
			depth--
			cur.WriteByte(c)
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(cur.String()))
				cur.Reset()
				continue
			}
			cur.WriteByte(c)
		default:
			cur.WriteByte(c)
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		parts = append(parts, s)
	}
	return parts
}

func parseRule(raw string) (term.Clause, error) {
	idx := topLevelIndex(raw, ":-")
	if idx < 0 {
		return term.Clause{}, fmt.Errorf("parser: rule missing top-level \":-\"")
	}
	headStr := strings.TrimSpace(raw[:idx])
	bodyStr := strings.TrimSpace(raw[idx+2:])

	vars := make(map[string]term.Term)
	head, err := parseAtomString(headStr, vars)
	if err != nil {
		return term.Clause{}, fmt.Errorf("parser: malformed rule head %q: %w", headStr, err)
	}

	var body []term.Atom
	for _, premiseStr := range splitTopLevel(bodyStr, ',') {
		if premiseStr == "" {
			continue
		}
		if isEscapeOperator(premiseStr) {
			// Disequality and other builtin operators are not
			// supported; drop the premise silently, as documented.
			continue
		}
		premise, err := parseAtomString(premiseStr, vars)
		if err != nil {
			// A single malformed premise does not doom the whole
			// rule's parse in the original system's behaviour, but an
			// unparseable premise makes the rule itself unusable, so
			// the rule is skipped as malformed.
			return term.Clause{}, fmt.Errorf("parser: malformed premise %q: %w", premiseStr, err)
		}
		body = append(body, premise)
	}

	return term.MakeRule(head, body), nil
}

// isEscapeOperator reports whether s is a backslash-escape-led
// identifier such as "\=" — recognised, but unsupported.
func isEscapeOperator(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), `\`)
}

func parseAtomString(s string, vars map[string]term.Term) (term.Atom, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return term.Atom{}, fmt.Errorf("parser: empty atom")
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		// Zero-arity atom: a bare predicate name.
		name, err := requireIdentifier(s)
		if err != nil {
			return term.Atom{}, err
		}
		return term.MakeAtom(name), nil
	}

	if !strings.HasSuffix(s, ")") {
		return term.Atom{}, fmt.Errorf("parser: unbalanced parentheses in %q", s)
	}
	predicate, err := requireIdentifier(strings.TrimSpace(s[:open]))
	if err != nil {
		return term.Atom{}, err
	}

	argsStr := s[open+1 : len(s)-1]
	if strings.TrimSpace(argsStr) == "" {
		return term.MakeAtom(predicate), nil
	}

	rawArgs := splitTopLevel(argsStr, ',')
	args := make([]term.Term, 0, len(rawArgs))
	for _, rawArg := range rawArgs {
		arg, err := parseArgTerm(rawArg, vars)
		if err != nil {
			return term.Atom{}, fmt.Errorf("parser: malformed argument %q: %w", rawArg, err)
		}
		args = append(args, arg)
	}
	return term.MakeAtom(predicate, args...), nil
}

func parseArgTerm(raw string, vars map[string]term.Term) (term.Term, error) {
	raw = strings.TrimSpace(raw)
	name, err := requireIdentifier(raw)
	if err != nil {
		return term.Term{}, err
	}

	if name == "_" {
		// Anonymous variable: fresh identity at every occurrence.
		return term.MakeVariable("_"), nil
	}
	if isVariableName(name) {
		if v, ok := vars[name]; ok {
			return v, nil
		}
		v := term.MakeVariable(name)
		vars[name] = v
		return v, nil
	}
	return term.MakeConstant(name), nil
}

// isVariableName reports whether an identifier denotes a variable by
// surface convention: a leading uppercase letter or underscore. This
// convention only matters at parse time — once built, a term.Term
// carries its own Kind tag and no longer depends on spelling.
func isVariableName(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return c == '_' || (c >= 'A' && c <= 'Z')
}

func requireIdentifier(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("parser: missing identifier")
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
		if !ok {
			return "", fmt.Errorf("parser: invalid identifier %q", s)
		}
	}
	return s, nil
}
