package prover

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/parser"
	"github.com/dayal-arnav05/AIEA-Onboarding-Tasks/internal/term"
)

const animalsKB = `
has_fur(dog). warm_blooded(dog). eats(dog,meat).
has_feathers(sparrow). warm_blooded(sparrow).
has_feathers(penguin). warm_blooded(penguin). flightless(penguin).
has_fur(cat). warm_blooded(cat). eats(cat,meat).
mammal(X) :- has_fur(X), warm_blooded(X).
bird(X)   :- has_feathers(X), warm_blooded(X).
carnivore(X) :- eats(X,meat).
`

const familyKB = `
father(john,mary). father(john,tom).
mother(susan,mary). mother(susan,tom).
father(tom,alice). mother(jane,alice).
parent(X,Y) :- father(X,Y).
parent(X,Y) :- mother(X,Y).
grandparent(X,Z) :- parent(X,Y), parent(Y,Z).
`

const orgChartKB = `
reports_to(mordecai,benson). reports_to(rigby,benson). reports_to(skips,benson).
in_charge_of(B,W) :- reports_to(W,B).
friends(mordecai,rigby). friends(rigby,mordecai).
character_type(mordecai,slacker). character_type(rigby,slacker). character_type(benson,boss).
`

func mustGoal(t *testing.T, s string) term.Atom {
	t.Helper()
	g, err := parser.ParseGoal(s)
	if err != nil {
		t.Fatalf("ParseGoal(%q): %v", s, err)
	}
	return g
}

func bindingsOf(sols []Solution) []map[string]string {
	out := make([]map[string]string, len(sols))
	for i, s := range sols {
		out[i] = s.Bindings
	}
	return out
}

func TestKBAAnimals(t *testing.T) {
	kb := parser.Parse(animalsKB).KB()
	p := New(kb, DefaultConfig(), nil)

	if ok, _ := p.Prove(mustGoal(t, "mammal(dog)")); !ok {
		t.Fatalf("expected mammal(dog) to be provable")
	}
	if ok, _ := p.Prove(mustGoal(t, "bird(penguin)")); !ok {
		t.Fatalf("expected bird(penguin) to be provable")
	}

	sols, _ := p.Solve(mustGoal(t, "carnivore(X)"))
	want := []map[string]string{{"X": "dog"}, {"X": "cat"}}
	if diff := cmp.Diff(want, bindingsOf(sols)); diff != "" {
		t.Fatalf("carnivore(X) solutions mismatch (-want +got):\n%s", diff)
	}
}

func TestKBBFamily(t *testing.T) {
	kb := parser.Parse(familyKB).KB()
	p := New(kb, DefaultConfig(), nil)

	sols, _ := p.Solve(mustGoal(t, "parent(X,alice)"))
	want := []map[string]string{{"X": "tom"}, {"X": "jane"}}
	if diff := cmp.Diff(want, bindingsOf(sols)); diff != "" {
		t.Fatalf("parent(X,alice) solutions mismatch (-want +got):\n%s", diff)
	}

	sols, _ = p.Solve(mustGoal(t, "grandparent(X,alice)"))
	want = []map[string]string{{"X": "john"}, {"X": "susan"}}
	if diff := cmp.Diff(want, bindingsOf(sols)); diff != "" {
		t.Fatalf("grandparent(X,alice) solutions mismatch (-want +got):\n%s", diff)
	}

	if ok, _ := p.Prove(mustGoal(t, "parent(susan,tom)")); !ok {
		t.Fatalf("expected parent(susan,tom) to be provable")
	}
}

func TestKBCOrgChart(t *testing.T) {
	kb := parser.Parse(orgChartKB).KB()
	p := New(kb, DefaultConfig(), nil)

	if ok, _ := p.Prove(mustGoal(t, "in_charge_of(benson,mordecai)")); !ok {
		t.Fatalf("expected in_charge_of(benson,mordecai) to be provable")
	}

	sols, _ := p.Solve(mustGoal(t, "in_charge_of(benson,X)"))
	if len(sols) != 3 {
		t.Fatalf("expected 3 direct subordinates, got %d: %v", len(sols), sols)
	}
	seen := make(map[string]bool)
	for _, s := range sols {
		seen[s.Bindings["X"]] = true
	}
	for _, want := range []string{"mordecai", "rigby", "skips"} {
		if !seen[want] {
			t.Fatalf("expected %s among in_charge_of(benson,X) solutions, got %v", want, sols)
		}
	}
}

func TestFactRoundTrip(t *testing.T) {
	kb := term.NewKB()
	kb.AddFact(term.MakeAtom("raining"))
	p := New(kb, DefaultConfig(), nil)

	goal, _ := parser.ParseGoal("raining")
	if ok, _ := p.Prove(goal); !ok {
		t.Fatalf("expected raining to be provable")
	}

	sols, _ := p.Solve(goal)
	if len(sols) != 1 || len(sols[0].Bindings) != 0 {
		t.Fatalf("expected exactly one solution with no bindings, got %v", sols)
	}
}

func TestMemoIdempotence(t *testing.T) {
	kb := parser.Parse(`
fact(a).
double(X) :- fact(X), fact(X).
`).KB()
	p := New(kb, DefaultConfig(), nil)

	sols, _ := p.Solve(mustGoal(t, "double(X)"))
	if len(sols) != 1 {
		t.Fatalf("expected memoisation to avoid duplicate derivations, got %v", sols)
	}
}

func TestCycleSafetyTerminates(t *testing.T) {
	kb := parser.Parse(`
loopy(X) :- loopy(X).
`).KB()
	p := New(kb, DefaultConfig(), nil)

	ok, _ := p.Prove(mustGoal(t, "loopy(a)"))
	if ok {
		t.Fatalf("a goal that only recurses on itself must not prove")
	}
}

func TestDeterminismAcrossRepeatedSolve(t *testing.T) {
	kb := parser.Parse(animalsKB).KB()
	p := New(kb, DefaultConfig(), nil)

	first, _ := p.Solve(mustGoal(t, "carnivore(X)"))
	second, _ := p.Solve(mustGoal(t, "carnivore(X)"))
	if diff := cmp.Diff(bindingsOf(first), bindingsOf(second)); diff != "" {
		t.Fatalf("repeated Solve calls diverged (-first +second):\n%s", diff)
	}
}

func TestRenameCaptureFreedom(t *testing.T) {
	// The query's X and the rule's own X must stay distinct variables:
	// the rule's X is bound to a while the query's X comes out as c.
	kb := parser.Parse(`
link(a,b). link(b,c). link(c,d).
chain(X,Z) :- link(X,Y), link(Y,Z).
`).KB()
	p := New(kb, DefaultConfig(), nil)

	sols, _ := p.Solve(mustGoal(t, "chain(a,X)"))
	want := []map[string]string{{"X": "c"}}
	if diff := cmp.Diff(want, bindingsOf(sols)); diff != "" {
		t.Fatalf("chain(a,X) mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxDepthBoundsSearch(t *testing.T) {
	kb := parser.Parse(`
count(zero).
step(X) :- step(Y).
`).KB()
	// Each expansion opens step(Y) with a fresh Y, so no goal repeats on
	// the stack and only the depth limit stops the search.
	cfg := Config{MaxDepth: 3, Trace: true}
	p := New(kb, cfg, nil)

	ok, trace := p.Prove(mustGoal(t, "step(a)"))
	if ok {
		t.Fatalf("an infinitely-recursive rule must not prove")
	}
	if !containsLine(trace, "✗ Max depth reached:") {
		t.Fatalf("expected the depth limit to end the search, got:\n%s", trace)
	}
}

func TestTraceRecordsExpectedPrefixes(t *testing.T) {
	kb := parser.Parse(animalsKB).KB()
	cfg := Config{MaxDepth: DefaultConfig().MaxDepth, Trace: true}
	p := New(kb, cfg, nil)

	_, trace := p.Prove(mustGoal(t, "mammal(dog)"))
	for _, want := range []string{"Goal:", "✓ Matched fact:", "Trying rule:", "✓ Rule succeeded:"} {
		if !containsLine(trace, want) {
			t.Fatalf("expected trace to contain a line starting with %q, got:\n%s", want, trace)
		}
	}
}

func containsLine(trace, prefix string) bool {
	for _, line := range splitLines(trace) {
		if hasTrimmedPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func hasTrimmedPrefix(line, prefix string) bool {
	trimmed := line
	for len(trimmed) > 0 && (trimmed[0] == ' ') {
		trimmed = trimmed[1:]
	}
	if len(trimmed) < len(prefix) {
		return false
	}
	return trimmed[:len(prefix)] == prefix
}

type recordingLogger struct {
	calls []string
}

func (r *recordingLogger) Complete(goal string, success bool, elapsed time.Duration, correlationID string) {
	r.calls = append(r.calls, fmt.Sprintf("%s=%v (%s, %s)", goal, success, elapsed, correlationID))
}

func TestLoggerReceivesOneCompletionLinePerTopLevelCall(t *testing.T) {
	kb := parser.Parse(animalsKB).KB()
	logger := &recordingLogger{}
	p := New(kb, DefaultConfig(), logger)

	p.Prove(mustGoal(t, "mammal(dog)"))
	p.Solve(mustGoal(t, "carnivore(X)"))

	if len(logger.calls) != 2 {
		t.Fatalf("expected exactly one completion line per top-level call, got %v", logger.calls)
	}
}
