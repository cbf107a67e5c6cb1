package prover

import (
	"fmt"
	"strings"
)

// traceBuf accumulates trace lines for a single top-level prove/solve
// call. Line prefixes are part of the public contract (spec §4.4.5);
// do not rename them.
type traceBuf struct {
	enabled bool
	lines   []string
}

func (t *traceBuf) indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func (t *traceBuf) goal(depth int, goal string) {
	if !t.enabled {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf("%sGoal: %s", t.indent(depth), goal))
}

func (t *traceBuf) matchedFact(depth int, fact string) {
	if !t.enabled {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf("%s✓ Matched fact: %s", t.indent(depth), fact))
}

func (t *traceBuf) tryingRule(depth int, rule string) {
	if !t.enabled {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf("%sTrying rule: %s", t.indent(depth), rule))
}

func (t *traceBuf) ruleSucceeded(depth int, rule string) {
	if !t.enabled {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf("%s✓ Rule succeeded: %s", t.indent(depth), rule))
}

func (t *traceBuf) cannotProve(depth int, goal string) {
	if !t.enabled {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf("%s✗ Cannot prove: %s", t.indent(depth), goal))
}

func (t *traceBuf) cycleDetected(depth int, goal string) {
	if !t.enabled {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf("%s✗ Cycle detected: %s", t.indent(depth), goal))
}

func (t *traceBuf) maxDepthReached(depth int, goal string) {
	if !t.enabled {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf("%s✗ Max depth reached: %s", t.indent(depth), goal))
}

func (t *traceBuf) String() string {
	return strings.Join(t.lines, "\n")
}
