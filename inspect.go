package sodg

import (
	"fmt"
	"strings"
)

// Inspect renders v and everything reachable from it as an indented
// text tree, one line per edge: ".label ➞ νid". A vertex already
// visited higher up the same walk is printed once more with a trailing
// ellipsis instead of being expanded again, so cyclic graphs terminate.
func (g *Sodg) Inspect(v VId) (string, error) {
	if !g.isLive(v) {
		return "", fmt.Errorf("sodg: inspect ν%d: %w", v, ErrDeadVertex)
	}
	seen := map[VId]bool{v: true}
	lines, err := g.inspectRec(v, seen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ν%d\n%s", v, strings.Join(lines, "\n")), nil
}

func (g *Sodg) inspectRec(v VId, seen map[VId]bool) ([]string, error) {
	vtx := g.slab.get(v)
	if vtx == nil || vtx.branch == BranchNone {
		return nil, fmt.Errorf("sodg: inspect ν%d: %w", v, ErrDeadVertex)
	}
	var lines []string
	for _, e := range vtx.edges.Sorted() {
		skip := seen[e.To]
		suffix := ""
		if skip {
			suffix = "…"
		}
		lines = append(lines, fmt.Sprintf("  .%s ➞ ν%d%s", e.Label, e.To, suffix))
		if !skip {
			seen[e.To] = true
			sub, err := g.inspectRec(e.To, seen)
			if err != nil {
				return nil, err
			}
			for _, t := range sub {
				lines = append(lines, "  "+t)
			}
		}
	}
	return lines, nil
}
