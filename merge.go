package sodg

import (
	"fmt"
	"sort"
)

// Merge grafts other's tree rooted at otherRoot onto g's tree rooted at
// into, identifying otherRoot with into and recursing over matching
// edge labels. Both graphs are expected to be trees (possibly with
// back-edges forming loops, which is handled via identity mapping, not
// arbitrary DAG sharing); if other turns out not to be a tree, Merge
// returns ErrNotATree naming the vertices it could not place.
func (g *Sodg) Merge(other *Sodg, into, otherRoot VId) error {
	mapped := make(map[VId]VId)
	if err := g.mergeRec(other, into, otherRoot, mapped); err != nil {
		return err
	}
	scope := other.Len()
	if len(mapped) == scope {
		return nil
	}
	must := other.Keys()
	seen := make(map[VId]struct{}, len(mapped))
	for k := range mapped {
		seen[k] = struct{}{}
	}
	var missed []VId
	for _, v := range must {
		if _, ok := seen[v]; !ok {
			missed = append(missed, v)
		}
	}
	sort.Ints(missed)
	names := make([]string, len(missed))
	for i, v := range missed {
		names[i] = fmt.Sprintf("ν%d", v)
	}
	return fmt.Errorf("%w: %d vertices merged out of %d, %d missed: %v",
		ErrNotATree, len(mapped), scope, len(missed), names)
}

func (g *Sodg) mergeRec(other *Sodg, left, right VId, mapped map[VId]VId) error {
	if _, done := mapped[right]; done {
		return nil
	}
	mapped[right] = left

	rv := other.slab.get(right)
	if rv == nil || rv.branch == BranchNone {
		return fmt.Errorf("sodg: merge source ν%d: %w", right, ErrDeadVertex)
	}
	if rv.state != persistEmpty {
		if err := g.Put(left, rv.data); err != nil {
			return err
		}
	}

	kids, err := other.Kids(right)
	if err != nil {
		return err
	}
	type pair struct {
		label Label
		to    VId
	}
	var ordered []pair
	for label, to := range kids {
		ordered = append(ordered, pair{label, to})
	}

	for _, p := range ordered {
		matched, ok, err := g.Kid(left, p.label)
		if err != nil {
			return err
		}
		if !ok {
			if t, done := mapped[p.to]; done {
				if err := g.Bind(left, t, p.label); err != nil {
					return err
				}
				matched = t
			} else {
				id := g.NextID()
				g.Add(id)
				if err := g.Bind(left, id, p.label); err != nil {
					return err
				}
				matched = id
			}
		}
		if err := g.mergeRec(other, matched, p.to, mapped); err != nil {
			return err
		}
	}

	for _, p := range ordered {
		first, ok, err := g.Kid(left, p.label)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		second, done := mapped[p.to]
		if done && first != second {
			if err := g.join(first, second); err != nil {
				return err
			}
		}
	}
	return nil
}

// join identifies right with left: every edge anywhere in g pointing at
// right is redirected to left, right's own outgoing edges are grafted
// onto left (erroring on a label collision), and right's slot is
// reclaimed.
func (g *Sodg) join(left, right VId) error {
	for _, v := range g.Keys() {
		vtx := g.slab.get(v)
		for i := range vtx.edges.slots {
			s := &vtx.edges.slots[i]
			if s.used && s.to == right {
				s.to = left
			}
		}
	}
	kids, err := g.Kids(right)
	if err != nil {
		return err
	}
	type pair struct {
		label Label
		to    VId
	}
	var ordered []pair
	for label, to := range kids {
		ordered = append(ordered, pair{label, to})
	}
	for _, p := range ordered {
		if _, ok, _ := g.Kid(left, p.label); ok {
			return fmt.Errorf("sodg: can't merge ν%d into ν%d, conflict on label %q", right, left, p.label)
		}
		if err := g.Bind(left, p.to, p.label); err != nil {
			return err
		}
	}
	g.slab.remove(right)
	return nil
}
