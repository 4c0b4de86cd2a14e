package sodg

import "fmt"

// Slice returns a fresh graph holding only v and everything reachable
// from it by following outgoing edges (a read-only snapshot; mutating
// the result has no effect on g). Vertex ids and edge labels are kept
// as-is, so the result can be inspected, exported or merged back the
// same way the source graph is.
func (g *Sodg) Slice(v VId) (*Sodg, error) {
	if !g.isLive(v) {
		return nil, fmt.Errorf("sodg: slice ν%d: %w", v, ErrDeadVertex)
	}
	out := New(g.slab.cap(), g.edgeCap)
	visited := map[VId]bool{}
	queue := []VId{v}
	visited[v] = true
	out.Add(v)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		vtx := g.slab.get(cur)
		for _, e := range vtx.edges.Sorted() {
			if !out.isLive(e.To) {
				out.Add(e.To)
			}
			_ = out.Bind(cur, e.To, e.Label)
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
		if vtx.state != persistEmpty {
			_ = out.Put(cur, vtx.data)
		}
	}
	return out, nil
}
