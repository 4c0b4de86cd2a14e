package sodg

import (
	"fmt"
	"iter"
	"sort"
)

// Sodg is an in-memory Surging Object Di-Graph: a labeled directed
// multigraph with branch-based reclamation. The zero value is not
// usable; construct one with New.
type Sodg struct {
	slab    *vertexSlab
	branch  *branchArena
	edgeCap int
	nextV   VId
}

// New returns an empty graph pre-sized to hold vertexCap vertices
// without reallocating, where every vertex's outgoing EdgeMap has room
// for edgeCap distinct labels.
func New(vertexCap, edgeCap int) *Sodg {
	return &Sodg{
		slab:    newSlab(vertexCap),
		branch:  newBranchArena(),
		edgeCap: edgeCap,
	}
}

// Add makes vertex v live on the STATIC branch. Calling Add on an
// already-live vertex is a no-op; calling it on a slot that belongs to
// a previously reclaimed branch re-initializes it (empty edges,
// no data).
//
//	g := sodg.New(16, sodg.DefaultEdgeCapacity)
//	g.Add(0)
//	g.Add(42)
func (g *Sodg) Add(v VId) {
	existing := g.slab.get(v)
	if existing != nil && existing.branch != BranchNone {
		return
	}
	g.slab.insert(v, newVertex(g.edgeCap))
}

// Bind installs the edge (label, to) on vertex from, replacing any
// existing edge under the same label, then reconciles the branch
// membership of from and to per the STATIC/dynamic rules. Both
// vertices must already be live.
//
//	g.Add(0)
//	g.Add(1)
//	g.Bind(0, 1, sodg.Alpha(0))
func (g *Sodg) Bind(from, to VId, label Label) error {
	vFrom := g.slab.get(from)
	if vFrom == nil || vFrom.branch == BranchNone {
		return fmt.Errorf("sodg: bind from ν%d: %w", from, ErrDeadVertex)
	}
	vTo := g.slab.get(to)
	if vTo == nil || vTo.branch == BranchNone {
		return fmt.Errorf("sodg: bind to ν%d: %w", to, ErrDeadVertex)
	}
	vFrom.edges.Insert(label, to)
	g.branch.reconcile(from, vFrom, to, vTo)
	return nil
}

// Put sets v's payload to h. It is a precondition that v is live.
// Writing over an already-Stored vertex is allowed: the data is
// replaced and the pending-stores counter is left unchanged.
func (g *Sodg) Put(v VId, h Hex) error {
	vtx := g.slab.get(v)
	if vtx == nil || vtx.branch == BranchNone {
		return fmt.Errorf("sodg: put ν%d: %w", v, ErrDeadVertex)
	}
	vtx.data = h
	if vtx.state == persistEmpty {
		g.branch.recordStore(vtx.branch)
	}
	vtx.state = persistStored
	return nil
}

// Data reads v's payload. If v has never been Put, it returns
// (Hex{}, false, nil). The first read after a Put transitions the
// vertex to Taken and may trigger reclamation of its whole dynamic
// branch (§4.5.3); subsequent reads return the same data without
// further effect.
//
//	g.Add(42)
//	g.Put(42, sodg.FromStrBytes("hello, world!"))
//	d, ok, _ := g.Data(42)
func (g *Sodg) Data(v VId) (Hex, bool, error) {
	vtx := g.slab.get(v)
	if vtx == nil || vtx.branch == BranchNone {
		return Hex{}, false, fmt.Errorf("sodg: data ν%d: %w", v, ErrDeadVertex)
	}
	switch vtx.state {
	case persistEmpty:
		return Hex{}, false, nil
	case persistStored:
		d := vtx.data
		vtx.state = persistTaken
		g.branch.release(vtx.branch, g.slab)
		return d, true, nil
	default: // persistTaken
		return vtx.data, true, nil
	}
}

// Kid finds the vertex bound to v under label, if any. Unlike Bind/Put/
// Data, a dead v is not a precondition violation here: it simply has no
// kids, so Kid returns (0, false, nil).
func (g *Sodg) Kid(v VId, label Label) (VId, bool, error) {
	vtx := g.slab.get(v)
	if vtx == nil || vtx.branch == BranchNone {
		return 0, false, nil
	}
	to, ok := vtx.edges.Get(label)
	return to, ok, nil
}

// Kids iterates v's outgoing (label, vertex) pairs in slot order. A
// dead v yields an empty sequence rather than an error, matching Kid.
func (g *Sodg) Kids(v VId) (iter.Seq2[Label, VId], error) {
	vtx := g.slab.get(v)
	if vtx == nil || vtx.branch == BranchNone {
		return func(yield func(Label, VId) bool) {}, nil
	}
	return vtx.edges.All(), nil
}

// NextID returns the lowest-indexed vertex slot at or above an
// internal high-water mark that is not currently live, makes it live on
// the STATIC branch (as Add does), and advances the mark past it. The
// same id is never returned twice.
func (g *Sodg) NextID() VId {
	id := g.freeFrom(g.nextV)
	if id+1 > g.nextV {
		g.nextV = id + 1
	}
	g.Add(id)
	return id
}

func (g *Sodg) freeFrom(from VId) VId {
	for i := from; i < g.slab.cap(); i++ {
		v := g.slab.slots[i]
		if v == nil || v.branch == BranchNone {
			return i
		}
	}
	return g.slab.cap()
}

// Len reports the number of currently live vertices (branch != NONE).
func (g *Sodg) Len() int { return len(g.Keys()) }

// IsEmpty reports whether the graph has no live vertices.
func (g *Sodg) IsEmpty() bool { return g.Len() == 0 }

// Keys returns the ids of all live vertices in ascending order.
func (g *Sodg) Keys() []VId {
	out := make([]VId, 0, g.slab.cap())
	for i, v := range g.slab.slots {
		if v != nil && v.branch != BranchNone {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// isLive reports whether v names a live vertex, for use by other files
// in this package (slice.go, merge.go, inspect.go, ...).
func (g *Sodg) isLive(v VId) bool {
	vtx := g.slab.get(v)
	return vtx != nil && vtx.branch != BranchNone
}
