// Package sodg is an in-memory Surging Object Di-Graph: a labeled,
// directed multigraph used as the object-memory of a small language
// runtime.
//
// Vertices are addressed by a dense, non-negative integer id (VId) and
// carry an optional binary payload (Hex). Edges are (Label, VId) pairs
// stored in a small fixed-capacity map on the source vertex. Unlike a
// conventional tracing collector, Sodg never walks the whole graph to
// find garbage: every vertex belongs to a "branch" — STATIC until it is
// first bound to another vertex, after which it joins the dynamic branch
// of the vertex it was bound to, or a fresh one if both were STATIC (two
// vertices already on different dynamic branches keep their branches
// when bound) — and a whole branch is discarded the instant the last
// still-unread payload in it is read back with Data.
//
// A minimal session looks like:
//
//	g := sodg.New(256, sodg.DefaultEdgeCapacity)
//	g.Add(0)
//	g.Add(1)
//	g.Bind(0, 1, sodg.Alpha(0))
//	g.Put(1, sodg.FromStrBytes("hello"))
//	d, ok, err := g.Data(1)
//
// Sodg is not safe for concurrent mutation: a value is exclusively owned
// by whoever holds a *Sodg, the same way a single goroutine owns a
// *bytes.Buffer. Read-only operations (Kid, Kids, Len, Keys, Inspect,
// ToDOT, ToXML, Save) may be called concurrently with each other, never
// concurrently with a mutation.
//
// Everything lives in this single package, mirroring the single-crate
// layout of the reference implementation this module is a port of.
package sodg
