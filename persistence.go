package sodg

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
	"github.com/klauspost/compress/zstd"
)

// snapshotEdge and snapshotVertex are the wire-format shadow of
// vertex/EdgeMap: plain exported fields gob can walk, decoupled from
// the live package's unexported layout.
// snapshotEdge stores Label as its textual form: Label's fields are
// unexported, so gob (which only walks exported struct fields) cannot
// serialize the type directly.
type snapshotEdge struct {
	Label string
	To    VId
}

type snapshotVertex struct {
	ID     VId
	Branch BId
	State  persistence
	Data   []byte
	Edges  []snapshotEdge
}

type snapshot struct {
	VertexCap int
	EdgeCap   int
	NextV     VId
	Vertices  []snapshotVertex
}

// Save writes a compressed snapshot of g to path, taking an exclusive
// file lock for the duration of the write so two processes racing on
// the same path wait for each other instead of corrupting it.
func (g *Sodg) Save(path string) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("sodg: save: acquiring lock: %w", err)
	}
	defer lock.Unlock()

	snap := snapshot{VertexCap: g.slab.cap(), EdgeCap: g.edgeCap, NextV: g.nextV}
	for _, v := range g.Keys() {
		vtx := g.slab.get(v)
		sv := snapshotVertex{ID: v, Branch: vtx.branch, State: vtx.state, Data: vtx.data.ToVec()}
		for _, e := range vtx.edges.Sorted() {
			sv.Edges = append(sv.Edges, snapshotEdge{Label: e.Label.String(), To: e.To})
		}
		snap.Vertices = append(snap.Vertices, sv)
	}

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(snap); err != nil {
		return fmt.Errorf("sodg: save: encoding: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sodg: save: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("sodg: save: compressing: %w", err)
	}
	if _, err := enc.Write(raw.Bytes()); err != nil {
		enc.Close()
		return fmt.Errorf("sodg: save: compressing: %w", err)
	}
	return enc.Close()
}

// Load reads back a snapshot written by Save. The returned graph's
// vertex/edge capacities match what was saved; ids, branches, payloads
// and pending-stores bookkeeping are restored exactly, so Inspect
// renders identically to the graph that was saved.
func Load(path string) (*Sodg, error) {
	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("sodg: load: acquiring lock: %w", err)
	}
	defer lock.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sodg: load: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("sodg: load: decompressing: %w", err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("sodg: load: decompressing: %w", err)
	}

	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("sodg: load: decoding: %w", err)
	}

	g := New(snap.VertexCap, snap.EdgeCap)
	g.nextV = snap.NextV
	branchMembers := make(map[BId][]VId)
	branchStores := make(map[BId]int)
	for _, sv := range snap.Vertices {
		vtx := newVertex(snap.EdgeCap)
		vtx.branch = sv.Branch
		vtx.state = sv.State
		vtx.data = FromSlice(sv.Data)
		for _, e := range sv.Edges {
			label, err := ParseLabel(e.Label)
			if err != nil {
				return nil, fmt.Errorf("sodg: load: decoding edge label %q: %w", e.Label, err)
			}
			vtx.edges.Insert(label, e.To)
		}
		g.slab.insert(sv.ID, vtx)
		if sv.Branch != BranchStatic && sv.Branch != BranchNone {
			branchMembers[sv.Branch] = append(branchMembers[sv.Branch], sv.ID)
		}
		if sv.State == persistStored {
			branchStores[sv.Branch]++
		}
	}
	for b, members := range branchMembers {
		g.branch.members[b] = members
	}
	for b, n := range branchStores {
		g.branch.stores[b] = n
	}
	return g, nil
}
