package sodg

import "fmt"

// branchArena holds the two parallel structures the reclamation scheme
// needs per branch: the membership list M(b) and the pending-stores
// counter S(b). The members lists at index 0 (BranchNone) and 1
// (BranchStatic) are never populated — STATIC vertices are tracked only
// by their own branch field, never added to a members list, since
// STATIC is never reclaimed.
type branchArena struct {
	members [MaxBranches][]VId
	stores  [MaxBranches]int
}

func newBranchArena() *branchArena { return &branchArena{} }

// allocate picks the lowest-numbered unused dynamic branch id. It
// panics if every dynamic branch is currently live: MAX_BRANCHES is a
// fixed implementation constant and exhausting it is a fatal
// programming error, not a recoverable one.
func (b *branchArena) allocate() BId {
	for i := BranchStatic + 1; i < MaxBranches; i++ {
		if len(b.members[i]) == 0 {
			return i
		}
	}
	panic(fmt.Sprintf("sodg: no free branch available (max branches = %d)", MaxBranches))
}

// reconcile applies the bind-time branch reconciliation rule (§4.5.2):
// two STATIC vertices spawn a fresh dynamic branch; a STATIC vertex
// bound to a dynamic one is absorbed into it; two already-dynamic
// vertices are left untouched.
func (b *branchArena) reconcile(fromID VId, from *vertex, toID VId, to *vertex) {
	bFrom, bTo := from.branch, to.branch
	// move puts v on branch nb, carrying its pending store along so
	// S(nb) keeps counting every Stored member.
	move := func(v *vertex, nb BId) {
		if v.state == persistStored {
			b.stores[v.branch]--
			b.stores[nb]++
		}
		v.branch = nb
	}
	switch {
	case bFrom == BranchStatic && bTo == BranchStatic:
		nb := b.allocate()
		move(from, nb)
		move(to, nb)
		b.members[nb] = append(b.members[nb], fromID, toID)
	case bFrom == BranchStatic && bTo != BranchStatic:
		move(from, bTo)
		b.members[bTo] = append(b.members[bTo], fromID)
	case bFrom != BranchStatic && bTo == BranchStatic:
		move(to, bFrom)
		b.members[bFrom] = append(b.members[bFrom], toID)
	default:
		// both already dynamic: no merge, by design (§4.5.2/§9).
	}
}

// recordStore increments the pending-stores counter for branch b on an
// Empty -> Stored transition. STATIC and NONE are harmless no-ops to
// count against since they are never consulted for reclamation.
func (b *branchArena) recordStore(branch BId) {
	b.stores[branch]++
}

// release decrements S(branch) on a Stored -> Taken transition and, if
// it reaches zero on a dynamic branch, reclaims the branch: every
// member's vertex is set to BranchNone in slab and the membership list
// is cleared, freeing the branch id for reuse. It returns the reclaimed
// member ids, or nil if no reclamation happened.
func (b *branchArena) release(branch BId, slab *vertexSlab) []VId {
	if branch == BranchStatic || branch == BranchNone {
		b.stores[branch]--
		return nil
	}
	b.stores[branch]--
	if b.stores[branch] > 0 {
		return nil
	}
	members := b.members[branch]
	for _, id := range members {
		if v := slab.get(id); v != nil {
			v.branch = BranchNone
			v.edges.Clear()
			v.state = persistEmpty
		}
	}
	b.members[branch] = nil
	return members
}
