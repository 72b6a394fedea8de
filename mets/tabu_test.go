package mets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabuListMembershipAndExpiry(t *testing.T) {
	tl := NewTabuList(8)
	m := NewSwapMove(2, 5)

	tl.Add(m.Hash(), 10) // tabu through iteration 9, expires at 10
	assert.True(t, tl.IsTabu(m.Hash(), 5))
	assert.True(t, tl.IsTabu(m.Hash(), 9))
	assert.False(t, tl.IsTabu(m.Hash(), 10))
}

func TestTabuListDedupesEqualMovesByHash(t *testing.T) {
	tl := NewTabuList(8)

	a := NewSwapMove(2, 5)
	b := NewSwapMove(5, 2) // same canonical move, constructed the other way

	seen := map[uint64]bool{}
	for _, m := range []ManaMove{a, b} {
		seen[m.Hash()] = true
		tl.Add(m.Hash(), 100)
	}

	assert.Len(t, seen, 1, "swap_elements(2,5) and swap_elements(5,2) must hash equal")
	assert.Len(t, tl.m, 1, "swap_elements(2,5) and swap_elements(5,2) must collapse to one tabu entry")
}

func TestTabuListAddSkipsEvictionOnUnwrittenZeroSlot(t *testing.T) {
	tl := NewTabuList(8)

	// Plant a real entry whose hash is 0 with expiry 0 — the same
	// zero-value as an unwritten ring slot.
	tl.m[0] = 0
	require.False(t, tl.IsTabu(0, -1), "expiry 0 must already be expired at iter -1")
	tl.m[0] = 5 // now tabu through iteration 4

	// Add into a fresh slot (pos 0, never written) at an unrelated hash.
	// The unwritten slot's zero key/expiry must not be treated as a real
	// entry to evict, or it would wipe out the hash-0 entry planted above.
	tl.Add(99, 10)

	require.True(t, tl.IsTabu(0, 2), "unrelated Add must not evict the real hash=0 entry")
}

func TestTabuListEvictsOldestOnOverflow(t *testing.T) {
	tl := NewTabuList(8) // minimum capacity
	for i := 0; i < 16; i++ {
		m := NewSwapMove(i, i+1)
		tl.Add(m.Hash(), 1000+i)
	}
	// After 16 adds into an 8-slot ring buffer, the first 8 moves must have
	// been evicted (unless their hashes collide with later ones).
	first := NewSwapMove(0, 1)
	assert.False(t, tl.IsTabu(first.Hash(), 0))
}
