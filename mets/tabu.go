package mets

// TabuList is fixed-capacity, tabu-compatible move memory: a ring buffer of
// (hash, expiry) pairs backed by a map for O(1) membership checks. It
// generalizes the ad hoc tabu bookkeeping a tabu search needs into reusable
// supporting machinery keyed by ManaMove.Hash(), so any mana-move
// implementation can be remembered without the strategy hand-rolling a key
// scheme.
//
// Like any hash-keyed tabu memory, two distinct moves that happen to share
// a hash are indistinguishable to IsTabu; this mirrors the reference
// library's own reliance on mana_move::hash() for tabu set membership.
type TabuList struct {
	capacity int
	m        map[uint64]int // hash -> expiry iteration
	key      []uint64       // ring buffer of hashes
	exp      []int          // matching expiry iterations
	pos      int
}

// NewTabuList returns a tabu list holding at most capacity entries at once.
// A capacity below 8 is raised to 8.
func NewTabuList(capacity int) *TabuList {
	if capacity < 8 {
		capacity = 8
	}
	return &TabuList{
		capacity: capacity,
		m:        make(map[uint64]int, capacity*2),
		key:      make([]uint64, capacity),
		exp:      make([]int, capacity),
	}
}

// IsTabu reports whether a move with the given hash is still forbidden at
// iteration iter.
func (t *TabuList) IsTabu(hash uint64, iter int) bool {
	expiry, ok := t.m[hash]
	return ok && expiry > iter
}

// Add records hash as tabu until expiry (exclusive), evicting the oldest
// entry in the ring buffer if the list is full. A zero-value ring slot
// (never written) is skipped rather than evicted, so it cannot spuriously
// delete a real entry whose hash happens to be 0.
func (t *TabuList) Add(hash uint64, expiry int) {
	oldKey := t.key[t.pos]
	oldExp := t.exp[t.pos]
	if oldKey != 0 {
		if curExp, ok := t.m[oldKey]; ok && curExp == oldExp {
			delete(t.m, oldKey)
		}
	}

	t.key[t.pos] = hash
	t.exp[t.pos] = expiry
	t.m[hash] = expiry

	t.pos++
	if t.pos >= len(t.key) {
		t.pos = 0
	}
}
