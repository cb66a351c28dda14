package engine

import (
	"golang.org/x/exp/constraints"

	"chesscore/board"
)

// Bound classifies a stored score the way alpha-beta search produces it:
// an exact value, or one only known to be a lower/upper bound because a
// cutoff fired before the node finished.
type Bound int8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

const clusterSize = 4

// TTEntry is one transposition-table slot.
type TTEntry struct {
	Hash  uint64
	Depth int
	Score int
	Bound Bound
	Move  board.Move
	used  bool
}

// TranspositionTable is a fixed-capacity, clusterSize-way set-associative
// cache keyed by Zobrist hash, replacing the source's monotonically
// growing map (see the design note on transposition-table bounds).
type TranspositionTable struct {
	clusters int
	entries  []TTEntry
}

// NewTranspositionTable allocates a table sized to hold roughly
// capacity entries, rounded down to a whole number of clusters.
func NewTranspositionTable(capacity int) *TranspositionTable {
	clusters := clamp(capacity/clusterSize, 1, 1<<24)
	return &TranspositionTable{
		clusters: clusters,
		entries:  make([]TTEntry, clusters*clusterSize),
	}
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (tt *TranspositionTable) clusterBase(hash uint64) int {
	return int(hash%uint64(tt.clusters)) * clusterSize
}

// Probe looks up hash and reports whether a stored entry is usable at
// the given search depth and alpha-beta window. Per spec.md's sufficient-
// depth rule, a hit at depth >= want is returned regardless of bound
// type when it resolves the window; otherwise it still reports the raw
// entry so the caller can use its move for ordering.
func (tt *TranspositionTable) Probe(hash uint64, depth, alpha, beta int) (entry TTEntry, usableScore int, ok bool) {
	base := tt.clusterBase(hash)
	for i := 0; i < clusterSize; i++ {
		e := tt.entries[base+i]
		if !e.used || e.Hash != hash {
			continue
		}
		if e.Depth >= depth {
			switch e.Bound {
			case BoundExact:
				return e, e.Score, true
			case BoundLower:
				if e.Score >= beta {
					return e, e.Score, true
				}
			case BoundUpper:
				if e.Score <= alpha {
					return e, e.Score, true
				}
			}
		}
		return e, 0, false
	}
	return TTEntry{}, 0, false
}

// Store records a node's result, replacing (in order of preference) a
// matching entry, an empty slot, or the shallowest entry in the cluster.
func (tt *TranspositionTable) Store(hash uint64, depth, score int, bound Bound, move board.Move) {
	base := tt.clusterBase(hash)

	targetIdx := -1
	for i := 0; i < clusterSize; i++ {
		if tt.entries[base+i].used && tt.entries[base+i].Hash == hash {
			targetIdx = base + i
			break
		}
	}
	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			if !tt.entries[base+i].used {
				targetIdx = base + i
				break
			}
		}
	}
	if targetIdx == -1 {
		targetIdx = base
		minDepth := tt.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			if tt.entries[base+i].Depth < minDepth {
				minDepth = tt.entries[base+i].Depth
				targetIdx = base + i
			}
		}
	}

	tt.entries[targetIdx] = TTEntry{
		Hash:  hash,
		Depth: depth,
		Score: score,
		Bound: bound,
		Move:  move,
		used:  true,
	}
}
