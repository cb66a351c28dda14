package engine

import (
	"chesscore/board"
)

// MateScore bounds how large an evaluation can be without representing a
// forced king capture; used only to keep scores comparable, not for mate
// distance bookkeeping (iterative deepening and mate-in-N reporting are
// out of scope here).
const MateScore = 1_000_000

// Searcher runs a fixed-depth negamax alpha-beta search over a single
// Position, borrowed mutably for the duration of one call — no
// iterative deepening, no quiescence, no time control, no concurrent
// search (all explicit non-goals).
type Searcher struct {
	TT *TranspositionTable
}

// NewSearcher builds a Searcher backed by a fresh transposition table of
// the given entry capacity.
func NewSearcher(ttCapacity int) *Searcher {
	return &Searcher{TT: NewTranspositionTable(ttCapacity)}
}

// Search returns the negamax evaluation of p to the given depth, from
// the perspective of the side to move at the root of this call. It is
// the direct recursive engine behind FindBestMove.
func (s *Searcher) Search(p *board.Position, depth, alpha, beta int) int {
	if depth == 0 {
		return s.leafScore(p)
	}
	if p.TerminalStatus() != board.Ongoing {
		return s.leafScore(p)
	}

	hash := p.Hash()
	if _, score, ok := s.TT.Probe(hash, depth, alpha, beta); ok {
		return score
	}

	moves := p.GenerateMoves()
	orderMoves(p, moves)

	originalAlpha := alpha
	best := -MateScore - depth
	var bestMove board.Move

	for _, m := range moves {
		ok, st := p.MakeMove(m)
		if !ok {
			continue
		}
		score := -s.Search(p, depth-1, -beta, -alpha)
		p.UnmakeMove(m, st)

		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	bound := BoundExact
	switch {
	case best <= originalAlpha:
		bound = BoundUpper
	case best >= beta:
		bound = BoundLower
	}
	s.TT.Store(hash, depth, best, bound, bestMove)

	return best
}

// leafScore evaluates a terminal or depth-exhausted node. A checkmate
// against the side to move scores as a large negative value (relative
// to that side) so it is strictly worse than any material outcome;
// stalemate scores as a draw.
func (s *Searcher) leafScore(p *board.Position) int {
	switch p.TerminalStatus() {
	case board.Checkmate:
		// Checkmate is unconditionally worst-case for whoever is to move.
		return -MateScore
	case board.Stalemate:
		return 0
	default:
		score := Evaluate(p)
		if p.SideToMove() == board.Black {
			return -score
		}
		return score
	}
}

// FindBestMove runs the top search ply explicitly, returning the move
// that achieved the best score. ok is false iff the position is
// terminal (no legal move exists).
func (s *Searcher) FindBestMove(p *board.Position, depth int) (best board.Move, score int, ok bool) {
	moves := p.GenerateMoves()
	if len(moves) == 0 {
		return 0, 0, false
	}
	orderMoves(p, moves)

	alpha, beta := -MateScore-1, MateScore+1
	bestScore := -MateScore - 1
	var bestMove board.Move

	for _, m := range moves {
		madeOk, st := p.MakeMove(m)
		if !madeOk {
			continue
		}
		v := -s.Search(p, depth-1, -beta, -alpha)
		p.UnmakeMove(m, st)

		if v > bestScore {
			bestScore = v
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return bestMove, bestScore, true
}
