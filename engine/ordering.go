package engine

import (
	"sort"

	"chesscore/board"
)

const (
	priorityCapture = 100
	priorityCheck   = 50
)

// orderMoves sorts moves descending by priority: +100 if the move is a
// capture, +50 if it gives check (tested by making the move, querying
// the attack oracle on the enemy king, then unmaking — never by the
// degenerate same-square "null" make the source used in places).
func orderMoves(p *board.Position, moves []board.Move) {
	type scored struct {
		move     board.Move
		priority int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		var pr int
		if m.IsCapture() {
			pr += priorityCapture
		}
		if p.GivesCheck(m) {
			pr += priorityCheck
		}
		ranked[i] = scored{m, pr}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].priority > ranked[j].priority })
	for i, r := range ranked {
		moves[i] = r.move
	}
}
