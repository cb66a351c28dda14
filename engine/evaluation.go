// Package engine implements static evaluation, the transposition table,
// move ordering, and alpha-beta search over a board.Position.
package engine

import (
	"math/bits"

	"chesscore/board"
)

// Material values in centipawns.
const (
	valuePawn   = 100
	valueKnight = 320
	valueBishop = 330
	valueRook   = 500
	valueQueen  = 900
	valueKing   = 20000
)

const centerBonus = 20

var centerSquares = []board.Square{
	3 + 3*8, // d4
	3 + 4*8, // d5
	4 + 3*8, // e4
	4 + 4*8, // e5
}

// Evaluate returns the static score of p from White's perspective: the
// material balance plus a flat bonus per side for each piece occupying
// one of the four central squares. No piece-square tables, no game-phase
// tapering — deliberately flat, per the material+center-control design.
func Evaluate(p *board.Position) int {
	var score int
	for _, c := range []board.Color{board.White, board.Black} {
		bb := p.Bitboards(c)
		material := popCountValue(bb.Pawns, valuePawn) +
			popCountValue(bb.Knights, valueKnight) +
			popCountValue(bb.Bishops, valueBishop) +
			popCountValue(bb.Rooks, valueRook) +
			popCountValue(bb.Queens, valueQueen) +
			popCountValue(bb.Kings, valueKing)

		var center int
		for _, sq := range centerSquares {
			if piece := p.PieceAt(sq); piece != board.NoPiece && piece.Color() == c {
				center += centerBonus
			}
		}

		if c == board.White {
			score += material + center
		} else {
			score -= material + center
		}
	}
	return score
}

func popCountValue(bb uint64, value int) int {
	return bits.OnesCount64(bb) * value
}
