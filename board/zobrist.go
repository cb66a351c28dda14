package board

import "math/rand"

// Zobrist key tables (component I: hashing). zobristPiece is sized [15]
// so a Piece value (0..14, with the gap at 7) can index it directly with
// no packing/unpacking step.
var zobristPiece [15][64]uint64
var zobristCastle [16]uint64 // one key per castling-rights bitmask value
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist recomputes the hash from scratch. Used by NewGame to
// seed the hash and by tests asserting P3 (hash-state agreement); the hot
// path updates zobristKey incrementally in MakeMove/UnmakeMove.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if piece := p.pieces[sq]; piece != NoPiece {
			key ^= zobristPiece[piece][sq]
		}
	}
	key ^= zobristCastle[p.castlingRights]
	if p.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[p.enPassantSquare.File()]
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	return key
}
