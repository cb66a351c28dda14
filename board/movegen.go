package board

// Precomputed attack masks for knights, kings, and pawns, plus ordered
// ray tables for sliders (component A/C/D precompute).
var knightMoves [64]uint64
var kingMoves [64]uint64
var pawnAttacks [2][64]uint64 // pawnAttacks[color][sq]: squares a pawn of color on sq attacks

// Ray direction indices: N, S, E, W, NE, NW, SE, SW.
const (
	dirN = iota
	dirS
	dirE
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
)

var rookDirs = []int{dirN, dirS, dirE, dirW}
var bishopDirs = []int{dirNE, dirNW, dirSE, dirSW}

// raySquares[sq][dir] lists the squares along a ray from sq, nearest
// first, stopping at the board edge (sq itself excluded).
var raySquares [64][8][]Square

func init() {
	initAttackTables()
	initRays()
}

func initAttackTables() {
	for sq := 0; sq < 64; sq++ {
		bb := uint64(1) << uint(sq)

		knightMoves[sq] = knightAttacks(bb)
		kingMoves[sq] = kingAttacks(bb)

		pawnAttacks[White][sq] = shiftNE(bb) | shiftNW(bb)
		pawnAttacks[Black][sq] = shiftSE(bb) | shiftSW(bb)
	}
}

// knightAttacks composes the eight two-rank-plus-one-file (or one-rank-
// plus-two-file) shift combinations that reach a knight's destinations
// from a single-bit bitboard.
func knightAttacks(bb uint64) uint64 {
	return shiftNorth(shiftNorth(shiftEast(bb))) |
		shiftNorth(shiftNorth(shiftWest(bb))) |
		shiftSouth(shiftSouth(shiftEast(bb))) |
		shiftSouth(shiftSouth(shiftWest(bb))) |
		shiftEast(shiftEast(shiftNorth(bb))) |
		shiftEast(shiftEast(shiftSouth(bb))) |
		shiftWest(shiftWest(shiftNorth(bb))) |
		shiftWest(shiftWest(shiftSouth(bb)))
}

// kingAttacks ORs all eight one-step shifts from a single-bit bitboard.
func kingAttacks(bb uint64) uint64 {
	return shiftNorth(bb) | shiftSouth(bb) | shiftEast(bb) | shiftWest(bb) |
		shiftNE(bb) | shiftNW(bb) | shiftSE(bb) | shiftSW(bb)
}

var rayStep = [8][2]int{
	dirN: {1, 0}, dirS: {-1, 0}, dirE: {0, 1}, dirW: {0, -1},
	dirNE: {1, 1}, dirNW: {1, -1}, dirSE: {-1, 1}, dirSW: {-1, -1},
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		for dir, step := range rayStep {
			r, f := rank+step[0], file+step[1]
			var squares []Square
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				squares = append(squares, Square(r*8+f))
				r += step[0]
				f += step[1]
			}
			raySquares[sq][dir] = squares
		}
	}
}

// slidingAttacks returns the attack set of a slider on sq given full-board
// occupancy occ, along the given directions. Each ray is walked nearest
// square first and stops at (inclusive of) the first occupied square.
func slidingAttacks(sq Square, occ uint64, dirs []int) uint64 {
	var attacks uint64
	for _, dir := range dirs {
		for _, t := range raySquares[sq][dir] {
			attacks |= bit(t)
			if occ&bit(t) != 0 {
				break
			}
		}
	}
	return attacks
}

// IsSquareAttacked reports whether any piece of color `by` attacks sq in
// the current position (component C: attack oracle).
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.isSquareAttackedWithOcc(sq, by, p.AllOccupancy())
}

func (p *Position) isSquareAttackedWithOcc(sq Square, by Color, occ uint64) bool {
	if pawnAttacks[by.Opponent()][sq]&p.pawns[by] != 0 {
		return true
	}
	if knightMoves[sq]&p.knights[by] != 0 {
		return true
	}
	if kingMoves[sq]&p.kings[by] != 0 {
		return true
	}
	if slidingAttacks(sq, occ, rookDirs)&(p.rooks[by]|p.queens[by]) != 0 {
		return true
	}
	if slidingAttacks(sq, occ, bishopDirs)&(p.bishops[by]|p.queens[by]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether the given side's king is currently attacked.
func (p *Position) InCheck(side Color) bool {
	return p.IsSquareAttacked(p.KingSquare(side), side.Opponent())
}

// GeneratePseudoMoves enumerates every move respecting piece geometry and
// capture rules, but not king-safety (component D). Legality is filtered
// out by GenerateMoves via MakeMove/UnmakeMove (component F).
func (p *Position) GeneratePseudoMoves() []Move {
	moves := make([]Move, 0, 48)
	us := p.sideToMove
	ownOcc := p.occupancy[us]
	allOcc := p.AllOccupancy()

	p.generatePawnMoves(&moves, us, allOcc)

	knights := p.knights[us]
	for knights != 0 {
		from := Square(popLSB(&knights))
		piece := PieceFromType(us, PieceTypeKnight)
		p.addPieceMoves(&moves, from, piece, knightMoves[from]&^ownOcc)
	}
	bishops := p.bishops[us]
	for bishops != 0 {
		from := Square(popLSB(&bishops))
		piece := PieceFromType(us, PieceTypeBishop)
		p.addPieceMoves(&moves, from, piece, slidingAttacks(from, allOcc, bishopDirs)&^ownOcc)
	}
	rooks := p.rooks[us]
	for rooks != 0 {
		from := Square(popLSB(&rooks))
		piece := PieceFromType(us, PieceTypeRook)
		p.addPieceMoves(&moves, from, piece, slidingAttacks(from, allOcc, rookDirs)&^ownOcc)
	}
	queens := p.queens[us]
	for queens != 0 {
		from := Square(popLSB(&queens))
		piece := PieceFromType(us, PieceTypeQueen)
		attacks := slidingAttacks(from, allOcc, rookDirs) | slidingAttacks(from, allOcc, bishopDirs)
		p.addPieceMoves(&moves, from, piece, attacks&^ownOcc)
	}

	p.generateKingMoves(&moves, us, allOcc)

	return moves
}

// addPieceMoves appends one Move per destination bit in targets for a
// non-pawn, non-king piece moving from `from`.
func (p *Position) addPieceMoves(moves *[]Move, from Square, piece Piece, targets uint64) {
	for targets != 0 {
		to := Square(popLSB(&targets))
		captured := p.pieces[to]
		*moves = append(*moves, NewMove(from, to, piece, captured, NoPiece, FlagNone))
	}
}

func (p *Position) generatePawnMoves(moves *[]Move, us Color, allOcc uint64) {
	pawns := p.pawns[us]
	var dir int   // +8 for White, -8 for Black
	var startRank uint64
	var promoRank uint64
	if us == White {
		dir = 8
		startRank = rank2
		promoRank = rank8
	} else {
		dir = -8
		startRank = rank7
		promoRank = rank1
	}

	for pawns != 0 {
		from := Square(popLSB(&pawns))
		fromBB := bit(from)
		single := Square(int(from) + dir)
		if single >= 0 && single < 64 && allOcc&bit(single) == 0 {
			p.addPawnTarget(moves, from, single, NoPiece, FlagNone, promoRank)
			if fromBB&startRank != 0 {
				double := Square(int(from) + 2*dir)
				if allOcc&bit(double) == 0 {
					p.addPawnTarget(moves, from, double, NoPiece, FlagNone, promoRank)
				}
			}
		}
		attacks := pawnAttacks[us][from]
		targets := attacks
		for targets != 0 {
			to := Square(popLSB(&targets))
			if captured := p.pieces[to]; captured != NoPiece && captured.Color() != us {
				p.addPawnTarget(moves, from, to, captured, FlagNone, promoRank)
			} else if to == p.enPassantSquare {
				capturedPawn := PieceFromType(us.Opponent(), PieceTypePawn)
				*moves = append(*moves, NewMove(from, to, PieceFromType(us, PieceTypePawn), capturedPawn, NoPiece, FlagEnPassant))
			}
		}
	}
}

// addPawnTarget appends a quiet or capturing pawn move, expanding it to a
// queen promotion when the destination lies on the back rank.
func (p *Position) addPawnTarget(moves *[]Move, from, to Square, captured Piece, flag uint8, promoRank uint64) {
	us := p.pieces[from].Color()
	moved := PieceFromType(us, PieceTypePawn)
	if bit(to)&promoRank != 0 {
		*moves = append(*moves, NewMove(from, to, moved, captured, PieceFromType(us, PieceTypeQueen), flag))
		return
	}
	*moves = append(*moves, NewMove(from, to, moved, captured, NoPiece, flag))
}

func (p *Position) generateKingMoves(moves *[]Move, us Color, allOcc uint64) {
	from := p.KingSquare(us)
	piece := PieceFromType(us, PieceTypeKing)
	targets := kingMoves[from] &^ p.occupancy[us]
	for targets != 0 {
		to := Square(popLSB(&targets))
		captured := p.pieces[to]
		*moves = append(*moves, NewMove(from, to, piece, captured, NoPiece, FlagNone))
	}

	them := us.Opponent()
	if us == White {
		if p.castlingRights&CastlingWhiteK != 0 &&
			allOcc&((bit(5))|bit(6)) == 0 &&
			!p.IsSquareAttacked(4, them) && !p.IsSquareAttacked(5, them) && !p.IsSquareAttacked(6, them) {
			*moves = append(*moves, NewMove(4, 6, piece, NoPiece, NoPiece, FlagCastle))
		}
		if p.castlingRights&CastlingWhiteQ != 0 &&
			allOcc&(bit(1)|bit(2)|bit(3)) == 0 &&
			!p.IsSquareAttacked(4, them) && !p.IsSquareAttacked(3, them) && !p.IsSquareAttacked(2, them) {
			*moves = append(*moves, NewMove(4, 2, piece, NoPiece, NoPiece, FlagCastle))
		}
	} else {
		if p.castlingRights&CastlingBlackK != 0 &&
			allOcc&(bit(61)|bit(62)) == 0 &&
			!p.IsSquareAttacked(60, them) && !p.IsSquareAttacked(61, them) && !p.IsSquareAttacked(62, them) {
			*moves = append(*moves, NewMove(60, 62, piece, NoPiece, NoPiece, FlagCastle))
		}
		if p.castlingRights&CastlingBlackQ != 0 &&
			allOcc&(bit(57)|bit(58)|bit(59)) == 0 &&
			!p.IsSquareAttacked(60, them) && !p.IsSquareAttacked(59, them) && !p.IsSquareAttacked(58, them) {
			*moves = append(*moves, NewMove(60, 58, piece, NoPiece, NoPiece, FlagCastle))
		}
	}
}

// GenerateMoves returns the legal moves available to the side to move
// (component F folded in): each pseudo-move is tried via MakeMove, which
// self-reverts and reports ok=false if it leaves the mover's king
// attacked.
func (p *Position) GenerateMoves() []Move {
	pseudo := p.GeneratePseudoMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		ok, st := p.MakeMove(m)
		if ok {
			p.UnmakeMove(m, st)
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, without building the full list.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.GeneratePseudoMoves() {
		ok, st := p.MakeMove(m)
		if ok {
			p.UnmakeMove(m, st)
			return true
		}
	}
	return false
}

// Status is the terminal-state classification of a position (component
// G), queried separately from move legality per spec.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// TerminalStatus reports whether the side to move is checkmated,
// stalemated, or still has the move.
func (p *Position) TerminalStatus() Status {
	if p.HasLegalMoves() {
		return Ongoing
	}
	if p.InCheck(p.sideToMove) {
		return Checkmate
	}
	return Stalemate
}

// GivesCheck reports whether a legal move m, not yet applied, would leave
// the opponent's king in check. It makes the move, queries the attack
// oracle, and unmakes — never the degenerate same-square "null" make the
// source used.
func (p *Position) GivesCheck(m Move) bool {
	ok, st := p.MakeMove(m)
	if !ok {
		return false
	}
	them := p.sideToMove // side to move after m is the opponent of the mover
	inCheck := p.InCheck(them)
	p.UnmakeMove(m, st)
	return inCheck
}
