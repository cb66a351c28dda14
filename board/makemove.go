package board

// moveState holds exactly the deltas needed to reverse one ply — never a
// full board clone (see spec.md's UndoRecord design note).
type moveState struct {
	captured      Piece
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	rookFrom      Square
	rookTo        Square
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MakeMove applies m to the position (component E) and folds in the
// legality filter (component F): if the move leaves the mover's own king
// attacked, it is rejected — the position is unmade before MakeMove
// returns and ok is false.
func (p *Position) MakeMove(m Move) (ok bool, st moveState) {
	st.prevCastling = p.castlingRights
	st.prevEnPassant = p.enPassantSquare
	st.prevHalfmove = p.halfmoveClock
	st.prevFullmove = p.fullmoveNumber
	st.prevZobrist = p.zobristKey
	st.rookFrom, st.rookTo = NoSquare, NoSquare

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	captured := m.CapturedPiece()
	promo := m.PromotionPiece()
	flag := m.Flags()
	mover := moved.Color()

	if p.enPassantSquare != NoSquare {
		p.zobristKey ^= zobristEnPassant[p.enPassantSquare.File()]
	}
	p.enPassantSquare = NoSquare

	// Step 2: clear moving piece from `from`; clear captured piece (the
	// en-passant victim sits behind `to`, not on it).
	if flag == FlagEnPassant {
		var capSq Square
		if mover == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		st.captured = p.removePiece(capSq)
	} else if captured != NoPiece {
		st.captured = p.removePiece(to)
	}
	p.removePiece(from)

	// Step 3/4: place the moved (or promoted) piece; move the castling rook.
	if promo != NoPiece {
		p.addPiece(to, promo)
	} else {
		p.addPiece(to, moved)
	}
	if flag == FlagCastle {
		rookFrom, rookTo := castleRookSquares(to)
		rook := p.removePiece(rookFrom)
		p.addPiece(rookTo, rook)
		st.rookFrom, st.rookTo = rookFrom, rookTo
	}

	// Step 5: en-passant target, set iff this was a pawn double-push.
	if moved.Type() == PieceTypePawn && abs(int(to)-int(from)) == 16 {
		ep := Square((int(from) + int(to)) / 2)
		p.enPassantSquare = ep
		p.zobristKey ^= zobristEnPassant[ep.File()]
	}

	// Step 6: castling-rights erosion — king move, rook move from its
	// home square, or a rook captured on its home square.
	newRights := p.castlingRights
	switch moved {
	case WhiteKing:
		newRights &^= CastlingWhiteK | CastlingWhiteQ
	case BlackKing:
		newRights &^= CastlingBlackK | CastlingBlackQ
	}
	if moved == WhiteRook {
		switch from {
		case 0:
			newRights &^= CastlingWhiteQ
		case 7:
			newRights &^= CastlingWhiteK
		}
	} else if moved == BlackRook {
		switch from {
		case 56:
			newRights &^= CastlingBlackQ
		case 63:
			newRights &^= CastlingBlackK
		}
	}
	if st.captured.Type() == PieceTypeRook {
		switch to {
		case 0:
			newRights &^= CastlingWhiteQ
		case 7:
			newRights &^= CastlingWhiteK
		case 56:
			newRights &^= CastlingBlackQ
		case 63:
			newRights &^= CastlingBlackK
		}
	}
	if newRights != p.castlingRights {
		p.zobristKey ^= zobristCastle[p.castlingRights]
		p.zobristKey ^= zobristCastle[newRights]
		p.castlingRights = newRights
	}

	// Step 8 (side-to-move half): flip before the legality probe so the
	// attack oracle sees the position from the opponent's perspective.
	p.sideToMove = mover.Opponent()
	p.zobristKey ^= zobristSide

	if p.isSquareAttackedWithOcc(p.KingSquare(mover), mover.Opponent(), p.AllOccupancy()) {
		p.UnmakeMove(m, st)
		return false, st
	}

	if moved.Type() == PieceTypePawn || st.captured != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if mover == Black {
		p.fullmoveNumber++
	}

	return true, st
}

// UnmakeMove reverses a previously applied move, restoring the position
// to bitwise (and Zobrist) equality with its pre-Make state.
func (p *Position) UnmakeMove(m Move, st moveState) {
	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	flag := m.Flags()
	mover := moved.Color()

	p.sideToMove = mover

	if flag == FlagCastle && st.rookFrom != NoSquare {
		rook := p.removePiece(st.rookTo)
		p.addPiece(st.rookFrom, rook)
	}

	// The square is simply reoccupied by the pre-promotion pawn (moved),
	// regardless of what it was promoted to.
	p.removePiece(to)
	p.addPiece(from, moved)

	if st.captured != NoPiece {
		if flag == FlagEnPassant {
			var capSq Square
			if mover == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
			p.addPiece(capSq, st.captured)
		} else {
			p.addPiece(to, st.captured)
		}
	}

	p.castlingRights = st.prevCastling
	p.enPassantSquare = st.prevEnPassant
	p.halfmoveClock = st.prevHalfmove
	p.fullmoveNumber = st.prevFullmove
	p.zobristKey = st.prevZobrist
}

// castleRookSquares returns the rook's from/to squares for a king move to
// `to` during castling.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case 6:
		return 7, 5
	case 2:
		return 0, 3
	case 62:
		return 63, 61
	case 58:
		return 56, 59
	}
	return NoSquare, NoSquare
}
