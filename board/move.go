package board

// Move packs a chess move into a single 32-bit value: from-square,
// to-square, moving piece, captured piece (if any), promotion piece (if
// any), and special-move flags. One Move names exactly one destination
// square — never an OR-collapsed destination bitboard — so Unmake always
// has the piece identity it needs.
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24
)

// Special-move flags. Promotion is signalled by a non-zero promotion
// piece rather than a flag bit.
const (
	FlagNone      uint8 = 0
	FlagCastle    uint8 = 1
	FlagEnPassant uint8 = 2
)

// NewMove constructs a Move from its components.
func NewMove(from, to Square, moved, captured, promotion Piece, flag uint8) Move {
	return Move(uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(moved&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x3) << moveFlagShift))
}

func (m Move) From() Square          { return Square((uint32(m) >> moveFromShift) & 0x3F) }
func (m Move) To() Square            { return Square((uint32(m) >> moveToShift) & 0x3F) }
func (m Move) MovedPiece() Piece     { return Piece((uint32(m) >> movePieceShift) & 0xF) }
func (m Move) CapturedPiece() Piece  { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }
func (m Move) Flags() uint8          { return uint8((uint32(m) >> moveFlagShift) & 0x3) }
func (m Move) IsCapture() bool       { return m.CapturedPiece() != NoPiece }
func (m Move) IsCastle() bool        { return m.Flags() == FlagCastle }
func (m Move) IsEnPassant() bool     { return m.Flags() == FlagEnPassant }

// String renders a move in plain coordinate notation (e.g. "e2e4",
// "e7e8q" for a promotion).
func (m Move) String() string {
	from, to := m.From(), m.To()
	s := []byte{
		byte('a' + from.File()), byte('1' + from.Rank()),
		byte('a' + to.File()), byte('1' + to.Rank()),
	}
	if promo := m.PromotionPiece(); promo != NoPiece {
		s = append(s, byte(charFromPieceType(promo.Type())+('a'-'A')))
	}
	return string(s)
}

func charFromPieceType(pt PieceType) byte {
	switch pt {
	case PieceTypePawn:
		return 'P'
	case PieceTypeKnight:
		return 'N'
	case PieceTypeBishop:
		return 'B'
	case PieceTypeRook:
		return 'R'
	case PieceTypeQueen:
		return 'Q'
	case PieceTypeKing:
		return 'K'
	default:
		return '?'
	}
}
