package chesscore

import "errors"

// Error kinds observable at the core's surface. All are recoverable: the
// Position is unchanged after any error return. The core never asserts
// on bad input — assertions are reserved for internal invariant
// violations, not user-facing rejections.
var (
	ErrInputMalformed    = errors.New("move string fails format check")
	ErrNoPiece           = errors.New("from square is empty")
	ErrWrongColor        = errors.New("from square holds the opponent's piece")
	ErrIllegalGeometry   = errors.New("piece cannot reach that square by its movement rules")
	ErrLeavesKingInCheck = errors.New("move would leave the mover's own king in check")
	ErrTerminal          = errors.New("the game is already over")
)
