// Package chesscore is the external surface of the engine: a Game facade
// over the board and engine packages, consumed only by move-source and
// renderer collaborators (terminal parser, GUI, or network layer — none
// of which live in this module).
package chesscore

import (
	"log"

	"chesscore/board"
	"chesscore/engine"
)

// Status is the coarse outcome of a game at a point in time.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Snapshot is an opaque, read-only, value-typed view of a position: the
// piece on every square plus whose turn it is. A renderer may hold onto
// one across calls without risk — it shares no memory with the live
// Position and mutating it has no effect on the game.
type Snapshot struct {
	Pieces     [64]board.Piece
	SideToMove board.Color
}

// Game wraps a single live board.Position and the search machinery used
// to suggest moves for it. It is the sole external entry point into this
// module: terminal I/O, a GUI, or a network handler all drive a game
// exclusively through these methods.
type Game struct {
	pos      *board.Position
	searcher *engine.Searcher
}

// NewGame starts a fresh game from the standard opening array.
func NewGame() *Game {
	return &Game{
		pos:      board.NewGame(),
		searcher: engine.NewSearcher(1 << 16),
	}
}

// PositionSnapshot returns a read-only copy of the current position.
func (g *Game) PositionSnapshot() Snapshot {
	snap := Snapshot{SideToMove: g.pos.SideToMove()}
	for sq := board.Square(0); sq < 64; sq++ {
		snap.Pieces[sq] = g.pos.PieceAt(sq)
	}
	return snap
}

// LegalMoves returns every legal move available to the side to move.
func (g *Game) LegalMoves() []board.Move {
	return g.pos.GenerateMoves()
}

// TerminalStatus reports whether the game has ended, and how. loser is
// only meaningful when status is Checkmate, in which case it names the
// mated side — the side to move in the position, which has no legal move
// and stands in check. For Ongoing or Stalemate, loser is the zero Color
// and carries no meaning.
func (g *Game) TerminalStatus() (status Status, loser board.Color) {
	switch g.pos.TerminalStatus() {
	case board.Checkmate:
		return Checkmate, g.pos.SideToMove()
	case board.Stalemate:
		return Stalemate, 0
	default:
		return Ongoing, 0
	}
}

// ApplyMove validates and applies a move given as raw from/to squares.
// It takes no promotion hint: a pawn move onto the back rank always
// promotes to a queen. It returns nil on success, or one of the error
// kinds in errors.go on rejection, leaving the position unchanged.
func (g *Game) ApplyMove(from, to board.Square) error {
	if g.pos.TerminalStatus() != board.Ongoing {
		return ErrTerminal
	}

	piece := g.pos.PieceAt(from)
	if piece == board.NoPiece {
		return ErrNoPiece
	}
	if piece.Color() != g.pos.SideToMove() {
		return ErrWrongColor
	}

	var match board.Move
	found := false
	for _, m := range g.pos.GeneratePseudoMoves() {
		if m.From() == from && m.To() == to {
			match = m
			found = true
			break
		}
	}
	if !found {
		return ErrIllegalGeometry
	}

	ok, _ := g.pos.MakeMove(match)
	if !ok {
		return ErrLeavesKingInCheck
	}

	log.Printf("applied move %s, side to move now %v", match, g.pos.SideToMove())
	return nil
}

// SuggestMove runs a fixed-depth search and returns the move the engine
// judges best for the side to move. ok is false iff the game is over.
func (g *Game) SuggestMove(depth int) (m board.Move, score int, ok bool) {
	return g.searcher.FindBestMove(g.pos, depth)
}
