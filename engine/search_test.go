package engine_test

import (
	"testing"

	"chesscore/board"
	"chesscore/engine"
)

func clear(p *board.Position) {
	for s := board.Square(0); s < 64; s++ {
		p.ClearSquare(s)
	}
}

func TestFindBestMoveTakesFreeQueen(t *testing.T) {
	p := board.NewGame()
	clear(p)
	p.SetPiece(board.Square(12), board.WhiteKing) // e2, off the a1-h1 line
	p.SetPiece(board.Square(60), board.BlackKing) // e8
	p.SetPiece(board.Square(0), board.WhiteRook)  // a1
	p.SetPiece(board.Square(7), board.BlackQueen) // h1, hanging to the rook

	s := engine.NewSearcher(1024)
	move, _, ok := s.FindBestMove(p, 2)
	if !ok {
		t.Fatalf("expected a legal move")
	}
	if move.From() != board.Square(0) || move.To() != board.Square(7) {
		t.Fatalf("expected rook to capture the hanging queen (a1h1), got %s", move)
	}
}

func TestFindBestMoveReportsNoMoveWhenTerminal(t *testing.T) {
	p := board.NewGame()
	clear(p)
	// Textbook stalemate: Black king boxed into h8 by a queen covering its
	// only escape squares, with no piece giving check.
	p.SetPiece(board.Square(7+7*8), board.BlackKing)  // h8
	p.SetPiece(board.Square(6+5*8), board.WhiteQueen) // g6
	p.SetPiece(board.Square(5+6*8), board.WhiteKing)  // f7
	p.SetSideToMove(board.Black)

	if p.TerminalStatus() != board.Stalemate {
		t.Fatalf("expected a constructed stalemate position, got status %v", p.TerminalStatus())
	}

	s := engine.NewSearcher(1024)
	_, _, ok := s.FindBestMove(p, 3)
	if ok {
		t.Fatalf("FindBestMove should report no move for a terminal position")
	}
}
