package engine_test

import (
	"testing"

	"chesscore/board"
	"chesscore/engine"
)

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	p := board.NewGame()
	if got := engine.Evaluate(p); got != 0 {
		t.Fatalf("starting position should be materially/centrally symmetric, got %d", got)
	}
}

func TestEvaluateRewardsCenterOccupation(t *testing.T) {
	p := board.NewGame()
	for s := board.Square(0); s < 64; s++ {
		p.ClearSquare(s)
	}
	p.SetPiece(board.Square(4+3*8), board.WhiteKnight) // e4
	p.SetPiece(board.Square(0), board.WhiteKing)
	p.SetPiece(board.Square(63), board.BlackKing)

	got := engine.Evaluate(p)
	want := 320 + 20 // knight material + center bonus
	if got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	p := board.NewGame()
	p.ClearSquare(board.Square(48)) // remove a black pawn (a7)
	if got := engine.Evaluate(p); got != 100 {
		t.Fatalf("removing a black pawn should favor White by 100, got %d", got)
	}
}
