package chesscore_test

import (
	"errors"
	"testing"

	"chesscore"
	"chesscore/board"
)

func TestScenarioOpeningPawn(t *testing.T) {
	g := chesscore.NewGame()
	if err := g.ApplyMoveNotation("e2 e4"); err != nil {
		t.Fatalf("e2e4 should be legal: %v", err)
	}
	snap := g.PositionSnapshot()
	if snap.Pieces[board.Square(4+3*8)] != board.WhitePawn {
		t.Fatalf("expected white pawn on e4")
	}
	if snap.SideToMove != board.Black {
		t.Fatalf("expected Black to move after White's first move")
	}
}

func TestScenarioIllegalKnight(t *testing.T) {
	g := chesscore.NewGame()
	err := g.ApplyMoveNotation("b1 b3")
	if !errors.Is(err, chesscore.ErrIllegalGeometry) {
		t.Fatalf("expected IllegalGeometry, got %v", err)
	}
}

func TestScenarioBlockedBishop(t *testing.T) {
	g := chesscore.NewGame()
	err := g.ApplyMoveNotation("c1 h6")
	if !errors.Is(err, chesscore.ErrIllegalGeometry) {
		t.Fatalf("expected IllegalGeometry (blocked by d2 pawn), got %v", err)
	}
}

func TestScenarioFoolsMate(t *testing.T) {
	g := chesscore.NewGame()
	moves := []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4"}
	for _, mv := range moves {
		if err := g.ApplyMoveNotation(mv); err != nil {
			t.Fatalf("move %q should be legal: %v", mv, err)
		}
	}
	status, loser := g.TerminalStatus()
	if status != chesscore.Checkmate {
		t.Fatalf("expected checkmate after fool's mate, got %v", status)
	}
	if loser != board.White {
		t.Fatalf("expected White to be mated, got loser %v", loser)
	}
}

func TestScenarioEnPassantConsume(t *testing.T) {
	g := chesscore.NewGame()
	for _, mv := range []string{"e2 e4", "a7 a6", "e4 e5", "d7 d5"} {
		if err := g.ApplyMoveNotation(mv); err != nil {
			t.Fatalf("move %q should be legal: %v", mv, err)
		}
	}
	if err := g.ApplyMoveNotation("e5 d6"); err != nil {
		t.Fatalf("en-passant capture should be legal: %v", err)
	}
	snap := g.PositionSnapshot()
	if snap.Pieces[board.Square(3+5*8)] != board.WhitePawn {
		t.Fatalf("expected white pawn on d6")
	}
	if snap.Pieces[board.Square(3+4*8)] != board.NoPiece {
		t.Fatalf("expected black pawn formerly on d5 to be removed")
	}
}

func TestScenarioCastleKingside(t *testing.T) {
	g := chesscore.NewGame()
	moves := []string{"e2 e4", "e7 e5", "g1 f3", "b8 c6", "f1 c4", "g8 f6"}
	for _, mv := range moves {
		if err := g.ApplyMoveNotation(mv); err != nil {
			t.Fatalf("move %q should be legal: %v", mv, err)
		}
	}
	if err := g.ApplyMoveNotation("e1 g1"); err != nil {
		t.Fatalf("kingside castle should be legal: %v", err)
	}
	snap := g.PositionSnapshot()
	if snap.Pieces[board.Square(6)] != board.WhiteKing {
		t.Fatalf("expected king on g1")
	}
	if snap.Pieces[board.Square(5)] != board.WhiteRook {
		t.Fatalf("expected rook on f1")
	}
}

func TestApplyMoveRejectsEmptyFromSquare(t *testing.T) {
	g := chesscore.NewGame()
	err := g.ApplyMoveNotation("e3 e4")
	if !errors.Is(err, chesscore.ErrNoPiece) {
		t.Fatalf("expected NoPiece, got %v", err)
	}
}

func TestApplyMoveRejectsMalformedString(t *testing.T) {
	g := chesscore.NewGame()
	err := g.ApplyMoveNotation("e2e4")
	if !errors.Is(err, chesscore.ErrInputMalformed) {
		t.Fatalf("expected InputMalformed, got %v", err)
	}
}

func TestSuggestMoveReturnsALegalOpeningMove(t *testing.T) {
	g := chesscore.NewGame()
	m, _, ok := g.SuggestMove(2)
	if !ok {
		t.Fatalf("expected a suggestion from the opening position")
	}
	legal := g.LegalMoves()
	found := false
	for _, lm := range legal {
		if lm == m {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("suggested move %s is not among the position's legal moves", m)
	}
}

func TestSuggestMoveReportsNoMoveWhenTerminal(t *testing.T) {
	g := chesscore.NewGame()
	moves := []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4"}
	for _, mv := range moves {
		if err := g.ApplyMoveNotation(mv); err != nil {
			t.Fatalf("move %q should be legal: %v", mv, err)
		}
	}
	if _, _, ok := g.SuggestMove(2); ok {
		t.Fatalf("expected no suggestion from a checkmated position")
	}
}
