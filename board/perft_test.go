package board_test

import (
	"testing"

	"chesscore/board"
)

func TestPerftInitialPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		p := board.NewGame()
		if got := p.Perft(c.depth); got != c.want {
			t.Errorf("perft(%d): got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := board.NewGame()
	total := p.Perft(3)
	var sum uint64
	for _, count := range p.PerftDivide(3) {
		sum += count
	}
	if sum != total {
		t.Fatalf("divide sum %d != Perft(3) %d", sum, total)
	}
}
