package chesscore

import (
	"fmt"

	"chesscore/board"
)

// ParseMoveString parses the boundary's move grammar: a 5-character
// string "<file><rank> <file><rank>" (from, space, to), files a-h,
// ranks 1-8. Promotions are never spelled out here — they resolve to a
// queen automatically once applied. This is parsing only; it is not the
// excluded interactive command loop (terminal I/O is a collaborator's
// job, not this module's).
func ParseMoveString(s string) (from, to board.Square, err error) {
	if len(s) != 5 || s[2] != ' ' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInputMalformed, s)
	}
	from, err = parseSquare(s[0:2])
	if err != nil {
		return 0, 0, err
	}
	to, err = parseSquare(s[3:5])
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func parseSquare(s string) (board.Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInputMalformed, s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("%w: %q", ErrInputMalformed, s)
	}
	return board.Square(int(rank-'1')*8 + int(file-'a')), nil
}

// ApplyMoveNotation parses s and applies it to g in one step.
func (g *Game) ApplyMoveNotation(s string) error {
	from, to, err := ParseMoveString(s)
	if err != nil {
		return err
	}
	return g.ApplyMove(from, to)
}
