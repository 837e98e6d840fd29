package chess

import (
	"fmt"
	"strings"
)

// InitialPlacement is the board field of the standard starting FEN.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// FromFEN builds a game from the piece-placement field of fen. Any other
// fields are ignored: white moves first and castling rights follow from
// which pieces have moved.
func FromFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidFEN)
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(ranks))
	}
	g := emptyGame()
	for i, rank := range ranks {
		row := 7 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			name := nameFromLetter(c)
			if name == NoName || col > 7 {
				return nil, fmt.Errorf("%w: rank %d %q", ErrInvalidFEN, row+1, rank)
			}
			color := White
			if c >= 'a' && c <= 'z' {
				color = Black
			}
			loc, _ := NewLocation(row, col)
			g.board.set(loc, NewPiece(name, color, loc))
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: rank %d %q", ErrInvalidFEN, row+1, rank)
		}
	}
	return g, nil
}

// Placement writes the board as a FEN piece-placement field.
func (g *Game) Placement() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			p := g.board[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
