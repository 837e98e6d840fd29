package main

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/maplefeline/playchess/chess"
)

// moveList is stored as space separated coordinates, "e2e4 e7e5".
type moveList []chess.Coordinate

func historyMoves(game *chess.Game) moveList {
	history := game.History()
	moves := make(moveList, 0, len(history))
	for _, m := range history {
		moves = append(moves, m.Coordinate())
	}
	return moves
}

func (moves moveList) String() string {
	words := make([]string, 0, len(moves))
	for _, m := range moves {
		words = append(words, m.String())
	}
	return strings.Join(words, " ")
}

func (moves moveList) Value() (driver.Value, error) {
	return moves.String(), nil
}

func (moves *moveList) Scan(cell interface{}) error {
	var s string
	switch cell := cell.(type) {
	case string:
		s = cell
	case []byte:
		s = string(cell)
	case nil:
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	words := strings.Fields(s)
	list := make(moveList, 0, len(words))
	for _, word := range words {
		m, err := chess.ParseCoordinate(word)
		if err != nil {
			return err
		}
		list = append(list, m)
	}
	*moves = list
	return nil
}

type pieceView struct {
	Square chess.Location
	Name   chess.Name
	Color  chess.Color
	Glyph  string
	Moved  bool
}

func boardPieces(game *chess.Game) []pieceView {
	pieces := append(game.Pieces(chess.White), game.Pieces(chess.Black)...)
	views := make([]pieceView, 0, len(pieces))
	for _, p := range pieces {
		views = append(views, pieceView{
			Square: p.Location(),
			Name:   p.Name(),
			Color:  p.Color(),
			Glyph:  string(p.Glyph()),
			Moved:  p.HasBeenMoved(),
		})
	}
	return views
}

func setMoves(set *chess.MoveSet) []chess.Coordinate {
	if set == nil {
		return []chess.Coordinate{}
	}
	moves := make([]chess.Coordinate, 0, len(set.Moves))
	for _, m := range set.Moves {
		moves = append(moves, m.Coordinate())
	}
	return moves
}
