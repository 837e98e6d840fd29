package chess

// Board board. Row 0 is rank 1.
type Board [8][8]*Piece

var backRank = [8]Name{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() Board {
	var board Board
	for col, name := range backRank {
		board[0][col] = NewPiece(name, White, Location(col))
		board[1][col] = NewPiece(Pawn, White, Location(8+col))
		board[6][col] = NewPiece(Pawn, Black, Location(48+col))
		board[7][col] = NewPiece(name, Black, Location(56+col))
	}
	return board
}

func (board *Board) at(loc Location) *Piece {
	return board[loc.Row()][loc.Col()]
}

func (board *Board) set(loc Location, p *Piece) {
	board[loc.Row()][loc.Col()] = p
}

func (board *Board) empty(loc Location) bool {
	return board.at(loc) == nil
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must share a row, column or diagonal.
func (board *Board) pathClear(from, to Location) bool {
	dRow := sign(to.Row() - from.Row())
	dCol := sign(to.Col() - from.Col())
	loc, ok := from.offset(dRow, dCol)
	for ok && loc != to {
		if !board.empty(loc) {
			return false
		}
		loc, ok = loc.offset(dRow, dCol)
	}
	return true
}

func (board *Board) each(fn func(p *Piece)) {
	for row := range board {
		for _, p := range board[row] {
			if p != nil {
				fn(p)
			}
		}
	}
}

func (board *Board) king(color Color) *Piece {
	var king *Piece
	board.each(func(p *Piece) {
		if king == nil && p.name == King && p.color == color {
			king = p
		}
	})
	return king
}
