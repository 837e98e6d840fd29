package chess

import (
	"golang.org/x/exp/slices"
)

// MoveSet is the legal moves from one square, bound to the game state it
// was computed from.
type MoveSet struct {
	From  Location
	Moves []*Move

	game    *Game
	version uint64
}

// Find returns the offered move landing on to, or nil.
func (s *MoveSet) Find(to Location) *Move {
	i := slices.IndexFunc(s.Moves, func(m *Move) bool { return m.To == to })
	if i < 0 {
		return nil
	}
	return s.Moves[i]
}

// ValidMoves returns the legal moves of the piece at loc, or nil when the
// square is empty, the piece is removed, it is not that color's turn, or
// nothing is legal.
func (g *Game) ValidMoves(loc Location) *MoveSet {
	if loc > 63 || g.status == Inactive {
		return nil
	}
	p := g.board.at(loc)
	if p == nil || p.removed || p.color != g.current {
		return nil
	}
	var moves []*Move
	for _, to := range p.Moves() {
		if !g.basicChecks(p, to) ||
			!g.unobstructed(p, to) ||
			!g.validCastle(p, to) ||
			!g.validPawnMove(p, to) {
			continue
		}
		m := g.moveObject(p, to)
		if g.leavesKingSafe(m) {
			moves = append(moves, m)
		}
	}
	if len(moves) == 0 {
		return nil
	}
	return &MoveSet{From: loc, Moves: moves, game: g, version: g.version}
}

// PossibleMoves returns one MoveSet per square of color that has a legal
// move, or nil when there are none.
func (g *Game) PossibleMoves(color Color) []*MoveSet {
	var sets []*MoveSet
	for _, p := range g.Pieces(color) {
		if set := g.ValidMoves(p.location); set != nil {
			sets = append(sets, set)
		}
	}
	return sets
}

// leavesKingSafe plays m on the live board, probes the mover's king and
// takes m back. Trials never overlap.
func (g *Game) leavesKingSafe(m *Move) bool {
	g.apply(m)
	defer g.undo()
	return !g.kingCapturable(m.Piece.color)
}

func (g *Game) basicChecks(p *Piece, to Location) bool {
	if p.color != g.current || to == p.location {
		return false
	}
	if occupant := g.board.at(to); occupant != nil && occupant.color == p.color {
		return false
	}
	return true
}

func (g *Game) unobstructed(p *Piece, to Location) bool {
	if p.removed {
		return false
	}
	switch p.name {
	case Bishop, Rook, Queen:
		return g.board.pathClear(p.location, to)
	case Pawn:
		if p.MoveType(to) == BigPawn {
			return g.board.pathClear(p.location, to)
		}
	}
	return true
}

func (g *Game) validCastle(p *Piece, to Location) bool {
	if p.name != King || p.MoveType(to) != Castle {
		return true
	}
	home, _ := NewLocation(p.color.homeRow(), 4)
	if p.location != home {
		return false
	}
	if g.kingCapturable(p.color) {
		return false
	}
	rook, ok := g.castlingRook(p, to)
	if !ok {
		return false
	}
	if !g.board.pathClear(p.location, rook.location) {
		return false
	}

	dir := sign(to.Col() - p.location.Col())
	transit, _ := p.location.offset(0, dir)

	origin := p.location
	g.board.set(origin, nil)
	defer g.board.set(origin, p)

	return !g.squareCapturable(transit, p.color) && !g.squareCapturable(to, p.color)
}

// castlingRook finds the unmoved rook that pairs with a castle to to.
func (g *Game) castlingRook(king *Piece, to Location) (*Piece, bool) {
	col := 0
	if to.Col() > king.location.Col() {
		col = 7
	}
	loc, _ := NewLocation(king.location.Row(), col)
	rook := g.board.at(loc)
	if rook == nil || rook.name != Rook || rook.color != king.color || rook.HasBeenMoved() {
		return nil, false
	}
	return rook, true
}

func (g *Game) validPawnMove(p *Piece, to Location) bool {
	if p.removed {
		return false
	}
	if p.name != Pawn {
		return true
	}
	if to.Col() == p.location.Col() {
		return g.board.empty(to)
	}
	occupant := g.board.at(to)
	return (occupant != nil && occupant.color != p.color) || g.enPassant(p, to)
}

// enPassant reports whether p moving diagonally to the empty square to
// captures a pawn that just advanced two squares past it.
func (g *Game) enPassant(p *Piece, to Location) bool {
	if p.name != Pawn || !g.board.empty(to) {
		return false
	}
	last := g.LastMove()
	if last == nil || !last.BigPawnMove || last.Piece.color == p.color {
		return false
	}
	beside, ok := NewLocation(p.location.Row(), to.Col())
	if !ok || last.To != beside || abs(to.Col()-p.location.Col()) != 1 {
		return false
	}
	passed := (last.From + last.To) / 2
	return to == passed
}

// kingCapturable is false when color has no king on the board.
func (g *Game) kingCapturable(color Color) bool {
	king := g.board.king(color)
	if king == nil {
		return false
	}
	return g.squareCapturable(king.location, color)
}

// squareCapturable reports whether a piece of color standing on loc could
// be taken. Turn order, castling and pawn pushes do not matter here.
func (g *Game) squareCapturable(loc Location, color Color) bool {
	for _, p := range g.Pieces(color.Other()) {
		if p.removed {
			continue
		}
		if slices.Contains(p.attacks(), loc) && g.unobstructed(p, loc) {
			return true
		}
	}
	return false
}

// moveObject builds the Move for a destination that passed the filters.
func (g *Game) moveObject(p *Piece, to Location) *Move {
	m := &Move{From: p.location, To: to, Piece: p, Number: g.number}
	switch p.MoveType(to) {
	case BigPawn:
		m.BigPawnMove = true
	case Castle:
		if rook, ok := g.castlingRook(p, to); ok {
			rookTo, _ := p.location.offset(0, sign(to.Col()-p.location.Col()))
			m.Castle = &CastleLeg{From: rook.location, To: rookTo, Piece: rook}
		}
	}
	if p.name == Pawn && (to.Row() == 0 || to.Row() == 7) {
		m.Promotion = true
	}
	if occupant := g.board.at(to); occupant != nil {
		m.Capture = occupant
	} else if g.enPassant(p, to) {
		m.Capture = g.board.at(g.LastMove().To)
	}
	return m
}
