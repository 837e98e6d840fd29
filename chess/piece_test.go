package chess

import (
	. "gopkg.in/check.v1"
)

func (s *ChessSuite) TestRookMoves(c *C) {
	for _, square := range []string{"a1", "d4", "h8", "e6"} {
		rook := NewPiece(Rook, White, MustLocation(square))
		c.Check(rook.Moves(), HasLen, 14, Commentf("rook on %s", square))
	}
}

func (s *ChessSuite) TestBishopMoves(c *C) {
	for square, count := range map[string]int{"c8": 7, "c3": 11, "h4": 7} {
		bishop := NewPiece(Bishop, Black, MustLocation(square))
		c.Check(bishop.Moves(), HasLen, count, Commentf("bishop on %s", square))
	}
}

func (s *ChessSuite) TestKnightMoves(c *C) {
	for square, count := range map[string]int{"b1": 3, "f7": 6, "d3": 8} {
		knight := NewPiece(Knight, White, MustLocation(square))
		c.Check(knight.Moves(), HasLen, count, Commentf("knight on %s", square))
	}
	knight := NewPiece(Knight, White, MustLocation("b1"))
	c.Check(squares(knight.Moves()), DeepEquals, []string{"a3", "c3", "d2"})
}

func (s *ChessSuite) TestQueenMoves(c *C) {
	for square, count := range map[string]int{"d8": 21, "f7": 23, "d3": 25, "a1": 21} {
		queen := NewPiece(Queen, White, MustLocation(square))
		c.Check(queen.Moves(), HasLen, count, Commentf("queen on %s", square))
	}
}

func (s *ChessSuite) TestKingMoves(c *C) {
	king := NewPiece(King, White, MustLocation("e1"))
	c.Check(squares(king.Moves()), DeepEquals, []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"})

	king.move(MustLocation("e2"))
	c.Check(king.Moves(), HasLen, 8)
	c.Check(king.HasBeenMoved(), Equals, true)

	king.move(MustLocation("e1"))
	c.Check(king.Moves(), HasLen, 5)

	king.move(MustLocation("h4"))
	c.Check(king.Moves(), HasLen, 5)
}

func (s *ChessSuite) TestPawnMoves(c *C) {
	pawn := NewPiece(Pawn, White, MustLocation("a2"))
	c.Check(squares(pawn.Moves()), DeepEquals, []string{"a3", "a4", "b3"})

	pawn.move(MustLocation("a3"))
	c.Check(squares(pawn.Moves()), DeepEquals, []string{"a4", "b4"})

	pawn.move(MustLocation("c3"))
	c.Check(squares(pawn.Moves()), DeepEquals, []string{"b4", "c4", "d4"})

	black := NewPiece(Pawn, Black, MustLocation("e7"))
	c.Check(squares(black.Moves()), DeepEquals, []string{"d6", "e5", "e6", "f6"})
}

func (s *ChessSuite) TestRemovedPieceHasNoMoves(c *C) {
	queen := NewPiece(Queen, Black, MustLocation("d8"))
	queen.remove()
	c.Check(queen.IsRemoved(), Equals, true)
	c.Check(queen.Moves(), HasLen, 0)
	queen.unremove()
	c.Check(queen.Moves(), HasLen, 21)
}

func (s *ChessSuite) TestMoveType(c *C) {
	king := NewPiece(King, White, MustLocation("e1"))
	c.Check(king.MoveType(MustLocation("g1")), Equals, Castle)
	c.Check(king.MoveType(MustLocation("c1")), Equals, Castle)
	c.Check(king.MoveType(MustLocation("f1")), Equals, NoMoveType)

	pawn := NewPiece(Pawn, White, MustLocation("e2"))
	c.Check(pawn.MoveType(MustLocation("e4")), Equals, BigPawn)
	c.Check(pawn.MoveType(MustLocation("e3")), Equals, NoMoveType)
	c.Check(pawn.MoveType(MustLocation("d3")), Equals, DiagPawn)

	pawn = NewPiece(Pawn, White, MustLocation("b7"))
	c.Check(pawn.MoveType(MustLocation("b8")), Equals, Promotion)
	c.Check(pawn.MoveType(MustLocation("a8")), Equals, Promotion)

	knight := NewPiece(Knight, White, MustLocation("b1"))
	c.Check(knight.MoveType(MustLocation("c3")), Equals, NoMoveType)
}

func (s *ChessSuite) TestMoveUnmove(c *C) {
	rook := NewPiece(Rook, Black, MustLocation("h8"))
	c.Check(rook.HasBeenMoved(), Equals, false)
	rook.move(MustLocation("h5"))
	rook.move(MustLocation("c5"))
	c.Check(rook.Location(), Equals, MustLocation("c5"))

	rook.unmove()
	c.Check(rook.Location(), Equals, MustLocation("h5"))
	rook.unmove()
	c.Check(rook.Location(), Equals, MustLocation("h8"))
	c.Check(rook.HasBeenMoved(), Equals, false)

	rook.unmove()
	c.Check(rook.Location(), Equals, MustLocation("h8"))
}

func (s *ChessSuite) TestCopy(c *C) {
	pawn := NewPiece(Pawn, White, MustLocation("d2"))
	pawn.move(MustLocation("d4"))

	dup := pawn.Copy()
	c.Check(dup, Not(Equals), pawn)
	c.Check(dup.Location(), Equals, MustLocation("d4"))
	c.Check(dup.HasBeenMoved(), Equals, true)
	c.Check(squares(dup.Moves()), DeepEquals, []string{"c5", "d5", "e5"})

	dup.unmove()
	c.Check(dup.Location(), Equals, MustLocation("d4"))

	dup.move(MustLocation("d5"))
	c.Check(pawn.Location(), Equals, MustLocation("d4"))
}

func (s *ChessSuite) TestNames(c *C) {
	for _, text := range []string{"queen", "Queen", "q", "Q"} {
		name, err := ParseName(text)
		c.Assert(err, IsNil)
		c.Check(name, Equals, Queen)
	}
	_, err := ParseName("emperor")
	c.Check(err, ErrorMatches, `invalid piece name: "emperor"`)

	c.Check(NewPiece(Knight, Black, 0).Letter(), Equals, byte('n'))
	c.Check(NewPiece(Knight, White, 0).Letter(), Equals, byte('N'))
	c.Check(NewPiece(King, White, 4).String(), Equals, "white king e1")

	color, err := ParseColor("Black")
	c.Assert(err, IsNil)
	c.Check(color, Equals, Black)
	c.Check(color.Other(), Equals, White)
	_, err = ParseColor("green")
	c.Check(err, ErrorMatches, "invalid color.*")
}
