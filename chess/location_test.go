package chess

import (
	"encoding/json"

	. "gopkg.in/check.v1"
)

func (s *ChessSuite) TestAlgebraicRoundTrip(c *C) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			alg, err := NumToAlgebraic(row, col)
			c.Assert(err, IsNil)
			r, k, err := AlgebraicToNum(alg)
			c.Assert(err, IsNil)
			c.Check(r, Equals, row)
			c.Check(k, Equals, col)

			loc, ok := NewLocation(row, col)
			c.Assert(ok, Equals, true)
			c.Check(loc.String(), Equals, alg)
			c.Check(MustLocation(alg), Equals, loc)
		}
	}
}

func (s *ChessSuite) TestAlgebraicToNum(c *C) {
	row, col, err := AlgebraicToNum("b4")
	c.Assert(err, IsNil)
	c.Check(row, Equals, 3)
	c.Check(col, Equals, 1)

	for _, bad := range []string{"", "a", "i1", "a9", "a0", "B4", "b44"} {
		_, _, err := AlgebraicToNum(bad)
		c.Check(err, ErrorMatches, "invalid location.*", Commentf("%q", bad))
	}
}

func (s *ChessSuite) TestNumToAlgebraicOffBoard(c *C) {
	_, err := NumToAlgebraic(8, 0)
	c.Check(err, ErrorMatches, `invalid location: \(8, 0\)`)
	_, err = NumToAlgebraic(0, -1)
	c.Check(err, NotNil)
	_, ok := NewLocation(-1, 3)
	c.Check(ok, Equals, false)
}

func (s *ChessSuite) TestLocationText(c *C) {
	var locations []Location
	c.Assert(json.Unmarshal([]byte(`["a1","h8","e4"]`), &locations), IsNil)
	c.Check(locations, DeepEquals, []Location{0, 63, 28})

	out, err := json.Marshal(locations)
	c.Assert(err, IsNil)
	c.Check(string(out), Equals, `["a1","h8","e4"]`)

	c.Check(json.Unmarshal([]byte(`["z9"]`), &locations), ErrorMatches, "invalid location.*")
	c.Check(Location(64).String(), Equals, "Location(64)")
}

func (s *ChessSuite) TestCoordinate(c *C) {
	coordinate, err := ParseCoordinate("e7e8q")
	c.Assert(err, IsNil)
	c.Check(coordinate, Equals, Coordinate{From: MustLocation("e7"), To: MustLocation("e8"), Promotion: Queen})
	c.Check(coordinate.String(), Equals, "e7e8q")

	coordinate, err = ParseCoordinate("g1f3")
	c.Assert(err, IsNil)
	c.Check(coordinate.Promotion, Equals, NoName)
	c.Check(coordinate.String(), Equals, "g1f3")

	_, err = ParseCoordinate("e7e8k")
	c.Check(err, ErrorMatches, "invalid move format e7e8k: invalid promotion piece")
	_, err = ParseCoordinate("e2")
	c.Check(err, ErrorMatches, "invalid move format 2 e2")
	_, err = ParseCoordinate("e2x4")
	c.Check(err, ErrorMatches, "invalid move format e2x4: invalid location.*")
}

func (s *ChessSuite) TestCoordinateJSON(c *C) {
	var request struct {
		Move Coordinate
	}
	c.Assert(json.Unmarshal([]byte(`{"Move":"a7a8n"}`), &request), IsNil)
	c.Check(request.Move.Promotion, Equals, Knight)

	out, err := json.Marshal(request)
	c.Assert(err, IsNil)
	c.Check(string(out), Equals, `{"Move":"a7a8n"}`)

	c.Check(json.Unmarshal([]byte(`{"Move":4}`), &request), NotNil)
}
