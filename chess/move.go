package chess

import (
	"encoding/json"
	"fmt"
)

// CastleLeg is the rook half of a castling move.
type CastleLeg struct {
	From  Location
	To    Location
	Piece *Piece
}

// Move records one move; the stack of Moves in a Game is what undo pops.
type Move struct {
	From   Location
	To     Location
	Piece  *Piece
	Number int

	BigPawnMove    bool
	Capture        *Piece
	Promotion      bool
	PromotionPiece *Piece
	Castle         *CastleLeg
}

// Coordinate returns the move in coordinate notation.
func (m *Move) Coordinate() Coordinate {
	c := Coordinate{From: m.From, To: m.To}
	if m.PromotionPiece != nil {
		c.Promotion = m.PromotionPiece.name
	}
	return c
}

func (m *Move) String() string {
	return m.Coordinate().String()
}

// Coordinate is a move in long algebraic form: "e2e4", "e7e8q".
type Coordinate struct {
	From      Location
	To        Location
	Promotion Name
}

func ParseCoordinate(s string) (Coordinate, error) {
	var c Coordinate
	if _, err := fmt.Sscan(s, &c); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

func (c *Coordinate) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	s := string(token)
	if len(s) != 4 && len(s) != 5 {
		return fmt.Errorf("invalid move format %d %s", len(s), s)
	}
	from, err := ParseLocation(s[:2])
	if err != nil {
		return fmt.Errorf("invalid move format %s: %w", s, err)
	}
	to, err := ParseLocation(s[2:4])
	if err != nil {
		return fmt.Errorf("invalid move format %s: %w", s, err)
	}
	promotion := NoName
	if len(s) == 5 {
		promotion = nameFromLetter(s[4])
		if !promotion.IsPromotion() {
			return fmt.Errorf("invalid move format %s: %w", s, ErrInvalidPromotion)
		}
	}
	*c = Coordinate{From: from, To: to, Promotion: promotion}
	return nil
}

func (c Coordinate) String() string {
	if c.Promotion == NoName {
		return c.From.String() + c.To.String()
	}
	return c.From.String() + c.To.String() + string(fenLetters[c.Promotion]|0x20)
}

func (c *Coordinate) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	_, err := fmt.Sscan(s, c)
	return err
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
