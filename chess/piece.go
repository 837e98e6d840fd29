package chess

import (
	"fmt"
	"strings"
)

// Color color.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// forward is the row direction pawns of this color advance in.
func (c Color) forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// homeRow is the back rank of this color.
func (c Color) homeRow() int {
	if c == Black {
		return 7
	}
	return 0
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return White, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = color
	return nil
}

// Name is the kind of a piece.
type Name uint8

const (
	NoName Name = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var nameStrings = [...]string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

// fenLetters are the white letters; black uses lower case.
var fenLetters = [...]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}

var whiteGlyphs = [...]rune{0, '♙', '♘', '♗', '♖', '♕', '♔'}
var blackGlyphs = [...]rune{0, '♟', '♞', '♝', '♜', '♛', '♚'}

func (n Name) String() string {
	if int(n) >= len(nameStrings) {
		return fmt.Sprintf("Name(%d)", uint8(n))
	}
	return nameStrings[n]
}

func ParseName(s string) (Name, error) {
	s = strings.ToLower(s)
	for i, name := range nameStrings {
		if i != 0 && name == s {
			return Name(i), nil
		}
	}
	if len(s) == 1 {
		if n := nameFromLetter(s[0]); n != NoName {
			return n, nil
		}
	}
	return NoName, fmt.Errorf("%w: %q", ErrInvalidName, s)
}

func nameFromLetter(c byte) Name {
	upper := c &^ 0x20
	for i, letter := range fenLetters {
		if i != 0 && letter == upper {
			return Name(i)
		}
	}
	return NoName
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Name) UnmarshalText(text []byte) error {
	name, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = name
	return nil
}

// IsPromotion reports whether a pawn may promote to n.
func (n Name) IsPromotion() bool {
	return n == Knight || n == Bishop || n == Rook || n == Queen
}

// MoveType classifies a destination using only the piece's own attributes.
type MoveType uint8

const (
	NoMoveType MoveType = iota
	BigPawn
	Promotion
	DiagPawn
	Castle
)

func (t MoveType) String() string {
	switch t {
	case BigPawn:
		return "bigpawn"
	case Promotion:
		return "promotion"
	case DiagPawn:
		return "diagpawn"
	case Castle:
		return "castle"
	}
	return "none"
}

// Piece piece.
type Piece struct {
	name     Name
	color    Color
	location Location

	// movedBefore carries hasBeenMoved across Copy, which drops history.
	movedBefore bool
	previous    []Location
	removed     bool
}

func NewPiece(name Name, color Color, location Location) *Piece {
	return &Piece{name: name, color: color, location: location}
}

// Copy returns an independent piece; its history is not carried over.
func (p *Piece) Copy() *Piece {
	return &Piece{name: p.name, color: p.color, location: p.location, movedBefore: p.HasBeenMoved()}
}

func (p *Piece) Name() Name {
	return p.name
}

func (p *Piece) Color() Color {
	return p.color
}

func (p *Piece) Location() Location {
	return p.location
}

func (p *Piece) HasBeenMoved() bool {
	return p.movedBefore || len(p.previous) > 0
}

func (p *Piece) IsRemoved() bool {
	return p.removed
}

func (p *Piece) Letter() byte {
	if p.color == Black {
		return fenLetters[p.name] | 0x20
	}
	return fenLetters[p.name]
}

func (p *Piece) Glyph() rune {
	if p.color == Black {
		return blackGlyphs[p.name]
	}
	return whiteGlyphs[p.name]
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.color, p.name, p.location)
}

func (p *Piece) MoveType(to Location) MoveType {
	dRow := to.Row() - p.location.Row()
	dCol := to.Col() - p.location.Col()
	switch p.name {
	case King:
		if !p.HasBeenMoved() && dRow == 0 && abs(dCol) == 2 {
			return Castle
		}
	case Pawn:
		if abs(dRow) == 2 && dCol == 0 {
			return BigPawn
		}
		if to.Row() == 0 || to.Row() == 7 {
			return Promotion
		}
		if abs(dRow) == 1 && abs(dCol) == 1 {
			return DiagPawn
		}
	}
	return NoMoveType
}

func (p *Piece) move(to Location) {
	p.previous = append(p.previous, p.location)
	p.location = to
}

func (p *Piece) unmove() {
	if len(p.previous) == 0 {
		return
	}
	last := len(p.previous) - 1
	p.location = p.previous[last]
	p.previous = p.previous[:last]
}

func (p *Piece) remove() {
	p.removed = true
}

func (p *Piece) unremove() {
	p.removed = false
}

var (
	rookDirections   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets    = [][2]int{{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-2, 1}, {-2, -1}, {-1, 2}, {-1, -2}}
	kingOffsets      = [][2]int{{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Moves lists the squares this piece could reach on an empty board.
// Occupancy is ignored; Game filters the list for legality.
func (p *Piece) Moves() []Location {
	if p.removed {
		return nil
	}
	moves := make([]Location, 0, 27)
	switch p.name {
	case Pawn:
		forward := p.color.forward()
		moves = p.appendOffsets(moves, [2]int{forward, 0})
		if !p.HasBeenMoved() {
			moves = p.appendOffsets(moves, [2]int{2 * forward, 0})
		}
		moves = p.appendOffsets(moves, [2]int{forward, 1}, [2]int{forward, -1})
	case Knight:
		moves = p.appendOffsets(moves, knightOffsets...)
	case Bishop:
		moves = p.appendRays(moves, bishopDirections)
	case Rook:
		moves = p.appendRays(moves, rookDirections)
	case Queen:
		moves = p.appendRays(moves, rookDirections)
		moves = p.appendRays(moves, bishopDirections)
	case King:
		if !p.HasBeenMoved() {
			moves = p.appendOffsets(moves, [2]int{0, -2}, [2]int{0, 2})
		}
		moves = p.appendOffsets(moves, kingOffsets...)
	}
	return moves
}

// attacks is the capture geometry: pawns only take diagonally and a
// king's castle destinations are never captures.
func (p *Piece) attacks() []Location {
	switch p.name {
	case Pawn:
		if p.removed {
			return nil
		}
		forward := p.color.forward()
		return p.appendOffsets(make([]Location, 0, 2), [2]int{forward, 1}, [2]int{forward, -1})
	case King:
		if p.removed {
			return nil
		}
		return p.appendOffsets(make([]Location, 0, 8), kingOffsets...)
	}
	return p.Moves()
}

func (p *Piece) appendOffsets(moves []Location, offsets ...[2]int) []Location {
	for _, offset := range offsets {
		if loc, ok := p.location.offset(offset[0], offset[1]); ok {
			moves = append(moves, loc)
		}
	}
	return moves
}

func (p *Piece) appendRays(moves []Location, directions [][2]int) []Location {
	for _, dir := range directions {
		for step := 1; ; step++ {
			loc, ok := p.location.offset(dir[0]*step, dir[1]*step)
			if !ok {
				break
			}
			moves = append(moves, loc)
		}
	}
	return moves
}
