package chess

import (
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
)

// GameType says whether the second side is played by the computer.
type GameType uint8

const (
	PlayerGame GameType = iota
	ComputerGame
)

func (t GameType) String() string {
	if t == ComputerGame {
		return "computer"
	}
	return "player"
}

func ParseGameType(s string) (GameType, error) {
	switch strings.ToLower(s) {
	case "", "player":
		return PlayerGame, nil
	case "computer":
		return ComputerGame, nil
	}
	return PlayerGame, fmt.Errorf("invalid game type %q", s)
}

func (t GameType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *GameType) UnmarshalText(text []byte) error {
	gameType, err := ParseGameType(string(text))
	if err != nil {
		return err
	}
	*t = gameType
	return nil
}

// Locality locality.
type Locality uint8

const (
	Local Locality = iota
	Online
)

func (l Locality) String() string {
	if l == Online {
		return "online"
	}
	return "local"
}

func (l Locality) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Locality) UnmarshalText(text []byte) error {
	switch string(text) {
	case "local":
		*l = Local
	case "online":
		*l = Online
	default:
		return fmt.Errorf("invalid locality %q", text)
	}
	return nil
}

// Status status.
type Status uint8

const (
	Active Status = iota
	Inactive
)

func (s Status) String() string {
	if s == Inactive {
		return "inactive"
	}
	return "active"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "active":
		*s = Active
	case "inactive":
		*s = Inactive
	default:
		return fmt.Errorf("invalid status %q", text)
	}
	return nil
}

// Outcome is why an inactive game ended.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return ""
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for _, outcome := range []Outcome{NoOutcome, Checkmate, Stalemate} {
		if outcome.String() == string(text) {
			*o = outcome
			return nil
		}
	}
	return fmt.Errorf("invalid outcome %q", text)
}

// Info is a snapshot of the game for callers that do not hold the lock.
type Info struct {
	Move          int
	SessionID     uuid.UUID
	Started       time.Time
	CurrentPlayer Color
	Type          GameType
	Location      Locality
	PlayerColor   Color
	White         string
	Black         string
	Status        Status
	Outcome       Outcome
	Check         bool
	Winner        *Color `json:",omitempty"`
}

// Game owns the board and sequences turns. It is not safe for concurrent
// use; callers serialize access.
type Game struct {
	board   Board
	current Color
	number  int
	history []*Move
	removed []*Piece

	status    Status
	outcome   Outcome
	winner    Color
	hasWinner bool
	check     bool

	// pending is set by MakeMove and cleared by Cleanup.
	pending   bool
	promotion *Move
	// version changes on every real mutation; MoveSets carry the version
	// they were computed at.
	version uint64

	gameType  GameType
	computer  Color
	white     string
	black     string
	locality  Locality
	viewColor Color
	sessionID uuid.UUID
	started   time.Time
}

// NewGame returns a game in the standard starting position.
func NewGame() *Game {
	g := emptyGame()
	g.board = newBoard()
	return g
}

func emptyGame() *Game {
	return &Game{
		current:   White,
		number:    1,
		white:     "White",
		black:     "Black",
		sessionID: uuid.NewV4(),
		started:   time.Now(),
	}
}

func (g *Game) configurable(setting string) bool {
	if len(g.history) == 0 && !g.pending {
		return true
	}
	log.WithField("setting", setting).WithField("session", g.sessionID).Warn("game already started, configuration ignored")
	return false
}

func (g *Game) SetGameType(t GameType) *Game {
	if g.configurable("type") {
		g.gameType = t
	}
	return g
}

// SetComputerColor hands color to the computer and makes this a computer game.
func (g *Game) SetComputerColor(c Color) *Game {
	if !g.configurable("computer") {
		return g
	}
	g.gameType = ComputerGame
	g.computer = c
	if c == White {
		g.white = "computer"
	} else {
		g.black = "computer"
	}
	return g
}

func (g *Game) SetWhite(name string) *Game {
	if g.configurable("white") {
		g.white = name
	}
	return g
}

func (g *Game) SetBlack(name string) *Game {
	if g.configurable("black") {
		g.black = name
	}
	return g
}

func (g *Game) SetOnlineOrLocal(l Locality) *Game {
	if g.configurable("location") {
		g.locality = l
	}
	return g
}

func (g *Game) SetPlayerViewColor(c Color) *Game {
	if g.configurable("view") {
		g.viewColor = c
	}
	return g
}

// SetSessionID replaces the generated session id, for games restored
// from storage.
func (g *Game) SetSessionID(id uuid.UUID) *Game {
	if g.configurable("session") {
		g.sessionID = id
	}
	return g
}

func (g *Game) PieceAt(loc Location) *Piece {
	if loc > 63 {
		return nil
	}
	return g.board.at(loc)
}

// Pieces returns the pieces of color on the board, rank 1 first.
func (g *Game) Pieces(color Color) []*Piece {
	pieces := make([]*Piece, 0, 16)
	g.board.each(func(p *Piece) {
		if p.color == color {
			pieces = append(pieces, p)
		}
	})
	return pieces
}

func (g *Game) History() []*Move {
	history := make([]*Move, len(g.history))
	copy(history, g.history)
	return history
}

func (g *Game) Removed() []*Piece {
	removed := make([]*Piece, len(g.removed))
	copy(removed, g.removed)
	return removed
}

func (g *Game) LastMove() *Move {
	if len(g.history) == 0 {
		return nil
	}
	return g.history[len(g.history)-1]
}

func (g *Game) CurrentPlayer() Color {
	return g.current
}

func (g *Game) MoveNumber() int {
	return g.number
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Winner() (Color, bool) {
	return g.winner, g.hasWinner
}

// InCheck reports whether the side to move was in check at the last Cleanup.
func (g *Game) InCheck() bool {
	return g.check
}

func (g *Game) NeedsCleanup() bool {
	return g.pending
}

func (g *Game) SessionID() uuid.UUID {
	return g.sessionID
}

func (g *Game) Type() GameType {
	return g.gameType
}

// ComputerColor is only meaningful for computer games.
func (g *Game) ComputerColor() Color {
	return g.computer
}

func (g *Game) IsComputerMove() bool {
	return g.gameType == ComputerGame && g.status == Active && g.current == g.computer
}

func (g *Game) Info() Info {
	info := Info{
		Move:          g.number,
		SessionID:     g.sessionID,
		Started:       g.started,
		CurrentPlayer: g.current,
		Type:          g.gameType,
		Location:      g.locality,
		PlayerColor:   g.viewColor,
		White:         g.white,
		Black:         g.black,
		Status:        g.status,
		Outcome:       g.outcome,
		Check:         g.check,
	}
	if g.hasWinner {
		winner := g.winner
		info.Winner = &winner
	}
	return info
}

// String draws the board from white's side.
func (g *Game) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 7; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d", row+1)
		for col := 0; col < 8; col++ {
			sb.WriteByte(' ')
			if p := g.board[row][col]; p != nil {
				sb.WriteRune(p.Glyph())
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Fprintf(&sb, " %d\n", row+1)
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
