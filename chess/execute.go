package chess

import (
	"fmt"

	"github.com/apex/log"
	"golang.org/x/exp/slices"
)

// TurnResult is returned by MakeMove. A promoting move stays a pawn until
// Promote is called, which must happen before Cleanup.
type TurnResult struct {
	Move *Move

	game *Game
}

func (r *TurnResult) NeedsPromotion() bool {
	return r.Move.Promotion && r.Move.PromotionPiece == nil && r.game.promotion == r.Move
}

// Promote replaces the pawn that just reached the last rank.
func (r *TurnResult) Promote(name Name) (*Move, error) {
	g := r.game
	if g.promotion == nil || g.promotion != r.Move {
		return nil, ErrNoPendingPromotion
	}
	if !name.IsPromotion() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPromotion, name)
	}
	m := r.Move
	promoted := NewPiece(name, m.Piece.color, m.To)
	m.PromotionPiece = promoted
	g.board.set(m.To, promoted)
	g.promotion = nil
	g.version++
	return m, nil
}

// MakeMove plays m, which must come from this set and the set must be
// current. Cleanup has to follow before the next side moves.
func (s *MoveSet) MakeMove(m *Move) (*TurnResult, error) {
	g := s.game
	switch {
	case g.status == Inactive:
		return nil, ErrGameOver
	case g.pending:
		return nil, ErrCleanupPending
	case s.version != g.version:
		return nil, ErrStaleMoves
	case m == nil || !slices.Contains(s.Moves, m):
		return nil, ErrMoveNotOffered
	}
	g.apply(m)
	g.pending = true
	g.version++
	if m.Promotion {
		g.promotion = m
	}
	return &TurnResult{Move: m, game: g}, nil
}

// Cleanup ends the turn: the other side is to move and the game is
// checked for checkmate or stalemate. Without a pending move it returns
// ErrNoPendingMove and changes nothing.
func (g *Game) Cleanup() error {
	if !g.pending {
		return ErrNoPendingMove
	}
	g.pending = false
	g.promotion = nil
	g.version++

	g.current = g.current.Other()
	g.number++

	g.check = g.kingCapturable(g.current)
	if g.PossibleMoves(g.current) != nil {
		return nil
	}
	g.status = Inactive
	if g.check {
		g.outcome = Checkmate
		g.winner = g.current.Other()
		g.hasWinner = true
	} else {
		g.outcome = Stalemate
	}
	log.WithFields(log.Fields{
		"session": g.sessionID,
		"outcome": g.outcome,
		"move":    g.number,
	}).Debug("game over")
	return nil
}

// Play runs one whole turn from coordinate notation: the move is looked
// up, made, promoted (to a queen unless c names a piece) and cleaned up.
func (g *Game) Play(c Coordinate) (*Move, error) {
	if g.status == Inactive {
		return nil, ErrGameOver
	}
	if g.pending {
		return nil, ErrCleanupPending
	}
	if c.Promotion != NoName && !c.Promotion.IsPromotion() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPromotion, c.Promotion)
	}
	set := g.ValidMoves(c.From)
	if set == nil {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, c)
	}
	m := set.Find(c.To)
	if m == nil || (c.Promotion != NoName && !m.Promotion) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, c)
	}
	result, err := set.MakeMove(m)
	if err != nil {
		return nil, err
	}
	if result.NeedsPromotion() {
		name := c.Promotion
		if name == NoName {
			name = Queen
		}
		if _, err := result.Promote(name); err != nil {
			return nil, err
		}
	}
	if err := g.Cleanup(); err != nil {
		return nil, err
	}
	return m, nil
}

// apply and undo are the move primitives shared by real moves and the
// trial moves made while filtering. undo exactly reverses apply.
func (g *Game) apply(m *Move) {
	if m.Capture != nil {
		g.removePiece(m.Capture)
	}
	g.movePiece(m.Piece, m.To)
	if m.Castle != nil {
		g.movePiece(m.Castle.Piece, m.Castle.To)
	}
	g.history = append(g.history, m)
}

func (g *Game) undo() {
	if len(g.history) == 0 {
		return
	}
	last := len(g.history) - 1
	m := g.history[last]
	g.history = g.history[:last]

	g.unmovePiece(m.Piece)
	if m.Castle != nil {
		g.unmovePiece(m.Castle.Piece)
	}
	if m.Capture != nil {
		g.unremovePiece(m.Capture)
	}
}

func (g *Game) movePiece(p *Piece, to Location) {
	g.board.set(p.location, nil)
	p.move(to)
	g.board.set(to, p)
}

func (g *Game) unmovePiece(p *Piece) {
	g.board.set(p.location, nil)
	p.unmove()
	g.board.set(p.location, p)
}

func (g *Game) removePiece(p *Piece) {
	if p.removed {
		return
	}
	p.remove()
	g.board.set(p.location, nil)
	g.removed = append(g.removed, p)
}

func (g *Game) unremovePiece(p *Piece) {
	if !p.removed {
		return
	}
	p.unremove()
	if n := len(g.removed); n > 0 && g.removed[n-1] == p {
		g.removed = g.removed[:n-1]
	}
	g.board.set(p.location, p)
}
