package chess

import (
	"crypto/rand"
	"math/big"
)

// Intn returns a number in [0, n).
type Intn func(n int) (int, error)

// CryptoIntn draws from crypto/rand.
func CryptoIntn(n int) (int, error) {
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(choice.Int64()), nil
}

var promotionNames = []Name{Knight, Bishop, Rook, Queen}

// ComputerMove plays one turn for the computer side of a computer game.
func ComputerMove(g *Game, intn Intn) (*Move, error) {
	if !g.IsComputerMove() {
		return nil, ErrNotComputerMove
	}
	return RandomMove(g, intn)
}

// RandomMove plays a move drawn uniformly from every legal move of the
// side to move, promotes to a random piece if needed, and cleans up.
func RandomMove(g *Game, intn Intn) (*Move, error) {
	if intn == nil {
		intn = CryptoIntn
	}
	if g.status == Inactive {
		return nil, ErrGameOver
	}
	type choice struct {
		set  *MoveSet
		move *Move
	}
	var choices []choice
	for _, set := range g.PossibleMoves(g.current) {
		for _, m := range set.Moves {
			choices = append(choices, choice{set: set, move: m})
		}
	}
	if len(choices) == 0 {
		return nil, ErrNoMoves
	}
	i, err := intn(len(choices))
	if err != nil {
		return nil, err
	}
	picked := choices[i]
	result, err := picked.set.MakeMove(picked.move)
	if err != nil {
		return nil, err
	}
	if result.NeedsPromotion() {
		j, err := intn(len(promotionNames))
		if err != nil {
			return nil, err
		}
		if _, err := result.Promote(promotionNames[j]); err != nil {
			return nil, err
		}
	}
	if err := g.Cleanup(); err != nil {
		return nil, err
	}
	return picked.move, nil
}
