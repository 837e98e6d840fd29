package main

import (
	"errors"

	"github.com/apex/log"
	"github.com/maplefeline/playchess/chess"
	"github.com/montanaflynn/stats"
)

// computerIntn picks the computer's moves; tests swap it for a fixed source.
var computerIntn chess.Intn = chess.CryptoIntn

// computerReply lets the computer move for as long as it is on turn;
// callers hold s.mu.
func (s *session) computerReply() error {
	for s.game.IsComputerMove() {
		m, err := chess.ComputerMove(s.game, computerIntn)
		if errors.Is(err, chess.ErrNoMoves) {
			return nil
		}
		if err != nil {
			return err
		}
		log.WithField("game", s.game.SessionID()).WithField("move", m).Debug("computer moved")
	}
	return nil
}

// agentIdle moves for the computer in games left waiting on it, such as
// games restored from the database.
func agentIdle() error {
	for _, s := range sessions() {
		s.mu.Lock()
		err := func() error {
			if !s.game.IsComputerMove() {
				return nil
			}
			if err := s.computerReply(); err != nil {
				return err
			}
			return s.save()
		}()
		s.mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

type mobility struct {
	Pieces int
	Moves  int
	Mean   float64
	Median float64
	Max    float64
}

// mobilitySummary describes how many moves each movable piece has.
func mobilitySummary(sets []*chess.MoveSet) (mobility, error) {
	if len(sets) == 0 {
		return mobility{}, nil
	}
	counts := make([]int, 0, len(sets))
	total := 0
	for _, set := range sets {
		counts = append(counts, len(set.Moves))
		total += len(set.Moves)
	}
	data := stats.LoadRawData(counts)
	mean, err := stats.Mean(data)
	if err != nil {
		return mobility{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return mobility{}, err
	}
	most, err := stats.Max(data)
	if err != nil {
		return mobility{}, err
	}
	return mobility{Pieces: len(sets), Moves: total, Mean: mean, Median: median, Max: most}, nil
}
