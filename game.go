package main

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/maplefeline/playchess/chess"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/exp/maps"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Game is the stored form of a session. The board is rebuilt by replaying
// Moves from Start.
type Game struct {
	gorm.Model

	GameID        uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	Start         string
	Placement     string
	Moves         moveList `gorm:"type:text"`
	Type          string
	ComputerColor string
	White         string
	Black         string
	Online        bool
	ViewColor     string
	Status        string `gorm:"index"`
	Outcome       string
	Winner        string
	MoveCount     int
}

type gameRequest struct {
	Type          string
	ComputerColor string
	White         string
	Black         string
	Online        bool
	ViewColor     string
	FEN           string
}

type session struct {
	mu      sync.Mutex
	game    *chess.Game
	start   string
	updated time.Time
}

var hub = struct {
	sync.RWMutex
	sessions map[uuid.UUID]*session
}{sessions: map[uuid.UUID]*session{}}

const (
	sessionTTL  = time.Hour
	finishedTTL = time.Minute
)

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func configure(game *chess.Game, request gameRequest) error {
	gameType, err := chess.ParseGameType(request.Type)
	if err != nil {
		return badRequest(err)
	}
	game.SetGameType(gameType)
	if gameType == chess.ComputerGame {
		computer := chess.Black
		if request.ComputerColor != "" {
			if computer, err = chess.ParseColor(request.ComputerColor); err != nil {
				return badRequest(err)
			}
		}
		game.SetComputerColor(computer)
	}
	if request.White != "" {
		game.SetWhite(request.White)
	}
	if request.Black != "" {
		game.SetBlack(request.Black)
	}
	if request.Online {
		game.SetOnlineOrLocal(chess.Online)
	}
	if request.ViewColor != "" {
		view, err := chess.ParseColor(request.ViewColor)
		if err != nil {
			return badRequest(err)
		}
		game.SetPlayerViewColor(view)
	}
	return nil
}

func makeGame(request gameRequest) (*session, error) {
	start := request.FEN
	if start == "" {
		start = chess.InitialPlacement
	}
	game, err := chess.FromFEN(start)
	if err != nil {
		return nil, badRequest(err)
	}
	if err := configure(game, request); err != nil {
		return nil, err
	}
	s := &session{game: game, start: game.Placement(), updated: time.Now()}

	s.mu.Lock()
	defer s.mu.Unlock()
	hub.Lock()
	hub.sessions[game.SessionID()] = s
	hub.Unlock()

	log.WithField("game", game.SessionID()).WithField("type", game.Type()).Info("game created")
	if err := s.computerReply(); err != nil {
		return nil, err
	}
	return s, s.save()
}

func getGame(id uuid.UUID) (*session, error) {
	hub.RLock()
	s, ok := hub.sessions[id]
	hub.RUnlock()
	if ok {
		return s, nil
	}
	if db == nil {
		return nil, gorm.ErrRecordNotFound
	}
	var record Game
	if err := db.First(&record, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	s, err := restore(record)
	if err != nil {
		return nil, err
	}

	hub.Lock()
	defer hub.Unlock()
	if loaded, ok := hub.sessions[id]; ok {
		return loaded, nil
	}
	hub.sessions[id] = s
	return s, nil
}

// restore replays the stored moves so every one is checked again.
func restore(record Game) (*session, error) {
	game, err := chess.FromFEN(record.Start)
	if err != nil {
		return nil, err
	}
	request := gameRequest{
		Type:          record.Type,
		ComputerColor: record.ComputerColor,
		White:         record.White,
		Black:         record.Black,
		Online:        record.Online,
		ViewColor:     record.ViewColor,
	}
	if err := configure(game, request); err != nil {
		return nil, err
	}
	game.SetSessionID(record.GameID)
	for _, m := range record.Moves {
		if _, err := game.Play(m); err != nil {
			log.WithError(err).WithField("game", record.GameID).WithField("move", m).Error("stored move rejected")
			return nil, err
		}
	}
	log.WithField("game", record.GameID).WithField("moves", len(record.Moves)).Debug("game restored")
	return &session{game: game, start: record.Start, updated: record.UpdatedAt}, nil
}

// save writes the session through to the database; callers hold s.mu.
func (s *session) save() error {
	s.updated = time.Now()
	if db == nil {
		return nil
	}
	info := s.game.Info()
	record := Game{
		GameID:    info.SessionID,
		Start:     s.start,
		Placement: s.game.Placement(),
		Moves:     historyMoves(s.game),
		Type:      info.Type.String(),
		White:     info.White,
		Black:     info.Black,
		Online:    info.Location == chess.Online,
		ViewColor: info.PlayerColor.String(),
		Status:    info.Status.String(),
		Outcome:   info.Outcome.String(),
		MoveCount: len(s.game.History()),
	}
	if info.Type == chess.ComputerGame {
		record.ComputerColor = s.game.ComputerColor().String()
	}
	if info.Winner != nil {
		record.Winner = info.Winner.String()
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"placement", "moves", "status", "outcome", "winner", "move_count", "updated_at"}),
	}).Create(&record).Error
}

func (s *session) play(m chess.Coordinate) error {
	if s.game.IsComputerMove() {
		return echo.NewHTTPError(http.StatusNotAcceptable, "not your turn")
	}
	played, err := s.game.Play(m)
	if err != nil {
		return err
	}
	log.WithField("game", s.game.SessionID()).WithField("move", played).Debug("move played")
	if err := s.computerReply(); err != nil {
		return err
	}
	return s.save()
}

func sessions() []*session {
	hub.RLock()
	defer hub.RUnlock()
	ids := maps.Keys(hub.sessions)
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	list := make([]*session, 0, len(ids))
	for _, id := range ids {
		list = append(list, hub.sessions[id])
	}
	return list
}

// loadGames puts stored games into the hub. Records that no longer
// replay are logged and left out.
func loadGames(records []Game) int {
	loaded := 0
	for _, record := range records {
		hub.RLock()
		_, ok := hub.sessions[record.GameID]
		hub.RUnlock()
		if ok {
			continue
		}
		s, err := restore(record)
		if err != nil {
			log.WithError(err).WithField("game", record.GameID).Warn("stored game skipped")
			continue
		}
		hub.Lock()
		if _, ok := hub.sessions[record.GameID]; !ok {
			hub.sessions[record.GameID] = s
			loaded++
		}
		hub.Unlock()
	}
	return loaded
}

// getGames lists the active games, loading stored ones into the hub.
func getGames() ([]chess.Info, error) {
	if db != nil {
		var records []Game
		if err := db.Where(Game{Status: chess.Active.String()}).Find(&records).Error; err != nil {
			return nil, err
		}
		loadGames(records)
	}
	infos := make([]chess.Info, 0)
	for _, s := range sessions() {
		s.mu.Lock()
		info := s.game.Info()
		s.mu.Unlock()
		if info.Status == chess.Active {
			infos = append(infos, info)
		}
	}
	return infos, nil
}

// gameIdle drops games that finished a while ago from memory, and games
// nobody has touched for an hour.
func gameIdle() error {
	now := time.Now()
	for _, s := range sessions() {
		s.mu.Lock()
		id := s.game.SessionID()
		idle := now.Sub(s.updated)
		finished := s.game.Status() == chess.Inactive && idle > finishedTTL
		stale := idle > sessionTTL
		s.mu.Unlock()
		if !finished && !stale {
			continue
		}
		hub.Lock()
		delete(hub.sessions, id)
		hub.Unlock()
		log.WithField("game", id).WithField("finished", finished).Debug("game evicted")
	}
	return nil
}
