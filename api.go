package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/playchess/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type playRequest struct {
	Move *chess.Coordinate
}

type gameResponse struct {
	Href string
	Game chess.Info
}

type gamesResponse struct {
	Href  string
	Games []gameResponse
}

type boardResponse struct {
	Href      string
	Placement string
	Board     string
	Pieces    []pieceView
}

type playsResponse struct {
	Href     string
	Moves    []chess.Coordinate
	Mobility mobility
}

type squareResponse struct {
	Href   string
	Square chess.Location
	Moves  []chess.Coordinate
}

type historyResponse struct {
	Href  string
	Moves moveList
}

var badMoveErrors = []error{
	chess.ErrIllegalMove,
	chess.ErrInvalidPromotion,
	chess.ErrGameOver,
	chess.ErrCleanupPending,
	chess.ErrInvalidLocation,
	chess.ErrInvalidFEN,
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	for _, bad := range badMoveErrors {
		if errors.Is(err, bad) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestGame(c echo.Context) (*session, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getGame(id)
}

func gameHref(id uuid.UUID, elem ...string) string {
	return path.Join(append([]string{"/games", id.String()}, elem...)...)
}

func responseGame(info chess.Info) gameResponse {
	return gameResponse{Game: info, Href: gameHref(info.SessionID)}
}

func responseGames(infos []chess.Info) gamesResponse {
	games := make([]gameResponse, 0, len(infos))
	for _, info := range infos {
		games = append(games, responseGame(info))
	}
	return gamesResponse{Games: games, Href: "/games"}
}

func responseBoard(game *chess.Game) boardResponse {
	return boardResponse{
		Href:      gameHref(game.SessionID(), "board"),
		Placement: game.Placement(),
		Board:     game.String(),
		Pieces:    boardPieces(game),
	}
}

func responsePlays(game *chess.Game) (playsResponse, error) {
	sets := game.PossibleMoves(game.CurrentPlayer())
	moves := make([]chess.Coordinate, 0)
	for _, set := range sets {
		moves = append(moves, setMoves(set)...)
	}
	summary, err := mobilitySummary(sets)
	if err != nil {
		return playsResponse{}, err
	}
	return playsResponse{Moves: moves, Mobility: summary, Href: gameHref(game.SessionID(), "plays")}, nil
}

func responseSquare(game *chess.Game, square chess.Location) squareResponse {
	return squareResponse{
		Href:   gameHref(game.SessionID(), "squares", square.String()),
		Square: square,
		Moves:  setMoves(game.ValidMoves(square)),
	}
}

func responseHistory(game *chess.Game) historyResponse {
	return historyResponse{Moves: historyMoves(game), Href: gameHref(game.SessionID(), "history")}
}

// withGame runs fn on the requested game while holding its lock.
func withGame(c echo.Context, fn func(s *session) error) error {
	s, err := requestGame(c)
	if err != nil {
		return errToHTTP(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return errToHTTP(fn(s))
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.GET("/games", func(c echo.Context) error {
		infos, err := getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGames(infos))
	})
	e.POST("/games", func(c echo.Context) error {
		var request gameRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		s, err := makeGame(request)
		if err != nil {
			return errToHTTP(err)
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		return c.JSON(http.StatusCreated, responseGame(s.game.Info()))
	})
	e.GET("/games/:id", func(c echo.Context) error {
		return withGame(c, func(s *session) error {
			return c.JSON(http.StatusOK, responseGame(s.game.Info()))
		})
	})
	e.PUT("/games/:id", func(c echo.Context) error {
		var request playRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if request.Move == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "player must provide move")
		}
		return withGame(c, func(s *session) error {
			if err := s.play(*request.Move); err != nil {
				return err
			}
			return c.JSON(http.StatusOK, responseGame(s.game.Info()))
		})
	})
	e.GET("/games/:id/board", func(c echo.Context) error {
		return withGame(c, func(s *session) error {
			return c.JSON(http.StatusOK, responseBoard(s.game))
		})
	})
	e.GET("/games/:id/plays", func(c echo.Context) error {
		return withGame(c, func(s *session) error {
			response, err := responsePlays(s.game)
			if err != nil {
				return err
			}
			return c.JSON(http.StatusOK, response)
		})
	})
	e.GET("/games/:id/squares/:square", func(c echo.Context) error {
		return withGame(c, func(s *session) error {
			square, err := chess.ParseLocation(c.Param("square"))
			if err != nil {
				return err
			}
			return c.JSON(http.StatusOK, responseSquare(s.game, square))
		})
	})
	e.GET("/games/:id/history", func(c echo.Context) error {
		return withGame(c, func(s *session) error {
			return c.JSON(http.StatusOK, responseHistory(s.game))
		})
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
