package chess

import "errors"

// Rule violations are never reported through these; an illegal move is
// simply absent from a MoveSet. These cover malformed input and callers
// that break the ValidMoves -> MakeMove -> Promote -> Cleanup sequence.
var (
	ErrInvalidLocation    = errors.New("invalid location")
	ErrInvalidFEN         = errors.New("invalid FEN placement")
	ErrInvalidName        = errors.New("invalid piece name")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidPromotion   = errors.New("invalid promotion piece")
	ErrMoveNotOffered     = errors.New("move was not offered by this move set")
	ErrStaleMoves         = errors.New("move set is stale")
	ErrCleanupPending     = errors.New("previous move has not been cleaned up")
	ErrNoPendingMove      = errors.New("no move is pending")
	ErrNoPendingPromotion = errors.New("no promotion is pending")
	ErrGameOver           = errors.New("game is over")
	ErrIllegalMove        = errors.New("illegal move")
	ErrNoMoves            = errors.New("no moves available")
	ErrNotComputerMove    = errors.New("not the computer's move")
)
