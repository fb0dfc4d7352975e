package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors below wrap one of them, so callers can match either.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrOutOfBounds     = errors.New("out of bounds")
)

var (
	ErrGameFinished    = fmt.Errorf("%w: game is already finished", ErrInvalidState)
	ErrNoActiveGame    = fmt.Errorf("%w: no active game", ErrInvalidState)
	ErrCellOccupied    = fmt.Errorf("%w: cell is already occupied", ErrInvalidArgument)
	ErrInvalidCell     = fmt.Errorf("%w: invalid cell index", ErrInvalidArgument)
	ErrInvalidGameID   = fmt.Errorf("%w: empty game id", ErrInvalidArgument)
	ErrUnknownMark     = fmt.Errorf("%w: unknown mark", ErrInvalidArgument)
	ErrCellOutOfBounds = fmt.Errorf("%w: cell is out of bounds", ErrOutOfBounds)
	ErrNotFound        = errors.New("not found")
	ErrArchiveDisabled = errors.New("game archive is disabled")
)
