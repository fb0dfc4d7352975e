package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-model/internal/apperror"
)

const usage = `Enter a move as "row col" with values from 0 to 2.
Commands: new, result <game id>, delete <game id>, help, quit.
`

func (that *Console) handleNewGame(_ context.Context, _ []string) error {
	gameID, err := that.session.Start()
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.printf("New game %s\n", gameID)
	that.printBoard()
	that.prompt()

	return nil
}

func (that *Console) handleQuit(_ context.Context, _ []string) error {
	that.printf("Bye.\n")
	return errQuit
}

func (that *Console) handleHelp(_ context.Context, _ []string) error {
	that.printf(usage)
	that.prompt()
	return nil
}

func (that *Console) handleResult(ctx context.Context, args []string) error {
	if len(args) != 1 {
		that.printf("Usage: result <game id>\n")
		that.prompt()
		return nil
	}

	record, err := that.session.Result(ctx, args[0])
	switch {
	case errors.Is(err, apperror.ErrArchiveDisabled):
		that.printf("Game archive is disabled.\n")
	case errors.Is(err, apperror.ErrNotFound):
		that.printf("Game %s not found.\n", args[0])
	case err != nil:
		that.logger.Error("could not load game result", "game_id", args[0], "error", err)
		that.printf("Could not load game %s.\n", args[0])
	default:
		that.printf("Game %s: %s after %d moves\n%s\n", record.ID, record.Outcome(), record.Moves, that.renderBoard(record.Board))
	}

	that.prompt()
	return nil
}

func (that *Console) handleDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		that.printf("Usage: delete <game id>\n")
		that.prompt()
		return nil
	}

	err := that.session.Delete(ctx, args[0])
	switch {
	case errors.Is(err, apperror.ErrArchiveDisabled):
		that.printf("Game archive is disabled.\n")
	case errors.Is(err, apperror.ErrNotFound):
		that.printf("Game %s not found.\n", args[0])
	case err != nil:
		that.logger.Error("could not delete game result", "game_id", args[0], "error", err)
		that.printf("Could not delete game %s.\n", args[0])
	default:
		that.printf("Game %s deleted.\n", args[0])
	}

	that.prompt()
	return nil
}

func (that *Console) handleMove(ctx context.Context, fields []string) error {
	row, col, err := parseMove(fields)
	if err != nil {
		that.printf("%v\n%s", err, usage)
		that.prompt()
		return nil
	}

	record, err := that.session.MakeMove(ctx, row, col)
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("Cell (%d, %d) is already occupied. Try again.\n", row, col)
		that.prompt()
		return nil
	case errors.Is(err, apperror.ErrInvalidArgument):
		that.printf("Cell (%d, %d) is outside the board. Try again.\n", row, col)
		that.prompt()
		return nil
	case errors.Is(err, apperror.ErrInvalidState):
		that.prompt()
		return nil
	case err != nil && record == nil:
		return fmt.Errorf("failed to make move: %w", err)
	case err != nil:
		// the game is over, only archiving failed
		that.logger.Warn("game result not archived", "game_id", record.ID, "error", err)
	}

	that.printBoard()
	that.prompt()

	return nil
}

var errBadMove = errors.New(`expected "row col"`)

func parseMove(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, errBadMove
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad row %q", errBadMove, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad column %q", errBadMove, fields[1])
	}

	return row, col, nil
}
