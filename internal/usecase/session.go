package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-model/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-model/internal/entity"
	"github.com/rocketscienceinc/tictactoe-model/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-model/internal/tictactoe"
)

type gameService interface {
	SaveResult(ctx context.Context, game *entity.GameRecord) error
	GetResult(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteResult(ctx context.Context, id string) error
}

// GameSession plays one game at a time and archives each finished game.
// It is meant for a single caller, like the game it wraps.
type GameSession struct {
	logger      *slog.Logger
	gameService gameService
	newGame     func() tictactoe.TicTacToe

	gameID string
	game   tictactoe.TicTacToe
}

// NewGameSession - gameService may be nil, in which case results are not archived.
// newGame may be nil, in which case the standard 3x3 game is used.
func NewGameSession(logger *slog.Logger, gameService gameService, newGame func() tictactoe.TicTacToe) *GameSession {
	if newGame == nil {
		newGame = func() tictactoe.TicTacToe { return tictactoe.New() }
	}

	return &GameSession{
		logger:      logger.With("component", "game_session"),
		gameService: gameService,
		newGame:     newGame,
	}
}

// Start - discards the current game, if any, and begins a new one.
func (that *GameSession) Start() (string, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return "", fmt.Errorf("error generating game ID: %w", err)
	}

	that.gameID = gameID
	that.game = that.newGame()

	that.logger.Info("game started", "game_id", gameID)

	return gameID, nil
}

func (that *GameSession) GameID() string {
	return that.gameID
}

// Game returns the current game, or nil before Start.
func (that *GameSession) Game() tictactoe.TicTacToe {
	return that.game
}

// MakeMove - applies a move for the player whose turn it is. When the move
// ends the game the finished record is returned. An archive failure is
// reported together with the record: the outcome of the game stands.
func (that *GameSession) MakeMove(ctx context.Context, row, col int) (*entity.GameRecord, error) {
	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	log := that.logger.With("game_id", that.gameID, "row", row, "col", col)

	player, err := that.game.Turn()
	if err != nil {
		return nil, fmt.Errorf("failed make move: %w", err)
	}

	if err = that.game.Move(row, col); err != nil {
		log.Debug("move rejected", "player", player.String(), "error", err)
		return nil, fmt.Errorf("failed make move: %w", err)
	}

	log.Debug("move applied", "player", player.String())

	if !that.game.IsGameOver() {
		return nil, nil
	}

	record := entity.NewGameRecord(that.gameID, that.game.Board(), that.game.Winner())
	log.Info("game finished", "outcome", record.Outcome(), "moves", record.Moves)

	if that.gameService == nil {
		return record, nil
	}

	if err = that.gameService.SaveResult(ctx, record); err != nil {
		log.Error("could not archive game", "error", err)
		return record, fmt.Errorf("failed archive game: %w", err)
	}

	return record, nil
}

// Result - looks up an archived game.
func (that *GameSession) Result(ctx context.Context, gameID string) (*entity.GameRecord, error) {
	if that.gameService == nil {
		return nil, apperror.ErrArchiveDisabled
	}

	record, err := that.gameService.GetResult(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed get result: %w", err)
	}

	return record, nil
}

// Delete - removes an archived game.
func (that *GameSession) Delete(ctx context.Context, gameID string) error {
	if that.gameService == nil {
		return apperror.ErrArchiveDisabled
	}

	if err := that.gameService.DeleteResult(ctx, gameID); err != nil {
		return fmt.Errorf("failed delete result: %w", err)
	}

	that.logger.Info("game result deleted", "game_id", gameID)

	return nil
}
