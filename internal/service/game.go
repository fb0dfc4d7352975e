package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-model/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-model/internal/entity"
)

// GameService stores and looks up the results of finished games.
type GameService interface {
	SaveResult(ctx context.Context, game *entity.GameRecord) error
	GetResult(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteResult(ctx context.Context, id string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

func (that *gameService) SaveResult(ctx context.Context, game *entity.GameRecord) error {
	if game.ID == "" {
		return apperror.ErrInvalidGameID
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to save game result: %w", err)
	}

	return nil
}

func (that *gameService) GetResult(ctx context.Context, id string) (*entity.GameRecord, error) {
	if id == "" {
		return nil, apperror.ErrInvalidGameID
	}

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game result from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) DeleteResult(ctx context.Context, id string) error {
	if id == "" {
		return apperror.ErrInvalidGameID
	}

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game result: %w", err)
	}

	return nil
}
