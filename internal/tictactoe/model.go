// Package tictactoe enforces the rules of a 3x3 tic-tac-toe game.
//
// A Model is not safe for concurrent use. Callers sharing one across
// goroutines must serialise Move against every other call.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-model/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-model/internal/entity"
)

// TicTacToe is the contract a game front end works against.
type TicTacToe interface {
	// Move places the current player's mark at row, col.
	Move(row, col int) error
	// Turn returns the mark to move next. It fails once the game is over.
	Turn() (entity.Mark, error)
	IsGameOver() bool
	// Winner returns entity.MarkNone while nobody has three in a row, including ties.
	Winner() entity.Mark
	// Board returns a copy of the grid.
	Board() entity.Board
	MarkAt(row, col int) (entity.Mark, error)
}

var _ TicTacToe = (*Model)(nil)

// Model is the in-memory game state.
type Model struct {
	board entity.Board
	turn  entity.Mark
	moves int
}

// New returns a game with an empty board and X to move.
func New() *Model {
	return &Model{
		board: entity.Board{},
		turn:  entity.MarkX,
	}
}

func (that *Model) Move(row, col int) error {
	if that.IsGameOver() {
		return apperror.ErrGameFinished
	}

	if err := that.validateMove(row, col); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.board[row][col] = that.turn
	that.moves++

	// the mark that ended the game stays as the turn; Turn() refuses to report it
	if !that.IsGameOver() {
		that.turn = that.turn.Other()
	}

	return nil
}

// validateMove - checks the cell is on the board and free.
func (that *Model) validateMove(row, col int) error {
	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if !that.board[row][col].IsEmpty() {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

func (that *Model) Turn() (entity.Mark, error) {
	if that.IsGameOver() {
		return entity.MarkNone, apperror.ErrGameFinished
	}

	return that.turn, nil
}

func (that *Model) IsGameOver() bool {
	return that.moves == entity.Size*entity.Size || !that.Winner().IsEmpty()
}

func (that *Model) Winner() entity.Mark {
	return that.board.Winner()
}

func (that *Model) Board() entity.Board {
	return that.board
}

func (that *Model) MarkAt(row, col int) (entity.Mark, error) {
	if !entity.InBounds(row, col) {
		return entity.MarkNone, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOutOfBounds, row, col)
	}

	return that.board[row][col], nil
}

// Moves returns how many marks have been placed.
func (that *Model) Moves() int {
	return that.moves
}

func (that *Model) String() string {
	return that.board.String()
}
