package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-model/internal/entity"
)

const (
	colorX = "1" // red
	colorO = "4" // blue
)

// prompt - asks the player to move, or reports the outcome of a finished game.
// Game over is checked first because Turn fails on a finished game.
func (that *Console) prompt() {
	game := that.session.Game()
	if game == nil {
		return
	}

	if game.IsGameOver() {
		winner := game.Winner()
		if winner.IsEmpty() {
			that.printf("Game over: tie.\n")
		} else {
			that.printf("Game over: %s wins.\n", that.renderMark(winner))
		}
		that.printf("Type \"new\" to play again or \"quit\" to leave.\n")
		return
	}

	turn, err := game.Turn()
	if err != nil {
		that.logger.Error("failed to get turn", "error", err)
		return
	}

	that.printf("Player %s, your move: ", that.renderMark(turn))
}

func (that *Console) printBoard() {
	game := that.session.Game()
	if game == nil {
		return
	}

	that.printf("%s\n", that.renderBoard(game.Board()))
}

func (that *Console) renderMark(mark entity.Mark) string {
	style := that.output.String(mark.String())

	switch mark {
	case entity.MarkX:
		style = style.Foreground(that.output.Color(colorX)).Bold()
	case entity.MarkO:
		style = style.Foreground(that.output.Color(colorO)).Bold()
	}

	return style.String()
}

// renderBoard - same layout as entity.Board.String, with coloured marks.
func (that *Console) renderBoard(board entity.Board) string {
	rows := make([]string, 0, entity.Size)
	for _, row := range board {
		cells := make([]string, 0, entity.Size)
		for _, cell := range row {
			cells = append(cells, that.renderMark(cell))
		}
		rows = append(rows, " "+strings.Join(cells, " | "))
	}

	return strings.Join(rows, "\n-----------\n")
}
