package entity

import "time"

const (
	StatusWon = "won"
	StatusTie = "tie"
)

// GameRecord is a finished game as kept in the archive.
type GameRecord struct {
	ID         string    `json:"id"`
	Board      Board     `json:"board"`
	Winner     Mark      `json:"winner"`
	Moves      int       `json:"moves"`
	Status     string    `json:"status"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewGameRecord(id string, board Board, winner Mark) *GameRecord {
	status := StatusTie
	if !winner.IsEmpty() {
		status = StatusWon
	}

	return &GameRecord{
		ID:         id,
		Board:      board,
		Winner:     winner,
		Moves:      board.Count(),
		Status:     status,
		FinishedAt: time.Now().UTC(),
	}
}

func (that *GameRecord) IsTie() bool {
	return that.Status == StatusTie
}

// Outcome is a short human readable result, e.g. "X wins" or "Tie".
func (that *GameRecord) Outcome() string {
	if that.IsTie() {
		return "Tie"
	}

	return that.Winner.String() + " wins"
}
