package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-model/internal/apperror"
)

// Mark is the content of a cell: empty, or one of the two players' marks.
// MarkNone also stands for "no winner".
type Mark uint8

const (
	MarkNone Mark = iota
	MarkX
	MarkO
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	EmptyCell = ""
)

// String returns the display label of the mark. An empty cell is a single space.
func (that Mark) String() string {
	switch that {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return " "
	}
}

// Other returns the opponent's mark.
func (that Mark) Other() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkNone
	}
}

func (that Mark) IsEmpty() bool {
	return that == MarkNone
}

func (that Mark) MarshalJSON() ([]byte, error) {
	label := EmptyCell
	if !that.IsEmpty() {
		label = that.String()
	}

	return json.Marshal(label)
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("failed to unmarshal mark: %w", err)
	}

	mark, err := ParseMark(label)
	if err != nil {
		return err
	}

	*that = mark
	return nil
}

// ParseMark converts a display label back into a Mark.
func ParseMark(label string) (Mark, error) {
	switch label {
	case PlayerX:
		return MarkX, nil
	case PlayerO:
		return MarkO, nil
	case EmptyCell, " ":
		return MarkNone, nil
	default:
		return MarkNone, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, label)
	}
}
