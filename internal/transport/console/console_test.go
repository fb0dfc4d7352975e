package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-model/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-model/internal/entity"
	"github.com/rocketscienceinc/tictactoe-model/internal/usecase"
)

// memoryResults keeps archived games in a map.
type memoryResults struct {
	records map[string]*entity.GameRecord
}

func (that *memoryResults) SaveResult(_ context.Context, game *entity.GameRecord) error {
	that.records[game.ID] = game
	return nil
}

func (that *memoryResults) GetResult(_ context.Context, id string) (*entity.GameRecord, error) {
	record, ok := that.records[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return record, nil
}

func (that *memoryResults) DeleteResult(_ context.Context, id string) error {
	if _, ok := that.records[id]; !ok {
		return apperror.ErrNotFound
	}
	delete(that.records, id)
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runConsole(t *testing.T, session *usecase.GameSession, input string) string {
	t.Helper()

	var out bytes.Buffer
	console := New(newTestLogger(), session, strings.NewReader(input), &out, true)

	require.NoError(t, console.Run(context.Background()))

	return out.String()
}

func TestConsole_Run(t *testing.T) {
	t.Run("Horizontal win", func(t *testing.T) {
		// Given: a session and moves where X completes the top row
		session := usecase.NewGameSession(newTestLogger(), nil, nil)
		input := "0 0\n1 0\n0 1\n1 1\n0 2\nquit\n"

		// When: the console processes them
		out := runConsole(t, session, input)

		// Then: players are prompted in turn and X is declared the winner
		assert.Contains(t, out, "Player X, your move: ")
		assert.Contains(t, out, "Player O, your move: ")
		assert.Contains(t, out, " X | X | X")
		assert.Contains(t, out, "Game over: X wins.")
		assert.True(t, strings.HasSuffix(out, "Bye.\n"))
		assert.Equal(t, entity.MarkX, session.Game().Winner())
	})

	t.Run("Tie", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)
		input := "0 0\n0 1\n0 2\n1 1\n1 0\n1 2\n2 1\n2 0\n2 2\n"

		out := runConsole(t, session, input)

		assert.Contains(t, out, "Game over: tie.")
		assert.True(t, session.Game().IsGameOver())
	})

	t.Run("Occupied cell asks again", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)

		out := runConsole(t, session, "1 1\n1 1\n")

		// Then: the error is shown and it is still O's turn
		assert.Contains(t, out, "Cell (1, 1) is already occupied.")
		assert.Contains(t, out, "Try again.")

		turn, err := session.Game().Turn()
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, turn)
	})

	t.Run("Out of range move asks again", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)

		out := runConsole(t, session, "3 0\n")

		assert.Contains(t, out, "Cell (3, 0) is outside the board. Try again.")
		assert.Equal(t, entity.Board{}, session.Game().Board())
	})

	t.Run("Unparsable input prints usage", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)

		out := runConsole(t, session, "a b\n0\n\n")

		assert.Contains(t, out, `bad row "a"`)
		assert.Contains(t, out, `expected "row col"`)
		assert.Contains(t, out, "Commands: new, result <game id>, delete <game id>, help, quit.")
	})

	t.Run("Move after game over keeps the result", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)
		input := "0 0\n1 0\n0 1\n1 1\n0 2\n2 2\n"

		out := runConsole(t, session, input)

		assert.Equal(t, 2, strings.Count(out, "Game over: X wins."))

		mark, err := session.Game().MarkAt(2, 2)
		require.NoError(t, err)
		assert.Equal(t, entity.MarkNone, mark)
	})

	t.Run("New starts another game", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)

		out := runConsole(t, session, "1 1\nnew\n")

		assert.Equal(t, 2, strings.Count(out, "New game "))
		assert.Equal(t, entity.Board{}, session.Game().Board())
	})

	t.Run("Result without archive", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)

		out := runConsole(t, session, "result 123\n")

		assert.Contains(t, out, "Game archive is disabled.")
	})

	t.Run("Result of an archived game", func(t *testing.T) {
		// Given: a session with an archive and a game X wins
		results := &memoryResults{records: map[string]*entity.GameRecord{}}
		session := usecase.NewGameSession(newTestLogger(), results, nil)

		var out bytes.Buffer
		console := New(newTestLogger(), session, strings.NewReader("0 0\n1 0\n0 1\n1 1\n0 2\n"), &out, true)
		require.NoError(t, console.Run(context.Background()))

		gameID := session.GameID()
		require.Contains(t, results.records, gameID)

		// When: asking for the archived result in a new console
		out.Reset()
		console = New(newTestLogger(), session, strings.NewReader("result "+gameID+"\nresult 0\n"), &out, true)
		require.NoError(t, console.Run(context.Background()))

		// Then: the outcome is printed, and unknown IDs are reported
		assert.Contains(t, out.String(), "Game "+gameID+": X wins after 5 moves")
		assert.Contains(t, out.String(), "Game 0 not found.")
	})

	t.Run("Delete removes an archived game", func(t *testing.T) {
		// Given: an archive holding one finished game
		results := &memoryResults{records: map[string]*entity.GameRecord{
			"123": {ID: "123", Winner: entity.MarkO, Moves: 6, Status: entity.StatusWon},
		}}
		session := usecase.NewGameSession(newTestLogger(), results, nil)

		// When: deleting it, then deleting and reading it again
		out := runConsole(t, session, "delete 123\ndelete 123\nresult 123\ndelete\n")

		// Then: the first delete succeeds and the game is gone afterwards
		assert.Contains(t, out, "Game 123 deleted.")
		assert.Equal(t, 2, strings.Count(out, "Game 123 not found."))
		assert.Contains(t, out, "Usage: delete <game id>")
		assert.NotContains(t, results.records, "123")
	})

	t.Run("Delete without archive", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)

		out := runConsole(t, session, "delete 123\n")

		assert.Contains(t, out, "Game archive is disabled.")
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		session := usecase.NewGameSession(newTestLogger(), nil, nil)

		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		var out bytes.Buffer
		console := New(newTestLogger(), session, reader, &out, true)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		// When: no input arrives before the deadline
		err := console.Run(ctx)

		// Then: Run returns cleanly
		require.NoError(t, err)
		assert.Contains(t, out.String(), "New game ")
	})
}

func TestParseMove(t *testing.T) {
	row, col, err := parseMove([]string{"2", "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	_, _, err = parseMove([]string{"2"})
	require.ErrorIs(t, err, errBadMove)

	_, _, err = parseMove([]string{"2", "x"})
	require.ErrorIs(t, err, errBadMove)
}

func TestConsole_renderBoard(t *testing.T) {
	session := usecase.NewGameSession(newTestLogger(), nil, nil)
	console := New(newTestLogger(), session, strings.NewReader(""), io.Discard, true)

	board := entity.Board{}
	board[0][0] = entity.MarkX
	board[1][1] = entity.MarkO

	// Then: without colour the output matches the plain board text
	assert.Equal(t, board.String(), console.renderBoard(board))
}
