// Package console runs a game session over a line based text interface.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-model/internal/entity"
	"github.com/rocketscienceinc/tictactoe-model/internal/tictactoe"
)

var errQuit = errors.New("quit")

type gameSession interface {
	Start() (string, error)
	GameID() string
	Game() tictactoe.TicTacToe
	MakeMove(ctx context.Context, row, col int) (*entity.GameRecord, error)
	Result(ctx context.Context, gameID string) (*entity.GameRecord, error)
	Delete(ctx context.Context, gameID string) error
}

type handler func(ctx context.Context, args []string) error

type Console struct {
	logger   *slog.Logger
	session  gameSession
	scanner  *bufio.Scanner
	output   *termenv.Output
	handlers map[string]handler
}

// New - noColor forces plain text; otherwise colours are used when out is a terminal.
func New(logger *slog.Logger, session gameSession, in io.Reader, out io.Writer, noColor bool) *Console {
	options := []termenv.OutputOption{}
	if noColor {
		options = append(options, termenv.WithProfile(termenv.Ascii))
	}

	console := &Console{
		logger:   logger.With("component", "console"),
		session:  session,
		scanner:  bufio.NewScanner(in),
		output:   termenv.NewOutput(out, options...),
		handlers: make(map[string]handler),
	}

	console.handlers["new"] = console.handleNewGame
	console.handlers["n"] = console.handleNewGame
	console.handlers["quit"] = console.handleQuit
	console.handlers["q"] = console.handleQuit
	console.handlers["result"] = console.handleResult
	console.handlers["delete"] = console.handleDelete
	console.handlers["help"] = console.handleHelp

	return console
}

// Run - starts a game and processes input lines until EOF, "quit" or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	if err := that.handleNewGame(ctx, nil); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			scanErr <- err
			close(lines)
		}()

		for that.scanner.Scan() {
			select {
			case lines <- that.scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		err = that.scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}

			err := that.handleLine(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				return err
			}
		}
	}
}

// handleLine - dispatches a command, or treats the line as a move.
func (that *Console) handleLine(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		that.prompt()
		return nil
	}

	if command, ok := that.handlers[fields[0]]; ok {
		return command(ctx, fields[1:])
	}

	return that.handleMove(ctx, fields)
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.output, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
