package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInputClosed = errors.New("input closed before the game finished")

type uGame interface {
	StartGame(ctx context.Context, nameA, nameB string) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, ref string) (entity.Outcome, error)
}

// Server runs one game session over a line-oriented text console.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	in  io.Reader
	out io.Writer

	defaultNames [2]string
}

// New - creates a console server. defaultNames replace blank player names.
func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer, defaultNames [2]string) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		in:  in,
		out: out,

		defaultNames: defaultNames,
	}
}

// Run - plays a single game until it is won, drawn, the input ends or ctx is canceled.
func (that *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	nameA, err := that.askName(ctx, lines, "Enter player 1 name...", that.defaultNames[0])
	if err != nil {
		return err
	}

	nameB, err := that.askName(ctx, lines, "Enter player 2 name...", that.defaultNames[1])
	if err != nil {
		return err
	}

	game, err := that.uGame.StartGame(ctx, nameA, nameB)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	first, err := game.CurrentPlayer()
	if err != nil {
		return fmt.Errorf("failed to get first player: %w", err)
	}

	that.printf("Lets start the game! %s goes first.\n", first.Name)

	for {
		that.printf("%s\n", RenderBoard(game.Board.Cells()))

		player, err := game.CurrentPlayer()
		if err != nil {
			return fmt.Errorf("failed to get current player: %w", err)
		}

		that.printf("It's %s's turn...\n", player.Name)

		line, err := that.nextLine(ctx, lines)
		if err != nil {
			return err
		}

		ref := strings.TrimSpace(line)

		outcome, err := that.uGame.MakeTurn(ctx, game, ref)
		if err != nil {
			if reason, ok := describeMoveError(err, ref); ok {
				that.printf("Invalid selection: %s\n", reason)
				continue
			}

			return fmt.Errorf("failed to make turn: %w", err)
		}

		if outcome.IsTerminal() {
			that.printf("%s\n", RenderBoard(game.Board.Cells()))
			that.printf("%s\n", resultMessage(game))

			return nil
		}
	}
}

func (that *Server) askName(ctx context.Context, lines <-chan string, prompt, fallback string) (string, error) {
	that.printf("%s\n", prompt)

	line, err := that.nextLine(ctx, lines)
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(line)
	if name == "" {
		return fallback, nil
	}

	return name, nil
}

// readLines - reads the input on its own goroutine so that a blocked read never hides cancellation.
func (that *Server) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		// lines of any length are delivered so the game can reject them as moves
		reader := bufio.NewReader(that.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-ctx.Done():
					return
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					that.logger.Error("failed to read input", "error", err)
				}
				return
			}
		}
	}()

	return lines
}

func (that *Server) nextLine(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", ErrInputClosed
		}
		return line, nil
	}
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// describeMoveError turns a rejected move into a message for the player.
// It reports false for errors that are not the player's fault.
func describeMoveError(err error, ref string) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf("Tile %s is already in use.", ref), true
	case errors.Is(err, apperror.ErrOutOfBounds):
		return fmt.Sprintf("%q is out of bounds.", ref), true
	default:
		return "", false
	}
}

func resultMessage(game *entity.Game) string {
	if winner := game.Winner(); winner != nil {
		return winner.Name + " is the winner!"
	}

	return "It's a draw."
}
