package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GameManager struct {
	logger *slog.Logger
}

func NewGameManager(logger *slog.Logger) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
	}
}

// StartGame creates a fresh game for two players and selects the first turn.
func (that *GameManager) StartGame(ctx context.Context, nameA, nameB string) (*entity.Game, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	game := entity.NewGame(entity.NewBoard(), nameA, nameB)
	game.ID = id.String()
	game.AdvanceTurn()

	that.logger.InfoContext(ctx, "game started",
		"session", game.ID,
		"player_x", game.Players[0].Name,
		"player_o", game.Players[1].Name,
	)

	return game, nil
}

// MakeTurn plays ref for the current player and passes the turn on if the game continues.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, ref string) (entity.Outcome, error) {
	log := that.logger.With("method", "MakeTurn", "session", game.ID, "cell", ref)

	outcome, err := game.Play(ref)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrOutOfBounds):
			log.DebugContext(ctx, "move rejected", "player", currentPlayerName(game), "error", err)
		default:
			log.WarnContext(ctx, "move refused", "turn", game.Turn.String(), "error", err)
		}

		return outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	// the turn still points at the mover until it is advanced below
	player, err := game.CurrentPlayer()
	if err != nil {
		return outcome, fmt.Errorf("failed to resolve mover: %w", err)
	}

	log.DebugContext(ctx, "move accepted", "player", player.Name, "mark", player.Mark, "moves", game.Moves())

	switch {
	case outcome.IsWin():
		log.InfoContext(ctx, "game finished", "result", outcome.Status, "winner", player.Name, "moves", game.Moves())
	case outcome.IsDraw():
		log.InfoContext(ctx, "game finished", "result", outcome.Status, "moves", game.Moves())
	default:
		game.AdvanceTurn()
	}

	return outcome, nil
}

func currentPlayerName(game *entity.Game) string {
	player, err := game.CurrentPlayer()
	if err != nil {
		return ""
	}

	return player.Name
}
