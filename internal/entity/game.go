package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Turn tells whose move it is. TurnUnset means the game has not started yet.
type Turn int

const (
	TurnUnset Turn = iota
	TurnPlayerA
	TurnPlayerB
)

func (that Turn) String() string {
	switch that {
	case TurnPlayerA:
		return "player A"
	case TurnPlayerB:
		return "player B"
	default:
		return "unset"
	}
}

// Next returns the turn that follows. The first call on an unset turn selects player A.
func (that Turn) Next() Turn {
	if that == TurnPlayerA {
		return TurnPlayerB
	}
	return TurnPlayerA
}

type Game struct {
	ID      string
	Board   *Board
	Players [2]*Player
	Turn    Turn
	Outcome Outcome
	moves   int
}

// NewGame seats two players on the board. Player A plays X, player B plays O.
func NewGame(board *Board, nameA, nameB string) *Game {
	return &Game{
		Board: board,
		Players: [2]*Player{
			{Name: nameA, Mark: MarkX},
			{Name: nameB, Mark: MarkO},
		},
		Turn:    TurnUnset,
		Outcome: InProgress(),
	}
}

// AdvanceTurn must be called once before the first move and once after every non-terminal move.
func (that *Game) AdvanceTurn() {
	that.Turn = that.Turn.Next()
}

func (that *Game) CurrentPlayer() (*Player, error) {
	switch that.Turn {
	case TurnPlayerA:
		return that.Players[0], nil
	case TurnPlayerB:
		return that.Players[1], nil
	default:
		return nil, apperror.ErrGameIsNotStarted
	}
}

// Play places the current player's mark on ref and returns the resulting outcome.
// The turn is not advanced here.
func (that *Game) Play(ref string) (Outcome, error) {
	if that.IsFinished() {
		return that.Outcome, apperror.ErrGameFinished
	}

	player, err := that.CurrentPlayer()
	if err != nil {
		return that.Outcome, err
	}

	if err = that.Board.Set(ref, player.Mark); err != nil {
		return that.Outcome, fmt.Errorf("invalid turn: %w", err)
	}

	that.moves++
	that.Outcome = Evaluate(that.Board, player.Mark)

	return that.Outcome, nil
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsTerminal()
}

// Winner returns the player who completed a line, or nil.
func (that *Game) Winner() *Player {
	if !that.Outcome.IsWin() {
		return nil
	}

	for _, player := range that.Players {
		if player.Mark == that.Outcome.Winner {
			return player
		}
	}

	return nil
}

func (that *Game) Moves() int {
	return that.moves
}
