package engine

import (
	"strconv"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

// RecordDiceRoll stores the first-turn roll of a seated wallet. Each wallet
// rolls once per game; a second attempt returns ErrAlreadyRolled and the
// state is left as it was.
func RecordDiceRoll(state game.GameState, wallet string, value int) (game.GameState, error) {
	if state.GameStatus != game.StatusRollingForTurn {
		return game.GameState{}, ErrNotRolling
	}
	if _, ok := state.SeatOf(wallet); !ok {
		return game.GameState{}, ErrUnknownPlayer
	}
	if _, rolled := state.DiceRolls[wallet]; rolled {
		return game.GameState{}, ErrAlreadyRolled
	}
	if value < 1 || value > DiceFaces {
		return game.GameState{}, ErrInvalidRoll
	}
	next := state.Clone()
	if next.DiceRolls == nil {
		next.DiceRolls = map[string]int{}
	}
	next.DiceRolls[wallet] = value
	return next, nil
}

// BothRolled reports whether both seated wallets have a recorded roll.
func BothRolled(g *game.GameState) bool {
	_, ok1 := g.DiceRolls[g.Player1.WalletAddress]
	_, ok2 := g.DiceRolls[g.Player2.WalletAddress]
	return g.Player1.Seated() && g.Player2.Seated() && ok1 && ok2
}

// AssignFirstTurn starts the game once both seats have rolled: the higher
// roll acts first and a tie goes to player1, the room host. It returns false
// with the state untouched while a roll is missing or after the turn was
// already assigned.
func (e *Engine) AssignFirstTurn(state game.GameState) (game.GameState, bool) {
	if state.GameStatus != game.StatusRollingForTurn || !BothRolled(&state) {
		return state, false
	}
	r1 := state.DiceRolls[state.Player1.WalletAddress]
	r2 := state.DiceRolls[state.Player2.WalletAddress]
	first := game.SeatPlayer1
	if r2 > r1 {
		first = game.SeatPlayer2
	}

	tc := e.newTurnContext(state, first)
	tc.g.GameStatus = game.StatusInProgress
	tc.g.CurrentTurn = first
	tc.g.TurnNumber = 1
	tc.kind = battlelog.KindTurnChanged
	tc.add(tc.name(game.SeatPlayer1) + " rolled " + strconv.Itoa(r1) + ", " +
		tc.name(game.SeatPlayer2) + " rolled " + strconv.Itoa(r2) + "; " + tc.name(first) + " takes the first turn")
	next, _ := tc.commit()
	return next, true
}
