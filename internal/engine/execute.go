package engine

import (
	"fmt"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

// Command is one resolved action for the acting seat.
type Command struct {
	Seat    game.Seat
	Ability game.Ability
	// Buffed marks an ability whose value already includes active buffs.
	Buffed bool
}

// Apply executes cmd against state and returns the new state with exactly one
// new log entry. On error the returned state is the zero value, the input is
// unchanged and no entry is produced.
//
// Apply does not check whose turn it is; callers guard with CanAct.
func (e *Engine) Apply(state game.GameState, cmd Command) (game.GameState, battlelog.Entry, error) {
	if !cmd.Seat.Valid() {
		return game.GameState{}, battlelog.Entry{}, ErrUnknownSeat
	}
	tc := e.newTurnContext(state, cmd.Seat)
	if tc.self().Character == nil {
		return game.GameState{}, battlelog.Entry{}, ErrMissingCharacter
	}

	switch cmd.Ability.Type {
	case game.AbilityDefense:
		if cmd.Ability.DefenseType == "" {
			return game.GameState{}, battlelog.Entry{}, ErrUndefinedDefenseType
		}
		tc.execAddDefense(cmd.Ability)
	case game.AbilityAttack:
		tc.execAttack(cmd.Ability, cmd.Buffed)
		tc.finishIfDefeated()
	default:
		return game.GameState{}, battlelog.Entry{}, fmt.Errorf("%w: %q", ErrUnknownAbilityType, cmd.Ability.Type)
	}

	tc.g.ConsecutiveSkips = 0
	tc.endTurn()
	next, entry := tc.commit()
	return next, entry, nil
}

// TakeTurn runs a full turn for seat with the given die roll: guard, dice
// resolution, buff aggregation and execution.
func (e *Engine) TakeTurn(state game.GameState, seat game.Seat, roll int) (game.GameState, battlelog.Entry, error) {
	if err := CanAct(&state, seat); err != nil {
		return game.GameState{}, battlelog.Entry{}, err
	}
	p := state.Player(seat)
	ability, err := ResolveAbility(p, roll)
	if err != nil {
		return game.GameState{}, battlelog.Entry{}, err
	}
	ability, buffed := ApplyBuffs(ability, p.ActiveBuffs)
	return e.Apply(state, Command{Seat: seat, Ability: ability, Buffed: buffed})
}
