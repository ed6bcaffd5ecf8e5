package engine

import (
	"errors"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

// MaxConsecutiveSkips ends a match with no winner once this many turns in a
// row have timed out.
const MaxConsecutiveSkips = 4

var (
	ErrCharacterAlreadySelected = errors.New("character already selected")
	ErrNotSelecting             = errors.New("game is not in character selection")
	ErrInvalidCharacter         = errors.New("character has no abilities or health")
	ErrGameFinished             = errors.New("game already finished")
)

// SelectCharacter binds a character template to seat. Once both seats have a
// character the game moves on to the first-turn roll.
func (e *Engine) SelectCharacter(state game.GameState, seat game.Seat, ch game.Character) (game.GameState, battlelog.Entry, error) {
	if state.GameStatus != game.StatusSelectingCharacters {
		return game.GameState{}, battlelog.Entry{}, ErrNotSelecting
	}
	if !seat.Valid() {
		return game.GameState{}, battlelog.Entry{}, ErrUnknownSeat
	}
	if state.Player(seat).Character != nil {
		return game.GameState{}, battlelog.Entry{}, ErrCharacterAlreadySelected
	}
	if ch.Health <= 0 || len(ch.Abilities) == 0 || len(ch.Abilities) > game.MaxAbilities {
		return game.GameState{}, battlelog.Entry{}, ErrInvalidCharacter
	}

	tc := e.newTurnContext(state, seat)
	p := tc.self()
	ch.Abilities = append([]game.Ability(nil), ch.Abilities...)
	p.Character = &ch
	p.Health = ch.Health
	p.MaxHealth = ch.Health
	p.ActiveBuffs = []game.ActiveBuff{}
	p.DefenseInventory = map[string]int{}
	tc.kind = battlelog.KindCharacterSelected
	tc.add(tc.name(seat) + " selected character " + characterName(p))
	if tc.g.Player1.Character != nil && tc.g.Player2.Character != nil {
		tc.g.GameStatus = game.StatusRollingForTurn
	}
	next, entry := tc.commit()
	return next, entry, nil
}

// SkipTurn forfeits the current turn of seat, typically after its deadline
// passed. Too many consecutive skips finish the match without a winner.
func (e *Engine) SkipTurn(state game.GameState, seat game.Seat, reason string) (game.GameState, battlelog.Entry, error) {
	if err := CanAct(&state, seat); err != nil {
		return game.GameState{}, battlelog.Entry{}, err
	}
	tc := e.newTurnContext(state, seat)
	tc.kind = battlelog.KindTurnSkipped
	msg := tc.name(seat) + " skipped their turn"
	if reason != "" {
		msg += " (" + reason + ")"
	}
	tc.add(msg)
	tc.g.ConsecutiveSkips++
	if tc.g.ConsecutiveSkips >= MaxConsecutiveSkips {
		tc.g.GameStatus = game.StatusFinished
		tc.g.Winner = game.SeatNone
		tc.add("match ended due to inactivity")
	}
	tc.endTurn()
	next, entry := tc.commit()
	return next, entry, nil
}

// Forfeit ends the game in favour of the opponent of seat.
func (e *Engine) Forfeit(state game.GameState, seat game.Seat) (game.GameState, battlelog.Entry, error) {
	if state.GameStatus == game.StatusFinished {
		return game.GameState{}, battlelog.Entry{}, ErrGameFinished
	}
	if !seat.Valid() {
		return game.GameState{}, battlelog.Entry{}, ErrUnknownSeat
	}
	tc := e.newTurnContext(state, seat)
	tc.g.GameStatus = game.StatusFinished
	tc.kind = battlelog.KindGameEnded
	if tc.opponent().Seated() {
		tc.g.Winner = seat.Opponent()
		tc.add("Game ended: " + tc.name(seat) + " forfeited; " + tc.name(seat.Opponent()) + " wins")
	} else {
		tc.g.Winner = game.SeatNone
		tc.add("Game ended: " + tc.name(seat) + " closed the room")
	}
	next, entry := tc.commit()
	return next, entry, nil
}
