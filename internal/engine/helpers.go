package engine

import "github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"

// CanAct reports whether seat may take the current turn. It returns nil when
// allowed and one of ErrGameNotInProgress, ErrUnknownSeat or ErrNotYourTurn
// otherwise.
func CanAct(g *game.GameState, seat game.Seat) error {
	if g.GameStatus != game.StatusInProgress {
		return ErrGameNotInProgress
	}
	if !seat.Valid() {
		return ErrUnknownSeat
	}
	if g.CurrentTurn != seat {
		return ErrNotYourTurn
	}
	return nil
}

// characterName returns the bound character's name or an empty string.
func characterName(p *game.PlayerBattleState) string {
	if p == nil || p.Character == nil {
		return ""
	}
	return p.Character.Name
}

// abilityName falls back to the ability type for unnamed abilities.
func abilityName(a game.Ability) string {
	if a.Name != "" {
		return a.Name
	}
	return string(a.Type)
}

// endTurn ticks the actor's buffs and hands the turn to the opponent unless
// the game just finished.
func (tc *turnContext) endTurn() {
	TickBuffs(tc.self())
	if tc.g.GameStatus != game.StatusInProgress {
		return
	}
	tc.g.CurrentTurn = tc.actor.Opponent()
	tc.g.TurnNumber++
}

// finishIfDefeated ends the game when either side has no health left. The
// defender is checked first so a trade of final blows favours the attacker.
func (tc *turnContext) finishIfDefeated() {
	def := tc.opponent()
	att := tc.self()
	switch {
	case def.Health <= 0:
		tc.g.GameStatus = game.StatusFinished
		tc.g.Winner = tc.actor
		tc.add(tc.name(tc.actor.Opponent()) + " is defeated; " + tc.name(tc.actor) + " wins")
	case att.Health <= 0:
		tc.g.GameStatus = game.StatusFinished
		tc.g.Winner = tc.actor.Opponent()
		tc.add(tc.name(tc.actor) + " is defeated; " + tc.name(tc.actor.Opponent()) + " wins")
	}
}
