// Package engine implements the turn rules of a battle: dice resolution,
// buff aggregation, action execution, first-turn assignment and the combat
// formula. Every operation takes a GameState by value, works on a clone and
// returns the new state, so a failed call never leaves a partial mutation.
package engine

import (
	"errors"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

var (
	ErrMissingCharacter     = errors.New("no character bound to acting player")
	ErrRollOutOfRange       = errors.New("dice roll has no matching ability")
	ErrUndefinedDefenseType = errors.New("defense ability has no defense type")
	ErrUnknownAbilityType   = errors.New("unknown ability type")
	ErrAlreadyRolled        = errors.New("player already rolled for the first turn")
	ErrInvalidRoll          = errors.New("dice roll out of range")
	ErrUnknownPlayer        = errors.New("wallet is not seated in this game")
	ErrGameNotInProgress    = errors.New("game is not in progress")
	ErrNotYourTurn          = errors.New("it is not this seat's turn")
	ErrUnknownSeat          = errors.New("unknown seat")
	ErrNotRolling           = errors.New("game is not waiting for first-turn rolls")
)

// Engine applies turn rules using the configured combat rules and a source
// of randomness for critical hits.
type Engine struct {
	rules game.CombatRules
	rng   Roller
	now   func() time.Time
}

// New returns an Engine. A nil rng uses a crypto-seeded source.
func New(rules game.CombatRules, rng Roller) *Engine {
	if rng == nil {
		rng = NewRoller()
	}
	if rules.CritMultiplier < 1 {
		rules.CritMultiplier = 1
	}
	if rules.MaxBuffEffect < 1 {
		rules.MaxBuffEffect = game.DefaultMaxBuffEffect
	}
	if rules.MaxBuffTurns < 1 {
		rules.MaxBuffTurns = game.DefaultMaxBuffTurns
	}
	return &Engine{rules: rules, rng: rng, now: time.Now}
}

// WithClock replaces the clock used for log timestamps.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Rules returns the combat rules in use.
func (e *Engine) Rules() game.CombatRules { return e.rules }
