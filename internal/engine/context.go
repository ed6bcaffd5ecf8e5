package engine

import (
	"strings"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

// --- Turn context and helpers -----------------------------------------
type turnContext struct {
	e       *Engine
	g       *game.GameState
	actor   game.Seat
	kind    battlelog.Kind
	details *battlelog.Details
	summary []string
}

// newTurnContext clones the state so the caller's copy is never touched.
func (e *Engine) newTurnContext(state game.GameState, actor game.Seat) *turnContext {
	g := state.Clone()
	return &turnContext{e: e, g: &g, actor: actor, summary: make([]string, 0, 4)}
}

func (tc *turnContext) add(msg string) { tc.summary = append(tc.summary, msg) }

func (tc *turnContext) self() *game.PlayerBattleState { return tc.g.Player(tc.actor) }

func (tc *turnContext) opponent() *game.PlayerBattleState { return tc.g.Player(tc.actor.Opponent()) }

func (tc *turnContext) name(s game.Seat) string {
	return tc.g.Player(s).DisplayName(string(s))
}

// joinSummary returns the accumulated summary as a single event text.
func (tc *turnContext) joinSummary() string {
	return strings.Join(tc.summary, "; ")
}

// commit appends the single log entry describing this turn and returns the
// new state together with that entry.
func (tc *turnContext) commit() (game.GameState, battlelog.Entry) {
	p1, p2 := tc.g.Healths()
	entry := battlelog.Entry{
		Timestamp: tc.e.now().UnixMilli(),
		Kind:      tc.kind,
		Event:     tc.joinSummary(),
		Actor:     string(tc.actor),
		Details:   tc.details,
		Player1:   p1,
		Player2:   p2,
	}
	tc.g.BattleLog.Append(entry)
	return *tc.g, entry
}
