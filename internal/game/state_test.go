package game

import (
	"testing"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"

	"github.com/stretchr/testify/assert"
)

func TestCloneIsDeep(t *testing.T) {
	g := GameState{
		GameStatus: StatusInProgress,
		Player1: PlayerBattleState{
			WalletAddress:    "0xA",
			Character:        &Character{ID: "nova", Abilities: []Ability{{Type: AbilityAttack, Value: 10}}},
			ActiveBuffs:      []ActiveBuff{{Effect: 5, RemainingTurns: 2}},
			DefenseInventory: map[string]int{"shield": 1},
		},
		DiceRolls: map[string]int{"0xA": 4},
	}
	g.BattleLog.Append(battlelog.Entry{Event: "start"})

	c := g.Clone()
	c.Player1.Character.Abilities[0].Value = 99
	c.Player1.ActiveBuffs[0].Effect = 99
	c.Player1.DefenseInventory["shield"] = 7
	c.DiceRolls["0xA"] = 1
	c.BattleLog.Append(battlelog.Entry{Event: "more"})

	assert.Equal(t, 10, g.Player1.Character.Abilities[0].Value)
	assert.Equal(t, 5, g.Player1.ActiveBuffs[0].Effect)
	assert.Equal(t, 1, g.Player1.DefenseInventory["shield"])
	assert.Equal(t, 4, g.DiceRolls["0xA"])
	assert.Equal(t, 1, g.BattleLog.Len())
}

func TestSeatHelpers(t *testing.T) {
	g := NewRoomState("0xA", "Ann")
	g.Player2.WalletAddress = "0xB"

	s, ok := g.SeatOf("0xB")
	assert.True(t, ok)
	assert.Equal(t, SeatPlayer2, s)
	assert.Equal(t, SeatPlayer1, s.Opponent())

	_, ok = g.SeatOf("0xC")
	assert.False(t, ok)
	_, ok = g.SeatOf("")
	assert.False(t, ok)

	assert.Nil(t, g.Player(SeatNone))
	assert.Equal(t, "Ann", g.Player(SeatPlayer1).DisplayName("player1"))
	assert.Equal(t, "player2", g.Player(SeatPlayer2).DisplayName("player2"))
}

func TestCombatRulesDefenseFallback(t *testing.T) {
	r := DefaultCombatRules()
	r.Defenses["mirror"] = DefenseRule{BlockPercent: 50, ReflectPercent: 50}

	assert.Equal(t, DefenseRule{BlockPercent: 50, ReflectPercent: 50}, r.Defense("mirror"))
	assert.Equal(t, DefaultDefenseRule, r.Defense("unknown"))
}
