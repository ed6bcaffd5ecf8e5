package engine

import (
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

// fixedRoller always returns the same value modulo n.
type fixedRoller int

func (f fixedRoller) Intn(n int) int { return int(f) % n }

const (
	noCrit     = fixedRoller(99)
	alwaysCrit = fixedRoller(0)
)

func testEngine(r Roller) *Engine {
	rules := game.DefaultCombatRules()
	rules.Defenses["shield"] = game.DefenseRule{BlockPercent: 100}
	rules.Defenses["buckler"] = game.DefenseRule{BlockPercent: 50}
	rules.Defenses["mirror"] = game.DefenseRule{BlockPercent: 50, ReflectPercent: 50}
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return New(rules, r).WithClock(func() time.Time { return clock })
}

func testCharacter(id, name string) game.Character {
	return game.Character{
		ID:     id,
		Name:   name,
		Health: 100,
		Abilities: []game.Ability{
			{Name: "Slash", Type: game.AbilityAttack, Value: 20},
			{Name: "Shield Up", Type: game.AbilityDefense, DefenseType: "shield"},
			{Name: "Kick", Type: game.AbilityAttack, Value: 10},
			{Name: "Broken Guard", Type: game.AbilityDefense},
		},
	}
}

func inProgressState() game.GameState {
	g := game.NewRoomState("0xA", "Ann")
	g.Player2.WalletAddress = "0xB"
	g.Player2.Name = "Bob"
	c1 := testCharacter("knight", "Knight")
	c2 := testCharacter("rogue", "Rogue")
	g.Player1.Character = &c1
	g.Player2.Character = &c2
	for _, p := range []*game.PlayerBattleState{&g.Player1, &g.Player2} {
		p.Health = 100
		p.MaxHealth = 100
		p.ActiveBuffs = []game.ActiveBuff{}
		p.DefenseInventory = map[string]int{}
	}
	g.GameStatus = game.StatusInProgress
	g.CurrentTurn = game.SeatPlayer1
	g.TurnNumber = 1
	g.DiceRolls = map[string]int{"0xA": 5, "0xB": 2}
	return g
}
