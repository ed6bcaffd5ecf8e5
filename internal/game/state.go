package game

import (
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
)

// Seat is one of the two fixed player slots of a room.
type Seat string

const (
	SeatNone    Seat = ""
	SeatPlayer1 Seat = "player1"
	SeatPlayer2 Seat = "player2"
)

func (s Seat) Valid() bool { return s == SeatPlayer1 || s == SeatPlayer2 }

// Opponent returns the other seat.
func (s Seat) Opponent() Seat {
	switch s {
	case SeatPlayer1:
		return SeatPlayer2
	case SeatPlayer2:
		return SeatPlayer1
	default:
		return SeatNone
	}
}

// Status is the lifecycle phase of a room.
type Status string

const (
	StatusWaitingForPlayers   Status = "waitingForPlayers"
	StatusSelectingCharacters Status = "selectingCharacters"
	StatusRollingForTurn      Status = "rollingForTurn"
	StatusInProgress          Status = "inProgress"
	StatusFinished            Status = "finished"
)

type AbilityType string

const (
	AbilityAttack  AbilityType = "attack"
	AbilityDefense AbilityType = "defense"
)

// Ability is a character action bound to a dice face: the ability at index i
// is selected by a roll of i+1.
type Ability struct {
	Name        string      `json:"name"`
	Type        AbilityType `json:"type"`
	Value       int         `json:"value,omitempty"`
	DefenseType string      `json:"defenseType,omitempty"`
}

// MaxAbilities is the number of faces on the turn die.
const MaxAbilities = 6

// Character is an immutable template loaded from configuration.
type Character struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Health    int       `json:"health"`
	Abilities []Ability `json:"abilities"`
}

// ActiveBuff is a temporary damage modifier owned by a player.
type ActiveBuff struct {
	Name           string `json:"name,omitempty"`
	Effect         int    `json:"effect"`
	RemainingTurns int    `json:"remainingTurns"`
}

// PlayerBattleState is the per-seat part of a game.
type PlayerBattleState struct {
	WalletAddress    string         `json:"walletAddress"`
	Name             string         `json:"name,omitempty"`
	Health           int            `json:"health"`
	MaxHealth        int            `json:"maxHealth"`
	Character        *Character     `json:"character,omitempty"`
	ActiveBuffs      []ActiveBuff   `json:"activeBuffs"`
	DefenseInventory map[string]int `json:"defenseInventory"`
	// HoldDefenses keeps the stockpile untouched when this player is attacked.
	HoldDefenses bool `json:"holdDefenses"`
}

// Seated reports whether a wallet occupies this seat.
func (p *PlayerBattleState) Seated() bool { return p.WalletAddress != "" }

// DisplayName returns the player's name, or the fallback when unset.
func (p *PlayerBattleState) DisplayName(fallback string) string {
	if p.Name != "" {
		return p.Name
	}
	return fallback
}

// DefenseCount returns the number of stockpiled defenses of every type.
func (p *PlayerBattleState) DefenseCount() int {
	n := 0
	for _, c := range p.DefenseInventory {
		n += c
	}
	return n
}

func (p PlayerBattleState) clone() PlayerBattleState {
	if p.Character != nil {
		ch := *p.Character
		ch.Abilities = append([]Ability(nil), p.Character.Abilities...)
		p.Character = &ch
	}
	if p.ActiveBuffs != nil {
		p.ActiveBuffs = append([]ActiveBuff(nil), p.ActiveBuffs...)
	}
	if p.DefenseInventory != nil {
		inv := make(map[string]int, len(p.DefenseInventory))
		for k, v := range p.DefenseInventory {
			inv[k] = v
		}
		p.DefenseInventory = inv
	}
	return p
}

// GameState is the single shared state of a room.
type GameState struct {
	CurrentTurn Seat   `json:"currentTurn"`
	GameStatus  Status `json:"gameStatus"`
	Winner      Seat   `json:"winner,omitempty"`
	TurnNumber  int    `json:"turnNumber"`
	// ConsecutiveSkips counts turns in a row that ended by timeout.
	ConsecutiveSkips int               `json:"consecutiveSkips"`
	Player1          PlayerBattleState `json:"player1"`
	Player2          PlayerBattleState `json:"player2"`
	BattleLog        battlelog.Log     `json:"battleLog"`
	// DiceRolls holds the first-turn roll of each wallet.
	DiceRolls map[string]int `json:"diceRolls"`
}

// Clone returns a deep copy of the state.
func (g GameState) Clone() GameState {
	g.Player1 = g.Player1.clone()
	g.Player2 = g.Player2.clone()
	g.BattleLog = g.BattleLog.Clone()
	if g.DiceRolls != nil {
		rolls := make(map[string]int, len(g.DiceRolls))
		for k, v := range g.DiceRolls {
			rolls[k] = v
		}
		g.DiceRolls = rolls
	}
	return g
}

// Player returns the state of the given seat, or nil for an invalid seat.
func (g *GameState) Player(s Seat) *PlayerBattleState {
	switch s {
	case SeatPlayer1:
		return &g.Player1
	case SeatPlayer2:
		return &g.Player2
	default:
		return nil
	}
}

// SeatOf returns the seat occupied by wallet.
func (g *GameState) SeatOf(wallet string) (Seat, bool) {
	if wallet == "" {
		return SeatNone, false
	}
	if g.Player1.WalletAddress == wallet {
		return SeatPlayer1, true
	}
	if g.Player2.WalletAddress == wallet {
		return SeatPlayer2, true
	}
	return SeatNone, false
}

// Healths returns the current health of both seats as log snapshots.
func (g *GameState) Healths() (battlelog.HealthSnapshot, battlelog.HealthSnapshot) {
	return battlelog.HealthSnapshot{Health: g.Player1.Health}, battlelog.HealthSnapshot{Health: g.Player2.Health}
}
