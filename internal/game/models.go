package game

import (
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"

	"gorm.io/gorm"
)

// Room is the persisted game room. The whole battle state lives in State and
// is stored as a JSON column; Status mirrors State.GameStatus so rooms can be
// queried without decoding the state.
type Room struct {
	gorm.Model
	Name     string `json:"name" gorm:"size:32"`
	JoinCode string `json:"join_code" gorm:"uniqueIndex"`
	Private  bool   `json:"private"`
	Status   string `json:"status" gorm:"index"`
	// Version is bumped on every successful update; a write carrying a stale
	// version is rejected.
	Version      int       `json:"version"`
	TurnDeadline time.Time `json:"turn_deadline"`
	StatsCounted bool      `json:"-"`
	// Timeout scanner lease: a worker claims a timed-out room until
	// ClaimedUntil so concurrent scanners do not skip the same turn twice.
	ClaimedBy    string    `json:"-" gorm:"index"`
	ClaimedUntil time.Time `json:"-"`
	State        GameState `json:"state" gorm:"serializer:json"`
}

// Store rooms in a dedicated table so the name reads like the domain.
func (Room) TableName() string { return "game_rooms" }

// SyncColumns copies the queryable parts of the state onto their columns.
func (r *Room) SyncColumns() {
	r.Status = string(r.State.GameStatus)
}

// PlayerProfile stores a wallet's display name and aggregate stats.
type PlayerProfile struct {
	gorm.Model
	WalletAddress string `json:"wallet_address" gorm:"uniqueIndex"`
	PlayerName    string `json:"player_name"`
	GamesPlayed   int    `json:"games_played"`
	Wins          int    `json:"wins"`
	Forfeits      int    `json:"forfeits"`
}

func (PlayerProfile) TableName() string { return "player_profiles" }

// NewRoomState returns the state of a freshly created room with the host
// seated as player1.
func NewRoomState(hostWallet, hostName string) GameState {
	return GameState{
		GameStatus: StatusWaitingForPlayers,
		Player1:    PlayerBattleState{WalletAddress: hostWallet, Name: hostName},
		BattleLog:  battlelog.Log{},
		DiceRolls:  map[string]int{},
	}
}
