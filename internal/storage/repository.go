package storage

import (
	"errors"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	// ErrStaleRoom is returned when a room changed since it was loaded.
	ErrStaleRoom = errors.New("room was modified concurrently")
)

type Repository interface {
	// GetPublicRooms lists non-private rooms still waiting for an opponent
	// that were created within the public rooms TTL.
	GetPublicRooms() ([]game.Room, error)
	CreateRoom(r *game.Room) error
	GetRoomByID(id uint) (*game.Room, error)
	FindRoomByJoinCode(code string) (*game.Room, error)
	// UpdateRoom persists r if its Version still matches the stored one and
	// bumps the version. It returns ErrStaleRoom otherwise.
	UpdateRoom(r *game.Room) error
	// ClaimTimedOutRoomIDs leases up to limit in-progress rooms whose turn
	// deadline is at or before now to workerID for the lease duration.
	ClaimTimedOutRoomIDs(now time.Time, limit int, lease time.Duration, workerID string) ([]uint, error)

	UpsertProfile(wallet, name string) error
	GetProfile(wallet string) (*game.PlayerProfile, error)
	UpdateStatsOnGameEnd(r *game.Room, forfeitedWallet string) error
	// Leaderboard
	GetTopPlayers(limit int) ([]game.PlayerProfile, error)
}
