package storage

import (
	"errors"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db             *gorm.DB
	publicRoomsTTL time.Duration
	now            func() time.Time
}

func NewSQLiteRepository(db *gorm.DB, publicRoomsTTL time.Duration) Repository {
	if publicRoomsTTL <= 0 {
		publicRoomsTTL = 10 * time.Minute
	}
	return &sqliteRepository{db: db, publicRoomsTTL: publicRoomsTTL, now: time.Now}
}

// roomColumns are written by UpdateRoom. id, created_at and join_code never
// change after creation.
var roomColumns = []string{
	"name", "private", "status", "version", "turn_deadline", "stats_counted",
	"claimed_by", "claimed_until", "state", "updated_at",
}

func (r *sqliteRepository) GetPublicRooms() ([]game.Room, error) {
	var rooms []game.Room
	since := r.now().Add(-r.publicRoomsTTL)
	if err := r.db.Where("private = ? AND status = ? AND created_at > ?", false, string(game.StatusWaitingForPlayers), since).
		Order("created_at desc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *sqliteRepository) CreateRoom(room *game.Room) error {
	room.SyncColumns()
	if room.Version == 0 {
		room.Version = 1
	}
	return r.db.Create(room).Error
}

func (r *sqliteRepository) GetRoomByID(id uint) (*game.Room, error) {
	var room game.Room
	if err := r.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *sqliteRepository) FindRoomByJoinCode(code string) (*game.Room, error) {
	var room game.Room
	if err := r.db.Where("join_code = ?", code).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *sqliteRepository) UpdateRoom(room *game.Room) error {
	room.SyncColumns()
	prev := room.Version
	room.Version = prev + 1
	res := r.db.Model(room).Where("version = ?", prev).Select(roomColumns).Updates(room)
	if res.Error != nil {
		room.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		room.Version = prev
		return ErrStaleRoom
	}
	return nil
}

func (r *sqliteRepository) ClaimTimedOutRoomIDs(now time.Time, limit int, lease time.Duration, workerID string) ([]uint, error) {
	if limit <= 0 {
		limit = 20
	}
	var claimed []uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&game.Room{}).
			Where("status = ? AND turn_deadline > ? AND turn_deadline <= ?", string(game.StatusInProgress), time.Time{}, now).
			Where("(claimed_by = '' OR claimed_by IS NULL OR claimed_until <= ?)", now).
			Order("turn_deadline asc").Limit(limit).Pluck("id", &ids).Error; err != nil {
			return err
		}
		for _, id := range ids {
			res := tx.Model(&game.Room{}).
				Where("id = ? AND (claimed_by = '' OR claimed_by IS NULL OR claimed_until <= ?)", id, now).
				Updates(map[string]interface{}{"claimed_by": workerID, "claimed_until": now.Add(lease)})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				claimed = append(claimed, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

func (r *sqliteRepository) UpsertProfile(wallet, name string) error {
	p := game.PlayerProfile{WalletAddress: wallet, PlayerName: name}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"player_name", "updated_at"}),
	}).Create(&p).Error
}

func (r *sqliteRepository) GetProfile(wallet string) (*game.PlayerProfile, error) {
	var p game.PlayerProfile
	if err := r.db.Where("wallet_address = ?", wallet).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &game.PlayerProfile{WalletAddress: wallet}, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpdateStatsOnGameEnd records one played game for both seats, a win for the
// winner and a forfeit for forfeitedWallet. Rooms with fewer than two players
// are ignored.
func (r *sqliteRepository) UpdateStatsOnGameEnd(room *game.Room, forfeitedWallet string) error {
	s := room.State
	if !s.Player1.Seated() || !s.Player2.Seated() {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, seat := range []game.Seat{game.SeatPlayer1, game.SeatPlayer2} {
			p := s.Player(seat)
			wins, forfeits := 0, 0
			if s.Winner == seat {
				wins = 1
			}
			if forfeitedWallet != "" && p.WalletAddress == forfeitedWallet {
				forfeits = 1
			}
			ps := game.PlayerProfile{WalletAddress: p.WalletAddress, PlayerName: p.Name, GamesPlayed: 1, Wins: wins, Forfeits: forfeits}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "wallet_address"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"games_played": gorm.Expr("games_played + ?", 1),
					"wins":         gorm.Expr("wins + ?", wins),
					"forfeits":     gorm.Expr("forfeits + ?", forfeits),
					"updated_at":   time.Now(),
				}),
			}).Create(&ps).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetTopPlayers returns top N players ordered by Wins desc, then GamesPlayed desc
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	var players []game.PlayerProfile
	if err := r.db.Model(&game.PlayerProfile{}).
		Where("games_played > 0").
		Order("wins DESC").
		Order("games_played DESC").
		Limit(limit).
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
