// Package service runs room operations: it loads a room, applies an engine
// transition to a copy of its state, persists the result with optimistic
// versioning and notifies subscribers.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/storage"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrPlayerNotInRoom   = errors.New("player not in room")
	ErrRoomFull          = errors.New("room is full")
	ErrAlreadyInRoom     = errors.New("player already in room")
	ErrCannotLeave       = errors.New("cannot leave after the game has started")
	ErrUnknownCharacter  = errors.New("unknown character")
	ErrInvalidBuff       = errors.New("buff needs a non-zero effect and at least one turn")
	ErrTooManyBuffs      = errors.New("too many active buffs")
	ErrInvalidPlayerName = errors.New("player name is required")
)

// MaxActiveBuffs caps the buffs a player may hold at once.
const MaxActiveBuffs = 3

// RoomRepo is the persistence surface the service needs.
type RoomRepo interface {
	CreateRoom(r *game.Room) error
	GetRoomByID(id uint) (*game.Room, error)
	FindRoomByJoinCode(code string) (*game.Room, error)
	UpdateRoom(r *game.Room) error
	UpsertProfile(wallet, name string) error
	UpdateStatsOnGameEnd(r *game.Room, forfeitedWallet string) error
}

// Notifier receives every persisted room. Publish must not block.
type Notifier interface {
	Publish(r *game.Room)
}

type nopNotifier struct{}

func (nopNotifier) Publish(*game.Room) {}

// Options tune a Service. Zero values pick defaults.
type Options struct {
	TurnTimeout  time.Duration
	DiceCooldown time.Duration
	Notifier     Notifier
	// Dice rolls first-turn and turn dice; defaults to engine.NewRoller.
	Dice engine.Roller
}

type Service struct {
	repo        RoomRepo
	engine      *engine.Engine
	catalog     []game.Character
	dice        engine.Roller
	notifier    Notifier
	cooldown    *Cooldown
	turnTimeout time.Duration
	now         func() time.Time
}

func New(repo RoomRepo, eng *engine.Engine, catalog []game.Character, opts Options) *Service {
	if opts.TurnTimeout <= 0 {
		opts.TurnTimeout = time.Minute
	}
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Dice == nil {
		opts.Dice = engine.NewRoller()
	}
	return &Service{
		repo:        repo,
		engine:      eng,
		catalog:     catalog,
		dice:        opts.Dice,
		notifier:    opts.Notifier,
		cooldown:    NewCooldown(opts.DiceCooldown),
		turnTimeout: opts.TurnTimeout,
		now:         time.Now,
	}
}

// Characters returns the selectable character catalog.
func (s *Service) Characters() []game.Character {
	out := make([]game.Character, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *Service) character(id string) (game.Character, bool) {
	for _, ch := range s.catalog {
		if strings.EqualFold(ch.ID, strings.TrimSpace(id)) {
			return ch, true
		}
	}
	return game.Character{}, false
}

// GetRoom loads a room by ID.
func (s *Service) GetRoom(roomID uint) (*game.Room, error) {
	r, err := s.repo.GetRoomByID(roomID)
	if err != nil || r == nil {
		if err == nil || errors.Is(err, storage.ErrRoomNotFound) || errors.Is(err, ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return r, nil
}

// seatOf loads the room and resolves the caller's seat.
func (s *Service) seatOf(roomID uint, wallet string) (*game.Room, game.Seat, error) {
	r, err := s.GetRoom(roomID)
	if err != nil {
		return nil, game.SeatNone, err
	}
	seat, ok := r.State.SeatOf(wallet)
	if !ok {
		return nil, game.SeatNone, ErrPlayerNotInRoom
	}
	return r, seat, nil
}

func (s *Service) deadline() time.Time {
	return s.now().UTC().Add(s.turnTimeout)
}

// commit stores next as the room state, settles a finished game and
// publishes the result. forfeited names the wallet that gave up, if any.
func (s *Service) commit(r *game.Room, next game.GameState, forfeited string) error {
	r.State = next
	finishedNow := next.GameStatus == game.StatusFinished && !r.StatsCounted
	if finishedNow {
		r.StatsCounted = true
		r.TurnDeadline = time.Time{}
	}
	if err := s.repo.UpdateRoom(r); err != nil {
		return err
	}
	if finishedNow && next.Player2.Seated() && !endedByInactivity(&next) {
		if err := s.repo.UpdateStatsOnGameEnd(r, forfeited); err != nil {
			logging.Error("failed to update player stats", err, logging.Fields{constants.LogFieldRoomID: r.ID})
		}
	}
	s.notifier.Publish(r)
	return nil
}

// endedByInactivity reports a match closed by repeated timeouts; such games
// do not count towards player stats.
func endedByInactivity(g *game.GameState) bool {
	return g.Winner == game.SeatNone && g.ConsecutiveSkips >= engine.MaxConsecutiveSkips
}
