package service

import (
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
)

// TurnResult describes one dice-driven turn.
type TurnResult struct {
	Roll  int             `json:"roll"`
	Entry battlelog.Entry `json:"entry"`
}

// TakeTurn rolls the turn die for the caller and executes the selected
// ability. A roll with no matching ability returns engine.ErrRollOutOfRange
// with the roll in the result; the turn is not consumed.
func (s *Service) TakeTurn(roomID uint, wallet string) (*game.Room, TurnResult, error) {
	r, seat, err := s.seatOf(roomID, wallet)
	if err != nil {
		return nil, TurnResult{}, err
	}
	if err := engine.CanAct(&r.State, seat); err != nil {
		return nil, TurnResult{}, err
	}
	if !s.cooldown.Allow(wallet) {
		return nil, TurnResult{}, ErrCooldown
	}

	roll := engine.RollDie(s.dice)
	next, entry, err := s.engine.TakeTurn(r.State, seat, roll)
	if err != nil {
		return nil, TurnResult{Roll: roll}, err
	}
	if next.GameStatus == game.StatusInProgress {
		r.TurnDeadline = s.deadline()
	}
	if err := s.commit(r, next, ""); err != nil {
		return nil, TurnResult{}, err
	}
	logging.Debug(entry.Event, logging.Fields{
		constants.LogFieldRoomID: r.ID,
		constants.LogFieldKind:   entry.Kind,
		constants.LogFieldTurn:   r.State.TurnNumber,
	})
	return r, TurnResult{Roll: roll, Entry: entry}, nil
}
