package service

import (
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
)

// HandleTimedOutRoom skips the turn of the seat whose deadline passed. After
// engine.MaxConsecutiveSkips skips in a row the match ends with no winner
// and without touching player stats. Rooms that are not in progress or whose
// deadline has not passed are released untouched.
func (s *Service) HandleTimedOutRoom(r *game.Room) error {
	now := s.now().UTC()
	r.ClaimedBy = ""
	r.ClaimedUntil = time.Time{}
	if r.State.GameStatus != game.StatusInProgress || r.TurnDeadline.IsZero() || r.TurnDeadline.After(now) {
		return s.repo.UpdateRoom(r)
	}

	seat := r.State.CurrentTurn
	next, entry, err := s.engine.SkipTurn(r.State, seat, "timed out")
	if err != nil {
		return err
	}
	if next.GameStatus == game.StatusInProgress {
		r.TurnDeadline = now.Add(s.turnTimeout)
	}
	if err := s.commit(r, next, ""); err != nil {
		return err
	}
	logging.Info(entry.Event, logging.Fields{constants.LogFieldRoomID: r.ID, constants.LogFieldSeat: seat})
	return nil
}
