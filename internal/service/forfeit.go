package service

import (
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
)

// Forfeit ends the game; the opponent wins and the caller is recorded as
// having forfeited.
func (s *Service) Forfeit(roomID uint, wallet string) (*game.Room, error) {
	r, seat, err := s.seatOf(roomID, wallet)
	if err != nil {
		return nil, err
	}
	next, entry, err := s.engine.Forfeit(r.State, seat)
	if err != nil {
		return nil, err
	}
	if err := s.commit(r, next, wallet); err != nil {
		return nil, err
	}
	logging.Info(entry.Event, logging.Fields{constants.LogFieldRoomID: r.ID, constants.LogFieldWallet: wallet})
	return r, nil
}
