package service

import (
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
)

// SelectCharacter binds a catalog character to the caller's seat.
func (s *Service) SelectCharacter(roomID uint, wallet, characterID string) (*game.Room, error) {
	ch, ok := s.character(characterID)
	if !ok {
		return nil, ErrUnknownCharacter
	}
	r, seat, err := s.seatOf(roomID, wallet)
	if err != nil {
		return nil, err
	}
	next, entry, err := s.engine.SelectCharacter(r.State, seat, ch)
	if err != nil {
		return nil, err
	}
	if err := s.commit(r, next, ""); err != nil {
		return nil, err
	}
	logging.Info(entry.Event, logging.Fields{constants.LogFieldRoomID: r.ID, constants.LogFieldSeat: seat})
	return r, nil
}
