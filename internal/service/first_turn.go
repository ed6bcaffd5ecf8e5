package service

import (
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
)

// RollForFirstTurn rolls the caller's first-turn die. Once both players have
// rolled the first turn is assigned and its deadline starts. A second roll
// by the same wallet returns engine.ErrAlreadyRolled together with the
// room and the roll already on record.
func (s *Service) RollForFirstTurn(roomID uint, wallet string) (*game.Room, int, error) {
	r, _, err := s.seatOf(roomID, wallet)
	if err != nil {
		return nil, 0, err
	}
	if v, rolled := r.State.DiceRolls[wallet]; rolled {
		return r, v, engine.ErrAlreadyRolled
	}
	if !s.cooldown.Allow(wallet) {
		return nil, 0, ErrCooldown
	}

	roll := engine.RollDie(s.dice)
	next, err := engine.RecordDiceRoll(r.State, wallet, roll)
	if err != nil {
		return nil, 0, err
	}
	if assigned, ok := s.engine.AssignFirstTurn(next); ok {
		next = assigned
		r.TurnDeadline = s.deadline()
		logging.Info("first turn assigned", logging.Fields{constants.LogFieldRoomID: r.ID, constants.LogFieldSeat: next.CurrentTurn})
	}
	if err := s.commit(r, next, ""); err != nil {
		return nil, 0, err
	}
	return r, roll, nil
}
