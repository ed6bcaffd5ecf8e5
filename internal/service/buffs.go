package service

import (
	"fmt"
	"strings"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

// ApplyBuff grants the caller a temporary damage modifier while the game is
// in progress. Effect and duration are bounded by the combat rules. Buffs
// tick down at the end of each of the holder's turns.
func (s *Service) ApplyBuff(roomID uint, wallet string, buff game.ActiveBuff) (*game.Room, error) {
	rules := s.engine.Rules()
	if buff.Effect == 0 || buff.RemainingTurns < 1 {
		return nil, ErrInvalidBuff
	}
	if buff.Effect > rules.MaxBuffEffect || buff.Effect < -rules.MaxBuffEffect {
		return nil, fmt.Errorf("%w: effect must be within ±%d", ErrInvalidBuff, rules.MaxBuffEffect)
	}
	if buff.RemainingTurns > rules.MaxBuffTurns {
		return nil, fmt.Errorf("%w: at most %d turns", ErrInvalidBuff, rules.MaxBuffTurns)
	}
	buff.Name = strings.TrimSpace(buff.Name)
	r, seat, err := s.seatOf(roomID, wallet)
	if err != nil {
		return nil, err
	}
	if r.State.GameStatus != game.StatusInProgress {
		return nil, engine.ErrGameNotInProgress
	}
	if len(r.State.Player(seat).ActiveBuffs) >= MaxActiveBuffs {
		return nil, ErrTooManyBuffs
	}
	next := r.State.Clone()
	p := next.Player(seat)
	p.ActiveBuffs = append(p.ActiveBuffs, buff)
	if err := s.commit(r, next, ""); err != nil {
		return nil, err
	}
	return r, nil
}

// SetDefenseStance chooses whether the caller's stockpiled defenses are
// spent on the next incoming attack (hold=false) or kept (hold=true).
func (s *Service) SetDefenseStance(roomID uint, wallet string, hold bool) (*game.Room, error) {
	r, seat, err := s.seatOf(roomID, wallet)
	if err != nil {
		return nil, err
	}
	if r.State.GameStatus == game.StatusFinished {
		return nil, engine.ErrGameFinished
	}
	if r.State.Player(seat).HoldDefenses == hold {
		return r, nil
	}
	next := r.State.Clone()
	next.Player(seat).HoldDefenses = hold
	if err := s.commit(r, next, ""); err != nil {
		return nil, err
	}
	return r, nil
}
