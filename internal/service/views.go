package service

import (
	"bytes"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/dedupe"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/storyboard"
)

// Storyboard renders the most recent combat events of a room.
func (s *Service) Storyboard(roomID uint) (storyboard.Board, error) {
	r, err := s.GetRoom(roomID)
	if err != nil {
		return storyboard.Board{}, err
	}
	return storyboard.Build(r.State.BattleLog), nil
}

// ExportBattleLog serializes the full battle log of a room. Concurrent
// exports of the same room, format and log length share one rendering.
func (s *Service) ExportBattleLog(roomID uint, format battlelog.Format) ([]byte, error) {
	r, err := s.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	log := r.State.BattleLog
	key := dedupe.ExportKey(r.ID, string(format), log.Len())
	v, err, shared := dedupe.ExportGroup.Do(key, func() (interface{}, error) {
		var buf bytes.Buffer
		if err := log.Export(&buf, format); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logging.Debug("battle log export shared", logging.Fields{constants.LogFieldRoomID: r.ID, constants.LogFieldFormat: format})
	}
	return v.([]byte), nil
}
