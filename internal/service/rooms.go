package service

import (
	"errors"
	"strings"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/constants"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/logging"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/storage"
)

// CreateRoom opens a room with the caller seated as player1.
func (s *Service) CreateRoom(wallet, playerName, roomName, joinCode string, private bool) (*game.Room, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, ErrInvalidPlayerName
	}
	r := &game.Room{
		Name:     strings.TrimSpace(roomName),
		JoinCode: joinCode,
		Private:  private,
		State:    game.NewRoomState(wallet, playerName),
	}
	if err := s.repo.CreateRoom(r); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertProfile(wallet, playerName); err != nil {
		logging.Error("failed to upsert profile", err, logging.Fields{constants.LogFieldWallet: wallet})
	}
	logging.Info("room created", logging.Fields{constants.LogFieldRoomID: r.ID, constants.LogFieldRoomCode: r.JoinCode})
	s.notifier.Publish(r)
	return r, nil
}

// JoinRoom seats the caller as player2 and moves the room to character
// selection.
func (s *Service) JoinRoom(joinCode, wallet, playerName string) (*game.Room, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, ErrInvalidPlayerName
	}
	r, err := s.repo.FindRoomByJoinCode(joinCode)
	if err != nil || r == nil {
		if err == nil || errors.Is(err, storage.ErrRoomNotFound) || errors.Is(err, ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if _, ok := r.State.SeatOf(wallet); ok {
		return nil, ErrAlreadyInRoom
	}
	if r.State.Player2.Seated() || r.State.GameStatus != game.StatusWaitingForPlayers {
		return nil, ErrRoomFull
	}

	next := r.State.Clone()
	next.Player2 = game.PlayerBattleState{
		WalletAddress:    wallet,
		Name:             playerName,
		ActiveBuffs:      []game.ActiveBuff{},
		DefenseInventory: map[string]int{},
	}
	next.GameStatus = game.StatusSelectingCharacters
	if err := s.commit(r, next, ""); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertProfile(wallet, playerName); err != nil {
		logging.Error("failed to upsert profile", err, logging.Fields{constants.LogFieldWallet: wallet})
	}
	return r, nil
}

// LeaveRoom removes the caller before the first-turn roll. The host leaving
// closes the room; the guest leaving reopens it for another player.
func (s *Service) LeaveRoom(roomID uint, wallet string) (*game.Room, error) {
	r, seat, err := s.seatOf(roomID, wallet)
	if err != nil {
		return nil, err
	}
	switch r.State.GameStatus {
	case game.StatusWaitingForPlayers, game.StatusSelectingCharacters:
	default:
		return nil, ErrCannotLeave
	}

	if seat == game.SeatPlayer1 {
		closed := r.State.Clone()
		closed.Player2 = game.PlayerBattleState{}
		next, _, err := s.engine.Forfeit(closed, seat)
		if err != nil {
			return nil, err
		}
		r.StatsCounted = true
		if err := s.commit(r, next, ""); err != nil {
			return nil, err
		}
		return r, nil
	}

	next := r.State.Clone()
	next.Player2 = game.PlayerBattleState{}
	next.GameStatus = game.StatusWaitingForPlayers
	if err := s.commit(r, next, ""); err != nil {
		return nil, err
	}
	return r, nil
}
