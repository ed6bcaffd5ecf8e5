package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/storyboard"
)

func TestTakeTurn_PlaysToVictory(t *testing.T) {
	f := newFixture(t, faces(6, 1, 1, 1, 1))
	r := f.startedRoom(t)
	logLen := r.State.BattleLog.Len()

	if _, _, err := f.svc.TakeTurn(r.ID, "0xB"); !errors.Is(err, engine.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	r, res, err := f.svc.TakeTurn(r.ID, "0xA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Roll != 1 || res.Entry.Kind != battlelog.KindAttacked || r.State.Player2.Health != 10 {
		t.Fatalf("unexpected first turn: roll=%d kind=%s hp=%d", res.Roll, res.Entry.Kind, r.State.Player2.Health)
	}
	if r.State.BattleLog.Len() != logLen+1 {
		t.Fatalf("expected exactly one new entry")
	}

	if r, _, err = f.svc.TakeTurn(r.ID, "0xB"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.State.Player1.Health != 20 {
		t.Fatalf("expected Ann at 20, got %d", r.State.Player1.Health)
	}

	r, _, err = f.svc.TakeTurn(r.ID, "0xA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.State.GameStatus != game.StatusFinished || r.State.Winner != game.SeatPlayer1 {
		t.Fatalf("expected Ann to win: %+v", r.State)
	}
	if !r.StatsCounted || !r.TurnDeadline.IsZero() {
		t.Fatalf("finished room should be settled")
	}
	if len(f.repo.statsCalls) != 1 || f.repo.statsCalls[0] != "" {
		t.Fatalf("expected one stats update without forfeit, got %v", f.repo.statsCalls)
	}

	if _, _, err := f.svc.TakeTurn(r.ID, "0xB"); !errors.Is(err, engine.ErrGameNotInProgress) {
		t.Fatalf("expected ErrGameNotInProgress, got %v", err)
	}
	if _, err := f.svc.Forfeit(r.ID, "0xB"); !errors.Is(err, engine.ErrGameFinished) {
		t.Fatalf("expected ErrGameFinished, got %v", err)
	}
	if len(f.repo.statsCalls) != 1 {
		t.Fatalf("stats must be counted once")
	}
}

func TestTakeTurn_RejectedRollsKeepTheTurn(t *testing.T) {
	f := newFixture(t, faces(6, 1, 4, 3))
	r := f.startedRoom(t)
	before := r.State.BattleLog.Len()

	_, res, err := f.svc.TakeTurn(r.ID, "0xA")
	if !errors.Is(err, engine.ErrRollOutOfRange) || res.Roll != 4 {
		t.Fatalf("expected ErrRollOutOfRange for roll 4, got roll=%d err=%v", res.Roll, err)
	}
	_, _, err = f.svc.TakeTurn(r.ID, "0xA")
	if !errors.Is(err, engine.ErrUndefinedDefenseType) {
		t.Fatalf("expected ErrUndefinedDefenseType, got %v", err)
	}

	r, _ = f.svc.GetRoom(r.ID)
	if r.State.CurrentTurn != game.SeatPlayer1 || r.State.BattleLog.Len() != before {
		t.Fatalf("rejected rolls must not change the room")
	}
}

func TestTakeTurn_Cooldown(t *testing.T) {
	f := newFixture(t, faces(6, 1, 2, 1, 2))
	r := f.startedRoom(t)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.svc.cooldown = NewCooldown(time.Second)
	f.svc.cooldown.now = func() time.Time { return clock }

	if _, _, err := f.svc.TakeTurn(r.ID, "0xA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := f.svc.TakeTurn(r.ID, "0xB"); err != nil {
		t.Fatalf("cooldown is per wallet: %v", err)
	}
	if _, _, err := f.svc.TakeTurn(r.ID, "0xA"); !errors.Is(err, ErrCooldown) {
		t.Fatalf("expected ErrCooldown, got %v", err)
	}
	clock = clock.Add(time.Second)
	if _, _, err := f.svc.TakeTurn(r.ID, "0xA"); err != nil {
		t.Fatalf("unexpected error after cooldown: %v", err)
	}
}

func TestForfeit(t *testing.T) {
	f := newFixture(t, faces(6, 1))
	r := f.startedRoom(t)

	r, err := f.svc.Forfeit(r.ID, "0xA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.State.Winner != game.SeatPlayer2 {
		t.Fatalf("expected Bob to win, got %q", r.State.Winner)
	}
	last, _ := r.State.BattleLog.Last()
	if last.Kind != battlelog.KindGameEnded {
		t.Fatalf("expected a gameEnded entry, got %s", last.Kind)
	}
	if len(f.repo.statsCalls) != 1 || f.repo.statsCalls[0] != "0xA" {
		t.Fatalf("expected forfeit to be recorded, got %v", f.repo.statsCalls)
	}
}

func TestBuffsAndDefenseStance(t *testing.T) {
	f := newFixture(t, faces(6, 1, 1))
	r := f.startedRoom(t)

	if _, err := f.svc.ApplyBuff(r.ID, "0xA", game.ActiveBuff{Effect: 0, RemainingTurns: 1}); !errors.Is(err, ErrInvalidBuff) {
		t.Fatalf("expected ErrInvalidBuff, got %v", err)
	}
	for i := 0; i < MaxActiveBuffs; i++ {
		if _, err := f.svc.ApplyBuff(r.ID, "0xA", game.ActiveBuff{Name: "rage", Effect: 1, RemainingTurns: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := f.svc.ApplyBuff(r.ID, "0xA", game.ActiveBuff{Effect: 1, RemainingTurns: 1}); !errors.Is(err, ErrTooManyBuffs) {
		t.Fatalf("expected ErrTooManyBuffs, got %v", err)
	}

	r, err := f.svc.SetDefenseStance(r.ID, "0xB", true)
	if err != nil || !r.State.Player2.HoldDefenses {
		t.Fatalf("expected hold stance, err=%v", err)
	}

	r, res, err := f.svc.TakeTurn(r.ID, "0xA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Entry.Details.BaseDamage != 13 || !strings.Contains(res.Entry.Event, "buffed") {
		t.Fatalf("expected buffed damage 13, got %+v", res.Entry)
	}
	if len(r.State.Player1.ActiveBuffs) != 0 {
		t.Fatalf("one-turn buffs should expire after the turn")
	}
}

func TestHandleTimedOutRoom(t *testing.T) {
	f := newFixture(t, faces(6, 1))
	r := f.startedRoom(t)
	base := time.Now()

	for i := 1; i <= engine.MaxConsecutiveSkips; i++ {
		base = base.Add(2 * time.Minute)
		now := base
		f.svc.now = func() time.Time { return now }
		room, err := f.svc.GetRoom(r.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		room.ClaimedBy = "worker"
		if err := f.svc.HandleTimedOutRoom(room); err != nil {
			t.Fatalf("skip %d: unexpected error: %v", i, err)
		}
		if room.ClaimedBy != "" {
			t.Fatalf("claim should be released")
		}
		last, _ := room.State.BattleLog.Last()
		if last.Kind != battlelog.KindTurnSkipped {
			t.Fatalf("expected a turnSkipped entry, got %s", last.Kind)
		}
	}

	room, _ := f.svc.GetRoom(r.ID)
	if room.State.GameStatus != game.StatusFinished || room.State.Winner != game.SeatNone {
		t.Fatalf("expected match to end without winner: %+v", room.State)
	}
	if len(f.repo.statsCalls) != 0 {
		t.Fatalf("inactivity must not count towards stats")
	}
}

func TestHandleTimedOutRoom_NotExpired(t *testing.T) {
	f := newFixture(t, faces(6, 1))
	r := f.startedRoom(t)
	before := r.State.BattleLog.Len()

	if err := f.svc.HandleTimedOutRoom(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	room, _ := f.svc.GetRoom(r.ID)
	if room.State.BattleLog.Len() != before {
		t.Fatalf("room before its deadline must not change")
	}
}

func TestStoryboardAndExport(t *testing.T) {
	f := newFixture(t, faces(6, 1, 1))
	r := f.startedRoom(t)

	board, err := f.svc.Storyboard(r.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.Placeholder != storyboard.Placeholder {
		t.Fatalf("expected placeholder before any combat, got %+v", board)
	}

	if _, _, err := f.svc.TakeTurn(r.ID, "0xA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	board, _ = f.svc.Storyboard(r.ID)
	if len(board.Frames) != 1 || board.Frames[0].Damage != 10 {
		t.Fatalf("unexpected storyboard: %+v", board)
	}

	out, err := f.svc.ExportBattleLog(r.ID, battlelog.FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var entries []battlelog.Entry
	if err := json.Unmarshal(out, &entries); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	room, _ := f.svc.GetRoom(r.ID)
	if len(entries) != room.State.BattleLog.Len() {
		t.Fatalf("export should contain the full log")
	}

	text, err := f.svc.ExportBattleLog(r.ID, battlelog.FormatText)
	if err != nil || !strings.HasPrefix(string(text), "timestamp\t") {
		t.Fatalf("unexpected text export: %q err=%v", text, err)
	}

	if _, err := f.svc.Storyboard(999); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestApplyBuffBounds(t *testing.T) {
	f := newFixture(t, faces(6, 1, 1))
	r := f.startedRoom(t)
	rules := game.DefaultCombatRules()

	rejected := []game.ActiveBuff{
		{Effect: 1000000, RemainingTurns: 1},
		{Effect: -rules.MaxBuffEffect - 1, RemainingTurns: 1},
		{Effect: 1, RemainingTurns: rules.MaxBuffTurns + 1},
	}
	for _, b := range rejected {
		if _, err := f.svc.ApplyBuff(r.ID, "0xA", b); !errors.Is(err, ErrInvalidBuff) {
			t.Fatalf("buff %+v: expected ErrInvalidBuff, got %v", b, err)
		}
	}

	r, err := f.svc.ApplyBuff(r.ID, "0xA", game.ActiveBuff{Effect: rules.MaxBuffEffect, RemainingTurns: rules.MaxBuffTurns})
	if err != nil {
		t.Fatalf("buff at the limits should be accepted: %v", err)
	}
	r, res, err := f.svc.TakeTurn(r.ID, "0xA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Entry.Details.BaseDamage != 10+rules.MaxBuffEffect {
		t.Fatalf("expected capped buffed damage, got %d", res.Entry.Details.BaseDamage)
	}
	if r.State.GameStatus != game.StatusFinished {
		t.Fatalf("rogue at 20hp should fall to %d damage", 10+rules.MaxBuffEffect)
	}
}

func TestApplyBuffRequiresGameInProgress(t *testing.T) {
	buff := game.ActiveBuff{Effect: 1, RemainingTurns: 1}

	f := newFixture(t, faces(1))
	r, _ := f.svc.CreateRoom("0xA", "Ann", "arena", "ABCD1234", false)
	if _, err := f.svc.ApplyBuff(r.ID, "0xA", buff); !errors.Is(err, engine.ErrGameNotInProgress) {
		t.Fatalf("waiting room: expected ErrGameNotInProgress, got %v", err)
	}

	f = newFixture(t, faces(1))
	r = f.readyRoom(t)
	if _, err := f.svc.ApplyBuff(r.ID, "0xB", buff); !errors.Is(err, engine.ErrGameNotInProgress) {
		t.Fatalf("rolling room: expected ErrGameNotInProgress, got %v", err)
	}
	if _, err := f.svc.Forfeit(r.ID, "0xB"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.ApplyBuff(r.ID, "0xA", buff); !errors.Is(err, engine.ErrGameNotInProgress) {
		t.Fatalf("finished room: expected ErrGameNotInProgress, got %v", err)
	}
	room, _ := f.svc.GetRoom(r.ID)
	if len(room.State.Player1.ActiveBuffs) != 0 {
		t.Fatalf("rejected buffs must not be stored")
	}
}
