package service

import (
	"sync"
	"testing"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/engine"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/storage"
)

type mockRepo struct {
	mu         sync.Mutex
	rooms      map[uint]game.Room
	nextID     uint
	profiles   map[string]string
	statsCalls []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{rooms: map[uint]game.Room{}, profiles: map[string]string{}}
}

func (m *mockRepo) CreateRoom(r *game.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	r.Version = 1
	r.SyncColumns()
	cp := *r
	cp.State = r.State.Clone()
	m.rooms[r.ID] = cp
	return nil
}

func (m *mockRepo) GetRoomByID(id uint) (*game.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		return nil, storage.ErrRoomNotFound
	}
	r.State = r.State.Clone()
	return &r, nil
}

func (m *mockRepo) FindRoomByJoinCode(code string) (*game.Room, error) {
	m.mu.Lock()
	var id uint
	for k, r := range m.rooms {
		if r.JoinCode == code {
			id = k
		}
	}
	m.mu.Unlock()
	if id == 0 {
		return nil, storage.ErrRoomNotFound
	}
	return m.GetRoomByID(id)
}

func (m *mockRepo) UpdateRoom(r *game.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.rooms[r.ID]
	if !ok {
		return storage.ErrRoomNotFound
	}
	if stored.Version != r.Version {
		return storage.ErrStaleRoom
	}
	r.Version++
	r.SyncColumns()
	cp := *r
	cp.State = r.State.Clone()
	m.rooms[r.ID] = cp
	return nil
}

func (m *mockRepo) UpsertProfile(wallet, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[wallet] = name
	return nil
}

func (m *mockRepo) UpdateStatsOnGameEnd(r *game.Room, forfeitedWallet string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statsCalls = append(m.statsCalls, forfeitedWallet)
	return nil
}

// scriptRoller replays vals in order and then repeats the last one.
type scriptRoller struct {
	mu   sync.Mutex
	vals []int
	i    int
}

func (s *scriptRoller) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
		s.i++
	}
	return v % n
}

// faces converts die faces (1-based) into Intn results.
func faces(fs ...int) *scriptRoller {
	vals := make([]int, len(fs))
	for i, f := range fs {
		vals[i] = f - 1
	}
	return &scriptRoller{vals: vals}
}

type countingNotifier struct {
	mu    sync.Mutex
	count int
}

func (c *countingNotifier) Publish(*game.Room) {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
}

func testCatalog() []game.Character {
	return []game.Character{
		{ID: "knight", Name: "Knight", Health: 30, Abilities: []game.Ability{
			{Name: "Slash", Type: game.AbilityAttack, Value: 10},
			{Name: "Shield Up", Type: game.AbilityDefense, DefenseType: "shield"},
			{Name: "Broken Guard", Type: game.AbilityDefense},
		}},
		{ID: "rogue", Name: "Rogue", Health: 20, Abilities: []game.Ability{
			{Name: "Stab", Type: game.AbilityAttack, Value: 10},
		}},
	}
}

type fixture struct {
	svc      *Service
	repo     *mockRepo
	notifier *countingNotifier
	dice     *scriptRoller
}

func newFixture(t *testing.T, dice *scriptRoller) *fixture {
	t.Helper()
	repo := newMockRepo()
	n := &countingNotifier{}
	// Intn(100) = 99 never crits
	eng := engine.New(game.DefaultCombatRules(), &scriptRoller{vals: []int{99}})
	svc := New(repo, eng, testCatalog(), Options{TurnTimeout: time.Minute, Notifier: n, Dice: dice})
	return &fixture{svc: svc, repo: repo, notifier: n, dice: dice}
}

// readyRoom creates a room, seats both players and selects characters.
func (f *fixture) readyRoom(t *testing.T) *game.Room {
	t.Helper()
	r, err := f.svc.CreateRoom("0xA", "Ann", "arena", "ABCD1234", false)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if _, err := f.svc.JoinRoom("ABCD1234", "0xB", "Bob"); err != nil {
		t.Fatalf("JoinRoom: %v", err)
	}
	if _, err := f.svc.SelectCharacter(r.ID, "0xA", "knight"); err != nil {
		t.Fatalf("SelectCharacter p1: %v", err)
	}
	r, err = f.svc.SelectCharacter(r.ID, "0xB", "rogue")
	if err != nil {
		t.Fatalf("SelectCharacter p2: %v", err)
	}
	return r
}

// startedRoom additionally rolls for the first turn; player1 goes first.
func (f *fixture) startedRoom(t *testing.T) *game.Room {
	t.Helper()
	r := f.readyRoom(t)
	if _, _, err := f.svc.RollForFirstTurn(r.ID, "0xA"); err != nil {
		t.Fatalf("roll p1: %v", err)
	}
	r, _, err := f.svc.RollForFirstTurn(r.ID, "0xB")
	if err != nil {
		t.Fatalf("roll p2: %v", err)
	}
	if r.State.GameStatus != game.StatusInProgress {
		t.Fatalf("expected in progress, got %s", r.State.GameStatus)
	}
	return r
}
