package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

// DiceFaces is the number of faces of the turn die.
const DiceFaces = game.MaxAbilities

// Roller is the randomness provider for dice and critical hits.
// Implementations must be safe for concurrent use.
type Roller interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// NewRoller returns a concurrency-safe Roller seeded from crypto/rand.
func NewRoller() Roller {
	return NewSeededRoller(newSeed())
}

// NewSeededRoller returns a deterministic concurrency-safe Roller.
func NewSeededRoller(seed int64) Roller {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic("engine: read random seed: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// RollDie returns a uniform value in [1, DiceFaces].
func RollDie(r Roller) int {
	return r.Intn(DiceFaces) + 1
}

// ResolveAbility selects the ability bound to the rolled face. It does not
// touch the player.
func ResolveAbility(p *game.PlayerBattleState, roll int) (game.Ability, error) {
	if p == nil || p.Character == nil {
		return game.Ability{}, ErrMissingCharacter
	}
	abilities := p.Character.Abilities
	if roll < 1 || roll > len(abilities) {
		return game.Ability{}, ErrRollOutOfRange
	}
	return abilities[roll-1], nil
}
