package engine

import (
	"sort"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

// --- Buff helpers -------------------------------------------------------

// TotalExtraDamage sums the damage deltas of all active buffs.
func TotalExtraDamage(buffs []game.ActiveBuff) int {
	total := 0
	for _, b := range buffs {
		total += b.Effect
	}
	return total
}

// ApplyBuffs returns the ability with every active buff added to its value.
// The boolean is true when at least one buff was active.
func ApplyBuffs(a game.Ability, buffs []game.ActiveBuff) (game.Ability, bool) {
	if len(buffs) == 0 {
		return a, false
	}
	a.Value += TotalExtraDamage(buffs)
	return a, true
}

// TickBuffs consumes one turn of every buff and drops the expired ones.
func TickBuffs(p *game.PlayerBattleState) {
	kept := p.ActiveBuffs[:0]
	for _, b := range p.ActiveBuffs {
		b.RemainingTurns--
		if b.RemainingTurns > 0 {
			kept = append(kept, b)
		}
	}
	p.ActiveBuffs = kept
}

// --- Damage helpers -----------------------------------------------------

func percentOf(v, pct int) int {
	if pct <= 0 || v <= 0 {
		return 0
	}
	if pct > 100 {
		pct = 100
	}
	return v * pct / 100
}

// strongestDefense picks the stockpiled defense that blocks the most,
// breaking ties by name so the choice is stable.
func strongestDefense(inv map[string]int, rules game.CombatRules) (string, bool) {
	types := make([]string, 0, len(inv))
	for t, n := range inv {
		if n > 0 {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return "", false
	}
	sort.Slice(types, func(i, j int) bool {
		bi := rules.Defense(types[i]).BlockPercent
		bj := rules.Defense(types[j]).BlockPercent
		if bi == bj {
			return types[i] < types[j]
		}
		return bi > bj
	})
	return types[0], true
}

func applyDamage(p *game.PlayerBattleState, dmg int) {
	p.Health -= dmg
	if p.Health < 0 {
		p.Health = 0
	}
}
