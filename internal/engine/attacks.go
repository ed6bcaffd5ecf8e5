package engine

import (
	"strconv"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"
	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

func (tc *turnContext) execAddDefense(a game.Ability) {
	self := tc.self()
	if self.DefenseInventory == nil {
		self.DefenseInventory = map[string]int{}
	}
	self.DefenseInventory[a.DefenseType]++
	tc.kind = battlelog.KindDefenseGained
	tc.add(tc.name(tc.actor) + " used " + abilityName(a) + " and gained a " + a.DefenseType + " defense (" +
		strconv.Itoa(self.DefenseInventory[a.DefenseType]) + " stockpiled)")
}

func (tc *turnContext) execAttack(a game.Ability, buffed bool) {
	rules := tc.e.rules
	att := tc.self()
	def := tc.opponent()

	base := a.Value
	if base < 0 {
		base = 0
	}
	final := base
	critical := false
	if rules.CritChancePercent > 0 && tc.e.rng.Intn(100) < rules.CritChancePercent {
		final = base * rules.CritMultiplier
		critical = true
	}

	d := &battlelog.Details{
		BaseDamage:     base,
		FinalDamage:    final,
		IsCritical:     critical,
		IncomingDamage: final,
		DamageToApply:  final,
	}
	tc.details = d

	attacker := tc.name(tc.actor)
	defender := tc.name(tc.actor.Opponent())
	move := abilityName(a)
	if buffed {
		move = "buffed " + move
	}
	crit := ""
	if critical {
		crit = " (critical hit)"
	}

	switch {
	case def.DefenseCount() == 0:
		tc.kind = battlelog.KindAttacked
		tc.add(attacker + " attacked " + defender + " with " + move + crit + " for " + strconv.Itoa(final) + " damage")
	case def.HoldDefenses:
		tc.kind = battlelog.KindDefenseSkipped
		tc.add(defender + " skipped defense and took " + strconv.Itoa(final) + " damage from " + attacker + "'s " + move + crit)
	default:
		defenseType, _ := strongestDefense(def.DefenseInventory, rules)
		def.DefenseInventory[defenseType]--
		if def.DefenseInventory[defenseType] <= 0 {
			delete(def.DefenseInventory, defenseType)
		}
		rule := rules.Defense(defenseType)
		d.DamageToApply = final - percentOf(final, rule.BlockPercent)
		d.ReflectedDamage = percentOf(final, rule.ReflectPercent)
		if d.DamageToApply == 0 {
			tc.kind = battlelog.KindDefended
			tc.add(defender + "'s " + defenseType + " defense blocked " + attacker + "'s " + move + crit)
		} else {
			tc.kind = battlelog.KindTookDamage
			tc.add(defender + "'s " + defenseType + " defense absorbed part of " + attacker + "'s " + move + crit +
				"; " + defender + " took " + strconv.Itoa(d.DamageToApply) + " damage")
		}
		if d.ReflectedDamage > 0 {
			tc.add(strconv.Itoa(d.ReflectedDamage) + " damage reflected back to " + attacker)
		}
	}

	applyDamage(def, d.DamageToApply)
	applyDamage(att, d.ReflectedDamage)
}
