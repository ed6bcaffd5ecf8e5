package game

// DefenseRule describes what one stockpiled defense of a type does when it is
// spent against an attack. Percentages are of the incoming damage.
type DefenseRule struct {
	BlockPercent   int `json:"block_percent"`
	ReflectPercent int `json:"reflect_percent"`
}

// CombatRules parameterise attack resolution.
type CombatRules struct {
	CritChancePercent int                    `json:"crit_chance_percent"`
	CritMultiplier    int                    `json:"crit_multiplier"`
	Defenses          map[string]DefenseRule `json:"defenses"`
	// Bounds for player-applied buffs: |effect| <= MaxBuffEffect and
	// 1 <= remainingTurns <= MaxBuffTurns.
	MaxBuffEffect     int                    `json:"max_buff_effect"`
	MaxBuffTurns      int                    `json:"max_buff_turns"`
}

const (
	DefaultMaxBuffEffect = 10
	DefaultMaxBuffTurns  = 3
	// Upper bounds accepted from configuration.
	MaxBuffEffectLimit   = 1000
	MaxBuffTurnsLimit    = 100
)

// DefaultDefenseRule applies to defense types with no configured rule.
var DefaultDefenseRule = DefenseRule{BlockPercent: 100}

// DefaultCombatRules are used when the configuration omits the combat block.
func DefaultCombatRules() CombatRules {
	return CombatRules{
		CritChancePercent: 10,
		CritMultiplier:    2,
		Defenses:          map[string]DefenseRule{},
		MaxBuffEffect:     DefaultMaxBuffEffect,
		MaxBuffTurns:      DefaultMaxBuffTurns,
	}
}

// Defense returns the rule for a defense type.
func (r CombatRules) Defense(defenseType string) DefenseRule {
	if d, ok := r.Defenses[defenseType]; ok {
		return d
	}
	return DefaultDefenseRule
}
