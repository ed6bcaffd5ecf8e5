package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/StakeWars-org/mantle-stakewars-sub001/internal/game"
)

type characterEntry struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Health    int            `json:"health"`
	Abilities []game.Ability `json:"abilities"`
}

type rawConfig struct {
	CharacterList []characterEntry `json:"character_list"`
	Server        *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Optional combat tuning; omitted fields keep their defaults.
	Combat *struct {
		CritChancePercent *int                        `json:"crit_chance_percent"`
		CritMultiplier    *int                        `json:"crit_multiplier"`
		Defenses          map[string]game.DefenseRule `json:"defenses"`
		MaxBuffEffect     *int                        `json:"max_buff_effect"`
		MaxBuffTurns      *int                        `json:"max_buff_turns"`
	} `json:"combat"`
	TurnTimeoutSeconds    int `json:"turn_timeout_seconds"`
	DiceCooldownMillis    int `json:"dice_cooldown_ms"`
	PublicRoomsTTLMinutes int `json:"public_rooms_ttl_minutes"`
}

// LoadedConfig contains the character catalog, combat rules, timers and the
// server address to bind to.
type LoadedConfig struct {
	Characters     []game.Character
	ServerAddress  string
	Combat         game.CombatRules
	TurnTimeout    time.Duration
	DiceCooldown   time.Duration
	PublicRoomsTTL time.Duration
}

const (
	defaultAddress        = ":8080"
	defaultTurnTimeout    = 60 * time.Second
	defaultDiceCooldown   = time.Second
	defaultPublicRoomsTTL = 10 * time.Minute
)

// LoadConfig reads the configuration file at path. It requires the key
// `character_list` (snake_case) with at least one character.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(b []byte) (*LoadedConfig, error) {
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(rc.CharacterList) == 0 {
		return nil, fmt.Errorf("character_list is empty (provide 'character_list' array)")
	}

	rules := game.DefaultCombatRules()
	if c := rc.Combat; c != nil {
		if c.CritChancePercent != nil {
			rules.CritChancePercent = *c.CritChancePercent
		}
		if c.CritMultiplier != nil {
			rules.CritMultiplier = *c.CritMultiplier
		}
		for k, v := range c.Defenses {
			rules.Defenses[k] = v
		}
		if c.MaxBuffEffect != nil {
			rules.MaxBuffEffect = *c.MaxBuffEffect
		}
		if c.MaxBuffTurns != nil {
			rules.MaxBuffTurns = *c.MaxBuffTurns
		}
	}
	if rules.CritChancePercent < 0 || rules.CritChancePercent > 100 {
		return nil, fmt.Errorf("combat.crit_chance_percent must be between 0 and 100")
	}
	if rules.CritMultiplier < 1 {
		return nil, fmt.Errorf("combat.crit_multiplier must be at least 1")
	}
	if rules.MaxBuffEffect < 1 || rules.MaxBuffEffect > game.MaxBuffEffectLimit {
		return nil, fmt.Errorf("combat.max_buff_effect must be between 1 and %d", game.MaxBuffEffectLimit)
	}
	if rules.MaxBuffTurns < 1 || rules.MaxBuffTurns > game.MaxBuffTurnsLimit {
		return nil, fmt.Errorf("combat.max_buff_turns must be between 1 and %d", game.MaxBuffTurnsLimit)
	}
	for k, d := range rules.Defenses {
		if d.BlockPercent < 0 || d.BlockPercent > 100 || d.ReflectPercent < 0 || d.ReflectPercent > 100 {
			return nil, fmt.Errorf("combat.defenses.%s: percentages must be between 0 and 100", k)
		}
	}

	out := make([]game.Character, 0, len(rc.CharacterList))
	ids := make(map[string]struct{}, len(rc.CharacterList))
	for _, c := range rc.CharacterList {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return nil, fmt.Errorf("character entry missing 'id'")
		}
		key := strings.ToLower(id)
		if _, exists := ids[key]; exists {
			return nil, fmt.Errorf("duplicate character id '%s'", id)
		}
		ids[key] = struct{}{}
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("character '%s' missing 'name'", id)
		}
		if c.Health <= 0 {
			return nil, fmt.Errorf("character '%s' must have positive health", id)
		}
		if len(c.Abilities) == 0 || len(c.Abilities) > game.MaxAbilities {
			return nil, fmt.Errorf("character '%s' must have between 1 and %d abilities", id, game.MaxAbilities)
		}
		for i, a := range c.Abilities {
			switch a.Type {
			case game.AbilityAttack, game.AbilityDefense:
			default:
				return nil, fmt.Errorf("character '%s' ability %d: unknown type '%s'", id, i+1, a.Type)
			}
		}
		out = append(out, game.Character{ID: id, Name: c.Name, Health: c.Health, Abilities: c.Abilities})
	}

	addr := defaultAddress
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Characters:     out,
		ServerAddress:  addr,
		Combat:         rules,
		TurnTimeout:    durationOr(rc.TurnTimeoutSeconds, time.Second, defaultTurnTimeout),
		DiceCooldown:   durationOr(rc.DiceCooldownMillis, time.Millisecond, defaultDiceCooldown),
		PublicRoomsTTL: durationOr(rc.PublicRoomsTTLMinutes, time.Minute, defaultPublicRoomsTTL),
	}, nil
}

func durationOr(n int, unit, def time.Duration) time.Duration {
	if n <= 0 {
		return def
	}
	return time.Duration(n) * unit
}
