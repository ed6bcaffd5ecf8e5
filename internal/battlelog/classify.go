package battlelog

import "strings"

// KindFromText classifies a free-text event description. Event strings may
// match several categories, so the first match in this order wins:
// "attacked", "defense", "skipped defense" / "took damage", "turn",
// "selected character", "Game ended". Matching is case-sensitive.
func KindFromText(event string) Kind {
	switch {
	case strings.Contains(event, "attacked"):
		return KindAttacked
	case strings.Contains(event, "defense"):
		return KindDefended
	case strings.Contains(event, "skipped defense"):
		return KindDefenseSkipped
	case strings.Contains(event, "took damage"):
		return KindTookDamage
	case strings.Contains(event, "turn"):
		return KindTurnChanged
	case strings.Contains(event, "selected character"):
		return KindCharacterSelected
	case strings.Contains(event, "Game ended"):
		return KindGameEnded
	default:
		return KindOther
	}
}

// IsCombatRelevant reports whether an entry belongs on the storyboard:
// attacks, defense events, damage taken and skips.
func IsCombatRelevant(e Entry) bool {
	switch e.Kind {
	case KindAttacked, KindDefended, KindDefenseSkipped, KindTookDamage, KindDefenseGained, KindTurnSkipped:
		return true
	case KindNone:
		return strings.Contains(e.Event, "attacked") ||
			strings.Contains(e.Event, "defense") ||
			strings.Contains(e.Event, "took damage") ||
			strings.Contains(e.Event, "skipped")
	default:
		return false
	}
}
