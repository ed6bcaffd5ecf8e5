package battlelog

// Kind tags a log entry with the event category it was created for. Entries
// written by the engine always carry a kind; entries without one (older
// exports, hand-written fixtures) are classified from their text instead.
type Kind string

const (
	KindNone              Kind = ""
	KindAttacked          Kind = "attacked"
	KindDefended          Kind = "defended"
	KindDefenseSkipped    Kind = "defenseSkipped"
	KindTookDamage        Kind = "tookDamage"
	KindDefenseGained     Kind = "defenseGained"
	KindTurnSkipped       Kind = "turnSkipped"
	KindTurnChanged       Kind = "turnChanged"
	KindCharacterSelected Kind = "characterSelected"
	KindGameEnded         Kind = "gameEnded"
	KindOther             Kind = "other"
)

// Details carries the combat figures of an attack. It is nil for entries
// that do not describe damage.
type Details struct {
	BaseDamage      int  `json:"baseDamage"`
	FinalDamage     int  `json:"finalDamage"`
	IsCritical      bool `json:"isCritical"`
	DamageToApply   int  `json:"damageToApply"`
	IncomingDamage  int  `json:"incomingDamage"`
	ReflectedDamage int  `json:"reflectedDamage"`
}

// HealthSnapshot records a seat's health right after the event.
type HealthSnapshot struct {
	Health int `json:"health"`
}

// Entry is one resolved event of a battle.
type Entry struct {
	// Timestamp is in unix milliseconds.
	Timestamp int64          `json:"timestamp"`
	Kind      Kind           `json:"kind,omitempty"`
	Event     string         `json:"event"`
	Actor     string         `json:"actor,omitempty"`
	Details   *Details       `json:"details,omitempty"`
	Player1   HealthSnapshot `json:"player1"`
	Player2   HealthSnapshot `json:"player2"`
}

// EffectiveKind returns the tagged kind, falling back to text
// classification for untagged entries.
func (e Entry) EffectiveKind() Kind {
	if e.Kind != KindNone {
		return e.Kind
	}
	return KindFromText(e.Event)
}

func (e Entry) clone() Entry {
	if e.Details != nil {
		d := *e.Details
		e.Details = &d
	}
	return e
}
