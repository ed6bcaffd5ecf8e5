// Package storyboard renders the tail of a battle log as a short list of
// display frames for live viewers.
package storyboard

import "github.com/StakeWars-org/mantle-stakewars-sub001/internal/battlelog"

const (
	// MaxFrames is the number of recent combat events shown.
	MaxFrames = 3
	// Placeholder is shown while no combat event has happened yet.
	Placeholder = "The battle will begin soon"
)

// Icon names understood by clients.
const (
	IconSword      = "sword"
	IconShield     = "shield"
	IconShieldOff  = "shield-off"
	IconHeartCrack = "heart-crack"
	IconSparkles   = "sparkles"
	IconHourglass  = "hourglass"
	IconScroll     = "scroll"
)

// Frame is one rendered storyboard record.
type Frame struct {
	Icon      string         `json:"icon"`
	Label     string         `json:"label"`
	Text      string         `json:"text"`
	Damage    int            `json:"damage"`
	Critical  bool           `json:"critical"`
	Reflected bool           `json:"reflected"`
	Kind      battlelog.Kind `json:"kind"`
	Timestamp int64          `json:"timestamp"`
}

// Board is the storyboard view. Placeholder is set only when Frames is empty.
type Board struct {
	Placeholder string  `json:"placeholder,omitempty"`
	Frames      []Frame `json:"frames"`
}

// Build selects the last MaxFrames combat-relevant entries, most recent
// first, and classifies each one.
func Build(log battlelog.Log) Board {
	recent := log.Recent(battlelog.IsCombatRelevant, MaxFrames)
	if len(recent) == 0 {
		return Board{Placeholder: Placeholder, Frames: []Frame{}}
	}
	frames := make([]Frame, 0, len(recent))
	for _, e := range recent {
		frames = append(frames, frameFor(e))
	}
	return Board{Frames: frames}
}

func frameFor(e battlelog.Entry) Frame {
	kind := e.EffectiveKind()
	f := Frame{Text: e.Event, Kind: kind, Timestamp: e.Timestamp}
	f.Icon, f.Label = iconFor(kind)
	if d := e.Details; d != nil {
		f.Critical = d.IsCritical
		f.Reflected = d.ReflectedDamage > 0
		switch kind {
		case battlelog.KindAttacked:
			f.Damage = d.FinalDamage
		case battlelog.KindDefended, battlelog.KindTookDamage:
			f.Damage = d.DamageToApply
		case battlelog.KindDefenseSkipped:
			f.Damage = d.IncomingDamage
		}
	}
	return f
}

func iconFor(k battlelog.Kind) (string, string) {
	switch k {
	case battlelog.KindAttacked:
		return IconSword, "Attack"
	case battlelog.KindDefended:
		return IconShield, "Defended"
	case battlelog.KindDefenseGained:
		return IconShield, "Defense gained"
	case battlelog.KindDefenseSkipped:
		return IconShieldOff, "Defense skipped"
	case battlelog.KindTookDamage:
		return IconHeartCrack, "Took damage"
	case battlelog.KindTurnSkipped, battlelog.KindTurnChanged:
		return IconHourglass, "Turn"
	case battlelog.KindCharacterSelected, battlelog.KindGameEnded:
		return IconSparkles, "Game"
	default:
		return IconScroll, "Note"
	}
}
