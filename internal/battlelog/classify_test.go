package battlelog

import "testing"

func TestKindFromTextPriority(t *testing.T) {
	cases := []struct {
		event string
		want  Kind
	}{
		{"player1 attacked player2 and broke their defense", KindAttacked},
		{"player2 raised a shield defense", KindDefended},
		{"player2 skipped defense and took 20 damage", KindDefended},
		{"player2 took damage from a stray spark", KindTookDamage},
		{"player1 won the first turn", KindTurnChanged},
		{"player2 selected character Nova", KindCharacterSelected},
		{"Game ended: player1 forfeited", KindGameEnded},
		{"game ended quietly", KindOther},
		{"", KindOther},
	}
	for _, tc := range cases {
		if got := KindFromText(tc.event); got != tc.want {
			t.Errorf("KindFromText(%q) = %q, want %q", tc.event, got, tc.want)
		}
	}
}

func TestEffectiveKindPrefersTag(t *testing.T) {
	e := Entry{Kind: KindDefenseSkipped, Event: "player2 skipped defense and took 20 damage"}
	if got := e.EffectiveKind(); got != KindDefenseSkipped {
		t.Fatalf("expected tagged kind, got %q", got)
	}
	e.Kind = KindNone
	if got := e.EffectiveKind(); got != KindDefended {
		t.Fatalf("expected text classification, got %q", got)
	}
}

func TestIsCombatRelevant(t *testing.T) {
	relevant := []Entry{
		{Kind: KindAttacked},
		{Kind: KindDefenseGained},
		{Kind: KindTurnSkipped},
		{Event: "player1 skipped their turn"},
		{Event: "player2 took damage"},
	}
	for _, e := range relevant {
		if !IsCombatRelevant(e) {
			t.Errorf("expected %+v to be relevant", e)
		}
	}
	irrelevant := []Entry{
		{Kind: KindTurnChanged, Event: "player1 attacked first"},
		{Kind: KindCharacterSelected},
		{Event: "player2 selected character Nova"},
	}
	for _, e := range irrelevant {
		if IsCombatRelevant(e) {
			t.Errorf("expected %+v to be irrelevant", e)
		}
	}
}
