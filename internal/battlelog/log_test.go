package battlelog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attackEntry(ts int64, dmg int) Entry {
	return Entry{
		Timestamp: ts,
		Kind:      KindAttacked,
		Event:     "player1 attacked player2",
		Actor:     "player1",
		Details:   &Details{BaseDamage: dmg, FinalDamage: dmg, DamageToApply: dmg, IncomingDamage: dmg},
		Player1:   HealthSnapshot{Health: 100},
		Player2:   HealthSnapshot{Health: 100 - int(ts)},
	}
}

func TestAppendKeepsEarlierEntriesIntact(t *testing.T) {
	var l Log
	first := attackEntry(1, 10)
	l.Append(first)

	before, err := json.Marshal(l.At(0))
	require.NoError(t, err)

	for i := int64(2); i <= 20; i++ {
		prev := l.Len()
		l.Append(attackEntry(i, int(i)))
		require.Equal(t, prev+1, l.Len())
	}

	after, err := json.Marshal(l.At(0))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEntriesReturnsCopies(t *testing.T) {
	var l Log
	l.Append(attackEntry(1, 10))

	got := l.Entries()
	got[0].Event = "rewritten"
	got[0].Details.FinalDamage = 999

	assert.Equal(t, "player1 attacked player2", l.At(0).Event)
	assert.Equal(t, 10, l.At(0).Details.FinalDamage)
}

func TestAppendCopiesCallerDetails(t *testing.T) {
	var l Log
	e := attackEntry(1, 10)
	l.Append(e)
	e.Details.FinalDamage = 50

	assert.Equal(t, 10, l.At(0).Details.FinalDamage)
}

func TestRecentMostRecentFirst(t *testing.T) {
	var l Log
	for i := int64(1); i <= 5; i++ {
		l.Append(attackEntry(i, 1))
	}

	got := l.Recent(IsCombatRelevant, 3)
	require.Len(t, got, 3)
	assert.Equal(t, int64(5), got[0].Timestamp)
	assert.Equal(t, int64(4), got[1].Timestamp)
	assert.Equal(t, int64(3), got[2].Timestamp)
}

func TestRecentSkipsNonMatching(t *testing.T) {
	var l Log
	l.Append(attackEntry(1, 1))
	l.Append(Entry{Timestamp: 2, Kind: KindTurnChanged, Event: "player1 won the first turn"})
	l.Append(attackEntry(3, 1))
	l.Append(Entry{Timestamp: 4, Kind: KindCharacterSelected, Event: "player2 selected character Nova"})

	got := l.Recent(IsCombatRelevant, 3)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].Timestamp)
	assert.Equal(t, int64(1), got[1].Timestamp)

	assert.Empty(t, l.Recent(IsCombatRelevant, 0))
	assert.Len(t, l.Recent(nil, 10), 4)
}

func TestCloneIsIndependent(t *testing.T) {
	var l Log
	l.Append(attackEntry(1, 1))
	c := l.Clone()
	c.Append(attackEntry(2, 1))

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 2, c.Len())
}

func TestJSONRoundTripKeepsOrder(t *testing.T) {
	var l Log
	for i := int64(1); i <= 4; i++ {
		l.Append(attackEntry(i, int(i)))
	}
	b, err := json.Marshal(l)
	require.NoError(t, err)

	var back Log
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, l.Entries(), back.Entries())
}

func TestEmptyLogMarshalsAsArray(t *testing.T) {
	var l Log
	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestExportJSONIncludesEveryEntry(t *testing.T) {
	var l Log
	for i := int64(1); i <= 3; i++ {
		l.Append(attackEntry(i, int(i)))
	}
	l.Append(Entry{Timestamp: 4, Event: "Game ended: player2 forfeited"})

	var buf bytes.Buffer
	require.NoError(t, l.Export(&buf, FormatJSON))

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw, 4)
	assert.EqualValues(t, 1, raw[0]["timestamp"])
	assert.EqualValues(t, 4, raw[3]["timestamp"])
	details := raw[2]["details"].(map[string]any)
	for _, k := range []string{"baseDamage", "finalDamage", "isCritical", "damageToApply", "incomingDamage", "reflectedDamage"} {
		assert.Contains(t, details, k)
	}
}

func TestExportTextOneLinePerEntry(t *testing.T) {
	var l Log
	l.Append(attackEntry(1, 7))
	l.Append(Entry{Timestamp: 2, Event: "line\twith\ttabs"})

	var buf bytes.Buffer
	require.NoError(t, l.Export(&buf, FormatText))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "timestamp\t"))
	assert.Len(t, strings.Split(lines[1], "\t"), len(textColumns))
	assert.Len(t, strings.Split(lines[2], "\t"), len(textColumns))
	assert.Contains(t, lines[1], "\t7\t")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("TXT")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
