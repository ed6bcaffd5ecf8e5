// Package battlelog holds the append-only record of a battle's events.
//
// A Log can only grow: entries are appended in chronological order and are
// never modified or removed afterwards. Readers get copies.
package battlelog

import "encoding/json"

// Log is an ordered, append-only list of entries. The zero value is an
// empty log ready to use.
type Log struct {
	entries []Entry
}

// Append adds e at the end of the log.
func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e.clone())
}

// Len returns the number of entries.
func (l Log) Len() int { return len(l.entries) }

// At returns a copy of the i-th entry in insertion order.
func (l Log) At(i int) Entry { return l.entries[i].clone() }

// Last returns the most recent entry, if any.
func (l Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1].clone(), true
}

// Entries returns a copy of all entries in insertion order.
func (l Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i := range l.entries {
		out[i] = l.entries[i].clone()
	}
	return out
}

// Recent returns up to n of the latest entries accepted by match, most
// recent first. A nil match accepts every entry.
func (l Log) Recent(match func(Entry) bool, n int) []Entry {
	if n <= 0 {
		return nil
	}
	out := make([]Entry, 0, n)
	for i := len(l.entries) - 1; i >= 0 && len(out) < n; i-- {
		if match == nil || match(l.entries[i]) {
			out = append(out, l.entries[i].clone())
		}
	}
	return out
}

// Clone returns an independent copy of the log. Appending to the copy does
// not affect the original.
func (l Log) Clone() Log {
	return Log{entries: l.Entries()}
}

func (l Log) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.entries)
}

func (l *Log) UnmarshalJSON(b []byte) error {
	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	l.entries = entries
	return nil
}
