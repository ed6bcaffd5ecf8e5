package battlelog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects the serialization used by Export.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

var ErrUnknownFormat = errors.New("unknown battle log export format")

// ParseFormat maps a user supplied name to a Format. The empty string
// selects JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatText, "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Extension returns the file extension, without the dot.
func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return "json"
}

// Export writes every entry of the log, in insertion order, to w.
//
// JSON output is an array of entries with all fields present. Text output
// has a header line followed by one tab-separated line per entry; event text
// is quoted so embedded tabs or newlines cannot break the layout.
func (l Log) Export(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	case FormatText:
		return l.exportText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

var textColumns = []string{
	"timestamp", "kind", "actor", "event",
	"base_damage", "final_damage", "is_critical", "damage_to_apply", "incoming_damage", "reflected_damage",
	"player1_health", "player2_health",
}

func (l Log) exportText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(textColumns, "\t") + "\n"); err != nil {
		return err
	}
	for _, e := range l.entries {
		d := Details{}
		if e.Details != nil {
			d = *e.Details
		}
		cols := []string{
			strconv.FormatInt(e.Timestamp, 10),
			string(e.EffectiveKind()),
			e.Actor,
			strconv.Quote(e.Event),
			strconv.Itoa(d.BaseDamage),
			strconv.Itoa(d.FinalDamage),
			strconv.FormatBool(d.IsCritical),
			strconv.Itoa(d.DamageToApply),
			strconv.Itoa(d.IncomingDamage),
			strconv.Itoa(d.ReflectedDamage),
			strconv.Itoa(e.Player1.Health),
			strconv.Itoa(e.Player2.Health),
		}
		if _, err := bw.WriteString(strings.Join(cols, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
