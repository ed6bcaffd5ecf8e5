package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent requests for the same derived artifact. Only one job runs for
// a given key while other callers wait for its result.

import (
	"fmt"

	"golang.org/x/sync/singleflight"
)

// ExportGroup deduplicates battle log exports. Keys come from ExportKey.
var ExportGroup singleflight.Group

// ExportKey identifies an export by room, format and log length. The log is
// append-only, so equal keys always render the same bytes.
func ExportKey(roomID uint, format string, logLen int) string {
	return fmt.Sprintf("export:%d:%s:%d", roomID, format, logLen)
}
