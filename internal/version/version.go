package version

import "fmt"

// These variables are overridden at build time using -ldflags.
// Keep sensible defaults for local development.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// Info is the build metadata served by the version endpoint.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   bool   `json:"dirty"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, Dirty: Dirty == "true"}
}

// String renders the metadata for log lines, e.g. "v1.2.0 (abc1234, dirty)".
func String() string {
	i := Get()
	if i.Dirty {
		return fmt.Sprintf("%s (%s, dirty)", i.Version, i.Commit)
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}
