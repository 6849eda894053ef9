// Package version reports the build stamped into the binary
package version

// BuildInfo is the build stamp served by the meta routes and logged at startup
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags "-X wordlebot/internal/core/version.version=v1.2.0 -X ...commit=abcd -X ...date=2026-01-02"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build stamp for service
func Info(service string) BuildInfo {
	if service == "" {
		service = "wordlebot"
	}
	return BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
}
