package app

import "fmt"

// Set via -ldflags "-X github.com/heartmarshall/mindtrack-backend/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports the version for startup logs and /health.
// Commit and build time are appended only when they were stamped.
func BuildVersion() string {
	switch {
	case Commit == "":
		return Version
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", Version, Commit)
	default:
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
	}
}
