// Package version reports the build version of contactform.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/contactform/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/contactform/internal/version.Commit=abc123"
//
// Otherwise they are filled from the embedded VCS info, or fall back to "dev".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		rev, modified, vcsTime := vcsInfo()
		if Commit == "" && rev != "" {
			Commit = shortRevision(rev, modified)
		}
		if Version == "" && !vcsTime.IsZero() {
			Version = "dev-" + vcsTime.Format("20060102")
		}
	}

	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// vcsInfo reads the revision, dirty flag and commit time from the build info
func vcsInfo() (revision string, modified bool, commitTime time.Time) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false, time.Time{}
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		case "vcs.time":
			commitTime, _ = time.Parse(time.RFC3339, setting.Value)
		}
	}
	return revision, modified, commitTime
}

// shortRevision trims a commit hash to 7 characters and marks dirty trees
func shortRevision(rev string, modified bool) string {
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if modified {
		rev += "-dirty"
	}
	return rev
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
