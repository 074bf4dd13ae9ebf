// Package version exposes the build's version and commit, stamped at
// build time or recovered from the binary's embedded VCS metadata.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set via ldflags on release builds:
//
//	go build -ldflags="-X github.com/weftlabs/weft/internal/version.Version=v1.2.3 \
//	                   -X github.com/weftlabs/weft/internal/version.Commit=abc123"
//
// Unstamped builds fall back to the VCS information Go embeds, and
// finally to a dev placeholder.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo()
	}
	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision, modified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			Commit = revision[:7]
		} else {
			Commit = revision
		}
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	// Tags are not part of build info; derive a dated dev version from
	// the commit time when possible.
	if Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// Full returns the version and commit in one display string.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
