// Package version reports which desk build is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags, e.g.
//
//	-ldflags "-X github.com/example/desk/internal/version.Version=v0.3.0"
//
// Anything left empty is filled from the module build info.
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

// Info describes a desk build.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Modified  bool
}

// Get merges the ldflags values with the binary's embedded build info.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

// String returns the one-line version shown by `desk --version`.
func String() string {
	return Get().String()
}

func (i Info) String() string {
	commit := shortCommit(i.Commit)
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("desk %s (commit: %s, built: %s)", i.Version, commit, i.BuildTime)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}

	if bi != nil {
		// `go install module@version` stamps Main.Version; local builds report (devel).
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
