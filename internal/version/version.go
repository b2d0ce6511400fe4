// Package version reports build metadata for the walter binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Populated by the linker, e.g.
// -ldflags "-X git.sr.ht/~jakintosh/walter/internal/version.rawVersion=v1.0.0"
var (
	rawVersion = "dev"
	rawCommit  = ""
	rawDate    = ""
)

const (
	unknown  = "unknown"
	shortLen = 12
)

// Info captures the build metadata for the binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// String formats the metadata as a single line.
func (i Info) String() string {
	return fmt.Sprintf("walter %s (commit %s, built %s)", i.Version, i.Commit, i.BuildDate)
}

var load = sync.OnceValue(func() Info {
	info := Info{
		Version:   strings.TrimSpace(rawVersion),
		Commit:    strings.TrimSpace(rawCommit),
		BuildDate: strings.TrimSpace(rawDate),
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, buildInfo)
	}
	return finalize(info)
})

// Data returns the build metadata, preferring linker values, then module
// and VCS data embedded by the go tool, then development defaults.
func Data() Info {
	return load()
}

// fromBuildInfo fills the fields the linker left empty.
func fromBuildInfo(info Info, buildInfo *debug.BuildInfo) Info {
	if isDevVersion(info.Version) && strings.HasPrefix(buildInfo.Main.Version, "v") {
		info.Version = buildInfo.Main.Version
	}

	settings := make(map[string]string, len(buildInfo.Settings))
	for _, s := range buildInfo.Settings {
		settings[s.Key] = s.Value
	}

	if info.Commit == "" && settings["vcs.revision"] != "" {
		info.Commit = settings["vcs.revision"]
		if settings["vcs.modified"] == "true" {
			info.Commit += "-dirty"
		}
	}

	if info.BuildDate == "" {
		if t := settings["vcs.time"]; t != "" {
			info.BuildDate = t
			if parsed, err := time.Parse(time.RFC3339, t); err == nil {
				info.BuildDate = parsed.UTC().Format(time.RFC3339)
			}
		}
	}
	return info
}

// finalize applies defaults and shortens the commit hash.
func finalize(info Info) Info {
	if isDevVersion(info.Version) {
		info.Version = "dev"
	}
	switch {
	case info.Commit == "":
		info.Commit = unknown
	case len(info.Commit) > shortLen:
		info.Commit = info.Commit[:shortLen]
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}
	return info
}

func isDevVersion(value string) bool {
	return value == "" || value == "dev" || value == "(devel)"
}
