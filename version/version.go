package version

import (
	"runtime/debug"
)

var (
	// These variables are set at build time using -ldflags
	Version = "dev"
	Commit  = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// Get returns the version information of the running binary.
func Get() Info {
	info := Info{Version: Version, Commit: Commit}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	return info
}

// Short returns "version[-commit][-dirty]".
func Short() string {
	info := Get()
	s := info.Version
	if info.Commit != "" {
		s += "-" + info.Commit
	}
	if info.Dirty {
		s += "-dirty"
	}
	return s
}
