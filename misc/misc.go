// Package misc carries build time program identity.
package misc

import "runtime/debug"

// Overridable at build time with -ldflags "-X cssel/misc.version=...", with
// fallbacks good enough for a plain go build.
var (
	appName = "cssel"
	version = ""
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "development"
}

func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
