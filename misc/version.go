// Package misc holds program identity.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "sct"

// Set at link time with -X.
var (
	version = ""
	gitHash = ""
)

var buildInfo = sync.OnceValue(func() (info struct{ version, hash string }) {
	info.version, info.hash = "dev", "unknown"
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.version = v
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			info.hash = s.Value
		}
	}
	return info
})

func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	if version != "" {
		return version
	}
	return buildInfo().version
}

// GetGitHash returns revision program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	return buildInfo().hash
}
