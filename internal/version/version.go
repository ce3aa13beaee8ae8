package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the semantic version (set by ldflags during build)
	Version = "dev"

	// GitCommit is the git commit hash (set by ldflags during build)
	GitCommit = ""
)

// Get returns the version string, falling back to module build info when
// no version was injected at build time.
func Get() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return "dev"
}

// GetShort returns the version with the abbreviated commit when known.
func GetShort() string {
	v := Get()
	if len(GitCommit) >= 7 {
		return fmt.Sprintf("%s-%s", v, GitCommit[:7])
	}
	return v
}

// Platform reports the runtime platform the binary was built for.
func Platform() string {
	return fmt.Sprintf("%s/%s (%s)", runtime.GOOS, runtime.GOARCH, runtime.Version())
}
