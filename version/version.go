package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time using -ldflags. When left at "dev", the
// module version from build info is used instead if present.
var Version = "dev"

const libraryName = "networkkit"

const modulePath = "github.com/megastudymobile/networkkit"

// String returns the effective library version.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == modulePath && dep.Version != "" {
				return dep.Version
			}
		}
	}
	return Version
}

// UserAgent returns the default User-Agent value for outgoing requests,
// e.g. "networkkit/1.2.0".
func UserAgent() string {
	return fmt.Sprintf("%s/%s", libraryName, String())
}
