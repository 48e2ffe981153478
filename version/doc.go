// Package version reports the library's build version.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/megastudymobile/networkkit/version.Version=1.0.0"
//
// When unset, the module version falls back to build info where available.
package version
