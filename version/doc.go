// Package version reports the fnkit release linked into the running binary.
//
// Version can be pinned at build time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/fnkit/version.Version=v1.2.0"
//
// Otherwise it is read from the module build info of the binary.
package version
