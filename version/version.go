package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

// ModulePath is the import path of the fnkit module.
const ModulePath = "github.com/kbukum/fnkit"

// Version is set at build time using -ldflags. Empty means "read from the
// build info".
var Version = ""

// Info describes the fnkit module found in the build info.
type Info struct {
	Version   string `json:"version"`
	Sum       string `json:"sum,omitempty"`
	Replaced  bool   `json:"replaced"`
	GoVersion string `json:"go_version"`
}

// IsRelease reports whether the version is a tagged release rather than a
// development or pseudo version.
func (i Info) IsRelease() bool {
	return isRelease(i.Version)
}

var (
	infoOnce sync.Once
	info     Info
)

// Get returns the version info, reading the build info once.
func Get() Info {
	infoOnce.Do(func() {
		bi, _ := debug.ReadBuildInfo()
		info = fromBuildInfo(bi, Version)
	})
	return info
}

// String returns the fnkit version, "(devel)" when unknown.
func String() string {
	return Get().Version
}

func fromBuildInfo(bi *debug.BuildInfo, pinned string) Info {
	out := Info{Version: "(devel)"}
	if bi != nil {
		out.GoVersion = bi.GoVersion
		if m := findModule(bi); m != nil {
			out.Version = m.Version
			out.Sum = m.Sum
			if m.Replace != nil {
				out.Replaced = true
				if m.Replace.Version != "" {
					out.Version = m.Replace.Version
				}
			}
		}
	}
	if pinned != "" {
		out.Version = pinned
	}
	if out.Version == "" {
		out.Version = "(devel)"
	}
	return out
}

// findModule looks at the main module first, for fnkit's own tests and
// tools, then at the dependencies of an embedding application.
func findModule(bi *debug.BuildInfo) *debug.Module {
	if bi.Main.Path == ModulePath {
		return &bi.Main
	}
	for _, dep := range bi.Deps {
		if dep.Path == ModulePath {
			return dep
		}
	}
	return nil
}

func isRelease(v string) bool {
	if !strings.HasPrefix(v, "v") {
		return false
	}
	// Pseudo versions end in -yyyymmddhhmmss-abcdefabcdef.
	parts := strings.Split(v, "-")
	if len(parts) >= 3 && len(parts[len(parts)-1]) == 12 && len(parts[len(parts)-2]) >= 14 {
		return false
	}
	return !strings.Contains(v, "+dirty")
}
