package version

import (
	"runtime/debug"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name   string
		bi     *debug.BuildInfo
		pinned string
		want   string
	}{
		{"no build info", nil, "", "(devel)"},
		{"main module", &debug.BuildInfo{Main: debug.Module{Path: ModulePath, Version: "(devel)"}}, "", "(devel)"},
		{
			"dependency",
			&debug.BuildInfo{
				Main: debug.Module{Path: "example.org/app"},
				Deps: []*debug.Module{{Path: "github.com/rs/zerolog", Version: "v1.34.0"}, {Path: ModulePath, Version: "v0.4.1"}},
			},
			"", "v0.4.1",
		},
		{
			"replaced dependency",
			&debug.BuildInfo{
				Main: debug.Module{Path: "example.org/app"},
				Deps: []*debug.Module{{Path: ModulePath, Version: "v0.4.1", Replace: &debug.Module{Path: "../fnkit"}}},
			},
			"", "v0.4.1",
		},
		{"pinned wins", &debug.BuildInfo{Main: debug.Module{Path: "example.org/app"}}, "v9.9.9", "v9.9.9"},
		{"absent dependency", &debug.BuildInfo{Main: debug.Module{Path: "example.org/app"}}, "", "(devel)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := fromBuildInfo(tc.bi, tc.pinned)
			if got.Version != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got.Version)
			}
		})
	}
}

func TestFromBuildInfo_Replaced(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Deps:      []*debug.Module{{Path: ModulePath, Version: "v0.4.1", Replace: &debug.Module{Path: "../fnkit"}}},
	}
	got := fromBuildInfo(bi, "")
	if !got.Replaced || got.GoVersion != "go1.26.0" {
		t.Errorf("unexpected info: %+v", got)
	}
}

func TestIsRelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v1.2.3", true},
		{"v1.2.3-rc.1", true},
		{"(devel)", false},
		{"v0.0.0-20260212183809-81e46e3db34a", false},
		{"v1.2.3+dirty", false},
	}
	for _, tc := range tests {
		if got := (Info{Version: tc.version}).IsRelease(); got != tc.want {
			t.Errorf("IsRelease(%q) = %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	if String() == "" {
		t.Error("expected a non-empty version")
	}
}
