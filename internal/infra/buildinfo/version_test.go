package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" || info.Commit == "" || info.BuildTime == "" {
		t.Errorf("Get() = %+v, no field may be empty", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
}

func TestString(t *testing.T) {
	s := String()
	i := Get()

	if want := i.Version + " (" + i.Commit + ") built at " + i.BuildTime; s != want {
		t.Errorf("String() = %q, want %q", s, want)
	}
	if !strings.Contains(s, "built at") {
		t.Errorf("String() = %q", s)
	}
}

func TestResolve(t *testing.T) {
	embedded := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v1.2.3"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2024-01-02T03:04:05Z"},
			},
		}, true
	}

	tests := []struct {
		name                    string
		version, commit, built  string
		read                    func() (*debug.BuildInfo, bool)
		wantVersion, wantCommit string
		wantBuildTime           string
	}{
		{
			name:    "fallback to embedded",
			version: "dev", commit: "unknown", built: "unknown",
			read:        embedded,
			wantVersion: "v1.2.3", wantCommit: "abc123", wantBuildTime: "2024-01-02T03:04:05Z",
		},
		{
			name:    "ldflags win",
			version: "v9.0.0", commit: "fff", built: "today",
			read:        embedded,
			wantVersion: "v9.0.0", wantCommit: "fff", wantBuildTime: "today",
		},
		{
			name:    "no build info",
			version: "dev", commit: "unknown", built: "unknown",
			read:        func() (*debug.BuildInfo, bool) { return nil, false },
			wantVersion: "dev", wantCommit: "unknown", wantBuildTime: "unknown",
		},
		{
			name:    "devel module version ignored",
			version: "dev", commit: "unknown", built: "unknown",
			read: func() (*debug.BuildInfo, bool) {
				return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
			},
			wantVersion: "dev", wantCommit: "unknown", wantBuildTime: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.version, tt.commit, tt.built, tt.read)
			if got.Version != tt.wantVersion || got.Commit != tt.wantCommit || got.BuildTime != tt.wantBuildTime {
				t.Errorf("resolve() = %+v, want version=%s commit=%s build_time=%s",
					got, tt.wantVersion, tt.wantCommit, tt.wantBuildTime)
			}
		})
	}
}
