package main

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want string
	}{
		{
			name: "no build info",
			want: "people-api 1.2.0\n",
		},
		{
			name: "vcs settings",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.6",
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
					{Key: "vcs.modified", Value: "false"},
					{Key: "-trimpath", Value: "true"},
				},
			},
			want: "people-api 1.2.0\n" +
				"  go:       go1.25.6\n" +
				"  revision: abc123\n" +
				"  built:    2026-10-01T12:00:00Z\n",
		},
		{
			name: "dirty tree",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.6",
				Settings:  []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
			},
			want: "people-api 1.2.0\n  go:       go1.25.6\n  modified: true\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeVersion(&buf, "1.2.0", tt.info)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
