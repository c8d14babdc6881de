package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	dev := Info{Version: "0.1.0", GitCommit: "unknown", BuildTime: "unknown", GoVersion: runtime.Version()}
	assert.True(t, dev.Dirty())
	assert.Equal(t, "0.1.0 (dev build, go: "+runtime.Version()+")", dev.String())

	release := Info{Version: "1.2.0", GitCommit: "abc1234", BuildTime: "2026-10-16", GoVersion: "go1.23.6"}
	assert.False(t, release.Dirty())
	assert.Equal(t, "1.2.0 (commit: abc1234, built: 2026-10-16, go: go1.23.6)", release.String())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}
