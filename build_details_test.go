package googlemap

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	assert.True(t, v == "dev" || strings.HasPrefix(v, "v"), "got %s", v)
}

// Release builds stamp a short hex hash; source builds say "unknown".
func TestCommit(t *testing.T) {
	c := Commit()
	assert.NotEmpty(t, c)
	if c == "unknown" {
		return
	}
	assert.GreaterOrEqual(t, len(c), 7)
	for _, ch := range c {
		assert.True(t, (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f'), "got %s", c)
	}
}

func TestBuildTime(t *testing.T) {
	bt := BuildTime()
	assert.NotEmpty(t, bt)
	if bt != "unknown" {
		assert.Contains(t, bt, "T")
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()
	for _, want := range []string{"Version: " + Version(), "Commit: " + Commit(), "Build Time: " + BuildTime(), "Go Version: " + GoVersion()} {
		assert.Contains(t, info, want)
	}
	assert.Len(t, strings.Split(info, "\n"), 4)
}
