package inspector

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(t, err)
	assert.Equal(t, defaultRefreshInterval, cfg.RefreshInterval)
	assert.Equal(t, defaultTheme, cfg.Theme)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queueview.toml")
	contents := "refresh_millis = 250\ntheme = \"dracula\"\n\n[priority_names]\n1 = \"sync\"\n2 = \"urgent\"\n"
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.RefreshInterval)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, "sync", cfg.PriorityLabel(1))
	assert.Equal(t, "urgent", cfg.PriorityLabel(2))
	assert.Equal(t, "3", cfg.PriorityLabel(3))
}
