// Package inspector is a read-only terminal view over a registry.Registry,
// grounded on five82-flyer's internal/ui devtools: a Bubble Tea model polled
// on a timer, reading a snapshot of shared state rather than driving it.
package inspector

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config controls the inspector's refresh cadence and the display names
// shown for priority.Priority values. Theme is read from the config file and
// stored, but the view's styles do not depend on it.
type Config struct {
	RefreshInterval time.Duration
	Theme           string
	PriorityNames   map[int64]string
}

const (
	defaultConfigPath      = "~/.config/fiberqueue/queueview.toml"
	defaultRefreshInterval = 500 * time.Millisecond
	defaultTheme           = "plain"
)

// Load locates and parses the queueview config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{RefreshInterval: defaultRefreshInterval, Theme: defaultTheme}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		RefreshMillis int64             `toml:"refresh_millis"`
		Theme         string            `toml:"theme"`
		PriorityNames map[string]string `toml:"priority_names"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.RefreshMillis > 0 {
		cfg.RefreshInterval = time.Duration(raw.RefreshMillis) * time.Millisecond
	}

	cfg.Theme = strings.TrimSpace(raw.Theme)
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}

	if len(raw.PriorityNames) > 0 {
		cfg.PriorityNames = make(map[int64]string, len(raw.PriorityNames))
		for k, v := range raw.PriorityNames {
			var n int64
			if _, err := fmt.Sscanf(k, "%d", &n); err != nil {
				continue
			}
			cfg.PriorityNames[n] = v
		}
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
