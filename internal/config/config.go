package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/tally/internal/counter"
)

// Config captures the settings tally reads from its TOML file.
type Config struct {
	Counter counter.Options
	LogPath string
	Debug   bool
}

const (
	defaultConfigPath = "~/.config/tally/config.toml"
	defaultLogPath    = "~/.local/state/tally/tally.log"
)

// Load locates and parses the tally config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{LogPath: DefaultLogPath()}

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
		LogFile string          `toml:"log_file"`
		Debug   bool            `toml:"debug"`
		Counter counter.Options `toml:"counter"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogPath = mustExpand(logFile)
	}
	cfg.Debug = raw.Debug
	cfg.Counter = raw.Counter
	cfg.Counter.Type = strings.TrimSpace(cfg.Counter.Type)

	if _, err := counter.ParseStyle(cfg.Counter.Type); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// DefaultLogPath returns the expanded default log file location.
func DefaultLogPath() string {
	return mustExpand(defaultLogPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
