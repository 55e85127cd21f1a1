package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mikanfactory/changed/internal/model"
)

// DefaultUntrackedFiles is passed to `git status --untracked-files` when unset.
const DefaultUntrackedFiles = "all"

var untrackedModes = map[string]bool{
	"all":    true,
	"normal": true,
	"no":     true,
}

// homeDir is a testable function variable for os.UserHomeDir.
var homeDir = os.UserHomeDir

// Default returns the configuration used when no config file exists.
func Default() model.Config {
	return model.Config{UntrackedFiles: DefaultUntrackedFiles}
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg model.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.UntrackedFiles == "" {
		cfg.UntrackedFiles = DefaultUntrackedFiles
	}
	if !untrackedModes[cfg.UntrackedFiles] {
		return model.Config{}, fmt.Errorf("untracked_files: invalid value %q (want all, normal or no)", cfg.UntrackedFiles)
	}

	if cfg.GitTimeout != nil && *cfg.GitTimeout < 0 {
		return model.Config{}, fmt.Errorf("git_timeout must not be negative, got %s", *cfg.GitTimeout)
	}

	for i, folder := range cfg.WorkspaceFolders {
		expanded, err := ExpandHome(folder)
		if err != nil {
			return model.Config{}, err
		}
		cfg.WorkspaceFolders[i] = expanded
	}

	if cfg.DebugLog != "" {
		expanded, err := ExpandHome(cfg.DebugLog)
		if err != nil {
			return model.Config{}, err
		}
		cfg.DebugLog = expanded
	}

	return cfg, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("expanding home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// DefaultPath returns ~/.config/changed/config.yaml.
func DefaultPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "changed", "config.yaml"), nil
}

// ResolveConfigPath determines the config file path from flag or default location.
// An empty result with a nil error means no config file is present.
func ResolveConfigPath(flagPath string) (string, error) {
	if flagPath != "" {
		expanded, err := ExpandHome(flagPath)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(expanded); err != nil {
			return "", fmt.Errorf("config file not found: %s", flagPath)
		}
		return expanded, nil
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(defaultPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("checking config at %s: %w", defaultPath, err)
	}

	return defaultPath, nil
}

// Load resolves the config path and loads the config, falling back to defaults
// when no file exists at the default location.
func Load(flagPath string) (model.Config, error) {
	path, err := ResolveConfigPath(flagPath)
	if err != nil {
		return model.Config{}, err
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFromFile(path)
}
