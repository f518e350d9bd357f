package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI preferences read from an optional TOML file.
type Config struct {
	Color         bool   `toml:"color"`
	DefaultStatus string `toml:"default_status"`
	DefaultSort   string `toml:"default_sort"`
}

func DefaultConfig() Config {
	return Config{
		Color:         true,
		DefaultStatus: "all",
		DefaultSort:   "created",
	}
}

// DefaultConfigPath is ~/.config/todo/config.toml, or "" when the home
// directory cannot be resolved.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo", "config.toml")
}

// LoadConfig reads path over the defaults. A missing file is only an error
// when required is set, i.e. the user named it explicitly.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return DefaultConfig(), fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
