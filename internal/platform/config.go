package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/notebox/pkg/store"
)

// Environment variables that override the config file.
const (
	EnvSaveFile = "NOTEBOX_SAVE_FILE"
	EnvPrompt   = "NOTEBOX_PROMPT"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the on-disk configuration (notebox.yaml).
// A nil Banner means the greeting is shown only on a terminal.
type Config struct {
	SaveFile   string `yaml:"save_file,omitempty"`
	Prompt     string `yaml:"prompt,omitempty"`
	DateFormat string `yaml:"date_format,omitempty"`
	Banner     *bool  `yaml:"banner,omitempty"`
	Color      string `yaml:"color,omitempty"`
}

// ConfigFileName returns "<executable base name>.yaml".
func ConfigFileName() string {
	exe, err := os.Executable()
	if err != nil {
		exe = ""
	}
	return store.BaseName(exe) + ".yaml"
}

// ConfigPath picks the config file to read. An explicit path always wins;
// otherwise the default file name is searched from startDir upwards.
// An empty result means there is nothing to read.
func ConfigPath(explicit, startDir string) string {
	if explicit != "" {
		return explicit
	}
	path, err := FindConfig(startDir, ConfigFileName())
	if err != nil {
		return ""
	}
	return filepath.Clean(path)
}

// LoadConfig reads a YAML config file. A missing file yields an empty Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment overrides read through getenv.
func (c Config) ApplyEnv(getenv func(string) string) Config {
	if v := getenv(EnvSaveFile); v != "" {
		c.SaveFile = v
	}
	if v := getenv(EnvPrompt); v != "" {
		c.Prompt = v
	}
	return c
}

// colorEnabled resolves the colour mode against whether output is a terminal.
func (c Config) colorEnabled(outIsTerminal bool) bool {
	switch strings.ToLower(c.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return outIsTerminal
	}
}

// bannerEnabled resolves the banner setting against whether input is a terminal.
func (c Config) bannerEnabled(inIsTerminal bool) bool {
	if c.Banner != nil {
		return *c.Banner
	}
	return inIsTerminal
}
