package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/ripcurl/internal/input/key"
)

// FileName is the name of the configuration file in the config directory.
const FileName = "config.toml"

// envPrefix prefixes environment overrides.
const envPrefix = "RIPCURL_"

// Config is the complete ripcurl configuration.
type Config struct {
	Browser   BrowserConfig     `toml:"browser"`
	Files     FilesConfig       `toml:"files"`
	Download  DownloadConfig    `toml:"download"`
	Engine    EngineConfig      `toml:"engine"`
	Style     StyleConfig       `toml:"style"`
	Shortcuts []ShortcutBinding `toml:"shortcuts"`

	// Dir is the config directory the file was loaded from.
	Dir string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Browser: BrowserConfig{
			HomePage: "https://duckduckgo.com",
			Dispatch: "all",
		},
		Files: FilesConfig{
			Bookmarks:  "bookmarks",
			History:    "history",
			InitScript: "init.lua",
			Log:        "ripcurl.log",
		},
		Download: DownloadConfig{
			Dir: "~/Downloads",
		},
		Engine: EngineConfig{
			Headless: true,
		},
		Style: StyleConfig{
			InputbarBG:  "#000000",
			InputbarFG:  "#9FBC00",
			StatusbarBG: "#151515",
			StatusbarFG: "#FFFFFF",
			ErrorFG:     "#FF1212",
			WarningFG:   "#FFF712",
		},
	}
}

// DefaultDir returns the config directory: $RIPCURL_CONFIG_DIR, or
// ripcurl under the user configuration directory.
func DefaultDir() (string, error) {
	if dir := os.Getenv(envPrefix + "CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(base, "ripcurl"), nil
}

// Load reads dir/config.toml over the defaults and applies environment
// overrides. An empty dir uses DefaultDir. A missing file is not an error.
func Load(dir string) (*Config, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cfg := Default()
	cfg.Dir = dir

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := cfg.parse(path, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse decodes TOML data over the current values.
func (c *Config) parse(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// applyEnv applies RIPCURL_* overrides.
func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"HOME_PAGE":    &c.Browser.HomePage,
		"USER_AGENT":   &c.Browser.UserAgent,
		"DISPATCH":     &c.Browser.Dispatch,
		"CHROME_PATH":  &c.Engine.ChromePath,
		"DOWNLOAD_DIR": &c.Download.Dir,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"PRIVATE":  &c.Browser.Private,
		"HEADLESS": &c.Engine.Headless,
	}
	for name, dst := range bools {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ValueError{Setting: envPrefix + name, Value: v, Reason: "expected a boolean"}
		}
		*dst = b
	}
	return nil
}

// Validate checks settings that have a fixed domain.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Browser.Dispatch) {
	case "", "all", "first":
	default:
		return &ValueError{Setting: "browser.dispatch", Value: c.Browser.Dispatch, Reason: `expected "all" or "first"`}
	}
	if c.Browser.HistoryLimit < 0 {
		return &ValueError{Setting: "browser.history_limit", Value: c.Browser.HistoryLimit, Reason: "must not be negative"}
	}
	for i, b := range c.Shortcuts {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("shortcuts[%d]: %w", i, err)
		}
		// Validate has parsed the keys already.
		c.Shortcuts[i].Keys, _ = key.NormalizeSpec(b.Keys)
	}
	return nil
}

// Path resolves a file name from the [files] section against Dir.
// Absolute names and names starting with ~ are used as given.
func (c *Config) Path(name string) string {
	if name == "" {
		return ""
	}
	name = ExpandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

// DownloadDir returns the expanded download directory.
func (c *Config) DownloadDir() string {
	return ExpandHome(c.Download.Dir)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
