package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	appName   = "colorletter"
	envPrefix = "COLORLETTER"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig     `mapstructure:"ui" toml:"ui"`
	Random RandomConfig `mapstructure:"random" toml:"random"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
	Keys   []KeyBinding `mapstructure:"keys" toml:"keys,omitempty"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialColor  string `mapstructure:"initial_color" toml:"initial_color"`
	InitialLetter string `mapstructure:"initial_letter" toml:"initial_letter"`
	AltScreen     bool   `mapstructure:"alt_screen" toml:"alt_screen"`
	Mouse         bool   `mapstructure:"mouse" toml:"mouse"`
}

// RandomConfig holds provider settings. Seed 0 means seed from crypto/rand.
type RandomConfig struct {
	Seed     uint64 `mapstructure:"seed" toml:"seed"`
	Palette  string `mapstructure:"palette" toml:"palette"`
	Alphabet string `mapstructure:"alphabet" toml:"alphabet"`
}

// LogConfig holds log file settings. An empty Path logs under the XDG state
// dir when the app starts; "-" disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path" toml:"path"`
	Level string `mapstructure:"level" toml:"level"`
}

// KeyBinding overrides the keys bound to one action.
type KeyBinding struct {
	Scope  string   `mapstructure:"scope" toml:"scope"`
	Action string   `mapstructure:"action" toml:"action"`
	Keys   []string `mapstructure:"keys" toml:"keys"`
}

// Default returns the configuration used when no file or env overrides are present.
func Default() Config {
	return Config{
		UI: UIConfig{
			InitialColor:  "#fff",
			InitialLetter: "start",
			AltScreen:     true,
			Mouse:         true,
		},
		Random: RandomConfig{
			Palette:  "happy",
			Alphabet: "abcdefghijklmnopqrstuvwxyz",
		},
		Log: LogConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ui.initial_color", d.UI.InitialColor)
	v.SetDefault("ui.initial_letter", d.UI.InitialLetter)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("random.seed", d.Random.Seed)
	v.SetDefault("random.palette", d.Random.Palette)
	v.SetDefault("random.alphabet", d.Random.Alphabet)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads configuration from defaults, file and env, in that order.
// Env var overrides use prefix COLORLETTER_. An empty path searches the user
// config dir and tolerates a missing file; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	normalize(&c)
	return c, nil
}

func normalize(c *Config) {
	d := Default()
	c.UI.InitialColor = strings.TrimSpace(c.UI.InitialColor)
	if c.UI.InitialColor == "" {
		c.UI.InitialColor = d.UI.InitialColor
	}
	if c.UI.InitialLetter == "" {
		c.UI.InitialLetter = d.UI.InitialLetter
	}
	c.Random.Palette = strings.ToLower(strings.TrimSpace(c.Random.Palette))
	if c.Random.Palette == "" {
		c.Random.Palette = d.Random.Palette
	}
	if strings.TrimSpace(c.Random.Alphabet) == "" {
		c.Random.Alphabet = d.Random.Alphabet
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	for i := range c.Keys {
		c.Keys[i].Scope = strings.TrimSpace(c.Keys[i].Scope)
		c.Keys[i].Action = strings.TrimSpace(c.Keys[i].Action)
	}
}

// Save writes the provided config to path, creating the directory if needed.
// An empty path writes to DefaultPath.
func Save(cfg Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.initial_color", cfg.UI.InitialColor)
	v.Set("ui.initial_letter", cfg.UI.InitialLetter)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("random.seed", cfg.Random.Seed)
	v.Set("random.palette", cfg.Random.Palette)
	v.Set("random.alphabet", cfg.Random.Alphabet)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	if len(cfg.Keys) > 0 {
		keys := make([]map[string]any, 0, len(cfg.Keys))
		for _, k := range cfg.Keys {
			keys = append(keys, map[string]any{
				"scope":  k.Scope,
				"action": k.Action,
				"keys":   k.Keys,
			})
		}
		v.Set("keys", keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Encode writes cfg to w as TOML.
func Encode(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// DefaultPath is the config file read when no explicit path is given.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}
