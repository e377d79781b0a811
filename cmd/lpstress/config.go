package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config drives one stress run.
type Config struct {
	// Seed of the operation stream. The same seed replays the same run.
	Seed uint64 `toml:"seed"`
	// Steps is the number of operations to run.
	Steps int `toml:"steps"`
	// KeySpace bounds keys to [0, KeySpace). Small values force collisions
	// and frequent erase of present keys.
	KeySpace int `toml:"key-space"`
	// Hasher is one of "default", "identity" or "collide".
	Hasher string `toml:"hasher"`
	// VerifyEvery is the number of steps between full comparisons against
	// the reference map. Every step is still checked individually.
	VerifyEvery int `toml:"verify-every"`

	Mix Mix       `toml:"mix"`
	Log LogConfig `toml:"log"`
}

// Mix gives the relative weight of each operation.
type Mix struct {
	Insert int `toml:"insert"`
	Erase  int `toml:"erase"`
	Index  int `toml:"index"`
	At     int `toml:"at"`
	Find   int `toml:"find"`
	Clear  int `toml:"clear"`
}

func (m Mix) total() int {
	return m.Insert + m.Erase + m.Index + m.At + m.Find + m.Clear
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Seed:        1,
		Steps:       100000,
		KeySpace:    4096,
		Hasher:      "default",
		VerifyEvery: 10000,
		Mix: Mix{
			Insert: 40,
			Erase:  30,
			Index:  12,
			At:     10,
			Find:   7,
			Clear:  1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration describes a runnable workload.
func (c *Config) Validate() error {
	var errs []error
	if c.Steps <= 0 {
		errs = append(errs, fmt.Errorf("steps must be positive, got %d", c.Steps))
	}
	if c.KeySpace <= 0 {
		errs = append(errs, fmt.Errorf("key-space must be positive, got %d", c.KeySpace))
	}
	if c.VerifyEvery <= 0 {
		errs = append(errs, fmt.Errorf("verify-every must be positive, got %d", c.VerifyEvery))
	}
	if _, ok := hashers[c.Hasher]; !ok {
		errs = append(errs, fmt.Errorf("unknown hasher %q", c.Hasher))
	}
	m := c.Mix
	if m.Insert < 0 || m.Erase < 0 || m.Index < 0 || m.At < 0 || m.Find < 0 || m.Clear < 0 {
		errs = append(errs, errors.New("mix weights must not be negative"))
	} else if m.total() == 0 {
		errs = append(errs, errors.New("mix weights must not all be zero"))
	}
	return errors.Join(errs...)
}
