// Package config loads the settings of the listdemo binary. Values come from
// defaults, then an optional TOML file, then LISTS_* environment variables;
// command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Invicton-Labs/go-lists/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogLevel             = "LISTS_LOG_LEVEL"
	EnvLogDevelopment       = "LISTS_LOG_DEV"
	EnvPrimes               = "LISTS_PRIMES"
	EnvJosephusParticipants = "LISTS_JOSEPHUS_PARTICIPANTS"
	EnvJosephusStep         = "LISTS_JOSEPHUS_STEP"
)

type Config struct {
	Log      LogConfig      `toml:"log"`
	Demo     DemoConfig     `toml:"demo"`
	Josephus JosephusConfig `toml:"josephus"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type DemoConfig struct {
	// Primes is how many primes the prime-list scenario appends.
	Primes int `toml:"primes"`
	// JSON switches the report to one JSON object per line.
	JSON bool `toml:"json"`
	// Memory adds heap statistics to the reclaim scenario.
	Memory bool `toml:"memory"`
	// ReclaimSize is how many elements the reclaim scenario appends
	// before draining the list again.
	ReclaimSize int `toml:"reclaim_size"`
}

type JosephusConfig struct {
	Participants int `toml:"participants"`
	Step         int `toml:"step"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Demo: DemoConfig{
			Primes:      10,
			ReclaimSize: 1 << 16,
		},
		Josephus: JosephusConfig{
			Participants: 68,
			Step:         7,
		},
	}
}

// Load builds a Config from the defaults, the TOML file at path on fs
// (skipped if path is empty) and the environment as seen through getenv
// (os.Getenv if nil). It does not validate the result.
func Load(fs afero.Fs, path string, getenv func(key string) string) (Config, stackerr.Error) {
	cfg := Default()
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return cfg, stackerr.Wrap(err).WithSingle("path", path)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, stackerr.Wrap(fmt.Errorf("parsing %s: %w", path, err)).WithSingle("path", path)
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, stackerr.Wrap(err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(key string) string) (err error) {
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvLogDevelopment); v != "" {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", EnvLogDevelopment, perr))
		} else {
			c.Log.Development = b
		}
	}
	for key, target := range map[string]*int{
		EnvPrimes:               &c.Demo.Primes,
		EnvJosephusParticipants: &c.Josephus.Participants,
		EnvJosephusStep:         &c.Josephus.Step,
	} {
		v := getenv(key)
		if v == "" {
			continue
		}
		n, perr := strconv.Atoi(v)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", key, perr))
			continue
		}
		*target = n
	}
	return err
}

// Validate reports every invalid setting at once.
func (c Config) Validate() stackerr.Error {
	var err error
	if _, perr := c.level(); perr != nil {
		err = multierr.Append(err, fmt.Errorf("log.level: %w", perr))
	}
	if c.Demo.Primes < 0 {
		err = multierr.Append(err, fmt.Errorf("demo.primes must not be negative, got %d", c.Demo.Primes))
	}
	if c.Demo.ReclaimSize < 0 {
		err = multierr.Append(err, fmt.Errorf("demo.reclaim_size must not be negative, got %d", c.Demo.ReclaimSize))
	}
	if c.Josephus.Participants < 1 {
		err = multierr.Append(err, fmt.Errorf("josephus.participants must be at least 1, got %d", c.Josephus.Participants))
	}
	if c.Josephus.Step < 1 {
		err = multierr.Append(err, fmt.Errorf("josephus.step must be at least 1, got %d", c.Josephus.Step))
	}
	if err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}

// LoggerInput converts the log section into the input for log.New.
func (c Config) LoggerInput() (log.NewInput, stackerr.Error) {
	level, err := c.level()
	if err != nil {
		return log.NewInput{}, stackerr.Wrap(err)
	}
	return log.NewInput{
		Name:          "listdemo",
		Level:         level,
		IsDevelopment: c.Log.Development,
	}, nil
}

func (c Config) level() (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(c.Log.Level))
	return level, err
}
