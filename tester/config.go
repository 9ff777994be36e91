package tester

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// SeedRange is an inclusive range of generator seeds.
type SeedRange struct {
	From uint64 `mapstructure:"from"`
	To   uint64 `mapstructure:"to"`
}

// Len returns the number of seeds in the range.
func (r SeedRange) Len() int {
	if r.From > r.To {
		return 0
	}
	return int(r.To-r.From) + 1
}

// Config drives a Runner.
type Config struct {
	Command  []string      `mapstructure:"command"`
	Env      []string      `mapstructure:"env"`
	Seeds    SeedRange     `mapstructure:"seeds"`
	Workers  int           `mapstructure:"workers"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Database string        `mapstructure:"database"`
	LogLevel string        `mapstructure:"log_level"`
}

// maxSeeds bounds a single sweep.
const maxSeeds = 1 << 20

// DefaultConfig returns the values used for keys a config file omits.
func DefaultConfig() Config {
	return Config{
		Seeds:    SeedRange{From: 1, To: 10},
		Workers:  1,
		Timeout:  10 * time.Second,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return DecodeConfig(doc)
}

// DecodeConfig decodes a generic map on top of DefaultConfig.
// Durations may be strings ("10s"); a command or env given as one string
// is split on spaces. Unknown keys are rejected.
func DecodeConfig(doc map[string]any) (Config, error) {
	cfg := DefaultConfig()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(" "),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(doc); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Command = lo.Compact(cfg.Command)
	cfg.Env = lo.Compact(cfg.Env)
	return cfg, nil
}

// Validate checks the config before a run.
func (c Config) Validate() error {
	if len(c.Command) == 0 {
		return ErrNoCommand
	}
	if c.Seeds.From > c.Seeds.To || c.Seeds.To-c.Seeds.From >= maxSeeds {
		return fmt.Errorf("%w: %d..%d", ErrBadSeedRange, c.Seeds.From, c.Seeds.To)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrBadTimeout, c.Timeout)
	}
	return nil
}
