package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	yaml "go.yaml.in/yaml/v3"

	"github.com/ha1tch/seekplot/pkg/render"
)

// Config holds the defaults every command starts from. Command-line flags
// override whatever is set here.
type Config struct {
	Schedule ScheduleConfig `yaml:"schedule"`
	Replay   ReplayConfig   `yaml:"replay"`
	Chart    ChartConfig    `yaml:"chart"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScheduleConfig mirrors the input form: values stay as text until the input
// layer parses and validates them.
type ScheduleConfig struct {
	Algorithm string `yaml:"algorithm"`
	Requests  string `yaml:"requests"`
	Head      int    `yaml:"head"`
	DiskSize  int    `yaml:"disk_size"`
	Direction string `yaml:"direction"`
}

type ReplayConfig struct {
	Speed string `yaml:"speed"`
}

type ChartConfig struct {
	Width int `yaml:"width"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	DefaultSpeed = render.DefaultSpeed
	DefaultWidth = 60
	minWidth     = 10
)

// Default returns the built-in configuration: the textbook request queue on a
// 200 track disk.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			Algorithm: "FCFS",
			Requests:  "98, 183, 37, 122, 14, 124, 65, 67",
			Head:      53,
			DiskSize:  200,
			Direction: "left",
		},
		Replay:  ReplayConfig{Speed: DefaultSpeed.String()},
		Chart:   ChartConfig{Width: DefaultWidth},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}

// Validate checks the fields the input layer does not.
func (c *Config) Validate() error {
	if _, err := c.ReplaySpeed(); err != nil {
		return err
	}
	if c.Chart.Width < minWidth {
		return fmt.Errorf("chart.width: must be at least %d, got %d", minWidth, c.Chart.Width)
	}
	return nil
}

// ReplaySpeed parses replay.speed, using DefaultSpeed when it is unset.
func (c *Config) ReplaySpeed() (time.Duration, error) {
	return ParseDurationOrDefault("replay.speed", c.Replay.Speed, DefaultSpeed)
}

func ParseDurationOrDefault(path, raw string, def time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: duration must be > 0", path)
	}
	return d, nil
}
