package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/constellation/internal/field"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS              = 60
	DefaultWidth            = 1280
	DefaultHeight           = 720
	DefaultMobileBreakpoint = 768
	DefaultResizeDebounce   = 250 * time.Millisecond
	DefaultDataDir          = ".constellation"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Field   field.Params `yaml:"field"`
	Seed    int64        `yaml:"seed"`
	FPS     int          `yaml:"fps"`
	DataDir string       `yaml:"data_dir"`
	Window  WindowConfig `yaml:"window"`
	Page    PageConfig   `yaml:"page"`
}

type WindowConfig struct {
	Width            int           `yaml:"width"`
	Height           int           `yaml:"height"`
	MobileBreakpoint int           `yaml:"mobile_breakpoint"` // field hidden at or below this width
	ResizeDebounce   time.Duration `yaml:"resize_debounce"`
}

// PageConfig holds the timings and thresholds of the page behaviours.
type PageConfig struct {
	LoadingInterval  time.Duration `yaml:"loading_interval"`
	LoadingMaxStep   float64       `yaml:"loading_max_step"`
	LoadingHold      time.Duration `yaml:"loading_hold"`
	TypewriterDelay  time.Duration `yaml:"typewriter_delay"`
	TypewriterSpeed  time.Duration `yaml:"typewriter_speed"`
	CounterDuration  time.Duration `yaml:"counter_duration"`
	SendingDuration  time.Duration `yaml:"sending_duration"`
	SentDuration     time.Duration `yaml:"sent_duration"`
	NavOffset        float64       `yaml:"nav_offset"`
	HeaderScrolledAt float64       `yaml:"header_scrolled_at"`
	BackToTopAt      float64       `yaml:"back_to_top_at"`
}

func DefaultPageConfig() PageConfig {
	return PageConfig{
		LoadingInterval:  200 * time.Millisecond,
		LoadingMaxStep:   15,
		LoadingHold:      500 * time.Millisecond,
		TypewriterDelay:  time.Second,
		TypewriterSpeed:  50 * time.Millisecond,
		CounterDuration:  2 * time.Second,
		SendingDuration:  1500 * time.Millisecond,
		SentDuration:     2 * time.Second,
		NavOffset:        100,
		HeaderScrolledAt: 50,
		BackToTopAt:      300,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Field:   field.DefaultParams(),
		FPS:     DefaultFPS,
		DataDir: DefaultDataDir,
		Window: WindowConfig{
			Width:            DefaultWidth,
			Height:           DefaultHeight,
			MobileBreakpoint: DefaultMobileBreakpoint,
			ResizeDebounce:   DefaultResizeDebounce,
		},
		Page: DefaultPageConfig(),
	}
}

// Load reads a YAML file on top of the defaults, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return nil
}

// FrameInterval is the tick period for the configured frame rate.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}
