package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"onepage/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int                `toml:"version"`
	Scrolling  ScrollingSettings  `toml:"scrolling"`
	Navigation NavigationSettings `toml:"navigation"`
	Document   DocumentSettings   `toml:"document"`
	UISettings UISettings         `toml:"ui"`
}

// ScrollingSettings control the section-to-section animation
type ScrollingSettings struct {
	SpeedMS         int     `toml:"speed_ms" validate:"gte=0,lte=10000"`
	Easing          string  `toml:"easing" validate:"oneof=linear ease-out-cubic ease-in-out-quad ease-in-out-cubic"`
	FrameIntervalMS int     `toml:"frame_interval_ms" validate:"gte=1,lte=1000"`
	WheelStep       float64 `toml:"wheel_step" validate:"gt=0"`
}

// NavigationSettings control which inputs page the document and how far they must travel
type NavigationSettings struct {
	Anchors         []string `toml:"anchors" validate:"unique_anchors,dive,excludes=#"`
	LockAnchors     bool     `toml:"lock_anchors"`
	Keyboard        bool     `toml:"keyboard"`
	Touch           bool     `toml:"touch"`
	Wheel           bool     `toml:"wheel"`
	ScrollThreshold float64  `toml:"scroll_threshold" validate:"gte=0"`
	TouchThreshold  float64  `toml:"touch_threshold" validate:"gte=0"`
}

// DocumentSettings control how a file is split into sections
type DocumentSettings struct {
	MaxHeadingLevel int  `toml:"max_heading_level" validate:"min=1,max=6"`
	Breaks          bool `toml:"breaks"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Menu       string `toml:"menu"`
	ShowMenu   bool   `toml:"show_menu"`
	ShowStatus bool   `toml:"show_status"`
	StatePath  string `toml:"state_path"`
}

// ScrollingSpeed is the transition duration
func (c *Config) ScrollingSpeed() time.Duration {
	return time.Duration(c.Scrolling.SpeedMS) * time.Millisecond
}

// FrameInterval is the delay between animation frames
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Scrolling.FrameIntervalMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("unique_anchors", validateUniqueAnchors)
}

// validateUniqueAnchors rejects a name used for two sections. Empty entries
// leave a section without an anchor and may repeat.
func validateUniqueAnchors(fl validator.FieldLevel) bool {
	anchors, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	seen := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		if a == "" {
			continue
		}
		if seen[a] {
			return false
		}
		seen[a] = true
	}
	return true
}

// DefaultPath is $XDG_CONFIG_HOME/onepage/config.toml, or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "onepage", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects DefaultPath.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := Validate(config); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks value ranges and reports every offending field
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Scrolling: ScrollingSettings{
			SpeedMS:         1000,
			Easing:          "ease-in-out-cubic",
			FrameIntervalMS: 16,
			WheelStep:       25,
		},
		Navigation: NavigationSettings{
			Keyboard:        true,
			Touch:           true,
			Wheel:           true,
			ScrollThreshold: 50,
			TouchThreshold:  50,
		},
		Document: DocumentSettings{
			MaxHeadingLevel: 2,
			Breaks:          true,
		},
		UISettings: UISettings{
			Menu:       "sidebar",
			ShowMenu:   true,
			ShowStatus: true,
		},
	}
}
