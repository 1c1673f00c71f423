package sheet

import (
	stderrors "errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sheet/pkg/errors"
)

// ConfigFileName is the file LoadConfigOptional looks for.
const ConfigFileName = "sheet.yaml"

// ConfigVersion is the schema version written by DefaultConfig. Any v1.x.y
// version is accepted.
const ConfigVersion = "v1.0.0"

// Config is the YAML form of a sheet's settings.
type Config struct {
	Version           string        `yaml:"version,omitempty"`
	MinimizedHeight   float64       `yaml:"minimized_height,omitempty"`
	MaximizedHeight   float64       `yaml:"maximized_height,omitempty"`
	TriggerVelocity   float64       `yaml:"trigger_velocity,omitempty"`
	TriggerDistance   float64       `yaml:"trigger_distance,omitempty"`
	AnimationDuration time.Duration `yaml:"animation_duration,omitempty"`
	InitialState      DisplayState  `yaml:"initial_state"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Version:           ConfigVersion,
		MinimizedHeight:   DefaultMinimizedHeight,
		MaximizedHeight:   DefaultMaximizedHeight,
		TriggerVelocity:   DefaultTriggerVelocity,
		TriggerDistance:   DefaultTriggerDistance,
		AnimationDuration: DefaultAnimationDuration,
		InitialState:      Minimized,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so absent fields keep
// their defaults. Fields written out, zero included, are kept as written:
// trigger_distance: 0 snaps on direction alone and animation_duration: 0
// jumps without animating.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &errors.SheetError{Op: "sheet.ParseConfig", Kind: errors.KindConfig, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &errors.SheetError{Op: "sheet.ParseConfig", Kind: errors.KindConfig, Err: err}
	}
	if cfg.MinimizedHeight > cfg.MaximizedHeight {
		log.Printf("WARNING: sheet minimized_height %.0f exceeds maximized_height %.0f; "+
			"the sheet will not move between states", cfg.MinimizedHeight, cfg.MaximizedHeight)
	}
	return cfg, nil
}

// Validate checks the schema version. Numeric fields are not rejected;
// the controller clamps them.
func (c Config) Validate() error {
	v := c.Version
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid config version %q", v)
	}
	if major := semver.Major(v); major != semver.Major(ConfigVersion) {
		return fmt.Errorf("unsupported config version %s (want %s.x.y)", v, semver.Major(ConfigVersion))
	}
	return nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &errors.SheetError{Op: "sheet.LoadConfig", Kind: errors.KindConfig, Path: path, Err: err}
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		var se *errors.SheetError
		if stderrors.As(err, &se) {
			se.Op = "sheet.LoadConfig"
			se.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigOptional reads sheet.yaml from dir if present and returns
// DefaultConfig otherwise.
func LoadConfigOptional(dir string) (Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Options converts the config into controller options. The animation
// duration applies to the default animator only.
func (c Config) Options() []Option {
	return []Option{
		WithHeights(c.MinimizedHeight, c.MaximizedHeight),
		WithTriggerVelocity(c.TriggerVelocity),
		WithTriggerDistance(c.TriggerDistance),
		WithAnimationDuration(c.AnimationDuration),
		WithInitialState(c.InitialState),
	}
}

// UnmarshalYAML accepts the names understood by UnmarshalText.
func (s *DisplayState) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: display state must be a scalar", value.Line)
	}
	if value.Value == "" {
		*s = Minimized
		return nil
	}
	return s.UnmarshalText([]byte(value.Value))
}

// MarshalYAML writes the state by name.
func (s DisplayState) MarshalYAML() (any, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}
