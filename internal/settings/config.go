package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// AnimationSpeed controls how fast animations play.
type AnimationSpeed string

const (
	SpeedSlow   AnimationSpeed = "slow"
	SpeedNormal AnimationSpeed = "normal"
	SpeedFast   AnimationSpeed = "fast"
	SpeedOff    AnimationSpeed = "off"
)

// Theme selects the color scheme.
type Theme string

const (
	ThemeMatrix Theme = "matrix"
	ThemeAmber  Theme = "amber"
	ThemeBlue   Theme = "blue"
	ThemeRed    Theme = "red"
)

// Difficulty names one of the preset board sizes and densities the menu
// offers. A custom game started from command-line flags bypasses this;
// Config itself stores no board size or density.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
	DifficultyInfinite     Difficulty = "infinite"
)

// PolicyName mirrors mineengine.Judge's string form for the settings
// file and menu, since the engine enum itself carries no JSON tags.
type PolicyName string

const (
	PolicyRandom       PolicyName = "random"
	PolicyStrict       PolicyName = "strict"
	PolicyKind         PolicyName = "kind"
	PolicyLocal        PolicyName = "local"
	PolicyGlobal       PolicyName = "global"
	PolicyKaboomGlobal PolicyName = "kaboom_global"
	PolicyKaboomLocal  PolicyName = "kaboom_local"
)

// Config stores user preferences persisted to disk.
type Config struct {
	AnimationSpeed AnimationSpeed `json:"animation_speed"`
	Theme          Theme          `json:"theme"`
	Difficulty     Difficulty     `json:"difficulty"`
	Policy         PolicyName     `json:"policy"`
	Solvable       bool           `json:"solvable"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		AnimationSpeed: SpeedNormal,
		Theme:          ThemeMatrix,
		Difficulty:     DifficultyBeginner,
		Policy:         PolicyKind,
		Solvable:       true,
	}
}

// Store manages settings persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads settings from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads settings from a specific path. If path is empty, uses
// ~/.mineoracle/settings.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			c := DefaultConfig()
			return &Store{Config: c}, errors.Wrap(err, "settings: resolve home directory")
		}
		path = filepath.Join(home, ".mineoracle", "settings.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrapf(err, "settings: read %s", path)
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, errors.Wrapf(err, "settings: decode %s", path)
	}
	s.normalize()
	return s, nil
}

// Save writes the settings to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "settings: create %s", dir)
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return errors.Wrap(err, "settings: encode config")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "settings: write %s", s.path)
	}
	return nil
}

// normalize ensures all config values are valid, falling back to defaults.
func (s *Store) normalize() {
	switch s.Config.AnimationSpeed {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedOff:
	default:
		s.Config.AnimationSpeed = SpeedNormal
	}
	switch s.Config.Theme {
	case ThemeMatrix, ThemeAmber, ThemeBlue, ThemeRed:
	default:
		s.Config.Theme = ThemeMatrix
	}
	switch s.Config.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert, DifficultyInfinite:
	default:
		s.Config.Difficulty = DifficultyBeginner
	}
	switch s.Config.Policy {
	case PolicyRandom, PolicyStrict, PolicyKind, PolicyLocal, PolicyGlobal, PolicyKaboomGlobal, PolicyKaboomLocal:
	default:
		s.Config.Policy = PolicyKind
	}
}

// BlinkInterval returns the splash blink duration based on animation speed.
func (c Config) BlinkInterval() int {
	switch c.AnimationSpeed {
	case SpeedSlow:
		return 800
	case SpeedNormal:
		return 500
	case SpeedFast:
		return 250
	case SpeedOff:
		return 0
	}
	return 500
}

// TransitionTickMs returns the transition frame interval in milliseconds.
func (c Config) TransitionTickMs() int {
	switch c.AnimationSpeed {
	case SpeedSlow:
		return 50
	case SpeedNormal:
		return 33
	case SpeedFast:
		return 16
	case SpeedOff:
		return 0
	}
	return 33
}

// SpawnRate returns the rain column spawn probability per frame.
func (c Config) SpawnRate() float64 {
	switch c.AnimationSpeed {
	case SpeedSlow:
		return 0.08
	case SpeedNormal:
		return 0.15
	case SpeedFast:
		return 0.25
	case SpeedOff:
		return 0.0
	}
	return 0.15
}

// BoardSize returns the centred finite size for a preset Difficulty, or
// (0, 0, false) for DifficultyInfinite.
func (d Difficulty) BoardSize() (width, height int32, bounded bool) {
	switch d {
	case DifficultyBeginner:
		return 9, 9, true
	case DifficultyIntermediate:
		return 16, 16, true
	case DifficultyExpert:
		return 30, 16, true
	default:
		return 0, 0, false
	}
}

// Density returns the preset mine probability for a Difficulty.
func (d Difficulty) Density() float32 {
	switch d {
	case DifficultyBeginner:
		return 0.12
	case DifficultyIntermediate:
		return 0.16
	case DifficultyExpert:
		return 0.21
	default:
		return 0.18
	}
}
