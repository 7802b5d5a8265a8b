package game

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/spaceinvaders.yaml
var defaultConfigYAML []byte

// LocalConfigPath is checked when no explicit config path is given
const LocalConfigPath = "configs/spaceinvaders.yaml"

// EmbeddedConfigSource names the built-in configuration in log output
const EmbeddedConfigSource = "embedded default"

// SpriteRect locates one sprite inside the unscaled sprite sheet
type SpriteRect struct {
	X, Y          int
	Width, Height int
}

// Rect converts the sprite rectangle to float geometry
func (s SpriteRect) Rect() Rect {
	return Rect{X: float64(s.X), Y: float64(s.Y), Width: float64(s.Width), Height: float64(s.Height)}
}

// Config holds every tunable read at startup
type Config struct {
	// BaseWidth and BaseHeight are the window cell size before scaling
	BaseWidth  int
	BaseHeight int

	// Factor multiplies the base size to get the window size
	Factor int

	// FPS caps the frame rate
	FPS int

	// Speed is how far the ship moves per frame, in pixels
	Speed int

	// LaserSpeed is how far a projectile moves per frame, in pixels
	LaserSpeed int

	// Sprite locations in the unscaled sheet
	Player   SpriteRect
	Laser    SpriteRect
	Obstacle SpriteRect
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded config is invalid: %v", err))
	}
	return cfg
}

// WindowWidth returns the window width in pixels
func (c Config) WindowWidth() int {
	return c.BaseWidth * c.Factor
}

// WindowHeight returns the window height in pixels
func (c Config) WindowHeight() int {
	return c.BaseHeight * c.Factor
}

// SheetTargetSize returns the size the sprite sheet is scaled to at load time
func (c Config) SheetTargetSize() (int, int) {
	return (c.Factor - 1) * c.BaseWidth, (c.Factor - 1) * c.BaseHeight
}

// LoadConfig reads the configuration.
// Search order: path -> ./configs/spaceinvaders.yaml -> embedded default.
// An explicit path must exist. Returns the config and where it came from.
func LoadConfig(path string) (Config, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, path, &ResourceError{Path: path, Err: err}
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			return Config{}, path, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, path, nil
	}

	data, err := os.ReadFile(LocalConfigPath)
	switch {
	case err == nil:
		cfg, err := ParseConfig(data)
		if err != nil {
			return Config{}, LocalConfigPath, fmt.Errorf("%s: %w", LocalConfigPath, err)
		}
		return cfg, LocalConfigPath, nil
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, LocalConfigPath, &ResourceError{Path: LocalConfigPath, Err: err}
	}

	cfg, err := ParseConfig(defaultConfigYAML)
	return cfg, EmbeddedConfigSource, err
}

// configKey binds one YAML key to the field it fills
type configKey struct {
	section  string
	key      string
	dst      *int
	optional bool
}

// ParseConfig decodes YAML configuration data.
// Every required key must be present and hold an integer.
func ParseConfig(data []byte) (Config, error) {
	var doc map[string]map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, &ConfigError{Reason: fmt.Sprintf("malformed YAML: %v", err)}
	}

	cfg := Config{FPS: 60}
	keys := []configKey{
		{"parameters", "BASE_WIDTH", &cfg.BaseWidth, false},
		{"parameters", "BASE_HEIGHT", &cfg.BaseHeight, false},
		{"parameters", "FACTOR", &cfg.Factor, false},
		{"parameters", "FPS", &cfg.FPS, true},
		{"player", "SPEED", &cfg.Speed, false},
		{"player", "LASER_SPEED", &cfg.LaserSpeed, true},
		{"player", "PLAYER_X", &cfg.Player.X, false},
		{"player", "PLAYER_Y", &cfg.Player.Y, false},
		{"player", "PLAYER_WIDTH", &cfg.Player.Width, false},
		{"player", "PLAYER_HEIGHT", &cfg.Player.Height, false},
		{"player", "LASER_X", &cfg.Laser.X, false},
		{"player", "LASER_Y", &cfg.Laser.Y, false},
		{"player", "LASER_WIDTH", &cfg.Laser.Width, false},
		{"player", "LASER_HEIGHT", &cfg.Laser.Height, false},
		{"obstacles", "OBS_X", &cfg.Obstacle.X, false},
		{"obstacles", "OBS_Y", &cfg.Obstacle.Y, false},
		{"obstacles", "OBS_WIDTH", &cfg.Obstacle.Width, false},
		{"obstacles", "OBS_HEIGHT", &cfg.Obstacle.Height, false},
	}

	for _, k := range keys {
		node, ok := doc[k.section][k.key]
		if !ok {
			if k.optional {
				continue
			}
			return Config{}, &ConfigError{Section: k.section, Key: k.key, Reason: "missing"}
		}
		var v int
		if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
			return Config{}, &ConfigError{Section: k.section, Key: k.key, Reason: fmt.Sprintf("not an integer: %q", node.Value)}
		}
		if err := node.Decode(&v); err != nil {
			return Config{}, &ConfigError{Section: k.section, Key: k.key, Reason: fmt.Sprintf("not an integer: %q", node.Value)}
		}
		*k.dst = v
	}

	// Projectiles move at ship speed unless told otherwise
	if _, ok := doc["player"]["LASER_SPEED"]; !ok {
		cfg.LaserSpeed = cfg.Speed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	positive := []struct {
		section, key string
		v            int
	}{
		{"parameters", "BASE_WIDTH", c.BaseWidth},
		{"parameters", "BASE_HEIGHT", c.BaseHeight},
		{"parameters", "FACTOR", c.Factor},
		{"parameters", "FPS", c.FPS},
		{"player", "SPEED", c.Speed},
		{"player", "LASER_SPEED", c.LaserSpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return &ConfigError{Section: p.section, Key: p.key, Reason: fmt.Sprintf("must be positive, got %d", p.v)}
		}
	}

	sizes := []struct {
		section, key string
		v            int
	}{
		{"player", "PLAYER_WIDTH", c.Player.Width},
		{"player", "PLAYER_HEIGHT", c.Player.Height},
		{"player", "LASER_WIDTH", c.Laser.Width},
		{"player", "LASER_HEIGHT", c.Laser.Height},
		{"obstacles", "OBS_WIDTH", c.Obstacle.Width},
		{"obstacles", "OBS_HEIGHT", c.Obstacle.Height},
	}
	for _, s := range sizes {
		if s.v < 0 {
			return &ConfigError{Section: s.section, Key: s.key, Reason: fmt.Sprintf("must not be negative, got %d", s.v)}
		}
	}
	return nil
}
