// Package config holds the emulator configuration, stored as TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
)

// DefaultFrameCycleLimit is the number of T-cycles in a single
// frame, 154 lines of 456 cycles.
const DefaultFrameCycleLimit = 70224

// ErrInvalidConfig is returned when a configuration decodes, but
// holds values that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Log       LogConfig       `toml:"log"`
	Video     VideoConfig     `toml:"video"`
	Emulation EmulationConfig `toml:"emulation"`
}

type LogConfig struct {
	// Level is any level understood by logrus, such as "debug".
	Level string `toml:"level"`
}

type VideoConfig struct {
	// Palette names the palette used for screenshots.
	Palette string `toml:"palette"`
	// Scale is the integer scale factor of screenshots.
	Scale int `toml:"scale"`
}

type EmulationConfig struct {
	// StrictHeader rejects cartridges with a bad header checksum.
	StrictHeader bool `toml:"strict_header"`
	// FrameCycleLimit bounds the cycles run by a single frame,
	// for when the display is off and V-Blank never comes.
	FrameCycleLimit int `toml:"frame_cycle_limit"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Video: VideoConfig{
			Palette: palette.Greyscale,
			Scale:   1,
		},
		Emulation: EmulationConfig{
			FrameCycleLimit: DefaultFrameCycleLimit,
		},
	}
}

// Load decodes the configuration file at path. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
	}
	return cfg, check(md, cfg)
}

// Decode decodes the configuration from a TOML document. Keys
// missing from the document keep their default values.
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	return cfg, check(md, cfg)
}

// Encode writes the configuration to w as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func check(md toml.MetaData, cfg Config) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate reports the first value of c that cannot be used.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, ok := palette.ByName(c.Video.Palette); !ok {
		return fmt.Errorf("%w: unknown palette %q, expected one of %s", ErrInvalidConfig, c.Video.Palette, strings.Join(palette.Names(), ", "))
	}
	if c.Video.Scale < 1 {
		return fmt.Errorf("%w: scale must be at least 1, got %d", ErrInvalidConfig, c.Video.Scale)
	}
	if c.Emulation.FrameCycleLimit <= 0 {
		return fmt.Errorf("%w: frame_cycle_limit must be positive, got %d", ErrInvalidConfig, c.Emulation.FrameCycleLimit)
	}
	return nil
}
