package lvimg

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigFile is looked for in the working directory
	DefaultConfigFile = "lvimg.toml"

	DefaultInput  = "bongo_cat_images.c"
	DefaultOutput = "bongo_cat_images_inverted.c"
)

// Config holds the settings read from a TOML file.
type Config struct {
	Invert InvertConfig `toml:"invert"`
	Frames []Frame      `toml:"frame"`
}

// InvertConfig holds the palette inverter settings.
type InvertConfig struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
	Colors int    `toml:"colors"`
}

// DefaultConfig returns the settings used when there is no config file.
func DefaultConfig() *Config {
	return &Config{
		Invert: InvertConfig{
			Input:  DefaultInput,
			Output: DefaultOutput,
			Colors: DefaultColors,
		},
		Frames: append([]Frame(nil), DefaultFrames...),
	}
}

// ParseConfig decodes TOML from b on top of the defaults.
func ParseConfig(b []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Frames = nil

	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("lvimg: unknown config keys: %s", strings.Join(keys, ", "))
	}

	if len(cfg.Frames) == 0 {
		cfg.Frames = append(cfg.Frames, DefaultFrames...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads the TOML file at file.
func LoadConfig(file string) (*Config, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// Validate checks every frame can be generated and the inverter settings
// are usable.
func (c *Config) Validate() error {
	if c.Invert.Input == "" || c.Invert.Output == "" {
		return fmt.Errorf("lvimg: invert input and output must be set")
	}
	if err := ValidColors(c.Invert.Colors); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Frames))
	for _, f := range c.Frames {
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("lvimg: duplicate frame %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		if _, err := DotAsset(f); err != nil {
			return err
		}
	}
	return nil
}
