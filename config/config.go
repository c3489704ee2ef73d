package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/microcosm/component"
	"github.com/lixenwraith/microcosm/parameter"
	"github.com/lixenwraith/microcosm/vmath"
)

//go:embed default.toml
var defaultScene []byte

// EnvPrefix namespaces environment overrides, e.g. MICROCOSM_WORLD_SEED
const EnvPrefix = "MICROCOSM"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved run configuration
type Config struct {
	World     WorldConfig     `mapstructure:"world"`
	Attractor AttractorConfig `mapstructure:"attractor"`
	Orbiters  []OrbiterConfig `mapstructure:"orbiters"`

	TickRate int  `mapstructure:"tickRate"`
	Debug    bool `mapstructure:"debug"`
	Headless bool `mapstructure:"headless"`
	Ticks    int  `mapstructure:"ticks"`
	Audio    bool `mapstructure:"audio"`
}

type WorldConfig struct {
	Width       float64 `mapstructure:"width"`
	Height      float64 `mapstructure:"height"`
	SpawnChance float64 `mapstructure:"spawnChance"`
	Seed        uint64  `mapstructure:"seed"` // 0 seeds from the clock
}

type AttractorConfig struct {
	Radius float64 `mapstructure:"radius"`
	Mass   float64 `mapstructure:"mass"`
	Color  string  `mapstructure:"color"`
}

// OrbiterConfig is one catalog row as written in a config file
type OrbiterConfig struct {
	Name         string  `mapstructure:"name"`
	SemiMajor    float64 `mapstructure:"semiMajor"`
	Eccentricity float64 `mapstructure:"eccentricity"`
	Color        string  `mapstructure:"color"`
	Radius       float64 `mapstructure:"radius"`
	Mass         float64 `mapstructure:"mass"`
	Rate         float64 `mapstructure:"rate"`
}

// SetDefaults registers every scalar key; the catalog comes from the embedded scene
func SetDefaults(v *viper.Viper) {
	v.SetDefault("world.width", parameter.DefaultWidth)
	v.SetDefault("world.height", parameter.DefaultHeight)
	v.SetDefault("world.spawnChance", parameter.SpawnChance)
	v.SetDefault("world.seed", 0)

	v.SetDefault("attractor.radius", 60)
	v.SetDefault("attractor.mass", 1000)
	v.SetDefault("attractor.color", "yellow")

	v.SetDefault("tickRate", parameter.TickRate)
	v.SetDefault("debug", false)
	v.SetDefault("headless", false)
	v.SetDefault("ticks", 3600)
	v.SetDefault("audio", true)
}

// Load resolves configuration into v: defaults, the embedded scene, then the optional
// file at path, then MICROCOSM_* environment variables
// Flags bound to v by the caller take precedence over all of these
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(defaultScene)); err != nil {
		return nil, fmt.Errorf("error reading embedded scene: %w", err)
	}

	if path != "" {
		// The embedded scene pinned the type; file formats follow the extension
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
			v.SetConfigType(ext)
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid field at once, each wrapping ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if !positive(c.World.Width) || !positive(c.World.Height) {
		fail("world size %vx%v must be positive", c.World.Width, c.World.Height)
	}
	if !finite(c.World.SpawnChance) || c.World.SpawnChance < 0 || c.World.SpawnChance > 1 {
		fail("world.spawnChance %v outside [0,1]", c.World.SpawnChance)
	}
	if c.TickRate <= 0 {
		fail("tickRate %d must be positive", c.TickRate)
	}
	if c.Ticks < 0 {
		fail("ticks %d must not be negative", c.Ticks)
	}

	if !positive(c.Attractor.Radius) {
		fail("attractor.radius %v must be positive", c.Attractor.Radius)
	}
	if !finite(c.Attractor.Mass) || c.Attractor.Mass < 0 {
		fail("attractor.mass %v must be a non-negative number", c.Attractor.Mass)
	}
	if _, err := ParseColor(c.Attractor.Color); err != nil {
		fail("attractor.color: %v", err)
	}

	seen := make(map[string]bool, len(c.Orbiters))
	for i, o := range c.Orbiters {
		at := fmt.Sprintf("orbiters[%d]", i)
		if o.Name == "" {
			fail("%s: empty name", at)
		} else if seen[o.Name] {
			fail("%s: duplicate name %q", at, o.Name)
		}
		seen[o.Name] = true

		if !finite(o.SemiMajor) || o.SemiMajor < 0 {
			fail("%s %s: semiMajor %v must be a non-negative number", at, o.Name, o.SemiMajor)
		}
		if !finite(o.Eccentricity) || o.Eccentricity < 0 || o.Eccentricity >= 1 {
			fail("%s %s: eccentricity %v outside [0,1)", at, o.Name, o.Eccentricity)
		}
		if !positive(o.Radius) {
			fail("%s %s: radius %v must be positive", at, o.Name, o.Radius)
		}
		if !finite(o.Mass) || o.Mass < 0 {
			fail("%s %s: mass %v must be a non-negative number", at, o.Name, o.Mass)
		}
		if !finite(o.Rate) {
			fail("%s %s: rate %v must be finite", at, o.Name, o.Rate)
		}
		if _, err := ParseColor(o.Color); err != nil {
			fail("%s %s: %v", at, o.Name, err)
		}
	}

	return errors.Join(errs...)
}

// Catalog converts the orbiter rows to component specs
func (c *Config) Catalog() ([]component.OrbiterSpec, error) {
	specs := make([]component.OrbiterSpec, 0, len(c.Orbiters))
	for _, o := range c.Orbiters {
		color, err := ParseColor(o.Color)
		if err != nil {
			return nil, fmt.Errorf("orbiter %s: %w", o.Name, err)
		}
		specs = append(specs, component.OrbiterSpec{
			Name:         o.Name,
			SemiMajor:    o.SemiMajor,
			Eccentricity: o.Eccentricity,
			Color:        color,
			Radius:       o.Radius,
			Mass:         o.Mass,
			Rate:         o.Rate,
		})
	}
	return specs, nil
}

// AttractorBody builds the attractor at the center of the world
func (c *Config) AttractorBody() (component.Attractor, error) {
	color, err := ParseColor(c.Attractor.Color)
	if err != nil {
		return component.Attractor{}, fmt.Errorf("attractor: %w", err)
	}
	return component.Attractor{
		Pos:    vmath.Vec2{X: c.World.Width / 2, Y: c.World.Height / 2},
		Radius: c.Attractor.Radius,
		Mass:   c.Attractor.Mass,
		Color:  color,
	}, nil
}

// TickInterval is the step period at TickRate
func (c *Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return parameter.TickInterval
	}
	return time.Second / time.Duration(c.TickRate)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func positive(f float64) bool {
	return finite(f) && f > 0
}
