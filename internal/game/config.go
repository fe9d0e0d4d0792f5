package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/slivercast/internal/gamedata"
	"github.com/samdwyer/slivercast/internal/render"
)

// Config holds all tunables for one run. Values come from a level preset,
// individually overridable through SLIVERCAST_* environment variables.
type Config struct {
	// Seed for map and texture generation. 0 means derive from the clock.
	Seed int64

	MapWidth    int
	MapHeight   int
	WallDensity int // percent

	FOV     float64 // degrees
	Slivers int     // columns per frame; 0 means one per pixel column

	HeightStep  int     // scan decrement in pixels
	ProjectionK float64 // wall height <-> radius constant

	WalkSpeed float64 // map units per step input
	TurnSpeed float64 // degrees per turn input

	Strategy render.Strategy
	Order    UpdateOrder

	WallColor colorful.Color
	SkyColor  colorful.Color

	Audio bool
	Tick  time.Duration
}

// Movement and pacing defaults. Speeds are per control input, tuned for the
// default tick rate.
const (
	defaultWalkSpeed  = 0.15
	defaultTurnSpeed  = 4.0
	defaultHeightStep = 2
	defaultTick       = 33 * time.Millisecond
)

// FromEnv builds a Config from the preset named by SLIVERCAST_PRESET (or the
// registry default) plus any individual overrides. Unknown preset names and
// malformed values are errors: a half-applied config is worse than a refusal
// to start.
func FromEnv(registry *gamedata.PresetRegistry) (Config, error) {
	preset := registry.Default()
	if name := os.Getenv("SLIVERCAST_PRESET"); name != "" {
		preset = registry.GetByID(name)
		if preset == nil {
			return Config{}, fmt.Errorf("unknown preset %q", name)
		}
	}

	cfg := Config{
		MapWidth:    preset.MapWidth,
		MapHeight:   preset.MapHeight,
		WallDensity: preset.WallDensity,
		FOV:         preset.FOV,
		Slivers:     preset.Slivers,
		HeightStep:  defaultHeightStep,
		ProjectionK: 1.0,
		WalkSpeed:   defaultWalkSpeed,
		TurnSpeed:   defaultTurnSpeed,
		Strategy:    render.StrategyOutline,
		Order:       MoveThenCast,
		Tick:        defaultTick,
	}

	var err error
	if cfg.WallColor, err = gamedata.ParseHexColor(preset.WallColor); err != nil {
		return Config{}, err
	}
	if cfg.SkyColor, err = gamedata.ParseHexColor(preset.SkyColor); err != nil {
		return Config{}, err
	}

	if err := cfg.applyOverrides(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyOverrides reads the individual SLIVERCAST_* variables on top of the
// preset values.
func (c *Config) applyOverrides() error {
	if err := envInt64("SLIVERCAST_SEED", &c.Seed); err != nil {
		return err
	}
	if err := envInt("SLIVERCAST_MAP_WIDTH", &c.MapWidth); err != nil {
		return err
	}
	if err := envInt("SLIVERCAST_MAP_HEIGHT", &c.MapHeight); err != nil {
		return err
	}
	if err := envInt("SLIVERCAST_DENSITY", &c.WallDensity); err != nil {
		return err
	}
	if err := envFloat("SLIVERCAST_FOV", &c.FOV); err != nil {
		return err
	}
	if err := envInt("SLIVERCAST_SLIVERS", &c.Slivers); err != nil {
		return err
	}
	if err := envInt("SLIVERCAST_HEIGHT_STEP", &c.HeightStep); err != nil {
		return err
	}
	if err := envFloat("SLIVERCAST_PROJECTION_K", &c.ProjectionK); err != nil {
		return err
	}
	if err := envFloat("SLIVERCAST_WALK_SPEED", &c.WalkSpeed); err != nil {
		return err
	}
	if err := envFloat("SLIVERCAST_TURN_SPEED", &c.TurnSpeed); err != nil {
		return err
	}

	if v := os.Getenv("SLIVERCAST_STRATEGY"); v != "" {
		strategy, err := render.ParseStrategy(v)
		if err != nil {
			return err
		}
		c.Strategy = strategy
	}
	if v := os.Getenv("SLIVERCAST_UPDATE_ORDER"); v != "" {
		order, err := ParseUpdateOrder(v)
		if err != nil {
			return err
		}
		c.Order = order
	}
	if v := os.Getenv("SLIVERCAST_WALL_COLOR"); v != "" {
		color, err := gamedata.ParseHexColor(v)
		if err != nil {
			return err
		}
		c.WallColor = color
	}
	if v := os.Getenv("SLIVERCAST_SKY_COLOR"); v != "" {
		color, err := gamedata.ParseHexColor(v)
		if err != nil {
			return err
		}
		c.SkyColor = color
	}
	if v := os.Getenv("SLIVERCAST_AUDIO"); v != "" {
		audio, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SLIVERCAST_AUDIO %q: %w", v, err)
		}
		c.Audio = audio
	}

	var tickMs int
	if err := envInt("SLIVERCAST_TICK_MS", &tickMs); err != nil {
		return err
	}
	if tickMs > 0 {
		c.Tick = time.Duration(tickMs) * time.Millisecond
	}

	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func envInt64(key string, dst *int64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = f
	return nil
}
