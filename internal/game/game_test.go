package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/slivercast/internal/gamedata"
	"github.com/samdwyer/slivercast/internal/input"
	"github.com/samdwyer/slivercast/internal/render"
)

func testConfig() Config {
	return Config{
		Seed:        7,
		MapWidth:    10,
		MapHeight:   10,
		WallDensity: 40,
		FOV:         60,
		HeightStep:  2,
		ProjectionK: 1.0,
		WalkSpeed:   0.25,
		TurnSpeed:   45,
		Strategy:    render.StrategyOutline,
		Order:       MoveThenCast,
		WallColor:   colorful.Color{R: 1, G: 1, B: 1},
		SkyColor:    colorful.Color{R: 0.2, G: 0.4, B: 0.8},
		Tick:        time.Millisecond,
	}
}

// snapshot copies the framebuffer's on/off state for frame comparison.
func snapshot(fb *render.Framebuffer) []bool {
	w, h := fb.Size()
	pixels := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixels[y*w+x] = fb.At(x, y)
		}
	}
	return pixels
}

func framesEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runTicks sets up a game on a fresh framebuffer and drives n ticks directly,
// bypassing the wall-clock pacer.
func runTicks(t *testing.T, cfg Config, n int, frames ...[]input.Control) *render.Framebuffer {
	t.Helper()

	fb := render.NewFramebuffer(64, 48)
	g := New(cfg, fb, input.NewScript(frames...))
	if err := g.setup(context.Background()); err != nil {
		t.Fatalf("setup: %v", err)
	}
	g.running = true
	for i := 0; i < n; i++ {
		if err := g.tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	return fb
}

func TestRunStopsOnQuitControl(t *testing.T) {
	cfg := testConfig()
	fb := render.NewFramebuffer(64, 48)
	script := input.NewScript(nil, []input.Control{input.Forward}, nil, []input.Control{input.Quit})

	g := New(cfg, fb, script)
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Three frames render; the quit tick stops before presenting.
	if fb.Presented != 3 {
		t.Errorf("Presented = %d, want 3", fb.Presented)
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	cfg := testConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	g := New(cfg, render.NewFramebuffer(64, 48), input.NewScript())
	err := g.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run = %v, want deadline exceeded", err)
	}
}

func TestSameSeedRendersIdenticalFrames(t *testing.T) {
	cfg := testConfig()

	a := runTicks(t, cfg, 1, nil)
	b := runTicks(t, cfg, 1, nil)
	if !framesEqual(snapshot(a), snapshot(b)) {
		t.Error("Identical seeds should render identical first frames")
	}

	cfg.Seed = 8
	c := runTicks(t, cfg, 1, nil)
	if framesEqual(snapshot(a), snapshot(c)) {
		t.Error("Different seeds should render different frames")
	}
}

func TestUpdateOrderControlsFrameLatency(t *testing.T) {
	turn := []input.Control{input.TurnRight}

	cfg := testConfig()
	reference := snapshot(runTicks(t, cfg, 1, nil))

	moveFirst := snapshot(runTicks(t, cfg, 1, turn))

	cfg.Order = CastThenMove
	castFirst := snapshot(runTicks(t, cfg, 1, turn))

	// Cast-first renders the pre-turn pose, so its frame matches a frame
	// with no input at all. Move-first shows the turn immediately.
	if !framesEqual(castFirst, reference) {
		t.Error("Cast-first frame should match the unturned reference frame")
	}
	if framesEqual(moveFirst, reference) {
		t.Error("Move-first frame should reflect the turn in the same tick")
	}
}

type countingCue struct {
	bumps int
}

func (c *countingCue) Bump() { c.bumps++ }

func TestRejectedMoveFiresCue(t *testing.T) {
	cfg := testConfig()
	cfg.WallDensity = 100
	cfg.WalkSpeed = 1.0 // long enough to leave the spawn cell

	fb := render.NewFramebuffer(64, 48)
	g := New(cfg, fb, input.NewScript([]input.Control{input.Forward}))
	cue := &countingCue{}
	g.SetCue(cue)

	if err := g.setup(context.Background()); err != nil {
		t.Fatalf("setup: %v", err)
	}

	x, y := g.pose.X, g.pose.Y
	if err := g.tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if cue.bumps != 1 {
		t.Errorf("bumps = %d, want 1", cue.bumps)
	}
	if g.pose.X != x || g.pose.Y != y {
		t.Error("Rejected move must leave the pose unchanged")
	}
}

func TestToggleMapOverlay(t *testing.T) {
	cfg := testConfig()
	cfg.WallDensity = 0

	// The overlay's border frame touches (0, 0); the wall band never does.
	on := runTicks(t, cfg, 1, []input.Control{input.ToggleMap})
	if !on.At(0, 0) {
		t.Error("Overlay border should light (0,0) after one toggle")
	}

	off := runTicks(t, cfg, 2,
		[]input.Control{input.ToggleMap},
		[]input.Control{input.ToggleMap},
	)
	if off.At(0, 0) {
		t.Error("Second toggle should remove the overlay")
	}
}

type resizableScript struct {
	*input.Script
	resized bool
}

func (r *resizableScript) TakeResized() bool {
	v := r.resized
	r.resized = false
	return v
}

type syncCountingSurface struct {
	*render.Framebuffer
	syncs int
}

func (s *syncCountingSurface) Sync() { s.syncs++ }

func TestResizeSyncsSurfaceAndRebuildsCaster(t *testing.T) {
	cfg := testConfig()
	surface := &syncCountingSurface{Framebuffer: render.NewFramebuffer(64, 48)}
	port := &resizableScript{Script: input.NewScript(nil, nil)}

	g := New(cfg, surface, port)
	if err := g.setup(context.Background()); err != nil {
		t.Fatalf("setup: %v", err)
	}
	before := g.caster

	port.resized = true
	if err := g.tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if surface.syncs != 1 {
		t.Errorf("syncs = %d, want 1", surface.syncs)
	}
	if g.caster == before {
		t.Error("Resize should rebuild the caster")
	}
}

func TestFromEnvUsesPresetAndOverrides(t *testing.T) {
	registry := gamedata.MustLoadPresetRegistry()
	def := registry.Default()

	cfg, err := FromEnv(registry)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.MapWidth != def.MapWidth || cfg.FOV != def.FOV || cfg.Slivers != def.Slivers {
		t.Error("Defaults should come from the registry's default preset")
	}
	if cfg.Order != MoveThenCast || cfg.Strategy != render.StrategyOutline {
		t.Error("Order and strategy defaults are fixed, not preset-driven")
	}

	t.Setenv("SLIVERCAST_SEED", "42")
	t.Setenv("SLIVERCAST_FOV", "75.5")
	t.Setenv("SLIVERCAST_UPDATE_ORDER", "cast-first")
	t.Setenv("SLIVERCAST_STRATEGY", "gradient")
	t.Setenv("SLIVERCAST_TICK_MS", "16")

	cfg, err = FromEnv(registry)
	if err != nil {
		t.Fatalf("FromEnv with overrides: %v", err)
	}
	if cfg.Seed != 42 || cfg.FOV != 75.5 {
		t.Errorf("Overrides not applied: seed=%d fov=%v", cfg.Seed, cfg.FOV)
	}
	if cfg.Order != CastThenMove || cfg.Strategy != render.StrategyGradient {
		t.Error("Enum overrides not applied")
	}
	if cfg.Tick != 16*time.Millisecond {
		t.Errorf("Tick = %v, want 16ms", cfg.Tick)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	registry := gamedata.MustLoadPresetRegistry()

	t.Setenv("SLIVERCAST_FOV", "wide")
	if _, err := FromEnv(registry); err == nil {
		t.Error("Malformed float override should fail")
	}
}

func TestFromEnvRejectsUnknownPreset(t *testing.T) {
	registry := gamedata.MustLoadPresetRegistry()

	t.Setenv("SLIVERCAST_PRESET", "no-such-level")
	if _, err := FromEnv(registry); err == nil {
		t.Error("Unknown preset name should fail")
	}
}
