package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/slivercast/internal/entity"
	"github.com/samdwyer/slivercast/internal/input"
	"github.com/samdwyer/slivercast/internal/raycast"
	"github.com/samdwyer/slivercast/internal/render"
	"github.com/samdwyer/slivercast/internal/telemetry"
	"github.com/samdwyer/slivercast/internal/world"
)

// textSurface is implemented by surfaces that can overlay text rows, used for
// the fps readout. Coordinates are terminal cells, not pixels.
type textSurface interface {
	DrawText(col, row int, msg string)
}

// syncSurface is implemented by surfaces whose backing device can change size.
type syncSurface interface {
	Sync()
}

// resizePort is implemented by input ports that observe resize events.
type resizePort interface {
	TakeResized() bool
}

// Game owns the frame loop: one goroutine polls input, advances the pose,
// casts and draws, then presents. All state lives on that goroutine; nothing
// here is safe for concurrent use.
type Game struct {
	cfg     Config
	surface render.Surface
	port    input.Port
	cue     entity.Cue

	grid     *world.Grid
	textures *world.TextureBank
	pose     *entity.Pose
	mover    *entity.Mover
	caster   *raycast.Caster
	sliver   *render.SliverRenderer

	showMap bool
	running bool

	fps       float64
	lastFrame time.Time
}

// New creates a game bound to an output surface and an input port. World
// generation is deferred to Run.
func New(cfg Config, surface render.Surface, port input.Port) *Game {
	return &Game{
		cfg:     cfg,
		surface: surface,
		port:    port,
	}
}

// SetCue installs the movement-rejection cue. Must be called before Run.
func (g *Game) SetCue(cue entity.Cue) {
	g.cue = cue
}

// Run generates the world, then drives the frame loop at the configured tick
// rate until the quit control fires or the context is cancelled.
func (g *Game) Run(ctx context.Context) error {
	if err := g.setup(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(g.cfg.Tick)
	defer ticker.Stop()

	g.running = true
	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := g.tick(); err != nil {
			return err
		}
	}
	return nil
}

// setup seeds the rng, generates the map and textures, and builds the movement
// and rendering pipeline against the current surface size.
func (g *Game) setup(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.setup")
	defer span.End()

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if g.cfg.MapWidth <= 0 || g.cfg.MapHeight <= 0 {
		return fmt.Errorf("invalid map size %dx%d", g.cfg.MapWidth, g.cfg.MapHeight)
	}

	g.pose = entity.NewCenteredPose(g.cfg.MapWidth, g.cfg.MapHeight)
	g.grid = world.NewGrid(g.cfg.MapWidth, g.cfg.MapHeight, rng)
	g.grid.Generate(ctx, g.cfg.WallDensity, g.pose.X, g.pose.Y)

	g.textures = world.NewTextureBank(world.DefaultTextureCount, world.TextureWidth, world.TextureHeight, rng)

	g.mover = entity.NewMover(g.pose, g.grid, g.cfg.WalkSpeed, g.cfg.TurnSpeed)
	g.mover.SetCue(g.cue)

	g.sliver = render.NewSliverRenderer(g.cfg.Strategy, g.textures, g.cfg.WallColor, g.cfg.SkyColor)
	g.rebuildView()

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("game.slivers", g.caster.NumSlivers),
		attribute.String("game.strategy", g.cfg.Strategy.String()),
		attribute.String("game.update_order", g.cfg.Order.String()),
	)
	return nil
}

// rebuildView sizes the caster to the current surface. Called at setup and
// again whenever the surface reports a resize.
func (g *Game) rebuildView() {
	width, height := g.surface.Size()

	slivers := g.cfg.Slivers
	if slivers <= 0 || slivers > width {
		slivers = width
	}

	g.caster = raycast.NewCaster(g.cfg.FOV, slivers, height, g.textures.Count())
	g.caster.HeightStep = g.cfg.HeightStep
	g.caster.ProjectionK = g.cfg.ProjectionK
}

// tick runs one frame: poll, handle mode controls, then move and render in the
// configured order.
func (g *Game) tick() error {
	g.port.Poll()

	if g.port.Pressed(input.Quit) {
		g.running = false
		return nil
	}
	if g.port.Pressed(input.ToggleMap) {
		g.showMap = !g.showMap
	}

	if rp, ok := g.port.(resizePort); ok && rp.TakeResized() {
		if ss, ok := g.surface.(syncSurface); ok {
			ss.Sync()
		}
		g.rebuildView()
	}

	if g.cfg.Order == CastThenMove {
		err := g.renderFrame()
		g.applyMovement()
		return err
	}

	g.applyMovement()
	return g.renderFrame()
}

// applyMovement scans the movement controls in their fixed order and applies
// one increment for each held control.
func (g *Game) applyMovement() {
	for _, c := range input.MovementControls {
		if !g.port.Pressed(c) {
			continue
		}
		switch c {
		case input.Forward:
			g.mover.Forward()
		case input.Backward:
			g.mover.Backward()
		case input.TurnLeft:
			g.mover.TurnLeft()
		case input.TurnRight:
			g.mover.TurnRight()
		case input.StrafeLeft:
			g.mover.StrafeLeft()
		case input.StrafeRight:
			g.mover.StrafeRight()
		}
	}
}

// renderFrame casts the full column set and draws it, plus any overlays, then
// presents.
func (g *Game) renderFrame() error {
	g.surface.Clear()

	for _, col := range g.caster.Cast(g.pose, g.grid) {
		g.sliver.Draw(g.surface, col)
	}

	if g.showMap {
		render.DrawMapOverlay(g.surface, g.grid, g.pose)
	}

	g.updateFPS()
	if ts, ok := g.surface.(textSurface); ok {
		_, height := g.surface.Size()
		ts.DrawText(0, height/2-1, fmt.Sprintf("%5.1f fps", g.fps))
	}

	return g.surface.Present()
}

// updateFPS folds the latest inter-frame interval into a smoothed rate.
func (g *Game) updateFPS() {
	now := time.Now()
	if !g.lastFrame.IsZero() {
		elapsed := now.Sub(g.lastFrame).Seconds()
		if elapsed > 0 {
			inst := 1.0 / elapsed
			if g.fps == 0 {
				g.fps = inst
			} else {
				g.fps = g.fps*0.9 + inst*0.1
			}
		}
	}
	g.lastFrame = now
}
