// Package world provides the occupancy grid and wall texture bank.
package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/slivercast/internal/telemetry"
)

const (
	// Default grid dimensions
	DefaultWidth  = 10
	DefaultHeight = 10

	// DefaultDensity is the percent chance that a generated cell is a wall.
	DefaultDensity = 30

	// WallKinds is the number of distinct wall cell values. Nonzero cell
	// values select different texture seeds so adjacent walls don't all
	// look identical.
	WallKinds = 3
)

// Cell is one map cell: 0 is empty, nonzero values are wall kinds.
type Cell uint8

// CellEmpty is a traversable cell.
const CellEmpty Cell = 0

// IsWall returns true if the cell is solid.
func (c Cell) IsWall() bool {
	return c != CellEmpty
}

// Rune returns the cell's display character for the map overlay.
func (c Cell) Rune() rune {
	if c.IsWall() {
		return '#'
	}
	return '.'
}

// Grid represents the game map: a fixed-size occupancy grid, immutable after
// generation.
type Grid struct {
	Width  int
	Height int
	cells  [][]Cell
	rng    *rand.Rand
}

// NewGrid creates an empty grid. The rng is injected so callers control
// seeding; tests rely on this for reproducible layouts.
func NewGrid(width, height int, rng *rand.Rand) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
		rng:    rng,
	}
}

// Generate fills the grid with randomly placed walls at the given density
// percentage, then clears the cell containing (spawnX, spawnY) so the player
// never starts inside a wall. Called once at startup; the grid is read-only
// afterwards.
func (g *Grid) Generate(ctx context.Context, densityPct int, spawnX, spawnY float64) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.generate")
	defer span.End()

	startTime := time.Now()

	walls := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.rng.Intn(100) < densityPct {
				g.cells[y][x] = Cell(1 + g.rng.Intn(WallKinds))
				walls++
			} else {
				g.cells[y][x] = CellEmpty
			}
		}
	}

	// The spawn cell is always forced empty after generation.
	sx, sy := int(spawnX), int(spawnY)
	if sx >= 0 && sx < g.Width && sy >= 0 && sy < g.Height {
		if g.cells[sy][sx].IsWall() {
			g.cells[sy][sx] = CellEmpty
			walls--
		}
	}

	span.SetAttributes(
		attribute.Int("grid.width", g.Width),
		attribute.Int("grid.height", g.Height),
		attribute.Int("grid.density_pct", densityPct),
		attribute.Int("grid.wall_count", walls),
		attribute.Int64("grid.generation_us", time.Since(startTime).Microseconds()),
	)
}

// CellAt returns the cell containing the continuous position (x, y).
// Coordinates are integer-truncated before indexing; anything outside
// [0,W) x [0,H) reads as a wall, so the map edge behaves like a boundary wall.
func (g *Grid) CellAt(x, y float64) Cell {
	cx, cy := int(x), int(y)
	if x < 0 || y < 0 || cx >= g.Width || cy >= g.Height {
		return Cell(1)
	}
	return g.cells[cy][cx]
}

// IsWall returns true if the continuous position lies in a solid cell or
// outside the map.
func (g *Grid) IsWall(x, y float64) bool {
	return g.CellAt(x, y).IsWall()
}

// IsOpen returns true if the position lands in an empty cell strictly inside
// the open bounds (0,W) x (0,H). Edge-exclusive: standing exactly on the
// perimeter is not allowed.
func (g *Grid) IsOpen(x, y float64) bool {
	if x <= 0 || y <= 0 || x >= float64(g.Width) || y >= float64(g.Height) {
		return false
	}
	return !g.cells[int(y)][int(x)].IsWall()
}

// SetCell overwrites a single cell. Only tests and fixture setup use this;
// nothing mutates the grid during play.
func (g *Grid) SetCell(cx, cy int, c Cell) {
	if cx < 0 || cx >= g.Width || cy < 0 || cy >= g.Height {
		return
	}
	g.cells[cy][cx] = c
}

// WallCount returns the number of solid cells.
func (g *Grid) WallCount() int {
	count := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].IsWall() {
				count++
			}
		}
	}
	return count
}
