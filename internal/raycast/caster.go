// Package raycast turns a pose and an occupancy grid into per-column wall
// heights using adaptive radius stepping.
package raycast

import (
	"math"

	"github.com/samdwyer/slivercast/internal/entity"
	"github.com/samdwyer/slivercast/internal/world"
)

const (
	// DefaultFOV is the horizontal field of view in degrees.
	DefaultFOV = 60.0

	// DefaultHeightStep is the scan decrement in pixels. Each sample's height
	// differs from the previous by this much, so no two samples can round to
	// the same drawn sliver.
	DefaultHeightStep = 2

	// DefaultProjectionK is the projection constant relating wall height to
	// radius: r = k * screenHeight / height. With k = 1 a wall one map unit
	// away exactly fills the screen.
	DefaultProjectionK = 1.0
)

// Column is the result of casting one ray: everything the sliver renderer
// needs for one vertical strip. Recomputed every frame, never persisted.
type Column struct {
	Index      int        // screen column, 0..NumSlivers-1
	Radius     float64    // distance to the first hit, 0 if none
	WallHeight int        // projected height in pixels, 0 if no wall visible
	Shade      float64    // intensity in [0,1], inversely proportional to distance
	Texture    int        // texture bank index for the interior fill
	Kind       world.Cell // wall kind that was hit
	Boundary   bool       // hit was the map edge, not a cell
}

// Caster casts one ray per screen column across the field of view.
type Caster struct {
	FOV          float64 // total angular width in degrees
	NumSlivers   int     // columns per frame
	ScreenHeight int     // pixels
	HeightStep   int     // scan decrement in pixels
	ProjectionK  float64 // wall height <-> radius constant
	Textures     int     // texture bank size, for bucket selection

	columns []Column // reused across frames; the loop is single-threaded
}

// NewCaster creates a caster with the given view geometry and the default
// scan parameters.
func NewCaster(fov float64, numSlivers, screenHeight, textures int) *Caster {
	return &Caster{
		FOV:          fov,
		NumSlivers:   numSlivers,
		ScreenHeight: screenHeight,
		HeightStep:   DefaultHeightStep,
		ProjectionK:  DefaultProjectionK,
		Textures:     textures,
		columns:      make([]Column, numSlivers),
	}
}

// RadiusFor returns the scan radius that projects to the given wall height:
// r = k * screenHeight / height. Only valid for height > 0; the scan loop
// never evaluates it at zero.
func (c *Caster) RadiusFor(wallHeight int) float64 {
	return c.ProjectionK * float64(c.ScreenHeight) / float64(wallHeight)
}

// Cast produces exactly NumSlivers column results covering FOV degrees
// centered on the pose's bearing. The returned slice is reused by the next
// call.
//
// Instead of marching the radius outward in small fixed increments, each
// column iterates the projected wall height downward from screenHeight in
// HeightStep decrements and derives the radius from it. Every sample then
// corresponds to a distinct discretized height, so the column needs at most
// screenHeight/HeightStep samples.
func (c *Caster) Cast(pose *entity.Pose, grid *world.Grid) []Column {
	thetaInc := c.FOV / float64(c.NumSlivers)
	start := pose.Bearing - c.FOV/2

	for i := 0; i < c.NumSlivers; i++ {
		theta := (start + float64(i)*thetaInc) * math.Pi / 180
		eyeX := math.Cos(theta)
		eyeY := math.Sin(theta)

		col := Column{Index: i}
		for h := c.ScreenHeight; h > 0; h -= c.HeightStep {
			r := c.RadiusFor(h)
			x := pose.X + r*eyeX
			y := pose.Y + r*eyeY

			cell := grid.CellAt(x, y)
			if !cell.IsWall() {
				continue
			}

			col.Radius = r
			col.WallHeight = h
			col.Shade = shadeAt(x, y, r, grid.Width, grid.Height)
			col.Texture = textureIndex(h, c.ScreenHeight, c.Textures)
			col.Kind = cell
			col.Boundary = x < 0 || y < 0 || x >= float64(grid.Width) || y >= float64(grid.Height)
			break
		}
		// If the loop ran out, the column stays empty: no wall visible
		// within the maximum scan radius.

		c.columns[i] = col
	}

	return c.columns
}
