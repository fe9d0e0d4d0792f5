package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/slivercast/internal/raycast"
	"github.com/samdwyer/slivercast/internal/world"
)

// Strategy selects how a sliver is filled. The trade-off is write bandwidth
// to the output device: Outline touches the fewest pixels, Gradient touches
// every row of the column.
type Strategy int

const (
	// StrategyOutline draws only the top/bottom boundary pixels plus a
	// textured interior. Default for slow-bus displays.
	StrategyOutline Strategy = iota
	// StrategySolid draws the full wall span as a solid shaded line.
	StrategySolid
	// StrategyGradient draws a solid wall plus sky/ground gradient bands
	// outside the span. Needs a surface that can shade pixels.
	StrategyGradient
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyOutline:
		return "outline"
	case StrategySolid:
		return "solid"
	case StrategyGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// ParseStrategy resolves a strategy name from configuration.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "outline":
		return StrategyOutline, nil
	case "solid":
		return StrategySolid, nil
	case "gradient":
		return StrategyGradient, nil
	default:
		return StrategyOutline, fmt.Errorf("unknown render strategy %q", name)
	}
}

// SliverRenderer converts one cast column into a vertical strip of pixels.
type SliverRenderer struct {
	strategy  Strategy
	textures  *world.TextureBank
	wallColor colorful.Color
	skyColor  colorful.Color
}

// NewSliverRenderer creates a renderer with the given fill strategy, texture
// bank and palette.
func NewSliverRenderer(strategy Strategy, textures *world.TextureBank, wallColor, skyColor colorful.Color) *SliverRenderer {
	return &SliverRenderer{
		strategy:  strategy,
		textures:  textures,
		wallColor: wallColor,
		skyColor:  skyColor,
	}
}

// Strategy returns the active fill strategy.
func (r *SliverRenderer) Strategy() Strategy {
	return r.strategy
}

// Draw renders one column onto the surface. The wall occupies pixel rows
// [mid-h/2, mid+h/2]; rows outside the span are background unless the
// gradient strategy is active.
func (r *SliverRenderer) Draw(s Surface, col raycast.Column) {
	_, screenH := s.Size()
	mid := screenH / 2
	half := col.WallHeight / 2
	top := mid - half
	bottom := mid + half
	if bottom > screenH-1 {
		bottom = screenH - 1
	}
	if top < 0 {
		top = 0
	}

	x := col.Index

	if col.WallHeight > 0 {
		switch r.strategy {
		case StrategyOutline:
			r.drawOutline(s, x, top, bottom, col)
		case StrategySolid, StrategyGradient:
			r.drawSolid(s, x, top, bottom, col)
		}
	}

	if r.strategy == StrategyGradient {
		r.drawBands(s, x, top, bottom, mid, col.WallHeight > 0)
	}
}

// drawOutline marks the wall's top and bottom edges and fills the interior
// from the texture bank: minimal writes for a display on a slow bus.
func (r *SliverRenderer) drawOutline(s Surface, x, top, bottom int, col raycast.Column) {
	s.SetPixel(x, top, true)
	s.SetPixel(x, bottom, true)
	for y := top + 1; y < bottom; y++ {
		if r.textures.At(col.Texture, x, y) {
			s.SetPixel(x, y, true)
		}
	}
}

// drawSolid fills the whole span, shaded when the surface supports it.
func (r *SliverRenderer) drawSolid(s Surface, x, top, bottom int, col raycast.Column) {
	shaded, ok := s.(ShadedSurface)
	for y := top; y <= bottom; y++ {
		if ok {
			shaded.SetShaded(x, y, Shade{Color: r.wallColor, Intensity: col.Shade})
		} else {
			s.SetPixel(x, y, true)
		}
	}
}

// drawBands shades the sky above the wall and the ground below it, fading
// toward the horizon. On a plain monochrome surface the bands stay dark.
func (r *SliverRenderer) drawBands(s Surface, x, top, bottom, mid int, hasWall bool) {
	shaded, ok := s.(ShadedSurface)
	if !ok {
		return
	}
	_, screenH := s.Size()

	skyEnd := top
	groundStart := bottom
	if !hasWall {
		skyEnd = mid
		groundStart = mid
	}

	for y := 0; y < skyEnd; y++ {
		intensity := float64(mid-y) / float64(mid)
		shaded.SetShaded(x, y, Shade{Color: r.skyColor, Intensity: intensity})
	}
	for y := groundStart + 1; y < screenH; y++ {
		intensity := float64(y-mid) / float64(screenH-mid)
		shaded.SetShaded(x, y, Shade{Color: groundColor, Intensity: intensity})
	}
}

// groundColor is the fixed floor tint for the gradient strategy.
var groundColor = colorful.Color{R: 0.35, G: 0.3, B: 0.25}
