// Package render draws cast columns onto an abstract pixel surface.
package render

import "github.com/lucasb-eyer/go-colorful"

// Shade is an explicit per-pixel draw state: a base color scaled by an
// intensity in [0,1]. Draw calls carry it as a parameter; there is no ambient
// color state anywhere.
type Shade struct {
	Color     colorful.Color
	Intensity float64
}

// Scaled returns the shade's color with the intensity applied.
func (s Shade) Scaled() colorful.Color {
	i := s.Intensity
	if i < 0 {
		i = 0
	} else if i > 1 {
		i = 1
	}
	return colorful.Color{R: s.Color.R * i, G: s.Color.G * i, B: s.Color.B * i}
}

// Surface is the minimal monochrome pixel sink the renderer needs: the same
// contract a small display driver exposes. Coordinate origin is top-left.
type Surface interface {
	// Size returns the pixel dimensions.
	Size() (width, height int)

	// SetPixel sets or clears one pixel. Out-of-bounds calls are ignored.
	SetPixel(x, y int, on bool)

	// Clear resets the whole buffer to off.
	Clear()

	// Present flushes the buffer to the physical device.
	Present() error
}

// ShadedSurface is implemented by surfaces that can vary pixel color and
// intensity. Renderers fall back to plain on/off pixels when the surface
// doesn't support it.
type ShadedSurface interface {
	Surface

	// SetShaded sets one pixel with an explicit shade.
	SetShaded(x, y int, shade Shade)
}
