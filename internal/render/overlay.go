package render

import (
	"github.com/samdwyer/slivercast/internal/entity"
	"github.com/samdwyer/slivercast/internal/world"
)

// overlayMargin keeps the minimap off the surface edge.
const overlayMargin = 1

// DrawMapOverlay renders a top-down minimap into the top-left corner of the
// surface: one pixel per map cell, walls lit, plus the player's cell. A frame
// of lit pixels marks the map edge so the boundary wall is visible.
func DrawMapOverlay(s Surface, grid *world.Grid, pose *entity.Pose) {
	ox, oy := overlayMargin, overlayMargin

	// Border frame, one pixel outside the cell block.
	for x := -1; x <= grid.Width; x++ {
		s.SetPixel(ox+x, oy-1, true)
		s.SetPixel(ox+x, oy+grid.Height, true)
	}
	for y := -1; y <= grid.Height; y++ {
		s.SetPixel(ox-1, oy+y, true)
		s.SetPixel(ox+grid.Width, oy+y, true)
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.CellAt(float64(x), float64(y)).IsWall() {
				s.SetPixel(ox+x, oy+y, true)
			}
		}
	}

	// Player marker on top.
	s.SetPixel(ox+int(pose.X), oy+int(pose.Y), true)
}
