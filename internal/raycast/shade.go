package raycast

import "math"

// shadeAt derives the base intensity for a hit at (x, y) radius r away.
// Intensity falls off as 1/r beyond one map unit, and snaps back to full on
// the decorative lattice: hit points whose fifth-cell subdivisions line up
// with the grid on both axes.
func shadeAt(x, y, r float64, mapWidth, mapHeight int) float64 {
	shade := 1.0
	if r > 1 {
		shade = 1 / r
	}

	if int(math.Floor(x*5))%mapWidth == 0 && int(math.Floor(y*5))%mapHeight == 0 {
		shade = 1.0
	}

	return shade
}

// textureIndex buckets a wall height into the texture bank:
// floor(height/screenHeight * count), clamped to the last valid index.
func textureIndex(wallHeight, screenHeight, count int) int {
	if count <= 0 || screenHeight <= 0 {
		return 0
	}
	idx := wallHeight * count / screenHeight
	if idx >= count {
		idx = count - 1
	}
	return idx
}
