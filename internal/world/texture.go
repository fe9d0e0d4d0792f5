package world

import "math/rand"

const (
	// DefaultTextureCount is the number of patterns in the bank.
	DefaultTextureCount = 4

	// Tile dimensions for one texture pattern.
	TextureWidth  = 8
	TextureHeight = 8
)

// TextureBank holds a small bank of binary tile patterns, precomputed once at
// startup. The sliver renderer picks a pattern by wall height bucket and
// samples it with wrap-around, so a distant (short) wall gets a sparser fill
// than a near (tall) one.
type TextureBank struct {
	patterns [][][]bool // [index][y][x]
	width    int
	height   int
}

// NewTextureBank generates count patterns of the given tile size. Pattern i
// is filled at a density that rises with i, so bucket 0 (shortest walls) is
// the sparsest. The rng is injected for reproducibility.
func NewTextureBank(count, width, height int, rng *rand.Rand) *TextureBank {
	patterns := make([][][]bool, count)
	for i := range patterns {
		// Density runs from ~25% for the first pattern to ~85% for the last.
		density := 25 + (60*i)/max(count-1, 1)

		pattern := make([][]bool, height)
		for y := range pattern {
			pattern[y] = make([]bool, width)
			for x := range pattern[y] {
				pattern[y][x] = rng.Intn(100) < density
			}
		}
		patterns[i] = pattern
	}

	return &TextureBank{
		patterns: patterns,
		width:    width,
		height:   height,
	}
}

// Count returns the number of patterns in the bank.
func (b *TextureBank) Count() int {
	return len(b.patterns)
}

// Index maps a projected wall height to a pattern index:
// floor(height/screenHeight * count), clamped to the last valid pattern.
func (b *TextureBank) Index(wallHeight, screenHeight int) int {
	if screenHeight <= 0 || wallHeight <= 0 {
		return 0
	}
	idx := wallHeight * len(b.patterns) / screenHeight
	if idx >= len(b.patterns) {
		idx = len(b.patterns) - 1
	}
	return idx
}

// At samples pattern idx at (x, y) with wrap-around, so any screen coordinate
// maps into the tile.
func (b *TextureBank) At(idx, x, y int) bool {
	if idx < 0 || idx >= len(b.patterns) {
		return false
	}
	return b.patterns[idx][y%b.height][x%b.width]
}
