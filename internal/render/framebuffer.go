package render

// Framebuffer is an in-memory ShadedSurface. Tests assert against it, and it
// backs any output device that wants a full frame handed over at present
// time.
type Framebuffer struct {
	width  int
	height int
	pixels []bool
	shades []Shade

	// Presented counts Present calls, for tests that verify frame pacing.
	Presented int
}

// NewFramebuffer creates a cleared framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
		shades: make([]Shade, width*height),
	}
}

// Size returns the pixel dimensions.
func (f *Framebuffer) Size() (int, int) {
	return f.width, f.height
}

// SetPixel sets or clears one pixel. Out-of-bounds calls are ignored.
func (f *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = on
	f.shades[y*f.width+x] = Shade{}
}

// SetShaded sets one pixel with an explicit shade. A zero-intensity shade
// clears the pixel.
func (f *Framebuffer) SetShaded(x, y int, shade Shade) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = shade.Intensity > 0
	f.shades[y*f.width+x] = shade
}

// Clear resets every pixel to off.
func (f *Framebuffer) Clear() {
	for i := range f.pixels {
		f.pixels[i] = false
		f.shades[i] = Shade{}
	}
}

// Present counts the flush; there is no physical device behind the buffer.
func (f *Framebuffer) Present() error {
	f.Presented++
	return nil
}

// At reports whether the pixel is on.
func (f *Framebuffer) At(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.pixels[y*f.width+x]
}

// ShadeAt returns the last shade written to the pixel.
func (f *Framebuffer) ShadeAt(x, y int) Shade {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Shade{}
	}
	return f.shades[y*f.width+x]
}

// OnCount returns the number of lit pixels, a blunt but useful test probe.
func (f *Framebuffer) OnCount() int {
	count := 0
	for _, p := range f.pixels {
		if p {
			count++
		}
	}
	return count
}
