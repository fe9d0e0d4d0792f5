// Package ui provides terminal output using tcell, driven as a pixel surface.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/slivercast/internal/render"
)

// Screen wraps tcell.Screen and exposes it as a render.ShadedSurface. Each
// terminal cell carries two vertically stacked pixels via the upper half
// block rune: the upper pixel is the foreground color, the lower pixel the
// background. That roughly squares the pixel aspect, which terminal cells
// otherwise double.
type Screen struct {
	screen tcell.Screen

	cols, rows    int // terminal cells
	width, height int // pixels (height == rows*2)

	colors []colorful.Color // per-pixel color, zero value is off/black
	lit    []bool

	text map[textPos]textEntry

	events chan tcell.Event
	quit   chan struct{}
}

type textPos struct{ col, row int }

type textEntry struct {
	msg   string
	style tcell.Style
}

// NewScreen creates and initializes a terminal screen. Event delivery starts
// immediately; consume Events() or the tcell queue will back up.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()

	cols, rows := s.Size()
	scr := &Screen{
		screen: s,
		text:   make(map[textPos]textEntry),
		events: make(chan tcell.Event, 32),
		quit:   make(chan struct{}),
	}
	scr.resize(cols, rows)

	go s.ChannelEvents(scr.events, scr.quit)

	return scr, nil
}

func (s *Screen) resize(cols, rows int) {
	s.cols, s.rows = cols, rows
	s.width, s.height = cols, rows*2
	s.colors = make([]colorful.Color, s.width*s.height)
	s.lit = make([]bool, s.width*s.height)
}

// Close stops event delivery and restores the terminal state.
func (s *Screen) Close() {
	close(s.quit)
	s.screen.Fini()
}

// Events returns the stream of terminal events for the input layer.
func (s *Screen) Events() <-chan tcell.Event {
	return s.events
}

// Sync re-reads the terminal size and forces a complete redraw. Call on
// resize events.
func (s *Screen) Sync() {
	s.screen.Sync()
	s.resize(s.screen.Size())
}

// Size returns the pixel dimensions.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// SetPixel sets or clears one pixel in plain white. Out-of-bounds calls are
// ignored.
func (s *Screen) SetPixel(x, y int, on bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.lit[i] = on
	if on {
		s.colors[i] = colorful.Color{R: 1, G: 1, B: 1}
	} else {
		s.colors[i] = colorful.Color{}
	}
}

// SetShaded sets one pixel with an explicit shade.
func (s *Screen) SetShaded(x, y int, shade render.Shade) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.lit[i] = shade.Intensity > 0
	s.colors[i] = shade.Scaled()
}

// Clear resets the pixel buffer and drops queued text.
func (s *Screen) Clear() {
	for i := range s.lit {
		s.lit[i] = false
		s.colors[i] = colorful.Color{}
	}
	for k := range s.text {
		delete(s.text, k)
	}
}

// DrawText queues a text overlay at the given terminal cell position. Text is
// composed over the pixels at Present time, so draw order doesn't matter.
func (s *Screen) DrawText(col, row int, msg string) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	s.text[textPos{col, row}] = textEntry{msg: msg, style: style}
}

// Present composes the pixel buffer into half-block cells, lays the text
// overlay on top, and flushes to the terminal.
func (s *Screen) Present() error {
	for cy := 0; cy < s.rows; cy++ {
		for cx := 0; cx < s.cols; cx++ {
			upper := s.colors[(cy*2)*s.width+cx]
			lower := s.colors[(cy*2+1)*s.width+cx]

			style := tcell.StyleDefault.
				Foreground(toTcell(upper)).
				Background(toTcell(lower))
			s.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}

	for pos, entry := range s.text {
		for i, ch := range entry.msg {
			s.screen.SetContent(pos.col+i, pos.row, ch, nil, entry.style)
		}
	}

	s.screen.Show()
	return nil
}

// toTcell converts a colorful RGB color to a tcell color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
