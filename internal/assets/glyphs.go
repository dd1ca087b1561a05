package assets

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// Debug font cell size used by ebitenutil.DebugPrint.
const (
	glyphCellW = 6
	glyphCellH = 16
)

// GlyphLoader renders ball number glyphs a few per tick. Until a number has
// been rendered, Glyph returns nil and the ball is drawn without one.
// Rendered images are kept for the life of the loader.
type GlyphLoader struct {
	Render func(number, size int) *ebiten.Image

	size    int
	pending []int
	ready   map[int]*ebiten.Image
	log     *zap.Logger
}

func NewGlyphLoader(size int, log *zap.Logger) *GlyphLoader {
	return &GlyphLoader{
		Render: RenderGlyph,
		size:   size,
		ready:  make(map[int]*ebiten.Image),
		log:    log,
	}
}

// Request queues a glyph. Repeated requests are ignored.
func (l *GlyphLoader) Request(number int) {
	if _, ok := l.ready[number]; ok {
		return
	}
	for _, n := range l.pending {
		if n == number {
			return
		}
	}
	l.pending = append(l.pending, number)
}

// Poll renders up to budget queued glyphs. It must run on the game loop.
func (l *GlyphLoader) Poll(budget int) {
	for budget > 0 && len(l.pending) > 0 {
		n := l.pending[0]
		l.pending = l.pending[1:]
		budget--

		img := l.Render(n, l.size)
		l.ready[n] = img
		l.log.Debug("glyph ready", zap.Int("number", n), zap.Int("size", l.size))
	}
}

func (l *GlyphLoader) Glyph(number int) *ebiten.Image {
	return l.ready[number]
}

func (l *GlyphLoader) Pending() int {
	return len(l.pending)
}

func (l *GlyphLoader) Size() int {
	return l.size
}

// RenderGlyph draws the number centered on a transparent size x size image.
// Only the alpha channel is sampled by the ball shader.
func RenderGlyph(number, size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	label := strconv.Itoa(number)
	x := (size - glyphCellW*len(label)) / 2
	y := (size - glyphCellH) / 2
	ebitenutil.DebugPrintAt(img, label, x, y)
	return img
}
