package skin

import (
	"fmt"
	"image"
	"math"
	"sync"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// offsetCacheSize bounds the number of strings whose advance tables are
// kept per font.
const offsetCacheSize = 256

// Font measures and rasterises text with a golang.org/x/image face.
// It is safe for concurrent use.
type Font struct {
	name string

	mu   sync.Mutex // guards face, which is not safe for concurrent use
	face font.Face

	lineHeight float32
	ascent     float32

	offsets *lru.Cache[string, []float32]

	atlasOnce sync.Once
	atlas     *GlyphAtlas
}

// NewFont wraps face.
func NewFont(name string, face font.Face) *Font {
	cache, _ := lru.New[string, []float32](offsetCacheSize)
	m := face.Metrics()
	return &Font{
		name:       name,
		face:       face,
		lineHeight: float32(m.Height.Ceil()),
		ascent:     float32(m.Ascent.Ceil()),
		offsets:    cache,
	}
}

// LoadFont parses TrueType or OpenType data and creates a face at size
// pixels.
func LoadFont(name string, data []byte, size float64) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %s: %w", name, err)
	}
	return NewFont(name, face), nil
}

// GoRegular returns the Go Regular font at size pixels.
func GoRegular(size float64) (*Font, error) {
	return LoadFont("goregular", goregular.TTF, size)
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
)

// DefaultFont returns the built-in 7x13 bitmap font.
func DefaultFont() *Font {
	defaultFontOnce.Do(func() {
		defaultFont = NewFont("basic7x13", basicfont.Face7x13)
	})
	return defaultFont
}

// Name returns the font name.
func (f *Font) Name() string { return f.name }

// LineHeight returns the line height in pixels.
func (f *Font) LineHeight() float32 { return f.lineHeight }

// Ascent returns the distance from the top of a line to the baseline.
func (f *Font) Ascent() float32 { return f.ascent }

// Offsets returns the x offset of every character boundary of s: element i
// is the position before rune i, the last element is the total advance.
// The returned slice is shared and must not be modified.
func (f *Font) Offsets(s string) []float32 {
	if offs, ok := f.offsets.Get(s); ok {
		return offs
	}

	offs := make([]float32, 0, utf8.RuneCountInString(s)+1)
	offs = append(offs, 0)

	f.mu.Lock()
	var x fixed.Int26_6
	prev := rune(-1)
	for _, r := range s {
		r = f.glyphRune(r)
		if prev >= 0 {
			x += f.face.Kern(prev, r)
		}
		adv, _ := f.face.GlyphAdvance(r)
		x += adv
		offs = append(offs, fixedToFloat(x))
		prev = r
	}
	f.mu.Unlock()

	f.offsets.Add(s, offs)
	return offs
}

// glyphRune maps runes the face cannot draw to a drawable substitute.
// Callers hold f.mu.
func (f *Font) glyphRune(r rune) rune {
	if _, ok := f.face.GlyphAdvance(r); ok {
		return r
	}
	if fb := unicodeFallback(r); fb != r {
		if _, ok := f.face.GlyphAdvance(fb); ok {
			return fb
		}
	}
	return '?'
}

// Measure returns the size of s on one line.
func (f *Font) Measure(s string) Vec2 {
	offs := f.Offsets(s)
	return Vec2{X: offs[len(offs)-1], Y: f.lineHeight}
}

// CharPos returns the x offset of the boundary before rune index i. The
// index is clamped to [0, runes].
func (f *Font) CharPos(s string, i int) float32 {
	offs := f.Offsets(s)
	i = max(0, min(i, len(offs)-1))
	return offs[i]
}

// CharIndex returns the rune boundary nearest to x.
func (f *Font) CharIndex(s string, x float32) int {
	offs := f.Offsets(s)
	best := 0
	bestDist := float32(math.MaxFloat32)
	for i, o := range offs {
		d := o - x
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// unicodeFallback maps common symbols to ASCII equivalents for faces that
// only cover ASCII.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// GlyphAtlas is an alpha texture holding the printable ASCII glyphs of a
// font, one cell per glyph.
type GlyphAtlas struct {
	Image *image.Alpha

	// TextureID is assigned by the backend after upload.
	TextureID uint32

	cells map[rune]image.Rectangle
	pad   int
}

const (
	glyphFirst   = 32
	glyphLast    = 126
	glyphsPerRow = 16
	glyphPad     = 1
)

// Atlas returns the font's glyph atlas, rasterising it on first use.
func (f *Font) Atlas() *GlyphAtlas {
	f.atlasOnce.Do(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.atlas = buildGlyphAtlas(f.face, int(f.lineHeight), int(f.ascent))
	})
	return f.atlas
}

func buildGlyphAtlas(face font.Face, lineHeight, ascent int) *GlyphAtlas {
	cellW := 0
	for r := rune(glyphFirst); r <= glyphLast; r++ {
		adv, _ := face.GlyphAdvance(r)
		cellW = max(cellW, adv.Ceil())
	}
	cellW += 2 * glyphPad
	cellH := lineHeight

	count := glyphLast - glyphFirst + 1
	rows := (count + glyphsPerRow - 1) / glyphsPerRow
	img := image.NewAlpha(image.Rect(0, 0, cellW*glyphsPerRow, cellH*rows))

	ga := &GlyphAtlas{Image: img, cells: make(map[rune]image.Rectangle, count), pad: glyphPad}
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(glyphFirst); r <= glyphLast; r++ {
		i := int(r - glyphFirst)
		x := (i % glyphsPerRow) * cellW
		y := (i / glyphsPerRow) * cellH
		d.Dot = fixed.P(x+glyphPad, y+ascent)
		d.DrawString(string(r))
		ga.cells[r] = image.Rect(x, y, x+cellW, y+cellH)
	}
	return ga
}

// Quads lays out s with its top-left corner at (x, y).
func (f *Font) Quads(s string, x, y float32) []GlyphQuad {
	ga := f.Atlas()
	offs := f.Offsets(s)
	b := ga.Image.Bounds()
	tw, th := float32(b.Dx()), float32(b.Dy())

	quads := make([]GlyphQuad, 0, len(offs)-1)
	i := 0
	for _, r := range s {
		cell, ok := ga.cells[r]
		if !ok {
			cell, ok = ga.cells[unicodeFallback(r)]
		}
		if !ok {
			cell = ga.cells['?']
		}
		x0 := x + offs[i] - float32(ga.pad)
		quads = append(quads, GlyphQuad{
			X0: x0,
			Y0: y,
			X1: x0 + float32(cell.Dx()),
			Y1: y + float32(cell.Dy()),
			U0: float32(cell.Min.X) / tw,
			V0: float32(cell.Min.Y) / th,
			U1: float32(cell.Max.X) / tw,
			V1: float32(cell.Max.Y) / th,
		})
		i++
	}
	return quads
}
