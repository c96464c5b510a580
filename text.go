package skin

import "unicode/utf8"

// Text is a node showing a single line of text. Its size follows the
// measured extent of the string.
type Text struct {
	Node

	text string
	font *Font
}

// NewText creates a text node. A nil font uses DefaultFont.
func NewText(parent *Node, s string, f *Font) *Text {
	if f == nil {
		f = DefaultFont()
	}
	t := &Text{font: f}
	t.color = White
	t.content = t
	t.SetText(s)
	if parent != nil {
		parent.AddChild(&t.Node)
	}
	return t
}

// Text returns the string.
func (t *Text) Text() string { return t.text }

// SetText replaces the string and resizes the node.
func (t *Text) SetText(s string) {
	t.text = s
	sz := t.font.Measure(s)
	t.width, t.height = sz.X, sz.Y
}

// Font returns the font.
func (t *Text) Font() *Font { return t.font }

// Len returns the number of runes.
func (t *Text) Len() int { return utf8.RuneCountInString(t.text) }

// CharPos returns the x offset of the boundary before rune i.
func (t *Text) CharPos(i int) float32 { return t.font.CharPos(t.text, i) }

// CharIndex returns the rune boundary nearest to the local x offset.
func (t *Text) CharIndex(x float32) int { return t.font.CharIndex(t.text, x) }

func (t *Text) draw(dl *DrawList, r Rect, tint Color) {
	if t.text == "" {
		return
	}
	ga := t.font.Atlas()
	if ga.TextureID == 0 {
		return // not uploaded
	}
	dl.AddGlyphQuads(ga.TextureID, t.font.Quads(t.text, r.X, r.Y), tint.Packed())
}
