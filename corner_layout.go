package skin

// Corner layout segment names. A layout with prefix "Selectdrop_" uses the
// textures "Selectdrop_TL", "Selectdrop_Top" and so on.
const (
	PartTL     = "TL"
	PartTop    = "Top"
	PartTR     = "TR"
	PartLeft   = "Left"
	PartMid    = "Mid"
	PartRight  = "Right"
	PartBL     = "BL"
	PartBottom = "Bottom"
	PartBR     = "BR"
)

// cornerParts is the creation (and draw) order of the segments.
var cornerParts = [9]string{PartTR, PartTop, PartTL, PartRight, PartMid, PartLeft, PartBR, PartBottom, PartBL}

// CornerLayout is a nine-slice background. Corners keep their texture
// size, edges stretch along one axis, and the middle stretches along both.
type CornerLayout struct {
	node   *Node
	prefix string
	parts  map[string]*Sprite
}

// NewCornerLayout creates a width x height layout from the textures
// "{prefix}{TL,Top,TR,Left,Mid,Right,BL,Bottom,BR}".
func NewCornerLayout(parent *Node, prefix string, width, height float32) *CornerLayout {
	l := &CornerLayout{
		node:   NewNodeRect(parent, 0, 0, width, height),
		prefix: prefix,
		parts:  make(map[string]*Sprite, len(cornerParts)),
	}
	l.node.SetName("corner-layout:" + prefix)
	for _, p := range cornerParts {
		l.parts[p] = NewSprite(l.node, "blank")
	}
	l.Render()
	return l
}

// Node returns the layout node.
func (l *CornerLayout) Node() *Node { return l.node }

// Prefix returns the texture prefix.
func (l *CornerLayout) Prefix() string { return l.prefix }

// SetPrefix switches all nine textures and re-renders.
func (l *CornerLayout) SetPrefix(prefix string) {
	l.prefix = prefix
	l.Render()
}

// Resize changes the target size and re-renders.
func (l *CornerLayout) Resize(width, height float32) {
	l.node.SetSize(width, height)
	l.Render()
}

// Part returns the sprite of a segment, or nil for an unknown name.
func (l *CornerLayout) Part(name string) *Sprite { return l.parts[name] }

// Render re-textures and lays out the nine segments for the current size.
// Stretched sizes are clamped at zero when the layout is smaller than its
// corners.
func (l *CornerLayout) Render() {
	for _, p := range cornerParts {
		l.parts[p].SetTexture(l.prefix+p, true)
	}

	w, h := l.node.Width(), l.node.Height()
	tl, top, tr := l.parts[PartTL], l.parts[PartTop], l.parts[PartTR]
	left, mid, right := l.parts[PartLeft], l.parts[PartMid], l.parts[PartRight]
	bl, bottom, br := l.parts[PartBL], l.parts[PartBottom], l.parts[PartBR]

	top.SetWidth(w - tl.Width() - tr.Width())
	mid.SetWidth(w - left.Width() - right.Width())
	bottom.SetWidth(w - bl.Width() - br.Width())

	left.SetHeight(h - tl.Height() - bl.Height())
	mid.SetHeight(h - top.Height() - bottom.Height())
	right.SetHeight(h - tr.Height() - br.Height())

	tl.SetPos(0, 0)
	top.SetPos(tl.Width(), 0)
	tr.SetPos(top.Left()+top.Width(), 0)

	left.SetPos(0, tl.Height())
	mid.SetPos(left.Width(), top.Height())
	right.SetPos(mid.Left()+mid.Width(), tr.Height())

	bl.SetPos(0, left.Top()+left.Height())
	bottom.SetPos(bl.Width(), mid.Top()+mid.Height())
	br.SetPos(bottom.Left()+bottom.Width(), right.Top()+right.Height())
}
