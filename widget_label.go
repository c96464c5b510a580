package skin

// Label is a line of text with an optional one-pixel drop shadow.
// Labelled widgets bind pointer handlers on the label node to forward
// clicks to their control.
type Label struct {
	node   *Node
	text   *Text
	shadow *Text
}

// NewLabel creates a label.
//
// Options: WithFont, WithoutShadow, WithStyle (text and shadow colours).
func NewLabel(parent *Node, text string, opts ...Option) *Label {
	o := applyOptions(opts)
	style := GetOpt(o, OptStyle)
	font := GetOpt(o, OptFont)

	l := &Label{node: NewNode(parent)}
	l.node.SetName("label")

	l.text = NewText(l.node, text, font)
	l.text.SetColor(style.TextColor)
	l.text.SetZOffset(5)

	if !GetOpt(o, OptNoShadow) {
		l.shadow = NewText(l.node, text, font)
		l.shadow.SetTop(1)
		l.shadow.SetColor(style.ShadowColor)
	}

	l.node.FitToChildren()
	return l
}

// Node returns the label node.
func (l *Label) Node() *Node { return l.node }

// Text returns the label string.
func (l *Label) Text() string { return l.text.Text() }

// SetText replaces the string and refits the label.
func (l *Label) SetText(s string) {
	l.text.SetText(s)
	if l.shadow != nil {
		l.shadow.SetText(s)
	}
	l.node.FitToChildren()
}

// TextNode returns the foreground text node, for character positioning.
func (l *Label) TextNode() *Text { return l.text }

// HasShadow reports whether the label draws a shadow.
func (l *Label) HasShadow() bool { return l.shadow != nil }
