package skin

// drawable is implemented by node payloads that emit geometry.
type drawable interface {
	draw(dl *DrawList, r Rect, tint Color)
}

// Node is an element of a retained scene tree. Widgets own the nodes they
// create; a node lives until it is removed from its parent.
//
// Position is relative to the parent's top-left corner. A node can instead
// be anchored to its parent's right edge (SetRight) or centered
// horizontally (SetCentered).
type Node struct {
	parent   *Node
	children []*Node
	scene    *Scene // set on the scene root only

	left, top   float32
	right       float32
	anchorRight bool
	centerX     bool

	width, height float32
	margin        Insets

	hidden  bool
	clip    Insets
	clipped bool
	z       int
	color   Color

	handlers [eventKindCount]Handler
	content  drawable
	name     string
}

// NewNode creates an empty node and attaches it to parent (which may be nil).
func NewNode(parent *Node) *Node {
	n := &Node{color: White}
	if parent != nil {
		parent.AddChild(n)
	}
	return n
}

// NewNodeRect creates a node with an explicit position and size.
func NewNodeRect(parent *Node, x, y, w, h float32) *Node {
	n := NewNode(parent)
	n.left, n.top = x, y
	n.width, n.height = w, h
	return n
}

// SetName sets a debug name used in logs.
func (n *Node) SetName(name string) { n.name = name }

// Name returns the debug name.
func (n *Node) Name() string { return n.name }

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AddChild attaches c as the last child of n, detaching it from any
// previous parent.
func (n *Node) AddChild(c *Node) {
	if c == nil || c == n {
		return
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// SetParent moves n under p. A nil parent detaches it.
func (n *Node) SetParent(p *Node) {
	if p == nil {
		n.Remove()
		return
	}
	p.AddChild(n)
}

// Remove detaches n from its parent. The scene drops any focus, hover or
// press reference to the detached subtree.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	sc := n.Scene()
	n.parent.removeChild(n)
	n.parent = nil
	if sc != nil {
		sc.forget(n)
	}
}

// RemoveAllChildren detaches every child of n.
func (n *Node) RemoveAllChildren() {
	for len(n.children) > 0 {
		n.children[len(n.children)-1].Remove()
	}
}

func (n *Node) removeChild(c *Node) {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// IsAncestorOf reports whether n is c or one of c's ancestors.
func (n *Node) IsAncestorOf(c *Node) bool {
	for p := c; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Scene returns the scene the node is attached to, or nil.
func (n *Node) Scene() *Scene {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root.scene
}

// RequestFocus asks the scene to focus this node. It is a no-op for nodes
// that are not attached to a scene.
func (n *Node) RequestFocus() {
	if sc := n.Scene(); sc != nil {
		sc.SetFocus(n)
	}
}

// HasFocus reports whether this node holds the scene focus.
func (n *Node) HasFocus() bool {
	sc := n.Scene()
	return sc != nil && sc.Focused() == n
}

// Left returns the left offset.
func (n *Node) Left() float32 { return n.left }

// Top returns the top offset.
func (n *Node) Top() float32 { return n.top }

// SetLeft sets the left offset and clears right anchoring and centering.
func (n *Node) SetLeft(x float32) {
	n.left = x
	n.anchorRight = false
	n.centerX = false
}

// SetTop sets the top offset.
func (n *Node) SetTop(y float32) { n.top = y }

// SetPos sets both offsets.
func (n *Node) SetPos(x, y float32) {
	n.SetLeft(x)
	n.top = y
}

// SetRight anchors the node's right edge r pixels inside the parent's
// right edge. Negative values move it past the edge.
func (n *Node) SetRight(r float32) {
	n.right = r
	n.anchorRight = true
	n.centerX = false
}

// SetCentered centers the node horizontally in its parent.
func (n *Node) SetCentered(centered bool) {
	n.centerX = centered
	if centered {
		n.anchorRight = false
	}
}

// Width returns the width.
func (n *Node) Width() float32 { return n.width }

// Height returns the height.
func (n *Node) Height() float32 { return n.height }

// SetWidth sets the width; negative values clamp to zero.
func (n *Node) SetWidth(w float32) { n.width = maxf(0, w) }

// SetHeight sets the height; negative values clamp to zero.
func (n *Node) SetHeight(h float32) { n.height = maxf(0, h) }

// SetSize sets width and height.
func (n *Node) SetSize(w, h float32) {
	n.SetWidth(w)
	n.SetHeight(h)
}

// Size returns width and height as a vector.
func (n *Node) Size() Vec2 { return Vec2{X: n.width, Y: n.height} }

// Margin returns the margins.
func (n *Node) Margin() Insets { return n.margin }

// SetMargin sets the margins (top, right, bottom, left).
func (n *Node) SetMargin(m Insets) { n.margin = m }

// Show makes the node visible.
func (n *Node) Show() { n.hidden = false }

// Hide hides the node and its subtree.
func (n *Node) Hide() { n.hidden = true }

// Visible reports whether the node itself is not hidden.
func (n *Node) Visible() bool { return !n.hidden }

// EffectivelyVisible reports whether the node and all its ancestors are
// visible.
func (n *Node) EffectivelyVisible() bool {
	for p := n; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}
	return true
}

// SetClipBounds clips the node and its subtree to its own rectangle shrunk
// by in.
func (n *Node) SetClipBounds(in Insets) {
	n.clip = in
	n.clipped = true
}

// ClearClipBounds removes clipping.
func (n *Node) ClearClipBounds() {
	n.clip = Insets{}
	n.clipped = false
}

// ClipBounds returns the clip insets and whether clipping is enabled.
func (n *Node) ClipBounds() (Insets, bool) { return n.clip, n.clipped }

// ZOffset returns the z offset relative to the parent.
func (n *Node) ZOffset() int { return n.z }

// SetZOffset sets the z offset relative to the parent. Higher values draw
// later and are hit first.
func (n *Node) SetZOffset(z int) { n.z = z }

// Color returns the node tint.
func (n *Node) Color() Color { return n.color }

// SetColor sets the node tint. It multiplies into every descendant.
func (n *Node) SetColor(c Color) { n.color = c }

// FitToChildren sizes the node to the extent of its children.
func (n *Node) FitToChildren() {
	var w, h float32
	for _, c := range n.children {
		var x float32
		if !c.anchorRight && !c.centerX {
			x = c.left + c.margin.Left
		}
		w = maxf(w, x+c.width+c.margin.Right)
		h = maxf(h, c.top+c.margin.Top+c.height+c.margin.Bottom)
	}
	n.width, n.height = w, h
}

// LocalPos returns the node's top-left corner in parent coordinates,
// margins included.
func (n *Node) LocalPos() Vec2 {
	x := n.left + n.margin.Left
	if n.parent != nil {
		switch {
		case n.anchorRight:
			x = n.parent.width - n.width - n.right - n.margin.Right
		case n.centerX:
			x = (n.parent.width-n.width)/2 + n.margin.Left
		}
	}
	return Vec2{X: x, Y: n.top + n.margin.Top}
}

// AbsPos returns the node's top-left corner in scene coordinates.
func (n *Node) AbsPos() Vec2 {
	p := n.LocalPos()
	for a := n.parent; a != nil; a = a.parent {
		p = p.Add(a.LocalPos())
	}
	return p
}

// Rect returns the node's rectangle in scene coordinates.
func (n *Node) Rect() Rect {
	p := n.AbsPos()
	return Rect{X: p.X, Y: p.Y, W: n.width, H: n.height}
}

// RelativePos converts a scene position into node coordinates.
func (n *Node) RelativePos(p Vec2) Vec2 {
	return p.Sub(n.AbsPos())
}
