package skin

import "slices"

// Scene is the root of a node tree. It owns focus, hover and press state
// and turns pointer, keyboard and frame input into node events.
//
// Pointer events go to the topmost interactive node under the pointer
// (a node is interactive once any pointer handler is bound). A node that
// receives MouseDown captures MouseMove and MouseUp until the button is
// released. Keyboard and text events go to the focused node.
type Scene struct {
	root *Node

	focused *Node
	hovered *Node
	pressed *Node

	pointer    Vec2
	hasPointer bool
	now        float64

	debugFocus bool

	entries []sceneEntry // scratch for flatten
}

// sceneEntry is a visible node with its resolved geometry.
type sceneEntry struct {
	node    *Node
	z       int
	rect    Rect
	clip    Rect
	clipped bool
	tint    Color
}

// NewScene creates a scene whose root covers width x height.
func NewScene(width, height float32) *Scene {
	s := &Scene{}
	s.root = &Node{color: White, width: width, height: height, name: "root"}
	s.root.scene = s
	return s
}

// Root returns the root node. Widgets are created under it.
func (s *Scene) Root() *Node { return s.root }

// Resize changes the size of the root node.
func (s *Scene) Resize(width, height float32) {
	s.root.SetSize(width, height)
}

// Time returns the most recent frame time passed to Tick or Feed.
func (s *Scene) Time() float64 { return s.now }

// Focused returns the focused node, or nil.
func (s *Scene) Focused() *Node { return s.focused }

// Hovered returns the interactive node under the pointer, or nil.
func (s *Scene) Hovered() *Node { return s.hovered }

// Pressed returns the node capturing the pointer, or nil.
func (s *Scene) Pressed() *Node { return s.pressed }

// SetDebugFocus draws an outline around the focused node when enabled.
func (s *Scene) SetDebugFocus(on bool) { s.debugFocus = on }

// SetFocus moves focus to n, delivering Blur to the old node before Focus
// to the new one. A nil node clears focus. Nodes outside this scene are
// ignored.
func (s *Scene) SetFocus(n *Node) {
	if n == s.focused {
		return
	}
	if n != nil && n.Scene() != s {
		return
	}

	old := s.focused
	s.focused = n
	if verbose() {
		sceneLogger.Debug("focus changed", "from", nodeLabel(old), "to", nodeLabel(n))
	}

	old.emit(Event{Kind: EventBlur})
	// A blur handler may have moved focus elsewhere.
	if s.focused == n {
		n.emit(Event{Kind: EventFocus})
	}
}

// MouseMove moves the pointer to p.
func (s *Scene) MouseMove(p Vec2) {
	s.pointer, s.hasPointer = p, true
	hit := s.HitTest(p)
	s.updateHover(hit)

	target := hit
	if s.pressed != nil {
		target = s.pressed
	}
	target.emit(Event{Kind: EventMouseMove, Coordinates: p})
}

// MouseDown presses the primary button at p.
func (s *Scene) MouseDown(p Vec2) {
	s.pointer, s.hasPointer = p, true
	hit := s.HitTest(p)
	s.updateHover(hit)

	if s.focused != nil && (hit == nil || !s.focused.IsAncestorOf(hit)) {
		s.SetFocus(nil)
	}

	s.pressed = hit
	hit.emit(Event{Kind: EventMouseDown, Coordinates: p})
}

// MouseUp releases the primary button at p. The pressed node receives
// MouseUp, then Click if the pointer is still over it.
func (s *Scene) MouseUp(p Vec2) {
	s.pointer, s.hasPointer = p, true
	target := s.pressed
	s.pressed = nil
	if target == nil {
		return
	}

	target.emit(Event{Kind: EventMouseUp, Coordinates: p})
	if target.Scene() == s && s.HitTest(p) == target {
		target.emit(Event{Kind: EventClick, Coordinates: p})
	}
	s.updateHover(s.HitTest(p))
}

// KeyDown delivers a key press to the focused node.
func (s *Scene) KeyDown(k Key, ctrl bool) {
	s.focused.emit(Event{Kind: EventKeyDown, Key: k, Ctrl: ctrl})
}

// KeyRepeat delivers an auto-repeat of a held key to the focused node.
func (s *Scene) KeyRepeat(k Key, ctrl bool) {
	s.focused.emit(Event{Kind: EventKeyRepeat, Key: k, Ctrl: ctrl})
}

// TextInput delivers typed text to the focused node.
func (s *Scene) TextInput(text string) {
	if text == "" {
		return
	}
	s.focused.emit(Event{Kind: EventTextInput, Text: text})
}

// Tick records the frame time and delivers it to every visible node with
// a tick handler, in tree order.
func (s *Scene) Tick(now float64) {
	s.now = now
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.hidden {
			return
		}
		n.emit(Event{Kind: EventTick, Time: now})
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(s.root)
}

// Feed translates one frame of polled input into events and then ticks the
// scene with now.
func (s *Scene) Feed(in *InputState, now float64) {
	if in == nil {
		s.Tick(now)
		return
	}
	s.now = now

	p := Vec2{X: in.MouseX, Y: in.MouseY}
	if !s.hasPointer || p != s.pointer {
		s.MouseMove(p)
	}
	if in.MouseClicked(MouseButtonLeft) {
		s.MouseDown(p)
	}
	if in.MouseReleased(MouseButtonLeft) {
		s.MouseUp(p)
	}

	for k := KeyNone + 1; k < KeyCount; k++ {
		switch {
		case in.KeyPressed(k):
			s.KeyDown(k, in.ModCtrl)
		case in.KeyRepeating(k):
			s.KeyRepeat(k, in.ModCtrl)
		}
	}
	if len(in.InputChars) > 0 && !in.ModCtrl {
		s.TextInput(string(in.InputChars))
	}

	s.Tick(now)
}

// HitTest returns the topmost visible interactive node containing p,
// honouring clip bounds, or nil.
func (s *Scene) HitTest(p Vec2) *Node {
	entries := s.flatten()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !e.node.interactive() || !e.rect.Contains(p) {
			continue
		}
		if e.clipped && !e.clip.Contains(p) {
			continue
		}
		return e.node
	}
	return nil
}

// updateHover delivers MouseOut and MouseOver when the hovered node changes.
func (s *Scene) updateHover(hit *Node) {
	if hit == s.hovered {
		return
	}
	old := s.hovered
	s.hovered = hit
	old.emit(Event{Kind: EventMouseOut, Coordinates: s.pointer})
	hit.emit(Event{Kind: EventMouseOver, Coordinates: s.pointer})
}

// forget drops references into a subtree that was detached from the tree.
func (s *Scene) forget(n *Node) {
	if s.focused != nil && n.IsAncestorOf(s.focused) {
		s.focused = nil
	}
	if s.hovered != nil && n.IsAncestorOf(s.hovered) {
		s.hovered = nil
	}
	if s.pressed != nil && n.IsAncestorOf(s.pressed) {
		s.pressed = nil
	}
}

// flatten lists the visible nodes in draw order: ascending accumulated z,
// tree order within equal z.
func (s *Scene) flatten() []sceneEntry {
	s.entries = s.entries[:0]
	var walk func(n *Node, origin Vec2, z int, clip Rect, clipped bool, tint Color)
	walk = func(n *Node, origin Vec2, z int, clip Rect, clipped bool, tint Color) {
		if n.hidden {
			return
		}
		pos := origin
		if n != s.root {
			pos = origin.Add(n.LocalPos())
		}
		z += n.z
		tint = tint.Mul(n.color)
		rect := Rect{X: pos.X, Y: pos.Y, W: n.width, H: n.height}
		if n.clipped {
			r := rect.Inset(n.clip)
			if clipped {
				clip = clip.Intersect(r)
			} else {
				clip, clipped = r, true
			}
		}
		s.entries = append(s.entries, sceneEntry{node: n, z: z, rect: rect, clip: clip, clipped: clipped, tint: tint})
		for _, c := range n.children {
			walk(c, pos, z, clip, clipped, tint)
		}
	}
	walk(s.root, s.root.LocalPos(), 0, Rect{}, false, White)

	slices.SortStableFunc(s.entries, func(a, b sceneEntry) int {
		return a.z - b.z
	})
	return s.entries
}

func nodeLabel(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.name != "" {
		return n.name
	}
	return "node"
}
