package skin

// Radiobox textures.
const (
	texRadioDefault = "Radiobox_Default"
	texRadioActive  = "Radiobox_Active"
)

// RadioGroup links radioboxes so that at most one is active.
// It holds non-owning references; members deregister when destroyed.
type RadioGroup struct {
	boxes    []*Radiobox
	selected *Radiobox
}

// NewRadioGroup creates an empty group.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{}
}

// Register adds b to the group. Registering twice has no effect.
func (g *RadioGroup) Register(b *Radiobox) {
	if b == nil || g.indexOf(b) >= 0 {
		return
	}
	g.boxes = append(g.boxes, b)
}

// Unregister removes b. If b was active the group has no selection.
func (g *RadioGroup) Unregister(b *Radiobox) {
	i := g.indexOf(b)
	if i < 0 {
		return
	}
	g.boxes = append(g.boxes[:i:i], g.boxes[i+1:]...)
	if g.selected == b {
		g.selected = nil
	}
}

func (g *RadioGroup) indexOf(b *Radiobox) int {
	for i, m := range g.boxes {
		if m == b {
			return i
		}
	}
	return -1
}

// Boxes returns the members in registration order.
func (g *RadioGroup) Boxes() []*Radiobox {
	out := make([]*Radiobox, len(g.boxes))
	copy(out, g.boxes)
	return out
}

// SetActive activates box and deactivates every other member. All members
// are updated before any observer runs; then every member notifies its own
// observers with (box, active) in registration order.
func (g *RadioGroup) SetActive(box *Radiobox) {
	if box != nil {
		g.Register(box)
	}
	members := g.Boxes()
	for _, b := range members {
		b.active = b == box
		b.updateSprite()
	}
	g.selected = box

	for _, b := range members {
		b.callbacks.Notify(b, b.active)
	}
	widgetLogger.Debug("radio group selection", "value", g.ActiveValue(), "members", len(members))
}

// ActiveBox returns the active member, or nil.
func (g *RadioGroup) ActiveBox() *Radiobox { return g.selected }

// ActiveValue returns the active member's value, or nil.
func (g *RadioGroup) ActiveValue() any {
	if g.selected == nil {
		return nil
	}
	return g.selected.Value()
}

// Radiobox is a selectable box carrying an opaque value. Inside a group,
// selecting it deactivates the other members; without a group it toggles.
// Observers receive (radiobox, active).
type Radiobox struct {
	node      *Node
	sprite    *Sprite
	group     *RadioGroup
	value     any
	active    bool
	style     Style
	callbacks Callbacks[bool]
}

// NewRadiobox creates a radiobox and registers it with group, which may be
// nil.
//
// Options: WithStyle.
func NewRadiobox(parent *Node, group *RadioGroup, value any, opts ...Option) *Radiobox {
	o := applyOptions(opts)
	b := &Radiobox{
		node:  NewNode(parent),
		group: group,
		value: value,
		style: GetOpt(o, OptStyle),
	}
	b.node.SetName("radiobox")
	b.sprite = NewSprite(b.node, texRadioDefault)
	b.node.FitToChildren()
	if group != nil {
		group.Register(b)
	}

	b.node.Bind(EventClick, b.onClick)
	b.node.Bind(EventMouseDown, b.onMouseDown)
	b.node.Bind(EventMouseUp, b.onMouseUp)
	return b
}

// Node returns the radiobox node.
func (b *Radiobox) Node() *Node { return b.node }

// Callbacks returns the observer list.
func (b *Radiobox) Callbacks() *Callbacks[bool] { return &b.callbacks }

// OnChange registers an observer and returns its handle.
func (b *Radiobox) OnChange(fn func(source Widget, active bool)) *Callback[bool] {
	return b.callbacks.OnChange(fn)
}

// Value returns the value the box stands for.
func (b *Radiobox) Value() any { return b.value }

// Active reports whether the box is selected.
func (b *Radiobox) Active() bool { return b.active }

// Group returns the group, or nil.
func (b *Radiobox) Group() *RadioGroup { return b.group }

// Select activates the box through its group, or toggles it when ungrouped.
func (b *Radiobox) Select() {
	if b.group != nil {
		b.group.SetActive(b)
		return
	}
	b.active = !b.active
	b.updateSprite()
	b.callbacks.Notify(b, b.active)
}

// Destroy leaves the group and detaches the node.
func (b *Radiobox) Destroy() {
	if b.group != nil {
		b.group.Unregister(b)
		b.group = nil
	}
	b.node.Remove()
}

func (b *Radiobox) onClick(Event) { b.Select() }

func (b *Radiobox) onMouseDown(Event) { b.node.SetColor(b.style.PressTint) }

func (b *Radiobox) onMouseUp(Event) { b.node.SetColor(White) }

func (b *Radiobox) updateSprite() {
	tex := texRadioDefault
	if b.active {
		tex = texRadioActive
	}
	b.sprite.SetTexture(tex, false)
}

// LabeledRadiobox is a radiobox followed by a label. Pointer events on the
// label act on the radiobox.
type LabeledRadiobox struct {
	node      *Node
	radiobox  *Radiobox
	label     *Label
	callbacks Callbacks[bool]
}

// NewLabeledRadiobox creates a radiobox with a label.
//
// Options: WithStyle, WithFont.
func NewLabeledRadiobox(parent *Node, group *RadioGroup, value any, text string, opts ...Option) *LabeledRadiobox {
	lr := &LabeledRadiobox{node: NewNode(parent)}
	lr.node.SetName("labeled-radiobox")
	lr.radiobox = NewRadiobox(lr.node, group, value, opts...)
	lr.label = NewLabel(lr.node, text, opts...)

	ln := lr.label.Node()
	ln.Bind(EventClick, lr.radiobox.onClick)
	ln.Bind(EventMouseDown, lr.radiobox.onMouseDown)
	ln.Bind(EventMouseUp, lr.radiobox.onMouseUp)
	lr.radiobox.callbacks.Add(NewCallback(lr.callbacks.Notify))

	rb := lr.radiobox.Node()
	ln.SetLeft(rb.Width() + LabelGap)
	ln.SetTop(ln.Height() - rb.Height())
	lr.node.FitToChildren()
	return lr
}

// Node returns the container node.
func (lr *LabeledRadiobox) Node() *Node { return lr.node }

// Radiobox returns the inner radiobox.
func (lr *LabeledRadiobox) Radiobox() *Radiobox { return lr.radiobox }

// Label returns the label.
func (lr *LabeledRadiobox) Label() *Label { return lr.label }

// Callbacks returns the observer list.
func (lr *LabeledRadiobox) Callbacks() *Callbacks[bool] { return &lr.callbacks }

// OnChange registers an observer and returns its handle.
func (lr *LabeledRadiobox) OnChange(fn func(source Widget, active bool)) *Callback[bool] {
	return lr.callbacks.OnChange(fn)
}

// Active reports whether the radiobox is selected.
func (lr *LabeledRadiobox) Active() bool { return lr.radiobox.Active() }

// Destroy leaves the group and detaches the container.
func (lr *LabeledRadiobox) Destroy() {
	if g := lr.radiobox.group; g != nil {
		g.Unregister(lr.radiobox)
		lr.radiobox.group = nil
	}
	lr.node.Remove()
}
