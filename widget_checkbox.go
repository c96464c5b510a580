package skin

// Checkbox textures.
const (
	texCheckboxDefault = "Checkbox_Default"
	texCheckboxChecked = "Checkbox_Checked"
)

// Checkbox is a two-state box toggled by clicking.
// Observers receive (checkbox, checked).
type Checkbox struct {
	node      *Node
	sprite    *Sprite
	checked   bool
	style     Style
	callbacks Callbacks[bool]
}

// NewCheckbox creates a checkbox.
//
// Options: WithStyle.
func NewCheckbox(parent *Node, checked bool, opts ...Option) *Checkbox {
	o := applyOptions(opts)
	c := &Checkbox{
		node:    NewNode(parent),
		checked: checked,
		style:   GetOpt(o, OptStyle),
	}
	c.node.SetName("checkbox")
	c.sprite = NewSprite(c.node, texCheckboxDefault)
	c.node.FitToChildren()
	c.updateSprite()

	c.node.Bind(EventClick, c.onClick)
	c.node.Bind(EventMouseDown, c.onMouseDown)
	c.node.Bind(EventMouseUp, c.onMouseUp)
	return c
}

// Node returns the checkbox node.
func (c *Checkbox) Node() *Node { return c.node }

// Callbacks returns the observer list.
func (c *Checkbox) Callbacks() *Callbacks[bool] { return &c.callbacks }

// OnChange registers an observer and returns its handle.
func (c *Checkbox) OnChange(fn func(source Widget, checked bool)) *Callback[bool] {
	return c.callbacks.OnChange(fn)
}

// Checked reports the state.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the state and notifies observers once.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
	c.updateSprite()
	c.callbacks.Notify(c, c.checked)
}

// Toggle flips the state and notifies observers.
func (c *Checkbox) Toggle() {
	c.SetChecked(!c.checked)
}

func (c *Checkbox) onClick(Event) { c.Toggle() }

func (c *Checkbox) onMouseDown(Event) { c.node.SetColor(c.style.PressTint) }

func (c *Checkbox) onMouseUp(Event) { c.node.SetColor(White) }

func (c *Checkbox) updateSprite() {
	tex := texCheckboxDefault
	if c.checked {
		tex = texCheckboxChecked
	}
	c.sprite.SetTexture(tex, false)
}

// LabeledCheckbox is a checkbox followed by a label. Pointer events on the
// label act on the checkbox. Observers receive the checkbox's
// notifications.
type LabeledCheckbox struct {
	node      *Node
	checkbox  *Checkbox
	label     *Label
	callbacks Callbacks[bool]
}

// NewLabeledCheckbox creates a checkbox with a label.
//
// Options: WithStyle, WithFont.
func NewLabeledCheckbox(parent *Node, checked bool, text string, opts ...Option) *LabeledCheckbox {
	lc := &LabeledCheckbox{node: NewNode(parent)}
	lc.node.SetName("labeled-checkbox")
	lc.checkbox = NewCheckbox(lc.node, checked, opts...)
	lc.label = NewLabel(lc.node, text, opts...)

	ln := lc.label.Node()
	ln.Bind(EventClick, lc.checkbox.onClick)
	ln.Bind(EventMouseDown, lc.checkbox.onMouseDown)
	ln.Bind(EventMouseUp, lc.checkbox.onMouseUp)
	lc.checkbox.callbacks.Add(NewCallback(lc.callbacks.Notify))

	cb := lc.checkbox.Node()
	ln.SetLeft(cb.Width() + LabelGap)
	ln.SetTop(ln.Height() - cb.Height())
	lc.node.FitToChildren()
	return lc
}

// Node returns the container node.
func (lc *LabeledCheckbox) Node() *Node { return lc.node }

// Checkbox returns the inner checkbox.
func (lc *LabeledCheckbox) Checkbox() *Checkbox { return lc.checkbox }

// Label returns the label.
func (lc *LabeledCheckbox) Label() *Label { return lc.label }

// Callbacks returns the observer list.
func (lc *LabeledCheckbox) Callbacks() *Callbacks[bool] { return &lc.callbacks }

// OnChange registers an observer and returns its handle.
func (lc *LabeledCheckbox) OnChange(fn func(source Widget, checked bool)) *Callback[bool] {
	return lc.callbacks.OnChange(fn)
}

// Checked reports the state.
func (lc *LabeledCheckbox) Checked() bool { return lc.checkbox.Checked() }

// SetChecked sets the state and notifies observers once.
func (lc *LabeledCheckbox) SetChecked(checked bool) { lc.checkbox.SetChecked(checked) }
