package skin

import "reflect"

// Selectbox textures.
const (
	texSelectLeft      = "Selectbox_Left"
	texSelectMid       = "Selectbox"
	texSelectRight     = "Selectbox_Right"
	texSelectOpenRight = "SelectboxOpen_Right"
	texSelectDivider   = "SelectdropDivider"
	selectDropPrefix   = "Selectdrop_"
)

const defaultSelectPlaceholder = "Select an option .."

// SelectItem is one option of a Selectbox. IDs need not be unique; the
// first match wins.
type SelectItem[K comparable] struct {
	ID    K
	Label string
}

// Selectbox shows the label of the selected option and opens a drop list
// of all options when clicked. The selection may be empty, or may name an
// id that is not in the list; both show the placeholder at reduced
// opacity.
//
// Observers receive (selectbox, id) after a row is picked and the drop has
// closed, and on SetValue.
type Selectbox[K comparable] struct {
	node *Node

	bgLeft, bgMid, bgRight *Sprite
	labelBox               *Node
	label                  *Label
	drop                   *Selectdrop[K]

	items       []SelectItem[K]
	selected    K
	hasSelected bool
	open        bool
	placeholder string

	style     Style
	callbacks Callbacks[K]
}

// NewSelectbox creates a select box over items.
//
// Options: WithWidth (default 200), WithSelected, WithPlaceholder,
// WithFont, WithStyle.
func NewSelectbox[K comparable](parent *Node, items []SelectItem[K], opts ...Option) *Selectbox[K] {
	o := applyOptions(opts)
	width := GetOpt(o, OptWidth)
	if !HasOpt(o, OptWidth) {
		width = 200
	}
	placeholder := defaultSelectPlaceholder
	if HasOpt(o, OptPlaceholder) {
		placeholder = GetOpt(o, OptPlaceholder)
	}

	sb := &Selectbox[K]{
		node:        NewNodeRect(parent, 0, 0, width+4, 0),
		items:       append([]SelectItem[K](nil), items...),
		placeholder: placeholder,
		style:       GetOpt(o, OptStyle),
	}
	sb.node.SetName("selectbox")
	// The skin has a 2px border on the left.
	sb.node.SetMargin(Insets{Left: -2})

	sb.bgLeft = NewSprite(sb.node, texSelectLeft)
	sb.bgMid = NewSprite(sb.node, texSelectMid)
	sb.bgRight = NewSprite(sb.node, texSelectRight)
	sb.bgMid.SetWidth(sb.node.Width() - sb.bgLeft.Width() - sb.bgRight.Width())
	sb.bgMid.SetLeft(sb.bgLeft.Width())
	sb.bgRight.SetLeft(sb.bgMid.Left() + sb.bgMid.Width())
	sb.bgRight.SetZOffset(5)

	sb.labelBox = NewNodeRect(sb.node, 10, 6, width-20-sb.bgRight.Width(), sb.bgMid.Height()-6)
	sb.labelBox.SetClipBounds(Insets{})
	sb.label = NewLabel(sb.labelBox, placeholder, opts...)

	sb.bgRight.Bind(EventMouseOver, sb.onArrowOver)
	sb.bgRight.Bind(EventMouseOut, sb.onArrowOut)
	sb.bgRight.Bind(EventClick, sb.onClick)

	sb.node.FitToChildren()

	sb.drop = newSelectdrop(sb, width, opts)
	sb.drop.node.SetTop(sb.bgMid.Height() - 7)
	sb.drop.node.SetZOffset(10)
	sb.drop.node.Hide()

	sb.node.Bind(EventClick, sb.onClick)
	sb.node.Bind(EventMouseDown, sb.onMouseDown)
	sb.node.Bind(EventMouseUp, sb.onMouseUp)
	sb.node.Bind(EventBlur, sb.onBlur)

	if HasOpt(o, OptSelected) {
		raw := GetOpt(o, OptSelected)
		if sel, ok := selectedAs[K](raw); ok {
			sb.selected, sb.hasSelected = sel, true
		} else {
			widgetLogger.Warn("selectbox: initial selection does not match the id type",
				"selected", raw, "type", reflect.TypeFor[K]().String())
		}
	}
	sb.refreshLabel()
	return sb
}

// Node returns the select box node.
func (sb *Selectbox[K]) Node() *Node { return sb.node }

// Callbacks returns the observer list.
func (sb *Selectbox[K]) Callbacks() *Callbacks[K] { return &sb.callbacks }

// OnChange registers an observer and returns its handle.
func (sb *Selectbox[K]) OnChange(fn func(source Widget, id K)) *Callback[K] {
	return sb.callbacks.OnChange(fn)
}

// Value returns the selected id and whether there is a selection.
func (sb *Selectbox[K]) Value() (K, bool) { return sb.selected, sb.hasSelected }

// SetValue selects id and notifies observers once. An id that matches no
// item is kept and shows the placeholder.
func (sb *Selectbox[K]) SetValue(id K) {
	sb.selected, sb.hasSelected = id, true
	sb.refreshLabel()
	sb.callbacks.Notify(sb, id)
}

// ClearValue returns to the none-selected state without notifying.
func (sb *Selectbox[K]) ClearValue() {
	var zero K
	sb.selected, sb.hasSelected = zero, false
	sb.refreshLabel()
}

// Items returns a copy of the options.
func (sb *Selectbox[K]) Items() []SelectItem[K] {
	return append([]SelectItem[K](nil), sb.items...)
}

// SetItems replaces the options, refreshes the label and re-renders an
// open drop.
func (sb *Selectbox[K]) SetItems(items []SelectItem[K]) {
	sb.items = append(sb.items[:0:0], items...)
	sb.refreshLabel()
	if sb.open {
		sb.drop.renderOptions(sb.items)
	}
}

// Label returns the label showing the selection.
func (sb *Selectbox[K]) Label() *Label { return sb.label }

// ShowsPlaceholder reports whether the label shows the placeholder.
func (sb *Selectbox[K]) ShowsPlaceholder() bool {
	_, ok := sb.lookup()
	return !ok
}

// Drop returns the drop list.
func (sb *Selectbox[K]) Drop() *Selectdrop[K] { return sb.drop }

// IsOpen reports whether the drop list is shown.
func (sb *Selectbox[K]) IsOpen() bool { return sb.open }

// Open renders the options, shows the drop list and takes focus. It does
// nothing when already open.
func (sb *Selectbox[K]) Open() {
	if sb.open {
		return
	}
	sb.drop.renderOptions(sb.items)
	sb.drop.node.Show()
	sb.node.RequestFocus()
	sb.open = true
}

// Close hides the drop list. It does nothing when already closed.
func (sb *Selectbox[K]) Close() {
	if !sb.open {
		return
	}
	sb.drop.node.Hide()
	sb.open = false
}

func (sb *Selectbox[K]) lookup() (SelectItem[K], bool) {
	if !sb.hasSelected {
		return SelectItem[K]{}, false
	}
	for _, it := range sb.items {
		if it.ID == sb.selected {
			return it, true
		}
	}
	return SelectItem[K]{}, false
}

func (sb *Selectbox[K]) refreshLabel() {
	ln := sb.label.Node()
	if it, ok := sb.lookup(); ok {
		sb.label.SetText(it.Label)
		ln.SetColor(White)
		return
	}
	if sb.hasSelected {
		widgetLogger.Debug("selectbox id not in options", "id", sb.selected, "options", len(sb.items))
	}
	sb.label.SetText(sb.placeholder)
	ln.SetColor(White.WithAlpha(sb.style.PlaceholderAlpha))
}

// selectOption is the row click path: select, relabel, close, then one
// notification.
func (sb *Selectbox[K]) selectOption(id K) {
	sb.selected, sb.hasSelected = id, true
	sb.refreshLabel()
	sb.Close()
	sb.callbacks.Notify(sb, id)
}

func (sb *Selectbox[K]) onClick(Event) {
	sb.node.RequestFocus()
	if sb.open {
		sb.Close()
	} else {
		sb.Open()
	}
}

func (sb *Selectbox[K]) onMouseDown(Event) {
	sb.bgLeft.SetColor(sb.style.PressTint)
	sb.bgMid.SetColor(sb.style.PressTint)
}

func (sb *Selectbox[K]) onMouseUp(Event) {
	sb.bgLeft.SetColor(White)
	sb.bgMid.SetColor(White)
}

func (sb *Selectbox[K]) onArrowOver(Event) { sb.bgRight.SetColor(sb.style.HoverTint) }

func (sb *Selectbox[K]) onArrowOut(Event) { sb.bgRight.SetColor(White) }

func (sb *Selectbox[K]) onBlur(Event) { sb.Close() }

// Selectdrop is the popup list of a Selectbox: a corner layout background,
// an "open" arrow cap over the box, and one row per option.
type Selectdrop[K comparable] struct {
	owner     *Selectbox[K]
	node      *Node
	layout    *CornerLayout
	opener    *Sprite
	container *Node
	rows      []*Sprite
	style     Style
	opts      []Option
}

func newSelectdrop[K comparable](owner *Selectbox[K], width float32, opts []Option) *Selectdrop[K] {
	d := &Selectdrop[K]{
		owner: owner,
		node:  NewNodeRect(owner.node, 0, 0, width, 1),
		style: owner.style,
		opts:  opts,
	}
	d.node.SetName("selectdrop")

	d.layout = NewCornerLayout(d.node, selectDropPrefix, width+10, 100)
	d.layout.Node().SetMargin(Insets{Left: -3})

	d.opener = NewSprite(d.node, texSelectOpenRight)
	d.opener.SetRight(-4)
	d.opener.SetTop(-25)
	d.opener.SetZOffset(3)

	d.container = NewNodeRect(d.layout.Node(), 5, 0, width, 0)
	d.container.SetClipBounds(Insets{})
	return d
}

// Node returns the drop node.
func (d *Selectdrop[K]) Node() *Node { return d.node }

// Layout returns the background layout.
func (d *Selectdrop[K]) Layout() *CornerLayout { return d.layout }

// Rows returns the row backgrounds, which receive pointer events, in
// option order.
func (d *Selectdrop[K]) Rows() []*Sprite {
	return append([]*Sprite(nil), d.rows...)
}

// renderOptions rebuilds the rows. At most DropMaxVisible rows fit the
// drop; later rows are clipped.
func (d *Selectdrop[K]) renderOptions(items []SelectItem[K]) {
	const offsetTop = 6
	visible := float32(min(DropMaxVisible, len(items)))
	d.layout.Resize(d.layout.Node().Width(), visible*DropRowHeight+offsetTop+11)
	d.container.SetHeight(visible*DropRowHeight + offsetTop + 1)
	d.container.RemoveAllChildren()
	d.rows = d.rows[:0]

	w := d.container.Width()
	y := float32(offsetTop)
	for _, it := range items {
		row := NewNodeRect(d.container, 0, y, w-30, DropRowHeight)

		bg := NewSprite(row, texBlank)
		bg.SetSize(w, DropRowHeight)
		bg.SetColor(Transparent)
		bg.Bind(EventMouseOver, d.onRowOver)
		bg.Bind(EventMouseOut, d.onRowOut)
		id := it.ID
		bg.Bind(EventClick, func(Event) { d.owner.selectOption(id) })
		d.rows = append(d.rows, bg)

		label := NewLabel(row, it.Label, d.opts...)
		label.Node().SetPos(8, 5)

		divider := NewSprite(row, texSelectDivider)
		divider.SetTop(DropRowHeight - divider.Height()/2)
		divider.SetWidth(w)

		y += DropRowHeight
	}
}

func (d *Selectdrop[K]) onRowOver(e Event) { e.Sender.SetColor(d.style.RowHoverColor) }

func (d *Selectdrop[K]) onRowOut(e Event) { e.Sender.SetColor(Transparent) }

// selectedAs converts the value given to WithSelected to the id type K.
// Untyped constants arrive as int, float64 or string, so numeric values
// convert to any numeric K when the conversion round-trips.
func selectedAs[K comparable](v any) (K, bool) {
	var zero K
	if k, ok := v.(K); ok {
		return k, true
	}
	rv := reflect.ValueOf(v)
	kt := reflect.TypeFor[K]()
	if !rv.IsValid() || kindClass(rv.Kind()) == 0 || kindClass(rv.Kind()) != kindClass(kt.Kind()) {
		return zero, false
	}
	if !rv.CanConvert(kt) {
		return zero, false
	}
	if rv.CanInt() && rv.Int() < 0 && kt.Kind() >= reflect.Uint && kt.Kind() <= reflect.Uintptr {
		return zero, false
	}
	out := rv.Convert(kt)
	if out.Convert(rv.Type()).Interface() != v {
		return zero, false
	}
	return out.Interface().(K), true
}

// kindClass groups kinds that convert between each other without changing
// meaning: 1 for numbers, 2 for strings, 0 otherwise.
func kindClass(k reflect.Kind) int {
	switch {
	case k >= reflect.Int && k <= reflect.Float64:
		return 1
	case k == reflect.String:
		return 2
	}
	return 0
}
