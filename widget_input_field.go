package skin

import "math"

// InputField textures.
const (
	texInputLeft  = "InputField_Left"
	texInputMid   = "InputField"
	texInputRight = "InputField_Right"
	texBlank      = "blank"
)

// Cursor geometry inside the text area.
const (
	inputCursorWidth  float32 = 2
	inputCursorHeight float32 = 15
)

// InputField is a single-line text entry. Clicking focuses it; while
// focused it accepts typed text, backspace, delete, the arrow keys,
// home/end, and Ctrl+C / Ctrl+V through the clipboard provider.
//
// Observers receive (field, text) whenever the text changes. Pure cursor
// movement does not notify.
type InputField struct {
	node *Node

	bgLeft, bgMid, bgRight *Sprite

	content     *Node // clipped text area
	scroller    *Node // scrolled horizontally to keep the cursor visible
	label       *Label
	cursor      *Sprite
	placeholder *Label

	buf       *TextBuffer
	tickStart float64
	style     Style
	callbacks Callbacks[string]
}

// NewInputField creates a text input.
//
// Options: WithWidth (default 200), WithText, WithPlaceholder, WithFont,
// WithStyle.
func NewInputField(parent *Node, opts ...Option) *InputField {
	o := applyOptions(opts)
	width := GetOpt(o, OptWidth)
	if !HasOpt(o, OptWidth) {
		width = 200
	}
	style := GetOpt(o, OptStyle)

	f := &InputField{
		node:  NewNodeRect(parent, 0, 0, width, 0),
		buf:   NewTextBuffer(GetOpt(o, OptText)),
		style: style,
	}
	f.node.SetName("input-field")

	f.bgLeft = NewSprite(f.node, texInputLeft)
	f.bgMid = NewSprite(f.node, texInputMid)
	f.bgRight = NewSprite(f.node, texInputRight)
	f.bgMid.SetWidth(width - f.bgLeft.Width() - f.bgRight.Width())
	f.bgMid.SetLeft(f.bgLeft.Width())
	f.bgRight.SetLeft(f.bgMid.Left() + f.bgMid.Width())

	f.content = NewNodeRect(f.node, 0, 0, width-16, f.bgMid.Height()-10)
	f.content.SetMargin(Insets{Top: 5, Right: 8, Bottom: 5, Left: 8})
	f.content.SetClipBounds(Insets{})

	f.scroller = NewNode(f.content)
	f.label = NewLabel(f.scroller, "", opts...)

	f.cursor = NewSprite(f.scroller, texBlank)
	f.cursor.SetSize(inputCursorWidth, inputCursorHeight)
	f.cursor.SetColor(style.CursorColor)
	f.cursor.SetMargin(Insets{Top: 3})
	f.cursor.SetZOffset(20)
	f.cursor.Hide()

	phOpts := append(append([]Option{}, opts...), WithoutShadow())
	f.placeholder = NewLabel(f.content, GetOpt(o, OptPlaceholder), phOpts...)
	f.placeholder.Node().SetColor(White.WithAlpha(style.PlaceholderAlpha))
	if f.buf.Length() > 0 {
		f.placeholder.Node().Hide()
	}

	f.node.FitToChildren()
	f.node.SetWidth(width)

	f.node.Bind(EventClick, f.onClick)
	f.node.Bind(EventMouseDown, f.onMouseDown)
	f.node.Bind(EventFocus, f.onFocus)
	f.node.Bind(EventBlur, f.onBlur)
	f.node.Bind(EventKeyDown, f.onKey)
	f.node.Bind(EventKeyRepeat, f.onKey)
	f.node.Bind(EventTextInput, f.onTextInput)
	f.node.Bind(EventTick, f.onTick)

	f.renderText()
	return f
}

// Node returns the field node.
func (f *InputField) Node() *Node { return f.node }

// Callbacks returns the observer list.
func (f *InputField) Callbacks() *Callbacks[string] { return &f.callbacks }

// OnChange registers an observer and returns its handle.
func (f *InputField) OnChange(fn func(source Widget, text string)) *Callback[string] {
	return f.callbacks.OnChange(fn)
}

// Value returns the text.
func (f *InputField) Value() string { return f.buf.Text() }

// SetValue replaces the text and notifies observers, even when the text
// is unchanged.
func (f *InputField) SetValue(s string) {
	f.buf.SetText(s)
	f.callbacks.Notify(f, f.buf.Text())
	f.renderText()
}

// Cursor returns the cursor position in runes.
func (f *InputField) Cursor() int { return f.buf.Cursor() }

// SetCursor moves the cursor, clamped to the text.
func (f *InputField) SetCursor(pos int) {
	f.setCursor(pos)
	f.renderText()
}

// Insert inserts text at the cursor as if typed.
func (f *InputField) Insert(text string) {
	if f.buf.Insert(text) {
		f.resetCursorTick()
		f.callbacks.Notify(f, f.buf.Text())
	}
	f.renderText()
}

// Buffer returns the underlying text buffer. Editing it directly does not
// notify observers or update the display.
func (f *InputField) Buffer() *TextBuffer { return f.buf }

// CursorVisible reports whether the blinking cursor is currently drawn.
func (f *InputField) CursorVisible() bool {
	return f.cursor.Visible() && f.cursor.Color().A > 0
}

// ScrollOffset returns the horizontal scroll of the text, which is never
// positive.
func (f *InputField) ScrollOffset() float32 { return f.scroller.Left() }

// VisibleWidth returns the width of the clipped text area.
func (f *InputField) VisibleWidth() float32 { return f.content.Width() }

// PlaceholderVisible reports whether the placeholder is shown.
func (f *InputField) PlaceholderVisible() bool { return f.placeholder.Node().Visible() }

// Label returns the label holding the text.
func (f *InputField) Label() *Label { return f.label }

func (f *InputField) setCursor(pos int) {
	f.buf.SetCursor(pos)
	f.resetCursorTick()
}

func (f *InputField) resetCursorTick() {
	if sc := f.node.Scene(); sc != nil {
		f.tickStart = sc.Time()
	}
}

func (f *InputField) onClick(Event) { f.node.RequestFocus() }

func (f *InputField) onMouseDown(e Event) {
	t := f.label.TextNode()
	x := t.RelativePos(e.Coordinates).X
	f.setCursor(t.CharIndex(x))
	f.renderText()
}

func (f *InputField) onFocus(Event) {
	f.cursor.Show()
	f.placeholder.Node().Hide()
	f.resetCursorTick()
	f.setBackgroundTint(f.style.FocusTint)
}

func (f *InputField) onBlur(Event) {
	f.cursor.Hide()
	if f.buf.Length() == 0 {
		f.placeholder.Node().Show()
	}
	f.setBackgroundTint(White)
}

func (f *InputField) setBackgroundTint(c Color) {
	f.bgLeft.SetColor(c)
	f.bgMid.SetColor(c)
	f.bgRight.SetColor(c)
}

func (f *InputField) onKey(e Event) {
	changed := false
	switch e.Key {
	case KeyBackspace:
		changed = f.buf.Backspace()
		f.resetCursorTick()
	case KeyDelete:
		changed = f.buf.DeleteForward()
		f.resetCursorTick()
	case KeyLeft:
		f.setCursor(f.buf.Cursor() - 1)
	case KeyRight:
		f.setCursor(f.buf.Cursor() + 1)
	case KeyHome:
		f.setCursor(0)
	case KeyEnd:
		f.setCursor(f.buf.Length())
	case KeyV:
		if !e.Ctrl {
			return
		}
		changed = f.buf.Insert(ClipboardGetText())
		f.resetCursorTick()
	case KeyC:
		if !e.Ctrl {
			return
		}
		ClipboardSetText(f.buf.Text())
		return
	default:
		return
	}
	if changed {
		f.callbacks.Notify(f, f.buf.Text())
	}
	f.renderText()
}

func (f *InputField) onTextInput(e Event) {
	f.Insert(e.Text)
}

// onTick drives the blink: visible during the first half of each period
// since focus or the last cursor move.
func (f *InputField) onTick(e Event) {
	if !f.cursor.Visible() {
		return
	}
	rate := f.style.CursorBlinkRate
	if rate <= 0 {
		f.cursor.SetColor(f.style.CursorColor)
		return
	}
	elapsed := math.Mod(e.Time-f.tickStart, rate)
	if elapsed < 0 {
		elapsed += rate
	}
	if elapsed < rate/2 {
		f.cursor.SetColor(f.style.CursorColor)
	} else {
		f.cursor.SetColor(Transparent)
	}
}

// renderText updates the label, places the cursor after its character and
// scrolls so the cursor stays inside the text area.
func (f *InputField) renderText() {
	f.label.SetText(f.buf.Text())
	if f.buf.Length() > 0 || f.node.HasFocus() {
		f.placeholder.Node().Hide()
	} else {
		f.placeholder.Node().Show()
	}

	t := f.label.TextNode()
	cursorX := f.label.Node().Left() + t.CharPos(f.buf.Cursor()) + 1
	f.cursor.SetLeft(cursorX)

	visible := f.content.Width()
	scroll := f.scroller.Left()
	if scroll+cursorX+inputCursorWidth > visible {
		scroll = visible - cursorX - inputCursorWidth
	}
	if scroll+cursorX < 0 {
		scroll = -cursorX
	}
	f.scroller.SetLeft(min(0, scroll))
}
