package skin

import (
	"fmt"
	"math"
	"strconv"
)

// Slider textures.
const (
	texSliderKnob     = "SliderKnob"
	texSliderBgLeft   = "SliderBg_Left"
	texSliderBg       = "SliderBg"
	texSliderBgRight  = "SliderBg_Right"
	texSliderFillLeft = "SliderBgFill_Left"
	texSliderFill     = "SliderBgFill"
)

// Slider maps a horizontal knob position onto a value range.
//
// The knob travels over the effective width, which is the slider width minus
// a side margin of a quarter knob width at each end. Dragging notifies
// observers on every move. While the knob is focused the arrow keys nudge
// it by SliderStep pixels and escape restores the value the last drag
// started from. Observers receive (slider, value).
type Slider struct {
	node  *Node
	knob  *Sprite
	track *Node
	fill  *Node

	bgLeft, bgMid, bgRight *Sprite
	fillLeft, fillMid      *Sprite

	min, max   float64
	sideMargin float32
	effWidth   float32
	current    float64 // knob offset in pixels, in [0, effWidth]

	drag      DragState
	style     Style
	callbacks Callbacks[float64]
}

// NewSlider creates a slider.
//
// Options: WithWidth (default 100), WithRange (default 0..1), WithValue
// (default the middle of the range), WithFilled, WithStyle.
func NewSlider(parent *Node, opts ...Option) *Slider {
	o := applyOptions(opts)
	width := GetOpt(o, OptWidth)
	if !HasOpt(o, OptWidth) {
		width = 100
	}
	rng := GetOpt(o, OptRange)

	s := &Slider{
		node:  NewNodeRect(parent, 0, 0, width, 0),
		min:   rng.Min,
		max:   rng.Max,
		style: GetOpt(o, OptStyle),
	}
	s.node.SetName("slider")

	s.knob = NewSprite(s.node, texSliderKnob)
	s.knob.SetName("slider-knob")
	s.knob.SetZOffset(5)

	s.track = NewNodeRect(s.node, 0, 0, width, 0)
	s.bgLeft = NewSprite(s.track, texSliderBgLeft)
	s.bgRight = NewSprite(s.track, texSliderBgRight)
	s.bgMid = NewSprite(s.track, texSliderBg)
	s.bgMid.SetWidth(width - s.bgLeft.Width() - s.bgRight.Width())
	s.bgMid.SetLeft(s.bgLeft.Width())
	s.bgRight.SetLeft(s.bgMid.Left() + s.bgMid.Width())
	s.track.FitToChildren()
	s.track.SetTop((s.knob.Height()-s.track.Height())/2 - 1)

	s.sideMargin = s.knob.Width() / 4
	s.effWidth = width - 2*s.sideMargin

	if GetOpt(o, OptFilled) {
		s.fill = NewNodeRect(s.node, 0, 0, width, 0)
		s.fillLeft = NewSprite(s.fill, texSliderFillLeft)
		s.fillMid = NewSprite(s.fill, texSliderFill)
		s.fillMid.SetLeft(s.fillLeft.Width())
		s.fill.SetZOffset(3)
		s.fill.SetTop(s.track.Top())
		s.fill.FitToChildren()
	}

	kn := &s.knob.Node
	kn.Bind(EventMouseDown, s.startDrag)
	kn.Bind(EventMouseMove, s.updateDrag)
	kn.Bind(EventMouseUp, s.stopDrag)
	kn.Bind(EventBlur, s.stopDrag)
	kn.Bind(EventKeyDown, s.onKey)
	kn.Bind(EventKeyRepeat, s.onKey)

	value := (s.min + s.max) / 2
	if v := GetOpt(o, OptValue); HasOpt(o, OptValue) && !math.IsNaN(v) {
		value = v
	}
	s.current = s.clampOffset(s.toOffset(value))
	s.drag.StartValue = float32(s.current)
	s.updateKnob()

	s.node.FitToChildren()
	s.node.SetWidth(width)
	return s
}

// Node returns the slider node.
func (s *Slider) Node() *Node { return s.node }

// Knob returns the knob sprite, which receives pointer and key events.
func (s *Slider) Knob() *Sprite { return s.knob }

// Callbacks returns the observer list.
func (s *Slider) Callbacks() *Callbacks[float64] { return &s.callbacks }

// OnChange registers an observer and returns its handle.
func (s *Slider) OnChange(fn func(source Widget, value float64)) *Callback[float64] {
	return s.callbacks.OnChange(fn)
}

// Range returns the value range.
func (s *Slider) Range() (minVal, maxVal float64) { return s.min, s.max }

// EffectiveWidth returns the pixel length the knob travels.
func (s *Slider) EffectiveWidth() float32 { return s.effWidth }

// Offset returns the knob offset in pixels.
func (s *Slider) Offset() float64 { return s.current }

// Dragging reports whether a knob drag is in progress.
func (s *Slider) Dragging() bool { return s.drag.Active }

// Value returns the value for the current knob offset.
func (s *Slider) Value() float64 {
	if s.effWidth <= 0 || s.max == s.min {
		return s.min
	}
	return s.current/float64(s.effWidth)*(s.max-s.min) + s.min
}

// SetValue moves the knob to v, clamped to the range, and notifies
// observers once. NaN is ignored.
func (s *Slider) SetValue(v float64) {
	if math.IsNaN(v) {
		widgetLogger.Warn("slider: ignoring NaN value")
		return
	}
	s.setOffset(s.toOffset(v))
}

func (s *Slider) toOffset(v float64) float64 {
	if s.effWidth <= 0 || s.max == s.min {
		return 0
	}
	return (v - s.min) / (s.max - s.min) * float64(s.effWidth)
}

func (s *Slider) clampOffset(px float64) float64 {
	return max(0, min(float64(s.effWidth), px))
}

// setOffset clamps px, updates the knob and notifies.
func (s *Slider) setOffset(px float64) {
	s.current = s.clampOffset(px)
	s.updateKnob()
	s.callbacks.Notify(s, s.Value())
}

func (s *Slider) updateKnob() {
	cur := float32(s.current)
	s.knob.SetLeft(cur - s.knob.Width()/2 + s.sideMargin)
	if s.fill != nil {
		s.fillMid.SetWidth(cur - s.fillLeft.Width() + s.sideMargin)
	}
}

func (s *Slider) startDrag(e Event) {
	s.knob.RequestFocus()
	if s.drag.Begin(e.Coordinates, float32(s.current)) {
		s.knob.SetColor(s.style.DragTint)
	}
}

func (s *Slider) updateDrag(e Event) {
	if s.drag.Active {
		s.setOffset(float64(s.drag.Value(e.Coordinates)))
	}
}

func (s *Slider) stopDrag(Event) {
	s.drag.End(float32(s.current))
	s.knob.SetColor(White)
}

func (s *Slider) onKey(e Event) {
	switch e.Key {
	case KeyRight:
		s.setOffset(s.current + float64(SliderStep))
	case KeyLeft:
		s.setOffset(s.current - float64(SliderStep))
	case KeyEscape:
		s.setOffset(float64(s.drag.StartValue))
		s.stopDrag(e)
	}
}

// SliderWithLabel is a slider with its formatted value shown to the right.
type SliderWithLabel struct {
	node      *Node
	slider    *Slider
	label     *Label
	precision int
	callbacks Callbacks[float64]
}

// NewSliderWithLabel creates a labelled slider. The slider is narrowed to
// leave DigitWidth pixels per character of the widest value.
//
// Options: as NewSlider, plus WithPrecision (default 2) and WithFont.
func NewSliderWithLabel(parent *Node, opts ...Option) *SliderWithLabel {
	o := applyOptions(opts)
	width := GetOpt(o, OptWidth)
	if !HasOpt(o, OptWidth) {
		width = 100
	}
	rng := GetOpt(o, OptRange)
	precision := max(0, GetOpt(o, OptPrecision))

	chars := max(len(strconv.Itoa(int(rng.Max))), len(strconv.Itoa(int(rng.Min))))
	if precision > 0 {
		chars += 1 + precision
	}

	sl := &SliderWithLabel{
		node:      NewNodeRect(parent, 0, 0, width, 0),
		precision: precision,
	}
	sl.node.SetName("slider-with-label")

	sliderOpts := append(append([]Option{}, opts...), WithWidth(width-DigitWidth*float32(chars)-5))
	sl.slider = NewSlider(sl.node, sliderOpts...)

	sl.label = NewLabel(sl.node, "1.23", opts...)
	ln := sl.label.Node()
	ln.SetRight(0)
	ln.SetTop(ln.Height() - sl.slider.Node().Height())
	ln.SetColor(White.WithAlpha(GetOpt(o, OptStyle).ValueLabelAlpha))

	sl.slider.OnChange(sl.onSliderChanged)
	sl.slider.callbacks.Add(NewCallback(sl.callbacks.Notify))
	sl.onSliderChanged(sl.slider, sl.slider.Value())

	sl.node.FitToChildren()
	sl.node.SetWidth(width)
	return sl
}

// Node returns the container node.
func (sl *SliderWithLabel) Node() *Node { return sl.node }

// Slider returns the inner slider.
func (sl *SliderWithLabel) Slider() *Slider { return sl.slider }

// Label returns the value label.
func (sl *SliderWithLabel) Label() *Label { return sl.label }

// Precision returns the number of decimals shown.
func (sl *SliderWithLabel) Precision() int { return sl.precision }

// Callbacks returns the observer list.
func (sl *SliderWithLabel) Callbacks() *Callbacks[float64] { return &sl.callbacks }

// OnChange registers an observer and returns its handle.
func (sl *SliderWithLabel) OnChange(fn func(source Widget, value float64)) *Callback[float64] {
	return sl.callbacks.OnChange(fn)
}

// Value returns the slider value.
func (sl *SliderWithLabel) Value() float64 { return sl.slider.Value() }

// SetValue sets the slider value and notifies observers once.
func (sl *SliderWithLabel) SetValue(v float64) { sl.slider.SetValue(v) }

func (sl *SliderWithLabel) onSliderChanged(_ Widget, v float64) {
	sl.label.SetText(fmt.Sprintf("%.*f", sl.precision, v))
}
