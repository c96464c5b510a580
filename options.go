package skin

// Option configures a widget at construction time.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptKnobTexture = skin.NewOptKey("knobTexture", "SliderKnob")
//
//	// Set options
//	skin.NewSlider(parent, skin.WithOpt(OptKnobTexture, "MyKnob"))
//
//	// Read in widget implementation
//	name := skin.ApplyAndGet(opts, OptKnobTexture)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// RangeValue holds the min/max range of a slider.
type RangeValue struct {
	Min, Max float64
}

var (
	OptWidth       = NewOptKey[float32]("width", 0)
	OptRange       = NewOptKey("range", RangeValue{Min: 0, Max: 1})
	OptValue       = NewOptKey[float64]("value", 0)
	OptFilled      = NewOptKey("filled", false)
	OptPrecision   = NewOptKey("precision", 2)
	OptText        = NewOptKey("text", "")
	OptPlaceholder = NewOptKey("placeholder", "Enter some text ..")
	OptHideLabel   = NewOptKey("hideLabel", false)
	OptNoShadow    = NewOptKey("noShadow", false)
	OptSelected    = NewOptKey[any]("selected", nil)
	OptStyle       = NewOptKey("style", DefaultStyle())
	OptFont        = NewOptKey[*Font]("font", nil)
)

// =============================================================================
// Convenience Option Functions
// =============================================================================

// WithWidth sets the widget width in pixels.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithRange sets the value range of a slider.
func WithRange(minVal, maxVal float64) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal})
}

// WithValue sets the initial value of a slider.
// Without it the slider starts at the middle of its range.
func WithValue(v float64) Option { return WithOpt(OptValue, v) }

// WithFilled draws the part of the slider track left of the knob.
func WithFilled() Option { return WithOpt(OptFilled, true) }

// WithPrecision sets the number of decimals shown by SliderWithLabel.
func WithPrecision(n int) Option { return WithOpt(OptPrecision, n) }

// WithText sets the initial text of an InputField.
func WithText(s string) Option { return WithOpt(OptText, s) }

// WithPlaceholder sets the text shown by an empty InputField or a Selectbox
// without a matching selection.
func WithPlaceholder(s string) Option { return WithOpt(OptPlaceholder, s) }

// WithoutLabel hides the percentage label of a Progressbar.
func WithoutLabel() Option { return WithOpt(OptHideLabel, true) }

// WithoutShadow disables the drop shadow of a Label.
func WithoutShadow() Option { return WithOpt(OptNoShadow, true) }

// WithSelected sets the initially selected id of a Selectbox. Numeric ids
// convert to the box's id type when the value survives the conversion.
func WithSelected[K comparable](id K) Option { return WithOpt(OptSelected, any(id)) }

// WithStyle overrides the tint style of a widget.
func WithStyle(s Style) Option { return WithOpt(OptStyle, s) }

// WithFont sets the font used by a Label and the widgets built on it.
func WithFont(f *Font) Option { return WithOpt(OptFont, f) }
