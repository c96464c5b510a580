package skin

// Spacing constants shared by the labelled widgets.
const (
	LabelGap       float32 = 6 // Gap between a box and its label
	SliderStep     float32 = 2 // Pixels moved per arrow key press
	DigitWidth     float32 = 7 // Pixels reserved per digit of a slider label
	DropRowHeight  float32 = 30
	DropMaxVisible         = 4
)

// Style defines the tints widgets apply on top of their skin textures.
// Textures carry the actual look; Style only modulates them.
type Style struct {
	// Interaction tints
	PressTint Color // Checkbox, radiobox, selectbox while pressed
	DragTint  Color // Slider knob while dragging
	HoverTint Color // Selectbox arrow while hovered
	FocusTint Color // InputField background while focused

	// Text colors
	TextColor        Color
	ShadowColor      Color
	PlaceholderAlpha float32 // Alpha of placeholder labels
	ValueLabelAlpha  float32 // Alpha of the SliderWithLabel value

	// InputField cursor
	CursorColor     Color
	CursorBlinkRate float64 // Seconds per on/off cycle

	// Select drop rows
	RowHoverColor Color
}

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		PressTint: Color{0.86, 0.86, 0.86, 1},
		DragTint:  Color{0.8, 0.8, 0.8, 1},
		HoverTint: Color{0.9, 0.9, 0.9, 1},
		FocusTint: Color{0.9, 0.9, 0.9, 1},

		TextColor:        Color{1, 1, 1, 0.9},
		ShadowColor:      Black,
		PlaceholderAlpha: 0.5,
		ValueLabelAlpha:  0.5,

		CursorColor:     Color{0.5, 0.5, 0.5, 1},
		CursorBlinkRate: 1.0,

		RowHoverColor: Color{0, 0, 0, 0.1},
	}
}
