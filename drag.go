package skin

// DragState tracks a horizontal drag of a value in pixel space.
// The slider knob uses it; the value is the knob's pixel offset.
type DragState struct {
	Active     bool    // Currently being dragged
	StartX     float32 // Pointer X when the drag started
	StartY     float32 // Pointer Y when the drag started
	StartValue float32 // Value when the drag started, restored on cancel
}

// Begin starts a drag at pointer p. It is ignored while a drag is active.
func (d *DragState) Begin(p Vec2, value float32) bool {
	if d.Active {
		return false
	}
	d.Active = true
	d.StartX = p.X
	d.StartY = p.Y
	d.StartValue = value
	return true
}

// Value returns the dragged value for pointer p.
func (d *DragState) Value(p Vec2) float32 {
	return d.StartValue + (p.X - d.StartX)
}

// End stops the drag and makes value the new restore point.
func (d *DragState) End(value float32) {
	d.Active = false
	d.StartX = 0
	d.StartY = 0
	d.StartValue = value
}

// Reset clears the drag state.
func (d *DragState) Reset() {
	*d = DragState{}
}
