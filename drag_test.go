package skin

import "testing"

func TestDragState_BeginValueEnd(t *testing.T) {
	var d DragState

	if !d.Begin(Vec2{X: 100, Y: 10}, 40) {
		t.Fatal("expected drag to begin")
	}
	if d.Begin(Vec2{X: 0, Y: 0}, 0) {
		t.Error("expected a second Begin to be ignored while active")
	}

	if got := d.Value(Vec2{X: 130, Y: 90}); got != 70 {
		t.Errorf("expected 70 after moving 30px right, got %v", got)
	}
	if got := d.Value(Vec2{X: 60, Y: 10}); got != 0 {
		t.Errorf("expected 0 after moving 40px left, got %v", got)
	}

	d.End(55)
	if d.Active {
		t.Error("expected drag inactive after End")
	}
	if d.StartValue != 55 {
		t.Errorf("expected restore point 55, got %v", d.StartValue)
	}
}

func TestDragState_Reset(t *testing.T) {
	var d DragState
	d.Begin(Vec2{X: 1, Y: 2}, 3)
	d.Reset()

	if d != (DragState{}) {
		t.Errorf("expected zero state after Reset, got %+v", d)
	}
}
