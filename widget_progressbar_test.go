package skin

import "testing"

func TestProgressbar_Empty(t *testing.T) {
	p := NewProgressbar(nil, 0)

	if p.FilledWidth() != 0 {
		t.Errorf("expected filled width 0, got %d", p.FilledWidth())
	}
	if p.Label().Text() != "0 %" {
		t.Errorf("expected label %q, got %q", "0 %", p.Label().Text())
	}
	if p.fgLeft.Visible() || p.fgMid.Visible() {
		t.Error("expected left cap and middle hidden below the cap threshold")
	}
	if !p.fgRight.Visible() || p.fgRight.Left() != 0 {
		t.Error("expected only the right cap, at x 0")
	}
	if p.FinishVisible() {
		t.Error("expected no finish cap at 0")
	}
}

func TestProgressbar_Full(t *testing.T) {
	p := NewProgressbar(nil, 100)

	if p.FilledWidth() != int(p.Node().Width()) {
		t.Errorf("expected filled width %v, got %d", p.Node().Width(), p.FilledWidth())
	}
	if !p.FinishVisible() {
		t.Error("expected finish cap at 100")
	}
	if p.Label().Text() != "100 %" {
		t.Errorf("expected label %q, got %q", "100 %", p.Label().Text())
	}
}

func TestProgressbar_MiddleTilesFilledWidth(t *testing.T) {
	p := NewProgressbar(nil, 50)

	if p.FilledWidth() != 100 {
		t.Fatalf("expected filled width 100, got %d", p.FilledWidth())
	}
	if p.fgLeft.Left() != 0 {
		t.Errorf("expected left cap at 0, got %v", p.fgLeft.Left())
	}
	if p.fgMid.Left() != p.fgLeft.Width() {
		t.Errorf("expected middle to start at %v, got %v", p.fgLeft.Width(), p.fgMid.Left())
	}
	if p.fgRight.Left() != p.fgMid.Left()+p.fgMid.Width() {
		t.Errorf("expected right cap to follow the middle")
	}
	if end := p.fgRight.Left() + p.fgRight.Width(); end != 100 {
		t.Errorf("expected segments to end at 100, got %v", end)
	}
	if p.FinishVisible() {
		t.Error("expected no finish cap at 50")
	}
	if p.Label().Text() != "50 %" {
		t.Errorf("expected label %q, got %q", "50 %", p.Label().Text())
	}
}

func TestProgressbar_FinishCapClipped(t *testing.T) {
	p := NewProgressbar(nil, 98)

	if !p.FinishVisible() {
		t.Fatal("expected finish cap near the end")
	}
	clip, ok := p.fgFinish.ClipBounds()
	want := p.Node().Width() - float32(p.FilledWidth())
	if !ok || clip.Right != want {
		t.Errorf("expected finish cap clipped by %v on the right, got %v (clipped=%v)", want, clip.Right, ok)
	}
}

func TestProgressbar_NarrowBarShowsFinish(t *testing.T) {
	p := NewProgressbar(nil, 100, WithWidth(12))

	if p.FilledWidth() != 12 {
		t.Fatalf("expected filled width 12, got %d", p.FilledWidth())
	}
	if p.fgMid.Visible() || !p.fgRight.Visible() {
		t.Error("expected only the right cap on a bar narrower than both caps")
	}
	if !p.FinishVisible() {
		t.Error("expected finish cap at 100 on a narrow bar")
	}

	p.SetValue(40)
	if p.FinishVisible() {
		t.Errorf("expected no finish cap at filled width %d", p.FilledWidth())
	}
}

func TestProgressbar_Monotonic(t *testing.T) {
	p := NewProgressbar(nil, 0, WithWidth(317))
	prev := -1
	for pct := 0; pct <= 100; pct++ {
		p.SetValue(pct)
		if p.FilledWidth() < prev {
			t.Fatalf("filled width decreased at %d%%: %d < %d", pct, p.FilledWidth(), prev)
		}
		prev = p.FilledWidth()
	}
}

func TestProgressbar_Clamps(t *testing.T) {
	p := NewProgressbar(nil, 150)
	if p.Value() != 100 {
		t.Errorf("expected 150 clamped to 100, got %d", p.Value())
	}
	p.SetValue(-20)
	if p.Value() != 0 || p.FilledWidth() != 0 {
		t.Errorf("expected -20 clamped to 0, got %d (filled %d)", p.Value(), p.FilledWidth())
	}
}

func TestProgressbar_WithoutLabel(t *testing.T) {
	p := NewProgressbar(nil, 40, WithoutLabel())
	if p.Label() != nil {
		t.Error("expected no label")
	}
}
