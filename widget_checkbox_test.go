package skin

import "testing"

func click(sc *Scene, p Vec2) {
	sc.MouseDown(p)
	sc.MouseUp(p)
}

func center(r Rect) Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func TestCheckbox_ClickToggles(t *testing.T) {
	sc := NewScene(800, 600)
	cb := NewCheckbox(sc.Root(), false)

	var got []bool
	cb.OnChange(func(w Widget, checked bool) {
		if w != Widget(cb) {
			t.Error("expected the checkbox as source")
		}
		got = append(got, checked)
	})

	p := center(cb.Node().Rect())
	click(sc, p)
	if !cb.Checked() {
		t.Fatal("expected checkbox to be checked after click")
	}
	if cb.sprite.Texture() != texCheckboxChecked {
		t.Errorf("expected texture %s, got %s", texCheckboxChecked, cb.sprite.Texture())
	}

	click(sc, p)
	if cb.Checked() {
		t.Error("expected second click to uncheck")
	}
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("expected notifications [true false], got %v", got)
	}
}

func TestCheckbox_PressTint(t *testing.T) {
	sc := NewScene(800, 600)
	cb := NewCheckbox(sc.Root(), false)
	p := center(cb.Node().Rect())

	sc.MouseDown(p)
	if cb.Node().Color() != DefaultStyle().PressTint {
		t.Errorf("expected press tint while held, got %v", cb.Node().Color())
	}
	sc.MouseUp(Vec2{X: 500, Y: 500})
	if cb.Node().Color() != White {
		t.Errorf("expected tint restored on release, got %v", cb.Node().Color())
	}
	if cb.Checked() {
		t.Error("expected release outside not to toggle")
	}
}

func TestCheckbox_SetCheckedNotifiesOnce(t *testing.T) {
	cb := NewCheckbox(nil, true)
	calls := 0
	cb.OnChange(func(Widget, bool) { calls++ })

	cb.SetChecked(true)
	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
	if cb.Node().Width() != 16 || cb.Node().Height() != 16 {
		t.Errorf("expected 16x16 checkbox, got %vx%v", cb.Node().Width(), cb.Node().Height())
	}
}

func TestLabeledCheckbox_LabelForwardsClicks(t *testing.T) {
	sc := NewScene(800, 600)
	lc := NewLabeledCheckbox(sc.Root(), false, "Shadows")

	var sources []Widget
	lc.OnChange(func(w Widget, _ bool) { sources = append(sources, w) })

	ln := lc.Label().Node()
	if want := lc.Checkbox().Node().Width() + LabelGap; ln.Left() != want {
		t.Errorf("expected label left %v, got %v", want, ln.Left())
	}

	click(sc, center(ln.Rect()))
	if !lc.Checked() {
		t.Fatal("expected label click to check the box")
	}
	if len(sources) != 1 || sources[0] != Widget(lc.Checkbox()) {
		t.Errorf("expected one notification from the inner checkbox, got %v", sources)
	}
}
