package skin

import "testing"

// recorder binds every pointer and focus event on n and records the kinds.
func recorder(n *Node, log *[]string) {
	for _, k := range []EventKind{EventClick, EventMouseDown, EventMouseUp, EventMouseMove, EventFocus, EventBlur} {
		name := n.Name() + ":" + k.String()
		n.Bind(k, func(Event) { *log = append(*log, name) })
	}
}

func TestScene_FocusBlurBeforeFocus(t *testing.T) {
	sc := NewScene(800, 600)
	a := NewNodeRect(sc.Root(), 0, 0, 10, 10)
	a.SetName("a")
	b := NewNodeRect(sc.Root(), 20, 0, 10, 10)
	b.SetName("b")

	var log []string
	recorder(a, &log)
	recorder(b, &log)

	a.RequestFocus()
	b.RequestFocus()

	want := []string{"a:focus", "a:blur", "b:focus"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if !b.HasFocus() || a.HasFocus() {
		t.Error("expected b to hold focus")
	}
}

func TestScene_FocusIgnoresDetachedNodes(t *testing.T) {
	sc := NewScene(800, 600)
	detached := NewNodeRect(nil, 0, 0, 10, 10)

	detached.RequestFocus()
	sc.SetFocus(detached)

	if sc.Focused() != nil {
		t.Errorf("expected no focus, got %s", nodeLabel(sc.Focused()))
	}
}

func TestScene_PressCapturesPointer(t *testing.T) {
	sc := NewScene(800, 600)
	a := NewNodeRect(sc.Root(), 0, 0, 50, 50)
	a.SetName("a")
	var log []string
	recorder(a, &log)

	sc.MouseDown(Vec2{X: 10, Y: 10})
	sc.MouseMove(Vec2{X: 100, Y: 100})
	sc.MouseUp(Vec2{X: 100, Y: 100})

	want := []string{"a:mousedown", "a:mousemove", "a:mouseup"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if sc.Pressed() != nil {
		t.Error("expected press to be released")
	}
}

func TestScene_ClickRequiresReleaseOverPressedNode(t *testing.T) {
	sc := NewScene(800, 600)
	a := NewNodeRect(sc.Root(), 0, 0, 50, 50)
	clicks := 0
	a.Bind(EventClick, func(Event) { clicks++ })

	sc.MouseDown(Vec2{X: 10, Y: 10})
	sc.MouseUp(Vec2{X: 10, Y: 10})
	if clicks != 1 {
		t.Fatalf("expected 1 click, got %d", clicks)
	}

	sc.MouseDown(Vec2{X: 10, Y: 10})
	sc.MouseUp(Vec2{X: 60, Y: 10})
	if clicks != 1 {
		t.Errorf("expected release outside not to click, got %d clicks", clicks)
	}
}

func TestScene_HitTestOrder(t *testing.T) {
	sc := NewScene(800, 600)
	low := NewNodeRect(sc.Root(), 0, 0, 50, 50)
	low.Bind(EventClick, func(Event) {})
	high := NewNodeRect(sc.Root(), 25, 25, 50, 50)
	high.Bind(EventClick, func(Event) {})

	// Later siblings win at equal z.
	if got := sc.HitTest(Vec2{X: 30, Y: 30}); got != high {
		t.Errorf("expected later sibling to be hit, got %s", nodeLabel(got))
	}

	low.SetZOffset(1)
	if got := sc.HitTest(Vec2{X: 30, Y: 30}); got != low {
		t.Errorf("expected higher z to be hit, got %s", nodeLabel(got))
	}

	// Non-interactive nodes are transparent to the pointer.
	plain := NewNodeRect(sc.Root(), 0, 0, 100, 100)
	plain.SetZOffset(5)
	if got := sc.HitTest(Vec2{X: 30, Y: 30}); got != low {
		t.Errorf("expected non-interactive node to be skipped, got %s", nodeLabel(got))
	}

	low.Hide()
	if got := sc.HitTest(Vec2{X: 30, Y: 30}); got != high {
		t.Errorf("expected hidden node to be skipped, got %s", nodeLabel(got))
	}
}

func TestScene_ClipBoundsLimitHitTest(t *testing.T) {
	sc := NewScene(800, 600)
	parent := NewNodeRect(sc.Root(), 0, 0, 50, 50)
	parent.SetClipBounds(Insets{})
	child := NewNodeRect(parent, 40, 40, 50, 50)
	child.Bind(EventClick, func(Event) {})

	if got := sc.HitTest(Vec2{X: 45, Y: 45}); got != child {
		t.Errorf("expected child inside the clip to be hit, got %s", nodeLabel(got))
	}
	if got := sc.HitTest(Vec2{X: 80, Y: 80}); got != nil {
		t.Errorf("expected clipped area to miss, got %s", nodeLabel(got))
	}
}

func TestScene_MouseDownOutsideFocusBlurs(t *testing.T) {
	sc := NewScene(800, 600)
	field := NewNodeRect(sc.Root(), 0, 0, 50, 50)
	field.Bind(EventMouseDown, func(Event) {})
	inner := NewNodeRect(field, 5, 5, 10, 10)
	inner.Bind(EventMouseDown, func(Event) {})
	blurs := 0
	field.Bind(EventBlur, func(Event) { blurs++ })

	field.RequestFocus()
	sc.MouseDown(Vec2{X: 8, Y: 8})
	sc.MouseUp(Vec2{X: 8, Y: 8})
	if !field.HasFocus() {
		t.Fatal("expected a press inside the focused subtree to keep focus")
	}

	sc.MouseDown(Vec2{X: 300, Y: 300})
	if sc.Focused() != nil || blurs != 1 {
		t.Errorf("expected focus cleared with one blur, got focused=%s blurs=%d", nodeLabel(sc.Focused()), blurs)
	}
}

func TestScene_HoverOverOut(t *testing.T) {
	sc := NewScene(800, 600)
	a := NewNodeRect(sc.Root(), 0, 0, 50, 50)
	var log []string
	a.Bind(EventMouseOver, func(Event) { log = append(log, "over") })
	a.Bind(EventMouseOut, func(Event) { log = append(log, "out") })

	sc.MouseMove(Vec2{X: 10, Y: 10})
	sc.MouseMove(Vec2{X: 20, Y: 20})
	sc.MouseMove(Vec2{X: 90, Y: 90})

	if len(log) != 2 || log[0] != "over" || log[1] != "out" {
		t.Errorf("expected [over out], got %v", log)
	}
}

func TestScene_RemoveForgetsFocus(t *testing.T) {
	sc := NewScene(800, 600)
	parent := NewNodeRect(sc.Root(), 0, 0, 50, 50)
	child := NewNodeRect(parent, 0, 0, 10, 10)

	child.RequestFocus()
	parent.Remove()

	if sc.Focused() != nil {
		t.Errorf("expected focus dropped with the removed subtree, got %s", nodeLabel(sc.Focused()))
	}
	if child.Scene() != nil {
		t.Error("expected removed subtree to be detached from the scene")
	}
}

func TestScene_KeysGoToFocusedNode(t *testing.T) {
	sc := NewScene(800, 600)
	a := NewNodeRect(sc.Root(), 0, 0, 10, 10)
	var keys []Key
	a.Bind(EventKeyDown, func(e Event) { keys = append(keys, e.Key) })

	sc.KeyDown(KeyLeft, false) // nothing focused
	a.RequestFocus()
	sc.KeyDown(KeyRight, false)

	if len(keys) != 1 || keys[0] != KeyRight {
		t.Errorf("expected [arrow_right], got %v", keys)
	}
}

func TestScene_FeedTranslatesInput(t *testing.T) {
	sc := NewScene(800, 600)
	a := NewNodeRect(sc.Root(), 0, 0, 50, 50)
	var log []string
	a.SetName("a")
	recorder(a, &log)
	var typed string
	a.Bind(EventTextInput, func(e Event) { typed += e.Text })
	var lastTick float64
	a.Bind(EventTick, func(e Event) { lastTick = e.Time })

	in := NewInputState()
	in.SetMousePos(10, 10)
	in.SetMouseButton(MouseButtonLeft, true)
	sc.Feed(in, 1.0)

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	sc.Feed(in, 1.1)

	a.RequestFocus()
	in.Reset()
	in.AddInputChar('h')
	in.AddInputChar('i')
	sc.Feed(in, 1.2)

	want := []string{"a:mousemove", "a:mousedown", "a:mouseup", "a:click", "a:focus"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if typed != "hi" {
		t.Errorf("expected typed text %q, got %q", "hi", typed)
	}
	if lastTick != 1.2 || sc.Time() != 1.2 {
		t.Errorf("expected tick time 1.2, got %v (scene %v)", lastTick, sc.Time())
	}
}

func TestNode_Geometry(t *testing.T) {
	parent := NewNodeRect(nil, 10, 20, 100, 50)

	anchored := NewNodeRect(parent, 0, 0, 20, 10)
	anchored.SetRight(5)
	if got := anchored.LocalPos().X; got != 75 {
		t.Errorf("expected right-anchored x 75, got %v", got)
	}

	centered := NewNodeRect(parent, 0, 0, 40, 10)
	centered.SetCentered(true)
	if got := centered.LocalPos().X; got != 30 {
		t.Errorf("expected centered x 30, got %v", got)
	}

	child := NewNodeRect(parent, 5, 5, 10, 10)
	child.SetMargin(Insets{Top: 1, Left: 2})
	if got := child.AbsPos(); got != (Vec2{X: 17, Y: 26}) {
		t.Errorf("expected abs pos (17, 26), got %v", got)
	}

	parent.FitToChildren()
	if parent.Width() != 40 || parent.Height() != 16 {
		t.Errorf("expected fitted size 40x16, got %vx%v", parent.Width(), parent.Height())
	}
}
