package skin

import "testing"

func TestTextBuffer_InsertAndDelete(t *testing.T) {
	b := NewTextBuffer("hello")
	if b.Cursor() != 5 {
		t.Fatalf("expected cursor at end (5), got %d", b.Cursor())
	}

	b.SetCursor(2)
	if !b.Insert("XY") {
		t.Fatal("expected insert to change the buffer")
	}
	if b.Text() != "heXYllo" || b.Cursor() != 4 {
		t.Errorf("expected heXYllo with cursor 4, got %q cursor %d", b.Text(), b.Cursor())
	}

	b.Delete(-2)
	if b.Text() != "hello" || b.Cursor() != 2 {
		t.Errorf("expected backward delete to undo the insert, got %q cursor %d", b.Text(), b.Cursor())
	}

	b.Delete(100)
	if b.Text() != "he" || b.Cursor() != 2 {
		t.Errorf("expected forward delete to stop at the end, got %q cursor %d", b.Text(), b.Cursor())
	}
	if b.DeleteForward() {
		t.Error("expected delete at the end to be a no-op")
	}
}

func TestTextBuffer_CursorClamps(t *testing.T) {
	b := NewTextBuffer("abc")

	b.SetCursor(-5)
	if b.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", b.Cursor())
	}
	if b.Backspace() {
		t.Error("expected backspace at start to be a no-op")
	}
	if b.MoveCursor(-1) {
		t.Error("expected move before start to report no movement")
	}

	b.SetCursor(99)
	if b.Cursor() != 3 {
		t.Errorf("expected cursor 3, got %d", b.Cursor())
	}

	b.SetText("a")
	if b.Cursor() != 1 {
		t.Errorf("expected cursor clamped to 1 after shrinking, got %d", b.Cursor())
	}
}

func TestTextBuffer_Runes(t *testing.T) {
	b := NewTextBuffer("héllo")
	if b.Length() != 5 {
		t.Fatalf("expected 5 runes, got %d", b.Length())
	}
	b.SetCursor(2)
	b.Backspace()
	if b.Text() != "hllo" {
		t.Errorf("expected hllo, got %q", b.Text())
	}
}

func TestTextBuffer_DropsNewlines(t *testing.T) {
	b := NewTextBuffer("")
	b.Insert("one\r\ntwo")
	if b.Text() != "onetwo" {
		t.Errorf("expected newlines dropped, got %q", b.Text())
	}
	if b.Insert("\n") {
		t.Error("expected inserting only a newline to be a no-op")
	}
}

func TestInputField_TypingNotifies(t *testing.T) {
	sc := NewScene(800, 600)
	f := NewInputField(sc.Root())
	var got []string
	f.OnChange(func(_ Widget, s string) { got = append(got, s) })

	click(sc, center(f.Node().Rect()))
	if !f.Node().HasFocus() {
		t.Fatal("expected click to focus the field")
	}

	sc.TextInput("abc")
	sc.KeyDown(KeyLeft, false)
	if f.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", f.Cursor())
	}
	sc.KeyDown(KeyBackspace, false)
	sc.KeyDown(KeyDelete, false)
	sc.KeyDown(KeyDelete, false) // nothing left after the cursor

	want := []string{"abc", "ac", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestInputField_SetValueAlwaysNotifies(t *testing.T) {
	f := NewInputField(nil, WithText("same"))
	calls := 0
	f.OnChange(func(Widget, string) { calls++ })

	f.SetValue("same")
	f.SetValue("line\nbreak")

	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}
	if f.Value() != "linebreak" {
		t.Errorf("expected newline dropped, got %q", f.Value())
	}
}

func TestInputField_Placeholder(t *testing.T) {
	sc := NewScene(800, 600)
	f := NewInputField(sc.Root())

	if !f.PlaceholderVisible() {
		t.Fatal("expected placeholder on an empty field")
	}
	if a := f.placeholder.Node().Color().A; a != DefaultStyle().PlaceholderAlpha {
		t.Errorf("expected placeholder alpha %v, got %v", DefaultStyle().PlaceholderAlpha, a)
	}

	f.Node().RequestFocus()
	if f.PlaceholderVisible() {
		t.Error("expected placeholder hidden while focused")
	}
	sc.SetFocus(nil)
	if !f.PlaceholderVisible() {
		t.Error("expected placeholder back after blur")
	}

	f.SetValue("x")
	if f.PlaceholderVisible() {
		t.Error("expected placeholder hidden with text")
	}
}

func TestInputField_CursorBlinks(t *testing.T) {
	sc := NewScene(800, 600)
	f := NewInputField(sc.Root())

	if f.CursorVisible() {
		t.Fatal("expected no cursor before focus")
	}

	sc.Tick(10)
	f.Node().RequestFocus()

	steps := []struct {
		now     float64
		visible bool
	}{
		{10.2, true},
		{10.7, false},
		{11.1, true},
	}
	for _, s := range steps {
		sc.Tick(s.now)
		if f.CursorVisible() != s.visible {
			t.Errorf("at %v: expected cursor visible=%v", s.now, s.visible)
		}
	}

	sc.SetFocus(nil)
	if f.CursorVisible() {
		t.Error("expected cursor hidden after blur")
	}
}

func TestInputField_ScrollKeepsCursorVisible(t *testing.T) {
	f := NewInputField(nil, WithWidth(100))
	visible := f.VisibleWidth()

	inView := func() bool {
		x := f.cursor.Left() + f.ScrollOffset()
		return x >= 0 && x+inputCursorWidth <= visible
	}

	f.Insert("abcdefghijklmnopqrstuvwxyz0123")
	if f.ScrollOffset() >= 0 {
		t.Errorf("expected long text to scroll, got offset %v", f.ScrollOffset())
	}
	if !inView() {
		t.Errorf("expected cursor in view at the end, offset %v", f.ScrollOffset())
	}

	f.SetCursor(0)
	if !inView() {
		t.Errorf("expected cursor in view at the start, offset %v", f.ScrollOffset())
	}
	if f.ScrollOffset() > 0 {
		t.Errorf("expected scroll never positive, got %v", f.ScrollOffset())
	}

	f.SetValue("ab")
	f.SetCursor(2)
	if !inView() {
		t.Errorf("expected cursor in view after shrinking, offset %v", f.ScrollOffset())
	}
}

func TestInputField_MouseDownPlacesCursor(t *testing.T) {
	sc := NewScene(800, 600)
	f := NewInputField(sc.Root(), WithText("abcdef"))

	// The text starts 8px into the field; x 30 is nearest the boundary
	// after the third character.
	click(sc, Vec2{X: 30, Y: 15})
	if f.Cursor() != 3 {
		t.Errorf("expected cursor 3, got %d", f.Cursor())
	}
}

func TestInputField_Clipboard(t *testing.T) {
	cb := &MemoryClipboard{Text: "pasted"}
	SetClipboardProvider(cb)
	t.Cleanup(func() { SetClipboardProvider(nil) })

	sc := NewScene(800, 600)
	f := NewInputField(sc.Root())
	calls := 0
	f.OnChange(func(Widget, string) { calls++ })
	f.Node().RequestFocus()

	sc.KeyDown(KeyV, false)
	if f.Value() != "" {
		t.Fatalf("expected plain v to be ignored as a key, got %q", f.Value())
	}

	sc.KeyDown(KeyV, true)
	if f.Value() != "pasted" || calls != 1 {
		t.Errorf("expected paste with one notification, got %q (%d calls)", f.Value(), calls)
	}

	f.SetValue("copy me")
	sc.KeyDown(KeyC, true)
	if cb.Text != "copy me" {
		t.Errorf("expected clipboard %q, got %q", "copy me", cb.Text)
	}
}
