package skin

import "testing"

var testItems = []SelectItem[int]{
	{ID: 1, Label: "A"},
	{ID: 2, Label: "B"},
	{ID: 3, Label: "C"},
}

func TestSelectbox_LabelFollowsSelection(t *testing.T) {
	sb := NewSelectbox(nil, testItems, WithSelected(2))

	if sb.Label().Text() != "B" || sb.ShowsPlaceholder() {
		t.Errorf("expected label B, got %q", sb.Label().Text())
	}
	if id, ok := sb.Value(); !ok || id != 2 {
		t.Errorf("expected value (2, true), got (%v, %v)", id, ok)
	}
}

func TestSelectbox_UnknownIDShowsPlaceholder(t *testing.T) {
	sb := NewSelectbox(nil, testItems)
	if sb.Label().Text() != defaultSelectPlaceholder {
		t.Errorf("expected placeholder without a selection, got %q", sb.Label().Text())
	}

	sb.SetValue(99)
	if !sb.ShowsPlaceholder() {
		t.Error("expected placeholder for an id not in the options")
	}
	if a := sb.Label().Node().Color().A; a != DefaultStyle().PlaceholderAlpha {
		t.Errorf("expected placeholder alpha %v, got %v", DefaultStyle().PlaceholderAlpha, a)
	}
	if id, ok := sb.Value(); !ok || id != 99 {
		t.Errorf("expected the unknown id to be kept, got (%v, %v)", id, ok)
	}

	sb.SetItems(append(testItems, SelectItem[int]{ID: 99, Label: "Late"}))
	if sb.Label().Text() != "Late" {
		t.Errorf("expected label to update with new options, got %q", sb.Label().Text())
	}
	if a := sb.Label().Node().Color().A; a != 1 {
		t.Errorf("expected full opacity for a real option, got %v", a)
	}
}

func TestSelectbox_ConstructedWithAbsentID(t *testing.T) {
	sb := NewSelectbox(nil, testItems, WithSelected(99))

	if !sb.ShowsPlaceholder() || sb.Label().Text() != defaultSelectPlaceholder {
		t.Errorf("expected placeholder for an absent id, got %q", sb.Label().Text())
	}
	if id, ok := sb.Value(); !ok || id != 99 {
		t.Errorf("expected value (99, true), got (%v, %v)", id, ok)
	}
}

type quality string

func TestSelectbox_SelectedConvertsToIDType(t *testing.T) {
	wide := NewSelectbox(nil, []SelectItem[int64]{{ID: 1, Label: "A"}, {ID: 2, Label: "B"}}, WithSelected(2))
	if id, ok := wide.Value(); !ok || id != 2 {
		t.Errorf("expected value (2, true), got (%v, %v)", id, ok)
	}
	if wide.Label().Text() != "B" {
		t.Errorf("expected label B, got %q", wide.Label().Text())
	}

	named := NewSelectbox(nil, []SelectItem[quality]{{ID: "low", Label: "Low"}, {ID: "high", Label: "High"}}, WithSelected("high"))
	if named.Label().Text() != "High" {
		t.Errorf("expected label High, got %q", named.Label().Text())
	}

	tests := []struct {
		name     string
		selected any
	}{
		{"string for uint8", "2"},
		{"fractional float", 2.5},
		{"negative for unsigned", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewSelectbox(nil, []SelectItem[uint8]{{ID: 2, Label: "B"}}, WithSelected(tt.selected))
			if _, ok := sb.Value(); ok {
				t.Errorf("expected %v to be rejected", tt.selected)
			}
			if !sb.ShowsPlaceholder() {
				t.Error("expected placeholder when the selection is rejected")
			}
		})
	}
}

func TestSelectbox_CustomPlaceholder(t *testing.T) {
	sb := NewSelectbox(nil, testItems, WithPlaceholder("Pick one"))
	if sb.Label().Text() != "Pick one" {
		t.Errorf("expected custom placeholder, got %q", sb.Label().Text())
	}
}

func TestSelectbox_RowClickSelectsAndCloses(t *testing.T) {
	sc := NewScene(800, 600)
	sb := NewSelectbox(sc.Root(), testItems)

	var got []int
	sb.OnChange(func(w Widget, id int) {
		if sb.IsOpen() {
			t.Error("expected the drop closed before observers run")
		}
		got = append(got, id)
	})

	sb.Open()
	rows := sb.Drop().Rows()
	if len(rows) != len(testItems) {
		t.Fatalf("expected %d rows, got %d", len(testItems), len(rows))
	}

	click(sc, center(rows[0].Rect()))

	if sb.IsOpen() {
		t.Error("expected the drop closed after picking a row")
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected one notification with 1, got %v", got)
	}
	if id, ok := sb.Value(); !ok || id != 1 {
		t.Errorf("expected value (1, true), got (%v, %v)", id, ok)
	}
	if sb.Label().Text() != "A" {
		t.Errorf("expected label A, got %q", sb.Label().Text())
	}
}

func TestSelectbox_ClickToggles(t *testing.T) {
	sc := NewScene(800, 600)
	sb := NewSelectbox(sc.Root(), testItems)
	p := center(sb.Node().Rect())

	click(sc, p)
	if !sb.IsOpen() || !sb.Node().HasFocus() {
		t.Fatal("expected click to open and focus")
	}
	if !sb.Drop().Node().Visible() {
		t.Error("expected the drop shown")
	}

	click(sc, p)
	if sb.IsOpen() {
		t.Error("expected second click to close")
	}
}

func TestSelectbox_BlurCloses(t *testing.T) {
	sc := NewScene(800, 600)
	sb := NewSelectbox(sc.Root(), testItems)

	sb.Open()
	sc.MouseDown(Vec2{X: 700, Y: 500})

	if sb.IsOpen() {
		t.Error("expected losing focus to close the drop")
	}
	if sb.Drop().Node().Visible() {
		t.Error("expected the drop hidden")
	}
}

func TestSelectbox_OpenIsIdempotent(t *testing.T) {
	sc := NewScene(800, 600)
	sb := NewSelectbox(sc.Root(), testItems[:2])

	sb.Open()
	sb.Open()

	if n := len(sb.Drop().Rows()); n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
	// 2 rows of 30px plus the fixed top and bottom padding.
	if h := sb.Drop().Layout().Node().Height(); h != 2*DropRowHeight+17 {
		t.Errorf("expected drop height %v, got %v", 2*DropRowHeight+17, h)
	}
}

func TestSelectbox_VisibleRowsAreCapped(t *testing.T) {
	items := make([]SelectItem[int], 7)
	for i := range items {
		items[i] = SelectItem[int]{ID: i, Label: "x"}
	}
	sb := NewSelectbox(nil, items)
	sb.Open()

	if h := sb.Drop().Layout().Node().Height(); h != DropMaxVisible*DropRowHeight+17 {
		t.Errorf("expected drop capped at %d rows, got height %v", DropMaxVisible, h)
	}
	if n := len(sb.Drop().Rows()); n != 7 {
		t.Errorf("expected a row per option, got %d", n)
	}
}

func TestSelectbox_SetValueNotifiesOnce(t *testing.T) {
	sb := NewSelectbox(nil, testItems)
	calls := 0
	sb.OnChange(func(Widget, int) { calls++ })

	sb.SetValue(3)
	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}

	sb.ClearValue()
	if _, ok := sb.Value(); ok {
		t.Error("expected no selection after clear")
	}
	if calls != 1 {
		t.Errorf("expected clear not to notify, got %d calls", calls)
	}
}

func TestSelectbox_RowHover(t *testing.T) {
	sc := NewScene(800, 600)
	sb := NewSelectbox(sc.Root(), testItems)
	sb.Open()
	row := sb.Drop().Rows()[1]

	sc.MouseMove(center(row.Rect()))
	if row.Color() != DefaultStyle().RowHoverColor {
		t.Errorf("expected hover color, got %v", row.Color())
	}
	sc.MouseMove(Vec2{X: 700, Y: 500})
	if row.Color() != Transparent {
		t.Errorf("expected transparent row after leaving, got %v", row.Color())
	}
}
