package skin

// focusOutlineColor is used by the debug focus outline.
var focusOutlineColor = RGBA(0, 180, 255, 255)

// Render appends the scene's visible drawables to dl in draw order.
// Each node is clipped by its own and its ancestors' clip bounds; nodes
// entirely outside their clip are skipped.
func (s *Scene) Render(dl *DrawList) {
	if dl == nil {
		return
	}
	for _, e := range s.flatten() {
		if e.node.content == nil {
			continue
		}
		if e.clipped && !e.rect.Intersects(e.clip) {
			continue
		}
		dl.SetClipRect(e.clip, e.clipped)
		e.node.content.draw(dl, e.rect, e.tint)
	}
	dl.SetClipRect(Rect{}, false)

	if s.debugFocus && s.focused != nil && s.focused.EffectivelyVisible() {
		r := s.focused.Rect()
		dl.AddRectOutline(r.X-1, r.Y-1, r.W+2, r.H+2, focusOutlineColor, 1)
	}
}
