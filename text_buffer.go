package skin

import "strings"

// TextBuffer is a single-line editable string with a cursor. Positions are
// rune indices: 0 is before the first character and Length() is after the
// last. Every operation keeps the cursor inside [0, Length()].
//
// Mutating methods report whether the text changed, so callers can notify
// observers only for real edits.
type TextBuffer struct {
	content []rune
	cursor  int
}

// NewTextBuffer creates a buffer holding text with the cursor at the end.
func NewTextBuffer(text string) *TextBuffer {
	b := &TextBuffer{content: make([]rune, 0, 64)}
	b.SetText(text)
	b.cursor = len(b.content)
	return b
}

// Text returns the current content.
func (b *TextBuffer) Text() string { return string(b.content) }

// SetText replaces the content. Newlines are dropped and the cursor is
// clamped to the new length.
func (b *TextBuffer) SetText(text string) {
	b.content = append(b.content[:0], []rune(singleLine(text))...)
	b.cursor = b.clampPosition(b.cursor)
}

// Length returns the number of runes.
func (b *TextBuffer) Length() int { return len(b.content) }

// Cursor returns the cursor position.
func (b *TextBuffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor, clamped, and reports whether it moved.
func (b *TextBuffer) SetCursor(pos int) bool {
	pos = b.clampPosition(pos)
	if pos == b.cursor {
		return false
	}
	b.cursor = pos
	return true
}

// Insert inserts text at the cursor and moves the cursor past it.
func (b *TextBuffer) Insert(text string) bool {
	runes := []rune(singleLine(text))
	if len(runes) == 0 {
		return false
	}

	newContent := make([]rune, 0, len(b.content)+len(runes))
	newContent = append(newContent, b.content[:b.cursor]...)
	newContent = append(newContent, runes...)
	newContent = append(newContent, b.content[b.cursor:]...)
	b.content = newContent
	b.cursor += len(runes)
	return true
}

// Delete removes count runes. A positive count deletes forward from the
// cursor, a negative count deletes backward and moves the cursor.
func (b *TextBuffer) Delete(count int) bool {
	switch {
	case count > 0:
		end := min(b.cursor+count, len(b.content))
		if end == b.cursor {
			return false
		}
		b.content = append(b.content[:b.cursor], b.content[end:]...)
		return true
	case count < 0:
		start := max(b.cursor+count, 0)
		if start == b.cursor {
			return false
		}
		b.content = append(b.content[:start], b.content[b.cursor:]...)
		b.cursor = start
		return true
	}
	return false
}

// Backspace deletes the rune before the cursor.
func (b *TextBuffer) Backspace() bool { return b.Delete(-1) }

// DeleteForward deletes the rune at the cursor.
func (b *TextBuffer) DeleteForward() bool { return b.Delete(1) }

// MoveCursor moves the cursor by delta, clamped.
func (b *TextBuffer) MoveCursor(delta int) bool {
	return b.SetCursor(b.cursor + delta)
}

// MoveToStart moves the cursor before the first rune.
func (b *TextBuffer) MoveToStart() bool { return b.SetCursor(0) }

// MoveToEnd moves the cursor after the last rune.
func (b *TextBuffer) MoveToEnd() bool { return b.SetCursor(len(b.content)) }

func (b *TextBuffer) clampPosition(pos int) int {
	return max(0, min(len(b.content), pos))
}

func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
