package skin

// ClipboardProvider abstracts system clipboard access.
// backend/opengl.GLFWClipboard implements it on top of a GLFW window.
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" when empty or non-text.
	GetText() string

	// SetText replaces the clipboard text.
	SetText(text string)
}

// Global clipboard provider, set by the application at start-up.
var clipboardProvider ClipboardProvider

// SetClipboardProvider sets the clipboard used by InputField copy and
// paste. Pass nil to disable clipboard access.
//
//	skin.SetClipboardProvider(opengl.NewGLFWClipboard(window))
func SetClipboardProvider(cp ClipboardProvider) {
	clipboardProvider = cp
}

// GetClipboardProvider returns the current clipboard provider, or nil.
func GetClipboardProvider() ClipboardProvider {
	return clipboardProvider
}

// ClipboardGetText returns the clipboard text, or "" without a provider.
func ClipboardGetText() string {
	if clipboardProvider != nil {
		return clipboardProvider.GetText()
	}
	return ""
}

// ClipboardSetText copies text to the clipboard. Without a provider it
// does nothing.
func ClipboardSetText(text string) {
	if clipboardProvider != nil {
		clipboardProvider.SetText(text)
	}
}

// MemoryClipboard is an in-process clipboard for tests and headless hosts.
type MemoryClipboard struct {
	Text string
}

// GetText returns the stored text.
func (m *MemoryClipboard) GetText() string { return m.Text }

// SetText stores text.
func (m *MemoryClipboard) SetText(text string) { m.Text = text }
