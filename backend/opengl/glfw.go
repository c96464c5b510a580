package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/skin"
)

// GLFWInputAdapter adapts GLFW input to skin.InputState.
//
// Per frame: call Begin before glfw.PollEvents, then Update, then pass the
// result to UI.Frame.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *skin.InputState
	dt     float32
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  skin.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Begin clears the previous frame's edges. dt is the frame delta in
// seconds, used for key repeat.
func (a *GLFWInputAdapter) Begin(dt float32) {
	a.input.Reset()
	a.dt = dt
}

// Update polls the cursor and modifiers and advances key repeat timers.
// Call this after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *skin.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	a.input.UpdateKeyRepeat(a.dt)
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *skin.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToSkinKey(key)
	if k == skin.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToSkin(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToSkinKey maps GLFW keys to the keys widgets react to.
func glfwKeyToSkinKey(key glfw.Key) skin.Key {
	switch key {
	case glfw.KeyTab:
		return skin.KeyTab
	case glfw.KeyLeft:
		return skin.KeyLeft
	case glfw.KeyRight:
		return skin.KeyRight
	case glfw.KeyUp:
		return skin.KeyUp
	case glfw.KeyDown:
		return skin.KeyDown
	case glfw.KeyHome:
		return skin.KeyHome
	case glfw.KeyEnd:
		return skin.KeyEnd
	case glfw.KeyDelete:
		return skin.KeyDelete
	case glfw.KeyBackspace:
		return skin.KeyBackspace
	case glfw.KeySpace:
		return skin.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return skin.KeyEnter
	case glfw.KeyEscape:
		return skin.KeyEscape
	case glfw.KeyA:
		return skin.KeyA
	case glfw.KeyC:
		return skin.KeyC
	case glfw.KeyV:
		return skin.KeyV
	case glfw.KeyX:
		return skin.KeyX
	default:
		return skin.KeyNone
	}
}

// glfwMouseButtonToSkin maps GLFW mouse buttons to skin mouse buttons.
func glfwMouseButtonToSkin(button glfw.MouseButton) skin.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return skin.MouseButtonLeft
	case glfw.MouseButtonRight:
		return skin.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return skin.MouseButtonMiddle
	default:
		return -1
	}
}

// GLFWClipboard is a skin.ClipboardProvider backed by the window's system
// clipboard.
type GLFWClipboard struct {
	window *glfw.Window
}

// NewGLFWClipboard creates a clipboard provider for window. Install it with
// skin.SetClipboardProvider.
func NewGLFWClipboard(window *glfw.Window) *GLFWClipboard {
	return &GLFWClipboard{window: window}
}

// GetText returns the clipboard text.
func (c *GLFWClipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText replaces the clipboard text.
func (c *GLFWClipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
