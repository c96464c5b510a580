package skin

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key delivered with KeyDown and KeyRepeat events.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.03 // Repeat interval once repeating (seconds)
)

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyTab:       "tab",
	KeyLeft:      "arrow_left",
	KeyRight:     "arrow_right",
	KeyUp:        "arrow_up",
	KeyDown:      "arrow_down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyBackspace: "backspace",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyA:         "a",
	KeyC:         "c",
	KeyV:         "v",
	KeyX:         "x",
}

// String returns the key name used in logs.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// InputState holds polled input for the current frame.
// The host fills it (see backend/opengl.GLFWInputAdapter) and hands it to
// Scene.Feed, which turns the edges into events.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held
	frameDelta  float32

	// Text input (Unicode characters typed this frame)
	InputChars []rune

	// Modifiers
	ModCtrl  bool
	ModShift bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.InputChars = s.InputChars[:0]
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if down != wasDown {
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat updates key hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	s.frameDelta = dt
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyRepeating returns true if a held key crossed a repeat boundary this
// frame. The initial press is reported by KeyPressed, not here.
func (s *InputState) KeyRepeating(key Key) bool {
	if key < 0 || key >= KeyCount || s.keyPressed[key] || !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	dt := s.frameDelta
	if dt <= 0 {
		dt = 0.016
	}
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - dt) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount || timeSinceDelay < dt
}
