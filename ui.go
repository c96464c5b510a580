package skin

// Renderer draws a frame's DrawList. backend/opengl.Renderer implements it.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// UI ties a Scene to a Renderer and runs one frame at a time.
type UI struct {
	renderer Renderer
	scene    *Scene
	frames   uint64
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithDebugFocus outlines the focused node every frame.
func WithDebugFocus() UIOption {
	return func(u *UI) { u.scene.SetDebugFocus(true) }
}

// New creates a UI with a width x height scene.
func New(renderer Renderer, width, height int, opts ...UIOption) *UI {
	u := &UI{
		renderer: renderer,
		scene:    NewScene(float32(width), float32(height)),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Scene returns the scene widgets are created in.
func (u *UI) Scene() *Scene { return u.scene }

// Root returns the scene root node.
func (u *UI) Root() *Node { return u.scene.Root() }

// FrameCount returns the number of frames run so far.
func (u *UI) FrameCount() uint64 { return u.frames }

// Frame feeds one frame of input at time now (seconds, monotonic), renders
// the scene and hands the draw list to the renderer.
// A nil input only advances the clock.
func (u *UI) Frame(input *InputState, now float64) error {
	u.frames++
	u.scene.Feed(input, now)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	u.scene.Render(dl)
	dl.Finalize()
	if len(dl.CmdBuffer) == 0 {
		return nil
	}
	return u.renderer.Render(dl)
}

// Resize resizes the scene and the renderer viewport.
func (u *UI) Resize(width, height int) {
	u.scene.Resize(float32(width), float32(height))
	u.renderer.Resize(width, height)
}
