// Example opens a window showing every skin widget.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -v      # with debug logging
//
// The skin atlas is the embedded default, painted from region fill colours.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/skin"
	"github.com/go-theft-auto/skin/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "skin example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	skin.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	font, err := skin.GoRegular(13)
	if err != nil {
		return fmt.Errorf("font: %w", err)
	}
	if err := renderer.UploadAtlas(skin.DefaultAtlas()); err != nil {
		return err
	}
	if err := renderer.UploadFont(font); err != nil {
		return err
	}

	skin.SetClipboardProvider(opengl.NewGLFWClipboard(window))
	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := skin.New(renderer, windowWidth, windowHeight)
	buildWidgets(ui.Root(), font)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		ui.Resize(w, h)
	})

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		inputAdapter.Begin(float32(now - last))
		last = now

		glfw.PollEvents()
		input := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Frame(input, now); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// buildWidgets lays out one of each widget in a column.
func buildWidgets(root *skin.Node, font *skin.Font) {
	withFont := skin.WithFont(font)
	x, y := float32(40), float32(40)
	place := func(w skin.Widget, gap float32) {
		w.Node().SetPos(x, y)
		y += w.Node().Height() + gap
	}

	status := skin.NewLabel(root, "Ready", withFont)
	status.Node().SetPos(420, 40)
	report := func(name string) func(skin.Widget, any) {
		return func(_ skin.Widget, v any) {
			status.SetText(fmt.Sprintf("%s: %v", name, v))
			slog.Debug("widget changed", "widget", name, "value", v)
		}
	}

	cb := skin.NewLabeledCheckbox(root, true, "Enable shadows", withFont)
	cb.OnChange(func(w skin.Widget, v bool) { report("checkbox")(w, v) })
	place(cb, 14)

	group := skin.NewRadioGroup()
	for i, name := range []string{"Low", "Medium", "High"} {
		rb := skin.NewLabeledRadiobox(root, group, i, name, withFont)
		rb.OnChange(func(w skin.Widget, active bool) {
			if active {
				report("quality")(w, name)
			}
		})
		place(rb, 8)
		if i == 1 {
			rb.Radiobox().Select()
		}
	}
	y += 8

	slider := skin.NewSliderWithLabel(root, skin.WithWidth(260), skin.WithRange(0, 100), skin.WithValue(25), skin.WithFilled(), withFont)
	place(slider, 18)

	progress := skin.NewProgressbar(root, 25, skin.WithWidth(260), withFont)
	place(progress, 18)
	slider.OnChange(func(w skin.Widget, v float64) {
		progress.SetValue(int(v))
		report("slider")(w, fmt.Sprintf("%.2f", v))
	})

	field := skin.NewInputField(root, skin.WithWidth(260), withFont)
	field.OnChange(func(w skin.Widget, v string) { report("input")(w, v) })
	place(field, 18)

	items := []skin.SelectItem[string]{
		{ID: "vsync", Label: "VSync"},
		{ID: "triple", Label: "Triple buffering"},
		{ID: "none", Label: "Unlimited"},
	}
	sel := skin.NewSelectbox(root, items, skin.WithWidth(260), skin.WithSelected("vsync"), withFont)
	sel.OnChange(func(w skin.Widget, id string) { report("sync")(w, id) })
	place(sel, 18)

	panel := skin.NewCornerLayout(root, "Selectdrop_", 300, 120)
	panel.Node().SetPos(420, 80)
	note := skin.NewLabel(panel.Node(), "A resizable corner layout", withFont)
	note.Node().SetPos(14, 12)
}
