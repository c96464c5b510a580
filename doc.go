/*
Package skin provides a small set of textured widgets for game menus:
checkboxes, radio boxes, sliders, progress bars, text inputs and select
boxes, each drawn from named regions of a texture atlas.

# Overview

Widgets live in a retained scene graph. Each widget owns a *Node and a set
of child nodes (sprites, text, layouts) that make up its look. Pointer,
keyboard and focus events are routed by the Scene to the topmost
interactive node; widgets react by swapping textures, retinting sprites and
notifying their observers.

Every widget exposes the same observer surface:

	cb := skin.NewLabeledCheckbox(root, false, "Enable shadows")
	cb.OnChange(func(source skin.Widget, checked bool) {
	    settings.Shadows = checked
	})

Observers are notified synchronously, in registration order, with the
widget that changed and its new value. Registering the same handle twice is
a no-op, and a handle can be removed with Callbacks().Remove.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1920, 1080)
	renderer.UploadAtlas(skin.DefaultAtlas())
	renderer.UploadFont(skin.DefaultFont())
	ui := skin.New(renderer, 1920, 1080)

	// Widgets
	slider := skin.NewSliderWithLabel(ui.Root(), skin.WithRange(0, 100), skin.WithValue(50))
	slider.Node().SetPos(20, 20)

	// Game loop
	for !window.ShouldClose() {
	    adapter.Begin(dt)
	    glfw.PollEvents()
	    if err := ui.Frame(adapter.Update(), glfw.GetTime()); err != nil {
	        log.Fatal(err)
	    }
	    window.SwapBuffers()
	}

# Skins

An atlas is a YAML descriptor naming rectangular regions, optionally backed
by an image:

	name: skin
	image: skin.png
	regions:
	  Checkbox_Default: {x: 3, y: 0, w: 16, h: 16}
	  Checkbox_Checked: {x: 20, y: 0, w: 16, h: 16}

Without an image, regions are painted with their fill colour. The embedded
default skin works this way. Load a custom skin with LoadAtlas and register
it under DefaultAtlasName to restyle every widget.

Widgets look up these region names:

	Checkbox_Default, Checkbox_Checked
	Radiobox_Default, Radiobox_Active
	SliderBg_Left, SliderBg, SliderBg_Right, SliderKnob
	SliderBgFill_Left, SliderBgFill
	ProgressbarBg_Left, ProgressbarBg, ProgressbarBg_Right
	ProgressbarFg_Left, ProgressbarFg, ProgressbarFg_Right, ProgressbarFg_Finish
	InputField_Left, InputField, InputField_Right
	Selectbox_Left, Selectbox, Selectbox_Right, SelectboxOpen_Right
	SelectdropDivider, Selectdrop_{TL,Top,TR,Left,Mid,Right,BL,Bottom,BR}
	blank

A missing region logs one warning and leaves the sprite empty.

# Keyboard Reference

## InputField

	Left / Right     Move cursor one character
	Home / End       Jump to start / end of text
	Backspace        Delete character before cursor
	Delete           Delete character after cursor
	Ctrl+C           Copy the text to the clipboard
	Ctrl+V           Paste from the clipboard

## Slider (knob focused)

	Left / Right     Move the knob by SliderStep pixels
	Escape           Cancel a drag, restoring the value it started from

# Logging

Diagnostics go through log/slog with the "component" attribute set to
"scene" or "widget". Debug output is off by default; SetVerbose(true)
enables it.
*/
package skin
