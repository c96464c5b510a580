// Command gen builds every skin widget with sample data, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/skin"
	"github.com/go-theft-auto/skin/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                // filename without extension
	width  int                   // viewport width
	height int                   // viewport height
	build  func(root *skin.Node) // creates the widgets under root
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("skin renderer: %w", err)
	}
	defer renderer.Delete()

	if err := renderer.UploadAtlas(skin.DefaultAtlas()); err != nil {
		return err
	}
	if err := renderer.UploadFont(skin.DefaultFont()); err != nil {
		return err
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	ui := skin.New(renderer, s.width, s.height)
	ui.Resize(s.width, s.height)

	panel := skin.NewNodeRect(ui.Root(), 12, 12, float32(s.width-24), float32(s.height-24))
	s.build(panel)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := ui.Frame(nil, 0); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom-up.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "checkbox", width: 300, height: 80,
			build: func(root *skin.Node) {
				skin.NewLabeledCheckbox(root, true, "Enable shadows")
				off := skin.NewLabeledCheckbox(root, false, "Enable fog")
				off.Node().SetTop(28)
			},
		},
		{
			name: "radiobox", width: 300, height: 110,
			build: func(root *skin.Node) {
				g := skin.NewRadioGroup()
				for i, label := range []string{"Low", "Medium", "High"} {
					rb := skin.NewLabeledRadiobox(root, g, i, label)
					rb.Node().SetTop(float32(i * 28))
					if i == 1 {
						g.SetActive(rb.Radiobox())
					}
				}
			},
		},
		{
			name: "slider", width: 400, height: 100,
			build: func(root *skin.Node) {
				skin.NewSlider(root, skin.WithWidth(300), skin.WithRange(0, 1), skin.WithValue(0.65))
				filled := skin.NewSliderWithLabel(root, skin.WithWidth(300), skin.WithRange(0, 100),
					skin.WithValue(30), skin.WithFilled(), skin.WithPrecision(0))
				filled.Node().SetTop(40)
			},
		},
		{
			name: "progressbar", width: 400, height: 100,
			build: func(root *skin.Node) {
				for i, pct := range []int{0, 45, 100} {
					p := skin.NewProgressbar(root, pct, skin.WithWidth(300))
					p.Node().SetTop(float32(i * 26))
				}
			},
		},
		{
			name: "input_field", width: 400, height: 90,
			build: func(root *skin.Node) {
				skin.NewInputField(root, skin.WithWidth(300))
				filled := skin.NewInputField(root, skin.WithWidth(300), skin.WithText("Hello, world!"))
				filled.Node().SetTop(38)
			},
		},
		{
			name: "selectbox", width: 400, height: 200,
			build: func(root *skin.Node) {
				sb := skin.NewSelectbox(root, []skin.SelectItem[string]{
					{ID: "low", Label: "Low"},
					{ID: "medium", Label: "Medium"},
					{ID: "high", Label: "High"},
				}, skin.WithWidth(250), skin.WithSelected("medium"))
				sb.Open()
			},
		},
		{
			name: "corner_layout", width: 300, height: 160,
			build: func(root *skin.Node) {
				skin.NewCornerLayout(root, "Selectdrop_", 260, 120)
			},
		},
	}
}
