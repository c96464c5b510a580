package skin

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
)

const testAtlasYAML = `
name: test
size: [8, 4]
regions:
  red: {x: 0, y: 0, w: 2, h: 2, fill: "#ff0000"}
  half: {x: 4, y: 0, w: 2, h: 4, fill: [0, 0, 1, 0.5]}
`

func TestParseAtlas(t *testing.T) {
	a, err := ParseAtlas([]byte(testAtlasYAML))
	if err != nil {
		t.Fatalf("ParseAtlas failed: %v", err)
	}
	if a.Name != "test" || a.Width != 8 || a.Height != 4 {
		t.Errorf("expected test 8x4, got %s %dx%d", a.Name, a.Width, a.Height)
	}

	red, ok := a.Region("red")
	if !ok {
		t.Fatal("expected region red")
	}
	if red.Fill != (Color{R: 1, A: 1}) {
		t.Errorf("expected opaque red fill, got %v", red.Fill)
	}
	half, _ := a.Region("half")
	if half.Fill != (Color{B: 1, A: 0.5}) {
		t.Errorf("expected half-transparent blue fill, got %v", half.Fill)
	}
	if half.Size() != (Vec2{X: 2, Y: 4}) {
		t.Errorf("expected size 2x4, got %v", half.Size())
	}

	if _, ok := a.Region("nope"); ok {
		t.Error("expected a missing region to report false")
	}
}

func TestParseAtlas_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no name", "size: [1, 1]\n", "no name"},
		{"negative size", "name: x\nregions:\n  r: {w: -1, h: 1}\n", "negative size"},
		{"bad color", "name: x\nregions:\n  r: {w: 1, h: 1, fill: \"#zz\"}\n", "invalid hex color"},
		{"short color list", "name: x\nregions:\n  r: {w: 1, h: 1, fill: [1, 0]}\n", "3 or 4 components"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAtlas([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff000080")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	if c.R != 1 || c.G != 0 || c.A != float32(0x80)/255 {
		t.Errorf("unexpected color %v", c)
	}
	if c.Hex() != "#ff000080" {
		t.Errorf("expected #ff000080, got %s", c.Hex())
	}

	c, err = ParseHexColor("00ff00")
	if err != nil || c != (Color{G: 1, A: 1}) {
		t.Errorf("expected opaque green without '#', got %v (%v)", c, err)
	}
}

func TestDefaultAtlas(t *testing.T) {
	a := DefaultAtlas()
	if a == nil {
		t.Fatal("expected the embedded atlas to be registered")
	}
	blank, ok := a.Region("blank")
	if !ok || blank.W != 2 || blank.H != 2 {
		t.Errorf("expected a 2x2 blank region, got %+v", blank)
	}
	if blank.Fill != White {
		t.Errorf("expected white blank fill, got %v", blank.Fill)
	}
}

func TestAtlas_RasterizeFills(t *testing.T) {
	a, err := ParseAtlas([]byte(testAtlasYAML))
	if err != nil {
		t.Fatal(err)
	}
	img := a.Rasterize()

	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("expected red at (1,1), got %v", got)
	}
	if got := img.NRGBAAt(4, 3); got != (color.NRGBA{B: 255, A: 128}) {
		t.Errorf("expected non-premultiplied blue at (4,3), got %v", got)
	}
	if got := img.NRGBAAt(7, 0); got.A != 0 {
		t.Errorf("expected transparent outside regions, got %v", got)
	}
}

func TestLoadAtlas(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	src.SetNRGBA(3, 2, color.NRGBA{G: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	fsys := fstest.MapFS{
		"skins/a.yaml":    {Data: []byte("name: with-image\nimage: a.png\nregions:\n  g: {x: 3, y: 2, w: 1, h: 1}\n")},
		"skins/a.png":     {Data: buf.Bytes()},
		"skins/fill.yaml": {Data: []byte("name: fill-only\nimage: missing.png\nsize: [4, 4]\n")},
	}

	a, err := LoadAtlas(fsys, "skins/a.yaml")
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	if a.Image() == nil || a.Width != 16 || a.Height != 8 {
		t.Fatalf("expected a 16x8 image, got %dx%d", a.Width, a.Height)
	}
	if got := a.Rasterize().NRGBAAt(3, 2); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("expected image pixel preserved, got %v", got)
	}
	if uv := a.UV(a.Regions["g"]); uv != [4]float32{3.0 / 16, 2.0 / 8, 4.0 / 16, 3.0 / 8} {
		t.Errorf("unexpected uv %v", uv)
	}

	fill, err := LoadAtlas(fsys, "skins/fill.yaml")
	if err != nil {
		t.Fatalf("expected a missing image to fall back to fills, got %v", err)
	}
	if fill.Image() != nil {
		t.Error("expected no image")
	}

	if _, err := LoadAtlas(fsys, "skins/none.yaml"); err == nil {
		t.Error("expected an error for a missing descriptor")
	}
}
