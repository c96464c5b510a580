package skin

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultAtlasName is the atlas widgets look their textures up in.
const DefaultAtlasName = "skin"

//go:embed skins/default.yaml
var defaultAtlasYAML []byte

// Region is a named rectangle inside an atlas. Fill is the flat colour used
// when the atlas has no image.
type Region struct {
	X    int   `yaml:"x"`
	Y    int   `yaml:"y"`
	W    int   `yaml:"w"`
	H    int   `yaml:"h"`
	Fill Color `yaml:"fill"`
}

// Size returns the intrinsic size of the region in pixels.
func (r Region) Size() Vec2 { return Vec2{X: float32(r.W), Y: float32(r.H)} }

// atlasFile is the on-disk descriptor.
type atlasFile struct {
	Name    string            `yaml:"name"`
	Image   string            `yaml:"image,omitempty"`
	Size    [2]int            `yaml:"size"`
	Regions map[string]Region `yaml:"regions"`
}

// Atlas is a set of named texture regions sharing one texture.
type Atlas struct {
	Name    string
	Width   int
	Height  int
	Regions map[string]Region

	// TextureID is assigned by the backend after upload. Zero means the
	// atlas is drawn with flat region fills.
	TextureID uint32

	img image.Image

	mu     sync.Mutex
	warned map[string]bool
}

// ParseAtlas parses a YAML atlas descriptor. Images referenced by the
// descriptor are not loaded; use LoadAtlas for that.
func ParseAtlas(data []byte) (*Atlas, error) {
	var f atlasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse atlas: %w", err)
	}
	if f.Name == "" {
		return nil, errors.New("atlas has no name")
	}
	for name, r := range f.Regions {
		if r.W < 0 || r.H < 0 {
			return nil, fmt.Errorf("atlas %q: region %q has negative size", f.Name, name)
		}
	}
	if f.Regions == nil {
		f.Regions = map[string]Region{}
	}
	return &Atlas{
		Name:    f.Name,
		Width:   f.Size[0],
		Height:  f.Size[1],
		Regions: f.Regions,
		warned:  map[string]bool{},
	}, nil
}

// LoadAtlas reads the descriptor at name from fsys, and the image it
// references (relative to the descriptor) when present. A missing image is
// not an error: the atlas falls back to region fills.
func LoadAtlas(fsys fs.FS, name string) (*Atlas, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas %s: %w", name, err)
	}
	a, err := ParseAtlas(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var f atlasFile
	_ = yaml.Unmarshal(data, &f) // already validated by ParseAtlas
	if f.Image == "" {
		return a, nil
	}

	imgPath := path.Join(path.Dir(name), f.Image)
	file, err := fsys.Open(imgPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			widgetLogger.Warn("atlas image missing, using fills", "atlas", a.Name, "image", imgPath)
			return a, nil
		}
		return nil, fmt.Errorf("failed to open atlas image %s: %w", imgPath, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas image %s: %w", imgPath, err)
	}
	a.img = img
	b := img.Bounds()
	a.Width, a.Height = b.Dx(), b.Dy()
	return a, nil
}

// Image returns the decoded atlas image, or nil.
func (a *Atlas) Image() image.Image { return a.img }

// Rasterize returns the atlas pixels as non-premultiplied RGBA, painting
// region fills into a new image when none was loaded.
func (a *Atlas) Rasterize() *image.NRGBA {
	w, h := a.Width, a.Height
	if src := a.img; src != nil {
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
		return out
	}
	for _, r := range a.Regions {
		w = max(w, r.X+r.W)
		h = max(h, r.Y+r.H)
	}
	a.Width, a.Height = w, h

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for _, r := range a.Regions {
		cr, cg, cb, ca := UnpackRGBA(r.Fill.Packed())
		c := color.NRGBA{R: cr, G: cg, B: cb, A: ca}
		draw.Draw(out, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return out
}

// Region looks up a region by name. A miss logs a warning once per name.
func (a *Atlas) Region(name string) (Region, bool) {
	r, ok := a.Regions[name]
	if ok {
		return r, true
	}
	a.mu.Lock()
	if a.warned == nil {
		a.warned = map[string]bool{}
	}
	first := !a.warned[name]
	a.warned[name] = true
	a.mu.Unlock()
	if first {
		widgetLogger.Warn("texture not found", "atlas", a.Name, "texture", name)
	}
	return Region{}, false
}

// UV returns the texture coordinates (u0, v0, u1, v1) of r.
func (a *Atlas) UV(r Region) [4]float32 {
	if a.Width <= 0 || a.Height <= 0 {
		return [4]float32{}
	}
	w, h := float32(a.Width), float32(a.Height)
	return [4]float32{
		float32(r.X) / w,
		float32(r.Y) / h,
		float32(r.X+r.W) / w,
		float32(r.Y+r.H) / h,
	}
}

// Atlas registry. Set up once at start-up.
var (
	atlasMu sync.RWMutex
	atlases = map[string]*Atlas{}
)

func init() {
	a, err := ParseAtlas(defaultAtlasYAML)
	if err != nil {
		panic(fmt.Sprintf("skin: embedded atlas: %v", err))
	}
	RegisterAtlas(a)
}

// RegisterAtlas makes a available under a.Name, replacing any atlas with
// the same name.
func RegisterAtlas(a *Atlas) {
	if a == nil {
		return
	}
	atlasMu.Lock()
	atlases[a.Name] = a
	atlasMu.Unlock()
}

// LookupAtlas returns the atlas registered under name, or nil.
func LookupAtlas(name string) *Atlas {
	atlasMu.RLock()
	defer atlasMu.RUnlock()
	return atlases[name]
}

// DefaultAtlas returns the atlas registered as DefaultAtlasName.
func DefaultAtlas() *Atlas { return LookupAtlas(DefaultAtlasName) }

// UnmarshalYAML accepts "#rrggbb", "#rrggbbaa" or a list of 3 or 4 floats
// in 0..1.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseHexColor(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var comps []float32
		if err := value.Decode(&comps); err != nil {
			return err
		}
		if len(comps) != 3 && len(comps) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", value.Line, len(comps))
		}
		out := Color{R: comps[0], G: comps[1], B: comps[2], A: 1}
		if len(comps) == 4 {
			out.A = comps[3]
		}
		*c = out
		return nil
	}
	return fmt.Errorf("line %d: unsupported color", value.Line)
}

// MarshalYAML writes the color as "#rrggbbaa".
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// Hex returns the color as "#rrggbbaa".
func (c Color) Hex() string {
	r, g, b, a := UnpackRGBA(c.Packed())
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the '#' is optional).
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{
		R: float32(v>>24&0xff) / 255,
		G: float32(v>>16&0xff) / 255,
		B: float32(v>>8&0xff) / 255,
		A: float32(v&0xff) / 255,
	}, nil
}
