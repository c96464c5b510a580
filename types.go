// Package skin provides skinned, retained-mode widgets built from atlas
// sprites and text nodes.
package skin

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlapping area of two rectangles.
// The result has zero size when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := maxf(r.X, other.X)
	y1 := maxf(r.Y, other.Y)
	x2 := minf(r.X+r.W, other.X+other.W)
	y2 := minf(r.Y+r.H, other.Y+other.H)
	return Rect{X: x1, Y: y1, W: maxf(0, x2-x1), H: maxf(0, y2-y1)}
}

// Inset shrinks the rectangle by the given insets.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: maxf(0, r.W-in.Left-in.Right),
		H: maxf(0, r.H-in.Top-in.Bottom),
	}
}

// Insets holds per-edge distances in CSS order (top, right, bottom, left).
type Insets struct {
	Top, Right, Bottom, Left float32
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color is a float RGBA tint. Node colors multiply down the tree.
type Color struct {
	R, G, B, A float32
}

// Common tints.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{0, 0, 0, 0}
)

// Mul returns the component-wise product of two colors.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Packed returns the color packed as 0xAABBGGRR.
func (c Color) Packed() uint32 {
	return RGBAf(c.R, c.G, c.B, c.A)
}

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255+0.5),
		uint8(clampf(g, 0, 1)*255+0.5),
		uint8(clampf(b, 0, 1)*255+0.5),
		uint8(clampf(a, 0, 1)*255+0.5),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
