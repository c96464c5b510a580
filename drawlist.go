package skin

import "sync"

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// noClip is the clip rectangle used when nothing clips.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// maxCmdVertices bounds the vertices of one command so that uint16 indices
// relative to the command's vertex offset never overflow.
const maxCmdVertices = 0xFFFF

// DrawList accumulates draw commands for a frame.
// Primitives are batched by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // Vertex offset of the current command
	idxCmdOffset uint32 // Index offset of the current command
}

// Clear resets the DrawList for a new frame, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetClipRect replaces the current clip rectangle. Scene rendering sets one
// clip per node.
func (dl *DrawList) SetClipRect(r Rect, enabled bool) {
	clip := noClip
	if enabled {
		clip = [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	}
	if clip == dl.currentClip {
		return
	}
	dl.currentClip = clip
	dl.splitDraw()
}

// ClipRect returns the current clip rectangle as (x1, y1, x2, y2).
func (dl *DrawList) ClipRect() [4]float32 { return dl.currentClip }

// SetTexture sets the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		if last.ElemCount == 0 {
			// Reuse an empty command instead of leaving it behind.
			last.ClipRect = dl.currentClip
			last.TextureID = dl.textureID
			return
		}
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad appends four vertices and the two triangles joining them.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 || uint32(len(dl.VtxBuffer))-dl.cmdOffset+4 > maxCmdVertices {
		dl.splitDraw()
	}
	idx := uint16(uint32(len(dl.VtxBuffer)) - dl.cmdOffset)
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle with the current texture unbound.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddImage draws a textured quad. uv holds (u0, v0, u1, v1).
func (dl *DrawList) AddImage(textureID uint32, x, y, w, h float32, uv [4]float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.SetTexture(textureID)
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{uv[0], uv[1]}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{uv[2], uv[1]}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{uv[2], uv[3]}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{uv[0], uv[3]}, Color: color},
	)
}

// GlyphQuad is one character's screen and texture rectangle.
type GlyphQuad struct {
	X0, Y0 float32 // Screen top-left
	X1, Y1 float32 // Screen bottom-right
	U0, V0 float32 // Texture top-left
	U1, V1 float32 // Texture bottom-right
}

// AddGlyphQuads draws glyph quads from textureID with the given color.
func (dl *DrawList) AddGlyphQuads(textureID uint32, quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}
	dl.SetTexture(textureID)
	for _, q := range quads {
		dl.addQuad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
}

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added. Calling it again is safe.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - last.IndexOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
