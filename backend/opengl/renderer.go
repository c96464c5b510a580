// Package opengl provides an OpenGL 4.1 backend for the skin package.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/skin"
)

// Renderer implements skin.Renderer using OpenGL.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	ebo      uint32

	projLoc, texLoc, useTexLoc, isRGBATexLoc int32

	// textures maps every uploaded texture to whether it is RGBA. Glyph
	// atlases are alpha-only.
	textures map[uint32]bool

	width, height int
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source
// Supports two texture modes:
// - Alpha-only (R-channel): glyph atlases
// - RGBA: skin atlases
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D atlasTexture;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(atlasTexture, TexCoord);
        if (isRGBATexture) {
            // Skin atlas: texture color modulated by vertex color
            FragColor = texColor * Color;
        } else {
            // Glyph atlas: R channel is alpha, vertex color gives RGB
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates a new OpenGL renderer. A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:    width,
		height:   height,
		textures: make(map[uint32]bool),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("atlasTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos (2 floats), TexCoord (2 floats), Color (packed RGBA8).
	stride := int32(unsafe.Sizeof(skin.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(skin.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(skin.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return r, nil
}

// UploadAtlas uploads a skin atlas as an RGBA texture and stores the
// texture ID on the atlas. Sprites draw textured from then on.
func (r *Renderer) UploadAtlas(a *skin.Atlas) error {
	if a == nil {
		return fmt.Errorf("upload atlas: nil atlas")
	}
	img := a.Rasterize()
	tex, err := r.uploadTexture(img.Bounds(), true, img.Pix)
	if err != nil {
		return fmt.Errorf("upload atlas %q: %w", a.Name, err)
	}
	a.TextureID = tex
	return nil
}

// UploadFont uploads a font's glyph atlas as an alpha-only texture.
// Text nodes using the font are not drawn before this is called.
func (r *Renderer) UploadFont(f *skin.Font) error {
	if f == nil {
		return fmt.Errorf("upload font: nil font")
	}
	ga := f.Atlas()
	tex, err := r.uploadTexture(ga.Image.Bounds(), false, ga.Image.Pix)
	if err != nil {
		return fmt.Errorf("upload font %q: %w", f.Name(), err)
	}
	ga.TextureID = tex
	return nil
}

// uploadTexture creates a NEAREST-filtered texture from tightly packed
// pixel rows, four bytes per pixel when rgba is set and one otherwise.
func (r *Renderer) uploadTexture(bounds image.Rectangle, rgba bool, pix []byte) (uint32, error) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || len(pix) == 0 {
		return 0, fmt.Errorf("empty image %dx%d", w, h)
	}
	format := uint32(gl.RED)
	if rgba {
		format = gl.RGBA
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(w), int32(h), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures[tex] = rgba
	return tex, nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// glState is the slice of GL state Render changes and puts back.
type glState struct {
	program            int32
	blendSrc, blendDst int32
	scissorBox         [4]int32
	blend, depth, cull bool
	scissor            bool
}

func saveGLState() glState {
	var st glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &st.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &st.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &st.scissorBox[0])
	st.blend = gl.IsEnabled(gl.BLEND)
	st.depth = gl.IsEnabled(gl.DEPTH_TEST)
	st.cull = gl.IsEnabled(gl.CULL_FACE)
	st.scissor = gl.IsEnabled(gl.SCISSOR_TEST)
	return st
}

func (st glState) restore() {
	gl.UseProgram(uint32(st.program))
	gl.BlendFunc(uint32(st.blendSrc), uint32(st.blendDst))
	setCap(gl.BLEND, st.blend)
	setCap(gl.DEPTH_TEST, st.depth)
	setCap(gl.CULL_FACE, st.cull)
	setCap(gl.SCISSOR_TEST, st.scissor)
	gl.Scissor(st.scissorBox[0], st.scissorBox[1], st.scissorBox[2], st.scissorBox[3])
}

func setCap(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

// scissorFor converts a top-left clip rectangle (x1, y1, x2, y2) into a
// bottom-left GL scissor box clamped to the screen. ok is false when
// nothing remains.
func scissorFor(clip [4]float32, screenH int) (x, y, w, h int32, ok bool) {
	x = int32(clip[0])
	y = int32(float32(screenH) - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, w, h, w > 0 && h > 0
}

// Render draws a DrawList.
func (r *Renderer) Render(dl *skin.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveGLState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(skin.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorFor(cmd.ClipRect, r.height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)
		r.bindTexture(cmd.TextureID)

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}
	return nil
}

// bindTexture binds id and selects the shader mode for it. Zero draws
// untextured.
func (r *Renderer) bindTexture(id uint32) {
	if id == 0 {
		gl.Uniform1i(r.useTexLoc, 0)
		gl.Uniform1i(r.isRGBATexLoc, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.Uniform1i(r.useTexLoc, 1)
	rgba := int32(0)
	if r.textures[id] {
		rgba = 1
	}
	gl.Uniform1i(r.isRGBATexLoc, rgba)
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	for tex := range r.textures {
		gl.DeleteTextures(1, &tex)
	}
	clear(r.textures)
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func compileShader(kind uint32, source, name string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compilation failed: %s", name, string(log))
	}
	return shader, nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
