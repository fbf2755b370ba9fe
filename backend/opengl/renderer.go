// Package opengl provides an OpenGL 4.1 backend for the overlay.
//
// Panel surfaces are framebuffer objects with a texture color
// attachment; the presentation surface is the default framebuffer.
// All drawing goes through one shader that either fills with a uniform
// color or samples a texture.
package opengl

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-debug-overlay/dui"
)

// Renderer implements dui.Renderer on OpenGL.
type Renderer struct {
	width  int
	height int

	shader   uint32
	vao, vbo uint32

	projLoc   int32
	texLoc    int32
	useTexLoc int32
	colorLoc  int32

	// Current draw color as normalized RGBA.
	color [4]float32

	// Dimensions of the bound render target, for the projection.
	targetW int
	targetH int
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;
uniform vec4 drawColor;

void main() {
    if (useTexture) {
        FragColor = texture(tex, TexCoord);
    } else {
        FragColor = drawColor;
    }
}
` + "\x00"

// NewRenderer creates an OpenGL renderer presenting to a width x height
// default framebuffer. The GL context must be current on the calling
// goroutine, and must stay current for every later call.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:   width,
		height:  height,
		targetW: width,
		targetH: height,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.colorLoc = gl.GetUniformLocation(r.shader, gl.Str("drawColor\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 16, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 16, 8)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return r, nil
}

// Delete releases the renderer's OpenGL resources. Surfaces and
// textures created through it must be released separately.
func (r *Renderer) Delete() {
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

// Size returns the presentation surface dimensions.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// surface is a framebuffer object with a texture color attachment.
type surface struct {
	fbo    uint32
	tex    uint32
	width  int
	height int
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

func (s *surface) Release() {
	gl.DeleteFramebuffers(1, &s.fbo)
	gl.DeleteTextures(1, &s.tex)
}

// CreateSurface allocates an FBO-backed offscreen render target,
// cleared to transparent. The previously bound target stays bound.
func (r *Renderer) CreateSurface(width, height int) (dui.Surface, error) {
	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)

	s := &surface{width: width, height: height}

	gl.GenTextures(1, &s.tex)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &s.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.tex, 0)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		s.Release()
		return nil, fmt.Errorf("framebuffer incomplete: status 0x%x", status)
	}

	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	return s, nil
}

// texture is an uploaded immutable image.
type texture struct {
	id     uint32
	width  int
	height int
}

func (t *texture) Size() (int, int) {
	return t.width, t.height
}

func (t *texture) Release() {
	gl.DeleteTextures(1, &t.id)
}

// CreateTexture uploads an image as an RGBA texture with nearest
// filtering, so scaled glyph blits stay crisp.
func (r *Renderer) CreateTexture(img image.Image) (dui.Texture, error) {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	t := &texture{width: bounds.Dx(), height: bounds.Dy()}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.width), int32(t.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil
}

// SetTarget binds the surface's framebuffer, or the default framebuffer
// for nil, and sets the viewport to match.
func (r *Renderer) SetTarget(s dui.Surface) {
	if s == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		r.targetW, r.targetH = r.width, r.height
	} else {
		sf := s.(*surface)
		gl.BindFramebuffer(gl.FRAMEBUFFER, sf.fbo)
		r.targetW, r.targetH = sf.width, sf.height
	}
	gl.Viewport(0, 0, int32(r.targetW), int32(r.targetH))
}

// Clear replaces the whole target with the given color, including its
// alpha, without blending.
func (r *Renderer) Clear(color uint32) {
	cr, cg, cb, ca := dui.UnpackRGBA(color)
	gl.ClearColor(float32(cr)/255, float32(cg)/255, float32(cb)/255, float32(ca)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SetColor sets the color used by FillRect and StrokeRect.
func (r *Renderer) SetColor(color uint32) {
	cr, cg, cb, ca := dui.UnpackRGBA(color)
	r.color = [4]float32{float32(cr) / 255, float32(cg) / 255, float32(cb) / 255, float32(ca) / 255}
}

// FillRect fills a rectangle with the current color.
func (r *Renderer) FillRect(rect dui.Rect) {
	x0, y0 := float32(rect.X), float32(rect.Y)
	x1, y1 := float32(rect.X+rect.W), float32(rect.Y+rect.H)
	r.draw(gl.TRIANGLES, []float32{
		x0, y0, 0, 0,
		x1, y0, 0, 0,
		x1, y1, 0, 0,
		x0, y0, 0, 0,
		x1, y1, 0, 0,
		x0, y1, 0, 0,
	}, 0)
}

// StrokeRect outlines a rectangle with the current color.
func (r *Renderer) StrokeRect(rect dui.Rect) {
	// Offsets put the 1px lines on pixel centers.
	x0, y0 := float32(rect.X)+0.5, float32(rect.Y)+0.5
	x1, y1 := float32(rect.X+rect.W)-0.5, float32(rect.Y+rect.H)-0.5
	r.draw(gl.LINE_LOOP, []float32{
		x0, y0, 0, 0,
		x1, y0, 0, 0,
		x1, y1, 0, 0,
		x0, y1, 0, 0,
	}, 0)
}

// Blit draws the src region of a texture into the dst region of the
// current target.
func (r *Renderer) Blit(t dui.Texture, src, dst dui.Rect) {
	tex := t.(*texture)
	r.blitQuad(tex.id, tex.width, tex.height, src, dst, false)
}

// BlitSurface composites a surface onto the current target. A zero src
// or dst Rect means the whole surface or target.
func (r *Renderer) BlitSurface(s dui.Surface, src, dst dui.Rect) {
	sf := s.(*surface)
	if src.Empty() {
		src = dui.Rect{W: sf.width, H: sf.height}
	}
	if dst.Empty() {
		dst = dui.Rect{W: r.targetW, H: r.targetH}
	}
	r.blitQuad(sf.tex, sf.width, sf.height, src, dst, true)
}

// blitQuad draws a textured quad. FBO textures store the image with
// row 0 at the bottom, so surface blits sample with V flipped.
func (r *Renderer) blitQuad(texID uint32, texW, texH int, src, dst dui.Rect, flipV bool) {
	u0 := float32(src.X) / float32(texW)
	u1 := float32(src.X+src.W) / float32(texW)
	v0 := float32(src.Y) / float32(texH)
	v1 := float32(src.Y+src.H) / float32(texH)
	if flipV {
		v0, v1 = 1-v0, 1-v1
	}

	x0, y0 := float32(dst.X), float32(dst.Y)
	x1, y1 := float32(dst.X+dst.W), float32(dst.Y+dst.H)
	r.draw(gl.TRIANGLES, []float32{
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		x1, y1, u1, v1,
		x0, y0, u0, v0,
		x1, y1, u1, v1,
		x0, y1, u0, v1,
	}, texID)
}

// draw uploads the vertices and issues one draw call with the overlay's
// render state.
func (r *Renderer) draw(mode uint32, verts []float32, texID uint32) {
	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.targetW), float32(r.targetH), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	if texID != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texID)
		gl.Uniform1i(r.texLoc, 0)
		gl.Uniform1i(r.useTexLoc, 1)
	} else {
		gl.Uniform1i(r.useTexLoc, 0)
	}
	gl.Uniform4f(r.colorLoc, r.color[0], r.color[1], r.color[2], r.color[3])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

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
