// Package renderer draws render.DrawCalls with OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/snowfight/internal/engine/geometry"
	"github.com/Faultbox/snowfight/internal/engine/render"
	"github.com/Faultbox/snowfight/internal/engine/shader"
	"github.com/Faultbox/snowfight/internal/engine/texture"
	"github.com/Faultbox/snowfight/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// program is a linked program with its attribute and uniform locations.
// Locations are -1 when the program does not use them.
type program struct {
	id uint32

	position int32
	color    int32
	normal   int32
	texCoord int32

	transform int32
	ambient   int32
	viewing   int32
	sampler   int32
}

// Resources holds the GPU objects created at startup.
type Resources struct {
	programs []*program // indexed by render.Program
	overlay  *texture.Texture
	vao      uint32
}

// program returns the compiled program, or nil for unknown names.
func (r *Resources) program(p render.Program) *program {
	if p < 0 || int(p) >= len(r.programs) {
		return nil
	}
	return r.programs[p]
}

type mesh struct {
	buffers [4]uint32 // positions, colors, normals, texcoords
	count   int32
}

var _ render.Target = (*Renderer)(nil)

// Renderer implements render.Target.
type Renderer struct {
	config Config
	res    *Resources
	log    *zap.Logger

	meshes map[render.MeshID]*mesh
	nextID render.MeshID
	layer  render.Layer
}

// New initializes OpenGL and compiles every program.
// Must be called after the GL context is current.
func New(cfg Config) (*Renderer, error) {
	log := logger.Named("renderer")

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	res, err := newResources()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		config: cfg,
		res:    res,
		log:    log,
		meshes: make(map[render.MeshID]*mesh),
		layer:  render.LayerWorld,
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)
	gl.ClearDepth(1)
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func newResources() (*Resources, error) {
	names := render.Programs()
	res := &Resources{programs: make([]*program, len(names))}
	for _, name := range names {
		id, err := shader.Build(name)
		if err != nil {
			res.release()
			return nil, err
		}
		p := &program{
			id:        id,
			position:  shader.GetAttrib(id, shader.AttrPosition),
			color:     shader.GetAttrib(id, shader.AttrColor),
			normal:    shader.GetAttrib(id, shader.AttrNormal),
			texCoord:  shader.GetAttrib(id, shader.AttrTexCoord),
			transform: shader.GetUniform(id, shader.UniformTransform),
			ambient:   shader.GetUniform(id, shader.UniformAmbient),
			viewing:   shader.GetUniform(id, shader.UniformViewing),
			sampler:   shader.GetUniform(id, shader.UniformSampler),
		}
		res.programs[name] = p
		if p.position < 0 {
			res.release()
			return nil, fmt.Errorf("program %s: missing %s", name, shader.AttrPosition)
		}
		if name.Transformed() && p.transform < 0 {
			res.release()
			return nil, fmt.Errorf("program %s: missing %s", name, shader.UniformTransform)
		}
	}
	gl.GenVertexArrays(1, &res.vao)
	return res, nil
}

func (r *Resources) release() {
	for i, p := range r.programs {
		if p != nil {
			gl.DeleteProgram(p.id)
			r.programs[i] = nil
		}
	}
	if r.overlay != nil {
		r.overlay.Delete()
		r.overlay = nil
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}

// Close frees every mesh and program.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for id := range r.meshes {
		r.Release(id)
	}
	r.res.release()
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	r.setLayer(render.LayerWorld)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Upload copies a vertex buffer to the GPU.
func (r *Renderer) Upload(b *geometry.Buffer) (render.MeshID, error) {
	n := b.VertexCount()
	if n == 0 {
		return 0, fmt.Errorf("upload: empty buffer")
	}

	m := &mesh{count: int32(n)}
	gl.GenBuffers(int32(len(m.buffers)), &m.buffers[0])
	for i, data := range [][]float32{b.Positions, b.Colors, b.Normals, b.TexCoords} {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.buffers[i])
		if len(data) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
		}
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.nextID++
	r.meshes[r.nextID] = m
	return r.nextID, nil
}

// Release frees a mesh. Unknown ids are ignored.
func (r *Renderer) Release(id render.MeshID) {
	m, ok := r.meshes[id]
	if !ok {
		return
	}
	gl.DeleteBuffers(int32(len(m.buffers)), &m.buffers[0])
	delete(r.meshes, id)
}

// UpdateOverlay refreshes the overlay texture from img.
func (r *Renderer) UpdateOverlay(img *image.RGBA) error {
	if r.res.overlay == nil {
		t, err := texture.New(img)
		if err != nil {
			return fmt.Errorf("create overlay texture: %w", err)
		}
		r.res.overlay = t
		return nil
	}
	return r.res.overlay.Update(img)
}

// Draw submits one draw call. Calls naming unknown meshes or programs are
// dropped.
func (r *Renderer) Draw(dc render.DrawCall) {
	m := r.meshes[dc.Mesh]
	p := r.res.program(dc.Program)
	if m == nil || p == nil {
		return
	}

	r.setLayer(dc.Layer)
	gl.UseProgram(p.id)
	gl.BindVertexArray(r.res.vao)

	bindAttrib(p.position, m.buffers[0], geometry.PositionSize)
	bindAttrib(p.color, m.buffers[1], geometry.ColorSize)
	bindAttrib(p.normal, m.buffers[2], geometry.NormalSize)
	if dc.Textured {
		bindAttrib(p.texCoord, m.buffers[3], geometry.TexCoordSize)
	}

	if p.ambient >= 0 {
		gl.Uniform3f(p.ambient, dc.Ambient.X, dc.Ambient.Y, dc.Ambient.Z)
	}
	if p.viewing >= 0 {
		gl.Uniform3f(p.viewing, dc.Viewing.X, dc.Viewing.Y, dc.Viewing.Z)
	}
	if p.transform >= 0 {
		gl.UniformMatrix4fv(p.transform, 1, false, dc.Transform.Ptr())
	}
	if p.sampler >= 0 && r.res.overlay != nil {
		r.res.overlay.Bind(0)
		gl.Uniform1i(p.sampler, 0)
	}

	gl.DrawArrays(gl.TRIANGLES, 0, m.count)

	for _, loc := range []int32{p.position, p.color, p.normal, p.texCoord} {
		if loc >= 0 {
			gl.DisableVertexAttribArray(uint32(loc))
		}
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func bindAttrib(loc int32, buffer uint32, size int32) {
	if loc < 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(uint32(loc))
}

// setLayer switches depth and blend state when the layer changes.
func (r *Renderer) setLayer(l render.Layer) {
	if l == r.layer {
		return
	}
	r.layer = l
	switch l {
	case render.LayerBackdrop:
		gl.Disable(gl.DEPTH_TEST)
		gl.Disable(gl.BLEND)
	case render.LayerOverlay:
		gl.Disable(gl.DEPTH_TEST)
		gl.Enable(gl.BLEND)
	default:
		gl.Enable(gl.DEPTH_TEST)
		gl.Disable(gl.BLEND)
	}
}
