// Package render defines the backend-independent vocabulary shared by the
// scene and the GL renderer: shading programs, mesh handles and draw calls.
package render

import (
	"image"

	"github.com/Faultbox/snowfight/internal/engine/geometry"
	"github.com/Faultbox/snowfight/pkg/math"
)

// Program names a shading program.
type Program int

const (
	SnowRough Program = iota
	Gouraud
	Phong
	PhongRedTint
	Overlay
	Backdrop

	programCount
)

// Programs lists every program in creation order.
func Programs() []Program {
	out := make([]Program, programCount)
	for i := range out {
		out[i] = Program(i)
	}
	return out
}

func (p Program) String() string {
	switch p {
	case SnowRough:
		return "snow-rough"
	case Gouraud:
		return "gouraud"
	case Phong:
		return "phong"
	case PhongRedTint:
		return "phong-red-tint"
	case Overlay:
		return "overlay"
	case Backdrop:
		return "backdrop"
	default:
		return "unknown"
	}
}

// Transformed reports whether the program applies the transformation matrix.
// Backdrop and overlay geometry is already in clip space.
func (p Program) Transformed() bool {
	return p != Overlay && p != Backdrop
}

// MeshID is a handle to uploaded vertex data. Zero is never a valid mesh.
type MeshID uint32

// Layer orders draws and selects depth and blend state.
type Layer int

const (
	// LayerBackdrop is drawn first with depth testing disabled.
	LayerBackdrop Layer = iota
	// LayerWorld is depth tested and opaque.
	LayerWorld
	// LayerOverlay is alpha blended over everything with depth testing disabled.
	LayerOverlay
)

// DrawCall is one mesh draw with its uniforms.
type DrawCall struct {
	Program   Program
	Mesh      MeshID
	Transform math.Mat4
	Ambient   math.Vec3
	Viewing   math.Vec3
	Textured  bool
	Layer     Layer
}

// Target receives uploads and draw calls. Implementations own the GPU
// resources behind each MeshID.
type Target interface {
	Begin()
	Upload(b *geometry.Buffer) (MeshID, error)
	Release(id MeshID)
	Draw(dc DrawCall)
	UpdateOverlay(img *image.RGBA) error
}
