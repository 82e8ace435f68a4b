// Package scene composes one frame of the snowball fight: it steps the
// simulation, orbits the camera and submits every mesh to a render target in
// a fixed order.
package scene

import (
	"fmt"
	gomath "math"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/snowfight/internal/engine/camera"
	"github.com/Faultbox/snowfight/internal/engine/geometry"
	"github.com/Faultbox/snowfight/internal/engine/lighting"
	"github.com/Faultbox/snowfight/internal/engine/render"
	"github.com/Faultbox/snowfight/internal/engine/scroller"
	"github.com/Faultbox/snowfight/internal/game/model"
	"github.com/Faultbox/snowfight/internal/game/world"
	"github.com/Faultbox/snowfight/internal/logger"
	"github.com/Faultbox/snowfight/pkg/math"
)

// Scroller strip placement in normalized device coordinates.
const (
	stripTop    = -0.80
	stripHeight = 0.10
)

// Config contains scene configuration options.
type Config struct {
	Params      world.Params
	Proportions model.Proportions

	// Snowmen is the population. Zero picks one with world.Population.
	Snowmen int

	CameraRadius    float32
	CameraElevation float32
	CameraRate      float64 // radians per ms

	Ambient math.Vec3
}

// DefaultConfig returns the standard scene for the given world scale.
func DefaultConfig(worldScale float32) Config {
	return Config{
		Params:          world.DefaultParams(worldScale),
		Proportions:     model.DefaultProportions(worldScale),
		CameraRadius:    4 * worldScale,
		CameraElevation: 1.5 * worldScale,
		CameraRate:      gomath.Pi / 20000,
		Ambient:         lighting.Ambient,
	}
}

type partMesh struct {
	kind     model.PartKind
	material model.Material
	mesh     render.MeshID
}

// Scene owns the world, the camera and the overlay banner, and the render
// target meshes built for them.
type Scene struct {
	config Config
	target render.Target
	log    *zap.Logger

	world  *world.World
	camera *camera.OrbitCamera
	banner *scroller.Banner

	parts    []partMesh
	ground   render.MeshID
	backdrop render.MeshID
	strip    render.MeshID

	ball  *geometry.Buffer
	balls map[world.ProjectileID]render.MeshID

	overlayReady bool
	frames       int
}

// New builds the world and uploads the static meshes to target.
func New(cfg Config, target render.Target, banner *scroller.Banner, rng *rand.Rand) (*Scene, error) {
	count := cfg.Snowmen
	if count <= 0 {
		count = world.Population(cfg.Params, rng)
	}

	s := &Scene{
		config: cfg,
		target: target,
		log:    logger.Named("scene"),
		world:  world.New(cfg.Params, count, rng),
		camera: camera.NewOrbitCamera(cfg.CameraRadius, cfg.CameraElevation, cfg.CameraRate),
		banner: banner,
		ball:   geometry.Flatten(model.Snowball(cfg.Params, cfg.Proportions)),
		balls:  make(map[world.ProjectileID]render.MeshID),
	}
	s.world.OnRelease(s.releaseBall)

	if err := s.upload(); err != nil {
		s.Close()
		return nil, err
	}

	s.log.Info("scene ready",
		zap.Int("snowmen", count),
		zap.Int("parts", len(s.parts)),
	)
	return s, nil
}

func (s *Scene) upload() error {
	for _, part := range model.Snowman(s.config.Params, s.config.Proportions) {
		id, err := s.target.Upload(geometry.Flatten(part.Triangles))
		if err != nil {
			return fmt.Errorf("upload %s: %w", part.Kind, err)
		}
		s.parts = append(s.parts, partMesh{kind: part.Kind, material: part.Material, mesh: id})
	}

	var err error
	if s.ground, err = s.target.Upload(geometry.Flatten(model.Ground(s.config.Proportions))); err != nil {
		return fmt.Errorf("upload ground: %w", err)
	}
	if s.backdrop, err = s.target.Upload(geometry.Flatten(geometry.FullScreenQuad(1, geometry.White))); err != nil {
		return fmt.Errorf("upload backdrop: %w", err)
	}
	strip := geometry.ScreenQuad(-1, stripTop, 1, stripTop-stripHeight, -1, geometry.White)
	if s.strip, err = s.target.Upload(geometry.Flatten(strip)); err != nil {
		return fmt.Errorf("upload scroller strip: %w", err)
	}
	return nil
}

// World returns the simulation.
func (s *Scene) World() *world.World { return s.world }

// Camera returns the orbit camera.
func (s *Scene) Camera() *camera.OrbitCamera { return s.camera }

// Frame runs one frame of dt ms: simulation, camera, draw submission, then
// the clocks.
func (s *Scene) Frame(dt float64) {
	s.world.Update(dt)
	s.camera.Update(s.world.Now())

	viewProj := s.camera.ViewProjection()
	viewing := s.camera.ViewingVector()

	s.target.Begin()
	s.drawBackdrop()
	s.drawGround(viewProj, viewing)
	s.drawSnowmen(viewProj, viewing)
	s.drawSnowballs(viewProj, viewing)
	s.drawOverlay(dt)

	s.world.AdvanceClock(dt)
	s.frames++
}

func (s *Scene) drawBackdrop() {
	s.target.Draw(render.DrawCall{
		Program:  render.Backdrop,
		Mesh:     s.backdrop,
		Textured: true,
		Layer:    render.LayerBackdrop,
	})
}

func (s *Scene) drawGround(viewProj math.Mat4, viewing math.Vec3) {
	s.target.Draw(render.DrawCall{
		Program:   render.Gouraud,
		Mesh:      s.ground,
		Transform: viewProj,
		Ambient:   s.config.Ambient,
		Viewing:   viewing,
		Layer:     render.LayerWorld,
	})
}

func (s *Scene) drawSnowmen(viewProj math.Mat4, viewing math.Vec3) {
	snowmen := s.world.Snowmen()
	for i := range snowmen {
		sm := &snowmen[i]
		transform := viewProj.Mul(sm.Model)
		leader := s.world.IsLeader(sm)
		for _, part := range s.parts {
			s.target.Draw(render.DrawCall{
				Program:   program(part.material, leader),
				Mesh:      part.mesh,
				Transform: transform,
				Ambient:   s.config.Ambient,
				Viewing:   viewing,
				Textured:  part.material == model.MaterialSnow,
				Layer:     render.LayerWorld,
			})
		}
	}
}

// program maps a part material to its shader program.
func program(m model.Material, leader bool) render.Program {
	switch m {
	case model.MaterialSnow:
		return render.SnowRough
	case model.MaterialGlossy:
		return render.Phong
	case model.MaterialHat:
		if leader {
			return render.PhongRedTint
		}
		return render.Phong
	default:
		return render.Gouraud
	}
}

func (s *Scene) drawSnowballs(viewProj math.Mat4, viewing math.Vec3) {
	balls := s.world.Snowballs()
	for i := range balls {
		b := &balls[i]
		mesh, ok := s.balls[b.ID]
		if !ok {
			id, err := s.target.Upload(s.ball)
			if err != nil {
				s.log.Warn("snowball upload failed", zap.Uint64("id", uint64(b.ID)), zap.Error(err))
				continue
			}
			mesh = id
			s.balls[b.ID] = mesh
		}
		s.target.Draw(render.DrawCall{
			Program:   render.SnowRough,
			Mesh:      mesh,
			Transform: viewProj.Mul(b.Model),
			Ambient:   s.config.Ambient,
			Viewing:   viewing,
			Textured:  true,
			Layer:     render.LayerWorld,
		})
	}
}

// releaseBall frees the mesh of a swept snowball.
func (s *Scene) releaseBall(id world.ProjectileID) {
	mesh, ok := s.balls[id]
	if !ok {
		return
	}
	s.target.Release(mesh)
	delete(s.balls, id)
}

func (s *Scene) drawOverlay(dt float64) {
	if s.banner == nil {
		return
	}
	if s.banner.Frame(dt) {
		if err := s.target.UpdateOverlay(s.banner.Image()); err != nil {
			s.log.Warn("overlay update failed", zap.Error(err))
		} else {
			s.overlayReady = true
		}
	}
	if !s.overlayReady {
		return
	}
	s.target.Draw(render.DrawCall{
		Program:  render.Overlay,
		Mesh:     s.strip,
		Textured: true,
		Layer:    render.LayerOverlay,
	})
}

// Close releases every mesh the scene uploaded.
func (s *Scene) Close() {
	for _, p := range s.parts {
		s.target.Release(p.mesh)
	}
	s.parts = nil
	for _, id := range []render.MeshID{s.ground, s.backdrop, s.strip} {
		if id != 0 {
			s.target.Release(id)
		}
	}
	s.ground, s.backdrop, s.strip = 0, 0, 0
	for id, mesh := range s.balls {
		s.target.Release(mesh)
		delete(s.balls, id)
	}
	s.log.Debug("scene closed", zap.Int("frames", s.frames))
}
