package scene

import (
	"errors"
	"image"
	gomath "math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/snowfight/internal/engine/geometry"
	"github.com/Faultbox/snowfight/internal/engine/overlay"
	"github.com/Faultbox/snowfight/internal/engine/render"
	"github.com/Faultbox/snowfight/internal/engine/scroller"
	"github.com/Faultbox/snowfight/internal/game/model"
)

// fakeTarget records uploads and draw calls.
type fakeTarget struct {
	next     render.MeshID
	live     map[render.MeshID]int
	released []render.MeshID

	begins   int
	draws    []render.DrawCall
	overlays int

	failUploadAfter int // fail once this many uploads succeeded; 0 never fails
	uploads         int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{live: make(map[render.MeshID]int)}
}

func (f *fakeTarget) Begin() {
	f.begins++
	f.draws = f.draws[:0]
}

func (f *fakeTarget) Upload(b *geometry.Buffer) (render.MeshID, error) {
	if f.failUploadAfter > 0 && f.uploads >= f.failUploadAfter {
		return 0, errors.New("out of memory")
	}
	f.uploads++
	f.next++
	f.live[f.next] = b.VertexCount()
	return f.next, nil
}

func (f *fakeTarget) Release(id render.MeshID) {
	delete(f.live, id)
	f.released = append(f.released, id)
}

func (f *fakeTarget) Draw(dc render.DrawCall) {
	f.draws = append(f.draws, dc)
}

func (f *fakeTarget) UpdateOverlay(*image.RGBA) error {
	f.overlays++
	return nil
}

func testConfig(snowmen int) Config {
	cfg := DefaultConfig(0.03)
	cfg.Snowmen = snowmen
	return cfg
}

func newTestScene(t *testing.T, cfg Config, target *fakeTarget, banner *scroller.Banner) *Scene {
	t.Helper()
	s, err := New(cfg, target, banner, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func newTestBanner(t *testing.T) *scroller.Banner {
	t.Helper()
	face, err := overlay.NewItalicFace(20)
	require.NoError(t, err)
	factory := func(w, h int) scroller.Canvas { return overlay.New(w, h, face) }
	s := scroller.New("Happy holidays", 20, scroller.DefaultStep, factory)
	return scroller.NewBanner(scroller.DefaultBannerConfig(), s, factory(overlay.DefaultWidth, overlay.DefaultHeight))
}

func TestNewUploadsStaticMeshes(t *testing.T) {
	target := newFakeTarget()
	cfg := testConfig(3)
	s := newTestScene(t, cfg, target, nil)

	parts := model.Snowman(cfg.Params, cfg.Proportions)
	require.Len(t, s.parts, len(parts))
	for i, p := range parts {
		assert.Equal(t, p.Kind, s.parts[i].kind)
		assert.Equal(t, len(p.Triangles)*3, target.live[s.parts[i].mesh])
	}
	assert.Len(t, target.live, len(parts)+3)
	assert.Len(t, s.World().Snowmen(), 3)
}

func TestNewFailsOnUploadError(t *testing.T) {
	target := newFakeTarget()
	target.failUploadAfter = 2

	_, err := New(testConfig(1), target, nil, rand.New(rand.NewPCG(1, 1)))
	require.Error(t, err)
	assert.Empty(t, target.live, "partial uploads are released")
}

func TestFrameDrawOrder(t *testing.T) {
	target := newFakeTarget()
	cfg := testConfig(2)
	s := newTestScene(t, cfg, target, nil)

	s.Frame(16)
	require.Equal(t, 1, target.begins)

	draws := target.draws
	require.Len(t, draws, 2+2*len(s.parts)+len(s.World().Snowballs()))

	assert.Equal(t, render.Backdrop, draws[0].Program)
	assert.Equal(t, render.LayerBackdrop, draws[0].Layer)
	assert.Equal(t, s.backdrop, draws[0].Mesh)

	assert.Equal(t, render.Gouraud, draws[1].Program)
	assert.Equal(t, s.ground, draws[1].Mesh)
	assert.Equal(t, s.Camera().ViewProjection(), draws[1].Transform)

	wantPrograms := []render.Program{
		render.SnowRough, // body
		render.Gouraud,   // right arm
		render.Gouraud,   // left arm
		render.Phong,     // face buttons
		render.Gouraud,   // nose
		render.Phong,     // hat
	}
	snowmen := s.World().Snowmen()
	for i := range snowmen {
		for j, part := range s.parts {
			dc := draws[2+i*len(s.parts)+j]
			assert.Equal(t, part.mesh, dc.Mesh)
			assert.Equal(t, wantPrograms[j], dc.Program, "%s", part.kind)
			assert.Equal(t, s.Camera().ViewProjection().Mul(snowmen[i].Model), dc.Transform)
			assert.Equal(t, cfg.Ambient, dc.Ambient)
			assert.Equal(t, render.LayerWorld, dc.Layer)
		}
	}
}

func TestLeaderHatIsTinted(t *testing.T) {
	target := newFakeTarget()
	cfg := testConfig(2)
	cfg.Params.LeaderThreshold = 0
	s := newTestScene(t, cfg, target, nil)

	s.Frame(16)
	var tinted int
	for _, dc := range target.draws {
		if dc.Program == render.PhongRedTint {
			tinted++
		}
	}
	assert.Equal(t, 2, tinted)
}

func TestCameraFollowsClock(t *testing.T) {
	target := newFakeTarget()
	s := newTestScene(t, testConfig(1), target, nil)

	s.Frame(10000) // camera placed at t=0, clock then advances
	assert.InDelta(t, 0, s.Camera().Position().X, 1e-6)
	s.Frame(16)
	want := 4 * 0.03 * float32(gomath.Sin(gomath.Pi/2))
	assert.InDelta(t, want, s.Camera().Position().X, 1e-6)
	assert.InDelta(t, 10016, s.World().Now(), 1e-9)
}

func TestSnowballMeshesFollowWorld(t *testing.T) {
	target := newFakeTarget()
	cfg := testConfig(20)
	cfg.Params.MinFOV = gomath.Pi
	cfg.Params.MaxFOV = gomath.Pi
	s := newTestScene(t, cfg, target, nil)
	static := len(target.live)

	var peak int
	for i := 0; i < 800; i++ {
		s.Frame(16)
		balls := s.World().Snowballs()
		require.Len(t, s.balls, len(balls))
		require.Len(t, target.live, static+len(balls))
		for _, b := range balls {
			assert.Contains(t, s.balls, b.ID)
		}
		peak = max(peak, len(balls))
	}
	assert.Positive(t, peak)
	assert.NotEmpty(t, target.released, "swept balls free their meshes")
}

func TestOverlayUploadsOnInterval(t *testing.T) {
	target := newFakeTarget()
	s := newTestScene(t, testConfig(1), target, newTestBanner(t))

	overlayDraws := func() int {
		n := 0
		for _, dc := range target.draws {
			if dc.Program == render.Overlay {
				n++
				assert.Equal(t, s.strip, dc.Mesh)
				assert.Equal(t, render.LayerOverlay, dc.Layer)
			}
		}
		return n
	}

	s.Frame(16)
	s.Frame(16)
	assert.Zero(t, target.overlays)
	assert.Zero(t, overlayDraws(), "nothing to show before the first upload")

	s.Frame(16)
	assert.Equal(t, 1, target.overlays)
	assert.Equal(t, 1, overlayDraws())

	for i := 0; i < 6; i++ {
		s.Frame(16)
	}
	assert.Equal(t, 3, target.overlays)
	assert.Equal(t, 1, overlayDraws())

	last := target.draws[len(target.draws)-1]
	assert.Equal(t, render.Overlay, last.Program, "overlay is drawn last")
}

func TestCloseReleasesEverything(t *testing.T) {
	target := newFakeTarget()
	s, err := New(testConfig(4), target, nil, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		s.Frame(16)
	}

	s.Close()
	assert.Empty(t, target.live)
	assert.Empty(t, s.balls)
}

func TestProgramMapping(t *testing.T) {
	assert.Equal(t, render.SnowRough, program(model.MaterialSnow, true))
	assert.Equal(t, render.Gouraud, program(model.MaterialMatte, true))
	assert.Equal(t, render.Phong, program(model.MaterialGlossy, true))
	assert.Equal(t, render.Phong, program(model.MaterialHat, false))
	assert.Equal(t, render.PhongRedTint, program(model.MaterialHat, true))
}
